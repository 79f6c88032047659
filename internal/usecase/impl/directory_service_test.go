package impl

import (
	"context"
	"testing"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"
	domainerrors "github.com/ushankamesh-devX/helatrade-sub000/internal/domain/errors"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/repository"
	mockRepo "github.com/ushankamesh-devX/helatrade-sub000/internal/mocks/repository"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type directoryServiceFixtures struct {
	accountRepo  *mockRepo.MockAccountRepository
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestDirectoryService(t *testing.T) (usecase.DirectoryUsecase, *directoryServiceFixtures) {
	f := &directoryServiceFixtures{
		accountRepo:  mockRepo.NewMockAccountRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
	}

	svc := NewDirectoryService(DirectoryServiceParams{
		AccountRepo:  f.accountRepo,
		CategoryRepo: f.categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return svc, f
}

func TestDirectoryService_ListAccounts_Defaults(t *testing.T) {
	svc, f := createTestDirectoryService(t)

	ctx := context.Background()

	f.accountRepo.EXPECT().
		List(ctx, mock.AnythingOfType("*repository.ListFilter")).
		Run(func(ctx context.Context, filter *repository.ListFilter) {
			assert.Equal(t, usecase.DefaultPageSize, filter.Limit)
			assert.Equal(t, 0, filter.Offset)
			assert.Equal(t, repository.SortByNewest, filter.Sort)
		}).
		Return([]*entity.Account{{DisplayName: "Highland Tea Estate"}}, 1, nil)

	output, err := svc.ListAccounts(ctx, &usecase.ListAccountsInput{})

	require.NoError(t, err)
	assert.Len(t, output.Accounts, 1)
	assert.Equal(t, 1, output.Page.Page)
	assert.Equal(t, usecase.DefaultPageSize, output.Page.PerPage)
	assert.Equal(t, int64(1), output.Page.TotalItems)
	assert.Equal(t, 1, output.Page.TotalPages)
}

func TestDirectoryService_ListAccounts_ClampsPageSize(t *testing.T) {
	svc, f := createTestDirectoryService(t)

	ctx := context.Background()

	f.accountRepo.EXPECT().
		List(ctx, mock.AnythingOfType("*repository.ListFilter")).
		Run(func(ctx context.Context, filter *repository.ListFilter) {
			assert.Equal(t, usecase.MaxPageSize, filter.Limit)
			assert.Equal(t, usecase.MaxPageSize, filter.Offset)
		}).
		Return([]*entity.Account{}, 120, nil)

	output, err := svc.ListAccounts(ctx, &usecase.ListAccountsInput{
		Page:    2,
		PerPage: 500,
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.MaxPageSize, output.Page.PerPage)
	assert.Equal(t, 2, output.Page.Page)
	assert.Equal(t, 3, output.Page.TotalPages)
}

func TestDirectoryService_ListAccounts_PassesFilters(t *testing.T) {
	svc, f := createTestDirectoryService(t)

	ctx := context.Background()
	verified := true

	f.accountRepo.EXPECT().
		List(ctx, mock.AnythingOfType("*repository.ListFilter")).
		Run(func(ctx context.Context, filter *repository.ListFilter) {
			assert.Equal(t, entity.AccountTypeProducer, filter.Type)
			assert.Equal(t, "tea", filter.Search)
			assert.Equal(t, int64(3), filter.CategoryID)
			assert.Equal(t, "Kandy", filter.Location)
			require.NotNil(t, filter.Verified)
			assert.True(t, *filter.Verified)
			assert.Equal(t, repository.SortByConnections, filter.Sort)
		}).
		Return([]*entity.Account{}, 0, nil)

	_, err := svc.ListAccounts(ctx, &usecase.ListAccountsInput{
		Type:       entity.AccountTypeProducer,
		Search:     "tea",
		CategoryID: 3,
		Location:   "Kandy",
		Verified:   &verified,
		Sort:       "connections",
	})

	require.NoError(t, err)
}

func TestDirectoryService_ListAccounts_UnknownSortFallsBackToNewest(t *testing.T) {
	svc, f := createTestDirectoryService(t)

	ctx := context.Background()

	f.accountRepo.EXPECT().
		List(ctx, mock.AnythingOfType("*repository.ListFilter")).
		Run(func(ctx context.Context, filter *repository.ListFilter) {
			assert.Equal(t, repository.SortByNewest, filter.Sort)
		}).
		Return([]*entity.Account{}, 0, nil)

	output, err := svc.ListAccounts(ctx, &usecase.ListAccountsInput{
		Sort: "password_hash",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Page.Page)
}

func TestDirectoryService_ListCategories(t *testing.T) {
	svc, f := createTestDirectoryService(t)

	ctx := context.Background()

	f.categoryRepo.EXPECT().
		ListActive(ctx).
		Return([]*entity.Category{
			{ID: 1, Name: "Tea", Active: true},
			{ID: 3, Name: "Spices", Active: true},
		}, nil)

	categories, err := svc.ListCategories(ctx)

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Tea", categories[0].Name)
}

func TestDirectoryService_ListAccounts_RejectsUnknownType(t *testing.T) {
	svc, _ := createTestDirectoryService(t)

	output, err := svc.ListAccounts(context.Background(), &usecase.ListAccountsInput{
		Type: entity.AccountType("admin"),
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

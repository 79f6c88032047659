package impl

import (
	"context"
	"testing"
	"time"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"
	domainerrors "github.com/ushankamesh-devX/helatrade-sub000/internal/domain/errors"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/repository"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/service"
	mockRepo "github.com/ushankamesh-devX/helatrade-sub000/internal/mocks/repository"
	mockSvc "github.com/ushankamesh-devX/helatrade-sub000/internal/mocks/service"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service       usecase.AccountUsecase
	txManager     *mockRepo.MockTransactionManager
	accountRepo   *mockRepo.MockAccountRepository
	sessionRepo   *mockRepo.MockSessionRepository
	hasher        *mockSvc.MockPasswordHasher
	tokenService  *mockSvc.MockTokenService
	slugAllocator *mockSvc.MockSlugAllocator
	qrService     *mockSvc.MockQRCodeService
	publisher     *mockSvc.MockEventPublisher
}

func createTestAccountService(t *testing.T, strictCategories bool, maxActiveSessions int) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	slugAllocator := mockSvc.NewMockSlugAllocator(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewAccountService(AccountServiceParams{
		TxManager:     txManager,
		AccountRepo:   accountRepo,
		SessionRepo:   sessionRepo,
		Hasher:        hasher,
		TokenService:  tokenService,
		SlugAllocator: slugAllocator,
		QRService:     qrService,
		Publisher:     publisher,
		Config:        newTestConfig(strictCategories, maxActiveSessions),
		Logger:        newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:       svc,
		txManager:     txManager,
		accountRepo:   accountRepo,
		sessionRepo:   sessionRepo,
		hasher:        hasher,
		tokenService:  tokenService,
		slugAllocator: slugAllocator,
		qrService:     qrService,
		publisher:     publisher,
	}
}

func TestAccountService_RegisterProducer_Success(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	input := &usecase.RegisterProducerInput{
		DisplayName: "Highland Tea Estate",
		Email:       "contact@highland.example",
		Password:    "StrongPass123!",
		Bio:         "Single-origin teas from the central hills",
		Location:    "Nuwara Eliya",
		CategoryIDs: []int64{1, 3},
		Specialties: []usecase.SpecialtyInput{{Label: "Ceylon Black Tea", Priority: 1}},
		Languages:   []usecase.LanguageInput{{Name: "English", Proficiency: "advanced"}},
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.slugAllocator.EXPECT().
		Allocate(ctx, input.DisplayName, entity.AccountTypeProducer, uuid.Nil).
		Return("highland-tea-estate", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockCategoryRepo.EXPECT().
				FilterActiveIDs(ctx, []int64{1, 3}).
				Return([]int64{1, 3}, nil)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(ctx context.Context, event *service.DomainEvent) {
			assert.Equal(t, service.EventAccountRegistered, event.Name)
			assert.Equal(t, "producer", event.Attributes["account_type"])
		}).
		Return(nil)

	output, err := fx.service.RegisterProducer(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "highland-tea-estate", output.Account.Slug)
	assert.Equal(t, entity.AccountStatusActive, output.Account.Status)
	assert.Equal(t, "hashed_password", output.Account.PasswordHash)
	assert.Len(t, output.Account.Categories, 2)
	assert.Len(t, output.Account.Specialties, 1)
}

func TestAccountService_RegisterProducer_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	input := &usecase.RegisterProducerInput{
		DisplayName: "Highland Tea Estate",
		Email:       "taken@highland.example",
		Password:    "StrongPass123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.slugAllocator.EXPECT().
		Allocate(ctx, input.DisplayName, entity.AccountTypeProducer, uuid.Nil).
		Return("highland-tea-estate", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Return(repository.ErrDuplicateEmail)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterProducer(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAccountService_RegisterProducer_WeakPassword(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	input := &usecase.RegisterProducerInput{
		DisplayName: "Highland Tea Estate",
		Email:       "contact@highland.example",
		Password:    "weak",
	}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(domainerrors.ErrPasswordStrength.WrapMessage("password must be at least 8 characters long"))

	output, err := fx.service.RegisterProducer(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAccountService_RegisterProducer_SlugRace(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	input := &usecase.RegisterProducerInput{
		DisplayName: "Highland Tea Estate",
		Email:       "contact@highland.example",
		Password:    "StrongPass123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.slugAllocator.EXPECT().
		Allocate(ctx, input.DisplayName, entity.AccountTypeProducer, uuid.Nil).
		Return("highland-tea-estate", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Return(repository.ErrDuplicateSlug)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterProducer(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSlugAllocationFailed))
}

func TestAccountService_RegisterStore_Success(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	input := &usecase.RegisterStoreInput{
		DisplayName:  "Green Valley Grocers",
		Email:        "orders@greenvalley.example",
		Password:     "StrongPass123!",
		Location:     "Colombo 07",
		StoreSize:    "medium",
		BusinessType: "retail",
		DeliveryOptions: []usecase.DeliveryOptionInput{
			{Type: "pickup", Available: true},
			{Type: "courier", Available: true, Cost: "LKR 350"},
		},
		PaymentMethods: []usecase.PaymentMethodInput{
			{Type: "card", Available: true, Provider: "visa"},
		},
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.slugAllocator.EXPECT().
		Allocate(ctx, input.DisplayName, entity.AccountTypeStore, uuid.Nil).
		Return("green-valley-grocers", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	output, err := fx.service.RegisterStore(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, entity.AccountTypeStore, output.Account.Type)
	assert.Equal(t, "green-valley-grocers", output.Account.Slug)
	assert.Len(t, output.Account.DeliveryOptions, 2)
	assert.Len(t, output.Account.PaymentMethods, 1)
}

func TestAccountService_Register_StrictCategoriesRejectsUnknown(t *testing.T) {
	fx := createTestAccountService(t, true, 0)

	ctx := context.Background()
	input := &usecase.RegisterProducerInput{
		DisplayName: "Highland Tea Estate",
		Email:       "contact@highland.example",
		Password:    "StrongPass123!",
		CategoryIDs: []int64{1, 99},
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.slugAllocator.EXPECT().
		Allocate(ctx, input.DisplayName, entity.AccountTypeProducer, uuid.Nil).
		Return("highland-tea-estate", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			// id 99 is unknown; strict mode fails the whole request.
			mockCategoryRepo.EXPECT().
				FilterActiveIDs(ctx, []int64{1, 99}).
				Return([]int64{1}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterProducer(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_Register_LenientCategoriesDropUnknown(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	input := &usecase.RegisterProducerInput{
		DisplayName: "Highland Tea Estate",
		Email:       "contact@highland.example",
		Password:    "StrongPass123!",
		CategoryIDs: []int64{1, 99},
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.slugAllocator.EXPECT().
		Allocate(ctx, input.DisplayName, entity.AccountTypeProducer, uuid.Nil).
		Return("highland-tea-estate", nil)

	var created *entity.Account

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().CategoryRepo().Return(mockCategoryRepo)

			mockCategoryRepo.EXPECT().
				FilterActiveIDs(ctx, []int64{1, 99}).
				Return([]int64{1}, nil)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = uuid.New()
					created = account
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Return(nil)

	output, err := fx.service.RegisterProducer(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	require.NotNil(t, created)
	assert.Equal(t, []entity.CategoryLink{{CategoryID: 1}}, created.Categories)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		Type:         entity.AccountTypeProducer,
		Email:        "contact@highland.example",
		PasswordHash: "hashed_password",
		Status:       entity.AccountStatusActive,
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, entity.AccountTypeProducer, account.Email).
		Return(account, nil)
	fx.hasher.EXPECT().Check("StrongPass123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(accountID, entity.AccountTypeProducer).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			assert.Equal(t, accountID, session.AccountID)
			assert.Equal(t, "refresh_hash", session.TokenHash)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Type:     entity.AccountTypeProducer,
		Email:    account.Email,
		Password: "StrongPass123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, accountID, output.Account.ID)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Type:         entity.AccountTypeStore,
		Email:        "orders@greenvalley.example",
		PasswordHash: "hashed_password",
		Status:       entity.AccountStatusActive,
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, entity.AccountTypeStore, account.Email).
		Return(account, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Type:     entity.AccountTypeStore,
		Email:    account.Email,
		Password: "wrong",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationFailed))
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, entity.AccountTypeStore, "ghost@example.com").
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Type:     entity.AccountTypeStore,
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationFailed))
}

func TestAccountService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Type:         entity.AccountTypeProducer,
		Email:        "contact@highland.example",
		PasswordHash: "hashed_password",
		Status:       entity.AccountStatusInactive,
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, entity.AccountTypeProducer, account.Email).
		Return(account, nil)
	fx.hasher.EXPECT().Check("StrongPass123!", "hashed_password").Return(true)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Type:     entity.AccountTypeProducer,
		Email:    account.Email,
		Password: "StrongPass123!",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAccountService_Login_SessionLimitEvictsOldest(t *testing.T) {
	fx := createTestAccountService(t, false, 2)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		Type:         entity.AccountTypeProducer,
		Email:        "contact@highland.example",
		PasswordHash: "hashed_password",
		Status:       entity.AccountStatusActive,
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, entity.AccountTypeProducer, account.Email).
		Return(account, nil)
	fx.hasher.EXPECT().Check("StrongPass123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(accountID, entity.AccountTypeProducer).
		Return("access_token", "refresh_token", nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockSessionRepo.EXPECT().CountByAccountID(ctx, accountID).Return(2, nil)
			mockSessionRepo.EXPECT().DeleteOldestByAccountID(ctx, accountID).Return(nil)
			mockSessionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Session")).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Type:     entity.AccountTypeProducer,
		Email:    account.Email,
		Password: "StrongPass123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "refresh_token", output.RefreshToken)
}

func TestAccountService_RefreshToken_RotatesSession(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	accountID := uuid.New()
	claims := &service.Claims{
		AccountID:   accountID,
		AccountType: entity.AccountTypeStore,
		Type:        "refresh",
	}
	session := &entity.Session{
		ID:        uuid.New(),
		AccountID: accountID,
		TokenHash: "old_hash",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	fx.tokenService.EXPECT().ValidateToken("old_refresh").Return(claims, nil)
	fx.tokenService.EXPECT().HashToken("old_refresh").Return("old_hash")
	fx.tokenService.EXPECT().
		GenerateTokens(accountID, entity.AccountTypeStore).
		Return("new_access", "new_refresh", nil)
	fx.tokenService.EXPECT().HashToken("new_refresh").Return("new_hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockSessionRepo.EXPECT().FindByTokenHash(ctx, "old_hash").Return(session, nil)
			mockSessionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Session")).
				Run(func(ctx context.Context, newSession *entity.Session) {
					assert.Equal(t, "new_hash", newSession.TokenHash)
					assert.Equal(t, accountID, newSession.AccountID)
				}).
				Return(nil)
			mockSessionRepo.EXPECT().DeleteByTokenHash(ctx, "old_hash").Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old_refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
}

func TestAccountService_RefreshToken_RejectsAccessToken(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	claims := &service.Claims{
		AccountID:   uuid.New(),
		AccountType: entity.AccountTypeStore,
		Type:        "access",
	}

	fx.tokenService.EXPECT().ValidateToken("an_access_token").Return(claims, nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "an_access_token"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestAccountService_RefreshToken_ExpiredSession(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	accountID := uuid.New()
	claims := &service.Claims{
		AccountID:   accountID,
		AccountType: entity.AccountTypeProducer,
		Type:        "refresh",
	}
	session := &entity.Session{
		ID:        uuid.New(),
		AccountID: accountID,
		TokenHash: "old_hash",
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	fx.tokenService.EXPECT().ValidateToken("old_refresh").Return(claims, nil)
	fx.tokenService.EXPECT().HashToken("old_refresh").Return("old_hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockSessionRepo.EXPECT().FindByTokenHash(ctx, "old_hash").Return(session, nil)
			mockSessionRepo.EXPECT().DeleteByTokenHash(ctx, "old_hash").Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old_refresh"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestAccountService_Logout_DeletesSession(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("refresh_token").
		Return(&service.Claims{Type: "refresh"}, nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_hash")
	fx.sessionRepo.EXPECT().DeleteByTokenHash(ctx, "refresh_hash").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh_token"})

	require.NoError(t, err)
}

func TestAccountService_UpdateAccount_ReplacesPresentChildren(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	accountID := uuid.New()
	existing := &entity.Account{
		ID:          accountID,
		Type:        entity.AccountTypeProducer,
		DisplayName: "Highland Tea Estate",
		Status:      entity.AccountStatusActive,
	}

	newBio := "Now exporting worldwide"
	specialties := []usecase.SpecialtyInput{{Label: "Green Tea", Priority: 1}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(existing, nil).Once()
			mockAccountRepo.EXPECT().
				UpdateScalars(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					assert.Equal(t, newBio, account.Bio)
				}).
				Return(nil)
			mockAccountRepo.EXPECT().
				ReplaceChildren(ctx, accountID, mock.AnythingOfType("*entity.ChildCollections")).
				Run(func(ctx context.Context, id uuid.UUID, children *entity.ChildCollections) {
					require.NotNil(t, children.Specialties)
					assert.Len(t, *children.Specialties, 1)
					// Absent kinds stay untouched.
					assert.Nil(t, children.Languages)
					assert.Nil(t, children.Categories)
				}).
				Return(nil)
			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(existing, nil).Once()

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateAccount(ctx, &usecase.UpdateAccountInput{
		AccountID:   accountID,
		Bio:         &newBio,
		Specialties: &specialties,
	})

	require.NoError(t, err)
	assert.Equal(t, accountID, updated.ID)
}

func TestAccountService_UpdateAccount_RenameReallocatesSlug(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	accountID := uuid.New()
	existing := &entity.Account{
		ID:          accountID,
		Type:        entity.AccountTypeProducer,
		Slug:        "highland-tea-estate",
		DisplayName: "Highland Tea Estate",
		Status:      entity.AccountStatusActive,
	}

	newName := "Ceylon Leaf Collective"

	fx.slugAllocator.EXPECT().
		Allocate(ctx, newName, entity.AccountTypeProducer, accountID).
		Return("ceylon-leaf-collective", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(existing, nil).Once()
			mockAccountRepo.EXPECT().
				UpdateScalars(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					assert.Equal(t, newName, account.DisplayName)
					assert.Equal(t, "ceylon-leaf-collective", account.Slug)
				}).
				Return(nil)
			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(existing, nil).Once()

			return fn(mockFactory)
		})

	_, err := fx.service.UpdateAccount(ctx, &usecase.UpdateAccountInput{
		AccountID:   accountID,
		DisplayName: &newName,
	})

	require.NoError(t, err)
}

func TestAccountService_UpdateAccount_UnchangedNameKeepsSlug(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	accountID := uuid.New()
	existing := &entity.Account{
		ID:          accountID,
		Type:        entity.AccountTypeProducer,
		Slug:        "highland-tea-estate",
		DisplayName: "Highland Tea Estate",
		Status:      entity.AccountStatusActive,
	}

	sameName := "Highland Tea Estate"

	// No expectation on the slug allocator: re-asserting the same display
	// name must not touch the slug.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(existing, nil).Once()
			mockAccountRepo.EXPECT().
				UpdateScalars(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					assert.Equal(t, "highland-tea-estate", account.Slug)
				}).
				Return(nil)
			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(existing, nil).Once()

			return fn(mockFactory)
		})

	_, err := fx.service.UpdateAccount(ctx, &usecase.UpdateAccountInput{
		AccountID:   accountID,
		DisplayName: &sameName,
	})

	require.NoError(t, err)
}

func TestAccountService_UpdateAccount_ChildReplaceFailureAborts(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	accountID := uuid.New()
	existing := &entity.Account{
		ID:          accountID,
		Type:        entity.AccountTypeProducer,
		DisplayName: "Highland Tea Estate",
		Status:      entity.AccountStatusActive,
	}

	specialties := []usecase.SpecialtyInput{{Label: "Green Tea"}}
	storageErr := errors.New("insert account_specialties: connection reset")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			// No reload expectation: the closure must bail out as soon as
			// the child replacement fails so the transaction rolls back.
			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(existing, nil).Once()
			mockAccountRepo.EXPECT().
				UpdateScalars(ctx, mock.AnythingOfType("*entity.Account")).
				Return(nil)
			mockAccountRepo.EXPECT().
				ReplaceChildren(ctx, accountID, mock.AnythingOfType("*entity.ChildCollections")).
				Return(storageErr)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateAccount(ctx, &usecase.UpdateAccountInput{
		AccountID:   accountID,
		Specialties: &specialties,
	})

	assert.Nil(t, updated)
	require.Error(t, err)
	assert.True(t, errors.Is(err, storageErr))
}

func TestAccountService_UpdateAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	accountID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

			return fn(mockFactory)
		})

	updated, err := fx.service.UpdateAccount(ctx, &usecase.UpdateAccountInput{AccountID: accountID})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_DeactivateAccount_RevokesSessions(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	accountID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockAccountRepo.EXPECT().
				UpdateStatus(ctx, accountID, entity.AccountStatusInactive).
				Return(nil)
			mockSessionRepo.EXPECT().DeleteByAccountID(ctx, accountID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeactivateAccount(ctx, accountID)

	require.NoError(t, err)
}

func TestAccountService_GetAccountBySlug_NotFound(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindBySlug(ctx, entity.AccountTypeProducer, "missing-slug").
		Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.GetAccountBySlug(ctx, entity.AccountTypeProducer, "missing-slug")

	assert.Error(t, err)
	assert.Nil(t, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_ProfileQR_Success(t *testing.T) {
	fx := createTestAccountService(t, false, 0)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:   accountID,
		Type: entity.AccountTypeProducer,
		Slug: "highland-tea-estate",
	}

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	fx.qrService.EXPECT().
		GenerateProfileQR("highland-tea-estate").
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := fx.service.ProfileQR(ctx, accountID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

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

// connectionServiceFixtures holds all test dependencies for connection service tests.
type connectionServiceFixtures struct {
	service        usecase.ConnectionUsecase
	txManager      *mockRepo.MockTransactionManager
	connectionRepo *mockRepo.MockConnectionRepository
	publisher      *mockSvc.MockEventPublisher
}

func createTestConnectionService(t *testing.T) connectionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	connectionRepo := mockRepo.NewMockConnectionRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewConnectionService(ConnectionServiceParams{
		TxManager:      txManager,
		ConnectionRepo: connectionRepo,
		Publisher:      publisher,
		Logger:         newDiscardLogger(),
	})

	return connectionServiceFixtures{
		service:        svc,
		txManager:      txManager,
		connectionRepo: connectionRepo,
		publisher:      publisher,
	}
}

func activeAccount(id uuid.UUID, accountType entity.AccountType) *entity.Account {
	return &entity.Account{
		ID:     id,
		Type:   accountType,
		Status: entity.AccountStatusActive,
	}
}

func TestConnectionService_RequestConnection_Success(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	storeID := uuid.New()
	producerID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockConnectionRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ConnectionRepo().Return(mockConnectionRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, storeID).Return(activeAccount(storeID, entity.AccountTypeStore), nil)
			mockAccountRepo.EXPECT().FindByID(ctx, producerID).Return(activeAccount(producerID, entity.AccountTypeProducer), nil)

			mockConnectionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Connection")).
				Run(func(ctx context.Context, connection *entity.Connection) {
					assert.Equal(t, entity.ConnectionStatusPending, connection.Status)
					assert.Equal(t, entity.ConnectionTypeRegular, connection.Type)
					assert.Nil(t, connection.ConnectedAt)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	connection, err := fx.service.RequestConnection(ctx, &usecase.RequestConnectionInput{
		StoreID:     storeID,
		ProducerID:  producerID,
		InitiatedBy: entity.InitiatorStore,
		Note:        "Looking for a weekly tea supply",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ConnectionStatusPending, connection.Status)
	assert.Equal(t, "Looking for a weekly tea supply", connection.Note)
}

func TestConnectionService_RequestConnection_DuplicatePair(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	storeID := uuid.New()
	producerID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockConnectionRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ConnectionRepo().Return(mockConnectionRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, storeID).Return(activeAccount(storeID, entity.AccountTypeStore), nil)
			mockAccountRepo.EXPECT().FindByID(ctx, producerID).Return(activeAccount(producerID, entity.AccountTypeProducer), nil)

			// A row already exists for the pair, whatever its status.
			mockConnectionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Connection")).
				Return(repository.ErrDuplicateConnection)

			return fn(mockFactory)
		})

	connection, err := fx.service.RequestConnection(ctx, &usecase.RequestConnectionInput{
		StoreID:     storeID,
		ProducerID:  producerID,
		InitiatedBy: entity.InitiatorProducer,
	})

	assert.Error(t, err)
	assert.Nil(t, connection)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateConnection))
}

func TestConnectionService_RequestConnection_WrongVariant(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	storeID := uuid.New()
	producerID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			// A producer id supplied on the store side of the pair.
			mockAccountRepo.EXPECT().FindByID(ctx, storeID).Return(activeAccount(storeID, entity.AccountTypeProducer), nil)

			return fn(mockFactory)
		})

	connection, err := fx.service.RequestConnection(ctx, &usecase.RequestConnectionInput{
		StoreID:     storeID,
		ProducerID:  producerID,
		InitiatedBy: entity.InitiatorStore,
	})

	assert.Error(t, err)
	assert.Nil(t, connection)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestConnectionService_RequestConnection_ProducerMissing(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	storeID := uuid.New()
	producerID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, storeID).Return(activeAccount(storeID, entity.AccountTypeStore), nil)
			mockAccountRepo.EXPECT().FindByID(ctx, producerID).Return(nil, repository.ErrAccountNotFound)

			return fn(mockFactory)
		})

	connection, err := fx.service.RequestConnection(ctx, &usecase.RequestConnectionInput{
		StoreID:     storeID,
		ProducerID:  producerID,
		InitiatedBy: entity.InitiatorStore,
	})

	assert.Error(t, err)
	assert.Nil(t, connection)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestConnectionService_TransitionConnection_AcceptStampsAndCounts(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	storeID := uuid.New()
	producerID := uuid.New()
	pending := &entity.Connection{
		StoreID:     storeID,
		ProducerID:  producerID,
		Status:      entity.ConnectionStatusPending,
		Type:        entity.ConnectionTypeRegular,
		InitiatedBy: entity.InitiatorStore,
		RequestedAt: time.Now().Add(-time.Hour),
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockConnectionRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ConnectionRepo().Return(mockConnectionRepo)

			mockConnectionRepo.EXPECT().
				FindByPairForUpdate(ctx, storeID, producerID).
				Return(pending, nil)
			mockConnectionRepo.EXPECT().
				UpdateStatus(ctx, mock.AnythingOfType("*entity.Connection")).
				Run(func(ctx context.Context, connection *entity.Connection) {
					assert.Equal(t, entity.ConnectionStatusAccepted, connection.Status)
					assert.NotNil(t, connection.ConnectedAt)
				}).
				Return(nil)
			mockAccountRepo.EXPECT().IncrementConnectionCount(ctx, storeID).Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(ctx context.Context, event *service.DomainEvent) {
			assert.Equal(t, service.EventConnectionAccepted, event.Name)
		}).
		Return(nil)

	connection, err := fx.service.TransitionConnection(ctx, &usecase.TransitionConnectionInput{
		StoreID:    storeID,
		ProducerID: producerID,
		NextStatus: entity.ConnectionStatusAccepted,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ConnectionStatusAccepted, connection.Status)
	require.NotNil(t, connection.ConnectedAt)
}

func TestConnectionService_TransitionConnection_SecondAcceptIsNoOp(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	storeID := uuid.New()
	producerID := uuid.New()
	connectedAt := time.Now().Add(-time.Hour)
	accepted := &entity.Connection{
		StoreID:     storeID,
		ProducerID:  producerID,
		Status:      entity.ConnectionStatusAccepted,
		ConnectedAt: &connectedAt,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnectionRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().ConnectionRepo().Return(mockConnectionRepo)

			// No UpdateStatus, no counter increment, no event.
			mockConnectionRepo.EXPECT().
				FindByPairForUpdate(ctx, storeID, producerID).
				Return(accepted, nil)

			return fn(mockFactory)
		})

	connection, err := fx.service.TransitionConnection(ctx, &usecase.TransitionConnectionInput{
		StoreID:    storeID,
		ProducerID: producerID,
		NextStatus: entity.ConnectionStatusAccepted,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ConnectionStatusAccepted, connection.Status)
	assert.Equal(t, connectedAt.Unix(), connection.ConnectedAt.Unix())
}

func TestConnectionService_TransitionConnection_RejectedIsTerminal(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	storeID := uuid.New()
	producerID := uuid.New()
	rejected := &entity.Connection{
		StoreID:    storeID,
		ProducerID: producerID,
		Status:     entity.ConnectionStatusRejected,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnectionRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().ConnectionRepo().Return(mockConnectionRepo)
			mockConnectionRepo.EXPECT().
				FindByPairForUpdate(ctx, storeID, producerID).
				Return(rejected, nil)

			return fn(mockFactory)
		})

	connection, err := fx.service.TransitionConnection(ctx, &usecase.TransitionConnectionInput{
		StoreID:    storeID,
		ProducerID: producerID,
		NextStatus: entity.ConnectionStatusAccepted,
	})

	assert.Error(t, err)
	assert.Nil(t, connection)
	assert.True(t, errors.Is(err, domainerrors.ErrInvariantViolation))
}

func TestConnectionService_TransitionConnection_NotFound(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	storeID := uuid.New()
	producerID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnectionRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().ConnectionRepo().Return(mockConnectionRepo)
			mockConnectionRepo.EXPECT().
				FindByPairForUpdate(ctx, storeID, producerID).
				Return(nil, repository.ErrConnectionNotFound)

			return fn(mockFactory)
		})

	connection, err := fx.service.TransitionConnection(ctx, &usecase.TransitionConnectionInput{
		StoreID:    storeID,
		ProducerID: producerID,
		NextStatus: entity.ConnectionStatusBlocked,
	})

	assert.Error(t, err)
	assert.Nil(t, connection)
	assert.True(t, errors.Is(err, domainerrors.ErrConnectionNotFound))
}

func TestConnectionService_ListConnections_ClampsPageSize(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.connectionRepo.EXPECT().
		ListByAccount(ctx, mock.AnythingOfType("*repository.ConnectionFilter")).
		Run(func(ctx context.Context, filter *repository.ConnectionFilter) {
			assert.Equal(t, usecase.MaxPageSize, filter.Limit)
			assert.Equal(t, 0, filter.Offset)
			assert.Equal(t, entity.InitiatorStore, filter.Role)
		}).
		Return([]*entity.Connection{}, 0, nil)

	output, err := fx.service.ListConnections(ctx, &usecase.ListConnectionsInput{
		AccountID: accountID,
		Role:      entity.InitiatorStore,
		PerPage:   500,
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.MaxPageSize, output.Page.PerPage)
	assert.Equal(t, 1, output.Page.Page)
}

func TestConnectionService_GetConnection_Success(t *testing.T) {
	fx := createTestConnectionService(t)

	ctx := context.Background()
	storeID := uuid.New()
	producerID := uuid.New()
	existing := &entity.Connection{
		StoreID:    storeID,
		ProducerID: producerID,
		Status:     entity.ConnectionStatusPending,
	}

	fx.connectionRepo.EXPECT().FindByPair(ctx, storeID, producerID).Return(existing, nil)

	connection, err := fx.service.GetConnection(ctx, storeID, producerID)

	require.NoError(t, err)
	assert.Equal(t, existing, connection)
}

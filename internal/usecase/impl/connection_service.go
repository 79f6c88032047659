package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "github.com/ushankamesh-devX/helatrade-sub000/internal/delivery/context"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"
	domainerrors "github.com/ushankamesh-devX/helatrade-sub000/internal/domain/errors"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/repository"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/service"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// connectionService implements the ConnectionUsecase interface.
type connectionService struct {
	txManager      repository.TransactionManager
	connectionRepo repository.ConnectionRepository
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// ConnectionServiceParams holds dependencies for connectionService, injected by Fx.
type ConnectionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ConnectionRepo repository.ConnectionRepository
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewConnectionService is the constructor for connectionService.
func NewConnectionService(params ConnectionServiceParams) usecase.ConnectionUsecase {
	return &connectionService{
		txManager:      params.TxManager,
		connectionRepo: params.ConnectionRepo,
		publisher:      params.Publisher,
		logger:         params.Logger,
	}
}

func (srv *connectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestConnection opens a pending connection between a store and a
// producer. Exactly one row ever exists per pair; a second request against
// the same pair fails regardless of the existing row's status.
func (srv *connectionService) RequestConnection(ctx context.Context, input *usecase.RequestConnectionInput) (*entity.Connection, error) {
	srv.log(ctx).Info("Requesting connection", slog.Any("storeID", input.StoreID), slog.Any("producerID", input.ProducerID))

	if input.StoreID == uuid.Nil || input.ProducerID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("store and producer ids must be set")
	}
	if !input.InitiatedBy.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown initiator role")
	}

	newConnection := &entity.Connection{
		StoreID:     input.StoreID,
		ProducerID:  input.ProducerID,
		Status:      entity.ConnectionStatusPending,
		Type:        entity.ConnectionTypeRegular,
		InitiatedBy: input.InitiatedBy,
		Note:        input.Note,
		RequestedAt: time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.verifyEndpoint(ctx, repoFactory.AccountRepo(), input.StoreID, entity.AccountTypeStore); err != nil {
			return err
		}
		if err := srv.verifyEndpoint(ctx, repoFactory.AccountRepo(), input.ProducerID, entity.AccountTypeProducer); err != nil {
			return err
		}

		if err := repoFactory.ConnectionRepo().Create(ctx, newConnection); err != nil {
			if errors.Is(err, repository.ErrDuplicateConnection) {
				return domainerrors.ErrDuplicateConnection.WrapMessage("connection request failed")
			}

			return errors.Wrap(err, "failed to create connection")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Connection request failed", slog.Any("storeID", input.StoreID), slog.Any("producerID", input.ProducerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute connection request transaction")
	}

	return newConnection, nil
}

// verifyEndpoint checks that one side of the pair exists, has the expected
// variant, and is active.
func (srv *connectionService) verifyEndpoint(ctx context.Context, accountRepo repository.AccountRepository, id uuid.UUID, wantType entity.AccountType) error {
	account, err := accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage(wantType.String() + " account not found")
		}

		return errors.Wrap(err, "failed to load connection endpoint")
	}
	if account.Type != wantType {
		return domainerrors.ErrValidationFailed.WrapMessage("account is not a " + wantType.String())
	}
	if !account.IsActive() {
		return domainerrors.ErrForbidden.WrapMessage(wantType.String() + " account is not active")
	}

	return nil
}

// TransitionConnection moves a connection to a new status under a row lock.
// Re-asserting the current status is an idempotent no-op; the first move to
// accepted stamps ConnectedAt and bumps the store's connection counter,
// exactly once, inside the same transaction.
func (srv *connectionService) TransitionConnection(ctx context.Context, input *usecase.TransitionConnectionInput) (*entity.Connection, error) {
	srv.log(ctx).Info("Transitioning connection",
		slog.Any("storeID", input.StoreID),
		slog.Any("producerID", input.ProducerID),
		slog.Any("nextStatus", input.NextStatus),
	)

	if !input.NextStatus.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown connection status")
	}

	var result *entity.Connection
	var accepted bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		connectionRepo := repoFactory.ConnectionRepo()

		connection, err := connectionRepo.FindByPairForUpdate(ctx, input.StoreID, input.ProducerID)
		if err != nil {
			if errors.Is(err, repository.ErrConnectionNotFound) {
				return domainerrors.ErrConnectionNotFound.WrapMessage("connection transition failed")
			}

			return errors.Wrap(err, "failed to load connection for transition")
		}

		if connection.Status == input.NextStatus {
			// Already there; nothing to write, nothing to count.
			result = connection

			return nil
		}

		if !connection.Status.CanTransitionTo(input.NextStatus) {
			return domainerrors.ErrInvariantViolation.WrapMessage(
				"cannot transition connection from " + connection.Status.String() + " to " + input.NextStatus.String(),
			)
		}

		connection.Status = input.NextStatus
		if input.NextStatus == entity.ConnectionStatusAccepted && connection.ConnectedAt == nil {
			now := time.Now()
			connection.ConnectedAt = &now
			accepted = true
		}

		if err := connectionRepo.UpdateStatus(ctx, connection); err != nil {
			return errors.Wrap(err, "failed to update connection status")
		}

		if accepted {
			if err := repoFactory.AccountRepo().IncrementConnectionCount(ctx, connection.StoreID); err != nil {
				return errors.Wrap(err, "failed to increment store connection count")
			}
		}
		result = connection

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Connection transition failed", slog.Any("storeID", input.StoreID), slog.Any("producerID", input.ProducerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute connection transition transaction")
	}

	if accepted {
		srv.publishEvent(ctx, &service.DomainEvent{
			RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
			Name:       service.EventConnectionAccepted,
			AccountID:  result.StoreID.String(),
			OccurredAt: time.Now(),
			Attributes: map[string]string{
				"producer_id": result.ProducerID.String(),
			},
		})
	}

	return result, nil
}

func (srv *connectionService) publishEvent(ctx context.Context, event *service.DomainEvent) {
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish domain event", slog.String("event", event.Name), slog.Any("error", err))
	}
}

// GetConnection retrieves the single row for a store/producer pair.
func (srv *connectionService) GetConnection(ctx context.Context, storeID, producerID uuid.UUID) (*entity.Connection, error) {
	connection, err := srv.connectionRepo.FindByPair(ctx, storeID, producerID)
	if err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return nil, domainerrors.ErrConnectionNotFound.WrapMessage("connection lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find connection")
	}

	return connection, nil
}

// ListConnections returns one page of an account's connections.
func (srv *connectionService) ListConnections(ctx context.Context, input *usecase.ListConnectionsInput) (*usecase.ConnectionListOutput, error) {
	if input.Role != "" && !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown connection role")
	}
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown connection status")
	}

	page, perPage := normalizePage(input.Page, input.PerPage)

	connections, total, err := srv.connectionRepo.ListByAccount(ctx, &repository.ConnectionFilter{
		AccountID: input.AccountID,
		Role:      input.Role,
		Status:    input.Status,
		Limit:     perPage,
		Offset:    (page - 1) * perPage,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connections")
	}

	return &usecase.ConnectionListOutput{
		Connections: connections,
		Page:        buildPageMeta(page, perPage, total),
	}, nil
}

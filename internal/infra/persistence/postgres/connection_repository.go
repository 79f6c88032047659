package postgres

import (
	"context"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"
	domainerrors "github.com/ushankamesh-devX/helatrade-sub000/internal/domain/errors"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/repository"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// connectionRepository implements the repository.ConnectionRepository interface using GORM.
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *gorm.DB) repository.ConnectionRepository {
	return &connectionRepository{
		db: db,
	}
}

// Create inserts a new connection row. The composite primary key on
// (store_id, producer_id) rejects a second row for the same pair.
func (repo *connectionRepository) Create(ctx context.Context, connection *entity.Connection) error {
	connectionM := fromConnectionDomain(connection)

	if err := repo.db.WithContext(ctx).Create(connectionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicateConnection, err.Error())
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrConnectionNotFound
		}
		if isStorageUnavailable(err) {
			return domainerrors.NewTransientError(err, "create connection")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create connection")
	}

	connection.UpdatedAt = connectionM.UpdatedAt

	return nil
}

// FindByPair retrieves the single row for a store/producer pair.
func (repo *connectionRepository) FindByPair(ctx context.Context, storeID, producerID uuid.UUID) (*entity.Connection, error) {
	return repo.findByPair(ctx, repo.db, storeID, producerID)
}

// FindByPairForUpdate retrieves the pair's row with a FOR UPDATE row lock.
// Must run inside a transaction or the lock releases immediately.
func (repo *connectionRepository) FindByPairForUpdate(ctx context.Context, storeID, producerID uuid.UUID) (*entity.Connection, error) {
	locked := repo.db.Clauses(clause.Locking{Strength: "UPDATE"})

	return repo.findByPair(ctx, locked, storeID, producerID)
}

func (repo *connectionRepository) findByPair(ctx context.Context, db *gorm.DB, storeID, producerID uuid.UUID) (*entity.Connection, error) {
	var connectionM model.ConnectionModel

	if err := db.WithContext(ctx).
		Where("store_id = ? AND producer_id = ?", storeID, producerID).
		First(&connectionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}
		if isStorageUnavailable(err) {
			return nil, domainerrors.NewTransientError(err, "find connection")
		}

		return nil, errors.Wrap(err, "failed to find connection")
	}

	return toConnectionDomain(&connectionM), nil
}

// UpdateStatus writes the status, type and timestamps of an existing row.
func (repo *connectionRepository) UpdateStatus(ctx context.Context, connection *entity.Connection) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConnectionModel{}).
		Where("store_id = ? AND producer_id = ?", connection.StoreID, connection.ProducerID).
		Select("status", "type", "connected_at").
		Updates(&model.ConnectionModel{
			Status:      connection.Status.String(),
			Type:        string(connection.Type),
			ConnectedAt: connection.ConnectedAt,
		})
	if result.Error != nil {
		if isStorageUnavailable(result.Error) {
			return domainerrors.NewTransientError(result.Error, "update connection status")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update connection status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

// ListByAccount returns one page of connections where the account sits on
// the side named by filter.Role, plus the total match count.
func (repo *connectionRepository) ListByAccount(ctx context.Context, filter *repository.ConnectionFilter) ([]*entity.Connection, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.ConnectionModel{})

	switch filter.Role {
	case entity.InitiatorStore:
		base = base.Where("store_id = ?", filter.AccountID)
	case entity.InitiatorProducer:
		base = base.Where("producer_id = ?", filter.AccountID)
	default:
		base = base.Where("store_id = ? OR producer_id = ?", filter.AccountID, filter.AccountID)
	}

	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		if isStorageUnavailable(err) {
			return nil, 0, domainerrors.NewTransientError(err, "count connections")
		}

		return nil, 0, errors.Wrap(err, "failed to count connections")
	}

	query := base.Order("requested_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var connectionModels []*model.ConnectionModel
	if err := query.Find(&connectionModels).Error; err != nil {
		if isStorageUnavailable(err) {
			return nil, 0, domainerrors.NewTransientError(err, "list connections")
		}

		return nil, 0, errors.Wrap(err, "failed to list connections")
	}

	connections := make([]*entity.Connection, 0, len(connectionModels))
	for _, connectionM := range connectionModels {
		connections = append(connections, toConnectionDomain(connectionM))
	}

	return connections, total, nil
}

// --- Mapper Functions ---

// toConnectionDomain converts a GORM ConnectionModel to a domain Connection entity.
func toConnectionDomain(data *model.ConnectionModel) *entity.Connection {
	if data == nil {
		return nil
	}

	return &entity.Connection{
		StoreID:     data.StoreID,
		ProducerID:  data.ProducerID,
		Status:      entity.ConnectionStatus(data.Status),
		Type:        entity.ConnectionType(data.Type),
		InitiatedBy: entity.InitiatorRole(data.InitiatedBy),
		Note:        data.Note,
		RequestedAt: data.RequestedAt,
		ConnectedAt: data.ConnectedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromConnectionDomain converts a domain Connection entity to a GORM ConnectionModel for persistence.
func fromConnectionDomain(data *entity.Connection) *model.ConnectionModel {
	if data == nil {
		return nil
	}

	return &model.ConnectionModel{
		StoreID:     data.StoreID,
		ProducerID:  data.ProducerID,
		Status:      data.Status.String(),
		Type:        string(data.Type),
		InitiatedBy: string(data.InitiatedBy),
		Note:        data.Note,
		RequestedAt: data.RequestedAt,
		ConnectedAt: data.ConnectedAt,
	}
}

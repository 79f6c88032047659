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
)

// sessionRepository implements the repository.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// Create persists a new refresh-token session.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isStorageUnavailable(err) {
			return domainerrors.NewTransientError(err, "create session")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByTokenHash retrieves the session matching the given token hash.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}
		if isStorageUnavailable(err) {
			return nil, domainerrors.NewTransientError(err, "find session")
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return toSessionDomain(&sessionM), nil
}

// CountByAccountID returns the number of sessions for the account.
func (repo *sessionRepository) CountByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("account_id = ?", accountID).
		Count(&count).Error; err != nil {
		if isStorageUnavailable(err) {
			return 0, domainerrors.NewTransientError(err, "count sessions")
		}

		return 0, errors.Wrap(err, "failed to count sessions")
	}

	return count, nil
}

// DeleteOldestByAccountID evicts the account's oldest session by creation time.
func (repo *sessionRepository) DeleteOldestByAccountID(ctx context.Context, accountID uuid.UUID) error {
	subQuery := repo.db.
		Model(&model.SessionModel{}).
		Select("id").
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Limit(1)

	if err := repo.db.WithContext(ctx).
		Where("id IN (?)", subQuery).
		Delete(&model.SessionModel{}).Error; err != nil {
		if isStorageUnavailable(err) {
			return domainerrors.NewTransientError(err, "evict oldest session")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to evict oldest session")
	}

	return nil
}

// DeleteByTokenHash removes the session matching the given token hash.
// Deleting a hash with no matching row is not an error.
func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	if err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Delete(&model.SessionModel{}).Error; err != nil {
		if isStorageUnavailable(err) {
			return domainerrors.NewTransientError(err, "delete session")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}

// DeleteByAccountID removes every session belonging to the account.
func (repo *sessionRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.SessionModel{}).Error; err != nil {
		if isStorageUnavailable(err) {
			return domainerrors.NewTransientError(err, "delete account sessions")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete account sessions")
	}

	return nil
}

// --- Mapper Functions ---

func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:        data.ID,
		AccountID: data.AccountID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
	}
}

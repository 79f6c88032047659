package repository

import (
	"context"
	"errors"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session matches the token hash.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository manages refresh-token sessions. Only token hashes are
// stored, never raw tokens.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves the session matching the given hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// CountByAccountID returns the number of live sessions for the account.
	CountByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error)

	// DeleteOldestByAccountID evicts the account's oldest session. Used to
	// enforce the configured concurrent-session ceiling.
	DeleteOldestByAccountID(ctx context.Context, accountID uuid.UUID) error

	// DeleteByTokenHash removes the session matching the given hash.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByAccountID removes every session for the account.
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error
}

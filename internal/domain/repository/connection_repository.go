// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for connection persistence.
var (
	// ErrConnectionNotFound is returned when no row exists for the pair.
	ErrConnectionNotFound = errors.New("connection not found")
	// ErrDuplicateConnection is returned when a row already exists for the pair.
	ErrDuplicateConnection = errors.New("connection already exists for this pair")
)

// ConnectionFilter narrows and pages connection listings for one account.
type ConnectionFilter struct {
	AccountID uuid.UUID
	Role      entity.InitiatorRole // Which side of the pair AccountID is on.
	Status    entity.ConnectionStatus
	Limit     int
	Offset    int
}

// ConnectionRepository defines the standard operations for connection persistence.
type ConnectionRepository interface {
	// Create inserts a new pending connection row. The storage-level unique
	// constraint on (store_id, producer_id) is ground truth; violations map
	// to ErrDuplicateConnection.
	Create(ctx context.Context, connection *entity.Connection) error

	// FindByPair retrieves the single row for a store/producer pair.
	FindByPair(ctx context.Context, storeID, producerID uuid.UUID) (*entity.Connection, error)

	// FindByPairForUpdate retrieves the pair's row under a row lock so the
	// previous status read and the following write are one atomic step.
	FindByPairForUpdate(ctx context.Context, storeID, producerID uuid.UUID) (*entity.Connection, error)

	// UpdateStatus writes the connection's status and timestamps.
	UpdateStatus(ctx context.Context, connection *entity.Connection) error

	// ListByAccount returns one page of connections for one account plus the
	// total match count.
	ListByAccount(ctx context.Context, filter *ConnectionFilter) ([]*entity.Connection, int64, error)
}

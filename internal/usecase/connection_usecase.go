package usecase

import (
	"context"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"

	"github.com/google/uuid"
)

// RequestConnectionInput defines the data required to open a pending
// connection between a store and a producer.
type RequestConnectionInput struct {
	StoreID     uuid.UUID            `json:"store_id"`
	ProducerID  uuid.UUID            `json:"producer_id"`
	InitiatedBy entity.InitiatorRole `json:"initiated_by"`
	Note        string               `json:"note"`
}

// TransitionConnectionInput defines the data required to move an existing
// connection to a new status.
type TransitionConnectionInput struct {
	StoreID    uuid.UUID               `json:"store_id"`
	ProducerID uuid.UUID               `json:"producer_id"`
	NextStatus entity.ConnectionStatus `json:"next_status"`
}

// ListConnectionsInput carries the connection listing filters and pagination
// for one account.
type ListConnectionsInput struct {
	AccountID uuid.UUID               `json:"-"`
	Role      entity.InitiatorRole    `json:"role"`   // Which side of the pair AccountID is on.
	Status    entity.ConnectionStatus `json:"status"` // Empty for all statuses.
	Page      int                     `json:"page"`
	PerPage   int                     `json:"per_page"`
}

// ConnectionListOutput returns one page of connections plus page metadata.
type ConnectionListOutput struct {
	Connections []*entity.Connection
	Page        PageMeta
}

// ConnectionUsecase defines the interface for store↔producer connection operations.
type ConnectionUsecase interface {
	RequestConnection(ctx context.Context, input *RequestConnectionInput) (*entity.Connection, error)
	TransitionConnection(ctx context.Context, input *TransitionConnectionInput) (*entity.Connection, error)
	GetConnection(ctx context.Context, storeID, producerID uuid.UUID) (*entity.Connection, error)
	ListConnections(ctx context.Context, input *ListConnectionsInput) (*ConnectionListOutput, error)
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionStatus is the lifecycle status of a store↔producer connection.
type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusBlocked  ConnectionStatus = "blocked"
	ConnectionStatusRejected ConnectionStatus = "rejected"
)

// String returns the string representation of the ConnectionStatus.
func (s ConnectionStatus) String() string {
	return string(s)
}

// IsValid checks if the ConnectionStatus is a valid value.
func (s ConnectionStatus) IsValid() bool {
	switch s {
	case ConnectionStatusPending, ConnectionStatusAccepted, ConnectionStatusBlocked, ConnectionStatusRejected:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the state machine permits moving from the
// current status to next. Re-asserting the current status is always allowed
// and treated as an idempotent no-op by the caller.
func (s ConnectionStatus) CanTransitionTo(next ConnectionStatus) bool {
	if s == next {
		return true
	}

	switch s {
	case ConnectionStatusPending:
		return next == ConnectionStatusAccepted || next == ConnectionStatusRejected || next == ConnectionStatusBlocked
	case ConnectionStatusAccepted:
		return next == ConnectionStatusBlocked
	default:
		// rejected and blocked are terminal.
		return false
	}
}

// ConnectionType grades the commercial weight of an accepted connection.
type ConnectionType string

const (
	ConnectionTypeRegular   ConnectionType = "regular"
	ConnectionTypePreferred ConnectionType = "preferred"
	ConnectionTypeExclusive ConnectionType = "exclusive"
)

// IsValid checks if the ConnectionType is a valid value.
func (t ConnectionType) IsValid() bool {
	switch t {
	case ConnectionTypeRegular, ConnectionTypePreferred, ConnectionTypeExclusive:
		return true
	default:
		return false
	}
}

// InitiatorRole records which side of the pair requested the connection.
type InitiatorRole string

const (
	InitiatorStore    InitiatorRole = "store"
	InitiatorProducer InitiatorRole = "producer"
)

// IsValid checks if the InitiatorRole is a valid value.
func (r InitiatorRole) IsValid() bool {
	return r == InitiatorStore || r == InitiatorProducer
}

// Connection is a directed business relationship between one store and one
// producer. At most one row exists per (StoreID, ProducerID) pair regardless
// of status; rows are never deleted, only transitioned.
type Connection struct {
	StoreID     uuid.UUID
	ProducerID  uuid.UUID
	Status      ConnectionStatus
	Type        ConnectionType
	InitiatedBy InitiatorRole
	Note        string     // Free-text note supplied with the request.
	RequestedAt time.Time  // When the pending row was created.
	ConnectedAt *time.Time // Set once, when the row first reaches accepted.
	UpdatedAt   time.Time
}

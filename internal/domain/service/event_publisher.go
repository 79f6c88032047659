package service

import (
	"context"
	"time"
)

// Event names emitted by the platform.
const (
	EventAccountRegistered  = "account.registered"
	EventConnectionAccepted = "connection.accepted"
)

// DomainEvent is the envelope published to the message queue.
type DomainEvent struct {
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	Name       string            `json:"name"`
	AccountID  string            `json:"account_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish publishes a domain event for async consumers.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when the email is taken within the type namespace.
	ErrDuplicateEmail = errors.New("email already registered for this account type")
	// ErrDuplicateSlug is returned when the slug is taken within the type namespace.
	ErrDuplicateSlug = errors.New("slug already allocated for this account type")
)

// SortField is one entry of the listing sort allow-list. Anything outside the
// list falls back to SortByNewest, never to an arbitrary column.
type SortField string

const (
	SortByNewest      SortField = "newest"
	SortByName        SortField = "name"
	SortByConnections SortField = "connections"
)

// ListFilter carries the Query/Filter Engine's filter and pagination inputs.
type ListFilter struct {
	Type       entity.AccountType
	Search     string // Matched against display name, location and bio.
	CategoryID int64  // Account must own at least one matching category link.
	Location   string // Substring match on location.
	Verified   *bool
	Sort       SortField
	Limit      int
	Offset     int
}

// AccountRepository defines the standard operations for account persistence.
type AccountRepository interface {
	// Create persists a new account together with all supplied child
	// collections as one unit. The implementation maps uniqueness
	// violations to ErrDuplicateEmail / ErrDuplicateSlug.
	Create(ctx context.Context, account *entity.Account) error

	// UpdateScalars modifies the account row's scalar fields only; child
	// collections are untouched.
	UpdateScalars(ctx context.Context, account *entity.Account) error

	// ReplaceChildren deletes and reinserts every child-collection kind
	// present in children. Absent kinds are left as they are.
	ReplaceChildren(ctx context.Context, accountID uuid.UUID, children *entity.ChildCollections) error

	// FindByID retrieves a single account, hydrating all child collections.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by email within one type namespace.
	FindByEmail(ctx context.Context, accountType entity.AccountType, email string) (*entity.Account, error)

	// FindBySlug retrieves a single account by slug within one type namespace.
	FindBySlug(ctx context.Context, accountType entity.AccountType, slug string) (*entity.Account, error)

	// SlugExists reports whether slug is taken in the type namespace,
	// ignoring the row identified by excludeID (uuid.Nil to exclude none).
	SlugExists(ctx context.Context, accountType entity.AccountType, slug string, excludeID uuid.UUID) (bool, error)

	// List returns one page of accounts matching the filter, hydrated, plus
	// the total match count.
	List(ctx context.Context, filter *ListFilter) ([]*entity.Account, int64, error)

	// UpdateStatus sets the lifecycle status of an account.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) error

	// IncrementConnectionCount bumps the persistent connection counter by one.
	IncrementConnectionCount(ctx context.Context, id uuid.UUID) error
}

package service

import (
	"context"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"

	"github.com/google/uuid"
)

// SlugAllocator derives URL-safe handles from display names and makes them
// unique within an account type's namespace.
type SlugAllocator interface {
	// Allocate returns a free slug for the given name. When the base form is
	// taken it probes numeric suffixes. excludeID names an existing account
	// whose own slug does not count as a collision, uuid.Nil to exclude none.
	Allocate(ctx context.Context, name string, accountType entity.AccountType, excludeID uuid.UUID) (string, error)
}

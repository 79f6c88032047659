package repository

import (
	"context"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"
)

// CategoryRepository reads the shared category registry.
type CategoryRepository interface {
	// FilterActiveIDs returns the subset of ids that refer to active
	// categories, preserving the input order.
	FilterActiveIDs(ctx context.Context, ids []int64) ([]int64, error)

	// ListActive returns every active category.
	ListActive(ctx context.Context) ([]*entity.Category, error)
}

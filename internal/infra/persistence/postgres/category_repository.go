package postgres

import (
	"context"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"
	domainerrors "github.com/ushankamesh-devX/helatrade-sub000/internal/domain/errors"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/repository"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface using GORM.
// The category registry is read-only from this service's point of view.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// FilterActiveIDs returns the subset of ids referring to active categories,
// in the same order the caller supplied them.
func (repo *categoryRepository) FilterActiveIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var activeIDs []int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id IN ? AND active = ?", ids, true).
		Pluck("id", &activeIDs).Error; err != nil {
		if isStorageUnavailable(err) {
			return nil, domainerrors.NewTransientError(err, "filter categories")
		}

		return nil, errors.Wrap(err, "failed to filter active categories")
	}

	active := make(map[int64]struct{}, len(activeIDs))
	for _, id := range activeIDs {
		active[id] = struct{}{}
	}

	// Re-walk the input so the result keeps the caller's ordering.
	filtered := make([]int64, 0, len(activeIDs))
	for _, id := range ids {
		if _, ok := active[id]; ok {
			filtered = append(filtered, id)
			delete(active, id)
		}
	}

	return filtered, nil
}

// ListActive returns every active category ordered by name.
func (repo *categoryRepository) ListActive(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel
	if err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		if isStorageUnavailable(err) {
			return nil, domainerrors.NewTransientError(err, "list categories")
		}

		return nil, errors.Wrap(err, "failed to list active categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, &entity.Category{
			ID:     categoryM.ID,
			Name:   categoryM.Name,
			Active: categoryM.Active,
		})
	}

	return categories, nil
}

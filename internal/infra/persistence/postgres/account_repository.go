// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// Names of the composite unique indexes on the accounts table. Used to tell
// which uniqueness rule a rejected insert actually violated.
const (
	accountSlugIndex  = "idx_accounts_type_slug"
	accountEmailIndex = "idx_accounts_type_email"
)

// accountChildAssociations lists every child collection preloaded when
// hydrating an account.
var accountChildAssociations = []string{
	"Categories",
	"Specialties",
	"Certifications",
	"Languages",
	"BusinessHours",
	"DeliveryOptions",
	"PaymentMethods",
}

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create persists a new account together with all supplied child collections.
// GORM's Create with associations inserts the account row and every child
// table row as one statement batch.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatedConstraint(err, accountEmailIndex) {
				return errors.Wrap(repository.ErrDuplicateEmail, err.Error())
			}
			if violatedConstraint(err, accountSlugIndex) {
				return errors.Wrap(repository.ErrDuplicateSlug, err.Error())
			}

			return errors.Wrap(repository.ErrDuplicateEmail, err.Error())
		}
		if isStorageUnavailable(err) {
			return domainerrors.NewTransientError(err, "create account")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Propagate generated values back to the entity.
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// UpdateScalars modifies the account row's profile scalar fields and slug.
// Child collections and identity columns (type, email, password) are left
// untouched; the slug is included because it follows the display name.
func (repo *accountRepository) UpdateScalars(ctx context.Context, account *entity.Account) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Select("slug", "display_name", "verified", "bio", "location", "store_size", "business_type").
		Updates(&model.AccountModel{
			Slug:         account.Slug,
			DisplayName:  account.DisplayName,
			Verified:     account.Verified,
			Bio:          account.Bio,
			Location:     account.Location,
			StoreSize:    account.StoreSize,
			BusinessType: account.BusinessType,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) && violatedConstraint(result.Error, accountSlugIndex) {
			return repository.ErrDuplicateSlug
		}
		if isStorageUnavailable(result.Error) {
			return domainerrors.NewTransientError(result.Error, "update account")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// ReplaceChildren deletes and reinserts every child-collection kind present
// in children. Absent kinds are left as they are. Callers run this inside a
// transaction so the delete and insert land or vanish together.
func (repo *accountRepository) ReplaceChildren(ctx context.Context, accountID uuid.UUID, children *entity.ChildCollections) error {
	db := repo.db.WithContext(ctx)

	if children.Categories != nil {
		rows := make([]model.AccountCategoryModel, 0, len(*children.Categories))
		for _, link := range *children.Categories {
			rows = append(rows, model.AccountCategoryModel{AccountID: accountID, CategoryID: link.CategoryID})
		}
		if err := replaceChildRows(db, accountID, &model.AccountCategoryModel{}, rows); err != nil {
			return err
		}
	}

	if children.Specialties != nil {
		rows := make([]model.SpecialtyModel, 0, len(*children.Specialties))
		for _, item := range *children.Specialties {
			rows = append(rows, model.SpecialtyModel{AccountID: accountID, Label: item.Label, Priority: item.Priority})
		}
		if err := replaceChildRows(db, accountID, &model.SpecialtyModel{}, rows); err != nil {
			return err
		}
	}

	if children.Certifications != nil {
		rows := make([]model.CertificationModel, 0, len(*children.Certifications))
		for _, item := range *children.Certifications {
			rows = append(rows, model.CertificationModel{
				AccountID:      accountID,
				Name:           item.Name,
				Issuer:         item.Issuer,
				IssuedAt:       item.IssuedAt,
				ExpiresAt:      item.ExpiresAt,
				CertificateURL: item.CertificateURL,
			})
		}
		if err := replaceChildRows(db, accountID, &model.CertificationModel{}, rows); err != nil {
			return err
		}
	}

	if children.Languages != nil {
		rows := make([]model.LanguageModel, 0, len(*children.Languages))
		for _, item := range *children.Languages {
			rows = append(rows, model.LanguageModel{AccountID: accountID, Name: item.Name, Proficiency: item.Proficiency.String()})
		}
		if err := replaceChildRows(db, accountID, &model.LanguageModel{}, rows); err != nil {
			return err
		}
	}

	if children.BusinessHours != nil {
		rows := make([]model.BusinessHourModel, 0, len(*children.BusinessHours))
		for _, item := range *children.BusinessHours {
			rows = append(rows, model.BusinessHourModel{
				AccountID: accountID,
				Weekday:   item.Weekday,
				Opens:     item.Opens,
				Closes:    item.Closes,
				Closed:    item.Closed,
			})
		}
		if err := replaceChildRows(db, accountID, &model.BusinessHourModel{}, rows); err != nil {
			return err
		}
	}

	if children.DeliveryOptions != nil {
		rows := make([]model.DeliveryOptionModel, 0, len(*children.DeliveryOptions))
		for _, item := range *children.DeliveryOptions {
			rows = append(rows, model.DeliveryOptionModel{
				AccountID: accountID,
				Type:      item.Type,
				Available: item.Available,
				Cost:      item.Cost,
			})
		}
		if err := replaceChildRows(db, accountID, &model.DeliveryOptionModel{}, rows); err != nil {
			return err
		}
	}

	if children.PaymentMethods != nil {
		rows := make([]model.PaymentMethodModel, 0, len(*children.PaymentMethods))
		for _, item := range *children.PaymentMethods {
			rows = append(rows, model.PaymentMethodModel{
				AccountID: accountID,
				Type:      item.Type,
				Available: item.Available,
				Provider:  item.Provider,
			})
		}
		if err := replaceChildRows(db, accountID, &model.PaymentMethodModel{}, rows); err != nil {
			return err
		}
	}

	return nil
}

// replaceChildRows wipes one child table for the account and inserts the new
// rows, if any.
func replaceChildRows[T any](db *gorm.DB, accountID uuid.UUID, emptyModel *T, rows []T) error {
	if err := db.Where("account_id = ?", accountID).Delete(emptyModel).Error; err != nil {
		if isStorageUnavailable(err) {
			return domainerrors.NewTransientError(err, "replace child collection")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to clear child collection")
	}

	if len(rows) == 0 {
		return nil
	}

	if err := db.Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}
		if isStorageUnavailable(err) {
			return domainerrors.NewTransientError(err, "replace child collection")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert child collection")
	}

	return nil
}

// FindByID retrieves a single account, hydrating all child collections.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	query := repo.db.WithContext(ctx)
	for _, association := range accountChildAssociations {
		query = query.Preload(association)
	}

	if err := query.Where("id = ?", id).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}
		if isStorageUnavailable(err) {
			return nil, domainerrors.NewTransientError(err, "find account by id")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by email within one type namespace.
func (repo *accountRepository) FindByEmail(ctx context.Context, accountType entity.AccountType, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	query := repo.db.WithContext(ctx)
	for _, association := range accountChildAssociations {
		query = query.Preload(association)
	}

	if err := query.
		Where("account_type = ? AND email = ?", accountType.String(), email).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}
		if isStorageUnavailable(err) {
			return nil, domainerrors.NewTransientError(err, "find account by email")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// FindBySlug retrieves a single account by slug within one type namespace.
func (repo *accountRepository) FindBySlug(ctx context.Context, accountType entity.AccountType, slug string) (*entity.Account, error) {
	var accountM model.AccountModel

	query := repo.db.WithContext(ctx)
	for _, association := range accountChildAssociations {
		query = query.Preload(association)
	}

	if err := query.
		Where("account_type = ? AND slug = ?", accountType.String(), slug).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}
		if isStorageUnavailable(err) {
			return nil, domainerrors.NewTransientError(err, "find account by slug")
		}

		return nil, errors.Wrap(err, "failed to find account by slug")
	}

	return toAccountDomain(&accountM), nil
}

// SlugExists reports whether slug is taken in the type namespace.
func (repo *accountRepository) SlugExists(ctx context.Context, accountType entity.AccountType, slug string, excludeID uuid.UUID) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("account_type = ? AND slug = ?", accountType.String(), slug)

	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		if isStorageUnavailable(err) {
			return false, domainerrors.NewTransientError(err, "check slug")
		}

		return false, errors.Wrap(err, "failed to check slug existence")
	}

	return count > 0, nil
}

// List returns one page of accounts matching the filter plus the total match
// count. The sort column comes from a fixed allow-list, never from raw input.
func (repo *accountRepository) List(ctx context.Context, filter *repository.ListFilter) ([]*entity.Account, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.AccountModel{})

	if filter.Type != "" {
		base = base.Where("account_type = ?", filter.Type.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("display_name ILIKE ? OR location ILIKE ? OR bio ILIKE ?", pattern, pattern, pattern)
	}
	if filter.Location != "" {
		base = base.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.Verified != nil {
		base = base.Where("verified = ?", *filter.Verified)
	}
	if filter.CategoryID != 0 {
		base = base.Where(
			"EXISTS (SELECT 1 FROM account_categories ac WHERE ac.account_id = accounts.id AND ac.category_id = ?)",
			filter.CategoryID,
		)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		if isStorageUnavailable(err) {
			return nil, 0, domainerrors.NewTransientError(err, "count accounts")
		}

		return nil, 0, errors.Wrap(err, "failed to count accounts")
	}

	query := base.Order(orderClause(filter.Sort))
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}
	for _, association := range accountChildAssociations {
		query = query.Preload(association)
	}

	var accountModels []*model.AccountModel
	if err := query.Find(&accountModels).Error; err != nil {
		if isStorageUnavailable(err) {
			return nil, 0, domainerrors.NewTransientError(err, "list accounts")
		}

		return nil, 0, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, total, nil
}

// UpdateStatus sets the lifecycle status of an account.
func (repo *accountRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		if isStorageUnavailable(result.Error) {
			return domainerrors.NewTransientError(result.Error, "update account status")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// IncrementConnectionCount bumps the persistent connection counter by one.
func (repo *accountRepository) IncrementConnectionCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		UpdateColumn("connection_count", gorm.Expr("connection_count + 1"))
	if result.Error != nil {
		if isStorageUnavailable(result.Error) {
			return domainerrors.NewTransientError(result.Error, "increment connection count")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment connection count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// orderClause maps the sort allow-list onto concrete columns. Unknown values
// fall back to newest-first.
func orderClause(sort repository.SortField) string {
	switch sort {
	case repository.SortByName:
		return "display_name ASC"
	case repository.SortByConnections:
		return "connection_count DESC"
	case repository.SortByNewest:
		return "created_at DESC"
	default:
		return "created_at DESC"
	}
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	account := &entity.Account{
		ID:              data.ID,
		Type:            entity.AccountType(data.AccountType),
		Slug:            data.Slug,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		DisplayName:     data.DisplayName,
		Status:          entity.AccountStatus(data.Status),
		Verified:        data.Verified,
		Bio:             data.Bio,
		Location:        data.Location,
		StoreSize:       data.StoreSize,
		BusinessType:    data.BusinessType,
		ConnectionCount: int(data.ConnectionCount),
		LikeCount:       int(data.LikeCount),
		OrderCount:      int(data.OrderCount),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	for _, link := range data.Categories {
		account.Categories = append(account.Categories, entity.CategoryLink{CategoryID: link.CategoryID})
	}
	for _, item := range data.Specialties {
		account.Specialties = append(account.Specialties, entity.Specialty{Label: item.Label, Priority: item.Priority})
	}
	for _, item := range data.Certifications {
		account.Certifications = append(account.Certifications, entity.Certification{
			Name:           item.Name,
			Issuer:         item.Issuer,
			IssuedAt:       item.IssuedAt,
			ExpiresAt:      item.ExpiresAt,
			CertificateURL: item.CertificateURL,
		})
	}
	for _, item := range data.Languages {
		account.Languages = append(account.Languages, entity.Language{
			Name:        item.Name,
			Proficiency: entity.Proficiency(item.Proficiency),
		})
	}
	for _, item := range data.BusinessHours {
		account.BusinessHours = append(account.BusinessHours, entity.BusinessHour{
			Weekday: item.Weekday,
			Opens:   item.Opens,
			Closes:  item.Closes,
			Closed:  item.Closed,
		})
	}
	for _, item := range data.DeliveryOptions {
		account.DeliveryOptions = append(account.DeliveryOptions, entity.DeliveryOption{
			Type:      item.Type,
			Available: item.Available,
			Cost:      item.Cost,
		})
	}
	for _, item := range data.PaymentMethods {
		account.PaymentMethods = append(account.PaymentMethods, entity.PaymentMethod{
			Type:      item.Type,
			Available: item.Available,
			Provider:  item.Provider,
		})
	}

	return account
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	accountM := &model.AccountModel{
		ID:              data.ID,
		AccountType:     data.Type.String(),
		Slug:            data.Slug,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		DisplayName:     data.DisplayName,
		Status:          data.Status.String(),
		Verified:        data.Verified,
		Bio:             data.Bio,
		Location:        data.Location,
		StoreSize:       data.StoreSize,
		BusinessType:    data.BusinessType,
		ConnectionCount: int64(data.ConnectionCount),
		LikeCount:       int64(data.LikeCount),
		OrderCount:      int64(data.OrderCount),
	}

	for _, link := range data.Categories {
		accountM.Categories = append(accountM.Categories, model.AccountCategoryModel{CategoryID: link.CategoryID})
	}
	for _, item := range data.Specialties {
		accountM.Specialties = append(accountM.Specialties, model.SpecialtyModel{Label: item.Label, Priority: item.Priority})
	}
	for _, item := range data.Certifications {
		accountM.Certifications = append(accountM.Certifications, model.CertificationModel{
			Name:           item.Name,
			Issuer:         item.Issuer,
			IssuedAt:       item.IssuedAt,
			ExpiresAt:      item.ExpiresAt,
			CertificateURL: item.CertificateURL,
		})
	}
	for _, item := range data.Languages {
		accountM.Languages = append(accountM.Languages, model.LanguageModel{
			Name:        item.Name,
			Proficiency: item.Proficiency.String(),
		})
	}
	for _, item := range data.BusinessHours {
		accountM.BusinessHours = append(accountM.BusinessHours, model.BusinessHourModel{
			Weekday: item.Weekday,
			Opens:   item.Opens,
			Closes:  item.Closes,
			Closed:  item.Closed,
		})
	}
	for _, item := range data.DeliveryOptions {
		accountM.DeliveryOptions = append(accountM.DeliveryOptions, model.DeliveryOptionModel{
			Type:      item.Type,
			Available: item.Available,
			Cost:      item.Cost,
		})
	}
	for _, item := range data.PaymentMethods {
		accountM.PaymentMethods = append(accountM.PaymentMethods, model.PaymentMethodModel{
			Type:      item.Type,
			Available: item.Available,
			Provider:  item.Provider,
		})
	}

	return accountM
}

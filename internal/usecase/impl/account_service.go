// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/ushankamesh-devX/helatrade-sub000/config"
	deliverycontext "github.com/ushankamesh-devX/helatrade-sub000/internal/delivery/context"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"
	domainerrors "github.com/ushankamesh-devX/helatrade-sub000/internal/domain/errors"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/repository"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/service"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager         repository.TransactionManager
	accountRepo       repository.AccountRepository
	sessionRepo       repository.SessionRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	slugAllocator     service.SlugAllocator
	qrService         service.QRCodeService
	publisher         service.EventPublisher
	strictCategories  bool
	maxActiveSessions int
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	AccountRepo   repository.AccountRepository
	SessionRepo   repository.SessionRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	SlugAllocator service.SlugAllocator
	QRService     service.QRCodeService
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	strictCategories := false
	if params.Config != nil && params.Config.Categories != nil {
		strictCategories = params.Config.Categories.Strict
	}
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &accountService{
		txManager:         params.TxManager,
		accountRepo:       params.AccountRepo,
		sessionRepo:       params.SessionRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		slugAllocator:     params.SlugAllocator,
		qrService:         params.QRService,
		publisher:         params.Publisher,
		strictCategories:  strictCategories,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// registrationPlan gathers the variant-specific parts of a registration so
// producers and stores can share one execution path.
type registrationPlan struct {
	AccountType  entity.AccountType
	DisplayName  string
	Email        string
	Password     string
	CategoryIDs  []int64
	BuildAccount func(slug, passwordHash string) *entity.Account
}

// RegisterProducer orchestrates the complete producer registration process.
func (srv *accountService) RegisterProducer(ctx context.Context, input *usecase.RegisterProducerInput) (*usecase.RegisterOutput, error) {
	specialties := toSpecialties(input.Specialties)
	certifications := toCertifications(input.Certifications)

	languages, err := toLanguages(input.Languages)
	if err != nil {
		return nil, err
	}
	businessHours, err := toBusinessHours(input.BusinessHours)
	if err != nil {
		return nil, err
	}

	plan := &registrationPlan{
		AccountType: entity.AccountTypeProducer,
		DisplayName: input.DisplayName,
		Email:       input.Email,
		Password:    input.Password,
		CategoryIDs: input.CategoryIDs,
		BuildAccount: func(slug, passwordHash string) *entity.Account {
			return &entity.Account{
				Type:           entity.AccountTypeProducer,
				Slug:           slug,
				Email:          input.Email,
				PasswordHash:   passwordHash,
				DisplayName:    input.DisplayName,
				Status:         entity.AccountStatusActive,
				Bio:            input.Bio,
				Location:       input.Location,
				Specialties:    specialties,
				Certifications: certifications,
				Languages:      languages,
				BusinessHours:  businessHours,
			}
		},
	}

	return srv.executeRegistration(ctx, plan)
}

// RegisterStore orchestrates the complete store registration process.
func (srv *accountService) RegisterStore(ctx context.Context, input *usecase.RegisterStoreInput) (*usecase.RegisterOutput, error) {
	businessHours, err := toBusinessHours(input.BusinessHours)
	if err != nil {
		return nil, err
	}

	plan := &registrationPlan{
		AccountType: entity.AccountTypeStore,
		DisplayName: input.DisplayName,
		Email:       input.Email,
		Password:    input.Password,
		CategoryIDs: input.CategoryIDs,
		BuildAccount: func(slug, passwordHash string) *entity.Account {
			return &entity.Account{
				Type:            entity.AccountTypeStore,
				Slug:            slug,
				Email:           input.Email,
				PasswordHash:    passwordHash,
				DisplayName:     input.DisplayName,
				Status:          entity.AccountStatusActive,
				Location:        input.Location,
				StoreSize:       input.StoreSize,
				BusinessType:    input.BusinessType,
				BusinessHours:   businessHours,
				DeliveryOptions: toDeliveryOptions(input.DeliveryOptions),
				PaymentMethods:  toPaymentMethods(input.PaymentMethods),
			}
		},
	}

	return srv.executeRegistration(ctx, plan)
}

func (srv *accountService) executeRegistration(ctx context.Context, plan *registrationPlan) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("type", plan.AccountType), slog.String("email", plan.Email))

	if plan.DisplayName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("display name must not be empty")
	}
	if plan.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email must not be empty")
	}

	if err := srv.hasher.ValidatePasswordStrength(plan.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", plan.Email), slog.Any("error", err))

		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(plan.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	// Allocate the slug before opening the transaction; the unique index on
	// (account_type, slug) is the ground truth if a concurrent registration
	// races us to the same handle.
	slug, err := srv.slugAllocator.Allocate(ctx, plan.DisplayName, plan.AccountType, uuid.Nil)
	if err != nil {
		srv.log(ctx).Error("Slug allocation failed during registration", slog.String("displayName", plan.DisplayName), slog.Any("error", err))

		return nil, err
	}

	var registeredAccount *entity.Account

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		links, err := srv.resolveCategoryLinks(ctx, repoFactory.CategoryRepo(), plan.CategoryIDs)
		if err != nil {
			return err
		}

		newAccount := plan.BuildAccount(slug, passwordHash)
		newAccount.Categories = links

		if err := repoFactory.AccountRepo().Create(ctx, newAccount); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("registration failed")
			}
			if errors.Is(err, repository.ErrDuplicateSlug) {
				// Lost the slug race after allocation.
				return domainerrors.ErrSlugAllocationFailed.WrapMessage("slug taken by a concurrent registration")
			}

			return errors.Wrap(err, "failed to create account during registration")
		}
		registeredAccount = newAccount

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", plan.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.publishEvent(ctx, &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Name:       service.EventAccountRegistered,
		AccountID:  registeredAccount.ID.String(),
		OccurredAt: time.Now(),
		Attributes: map[string]string{
			"account_type": registeredAccount.Type.String(),
			"slug":         registeredAccount.Slug,
		},
	})

	srv.log(ctx).Debug("Registration completed", slog.Any("type", plan.AccountType), slog.Any("accountID", registeredAccount.ID))

	return &usecase.RegisterOutput{Account: registeredAccount}, nil
}

// resolveCategoryLinks maps requested category ids onto the active registry.
// In strict mode any unknown or inactive id fails the whole request; in
// lenient mode offending ids are dropped and logged.
func (srv *accountService) resolveCategoryLinks(ctx context.Context, categoryRepo repository.CategoryRepository, ids []int64) ([]entity.CategoryLink, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	unique := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	active, err := categoryRepo.FilterActiveIDs(ctx, unique)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve category references")
	}

	if len(active) != len(unique) {
		dropped := make([]int64, 0, len(unique)-len(active))
		kept := make(map[int64]struct{}, len(active))
		for _, id := range active {
			kept[id] = struct{}{}
		}
		for _, id := range unique {
			if _, ok := kept[id]; !ok {
				dropped = append(dropped, id)
			}
		}

		if srv.strictCategories {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("request references unknown or inactive categories")
		}
		srv.log(ctx).Warn("Dropping unresolvable category references", slog.Any("categoryIDs", dropped))
	}

	links := make([]entity.CategoryLink, 0, len(active))
	for _, id := range active {
		links = append(links, entity.CategoryLink{CategoryID: id})
	}

	return links, nil
}

// publishEvent emits a domain event on a best-effort basis. Registration and
// connection flows never fail because the message queue is down.
func (srv *accountService) publishEvent(ctx context.Context, event *service.DomainEvent) {
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish domain event", slog.String("event", event.Name), slog.Any("error", err))
	}
}

// Login verifies credentials and opens a refresh session.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.Any("type", input.Type), slog.String("email", input.Email))

	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown account type")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Type, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("login failed")
	}

	if !account.IsActive() {
		srv.log(ctx).Warn("Login rejected for non-active account", slog.Any("accountID", account.ID), slog.Any("status", account.Status))

		return nil, domainerrors.ErrForbidden.WrapMessage("account is not active")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(account.ID, account.Type)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistSession(ctx, account.ID, refreshToken); err != nil {
		srv.log(ctx).Error("Failed to persist login session", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist login session")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}

// persistSession stores the refresh token hash, enforcing the configured
// concurrent-session ceiling by evicting the oldest session first.
func (srv *accountService) persistSession(ctx context.Context, accountID uuid.UUID, refreshToken string) error {
	newSession := &entity.Session{
		AccountID: accountID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if srv.maxActiveSessions <= 0 {
		return srv.sessionRepo.Create(ctx, newSession)
	}

	// With a ceiling configured, count/evict/insert must be one atomic step.
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		count, err := sessionRepo.CountByAccountID(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if count >= int64(srv.maxActiveSessions) {
			if err := sessionRepo.DeleteOldestByAccountID(ctx, accountID); err != nil {
				return errors.Wrap(err, "failed to evict oldest session")
			}
		}

		return sessionRepo.Create(ctx, newSession)
	})
}

// RefreshToken rotates a refresh session and issues a new token pair.
func (srv *accountService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh tokens")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "invalid refresh token")
	}
	if claims.Type != "refresh" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("access token presented as refresh token")
	}

	oldHash := srv.tokenService.HashToken(input.RefreshToken)

	var newAccessToken, newRefreshToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		session, err := sessionRepo.FindByTokenHash(ctx, oldHash)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return domainerrors.ErrSessionNotFound.WrapMessage("refresh session not found")
			}

			return errors.Wrap(err, "failed to load refresh session")
		}
		if time.Now().After(session.ExpiresAt) {
			// Expired rows stay until touched; drop on sight.
			if err := sessionRepo.DeleteByTokenHash(ctx, oldHash); err != nil {
				srv.log(ctx).Warn("Failed to delete expired session", slog.Any("error", err))
			}

			return domainerrors.ErrTokenExpired.WrapMessage("refresh session expired")
		}

		newAccessToken, newRefreshToken, err = srv.tokenService.GenerateTokens(claims.AccountID, claims.AccountType)
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		if err := sessionRepo.Create(ctx, &entity.Session{
			AccountID: session.AccountID,
			TokenHash: srv.tokenService.HashToken(newRefreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}); err != nil {
			return errors.Wrap(err, "failed to create rotated session")
		}

		if err := sessionRepo.DeleteByTokenHash(ctx, oldHash); err != nil {
			return errors.Wrap(err, "failed to delete rotated session")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute token refresh transaction")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout invalidates the session matching the presented refresh token.
func (srv *accountService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Debug("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// An invalid or expired token may still have a session row; delete it anyway.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if err := srv.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		return errors.Wrap(err, "failed to delete session during logout")
	}

	return nil
}

// UpdateAccount applies a partial update: present scalar fields overwrite,
// present child-collection kinds are replaced wholesale, absent ones are
// untouched. The whole update commits or rolls back as one unit.
func (srv *accountService) UpdateAccount(ctx context.Context, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	srv.log(ctx).Debug("Starting account update", slog.Any("accountID", input.AccountID))

	children, err := srv.buildChildUpdate(input)
	if err != nil {
		return nil, err
	}

	var updatedAccount *entity.Account

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, input.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("account update failed")
			}

			return errors.Wrap(err, "failed to load account for update")
		}

		previousName := account.DisplayName
		applyScalarUpdate(account, input)
		if account.DisplayName == "" {
			return domainerrors.ErrValidationFailed.WrapMessage("display name must not be empty")
		}

		// A renamed account gets a fresh slug in its type namespace. The
		// account's own row is excluded so an unchanged slugification is
		// not treated as a collision.
		if account.DisplayName != previousName {
			newSlug, err := srv.slugAllocator.Allocate(ctx, account.DisplayName, account.Type, account.ID)
			if err != nil {
				return errors.Wrap(err, "failed to reallocate slug")
			}
			account.Slug = newSlug
		}

		if err := accountRepo.UpdateScalars(ctx, account); err != nil {
			if errors.Is(err, repository.ErrDuplicateSlug) {
				// Lost the slug race after allocation.
				return domainerrors.ErrSlugAllocationFailed.WrapMessage("slug taken by a concurrent update")
			}

			return errors.Wrap(err, "failed to update account fields")
		}

		if !children.Empty() {
			if input.CategoryIDs != nil {
				links, err := srv.resolveCategoryLinks(ctx, repoFactory.CategoryRepo(), *input.CategoryIDs)
				if err != nil {
					return err
				}
				if links == nil {
					links = []entity.CategoryLink{}
				}
				children.Categories = &links
			}

			if err := accountRepo.ReplaceChildren(ctx, account.ID, children); err != nil {
				return errors.Wrap(err, "failed to replace child collections")
			}
		}

		// Re-read so the response reflects exactly what was committed.
		updatedAccount, err = accountRepo.FindByID(ctx, account.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload account after update")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute account update transaction", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account update transaction")
	}

	srv.log(ctx).Debug("Account updated", slog.Any("accountID", updatedAccount.ID))

	return updatedAccount, nil
}

// applyScalarUpdate copies present scalar pointers onto the loaded entity.
func applyScalarUpdate(account *entity.Account, input *usecase.UpdateAccountInput) {
	if input.DisplayName != nil {
		account.DisplayName = *input.DisplayName
	}
	if input.Bio != nil {
		account.Bio = *input.Bio
	}
	if input.Location != nil {
		account.Location = *input.Location
	}
	if input.StoreSize != nil {
		account.StoreSize = *input.StoreSize
	}
	if input.BusinessType != nil {
		account.BusinessType = *input.BusinessType
	}
}

// buildChildUpdate validates and converts the present child-collection
// pointers. Categories are resolved later, inside the transaction, because
// they need the registry.
func (srv *accountService) buildChildUpdate(input *usecase.UpdateAccountInput) (*entity.ChildCollections, error) {
	children := &entity.ChildCollections{}

	if input.Specialties != nil {
		specialties := toSpecialties(*input.Specialties)
		children.Specialties = &specialties
	}
	if input.Certifications != nil {
		certifications := toCertifications(*input.Certifications)
		children.Certifications = &certifications
	}
	if input.Languages != nil {
		languages, err := toLanguages(*input.Languages)
		if err != nil {
			return nil, err
		}
		children.Languages = &languages
	}
	if input.BusinessHours != nil {
		businessHours, err := toBusinessHours(*input.BusinessHours)
		if err != nil {
			return nil, err
		}
		children.BusinessHours = &businessHours
	}
	if input.DeliveryOptions != nil {
		deliveryOptions := toDeliveryOptions(*input.DeliveryOptions)
		children.DeliveryOptions = &deliveryOptions
	}
	if input.PaymentMethods != nil {
		paymentMethods := toPaymentMethods(*input.PaymentMethods)
		children.PaymentMethods = &paymentMethods
	}
	if input.CategoryIDs != nil {
		// Placeholder so Empty() reports the pending category replacement;
		// the real links are resolved inside the update transaction.
		empty := []entity.CategoryLink{}
		children.Categories = &empty
	}

	return children, nil
}

// DeactivateAccount soft-deactivates an account and revokes all its sessions.
func (srv *accountService) DeactivateAccount(ctx context.Context, accountID uuid.UUID) error {
	srv.log(ctx).Info("Deactivating account", slog.Any("accountID", accountID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().UpdateStatus(ctx, accountID, entity.AccountStatusInactive); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("account deactivation failed")
			}

			return errors.Wrap(err, "failed to update account status")
		}

		if err := repoFactory.SessionRepo().DeleteByAccountID(ctx, accountID); err != nil {
			return errors.Wrap(err, "failed to revoke account sessions")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute account deactivation transaction", slog.Any("accountID", accountID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute account deactivation transaction")
	}

	return nil
}

// GetAccount retrieves a single account with all child collections.
func (srv *accountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// GetAccountBySlug retrieves the public profile behind a slug.
func (srv *accountService) GetAccountBySlug(ctx context.Context, accountType entity.AccountType, slug string) (*entity.Account, error) {
	if !accountType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown account type")
	}

	account, err := srv.accountRepo.FindBySlug(ctx, accountType, slug)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account by slug")
	}

	return account, nil
}

// ProfileQR renders the account's public profile URL as a PNG QR code.
func (srv *accountService) ProfileQR(ctx context.Context, accountID uuid.UUID) ([]byte, error) {
	account, err := srv.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateProfileQR(account.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate profile QR code")
	}

	return png, nil
}

// --- Input converters ---

func toSpecialties(inputs []usecase.SpecialtyInput) []entity.Specialty {
	specialties := make([]entity.Specialty, 0, len(inputs))
	for _, item := range inputs {
		specialties = append(specialties, entity.Specialty{Label: item.Label, Priority: item.Priority})
	}

	return specialties
}

func toCertifications(inputs []usecase.CertificationInput) []entity.Certification {
	certifications := make([]entity.Certification, 0, len(inputs))
	for _, item := range inputs {
		certifications = append(certifications, entity.Certification{
			Name:           item.Name,
			Issuer:         item.Issuer,
			IssuedAt:       item.IssuedAt,
			ExpiresAt:      item.ExpiresAt,
			CertificateURL: item.CertificateURL,
		})
	}

	return certifications
}

func toLanguages(inputs []usecase.LanguageInput) ([]entity.Language, error) {
	languages := make([]entity.Language, 0, len(inputs))
	for _, item := range inputs {
		proficiency := entity.Proficiency(item.Proficiency)
		if item.Proficiency == "" {
			proficiency = entity.ProficiencyBasic
		}
		if !proficiency.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown language proficiency: " + item.Proficiency)
		}
		languages = append(languages, entity.Language{Name: item.Name, Proficiency: proficiency})
	}

	return languages, nil
}

func toBusinessHours(inputs []usecase.BusinessHourInput) ([]entity.BusinessHour, error) {
	businessHours := make([]entity.BusinessHour, 0, len(inputs))
	for _, item := range inputs {
		if item.Weekday < 0 || item.Weekday > 6 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("business hour weekday must be between 0 and 6")
		}
		if !item.Closed && (item.Opens == "" || item.Closes == "") {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("open business hours need opens and closes times")
		}
		businessHours = append(businessHours, entity.BusinessHour{
			Weekday: item.Weekday,
			Opens:   item.Opens,
			Closes:  item.Closes,
			Closed:  item.Closed,
		})
	}

	return businessHours, nil
}

func toDeliveryOptions(inputs []usecase.DeliveryOptionInput) []entity.DeliveryOption {
	deliveryOptions := make([]entity.DeliveryOption, 0, len(inputs))
	for _, item := range inputs {
		deliveryOptions = append(deliveryOptions, entity.DeliveryOption{
			Type:      item.Type,
			Available: item.Available,
			Cost:      item.Cost,
		})
	}

	return deliveryOptions
}

func toPaymentMethods(inputs []usecase.PaymentMethodInput) []entity.PaymentMethod {
	paymentMethods := make([]entity.PaymentMethod, 0, len(inputs))
	for _, item := range inputs {
		paymentMethods = append(paymentMethods, entity.PaymentMethod{
			Type:      item.Type,
			Available: item.Available,
			Provider:  item.Provider,
		})
	}

	return paymentMethods
}

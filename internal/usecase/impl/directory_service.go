package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/ushankamesh-devX/helatrade-sub000/internal/delivery/context"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"
	domainerrors "github.com/ushankamesh-devX/helatrade-sub000/internal/domain/errors"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/repository"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	accountRepo  repository.AccountRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// DirectoryServiceParams holds dependencies for directoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		accountRepo:  params.AccountRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAccounts returns one page of the account directory. The page size is
// clamped to the hard ceiling and the sort column comes from an allow-list.
func (srv *directoryService) ListAccounts(ctx context.Context, input *usecase.ListAccountsInput) (*usecase.AccountListOutput, error) {
	if input.Type != "" && !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown account type")
	}

	sort := parseSortField(input.Sort)
	if input.Sort != "" && repository.SortField(input.Sort) != sort {
		srv.log(ctx).Warn("Ignoring unknown sort field", slog.String("sort", input.Sort))
	}

	page, perPage := normalizePage(input.Page, input.PerPage)

	accounts, total, err := srv.accountRepo.List(ctx, &repository.ListFilter{
		Type:       input.Type,
		Search:     input.Search,
		CategoryID: input.CategoryID,
		Location:   input.Location,
		Verified:   input.Verified,
		Sort:       sort,
		Limit:      perPage,
		Offset:     (page - 1) * perPage,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list accounts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return &usecase.AccountListOutput{
		Accounts: accounts,
		Page:     buildPageMeta(page, perPage, total),
	}, nil
}

// ListCategories returns every active category of the registry.
func (srv *directoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.ListActive(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// parseSortField resolves the sort key against the allow-list. Unknown keys
// fall back to newest-first so a client can never name a sort column the
// repository does not whitelist.
func parseSortField(sort string) repository.SortField {
	switch repository.SortField(sort) {
	case repository.SortByNewest, repository.SortByName, repository.SortByConnections:
		return repository.SortField(sort)
	default:
		return repository.SortByNewest
	}
}

// normalizePage clamps pagination inputs to sane bounds: page starts at 1,
// page size defaults when unset and never exceeds the hard ceiling.
func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = usecase.DefaultPageSize
	}
	if perPage > usecase.MaxPageSize {
		perPage = usecase.MaxPageSize
	}

	return page, perPage
}

// buildPageMeta derives page metadata from the total match count.
func buildPageMeta(page, perPage int, total int64) usecase.PageMeta {
	totalPages := int(total) / perPage
	if int(total)%perPage != 0 {
		totalPages++
	}

	return usecase.PageMeta{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/delivery/http/response"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DirectoryHandler holds dependencies for the public account directory.
type DirectoryHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// accountListView is the wire shape of one directory page.
type accountListView struct {
	Accounts []*AccountView   `json:"accounts"`
	Page     usecase.PageMeta `json:"page"`
}

// ListAccounts handles the public directory listing for one account type.
func (h *DirectoryHandler) ListAccounts(c echo.Context) error {
	input := &usecase.ListAccountsInput{
		Type:     entity.AccountType(c.Param("type")),
		Search:   c.QueryParam("search"),
		Location: c.QueryParam("location"),
		Sort:     c.QueryParam("sort"),
		Page:     intQueryParam(c, "page"),
		PerPage:  intQueryParam(c, "per_page"),
	}

	if raw := c.QueryParam("category_id"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
		}

		input.CategoryID = categoryID
	}

	if raw := c.QueryParam("verified"); raw != "" {
		verified, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid verified flag")
		}

		input.Verified = &verified
	}

	output, err := h.uc.ListAccounts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	view := &accountListView{
		Accounts: newAccountViews(output.Accounts, false),
		Page:     output.Page,
	}

	return response.Success(c, http.StatusOK, view, "Accounts retrieved successfully")
}

// categoryView is the wire shape of one category registry row.
type categoryView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListCategories handles listing the active category registry.
func (h *DirectoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]categoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, categoryView{ID: category.ID, Name: category.Name})
	}

	return response.Success(c, http.StatusOK, views, "Categories retrieved successfully")
}

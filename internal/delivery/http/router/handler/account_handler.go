// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/delivery/http/middleware"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/delivery/http/response"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// RegisterProducer handles the producer registration request.
func (h *AccountHandler) RegisterProducer(c echo.Context) error {
	var input *usecase.RegisterProducerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.RegisterProducer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAccountView(output.Account, true), "Producer registered successfully")
}

// RegisterStore handles the store registration request.
func (h *AccountHandler) RegisterStore(c echo.Context) error {
	var input *usecase.RegisterStoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.RegisterStore(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAccountView(output.Account, true), "Store registered successfully")
}

// loginView is the wire shape of a login or refresh result.
type loginView struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	Account      *AccountView `json:"account,omitempty"`
}

// Login handles the account login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	view := &loginView{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Account:      newAccountView(output.Account, true),
	}

	return response.Success(c, http.StatusOK, view, "Login successful")
}

// RefreshToken handles the token refresh request.
func (h *AccountHandler) RefreshToken(c echo.Context) error {
	var input *usecase.RefreshTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	view := &loginView{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}

	return response.Success(c, http.StatusOK, view, "Token refreshed successfully")
}

// Logout handles the account logout request.
func (h *AccountHandler) Logout(c echo.Context) error {
	var input *usecase.LogoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if err := h.uc.Logout(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// GetProfile handles the request to get the authenticated account's profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	account, err := h.uc.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account, true), "Profile retrieved successfully")
}

// UpdateProfile handles the partial update of the authenticated account.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var input *usecase.UpdateAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}

	input.AccountID = accountID

	account, err := h.uc.UpdateAccount(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account, true), "Profile updated successfully")
}

// DeactivateProfile handles the soft deactivation of the authenticated account.
func (h *AccountHandler) DeactivateProfile(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	if err := h.uc.DeactivateAccount(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account deactivated"}, "Account deactivated successfully")
}

// ProfileQR returns a PNG QR code pointing at the account's public profile.
func (h *AccountHandler) ProfileQR(c echo.Context) error {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	png, err := h.uc.ProfileQR(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetPublicProfile handles the public profile lookup by type and slug.
func (h *AccountHandler) GetPublicProfile(c echo.Context) error {
	accountType := entity.AccountType(c.Param("type"))
	if !accountType.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown account type")
	}

	account, err := h.uc.GetAccountBySlug(c.Request().Context(), accountType, c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account, false), "Profile retrieved successfully")
}

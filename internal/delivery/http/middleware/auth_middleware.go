package middleware

import (
	"net/http"
	"strings"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	KeyAccountID   = "accountID"
	KeyAccountType = "accountType"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}
		if claims.Type != "access" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Refresh tokens cannot be used for API access"})
		}
		if !claims.AccountType.IsValid() {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Account type missing from token"})
		}

		// Set account info on the context for handlers to use
		c.Set(KeyAccountID, claims.AccountID)
		c.Set(KeyAccountType, claims.AccountType)

		return next(c)
	}
}

// RequireType is a middleware factory that restricts a route to one account
// variant. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireType(required entity.AccountType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			accountType, ok := c.Get(KeyAccountType).(entity.AccountType)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: account type information missing"})
			}

			if accountType != required {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require a " + required.String() + " account"})
			}

			return next(c)
		}
	}
}

// AccountID extracts the authenticated account id set by Authenticate.
func AccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(KeyAccountID).(uuid.UUID)

	return id, ok
}

// AccountType extracts the authenticated account type set by Authenticate.
func AccountType(c echo.Context) (entity.AccountType, bool) {
	accountType, ok := c.Get(KeyAccountType).(entity.AccountType)

	return accountType, ok
}

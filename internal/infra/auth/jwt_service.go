package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ushankamesh-devX/helatrade-sub000/config"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"
	domainerrors "github.com/ushankamesh-devX/helatrade-sub000/internal/domain/errors"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/service"
)

// Token lifetimes used when the auth config leaves them unset.
const (
	defaultAccessTokenTTL  = time.Minute * 15
	defaultRefreshTokenTTL = time.Hour * 24 * 7
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// jwtClaims is the wire form of service.Claims.
type jwtClaims struct {
	AccountType string `json:"account_type,omitempty"`
	Type        string `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := defaultAccessTokenTTL
	refreshTTL := defaultRefreshTokenTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for an account.
func (s *jwtService) GenerateTokens(accountID uuid.UUID, accountType entity.AccountType) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(accountID, accountType, s.accessTTL, s.accessSecret, "access")
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(accountID, accountType, s.refreshTTL, s.refreshSecret, "refresh")
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken checks the validity of a token string. It tries the access
// secret first and falls back to the refresh secret, then maps jwt library
// errors onto the domain error taxonomy.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims, err := s.parseWithSecret(tokenString, s.accessSecret)
	if err != nil {
		claims, err = s.parseWithSecret(tokenString, s.refreshSecret)
	}
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage(err.Error())
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage("failed to parse token structure")
	}

	return claims, nil
}

// HashToken returns a hex-encoded SHA-256 digest of the token. Only hashes
// are ever persisted.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) parseWithSecret(tokenString, secret string) (*service.Claims, error) {
	parsed := new(jwtClaims)
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	accountID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "parse token subject")
	}

	return &service.Claims{
		AccountID:        accountID,
		AccountType:      entity.AccountType(parsed.AccountType),
		Type:             parsed.Type,
		RegisteredClaims: parsed.RegisteredClaims,
	}, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(accountID uuid.UUID, accountType entity.AccountType, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		AccountType: accountType.String(),
		Type:        tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

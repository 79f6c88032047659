// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/ushankamesh-devX/helatrade-sub000/config"
	domainerrors "github.com/ushankamesh-devX/helatrade-sub000/internal/domain/errors"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/service"
)

// Default strength policy applied when no configuration is supplied.
const (
	defaultMinPasswordLength = 8
	defaultMaxPasswordLength = 128
)

// forbiddenWords are rejected anywhere inside a password, case-insensitively.
var forbiddenWords = []string{"password", "admin"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher with the default cost.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptHasherWithCost creates a hasher with an explicit bcrypt cost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// NewBcryptHasherFromConfig wires the hasher from application configuration.
func NewBcryptHasherFromConfig(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{
		cost:   cost,
		policy: cfg.PasswordStrength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// The password must pass the strength policy first.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	cost := h.cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength enforces the configured strength policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	minLength := defaultMinPasswordLength
	maxLength := defaultMaxPasswordLength
	requireUppercase := true
	requireLowercase := true
	requireNumbers := true
	requireSpecial := true

	if h.policy != nil {
		if h.policy.MinLength > 0 {
			minLength = h.policy.MinLength
		}
		if h.policy.MaxLength > 0 {
			maxLength = h.policy.MaxLength
		}
		requireUppercase = h.policy.RequireUppercase
		requireLowercase = h.policy.RequireLowercase
		requireNumbers = h.policy.RequireNumbers
		requireSpecial = h.policy.RequireSpecial
	}

	if len(password) < minLength {
		return domainerrors.ErrPasswordStrength.WrapMessage(
			fmt.Sprintf("password must be at least %d characters long", minLength))
	}
	if len(password) > maxLength {
		return domainerrors.ErrPasswordStrength.WrapMessage(
			fmt.Sprintf("password must be at most %d characters long", maxLength))
	}
	if requireLowercase && !h.hasLowercase(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage(
			"password must contain at least one lowercase letter")
	}
	if requireUppercase && !h.hasUppercase(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage(
			"password must contain at least one uppercase letter")
	}
	if requireNumbers && !h.hasNumbers(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage(
			"password must contain at least one number")
	}
	if requireSpecial && !h.hasSpecialChars(password) {
		return domainerrors.ErrPasswordStrength.WrapMessage(
			"password must contain at least one special character")
	}
	if h.containsForbiddenWords(password, forbiddenWords) {
		return domainerrors.ErrPasswordForbiddenWords.WrapMessage(
			"password contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsUpper)
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLower)
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func (h *bcryptHasher) containsForbiddenWords(password string, words []string) bool {
	lowered := strings.ToLower(password)
	for _, word := range words {
		if strings.Contains(lowered, word) {
			return true
		}
	}

	return false
}

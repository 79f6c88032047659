// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// --- Input DTOs ---

// SpecialtyInput accepts both wire shapes of a specialty: a bare JSON string
// ("Ceylon Cinnamon") or an object ({"label": "...", "priority": 2}). Both
// normalize into this one struct before reaching the business logic.
type SpecialtyInput struct {
	Label    string `json:"label"`
	Priority int    `json:"priority"`
}

// UnmarshalJSON implements the dual-shape decoding.
func (s *SpecialtyInput) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		s.Label = label
		s.Priority = 0

		return nil
	}

	type plain SpecialtyInput
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.Wrap(err, "specialty must be a string or an object")
	}
	*s = SpecialtyInput(obj)

	return nil
}

// CertificationInput carries one certification row of a register or update request.
type CertificationInput struct {
	Name           string     `json:"name"`
	Issuer         string     `json:"issuer"`
	IssuedAt       *time.Time `json:"issued_at"`
	ExpiresAt      *time.Time `json:"expires_at"`
	CertificateURL string     `json:"certificate_url"`
}

// LanguageInput carries one spoken-language row of a producer request.
type LanguageInput struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// BusinessHourInput carries one weekday's opening window.
// Weekday follows time.Weekday numbering (Sunday = 0).
type BusinessHourInput struct {
	Weekday int    `json:"weekday"`
	Opens   string `json:"opens"`
	Closes  string `json:"closes"`
	Closed  bool   `json:"closed"`
}

// DeliveryOptionInput carries one delivery option row of a store request.
type DeliveryOptionInput struct {
	Type      string `json:"type"`
	Available bool   `json:"available"`
	Cost      string `json:"cost"`
}

// PaymentMethodInput carries one payment method row of a store request.
type PaymentMethodInput struct {
	Type      string `json:"type"`
	Available bool   `json:"available"`
	Provider  string `json:"provider"`
}

// RegisterProducerInput defines the data required to register a new producer account.
type RegisterProducerInput struct {
	DisplayName    string               `json:"display_name"`
	Email          string               `json:"email"`
	Password       string               `json:"password"`
	Bio            string               `json:"bio"`
	Location       string               `json:"location"`
	CategoryIDs    []int64              `json:"category_ids"`
	Specialties    []SpecialtyInput     `json:"specialties"`
	Certifications []CertificationInput `json:"certifications"`
	Languages      []LanguageInput      `json:"languages"`
	BusinessHours  []BusinessHourInput  `json:"business_hours"`
}

// RegisterStoreInput defines the data required to register a new store account.
type RegisterStoreInput struct {
	DisplayName     string                `json:"display_name"`
	Email           string                `json:"email"`
	Password        string                `json:"password"`
	Location        string                `json:"location"`
	StoreSize       string                `json:"store_size"`
	BusinessType    string                `json:"business_type"`
	CategoryIDs     []int64               `json:"category_ids"`
	BusinessHours   []BusinessHourInput   `json:"business_hours"`
	DeliveryOptions []DeliveryOptionInput `json:"delivery_options"`
	PaymentMethods  []PaymentMethodInput  `json:"payment_methods"`
}

// UpdateAccountInput carries a partial account update. A nil scalar pointer
// means "leave as is". A nil collection pointer leaves that child kind
// untouched; a pointer to an empty slice clears the kind.
type UpdateAccountInput struct {
	AccountID uuid.UUID `json:"-"`

	DisplayName  *string `json:"display_name"`
	Bio          *string `json:"bio"`
	Location     *string `json:"location"`
	StoreSize    *string `json:"store_size"`
	BusinessType *string `json:"business_type"`

	CategoryIDs     *[]int64               `json:"category_ids"`
	Specialties     *[]SpecialtyInput      `json:"specialties"`
	Certifications  *[]CertificationInput  `json:"certifications"`
	Languages       *[]LanguageInput       `json:"languages"`
	BusinessHours   *[]BusinessHourInput   `json:"business_hours"`
	DeliveryOptions *[]DeliveryOptionInput `json:"delivery_options"`
	PaymentMethods  *[]PaymentMethodInput  `json:"payment_methods"`
}

// LoginInput defines the data required for an account to log in. Type picks
// the credential namespace, so the same email can exist once per variant.
type LoginInput struct {
	Type     entity.AccountType `json:"type"`
	Email    string             `json:"email"`
	Password string             `json:"password"`
}

// RefreshTokenInput defines the data required to refresh an access token.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutInput defines the data required to log out.
type LogoutInput struct {
	RefreshToken string `json:"refresh_token"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's information.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// RefreshTokenOutput returns the new token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	RegisterProducer(ctx context.Context, input *RegisterProducerInput) (*RegisterOutput, error)
	RegisterStore(ctx context.Context, input *RegisterStoreInput) (*RegisterOutput, error)
	UpdateAccount(ctx context.Context, input *UpdateAccountInput) (*entity.Account, error)
	DeactivateAccount(ctx context.Context, accountID uuid.UUID) error

	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error

	GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
	GetAccountBySlug(ctx context.Context, accountType entity.AccountType, slug string) (*entity.Account, error)
	ProfileQR(ctx context.Context, accountID uuid.UUID) ([]byte, error)
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Slug and email are unique per account type, so both carry composite unique indexes
// together with account_type.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountType  string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_accounts_type_slug;uniqueIndex:idx_accounts_type_email"`
	Slug         string    `gorm:"type:varchar(80);not null;uniqueIndex:idx_accounts_type_slug"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_type_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	DisplayName  string    `gorm:"type:varchar(100);not null"`
	Status       string    `gorm:"type:varchar(16);not null;default:'active';index"`
	Verified     bool      `gorm:"not null;default:false"`

	// Producer-side profile fields.
	Bio      string `gorm:"type:text"`
	Location string `gorm:"type:varchar(255)"`

	// Store-side profile fields.
	StoreSize    string `gorm:"type:varchar(32)"`
	BusinessType string `gorm:"type:varchar(64)"`

	ConnectionCount int64 `gorm:"not null;default:0"`
	LikeCount       int64 `gorm:"not null;default:0"`
	OrderCount      int64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Categories      []AccountCategoryModel `gorm:"foreignKey:AccountID"`
	Specialties     []SpecialtyModel       `gorm:"foreignKey:AccountID"`
	Certifications  []CertificationModel   `gorm:"foreignKey:AccountID"`
	Languages       []LanguageModel        `gorm:"foreignKey:AccountID"`
	BusinessHours   []BusinessHourModel    `gorm:"foreignKey:AccountID"`
	DeliveryOptions []DeliveryOptionModel  `gorm:"foreignKey:AccountID"`
	PaymentMethods  []PaymentMethodModel   `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// AccountCategoryModel mirrors the 'account_categories' link table.
type AccountCategoryModel struct {
	AccountID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID int64     `gorm:"primaryKey"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountCategoryModel) TableName() string {
	return "account_categories"
}

// SpecialtyModel mirrors the 'account_specialties' table.
type SpecialtyModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Label     string    `gorm:"type:varchar(100);not null"`
	Priority  int       `gorm:"not null;default:0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SpecialtyModel) TableName() string {
	return "account_specialties"
}

// CertificationModel mirrors the 'account_certifications' table.
type CertificationModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	AccountID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(150);not null"`
	Issuer         string    `gorm:"type:varchar(150)"`
	IssuedAt       *time.Time
	ExpiresAt      *time.Time
	CertificateURL string `gorm:"type:varchar(512)"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CertificationModel) TableName() string {
	return "account_certifications"
}

// LanguageModel mirrors the 'account_languages' table.
type LanguageModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(64);not null"`
	Proficiency string    `gorm:"type:varchar(16);not null;default:'basic'"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LanguageModel) TableName() string {
	return "account_languages"
}

// BusinessHourModel mirrors the 'account_business_hours' table. Weekday runs
// 0 (Sunday) through 6.
type BusinessHourModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Weekday   int       `gorm:"not null"`
	Opens     string    `gorm:"type:varchar(5)"`
	Closes    string    `gorm:"type:varchar(5)"`
	Closed    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessHourModel) TableName() string {
	return "account_business_hours"
}

// DeliveryOptionModel mirrors the 'account_delivery_options' table.
type DeliveryOptionModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(64);not null"`
	Available bool      `gorm:"not null;default:true"`
	Cost      string    `gorm:"type:varchar(64)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryOptionModel) TableName() string {
	return "account_delivery_options"
}

// PaymentMethodModel mirrors the 'account_payment_methods' table.
type PaymentMethodModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(64);not null"`
	Available bool      `gorm:"not null;default:true"`
	Provider  string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentMethodModel) TableName() string {
	return "account_payment_methods"
}

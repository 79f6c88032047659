// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core entity in the system. A single table backs both
// variants; Type discriminates which of the variant-specific fields are
// meaningful.
type Account struct {
	ID           uuid.UUID     // The Global Unique Identifier (GUID) for the account.
	Type         AccountType   // Discriminator: producer or store.
	Slug         string        // Unique, URL-safe identifier derived from DisplayName. Unique per Type namespace.
	Email        string        // Login identifier. Unique per Type namespace.
	PasswordHash string        // bcrypt hash of the account password. Never exposed outside the engine.
	DisplayName  string        // The public display name the slug is derived from.
	Status       AccountStatus // Lifecycle status. Only active accounts may authenticate.
	Verified     bool          // Set by back-office review, read-only through this engine.

	// Producer-specific scalar profile fields.
	Bio      string
	Location string

	// Store-specific scalar profile fields.
	StoreSize    string
	BusinessType string

	// Counters are mutated only by defined operations, never by client writes.
	ConnectionCount int
	LikeCount       int
	OrderCount      int

	// Child collections, each owned by exactly one account and replaced
	// wholesale on update.
	Categories      []CategoryLink
	Specialties     []Specialty
	Certifications  []Certification
	Languages       []Language
	BusinessHours   []BusinessHour
	DeliveryOptions []DeliveryOption
	PaymentMethods  []PaymentMethod

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the account may authenticate and act.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// ChildCollections carries the child-collection part of an update request.
// A nil slice pointer means "leave this kind untouched"; a pointer to an
// empty slice means "replace with nothing", i.e. clear the kind.
type ChildCollections struct {
	Categories      *[]CategoryLink
	Specialties     *[]Specialty
	Certifications  *[]Certification
	Languages       *[]Language
	BusinessHours   *[]BusinessHour
	DeliveryOptions *[]DeliveryOption
	PaymentMethods  *[]PaymentMethod
}

// Empty reports whether no child-collection kind is present at all.
func (c *ChildCollections) Empty() bool {
	if c == nil {
		return true
	}

	return c.Categories == nil &&
		c.Specialties == nil &&
		c.Certifications == nil &&
		c.Languages == nil &&
		c.BusinessHours == nil &&
		c.DeliveryOptions == nil &&
		c.PaymentMethods == nil
}

// Package entity contains the core business objects of the project.
package entity

import "time"

// CategoryLink is a referential link from an account to the pre-existing
// category registry. Category lifecycle is managed elsewhere; this engine
// only resolves ids against the active registry.
type CategoryLink struct {
	CategoryID int64
}

// Category mirrors a row of the external category registry.
type Category struct {
	ID     int64
	Name   string
	Active bool
}

// Specialty is a free-text label with an optional display priority.
// Lower priority sorts first; zero means unranked.
type Specialty struct {
	Label    string
	Priority int
}

// Certification describes a certificate held by an account.
type Certification struct {
	Name           string
	Issuer         string
	IssuedAt       *time.Time
	ExpiresAt      *time.Time
	CertificateURL string
}

// Proficiency is the spoken-language proficiency scale for producers.
type Proficiency string

const (
	ProficiencyBasic        Proficiency = "basic"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyNative       Proficiency = "native"
)

// String returns the string representation of the Proficiency.
func (p Proficiency) String() string {
	return string(p)
}

// IsValid checks if the Proficiency is a valid value.
func (p Proficiency) IsValid() bool {
	switch p {
	case ProficiencyBasic, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyNative:
		return true
	default:
		return false
	}
}

// Language is a producer-only child row: a spoken language with proficiency.
type Language struct {
	Name        string
	Proficiency Proficiency
}

// BusinessHour describes one weekday's opening window. Weekday follows
// time.Weekday numbering (Sunday = 0). Opens/Closes are "HH:MM" local time
// and are meaningless when Closed is set.
type BusinessHour struct {
	Weekday int
	Opens   string
	Closes  string
	Closed  bool
}

// DeliveryOption is a store-only child row describing one way of getting
// goods to a buyer.
type DeliveryOption struct {
	Type      string
	Available bool
	Cost      string
}

// PaymentMethod is a store-only child row describing an accepted payment
// channel.
type PaymentMethod struct {
	Type      string
	Available bool
	Provider  string
}

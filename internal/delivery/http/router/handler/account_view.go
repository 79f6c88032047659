package handler

import (
	"time"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountView is the wire shape of an account. The password hash never
// leaves the engine, so the entity is mapped instead of serialized directly.
type AccountView struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"`
	Slug        string    `json:"slug"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"display_name"`
	Status      string    `json:"status"`
	Verified    bool      `json:"verified"`

	Bio      string `json:"bio,omitempty"`
	Location string `json:"location,omitempty"`

	StoreSize    string `json:"store_size,omitempty"`
	BusinessType string `json:"business_type,omitempty"`

	ConnectionCount int `json:"connection_count"`
	LikeCount       int `json:"like_count"`
	OrderCount      int `json:"order_count"`

	CategoryIDs     []int64              `json:"category_ids,omitempty"`
	Specialties     []SpecialtyView      `json:"specialties,omitempty"`
	Certifications  []CertificationView  `json:"certifications,omitempty"`
	Languages       []LanguageView       `json:"languages,omitempty"`
	BusinessHours   []BusinessHourView   `json:"business_hours,omitempty"`
	DeliveryOptions []DeliveryOptionView `json:"delivery_options,omitempty"`
	PaymentMethods  []PaymentMethodView  `json:"payment_methods,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SpecialtyView is the wire shape of one specialty row.
type SpecialtyView struct {
	Label    string `json:"label"`
	Priority int    `json:"priority,omitempty"`
}

// CertificationView is the wire shape of one certification row.
type CertificationView struct {
	Name           string     `json:"name"`
	Issuer         string     `json:"issuer,omitempty"`
	IssuedAt       *time.Time `json:"issued_at,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	CertificateURL string     `json:"certificate_url,omitempty"`
}

// LanguageView is the wire shape of one spoken-language row.
type LanguageView struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

// BusinessHourView is the wire shape of one weekday's opening window.
type BusinessHourView struct {
	Weekday int    `json:"weekday"`
	Opens   string `json:"opens,omitempty"`
	Closes  string `json:"closes,omitempty"`
	Closed  bool   `json:"closed"`
}

// DeliveryOptionView is the wire shape of one delivery option row.
type DeliveryOptionView struct {
	Type      string `json:"type"`
	Available bool   `json:"available"`
	Cost      string `json:"cost,omitempty"`
}

// PaymentMethodView is the wire shape of one payment method row.
type PaymentMethodView struct {
	Type      string `json:"type"`
	Available bool   `json:"available"`
	Provider  string `json:"provider,omitempty"`
}

// newAccountView maps an account entity to its wire shape. includeEmail
// controls whether the login email is exposed; public directory and profile
// responses keep it hidden.
func newAccountView(account *entity.Account, includeEmail bool) *AccountView {
	if account == nil {
		return nil
	}

	view := &AccountView{
		ID:              account.ID,
		Type:            account.Type.String(),
		Slug:            account.Slug,
		DisplayName:     account.DisplayName,
		Status:          string(account.Status),
		Verified:        account.Verified,
		Bio:             account.Bio,
		Location:        account.Location,
		StoreSize:       account.StoreSize,
		BusinessType:    account.BusinessType,
		ConnectionCount: account.ConnectionCount,
		LikeCount:       account.LikeCount,
		OrderCount:      account.OrderCount,
		CreatedAt:       account.CreatedAt,
		UpdatedAt:       account.UpdatedAt,
	}

	if includeEmail {
		view.Email = account.Email
	}

	for _, link := range account.Categories {
		view.CategoryIDs = append(view.CategoryIDs, link.CategoryID)
	}

	for _, row := range account.Specialties {
		view.Specialties = append(view.Specialties, SpecialtyView{Label: row.Label, Priority: row.Priority})
	}

	for _, row := range account.Certifications {
		view.Certifications = append(view.Certifications, CertificationView{
			Name:           row.Name,
			Issuer:         row.Issuer,
			IssuedAt:       row.IssuedAt,
			ExpiresAt:      row.ExpiresAt,
			CertificateURL: row.CertificateURL,
		})
	}

	for _, row := range account.Languages {
		view.Languages = append(view.Languages, LanguageView{Name: row.Name, Proficiency: row.Proficiency.String()})
	}

	for _, row := range account.BusinessHours {
		view.BusinessHours = append(view.BusinessHours, BusinessHourView{
			Weekday: row.Weekday,
			Opens:   row.Opens,
			Closes:  row.Closes,
			Closed:  row.Closed,
		})
	}

	for _, row := range account.DeliveryOptions {
		view.DeliveryOptions = append(view.DeliveryOptions, DeliveryOptionView{
			Type:      row.Type,
			Available: row.Available,
			Cost:      row.Cost,
		})
	}

	for _, row := range account.PaymentMethods {
		view.PaymentMethods = append(view.PaymentMethods, PaymentMethodView{
			Type:      row.Type,
			Available: row.Available,
			Provider:  row.Provider,
		})
	}

	return view
}

func newAccountViews(accounts []*entity.Account, includeEmail bool) []*AccountView {
	views := make([]*AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, newAccountView(account, includeEmail))
	}

	return views
}

// ConnectionView is the wire shape of a store↔producer connection.
type ConnectionView struct {
	StoreID     uuid.UUID  `json:"store_id"`
	ProducerID  uuid.UUID  `json:"producer_id"`
	Status      string     `json:"status"`
	Type        string     `json:"type"`
	InitiatedBy string     `json:"initiated_by"`
	Note        string     `json:"note,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	ConnectedAt *time.Time `json:"connected_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newConnectionView(conn *entity.Connection) *ConnectionView {
	if conn == nil {
		return nil
	}

	return &ConnectionView{
		StoreID:     conn.StoreID,
		ProducerID:  conn.ProducerID,
		Status:      conn.Status.String(),
		Type:        string(conn.Type),
		InitiatedBy: string(conn.InitiatedBy),
		Note:        conn.Note,
		RequestedAt: conn.RequestedAt,
		ConnectedAt: conn.ConnectedAt,
		UpdatedAt:   conn.UpdatedAt,
	}
}

func newConnectionViews(conns []*entity.Connection) []*ConnectionView {
	views := make([]*ConnectionView, 0, len(conns))
	for _, conn := range conns {
		views = append(views, newConnectionView(conn))
	}

	return views
}

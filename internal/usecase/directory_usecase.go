package usecase

import (
	"context"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"
)

// Pagination bounds for all listing operations.
const (
	// DefaultPageSize applies when the caller does not pick a page size.
	DefaultPageSize = 20
	// MaxPageSize is the hard per-page ceiling; larger requests are clamped.
	MaxPageSize = 50
)

// ListAccountsInput carries the directory listing filters and pagination.
type ListAccountsInput struct {
	Type       entity.AccountType `json:"type"`
	Search     string             `json:"search"`
	CategoryID int64              `json:"category_id"`
	Location   string             `json:"location"`
	Verified   *bool              `json:"verified"`
	Sort       string             `json:"sort"` // newest | name | connections
	Page       int                `json:"page"`
	PerPage    int                `json:"per_page"`
}

// PageMeta describes the position of one result page.
type PageMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// AccountListOutput returns one page of accounts plus page metadata.
type AccountListOutput struct {
	Accounts []*entity.Account
	Page     PageMeta
}

// DirectoryUsecase defines the interface for the public account directory.
type DirectoryUsecase interface {
	ListAccounts(ctx context.Context, input *ListAccountsInput) (*AccountListOutput, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}

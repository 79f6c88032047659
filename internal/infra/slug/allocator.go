// Package slug derives unique URL handles for account profiles.
package slug

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"
	domainerrors "github.com/ushankamesh-devX/helatrade-sub000/internal/domain/errors"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/repository"
	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/service"
)

const (
	// maxSuffixAttempts bounds the number of numeric suffixes probed before
	// giving up. Collisions past this depth indicate a data problem, not a
	// naming one.
	maxSuffixAttempts = 50

	// maxBaseLength bounds the pre-suffix slug length.
	maxBaseLength = 60

	// fallbackBase is used when slugification consumes the whole name.
	fallbackBase = "account"
)

type allocator struct {
	accountRepo repository.AccountRepository
}

// NewAllocator is the constructor for the slug allocator.
func NewAllocator(accountRepo repository.AccountRepository) service.SlugAllocator {
	return &allocator{accountRepo: accountRepo}
}

// Allocate slugifies name and probes the account type's namespace until a
// free handle is found. The base form is tried first, then "-1", "-2" and so
// on up to maxSuffixAttempts.
func (a *allocator) Allocate(ctx context.Context, name string, accountType entity.AccountType, excludeID uuid.UUID) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = fallbackBase
	}

	candidate := base
	for attempt := 0; attempt <= maxSuffixAttempts; attempt++ {
		if attempt > 0 {
			candidate = base + "-" + strconv.Itoa(attempt)
		}

		taken, err := a.accountRepo.SlugExists(ctx, accountType, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", domainerrors.ErrSlugAllocationFailed.WrapMessage("exhausted suffix attempts for base " + base)
}

// Slugify lowercases name, replaces every run of non-alphanumeric characters
// with a single hyphen and trims leading and trailing hyphens.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false

			continue
		}
		if !lastHyphen && b.Len() > 0 {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxBaseLength {
		slug = strings.Trim(slug[:maxBaseLength], "-")
	}

	return slug
}

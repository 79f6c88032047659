package slug

import (
	"context"
	"strconv"
	"testing"

	"github.com/ushankamesh-devX/helatrade-sub000/internal/domain/entity"
	domainerrors "github.com/ushankamesh-devX/helatrade-sub000/internal/domain/errors"
	mockRepo "github.com/ushankamesh-devX/helatrade-sub000/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "Highland Tea", want: "highland-tea"},
		{name: "punctuation collapses", input: "Green Valley Farm!!", want: "green-valley-farm"},
		{name: "mixed separators", input: "Spice__&__Co.", want: "spice-co"},
		{name: "leading and trailing junk", input: "  --Fresh Mart--  ", want: "fresh-mart"},
		{name: "digits survive", input: "Store 24x7", want: "store-24x7"},
		{name: "non-ascii stripped", input: "Çay Evi", want: "ay-evi"},
		{name: "empty after stripping", input: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestAllocator_Allocate_BaseFree(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	allocator := NewAllocator(accountRepo)
	ctx := context.Background()

	accountRepo.EXPECT().
		SlugExists(ctx, entity.AccountTypeProducer, "green-valley-farm", uuid.Nil).
		Return(false, nil)

	slug, err := allocator.Allocate(ctx, "Green Valley Farm", entity.AccountTypeProducer, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, "green-valley-farm", slug)
}

func TestAllocator_Allocate_SuffixOnCollision(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	allocator := NewAllocator(accountRepo)
	ctx := context.Background()

	accountRepo.EXPECT().
		SlugExists(ctx, entity.AccountTypeProducer, "green-valley-farm", uuid.Nil).
		Return(true, nil)
	accountRepo.EXPECT().
		SlugExists(ctx, entity.AccountTypeProducer, "green-valley-farm-1", uuid.Nil).
		Return(false, nil)

	slug, err := allocator.Allocate(ctx, "Green Valley Farm", entity.AccountTypeProducer, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, "green-valley-farm-1", slug)
}

func TestAllocator_Allocate_NamespacesAreIndependent(t *testing.T) {
	// The same base can be free for a store even when a producer holds it.
	accountRepo := mockRepo.NewMockAccountRepository(t)
	allocator := NewAllocator(accountRepo)
	ctx := context.Background()

	accountRepo.EXPECT().
		SlugExists(ctx, entity.AccountTypeStore, "green-valley-farm", uuid.Nil).
		Return(false, nil)

	slug, err := allocator.Allocate(ctx, "Green Valley Farm", entity.AccountTypeStore, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, "green-valley-farm", slug)
}

func TestAllocator_Allocate_ExhaustedSuffixes(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	allocator := NewAllocator(accountRepo)
	ctx := context.Background()

	accountRepo.EXPECT().
		SlugExists(ctx, entity.AccountTypeProducer, "highland-tea", uuid.Nil).
		Return(true, nil)
	for i := 1; i <= maxSuffixAttempts; i++ {
		accountRepo.EXPECT().
			SlugExists(ctx, entity.AccountTypeProducer, "highland-tea-"+strconv.Itoa(i), uuid.Nil).
			Return(true, nil)
	}

	slug, err := allocator.Allocate(ctx, "Highland Tea", entity.AccountTypeProducer, uuid.Nil)
	assert.Empty(t, slug)
	assert.True(t, errors.Is(err, domainerrors.ErrSlugAllocationFailed))
}

func TestAllocator_Allocate_EmptyNameFallsBack(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	allocator := NewAllocator(accountRepo)
	ctx := context.Background()

	accountRepo.EXPECT().
		SlugExists(ctx, entity.AccountTypeStore, "account", uuid.Nil).
		Return(false, nil)

	slug, err := allocator.Allocate(ctx, "!!!", entity.AccountTypeStore, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, "account", slug)
}

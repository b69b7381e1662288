package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/ticket-desk/internal/domain"
)

func newTestCartService() (*CartService, *mockInventoryRepository) {
	repo := &mockInventoryRepository{}
	repo.On("FindByCategory", mock.Anything, "Gold 1").Return(domain.InventoryRecord{Category: "Gold 1", UnitPrice: 300, TotalCount: 5}, nil)
	repo.On("FindByCategory", mock.Anything, "Bronze 2").Return(domain.InventoryRecord{Category: "Bronze 2", UnitPrice: 100, TotalCount: 3}, nil)
	repo.On("FindByCategory", mock.Anything, "Platinum").Return(domain.InventoryRecord{}, ErrCategoryNotFound)

	return NewCartService(NewInventoryService(repo)), repo
}

func TestCartService_Add(t *testing.T) {
	ctx := context.Background()
	carts, _ := newTestCartService()

	line, err := carts.Add(ctx, "s1", "Gold 1", "2")
	require.NoError(t, err)
	assert.Equal(t, domain.CartLine{Category: "Gold 1", UnitPrice: 300, Quantity: 2}, line)

	_, err = carts.Add(ctx, "s1", "Gold 1", "1")
	require.NoError(t, err)

	view := carts.View("s1")
	assert.Len(t, view.Lines, 2)
	assert.Equal(t, 900, view.Total)
	assert.True(t, carts.IsEmpty("s2"), "sessions do not share carts")
}

func TestCartService_AddRejectsBadAmountBeforeLookup(t *testing.T) {
	ctx := context.Background()
	carts, repo := newTestCartService()

	for _, input := range []string{"0", "-3", "abc"} {
		_, err := carts.Add(ctx, "s1", "Gold 1", input)
		assert.ErrorIs(t, err, ErrBadAmount, input)
	}

	assert.True(t, carts.IsEmpty("s1"))
	repo.AssertNotCalled(t, "FindByCategory", mock.Anything, mock.Anything)
}

func TestCartService_AddUnknownCategory(t *testing.T) {
	carts, _ := newTestCartService()

	_, err := carts.Add(context.Background(), "s1", "Platinum", "1")

	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.True(t, carts.IsEmpty("s1"))
}

func TestCartService_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	carts, _ := newTestCartService()
	_, err := carts.Add(ctx, "s1", "Gold 1", "2")
	require.NoError(t, err)
	_, err = carts.Add(ctx, "s1", "Bronze 2", "1")
	require.NoError(t, err)

	assert.ErrorIs(t, carts.Remove("s1", 2), ErrNoSelection)
	assert.Len(t, carts.Lines("s1"), 2)

	require.NoError(t, carts.Remove("s1", 0))
	assert.Equal(t, []domain.CartLine{{Category: "Bronze 2", UnitPrice: 100, Quantity: 1}}, carts.Lines("s1"))

	require.NoError(t, carts.Clear("s1"))
	assert.True(t, carts.IsEmpty("s1"))

	_, err = carts.Add(ctx, "s1", "Gold 1", "1")
	require.NoError(t, err)
	carts.Discard("s1")
	assert.True(t, carts.IsEmpty("s1"))
}

func TestCartService_LockedCartRejectsChanges(t *testing.T) {
	ctx := context.Background()
	carts, _ := newTestCartService()
	_, err := carts.Add(ctx, "s1", "Gold 1", "2")
	require.NoError(t, err)

	locked := carts.Lock("s1")
	assert.Equal(t, []domain.CartLine{{Category: "Gold 1", UnitPrice: 300, Quantity: 2}}, locked)
	assert.True(t, carts.View("s1").Locked)

	_, err = carts.Add(ctx, "s1", "Bronze 2", "1")
	assert.ErrorIs(t, err, ErrCartLocked)
	assert.ErrorIs(t, carts.Remove("s1", 0), ErrCartLocked)
	assert.ErrorIs(t, carts.Clear("s1"), ErrCartLocked)
	assert.Equal(t, locked, carts.Lines("s1"))

	_, err = carts.Add(ctx, "s2", "Bronze 2", "1")
	assert.NoError(t, err, "other sessions are not affected")

	carts.Unlock("s1")
	_, err = carts.Add(ctx, "s1", "Bronze 2", "1")
	require.NoError(t, err)
	assert.Len(t, carts.Lines("s1"), 2)

	carts.Lock("s1")
	carts.Settle("s1")
	assert.True(t, carts.IsEmpty("s1"))
	assert.False(t, carts.IsLocked("s1"))
}

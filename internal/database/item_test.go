package database

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroSource always yields the lower bound of a range.
type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func setupTestInventory(t *testing.T, capacity int) *Inventory {
	t.Helper()
	return NewInventory(capacity, rand.New(rand.NewSource(7)), DefaultItemLimits)
}

func ids(inv *Inventory) []int {
	var out []int
	for _, i := range inv.List() {
		out = append(out, i.ID)
	}
	return out
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	inv := setupTestInventory(t, 10)

	lastID, inserted, err := inv.Insert(1000, 3)
	require.NoError(t, err)
	assert.Equal(t, 1003, lastID)
	require.Len(t, inserted, 3)
	assert.Equal(t, []int{1001, 1002, 1003}, ids(inv))

	for _, i := range inv.List() {
		assert.GreaterOrEqual(t, i.Count, 1)
		assert.LessOrEqual(t, i.Count, 10)
		assert.GreaterOrEqual(t, i.Price, 100)
		assert.LessOrEqual(t, i.Price, 999)
	}
	assert.Equal(t, inserted, inv.List())
}

func TestInsertUsesInjectedSource(t *testing.T) {
	inv := NewInventory(2, zeroSource{}, ItemLimits{MinCount: 4, MaxCount: 9, MinPrice: 250, MaxPrice: 300})

	_, inserted, err := inv.Insert(0, 2)
	require.NoError(t, err)
	for _, i := range inserted {
		assert.Equal(t, 4, i.Count)
		assert.Equal(t, 250, i.Price)
	}
}

func TestInsertGrowsOnlyWhenNeeded(t *testing.T) {
	inv := setupTestInventory(t, 10)

	_, _, err := inv.Insert(1000, 4)
	require.NoError(t, err)
	assert.Equal(t, 10, inv.Len())
	assert.Equal(t, 6, inv.FreeSlots())

	assert.False(t, inv.NeedsGrowth(6))
	assert.True(t, inv.NeedsGrowth(7))

	_, _, err = inv.Insert(1004, 6)
	require.NoError(t, err)
	assert.Equal(t, 10, inv.Len())
	assert.Equal(t, 0, inv.FreeSlots())

	_, _, err = inv.Insert(1010, 3)
	require.NoError(t, err)
	assert.Equal(t, 13, inv.Len())
	assert.Equal(t, 0, inv.FreeSlots())
}

func TestInsertGrowsByExactlyN(t *testing.T) {
	inv := setupTestInventory(t, 2)

	_, _, err := inv.Insert(0, 1)
	require.NoError(t, err)

	// one free slot, five requested: the arena grows by five, leaving four spare
	_, _, err = inv.Insert(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 7, inv.Len())
	assert.Equal(t, 1, inv.FreeSlots())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(inv))
}

func TestInsertReusesFreedSlotsInStorageOrder(t *testing.T) {
	inv := setupTestInventory(t, 4)

	_, _, err := inv.Insert(1000, 4)
	require.NoError(t, err)
	require.NoError(t, inv.Remove(1002))
	require.NoError(t, inv.Remove(1004))

	lastID, _, err := inv.Insert(1004, 2)
	require.NoError(t, err)
	assert.Equal(t, 1006, lastID)
	assert.Equal(t, 4, inv.Len())
	assert.Equal(t, []int{1001, 1005, 1003, 1006}, ids(inv))
}

func TestInsertRejectsNonPositiveCount(t *testing.T) {
	inv := setupTestInventory(t, 10)

	lastID, inserted, err := inv.Insert(1000, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 1000, lastID)
	assert.Empty(t, inserted)

	_, _, err = inv.Insert(1000, -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Empty(t, inv.List())
}

func TestInsertRejectsTooManyItems(t *testing.T) {
	inv := NewInventory(2, zeroSource{}, ItemLimits{MinCount: 1, MaxCount: 1, MinPrice: 1, MaxPrice: 1, MaxInsert: 5})
	assert.Equal(t, 5, inv.MaxInsert())

	lastID, inserted, err := inv.Insert(1000, 6)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 1000, lastID)
	assert.Empty(t, inserted)
	assert.Equal(t, 2, inv.Len())

	lastID, inserted, err = inv.Insert(1000, 5)
	require.NoError(t, err)
	assert.Equal(t, 1005, lastID)
	assert.Len(t, inserted, 5)
}

func TestInsertHugeCountDoesNotAllocate(t *testing.T) {
	inv := NewInventory(10, zeroSource{}, ItemLimits{MinCount: 1, MaxCount: 1, MinPrice: 1, MaxPrice: 1})
	assert.Equal(t, DefaultMaxInsert, inv.MaxInsert())

	for _, n := range []int{DefaultMaxInsert + 1, 1_000_000_000, math.MaxInt - 500} {
		_, _, err := inv.Insert(1000, n)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
	assert.Equal(t, 10, inv.Len())
}

func TestInsertRejectsIDOverflow(t *testing.T) {
	inv := setupTestInventory(t, 10)

	_, _, err := inv.Insert(math.MaxInt-2, 3)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Empty(t, inv.List())

	lastID, _, err := inv.Insert(math.MaxInt-2, 2)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, lastID)
}

func TestInsertRejectsDuplicateIDs(t *testing.T) {
	inv := setupTestInventory(t, 10)

	_, _, err := inv.Insert(1000, 3)
	require.NoError(t, err)

	_, _, err = inv.Insert(1001, 2)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Len(t, inv.List(), 3)
}

func TestRemove(t *testing.T) {
	inv := setupTestInventory(t, 10)
	_, _, err := inv.Insert(1000, 3)
	require.NoError(t, err)

	require.NoError(t, inv.Remove(1002))
	assert.Equal(t, []int{1001, 1003}, ids(inv))

	_, err = inv.StockOf(1002)
	assert.ErrorIs(t, err, ErrNotFound)

	err = inv.Remove(1002)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveZeroIsNotFound(t *testing.T) {
	inv := setupTestInventory(t, 10)

	assert.ErrorIs(t, inv.Remove(0), ErrNotFound)
	assert.Equal(t, 10, inv.FreeSlots())
}

func TestStockOf(t *testing.T) {
	inv := NewInventory(1, zeroSource{}, DefaultItemLimits)
	_, _, err := inv.Insert(41, 1)
	require.NoError(t, err)

	stock, err := inv.StockOf(42)
	require.NoError(t, err)
	assert.Equal(t, 1, stock)

	_, err = inv.StockOf(43)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWithdraw(t *testing.T) {
	inv := NewInventory(1, zeroSource{}, ItemLimits{MinCount: 5, MaxCount: 5, MinPrice: 100, MaxPrice: 100})
	_, _, err := inv.Insert(0, 1)
	require.NoError(t, err)

	require.NoError(t, inv.withdraw(1, 2))
	stock, err := inv.StockOf(1)
	require.NoError(t, err)
	assert.Equal(t, 3, stock)

	err = inv.withdraw(1, 4)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Available)

	assert.ErrorIs(t, inv.withdraw(2, 1), ErrNotFound)
}

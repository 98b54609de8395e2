package database

import (
	"cashregister/internal/misc"
	"cashregister/internal/model"
	"github.com/pkg/errors"
	"math"
)

// RandomSource is satisfied by *math/rand.Rand.
type RandomSource interface {
	Intn(n int) int
}

// ItemLimits bounds the random count and price given to newly inserted items (inclusive).
// MaxInsert caps how many items a single Insert may create; zero means DefaultMaxInsert.
type ItemLimits struct {
	MinCount  int
	MaxCount  int
	MinPrice  int
	MaxPrice  int
	MaxInsert int
}

const DefaultMaxInsert = 10000

var DefaultItemLimits = ItemLimits{MinCount: 1, MaxCount: 10, MinPrice: 100, MaxPrice: 999, MaxInsert: DefaultMaxInsert}

type slot struct {
	item     model.Item
	occupied bool
}

// Inventory keeps items in an ordered arena of slots. Freed slots are reused by later
// inserts in storage order and the arena never shrinks.
type Inventory struct {
	slots  []slot
	index  map[int]int
	src    RandomSource
	limits ItemLimits
}

func NewInventory(capacity int, src RandomSource, limits ItemLimits) *Inventory {
	return &Inventory{
		slots:  make([]slot, misc.Max(capacity, 0)),
		index:  make(map[int]int),
		src:    src,
		limits: limits,
	}
}

// Len is the number of slots, occupied or not.
func (inv *Inventory) Len() int {
	return len(inv.slots)
}

func (inv *Inventory) FreeSlots() int {
	return len(inv.slots) - len(inv.index)
}

// MaxInsert is the largest n accepted by Insert.
func (inv *Inventory) MaxInsert() int {
	if inv.limits.MaxInsert <= 0 {
		return DefaultMaxInsert
	}
	return inv.limits.MaxInsert
}

// NeedsGrowth reports whether fewer than n slots are free.
func (inv *Inventory) NeedsGrowth(n int) bool {
	return inv.FreeSlots() < n
}

func (inv *Inventory) grow(n int) {
	grown := make([]slot, len(inv.slots)+n)
	copy(grown, inv.slots)
	inv.slots = grown
}

// Insert creates n items with ids lastID+1..lastID+n in the first free slots and returns
// the new last id together with the created items in fill order.
// The arena grows by exactly n when fewer than n slots are free.
func (inv *Inventory) Insert(lastID int, n int) (int, []model.Item, error) {
	if n <= 0 || n > inv.MaxInsert() {
		return lastID, nil, errors.Wrapf(ErrInvalidQuantity, "cannot insert %d items, limit: %d", n, inv.MaxInsert())
	}
	if lastID > math.MaxInt-n {
		return lastID, nil, errors.Wrapf(ErrInvalidQuantity, "inserting %d items after ID %d overflows", n, lastID)
	}
	for k := 1; k <= n; k++ {
		id := lastID + k
		if _, ok := inv.index[id]; ok {
			return lastID, nil, errors.Wrapf(ErrDuplicateID, "id: %d", id)
		}
	}

	if inv.NeedsGrowth(n) {
		inv.grow(n)
	}

	inserted := make([]model.Item, 0, n)
	nextID := lastID + 1
	for pos := range inv.slots {
		if len(inserted) == n {
			break
		}
		if inv.slots[pos].occupied {
			continue
		}
		i := model.Item{
			ID:    nextID,
			Count: misc.RandomBetween(inv.src, inv.limits.MinCount, inv.limits.MaxCount),
			Price: misc.RandomBetween(inv.src, inv.limits.MinPrice, inv.limits.MaxPrice),
		}
		inv.slots[pos] = slot{item: i, occupied: true}
		inv.index[i.ID] = pos
		inserted = append(inserted, i)
		nextID++
	}

	return lastID + n, inserted, nil
}

func (inv *Inventory) Remove(id int) error {
	pos, ok := inv.index[id]
	if !ok {
		return errors.Wrapf(ErrNotFound, "cannot remove item with ID: %d", id)
	}
	inv.slots[pos] = slot{}
	delete(inv.index, id)
	return nil
}

func (inv *Inventory) Find(id int) (model.Item, error) {
	pos, ok := inv.index[id]
	if !ok {
		return model.Item{}, errors.Wrapf(ErrNotFound, "item with ID: %d", id)
	}
	return inv.slots[pos].item, nil
}

func (inv *Inventory) StockOf(id int) (int, error) {
	i, err := inv.Find(id)
	if err != nil {
		return 0, err
	}
	return i.Count, nil
}

// List returns the stored items in storage order.
func (inv *Inventory) List() []model.Item {
	is := make([]model.Item, 0, len(inv.index))
	for _, s := range inv.slots {
		if s.occupied {
			is = append(is, s.item)
		}
	}
	return is
}

func (inv *Inventory) withdraw(id int, quantity int) error {
	pos, ok := inv.index[id]
	if !ok {
		return errors.Wrapf(ErrNotFound, "cannot withdraw from item with ID: %d", id)
	}
	if inv.slots[pos].item.Count < quantity {
		return &InsufficientStockError{ItemID: id, Available: inv.slots[pos].item.Count, Requested: quantity}
	}
	inv.slots[pos].item.Count -= quantity
	return nil
}

package database

import (
	"cashregister/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"time"
)

const DefaultLedgerCapacity = 1000

// Ledger is the append-only record of completed sales. A capacity of 0 means unbounded.
type Ledger struct {
	sales      []model.Sale
	capacity   int
	newReceipt func() uuid.UUID
}

func NewLedger(capacity int) *Ledger {
	return &Ledger{
		capacity:   capacity,
		newReceipt: uuid.New,
	}
}

func (l *Ledger) Capacity() int {
	return l.capacity
}

func (l *Ledger) Len() int {
	return len(l.sales)
}

func (l *Ledger) Full() bool {
	return l.capacity > 0 && len(l.sales) >= l.capacity
}

// Record appends a sale of quantity units of i, priced at i's current unit price.
func (l *Ledger) Record(i model.Item, quantity int, now time.Time) (model.Sale, error) {
	if quantity <= 0 {
		return model.Sale{}, errors.Wrapf(ErrInvalidQuantity, "cannot record %d of item %d", quantity, i.ID)
	}
	if l.Full() {
		return model.Sale{}, errors.Wrapf(ErrLedgerFull, "capacity: %d", l.capacity)
	}

	s := model.Sale{
		Receipt:    l.newReceipt(),
		ItemID:     i.ID,
		Quantity:   quantity,
		TotalPrice: i.TotalFor(quantity),
		Timestamp:  now,
	}
	l.sales = append(l.sales, s)
	return s, nil
}

// List returns a copy of the ledger in its current order.
func (l *Ledger) List() []model.Sale {
	return slices.Clone(l.sales)
}

// SortByItemID reorders the ledger by item id. Sales of the same item keep their
// relative order, and the new order is kept for later listings.
func (l *Ledger) SortByItemID() []model.Sale {
	slices.SortStableFunc(l.sales, func(a, b model.Sale) bool {
		return a.ItemID < b.ItemID
	})
	return l.List()
}

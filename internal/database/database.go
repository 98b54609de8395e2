package database

import (
	"cashregister/internal/model"
	"fmt"
	"github.com/pkg/errors"
	"time"
)

var (
	ErrNotFound          = errors.New("item not found")
	ErrDuplicateID       = errors.New("item id already in use")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrLedgerFull        = errors.New("sales ledger is full")
)

// InsufficientStockError reports the stock that was available when a sale was refused.
type InsufficientStockError struct {
	ItemID    int
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%v: item %d has %d in stock, requested %d",
		ErrInsufficientStock, e.ItemID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

type Database struct {
	Items *Inventory
	Sales *Ledger
}

// Sell withdraws quantity units of an item and records the sale at the item's current price.
// Selling exactly the remaining stock is allowed and leaves the item at zero.
// Nothing changes unless the whole transaction succeeds.
func (db Database) Sell(itemID int, quantity int, now time.Time) (model.Sale, error) {
	if quantity <= 0 {
		return model.Sale{}, errors.Wrapf(ErrInvalidQuantity, "cannot sell %d of item %d", quantity, itemID)
	}

	i, err := db.Items.Find(itemID)
	if err != nil {
		return model.Sale{}, err
	}
	if i.Count < quantity {
		return model.Sale{}, &InsufficientStockError{ItemID: itemID, Available: i.Count, Requested: quantity}
	}
	if db.Sales.Full() {
		return model.Sale{}, errors.Wrapf(ErrLedgerFull, "cannot record sale of item %d, capacity: %d",
			itemID, db.Sales.Capacity())
	}

	if err = db.Items.withdraw(itemID, quantity); err != nil {
		return model.Sale{}, err
	}
	return db.Sales.Record(i, quantity, now)
}

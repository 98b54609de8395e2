package menu

import (
	"cashregister/internal/console"
	"cashregister/internal/database"
	"github.com/pkg/errors"
)

func (m *Menu) insertItems() handler {
	return func() error {
		m.print("How many items to add? ")
		n, err := m.Input.ReadInt()
		if err != nil {
			return err
		}

		lastID, inserted, err := m.DB.Items.Insert(m.LastItemID, n)
		if err != nil {
			m.Logger.Debugf("insertItems: Error inserting %d Item(s) after ID %d, err: %v", n, m.LastItemID, err)
			if errors.Is(err, database.ErrInvalidQuantity) {
				m.printf("Number of items must be between 1 and %d.\n", m.DB.Items.MaxInsert())
			} else {
				m.println("Could not add items.")
			}
			return nil
		}

		m.LastItemID = lastID
		m.Logger.Infof("insertItems: Inserted %d Item(s), last item ID: %d, slots: %d",
			len(inserted), lastID, m.DB.Items.Len())
		m.printf("%d item(s) added.\n", len(inserted))
		return nil
	}
}

func (m *Menu) removeItem() handler {
	return func() error {
		m.print("Enter item ID to remove: ")
		id, err := m.Input.ReadInt()
		if err != nil {
			return err
		}

		if err = m.DB.Items.Remove(id); err != nil {
			m.Logger.Debugf("removeItem: %v", err)
			m.println("Could not find")
			return nil
		}
		m.Logger.Infof("removeItem: Removed Item with ID: %d", id)
		m.println("Item removed successfully.")
		return nil
	}
}

func (m *Menu) listItems() handler {
	return func() error {
		return console.PrintItems(m.Output, m.DB.Items.List())
	}
}

func (m *Menu) sellItem() handler {
	return func() error {
		m.print("Enter item ID to sell: ")
		id, err := m.Input.ReadInt()
		if err != nil {
			return err
		}
		if _, err = m.DB.Items.Find(id); err != nil {
			m.Logger.Debugf("sellItem: %v", err)
			m.println("Could not find")
			return nil
		}

		m.print("Enter amount to sell: ")
		quantity, err := m.Input.ReadInt()
		if err != nil {
			return err
		}

		s, err := m.DB.Sell(id, quantity, m.Now())
		var stockErr *database.InsufficientStockError
		switch {
		case err == nil:
			m.Logger.Infof("sellItem: Sold %d of Item %d for %d, receipt: %s", s.Quantity, s.ItemID, s.TotalPrice, s.Receipt)
			m.println("Sale registered successfully.")
		case errors.As(err, &stockErr):
			m.Logger.Debugf("sellItem: %v", err)
			m.println("Failed to sell specified amount")
			m.printf("Only %d in stock.\n", stockErr.Available)
		case errors.Is(err, database.ErrLedgerFull):
			m.Logger.Errorf("sellItem: Sale dropped, err: %v", err)
			m.println("Sales history is full, sale not registered.")
		case errors.Is(err, database.ErrNotFound):
			m.println("Could not find")
		default:
			m.Logger.Debugf("sellItem: %v", err)
			m.println("Failed to sell specified amount")
		}
		return nil
	}
}

func (m *Menu) listSales() handler {
	return func() error {
		return console.PrintSales(m.Output, m.DB.Sales.List(), m.DateLayout)
	}
}

func (m *Menu) listSortedSales() handler {
	return func() error {
		return console.PrintSales(m.Output, m.DB.Sales.SortByItemID(), m.DateLayout)
	}
}

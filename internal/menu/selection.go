package menu

//go:generate go run golang.org/x/tools/cmd/stringer -type=Selection -linecomment -output=selection_string.go

type Selection int

const (
	SelectionInsert      Selection = iota + 1 // Insert items
	SelectionRemove                           // Remove an item
	SelectionList                             // Display a list of items
	SelectionSell                             // Register a sale
	SelectionSales                            // Display sales history
	SelectionSortedSales                      // Sort and display sales history table
)

var selections = []Selection{
	SelectionInsert,
	SelectionRemove,
	SelectionList,
	SelectionSell,
	SelectionSales,
	SelectionSortedSales,
}

type handler func() error

func (m *Menu) handlers() map[Selection]handler {
	return map[Selection]handler{
		SelectionInsert:      m.insertItems(),
		SelectionRemove:      m.removeItem(),
		SelectionList:        m.listItems(),
		SelectionSell:        m.sellItem(),
		SelectionSales:       m.listSales(),
		SelectionSortedSales: m.listSortedSales(),
	}
}

package model

type Item struct {
	ID    int
	Count int
	Price int
}

// TotalFor prices quantity units at the item's current unit price.
func (i Item) TotalFor(quantity int) int {
	return quantity * i.Price
}

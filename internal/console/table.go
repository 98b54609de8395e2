package console

import (
	"cashregister/internal/model"
	"fmt"
	"io"
	"strings"
)

// DateLayout renders timestamps the way java.util.Date.toString does.
const DateLayout = "Mon Jan 02 15:04:05 MST 2006"

func PrintItems(w io.Writer, items []model.Item) error {
	var b strings.Builder
	b.WriteString("Item ID | Count | Price\n")
	b.WriteString("-----------------------\n")
	for _, i := range items {
		fmt.Fprintf(&b, "%7d | %5d | %5d\n", i.ID, i.Count, i.Price)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func PrintSales(w io.Writer, sales []model.Sale, layout string) error {
	if layout == "" {
		layout = DateLayout
	}
	var b strings.Builder
	b.WriteString("Item ID | Count | Total Price | Date\n")
	b.WriteString("-----------------------------------------\n")
	for _, s := range sales {
		fmt.Fprintf(&b, "%7d | %5d | %11d | %s\n", s.ItemID, s.Quantity, s.TotalPrice, s.Timestamp.Format(layout))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

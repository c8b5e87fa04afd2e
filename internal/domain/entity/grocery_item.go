package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var _ Item[GroceryItem] = GroceryItem{}

// GroceryItem representa un perecedero con fecha de vencimiento.
type GroceryItem struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	ExpiryDate time.Time       `json:"expiry_date"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// NewGroceryItem construye un perecedero sin precio (UnitPrice en cero).
func NewGroceryItem(id int, name string, quantity int, expiryDate time.Time) GroceryItem {
	return GroceryItem{
		ID:         id,
		Name:       name,
		Quantity:   quantity,
		ExpiryDate: expiryDate,
		UnitPrice:  decimal.Zero,
	}
}

func (g GroceryItem) ItemID() int                    { return g.ID }
func (g GroceryItem) ItemName() string               { return g.Name }
func (g GroceryItem) ItemQuantity() int              { return g.Quantity }
func (g GroceryItem) ItemUnitPrice() decimal.Decimal { return g.UnitPrice }
func (g GroceryItem) Kind() string                   { return KindGrocery }

// WithQuantity devuelve una copia con la nueva cantidad.
func (g GroceryItem) WithQuantity(quantity int) GroceryItem {
	g.Quantity = quantity
	return g
}

// WithUnitPrice devuelve una copia con el precio unitario indicado.
func (g GroceryItem) WithUnitPrice(price decimal.Decimal) GroceryItem {
	g.UnitPrice = price
	return g
}

// ExpiredAt indica si el producto ya venció en la fecha dada.
func (g GroceryItem) ExpiredAt(t time.Time) bool {
	return !g.ExpiryDate.IsZero() && g.ExpiryDate.Before(t)
}

func (g GroceryItem) String() string {
	return fmt.Sprintf("[Grocery] ID: %d, Name: %s, Qty: %d, Expiry: %s",
		g.ID, g.Name, g.Quantity, g.ExpiryDate.Format("2006-01-02"))
}

package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var _ Item[ElectronicItem] = ElectronicItem{}

// ElectronicItem representa un artículo electrónico con marca y meses de garantía.
type ElectronicItem struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Quantity       int             `json:"quantity"`
	Brand          string          `json:"brand"`
	WarrantyMonths int             `json:"warranty_months"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
}

// NewElectronicItem construye un electrónico sin precio (UnitPrice en cero).
func NewElectronicItem(id int, name string, quantity int, brand string, warrantyMonths int) ElectronicItem {
	return ElectronicItem{
		ID:             id,
		Name:           name,
		Quantity:       quantity,
		Brand:          brand,
		WarrantyMonths: warrantyMonths,
		UnitPrice:      decimal.Zero,
	}
}

func (e ElectronicItem) ItemID() int                    { return e.ID }
func (e ElectronicItem) ItemName() string               { return e.Name }
func (e ElectronicItem) ItemQuantity() int              { return e.Quantity }
func (e ElectronicItem) ItemUnitPrice() decimal.Decimal { return e.UnitPrice }
func (e ElectronicItem) Kind() string                   { return KindElectronic }

// WithQuantity devuelve una copia con la nueva cantidad.
func (e ElectronicItem) WithQuantity(quantity int) ElectronicItem {
	e.Quantity = quantity
	return e
}

// WithUnitPrice devuelve una copia con el precio unitario indicado.
func (e ElectronicItem) WithUnitPrice(price decimal.Decimal) ElectronicItem {
	e.UnitPrice = price
	return e
}

func (e ElectronicItem) String() string {
	return fmt.Sprintf("[Electronic] ID: %d, Name: %s, Qty: %d, Brand: %s, Warranty: %d months",
		e.ID, e.Name, e.Quantity, e.Brand, e.WarrantyMonths)
}

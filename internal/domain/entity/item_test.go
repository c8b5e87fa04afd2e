package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-core/internal/domain/entity"
)

func TestElectronicItem_String(t *testing.T) {
	item := entity.NewElectronicItem(1, "Laptop", 11, "HP", 22)
	assert.Equal(t, "[Electronic] ID: 1, Name: Laptop, Qty: 11, Brand: HP, Warranty: 22 months", item.String())
	assert.Equal(t, entity.KindElectronic, item.Kind())
}

func TestGroceryItem_StringYVencimiento(t *testing.T) {
	expiry := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	item := entity.NewGroceryItem(2, "Malt", 20, expiry)

	assert.Equal(t, "[Grocery] ID: 2, Name: Malt, Qty: 20, Expiry: 2026-03-15", item.String())
	assert.True(t, item.ExpiredAt(expiry.AddDate(0, 0, 1)))
	assert.False(t, item.ExpiredAt(expiry.AddDate(0, 0, -1)))
	assert.False(t, entity.GroceryItem{}.ExpiredAt(time.Now()), "sin fecha no vence")
}

func TestStockRecord_String(t *testing.T) {
	added := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := entity.NewStockRecord(1111, "Laptop", 5, added)
	assert.Equal(t, "ID: 1111, Name: Laptop, Quantity: 5, Date Added: 2025-01-02 03:04:05", rec.String())
}

func TestWithQuantity_NoMutaElOriginal(t *testing.T) {
	orig := entity.NewElectronicItem(1, "Laptop", 11, "HP", 22).WithUnitPrice(decimal.NewFromInt(2500))
	next := orig.WithQuantity(16)

	assert.Equal(t, 11, orig.Quantity)
	assert.Equal(t, 16, next.Quantity)
	assert.Equal(t, orig.Brand, next.Brand)
	assert.True(t, next.ItemUnitPrice().Equal(decimal.NewFromInt(2500)))
}

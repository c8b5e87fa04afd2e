package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/internal/infrastructure/pdf"
)

func TestStockReport_Generate(t *testing.T) {
	r := pdf.NewStockReport("Existencias")
	require.NoError(t, r.Section("Electronic Items"))
	require.NoError(t, r.Render(entity.NewElectronicItem(1, "Laptop", 11, "HP", 22)))
	require.NoError(t, r.Section("Records"))
	require.NoError(t, r.Render(entity.NewStockRecord(1111, "Printer", 3, time.Now())))

	assert.Equal(t, 2, r.Items())

	doc, err := r.Generate()
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "debe ser un PDF válido")
}

func TestStockReport_Vacio(t *testing.T) {
	doc, err := pdf.NewStockReport("Sin ítems").Generate()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestStockReport_CuentaVencidos(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := pdf.NewStockReport("Perecederos").WithClock(func() time.Time { return now })

	require.NoError(t, r.Section("Grocery Items"))
	require.NoError(t, r.Render(entity.NewGroceryItem(1, "Milk", 5, now.AddDate(0, 0, -1))))
	require.NoError(t, r.Render(entity.NewGroceryItem(2, "Rice", 9, now.AddDate(0, 1, 0))))
	require.NoError(t, r.Render(entity.NewGroceryItem(3, "Salt", 2, time.Time{})))

	assert.Equal(t, 3, r.Items())
	assert.Equal(t, 1, r.Expired(), "sin fecha de vencimiento no cuenta como vencido")

	doc, err := r.Generate()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

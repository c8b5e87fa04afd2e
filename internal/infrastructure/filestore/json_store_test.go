package filestore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/internal/infrastructure/filestore"
)

var added = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func TestJSONStore_SaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := filestore.NewJSONStore[entity.StockRecord](filepath.Join(t.TempDir(), "data"), nil)

	records := []entity.StockRecord{
		entity.NewStockRecord(1103, "PS5 Console", 15, added),
		entity.NewStockRecord(1111, "Laptop", 5, added),
	}
	require.NoError(t, store.Save(ctx, entity.KindRecord, records))

	loaded, err := store.Load(ctx, entity.KindRecord)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)

	_, err = os.Stat(store.Path(entity.KindRecord))
	assert.NoError(t, err, "el archivo debe existir en <dir>/<kind>.json")
}

func TestJSONStore_PreservaCamposDeVariante(t *testing.T) {
	ctx := context.Background()
	store := filestore.NewJSONStore[entity.ElectronicItem](t.TempDir(), nil)

	item := entity.NewElectronicItem(1, "Laptop", 11, "HP", 22).WithUnitPrice(decimal.RequireFromString("2450.50"))
	require.NoError(t, store.Save(ctx, entity.KindElectronic, []entity.ElectronicItem{item}))

	loaded, err := store.Load(ctx, entity.KindElectronic)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "HP", loaded[0].Brand)
	assert.Equal(t, 22, loaded[0].WarrantyMonths)
	assert.True(t, item.UnitPrice.Equal(loaded[0].UnitPrice))
}

func TestJSONStore_Load_ArchivoInexistente(t *testing.T) {
	store := filestore.NewJSONStore[entity.GroceryItem](t.TempDir(), nil)

	items, err := store.Load(context.Background(), entity.KindGrocery)
	require.NoError(t, err, "un archivo inexistente no es error")
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestJSONStore_Load_ArchivoCorrupto(t *testing.T) {
	dir := t.TempDir()
	store := filestore.NewJSONStore[entity.GroceryItem](dir, nil)
	require.NoError(t, os.WriteFile(store.Path(entity.KindGrocery), []byte("{no es json"), 0o600))

	_, err := store.Load(context.Background(), entity.KindGrocery)
	assert.Error(t, err)
}

func TestJSONStore_Save_ListaVacia(t *testing.T) {
	ctx := context.Background()
	store := filestore.NewJSONStore[entity.GroceryItem](t.TempDir(), nil)

	require.NoError(t, store.Save(ctx, entity.KindGrocery, nil))
	data, err := os.ReadFile(store.Path(entity.KindGrocery))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

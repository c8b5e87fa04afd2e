package stock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-core/internal/application/stock"
	"github.com/jhoicas/inventario-core/internal/domain"
	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/internal/infrastructure/memory"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newManager() *stock.WarehouseManager {
	return stock.NewWarehouseManager(
		memory.NewItemRepository[entity.ElectronicItem](),
		memory.NewItemRepository[entity.GroceryItem](),
		nil, nil,
	).WithClock(func() time.Time { return fixedNow })
}

// Escenario de referencia: Laptop 11 + 5 = 16, duplicado, baja 99 y cantidad -10.
func TestWarehouseManager_EscenarioCompleto(t *testing.T) {
	m := newManager()
	require.Zero(t, stock.Failed(m.SeedData()))

	updated, err := m.Electronics.IncreaseStock(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 16, updated.Quantity)

	err = m.Electronics.Add(entity.NewElectronicItem(1, "Tablet", 5, "Apple", 12))
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	assert.ErrorIs(t, m.Electronics.RemoveByID(99), domain.ErrNotFound)

	_, err = m.Electronics.SetQuantity(1, -10)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	laptop, err := m.Electronics.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 16, laptop.Quantity)
}

func TestWarehouseManager_SeedData_DosVeces(t *testing.T) {
	m := newManager()
	first := m.SeedData()
	require.Len(t, first, 4)
	assert.Zero(t, stock.Failed(first))

	second := m.SeedData()
	assert.Equal(t, 4, stock.Failed(second), "repetir la carga reporta cada id duplicado sin abortar")
	assert.Len(t, m.Electronics.List(), 2)
	assert.Len(t, m.Groceries.List(), 2)
}

func TestWarehouseManager_SeedData_FechasDeVencimiento(t *testing.T) {
	m := newManager()
	m.SeedData()

	maize, err := m.Groceries.Get(1)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.AddDate(0, 12, 0), maize.ExpiryDate)
	malt, _ := m.Groceries.Get(2)
	assert.Equal(t, fixedNow.AddDate(0, 0, 10), malt.ExpiryDate)
}

func TestWarehouseManager_RunDemo(t *testing.T) {
	m := newManager()
	r := &recordingRenderer{}

	report, err := m.RunDemo(r)
	require.NoError(t, err)

	assert.Equal(t, []string{"Grocery Items", "Electronic Items", "Testing Exceptions"}, r.sections)
	require.Len(t, r.lines, 4)
	assert.Contains(t, r.lines[0], "Maize")
	assert.Contains(t, r.lines[2], "Laptop")

	require.Len(t, report.Failures, 3)
	assert.ErrorIs(t, report.Failures[0], domain.ErrDuplicateKey)
	assert.ErrorIs(t, report.Failures[1], domain.ErrNotFound)
	assert.ErrorIs(t, report.Failures[2], domain.ErrInvalidQuantity)
	assert.ErrorIs(t, report.JoinFailures(), domain.ErrNotFound)

	maize, _ := m.Groceries.Get(1)
	assert.Equal(t, 40, maize.Quantity, "la cantidad negativa no se aplica")
}

// ──────────────────────────────────────────────────────────────────────────────
// Snapshotter
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore[T entity.Item[T]] struct {
	saved   map[string][]T
	loadErr error
}

func (f *fakeStore[T]) Save(_ context.Context, kind string, items []T) error {
	if f.saved == nil {
		f.saved = map[string][]T{}
	}
	f.saved[kind] = append([]T(nil), items...)
	return nil
}

func (f *fakeStore[T]) Load(_ context.Context, kind string) ([]T, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.saved[kind], nil
}

func TestSnapshotter_ExportImport(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore[entity.StockRecord]{}

	src := stock.NewShelf(entity.KindRecord, memory.NewItemRepository[entity.StockRecord](), nil, nil)
	src.Seed(stock.SampleRecords(fixedNow))
	n, err := stock.NewSnapshotter(src, store).Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	dst := stock.NewShelf(entity.KindRecord, memory.NewItemRepository[entity.StockRecord](), nil, nil)
	n, err = stock.NewSnapshotter(dst, store).Import(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, src.List(), dst.List())
}

func TestSnapshotter_ImportErrorNoCambiaRepositorio(t *testing.T) {
	ctx := context.Background()
	shelf := newElectronicsShelf(t)

	failing := &fakeStore[entity.ElectronicItem]{loadErr: errors.New("sin conexión")}
	_, err := stock.NewSnapshotter(shelf, failing).Import(ctx)
	assert.Error(t, err)
	assert.Len(t, shelf.List(), 2)

	dup := &fakeStore[entity.ElectronicItem]{saved: map[string][]entity.ElectronicItem{
		entity.KindElectronic: {
			entity.NewElectronicItem(9, "A", 1, "X", 1),
			entity.NewElectronicItem(9, "B", 1, "X", 1),
		},
	}}
	_, err = stock.NewSnapshotter(shelf, dup).Import(ctx)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	assert.Len(t, shelf.List(), 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Restore
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouseManager_Restore_SnapshotInvalidoNoAborta(t *testing.T) {
	ctx := context.Background()
	m := newManager()

	dup := &fakeStore[entity.ElectronicItem]{saved: map[string][]entity.ElectronicItem{
		entity.KindElectronic: {
			entity.NewElectronicItem(9, "A", 1, "X", 1),
			entity.NewElectronicItem(9, "B", 1, "X", 1),
		},
	}}
	neg := &fakeStore[entity.GroceryItem]{saved: map[string][]entity.GroceryItem{
		entity.KindGrocery: {entity.NewGroceryItem(3, "Salt", -2, fixedNow)},
	}}

	seeded, err := m.Restore(ctx,
		stock.NewSnapshotter(m.Electronics, dup),
		stock.NewSnapshotter(m.Groceries, neg),
	)
	require.NoError(t, err, "id repetido o cantidad negativa no detienen el arranque")
	assert.Len(t, seeded, 4, "ambos shelves quedaron vacíos y se cargan los datos iniciales")
	assert.Equal(t, 2, m.Electronics.Len())
	assert.Equal(t, 2, m.Groceries.Len())
	_, err = m.Electronics.Get(9)
	assert.ErrorIs(t, err, domain.ErrNotFound, "nada del snapshot inválido entra al repositorio")
}

func TestWarehouseManager_Restore_SnapshotValidoNoSiembra(t *testing.T) {
	ctx := context.Background()
	m := newManager()

	store := &fakeStore[entity.ElectronicItem]{saved: map[string][]entity.ElectronicItem{
		entity.KindElectronic: {entity.NewElectronicItem(7, "Radio", 3, "Sony", 6)},
	}}
	seeded, err := m.Restore(ctx, stock.NewSnapshotter(m.Electronics, store))
	require.NoError(t, err)
	assert.Nil(t, seeded)
	assert.Equal(t, 1, m.Electronics.Len())
	assert.Equal(t, 0, m.Groceries.Len())
}

func TestWarehouseManager_Restore_ErrorDeLecturaSeDevuelve(t *testing.T) {
	ctx := context.Background()
	m := newManager()

	failing := &fakeStore[entity.GroceryItem]{loadErr: errors.New("sin conexión")}
	seeded, err := m.Restore(ctx, stock.NewSnapshotter(m.Groceries, failing))
	require.Error(t, err)
	assert.Nil(t, seeded)
	assert.Equal(t, 0, m.Electronics.Len()+m.Groceries.Len())
}

func TestWarehouseManager_Restore_SinStoresSiembra(t *testing.T) {
	m := newManager()

	seeded, err := m.Restore(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stock.Failed(seeded))
	assert.Equal(t, 2, m.Electronics.Len())
}

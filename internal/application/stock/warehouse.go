package stock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-core/internal/domain"
	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/internal/domain/repository"
	"github.com/jhoicas/inventario-core/pkg/logger"
)

// WarehouseManager compone un shelf por variante: electrónicos y perecederos.
// Los ids de cada shelf son independientes.
type WarehouseManager struct {
	Electronics *Shelf[entity.ElectronicItem]
	Groceries   *Shelf[entity.GroceryItem]

	log *logger.Logger
	now func() time.Time
}

// NewWarehouseManager construye el manager sobre los repositorios dados.
func NewWarehouseManager(
	electronics repository.ItemRepository[entity.ElectronicItem],
	groceries repository.ItemRepository[entity.GroceryItem],
	log *logger.Logger,
	obs Observer,
) *WarehouseManager {
	if log == nil {
		log = logger.Nop()
	}
	return &WarehouseManager{
		Electronics: NewShelf(entity.KindElectronic, electronics, log, obs),
		Groceries:   NewShelf(entity.KindGrocery, groceries, log, obs),
		log:         log.Named("warehouse"),
		now:         time.Now,
	}
}

// WithClock reemplaza el reloj usado para las fechas de vencimiento (tests).
func (m *WarehouseManager) WithClock(now func() time.Time) *WarehouseManager {
	m.now = now
	return m
}

// SeedData carga el conjunto fijo inicial en ambos shelves (best-effort).
func (m *WarehouseManager) SeedData() []SeedOutcome {
	now := m.now()
	electronics := []entity.ElectronicItem{
		entity.NewElectronicItem(1, "Laptop", 11, "HP", 22).WithUnitPrice(decimal.RequireFromString("2450.00")),
		entity.NewElectronicItem(2, "Smartphone", 13, "iPhone", 18).WithUnitPrice(decimal.RequireFromString("1199.90")),
	}
	groceries := []entity.GroceryItem{
		entity.NewGroceryItem(1, "Maize", 40, now.AddDate(0, 12, 0)).WithUnitPrice(decimal.RequireFromString("1.50")),
		entity.NewGroceryItem(2, "Malt", 20, now.AddDate(0, 0, 10)).WithUnitPrice(decimal.RequireFromString("2.75")),
	}
	outcomes := m.Electronics.Seed(electronics)
	return append(outcomes, m.Groceries.Seed(groceries)...)
}

// Importer lo implementa Snapshotter para cualquier variante.
type Importer interface {
	Import(ctx context.Context) (int, error)
}

// Restore importa los snapshots y, si ambos shelves quedan vacíos, carga los datos
// iniciales. Un snapshot con id repetido o cantidad negativa no aborta el arranque:
// se registra y ese shelf queda como estaba. Los errores de lectura del store sí
// se devuelven. El resultado es nil si no hubo carga inicial.
func (m *WarehouseManager) Restore(ctx context.Context, importers ...Importer) ([]SeedOutcome, error) {
	for _, imp := range importers {
		if _, err := imp.Import(ctx); err != nil {
			if _, ok := domain.AsRepositoryError(err); !ok {
				return nil, err
			}
			m.log.Error().Err(err).Msg("snapshot descartado, se continúa sin él")
		}
	}
	if m.Electronics.Len() > 0 || m.Groceries.Len() > 0 {
		return nil, nil
	}
	seeded := m.SeedData()
	m.log.Info().Int("failed", Failed(seeded)).Msg("datos iniciales cargados")
	return seeded, nil
}

// DemoReport lo que ocurrió durante RunDemo: carga inicial y fallos esperados.
type DemoReport struct {
	Seed     []SeedOutcome
	Failures []error
}

// RunDemo carga datos, imprime ambos shelves y ejercita los tres fallos del repositorio
// (clave duplicada, baja inexistente, cantidad negativa). Solo un error del renderer lo aborta.
func (m *WarehouseManager) RunDemo(r Renderer) (*DemoReport, error) {
	report := &DemoReport{Seed: m.SeedData()}

	if err := section(r, m.Groceries.Title(), m.Groceries.PrintAll); err != nil {
		return report, err
	}
	if err := section(r, m.Electronics.Title(), m.Electronics.PrintAll); err != nil {
		return report, err
	}
	if err := r.Section("Testing Exceptions"); err != nil {
		return report, err
	}

	steps := []func() error{
		func() error { return m.Electronics.Add(entity.NewElectronicItem(1, "Tablet", 5, "Apple", 12)) },
		func() error { return m.Groceries.RemoveByID(99) },
		func() error { _, err := m.Groceries.SetQuantity(1, -10); return err },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			report.Failures = append(report.Failures, err)
		}
	}
	m.log.Info().
		Int("seed_failed", Failed(report.Seed)).
		Int("failures", len(report.Failures)).
		Str("valuation_electronics", m.Electronics.Valuation().StringFixed(2)).
		Str("valuation_groceries", m.Groceries.Valuation().StringFixed(2)).
		Msg("demo terminada")
	return report, nil
}

func section(r Renderer, title string, print func(Renderer) error) error {
	if err := r.Section(title); err != nil {
		return fmt.Errorf("section %q: %w", title, err)
	}
	return print(r)
}

// SampleRecords registros de ejemplo para la bitácora de inventario.
func SampleRecords(now time.Time) []entity.StockRecord {
	return []entity.StockRecord{
		entity.NewStockRecord(1111, "Laptop", 5, now),
		entity.NewStockRecord(1112, "Television", 10, now),
		entity.NewStockRecord(1103, "PS5 Console", 15, now),
		entity.NewStockRecord(1114, "Monitor", 19, now),
		entity.NewStockRecord(1106, "Printer", 3, now),
	}
}

// JoinFailures agrupa los errores de un reporte para mostrarlos de una vez.
func (r *DemoReport) JoinFailures() error {
	return errors.Join(r.Failures...)
}

// Package stock orquesta los repositorios de ítems: carga inicial, aumento de stock,
// bajas, impresión y valorización. Cada Shelf envuelve un repositorio de una variante.
package stock

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-core/internal/domain"
	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/internal/domain/repository"
	"github.com/jhoicas/inventario-core/pkg/logger"
)

// Operaciones propias del manager (las del repositorio están en domain.Op*).
const (
	OpIncreaseStock = "increase_stock"
	OpSeed          = "seed"
)

// Shelf casos de uso de stock sobre un repositorio de una variante.
// Los fallos del repositorio se registran en el log y se devuelven sin traducir:
// ningún fallo individual aborta al caller.
type Shelf[T entity.Item[T]] struct {
	kind string
	repo repository.ItemRepository[T]
	log  *logger.Logger
	obs  Observer
}

// NewShelf construye el shelf. log y obs pueden ser nil.
func NewShelf[T entity.Item[T]](kind string, repo repository.ItemRepository[T], log *logger.Logger, obs Observer) *Shelf[T] {
	if log == nil {
		log = logger.Nop()
	}
	if obs == nil {
		obs = nopObserver{}
	}
	return &Shelf[T]{
		kind: kind,
		repo: repo,
		log:  log.Named("stock").WithField("kind", kind),
		obs:  obs,
	}
}

// Kind variante que maneja este shelf.
func (s *Shelf[T]) Kind() string { return s.kind }

// Repository acceso de solo lectura al repositorio subyacente (snapshots, handlers).
func (s *Shelf[T]) Repository() repository.ItemRepository[T] { return s.repo }

// Add inserta un ítem; DuplicateKey o InvalidQuantity se registran y se devuelven.
func (s *Shelf[T]) Add(item T) error {
	err := s.repo.Add(item)
	s.observe(domain.OpAdd, err)
	if err != nil {
		s.log.Warn().Err(err).Int("id", item.ItemID()).Msg("alta de ítem rechazada")
		return err
	}
	s.log.Debug().Int("id", item.ItemID()).Str("name", item.ItemName()).Msg("ítem agregado")
	return nil
}

// Get devuelve el ítem por id.
func (s *Shelf[T]) Get(id int) (T, error) {
	item, err := s.repo.GetByID(id)
	s.observe(domain.OpGet, err)
	return item, err
}

// Len cantidad de ítems almacenados.
func (s *Shelf[T]) Len() int { return s.repo.Len() }

// Title encabezado de sección para el kind del shelf.
func (s *Shelf[T]) Title() string { return SectionTitle(s.kind) }

// SectionTitle encabezado usado al imprimir un kind.
func SectionTitle(kind string) string {
	switch kind {
	case entity.KindElectronic:
		return "Electronic Items"
	case entity.KindGrocery:
		return "Grocery Items"
	case entity.KindRecord:
		return "Stock Records"
	default:
		return kind
	}
}

// List snapshot de todos los ítems.
func (s *Shelf[T]) List() []T {
	return s.repo.GetAll()
}

// SetQuantity fija la cantidad absoluta de un ítem.
func (s *Shelf[T]) SetQuantity(id, quantity int) (T, error) {
	err := s.repo.UpdateQuantity(id, quantity)
	s.observe(domain.OpUpdateQuantity, err)
	if err != nil {
		s.log.Warn().Err(err).Int("id", id).Int("quantity", quantity).Msg("actualización de cantidad rechazada")
		var zero T
		return zero, err
	}
	return s.repo.GetByID(id)
}

// IncreaseStock suma delta a la cantidad actual con repo.Adjust, que lee y escribe
// en una sola sección crítica. El error devuelto conserva su tipo original:
// ErrNotFound si el id no existe, ErrInvalidQuantity si el resultado es negativo
// o desborda int. En ambos casos no hay mutación.
func (s *Shelf[T]) IncreaseStock(id, delta int) (T, error) {
	updated, err := s.repo.Adjust(id, delta)
	s.observe(OpIncreaseStock, err)
	if err != nil {
		s.log.Warn().Err(err).Int("id", id).Int("delta", delta).Msg("error aumentando stock")
		var zero T
		return zero, err
	}
	s.log.Info().
		Int("id", id).
		Str("name", updated.ItemName()).
		Int("quantity", updated.ItemQuantity()).
		Msg("stock actualizado")
	return updated, nil
}

// RemoveByID elimina el ítem; el fallo se reporta y se devuelve, nunca es fatal.
func (s *Shelf[T]) RemoveByID(id int) error {
	err := s.repo.Remove(id)
	s.observe(domain.OpRemove, err)
	if err != nil {
		s.log.Warn().Err(err).Int("id", id).Msg("error eliminando ítem")
		return err
	}
	s.log.Info().Int("id", id).Msg("ítem eliminado")
	return nil
}

// PrintAll entrega cada ítem del snapshot actual al renderer.
func (s *Shelf[T]) PrintAll(r Renderer) error {
	for _, item := range s.repo.GetAll() {
		if err := r.Render(item); err != nil {
			return fmt.Errorf("render %s %d: %w", s.kind, item.ItemID(), err)
		}
	}
	return nil
}

// Valuation suma cantidad * precio unitario de las variantes con precio.
func (s *Shelf[T]) Valuation() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.repo.GetAll() {
		p, ok := any(item).(entity.Priced)
		if !ok {
			continue
		}
		total = total.Add(p.ItemUnitPrice().Mul(decimal.NewFromInt(int64(item.ItemQuantity()))))
	}
	return total
}

func (s *Shelf[T]) observe(op string, err error) {
	s.obs.Observe(s.kind, op, err)
	s.obs.SetItems(s.kind, s.repo.Len())
}

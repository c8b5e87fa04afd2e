package cli

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-core/internal/application/stock"
	"github.com/jhoicas/inventario-core/internal/domain/entity"
)

// shelfCommands operaciones de la consola comunes a cualquier variante.
type shelfCommands interface {
	title() string
	count() int
	valuation() decimal.Decimal
	printAll(r stock.Renderer) error
	get(id int) (entity.View, error)
	increase(id, delta int) (entity.View, error)
	set(id, quantity int) (entity.View, error)
	remove(id int) error
}

type shelfAdapter[T entity.Item[T]] struct {
	s *stock.Shelf[T]
}

func (a shelfAdapter[T]) title() string                   { return a.s.Title() }
func (a shelfAdapter[T]) count() int                      { return a.s.Len() }
func (a shelfAdapter[T]) valuation() decimal.Decimal      { return a.s.Valuation() }
func (a shelfAdapter[T]) printAll(r stock.Renderer) error { return a.s.PrintAll(r) }
func (a shelfAdapter[T]) remove(id int) error             { return a.s.RemoveByID(id) }

func (a shelfAdapter[T]) get(id int) (entity.View, error) {
	item, err := a.s.Get(id)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (a shelfAdapter[T]) increase(id, delta int) (entity.View, error) {
	item, err := a.s.IncreaseStock(id, delta)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (a shelfAdapter[T]) set(id, quantity int) (entity.View, error) {
	item, err := a.s.SetQuantity(id, quantity)
	if err != nil {
		return nil, err
	}
	return item, nil
}

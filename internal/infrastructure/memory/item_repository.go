// Package memory implementa los puertos de repositorio en memoria (sin durabilidad).
package memory

import (
	"math"
	"sort"
	"sync"

	"github.com/jhoicas/inventario-core/internal/domain"
	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/internal/domain/repository"
)

var (
	_ repository.ItemRepository[entity.ElectronicItem] = (*ItemRepo[entity.ElectronicItem])(nil)
	_ repository.ItemRepository[entity.GroceryItem]    = (*ItemRepo[entity.GroceryItem])(nil)
	_ repository.ItemRepository[entity.StockRecord]    = (*ItemRepo[entity.StockRecord])(nil)
)

// ItemRepo almacén con clave por id para una variante de ítem.
// Lecturas con lock compartido, escrituras con lock exclusivo (una instancia por variante).
type ItemRepo[T entity.Item[T]] struct {
	mu    sync.RWMutex
	items map[int]T
}

// NewItemRepository construye un repositorio vacío.
func NewItemRepository[T entity.Item[T]]() *ItemRepo[T] {
	return &ItemRepo[T]{items: make(map[int]T)}
}

// Add inserta el ítem con clave item.ItemID().
func (r *ItemRepo[T]) Add(item T) error {
	id := item.ItemID()
	if q := item.ItemQuantity(); q < 0 {
		return domain.InvalidQuantity(domain.OpAdd, id, q)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; ok {
		return domain.DuplicateKey(domain.OpAdd, id)
	}
	r.items[id] = item
	return nil
}

// GetByID devuelve una copia del ítem almacenado.
func (r *ItemRepo[T]) GetByID(id int) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, domain.NotFound(domain.OpGet, id)
	}
	return item, nil
}

// Remove elimina el ítem; si no existe el repositorio queda intacto.
func (r *ItemRepo[T]) Remove(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.NotFound(domain.OpRemove, id)
	}
	delete(r.items, id)
	return nil
}

// UpdateQuantity fija la cantidad. La validación va antes de la búsqueda.
func (r *ItemRepo[T]) UpdateQuantity(id, newQuantity int) error {
	if newQuantity < 0 {
		return domain.InvalidQuantity(domain.OpUpdateQuantity, id, newQuantity)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return domain.NotFound(domain.OpUpdateQuantity, id)
	}
	r.items[id] = item.WithQuantity(newQuantity)
	return nil
}

// Adjust lee y escribe bajo el mismo lock exclusivo; incrementos concurrentes no se pierden.
func (r *ItemRepo[T]) Adjust(id, delta int) (T, error) {
	var zero T
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return zero, domain.NotFound(domain.OpAdjust, id)
	}
	current := item.ItemQuantity()
	if delta > 0 && current > math.MaxInt-delta {
		return zero, domain.QuantityOverflow(domain.OpAdjust, id, current, delta)
	}
	newQuantity := current + delta
	if newQuantity < 0 {
		return zero, domain.InvalidQuantity(domain.OpAdjust, id, newQuantity)
	}
	updated := item.WithQuantity(newQuantity)
	r.items[id] = updated
	return updated, nil
}

// GetAll devuelve un snapshot ordenado por id.
func (r *ItemRepo[T]) GetAll() []T {
	r.mu.RLock()
	list := make([]T, 0, len(r.items))
	for _, item := range r.items {
		list = append(list, item)
	}
	r.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].ItemID() < list[j].ItemID() })
	return list
}

// Len cantidad de ítems almacenados.
func (r *ItemRepo[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Replace valida el lote completo y solo entonces reemplaza el contenido.
// Ante cualquier id repetido o cantidad negativa el repositorio no cambia.
func (r *ItemRepo[T]) Replace(items []T) error {
	next := make(map[int]T, len(items))
	for _, item := range items {
		id := item.ItemID()
		if q := item.ItemQuantity(); q < 0 {
			return domain.InvalidQuantity(domain.OpReplace, id, q)
		}
		if _, ok := next[id]; ok {
			return domain.DuplicateKey(domain.OpReplace, id)
		}
		next[id] = item
	}
	r.mu.Lock()
	r.items = next
	r.mu.Unlock()
	return nil
}

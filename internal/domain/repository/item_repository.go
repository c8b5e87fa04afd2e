package repository

import (
	"context"

	"github.com/jhoicas/inventario-core/internal/domain/entity"
)

// ItemRepository define el puerto del almacén con clave para una variante de ítem (DIP).
// Los errores devueltos envuelven domain.ErrDuplicateKey, domain.ErrNotFound o domain.ErrInvalidQuantity.
type ItemRepository[T entity.Item[T]] interface {
	Add(item T) error
	GetByID(id int) (T, error)
	Remove(id int) error
	// UpdateQuantity valida la cantidad antes de verificar existencia:
	// UpdateQuantity(idInexistente, -1) reporta ErrInvalidQuantity.
	UpdateQuantity(id, newQuantity int) error
	// Adjust suma delta a la cantidad actual en una sola sección crítica y
	// devuelve el ítem resultante. Orden de errores: ErrNotFound, luego
	// ErrInvalidQuantity (desborde o resultado negativo).
	Adjust(id, delta int) (T, error)
	// GetAll devuelve una copia; mutaciones posteriores no la afectan.
	GetAll() []T
	Len() int
	// Replace reemplaza todo el contenido de forma atómica (importación de snapshot).
	Replace(items []T) error
}

// SnapshotStore define el puerto de persistencia por snapshot completo de un repositorio.
// Load sobre un kind sin datos devuelve una lista vacía, no un error.
type SnapshotStore[T entity.Item[T]] interface {
	Save(ctx context.Context, kind string, items []T) error
	Load(ctx context.Context, kind string) ([]T, error)
}

package stock

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/internal/domain/repository"
)

// Snapshotter importa/exporta el contenido completo de un shelf contra un SnapshotStore.
// La persistencia queda en el borde: ninguna operación del repositorio la conoce.
type Snapshotter[T entity.Item[T]] struct {
	shelf *Shelf[T]
	store repository.SnapshotStore[T]
}

// NewSnapshotter construye el snapshotter para un shelf.
func NewSnapshotter[T entity.Item[T]](shelf *Shelf[T], store repository.SnapshotStore[T]) *Snapshotter[T] {
	return &Snapshotter[T]{shelf: shelf, store: store}
}

// Export guarda el snapshot actual (GetAll) del shelf.
func (s *Snapshotter[T]) Export(ctx context.Context) (int, error) {
	items := s.shelf.repo.GetAll()
	if err := s.store.Save(ctx, s.shelf.kind, items); err != nil {
		s.shelf.log.Error().Err(err).Msg("error guardando snapshot")
		return 0, fmt.Errorf("export %s: %w", s.shelf.kind, err)
	}
	s.shelf.log.Info().Int("items", len(items)).Msg("snapshot guardado")
	return len(items), nil
}

// Import reemplaza el contenido del shelf con el snapshot almacenado.
// Un snapshot vacío deja el repositorio vacío.
func (s *Snapshotter[T]) Import(ctx context.Context) (int, error) {
	items, err := s.store.Load(ctx, s.shelf.kind)
	if err != nil {
		s.shelf.log.Error().Err(err).Msg("error cargando snapshot")
		return 0, fmt.Errorf("import %s: %w", s.shelf.kind, err)
	}
	if err := s.shelf.repo.Replace(items); err != nil {
		s.shelf.log.Error().Err(err).Msg("snapshot inválido, repositorio sin cambios")
		return 0, fmt.Errorf("import %s: %w", s.shelf.kind, err)
	}
	s.shelf.obs.SetItems(s.shelf.kind, len(items))
	s.shelf.log.Info().Int("items", len(items)).Msg("snapshot cargado")
	return len(items), nil
}

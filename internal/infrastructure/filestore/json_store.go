// Package filestore persiste snapshots de repositorios como archivos JSON (uno por kind).
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/internal/domain/repository"
	"github.com/jhoicas/inventario-core/pkg/logger"
)

var _ repository.SnapshotStore[entity.StockRecord] = (*JSONStore[entity.StockRecord])(nil)

// JSONStore guarda <dir>/<kind>.json con el snapshot completo, indentado.
type JSONStore[T entity.Item[T]] struct {
	dir string
	log *logger.Logger
}

// NewJSONStore construye el store; el directorio se crea al guardar.
func NewJSONStore[T entity.Item[T]](dir string, log *logger.Logger) *JSONStore[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &JSONStore[T]{dir: dir, log: log.Named("filestore")}
}

// Path ruta del archivo para un kind.
func (s *JSONStore[T]) Path(kind string) string {
	return filepath.Join(s.dir, kind+".json")
}

// Save escribe a un archivo temporal y lo renombra, para no dejar un snapshot a medias.
func (s *JSONStore[T]) Save(_ context.Context, kind string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", kind, err)
	}
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create dir %s: %w", s.dir, err)
	}
	tmp, err := os.CreateTemp(s.dir, kind+"-*.json.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.Path(kind)); err != nil {
		return fmt.Errorf("rename snapshot: %w", err)
	}
	s.log.Debug().Str("path", s.Path(kind)).Int("items", len(items)).Msg("snapshot escrito")
	return nil
}

// Load lee el snapshot; si el archivo no existe devuelve una lista vacía.
func (s *JSONStore[T]) Load(_ context.Context, kind string) ([]T, error) {
	path := s.Path(kind)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Info().Str("path", path).Msg("archivo no encontrado, no se cargaron datos")
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

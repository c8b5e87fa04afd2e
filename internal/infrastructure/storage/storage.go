// Package storage elige el SnapshotStore de cada variante según STORAGE_DRIVER.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/internal/domain/repository"
	"github.com/jhoicas/inventario-core/internal/infrastructure/filestore"
	"github.com/jhoicas/inventario-core/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-core/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-core/pkg/config"
	"github.com/jhoicas/inventario-core/pkg/logger"
)

// Stores un SnapshotStore por variante. Con driver memory Enabled() es false.
type Stores struct {
	Driver      string
	Electronics repository.SnapshotStore[entity.ElectronicItem]
	Groceries   repository.SnapshotStore[entity.GroceryItem]
	Records     repository.SnapshotStore[entity.StockRecord]

	close func()
}

// Enabled indica si hay persistencia configurada.
func (s *Stores) Enabled() bool { return s.Electronics != nil }

// Close libera conexiones (sqlite/postgres); es seguro llamarlo siempre.
func (s *Stores) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open construye los stores del driver configurado.
func Open(ctx context.Context, cfg config.StorageConfig, db config.DBConfig, log *logger.Logger) (*Stores, error) {
	if log == nil {
		log = logger.Nop()
	}
	s := &Stores{Driver: cfg.Driver}
	switch cfg.Driver {
	case config.StorageMemory:
		log.Info().Msg("persistencia deshabilitada, inventario solo en memoria")
	case config.StorageJSON:
		s.Electronics = filestore.NewJSONStore[entity.ElectronicItem](cfg.Path, log)
		s.Groceries = filestore.NewJSONStore[entity.GroceryItem](cfg.Path, log)
		s.Records = filestore.NewJSONStore[entity.StockRecord](cfg.Path, log)
	case config.StorageSQLite:
		conn, err := sqlite.Open(filepath.Join(cfg.Path, sqlite.DefaultFile))
		if err != nil {
			return nil, fmt.Errorf("storage sqlite: %w", err)
		}
		s.bindSQLite(conn, log)
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, db)
		if err != nil {
			return nil, fmt.Errorf("storage postgres: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("storage postgres: %w", err)
		}
		s.Electronics = postgres.NewSnapshotStore[entity.ElectronicItem](pool, log)
		s.Groceries = postgres.NewSnapshotStore[entity.GroceryItem](pool, log)
		s.Records = postgres.NewSnapshotStore[entity.StockRecord](pool, log)
		s.close = pool.Close
	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Driver)
	}
	log.Info().Str("driver", cfg.Driver).Str("path", cfg.Path).Msg("almacenamiento listo")
	return s, nil
}

func (s *Stores) bindSQLite(conn *sql.DB, log *logger.Logger) {
	s.Electronics = sqlite.NewSnapshotStore[entity.ElectronicItem](conn, log)
	s.Groceries = sqlite.NewSnapshotStore[entity.GroceryItem](conn, log)
	s.Records = sqlite.NewSnapshotStore[entity.StockRecord](conn, log)
	s.close = func() { _ = conn.Close() }
}

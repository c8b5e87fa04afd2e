// Package sqlite persiste snapshots de inventario en un archivo SQLite (driver puro Go).
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // driver sqlite sin cgo

	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/internal/domain/repository"
	"github.com/jhoicas/inventario-core/pkg/logger"
)

// DefaultFile nombre del archivo dentro de STORAGE_PATH.
const DefaultFile = "inventario.db"

const schema = `CREATE TABLE IF NOT EXISTS items (
	kind     TEXT    NOT NULL,
	id       INTEGER NOT NULL,
	name     TEXT    NOT NULL,
	quantity INTEGER NOT NULL,
	payload  BLOB    NOT NULL,
	saved_at TEXT    NOT NULL,
	PRIMARY KEY (kind, id)
)`

var _ repository.SnapshotStore[entity.ElectronicItem] = (*SnapshotStore[entity.ElectronicItem])(nil)

// Open abre (o crea) la base en path y asegura el esquema.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = DefaultFile
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create items table: %w", err)
	}
	return db, nil
}

// SnapshotStore guarda una fila por ítem; el payload es el ítem completo en JSON
// para conservar los campos propios de cada variante.
type SnapshotStore[T entity.Item[T]] struct {
	db  *sql.DB
	log *logger.Logger
	now func() time.Time
}

// NewSnapshotStore construye el store sobre una base ya abierta con Open.
func NewSnapshotStore[T entity.Item[T]](db *sql.DB, log *logger.Logger) *SnapshotStore[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &SnapshotStore[T]{db: db, log: log.Named("sqlite"), now: time.Now}
}

// Save reemplaza el contenido del kind en una sola transacción.
func (s *SnapshotStore[T]) Save(ctx context.Context, kind string, items []T) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE kind = ?`, kind); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO items (kind, id, name, quantity, payload, saved_at) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	savedAt := s.now().UTC().Format(time.RFC3339)
	for _, it := range items {
		payload, err := json.Marshal(it)
		if err != nil {
			return fmt.Errorf("marshal %s %d: %w", kind, it.ItemID(), err)
		}
		if _, err := stmt.ExecContext(ctx, kind, it.ItemID(), it.ItemName(), it.ItemQuantity(), payload, savedAt); err != nil {
			return fmt.Errorf("insert %s %d: %w", kind, it.ItemID(), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.log.Debug().Str("kind", kind).Int("items", len(items)).Msg("snapshot guardado")
	return nil
}

// Load devuelve los ítems del kind ordenados por id; sin filas devuelve lista vacía.
func (s *SnapshotStore[T]) Load(ctx context.Context, kind string) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM items WHERE kind = ? ORDER BY id`, kind)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", kind, err)
	}
	defer func() { _ = rows.Close() }()

	items := []T{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		var it T
		if err := json.Unmarshal(payload, &it); err != nil {
			return nil, fmt.Errorf("decode %s: %w", kind, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return items, nil
}

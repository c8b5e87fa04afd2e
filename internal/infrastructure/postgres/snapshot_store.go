package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-core/internal/domain"
	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/internal/domain/repository"
	"github.com/jhoicas/inventario-core/pkg/logger"
)

// Schema tabla de snapshots; payload conserva el ítem completo de cada variante.
const Schema = `
CREATE TABLE IF NOT EXISTS inventory_items (
	kind       TEXT        NOT NULL,
	id         INTEGER     NOT NULL,
	name       TEXT        NOT NULL,
	quantity   INTEGER     NOT NULL CHECK (quantity >= 0),
	unit_price NUMERIC(14,2),
	payload    JSONB       NOT NULL,
	saved_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (kind, id)
)`

var _ repository.SnapshotStore[entity.GroceryItem] = (*SnapshotStore[entity.GroceryItem])(nil)

// EnsureSchema crea la tabla si no existe.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("create inventory_items: %w", err)
	}
	return nil
}

// SnapshotStore implementación de repository.SnapshotStore sobre PostgreSQL.
type SnapshotStore[T entity.Item[T]] struct {
	pool *pgxpool.Pool
	tx   *TxRunner
	log  *logger.Logger
}

// NewSnapshotStore construye el adaptador; el esquema se asegura aparte con EnsureSchema.
func NewSnapshotStore[T entity.Item[T]](pool *pgxpool.Pool, log *logger.Logger) *SnapshotStore[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &SnapshotStore[T]{pool: pool, tx: NewTxRunner(pool), log: log.Named("postgres")}
}

// Save reemplaza las filas del kind dentro de una transacción. La valorización
// registrada en el log se calcula en la misma transacción, sobre lo recién escrito.
func (s *SnapshotStore[T]) Save(ctx context.Context, kind string, items []T) error {
	var total decimal.Decimal
	err := s.tx.Run(ctx, func(q Querier) error {
		if err := saveKind(ctx, q, kind, items); err != nil {
			return err
		}
		var err error
		total, err = valuation(ctx, q, kind)
		return err
	})
	if err != nil {
		return err
	}
	s.log.Info().
		Str("kind", kind).
		Int("items", len(items)).
		Str("valuation", total.StringFixed(2)).
		Msg("snapshot guardado")
	return nil
}

func saveKind[T entity.Item[T]](ctx context.Context, q Querier, kind string, items []T) error {
	if _, err := q.Exec(ctx, `DELETE FROM inventory_items WHERE kind = $1`, kind); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	query := `
		INSERT INTO inventory_items (kind, id, name, quantity, unit_price, payload)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, it := range items {
		payload, err := json.Marshal(it)
		if err != nil {
			return fmt.Errorf("marshal %s %d: %w", kind, it.ItemID(), err)
		}
		var price *decimal.Decimal
		if p, ok := any(it).(entity.Priced); ok {
			v := p.ItemUnitPrice()
			price = &v
		}
		_, err = q.Exec(ctx, query, kind, it.ItemID(), it.ItemName(), it.ItemQuantity(), price, payload)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.DuplicateKey(domain.OpReplace, it.ItemID())
			}
			return fmt.Errorf("insert %s %d: %w", kind, it.ItemID(), err)
		}
	}
	return nil
}

// Load devuelve los ítems del kind ordenados por id.
func (s *SnapshotStore[T]) Load(ctx context.Context, kind string) ([]T, error) {
	rows, err := s.pool.Query(ctx, `SELECT payload FROM inventory_items WHERE kind = $1 ORDER BY id`, kind)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", kind, err)
	}
	defer rows.Close()

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

// valuation suma quantity*unit_price de las filas del kind; sin precio cuenta cero.
func valuation(ctx context.Context, q Querier, kind string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity * unit_price), 0) FROM inventory_items WHERE kind = $1`, kind,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valuation %s: %w", kind, err)
	}
	return total, nil
}

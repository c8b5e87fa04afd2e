package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-core/pkg/config"
)

func TestOpen_Memory_SinPersistencia(t *testing.T) {
	s, err := storage.Open(context.Background(), config.StorageConfig{Driver: config.StorageMemory}, config.DBConfig{}, nil)
	require.NoError(t, err)
	defer s.Close()

	assert.False(t, s.Enabled())
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := storage.Open(context.Background(), config.StorageConfig{Driver: "mongo"}, config.DBConfig{}, nil)
	assert.Error(t, err)
}

func TestOpen_RoundTripPorDriver(t *testing.T) {
	for _, driver := range []string{config.StorageJSON, config.StorageSQLite} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			s, err := storage.Open(ctx, config.StorageConfig{Driver: driver, Path: t.TempDir()}, config.DBConfig{}, nil)
			require.NoError(t, err)
			defer s.Close()
			require.True(t, s.Enabled())

			at := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
			records := []entity.StockRecord{
				entity.NewStockRecord(1106, "Printer", 3, at),
				entity.NewStockRecord(1111, "Laptop", 5, at),
			}
			require.NoError(t, s.Records.Save(ctx, entity.KindRecord, records))

			got, err := s.Records.Load(ctx, entity.KindRecord)
			require.NoError(t, err)
			assert.Equal(t, records, got)

			empty, err := s.Groceries.Load(ctx, entity.KindGrocery)
			require.NoError(t, err)
			assert.Empty(t, empty)
		})
	}
}

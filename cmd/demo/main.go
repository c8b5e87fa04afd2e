// Demo de consola: carga inicial, impresión de ambos shelves, los tres fallos
// esperados del repositorio y la bitácora de registros guardada y recargada.
package main

import (
	"context"
	"os"
	"time"

	"github.com/jhoicas/inventario-core/internal/application/stock"
	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-core/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-core/internal/interfaces/console"
	"github.com/jhoicas/inventario-core/pkg/config"
	"github.com/jhoicas/inventario-core/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Output: os.Stderr})

	out := console.NewRenderer(os.Stdout, cfg.Report.Locale)
	manager := stock.NewWarehouseManager(
		memory.NewItemRepository[entity.ElectronicItem](),
		memory.NewItemRepository[entity.GroceryItem](),
		log, nil,
	)

	report, err := manager.RunDemo(out)
	if err != nil {
		log.Fatal().Err(err).Msg("demo interrumpida")
	}
	for _, f := range report.Failures {
		_ = out.Message("Error: %v", f)
	}
	if err := report.JoinFailures(); err != nil {
		log.Warn().Err(err).Int("failures", len(report.Failures)).Msg("fallos reportados por el repositorio")
	}
	_ = out.Summary(manager.Electronics.Title(), manager.Electronics.Len(), manager.Electronics.Valuation())
	_ = out.Summary(manager.Groceries.Title(), manager.Groceries.Len(), manager.Groceries.Valuation())

	ctx := context.Background()
	stores, err := storage.Open(ctx, cfg.Storage, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer stores.Close()
	if !stores.Enabled() {
		return
	}

	records := stock.NewShelf(entity.KindRecord, memory.NewItemRepository[entity.StockRecord](), log, nil)
	records.Seed(stock.SampleRecords(time.Now()))
	if _, err := stock.NewSnapshotter(records, stores.Records).Export(ctx); err != nil {
		log.Error().Err(err).Msg("guardar registros")
		return
	}

	reloaded := stock.NewShelf(entity.KindRecord, memory.NewItemRepository[entity.StockRecord](), log, nil)
	if _, err := stock.NewSnapshotter(reloaded, stores.Records).Import(ctx); err != nil {
		log.Error().Err(err).Msg("cargar registros")
		return
	}
	_ = out.Section("Loaded " + reloaded.Title())
	_ = reloaded.PrintAll(out)
}

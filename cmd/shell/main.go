// Consola interactiva sobre los shelves de electrónicos y perecederos.
// Con STORAGE_DRIVER distinto de memory importa el snapshot al iniciar y "save" lo exporta.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"

	"github.com/jhoicas/inventario-core/internal/application/stock"
	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-core/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-core/internal/interfaces/cli"
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

	ctx := context.Background()
	stores, err := storage.Open(ctx, cfg.Storage, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer stores.Close()

	manager := stock.NewWarehouseManager(
		memory.NewItemRepository[entity.ElectronicItem](),
		memory.NewItemRepository[entity.GroceryItem](),
		log, nil,
	)

	var save cli.SaveFunc
	var importers []stock.Importer
	if stores.Enabled() {
		electronics := stock.NewSnapshotter(manager.Electronics, stores.Electronics)
		groceries := stock.NewSnapshotter(manager.Groceries, stores.Groceries)
		importers = append(importers, electronics, groceries)
		save = func(ctx context.Context) error {
			if _, err := electronics.Export(ctx); err != nil {
				return err
			}
			_, err := groceries.Export(ctx)
			return err
		}
	}
	if _, err := manager.Restore(ctx, importers...); err != nil {
		log.Fatal().Err(err).Msg("importar snapshots")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "inventario> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".inventario_history"),
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("iniciar consola")
	}
	defer func() { _ = rl.Close() }()

	shell := cli.NewShell(manager, console.NewRenderer(rl.Stdout(), cfg.Report.Locale), save)
	_, _ = fmt.Fprintln(rl.Stdout(), "Inventario: escriba help para ver los comandos.")
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return
		}
		quit, err := shell.Execute(ctx, line)
		if err != nil {
			_, _ = fmt.Fprintf(rl.Stderr(), "Error: %v\n", err)
		}
		if quit {
			return
		}
	}
}

func completer() *readline.PrefixCompleter {
	shelves := func() []readline.PrefixCompleterInterface {
		return []readline.PrefixCompleterInterface{
			readline.PcItem(cli.ShelfElectronics),
			readline.PcItem(cli.ShelfGroceries),
		}
	}
	items := make([]readline.PrefixCompleterInterface, 0, len(cli.Commands))
	for _, cmd := range cli.Commands {
		switch cmd {
		case "summary", "save", "help", "exit":
			items = append(items, readline.PcItem(cmd))
		default:
			items = append(items, readline.PcItem(cmd, shelves()...))
		}
	}
	return readline.NewPrefixCompleter(items...)
}

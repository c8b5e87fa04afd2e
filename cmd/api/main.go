package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/inventario-core/internal/application/auth"
	"github.com/jhoicas/inventario-core/internal/application/stock"
	"github.com/jhoicas/inventario-core/internal/domain/entity"
	"github.com/jhoicas/inventario-core/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-core/internal/infrastructure/metrics"
	"github.com/jhoicas/inventario-core/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/inventario-core/internal/interfaces/http"
	"github.com/jhoicas/inventario-core/pkg/config"
	"github.com/jhoicas/inventario-core/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewRecorder(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("registrar métricas")
	}

	manager := stock.NewWarehouseManager(
		memory.NewItemRepository[entity.ElectronicItem](),
		memory.NewItemRepository[entity.GroceryItem](),
		log, recorder,
	)

	ctx := context.Background()
	stores, err := storage.Open(ctx, cfg.Storage, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer stores.Close()

	var electronicsSnap *stock.Snapshotter[entity.ElectronicItem]
	var groceriesSnap *stock.Snapshotter[entity.GroceryItem]
	var importers []stock.Importer
	if stores.Enabled() {
		electronicsSnap = stock.NewSnapshotter(manager.Electronics, stores.Electronics)
		groceriesSnap = stock.NewSnapshotter(manager.Groceries, stores.Groceries)
		importers = append(importers, electronicsSnap, groceriesSnap)
	}
	if _, err := manager.Restore(ctx, importers...); err != nil {
		log.Fatal().Err(err).Msg("importar snapshots")
	}

	authUC := auth.NewAuthUseCase(
		auth.Operator{User: cfg.Operator.User, PasswordHash: cfg.Operator.PasswordHash},
		auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer},
		log,
	)
	if !authUC.Enabled() {
		log.Warn().Msg("JWT_SECRET u OPERATOR_PASSWORD_HASH vacíos: las rutas de escritura quedan inaccesibles")
	}

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		Electronics: manager.Electronics,
		Groceries:   manager.Groceries,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
		Metrics:     reg,
		SwaggerFile: cfg.HTTP.SwaggerFile,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if stores.Enabled() {
		if _, err := electronicsSnap.Export(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("exportar electrónicos")
		}
		if _, err := groceriesSnap.Export(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("exportar perecederos")
		}
	}

	log.Info().Msg("aplicación detenida")
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/arenarounds/internal/api"
	"github.com/mcoot/arenarounds/internal/config"
	"github.com/mcoot/arenarounds/internal/factory"
	"github.com/mcoot/arenarounds/internal/services/auth"
	redisstorage "github.com/mcoot/arenarounds/internal/storage/redis"
	"github.com/mcoot/arenarounds/internal/watcher"
)

func main() {
	cfg, err := config.Load(os.Getenv("ARENA_CONFIG"))
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))
	slog.SetDefault(logger)

	factoryCfg := factory.Config{
		AuthConfig:  auth.Config{TokenHash: cfg.Admin.TokenHash},
		Logger:      logger,
		StorageType: cfg.Storage.Type,
	}
	if cfg.Storage.Type == factory.StorageTypeRedis {
		factoryCfg.RedisConfig = &redisstorage.Config{
			URL:          cfg.Redis.URL,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			KeyPrefix:    cfg.Redis.KeyPrefix,
		}
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if closer, ok := app.Storage.(interface{ Close() error }); ok {
		defer func() { _ = closer.Close() }()
	}
	if !app.AuthService.Enabled() {
		logger.Warn("admin token not configured, catalog changes are unauthenticated")
	}

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Build the catalog: presets plus any definitions from file or storage
	app.Registry.ResetToDefaults()
	if path := cfg.Definitions.Path; path != "" {
		if err := app.DefinitionsService.ReloadFile(ctx, path); err != nil {
			logger.Error("failed to load round type definitions",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		if cfg.Definitions.Watch {
			if err := watchDefinitions(ctx, app, cfg.Definitions, logger); err != nil {
				logger.Warn("definitions hot reload disabled", slog.String("error", err.Error()))
			}
		}
	} else if err := app.DefinitionsService.Reload(ctx); err != nil {
		logger.Warn("could not load stored round type definitions", slog.String("error", err.Error()))
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		AuthService:        app.AuthService,
		Registry:           app.Registry,
		DefinitionsService: app.DefinitionsService,
		WeaponCatalog:      app.WeaponCatalog,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Server.Host
	serverConfig.Port = cfg.Server.Port
	server := api.NewServer(router, serverConfig, logger)

	logger.Info("serving round types", slog.Int("round_types", app.Registry.Len()))

	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// watchDefinitions reapplies the definitions file whenever it changes until ctx is done
func watchDefinitions(ctx context.Context, app *factory.App, cfg config.DefinitionsConfig, logger *slog.Logger) error {
	wcfg := watcher.DefaultConfig(cfg.Path)
	if cfg.Debounce > 0 {
		wcfg.DebounceDur = cfg.Debounce
	}
	wcfg.Logger = logger

	w, err := watcher.New(wcfg)
	if err != nil {
		return err
	}
	changes, err := w.Start()
	if err != nil {
		_ = w.Stop()
		return err
	}

	go func() {
		defer func() { _ = w.Stop() }()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				if err := app.DefinitionsService.ReloadFile(ctx, cfg.Path); err != nil {
					// Keep the current catalog until the file is fixed
					logger.Error("failed to reload round type definitions",
						slog.String("path", cfg.Path),
						slog.String("error", err.Error()),
					)
					continue
				}
				logger.Info("round type definitions reloaded", slog.Int("round_types", app.Registry.Len()))
			}
		}
	}()

	logger.Info("watching round type definitions", slog.String("path", cfg.Path))
	return nil
}

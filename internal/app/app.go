// Package app initializes and holds long-lived application services.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"newswatch/internal/config"
	"newswatch/internal/crawler"
	"newswatch/internal/logging"
	memorystore "newswatch/internal/store/memory"
	mongostore "newswatch/internal/store/mongo"
)

// App holds the shared services built once at startup.
type App struct {
	logger *zap.Logger
	store  crawler.Store
	cfg    config.Config
}

// Logger returns the shared zap logger.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Store returns the configured record store.
func (a *App) Store() crawler.Store {
	return a.store
}

// Config returns the loaded configuration.
func (a *App) Config() config.Config {
	return a.cfg
}

// New builds the application services from configuration. It fails fast:
// an unreachable store at startup is an error, not a degraded start.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	logger, err := logging.New(cfg.Logging.Dir, cfg.Logging.Development)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	var store crawler.Store
	switch cfg.Store.Provider {
	case config.StoreMongo:
		logger.Info("connecting to MongoDB", zap.String("database", cfg.Store.Database))
		store, err = mongostore.New(ctx, cfg.Store.URI, cfg.Store.Database)
		if err != nil {
			return nil, fmt.Errorf("init store: %w", err)
		}
		if err := store.Ping(ctx); err != nil {
			_ = store.Close(ctx)
			return nil, fmt.Errorf("store unreachable: %w", err)
		}
	case config.StoreMemory:
		logger.Info("using in-memory store; records are discarded on exit")
		store = memorystore.New()
	default:
		return nil, fmt.Errorf("unknown store provider: %s", cfg.Store.Provider)
	}

	logger.Info("application services initialized")
	return &App{
		logger: logger,
		store:  store,
		cfg:    cfg,
	}, nil
}

// Close shuts down the shared services.
func (a *App) Close(ctx context.Context) {
	if err := a.store.Close(ctx); err != nil {
		a.logger.Warn("store close failed", zap.Error(err))
	}
	// Best-effort flush; stdout sync errors are expected on some platforms.
	_ = a.logger.Sync()
}

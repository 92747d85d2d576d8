// Package app wires the task list components together for the server and CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"todolist/internal/config"
	"todolist/internal/events"
	"todolist/internal/models"
	"todolist/internal/render"
	"todolist/internal/store"
)

// App holds the single task state instance and everything around it.
type App struct {
	Config      *config.Config
	Logger      *slog.Logger
	KV          store.KV
	Persistence *store.Persistence
	Renderer    *render.Renderer
	Router      *events.Router
}

// New opens storage, loads the saved task list (empty if absent or
// unreadable) and builds the event router over it.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg.Storage.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	kv, err := store.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return NewWithKV(ctx, cfg, kv, logger)
}

// NewWithKV builds an App over an already opened KV store.
func NewWithKV(ctx context.Context, cfg *config.Config, kv store.KV, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := render.New()
	if err != nil {
		kv.Close()
		return nil, err
	}

	persistence := store.NewPersistence(kv, logger)
	list := persistence.Load(ctx)
	logger.Debug("task list loaded", "tasks", len(list.Tasks))

	return &App{
		Config:      cfg,
		Logger:      logger,
		KV:          kv,
		Persistence: persistence,
		Renderer:    renderer,
		Router:      events.NewRouter(models.NewTaskStore(list.Tasks), persistence, renderer, logger),
	}, nil
}

// Close releases the storage.
func (a *App) Close() error {
	return a.KV.Close()
}

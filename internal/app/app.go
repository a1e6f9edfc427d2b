package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/bakego/internal/ctxlog"
	"github.com/specialistvlad/bakego/internal/registry"
	"github.com/specialistvlad/bakego/internal/task"
)

// Loader populates a registry from the declarations at path. The HCL
// implementation lives in the buildfile package; tests substitute their own.
type Loader interface {
	Load(ctx context.Context, reg *registry.Registry, path string) error
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	fs       task.FS
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry, having
// executed the full declaration load so that every later resolution sees the
// complete graph.
func NewApp(outW io.Writer, cfg *Config, loader Loader, fs task.FS) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New(fs)
	if err := loader.Load(ctx, reg, cfg.BuildfilePath); err != nil {
		return nil, fmt.Errorf("failed to load buildfile: %w", err)
	}
	logger.Debug("Registry populated from buildfile.", "tasks", len(reg.Names()), "rules", len(reg.Rules()))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		fs:       fs,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

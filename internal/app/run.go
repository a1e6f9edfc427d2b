package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/bakego/internal/ctxlog"
	"github.com/specialistvlad/bakego/internal/invoker"
)

// Run invokes every requested target in order. One Invoker spans all targets,
// so a task shared between them executes at most once per run. The first
// fatal error aborts the remaining traversal.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "targets", cfg.Targets, "dryRun", cfg.DryRun)

	inv := invoker.New(a.registry, a.fs, invoker.Options{
		DryRun: cfg.DryRun,
		Trace:  cfg.Trace,
	})

	for _, target := range cfg.Targets {
		a.logger.Debug("Invoking target.", "target", target)
		if err := inv.Invoke(ctx, target); err != nil {
			return fmt.Errorf("target %s: %w", target, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

package invoker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/bakego/internal/ctxlog"
	"github.com/specialistvlad/bakego/internal/registry"
	"github.com/specialistvlad/bakego/internal/task"
)

// ErrCycle is returned when traversal re-enters a task that is still on the
// invocation stack.
var ErrCycle = errors.New("dependency cycle detected")

// mark is the traversal state of one task within a single run.
type mark int

const (
	pending mark = iota
	inProgress
	done
)

// Options controls run-wide invocation behavior.
type Options struct {
	// DryRun walks the graph and evaluates staleness but suppresses every
	// action, leaving the filesystem and child processes untouched.
	DryRun bool
	// Trace raises the invocation trace from debug to info level.
	Trace bool
}

// Invoker performs one run over a populated registry. Marks accumulate for
// the lifetime of the Invoker, so invoking several targets in sequence shares
// memoization across them; a new run needs a new Invoker.
type Invoker struct {
	reg   *registry.Registry
	fs    task.FS
	opts  Options
	marks map[string]mark
}

// New creates an Invoker over the given registry and filesystem probe.
func New(reg *registry.Registry, fs task.FS, opts Options) *Invoker {
	return &Invoker{
		reg:   reg,
		fs:    fs,
		opts:  opts,
		marks: make(map[string]mark),
	}
}

// Invoke resolves name and walks it. The first fatal error unwinds the whole
// traversal; completed prerequisite actions are not rolled back.
func (inv *Invoker) Invoke(ctx context.Context, name string) error {
	t, err := inv.reg.Resolve(name)
	if err != nil {
		return err
	}
	return inv.invoke(ctx, t)
}

func (inv *Invoker) invoke(ctx context.Context, t *task.Task) error {
	logger := ctxlog.FromContext(ctx)

	switch inv.marks[t.Name] {
	case done:
		logger.Log(ctx, inv.traceLevel(), "Invoking task.", "task", t.Name, "alreadyInvoked", true)
		return nil
	case inProgress:
		return fmt.Errorf("%w: %s is still in progress", ErrCycle, t.Name)
	}
	inv.marks[t.Name] = inProgress

	for _, name := range t.Prereqs {
		dep, err := inv.reg.Resolve(name)
		if err != nil {
			return fmt.Errorf("resolving prerequisite of %s: %w", t.Name, err)
		}
		if err := inv.invoke(ctx, dep); err != nil {
			return err
		}
	}

	needed, err := t.Needed(inv.reg, inv.fs)
	if err != nil {
		return fmt.Errorf("evaluating staleness of %s: %w", t.Name, err)
	}
	logger.Log(ctx, inv.traceLevel(), "Invoking task.", "task", t.Name, "alreadyInvoked", false, "needed", needed)

	if needed {
		if err := inv.execute(ctx, t); err != nil {
			return err
		}
	}

	inv.marks[t.Name] = done
	return nil
}

// execute runs the task's actions in declaration order. A task that reaches
// execution with no actions gets one more rule-synthesis pass keyed on its
// own name, covering a rule that only applies once all prerequisites are
// known.
func (inv *Invoker) execute(ctx context.Context, t *task.Task) error {
	logger := ctxlog.FromContext(ctx)

	if len(t.Actions) == 0 {
		if _, err := inv.reg.EnhanceFromRules(t); err != nil {
			return fmt.Errorf("enhancing %s from rules: %w", t.Name, err)
		}
	}

	logger.Log(ctx, inv.traceLevel(), "Executing task.", "task", t.Name, "actions", len(t.Actions), "dryRun", inv.opts.DryRun)
	if inv.opts.DryRun {
		return nil
	}

	for _, action := range t.Actions {
		if err := action.Run(ctx, t); err != nil {
			return fmt.Errorf("task %s: action failed: %w", t.Name, err)
		}
	}
	return nil
}

func (inv *Invoker) traceLevel() slog.Level {
	if inv.opts.Trace {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

package testutil

import (
	"context"

	"github.com/specialistvlad/bakego/internal/task"
)

// Recorder collects the names of tasks whose actions ran, in execution order.
type Recorder struct {
	Executed []string
}

// Action returns an action that records its owning task's name when run.
func (r *Recorder) Action() task.Action {
	return task.ActionFunc(func(ctx context.Context, t *task.Task) error {
		r.Executed = append(r.Executed, t.Name)
		return nil
	})
}

// Count returns how many times name was executed.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, executed := range r.Executed {
		if executed == name {
			n++
		}
	}
	return n
}

// FailingAction returns an action that always fails with err.
func FailingAction(err error) task.Action {
	return task.ActionFunc(func(ctx context.Context, t *task.Task) error {
		return err
	})
}

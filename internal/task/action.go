package task

import "context"

// Action is the opaque work primitive attached to a task. The engine does not
// interpret what an action does; it only runs actions in order and treats the
// first error as fatal for the whole run.
type Action interface {
	Run(ctx context.Context, t *Task) error
}

// ActionFunc adapts an ordinary function to the Action interface.
type ActionFunc func(ctx context.Context, t *Task) error

// Run implements Action.
func (f ActionFunc) Run(ctx context.Context, t *Task) error {
	return f(ctx, t)
}

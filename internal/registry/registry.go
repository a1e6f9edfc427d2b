package registry

import (
	"errors"

	"github.com/specialistvlad/bakego/internal/task"
)

// ErrUnknownTask is returned by Resolve when a name matches no declared task,
// no rule, and no file on disk.
var ErrUnknownTask = errors.New("unknown task")

// ErrMalformedDeclaration is returned when a task descriptor names zero or
// more than one target, or carries an unrecognized prerequisite shape.
var ErrMalformedDeclaration = errors.New("malformed task declaration")

// ErrMalformedRule is returned when a rule specifier has an unrecognized kind
// or the wrong number of dependency sources.
var ErrMalformedRule = errors.New("malformed rule")

// Registry holds all tasks and rules for a single build graph instance.
type Registry struct {
	tasks map[string]*task.Task
	order []string
	rules []*Rule
	fs    task.FS
}

// New creates an empty Registry probing the filesystem through fs.
func New(fs task.FS) *Registry {
	return &Registry{
		tasks: make(map[string]*task.Task),
		fs:    fs,
	}
}

// LookupOrCreate returns the task registered under name, creating and
// registering a bare task of the given kind if none exists. An existing
// plain task is upgraded to a file task when asked for as one; the reverse
// never downgrades. It never attempts rule synthesis.
func (r *Registry) LookupOrCreate(name string, kind task.Kind) *task.Task {
	if t, ok := r.tasks[name]; ok {
		if kind == task.File {
			t.Kind = task.File
		}
		return t
	}
	t := task.New(name, kind)
	r.tasks[name] = t
	r.order = append(r.order, name)
	return t
}

// Lookup returns the task registered under name, if any.
func (r *Registry) Lookup(name string) (*task.Task, bool) {
	t, ok := r.tasks[name]
	return t, ok
}

// Names returns all registered task names in first-declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Rules returns the registered rules in registration order.
func (r *Registry) Rules() []*Rule {
	out := make([]*Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

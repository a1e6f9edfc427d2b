package registry

import (
	"fmt"

	"github.com/specialistvlad/bakego/internal/task"
)

// Descriptor names the target of a declaration and its prerequisites.
//
// Deps accepts either a single string or a slice of strings, mirroring the
// loose shapes a buildfile allows; anything else is a malformed declaration.
type Descriptor struct {
	Targets []string
	Deps    any
}

// normalize validates the descriptor and flattens it into a single target
// name plus an ordered, de-duplicated prerequisite list.
func (d Descriptor) normalize() (string, []string, error) {
	if len(d.Targets) != 1 {
		return "", nil, fmt.Errorf("%w: expected exactly one target, got %d", ErrMalformedDeclaration, len(d.Targets))
	}

	var prereqs []string
	switch deps := d.Deps.(type) {
	case nil:
	case string:
		prereqs = []string{deps}
	case []string:
		seen := make(map[string]bool, len(deps))
		for _, dep := range deps {
			if !seen[dep] {
				seen[dep] = true
				prereqs = append(prereqs, dep)
			}
		}
	default:
		return "", nil, fmt.Errorf("%w: unsupported prerequisite shape %T", ErrMalformedDeclaration, d.Deps)
	}

	return d.Targets[0], prereqs, nil
}

// DefineTask declares (or re-declares) a plain task. Repeated declarations of
// one name merge prerequisites as a set union and append actions onto the
// single registered instance.
func (r *Registry) DefineTask(d Descriptor, actions ...task.Action) (*task.Task, error) {
	return r.define(d, task.Plain, actions)
}

// DefineFileTask declares (or re-declares) a file task whose name is a
// filesystem path.
func (r *Registry) DefineFileTask(d Descriptor, actions ...task.Action) (*task.Task, error) {
	return r.define(d, task.File, actions)
}

func (r *Registry) define(d Descriptor, kind task.Kind, actions []task.Action) (*task.Task, error) {
	name, prereqs, err := d.normalize()
	if err != nil {
		return nil, err
	}
	t := r.LookupOrCreate(name, kind)
	t.Enhance(prereqs, nil)
	for _, a := range actions {
		t.Enhance(nil, a)
	}
	return t, nil
}

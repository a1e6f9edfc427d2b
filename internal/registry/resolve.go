package registry

import (
	"fmt"

	"github.com/specialistvlad/bakego/internal/task"
)

// Resolve is the public resolution entry point used by the invoker and by
// prerequisite lookups during staleness evaluation.
//
// Resolution order:
//  1. an exact registry hit wins;
//  2. otherwise rule synthesis is attempted;
//  3. otherwise, a file literally named name that exists on disk becomes a
//     bare file task (no prerequisites, no actions), registered for reuse;
//  4. otherwise the name is unknown and the run is over.
func (r *Registry) Resolve(name string) (*task.Task, error) {
	if t, ok := r.tasks[name]; ok {
		return t, nil
	}

	if t, ok, err := r.synthesize(name); err != nil {
		return nil, err
	} else if ok {
		return t, nil
	}

	if r.fs.Exists(name) {
		return r.LookupOrCreate(name, task.File), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownTask, name)
}

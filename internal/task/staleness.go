package task

import (
	"errors"
	"fmt"
	"time"
)

// ErrMissingTimestamp is returned when the modification time of a file task
// is requested but the file does not exist on disk.
var ErrMissingTimestamp = errors.New("missing timestamp target")

// FS is the filesystem probe the staleness policy depends on. The two
// primitives are the only environment-dependent inputs to the engine.
type FS interface {
	Exists(path string) bool
	ModTime(path string) (time.Time, error)
}

// Graph resolves a task name to a task. The registry implements it; staleness
// evaluation needs it to reach prerequisite timestamps.
type Graph interface {
	Resolve(name string) (*Task, error)
}

// Needed reports whether the task's actions must run this invocation.
//
// Plain tasks are always needed. A file task is not needed only when its
// target exists and either has no prerequisites or is at least as new as
// every prerequisite; the comparison is strict, so an exact timestamp tie
// counts as up to date.
func (t *Task) Needed(g Graph, fs FS) (bool, error) {
	if t.Kind != File {
		return true, nil
	}
	if !fs.Exists(t.Name) {
		return true, nil
	}
	if len(t.Prereqs) == 0 {
		return false, nil
	}
	own, err := fs.ModTime(t.Name)
	if err != nil {
		return false, err
	}
	newest, err := t.newestPrereq(g, fs)
	if err != nil {
		return false, err
	}
	return own.Before(newest), nil
}

// Timestamp returns the task's logical modification time.
//
// For a file task this is the file's mtime; calling it on a missing file is
// an error, so callers probing a possibly-absent target must check existence
// first. For a plain task it is the newest prerequisite timestamp, or the
// current time when the task has no prerequisites, which lets freshness
// propagate upward through non-file tasks in a dependency chain.
func (t *Task) Timestamp(g Graph, fs FS) (time.Time, error) {
	if t.Kind == File {
		if !fs.Exists(t.Name) {
			return time.Time{}, fmt.Errorf("%w: %s", ErrMissingTimestamp, t.Name)
		}
		return fs.ModTime(t.Name)
	}
	if len(t.Prereqs) == 0 {
		return time.Now(), nil
	}
	return t.newestPrereq(g, fs)
}

// newestPrereq resolves every prerequisite and returns the maximum of their
// timestamps.
func (t *Task) newestPrereq(g Graph, fs FS) (time.Time, error) {
	var newest time.Time
	for _, name := range t.Prereqs {
		dep, err := g.Resolve(name)
		if err != nil {
			return time.Time{}, err
		}
		ts, err := dep.Timestamp(g, fs)
		if err != nil {
			return time.Time{}, err
		}
		if ts.After(newest) {
			newest = ts
		}
	}
	return newest, nil
}

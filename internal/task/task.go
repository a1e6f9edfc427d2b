// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Task structure, the node of the build graph.
//
// Why a kind tag instead of a type hierarchy?
//
// The only behavioral difference between a plain task and a file task is the
// staleness policy (Needed/Timestamp). Encoding that as an explicit tag on a
// single struct keeps the registry simple: it owns a homogeneous collection,
// and a declaration can upgrade a bare placeholder task to a file task
// without re-allocating or re-linking anything.
package task

// Kind discriminates the staleness policy of a Task.
type Kind int

const (
	// Plain tasks have no file identity and are always considered stale.
	Plain Kind = iota
	// File tasks treat their name as a filesystem path and are stale only
	// when that file is missing or older than a prerequisite.
	File
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "task"
	case File:
		return "file"
	default:
		return "unknown"
	}
}

// Task is a named unit of work with ordered prerequisites and actions.
type Task struct {
	// Name uniquely identifies the task within its registry. For file
	// tasks it is interpreted as a filesystem path.
	Name string

	// Kind selects the staleness policy.
	Kind Kind

	// Prereqs holds the names of tasks that must complete before this
	// one's actions run. The slice is ordered by first declaration and
	// contains no duplicates.
	Prereqs []string

	// Actions run in declaration order once the task is determined to be
	// needed.
	Actions []Action

	// Source records the prerequisite that satisfied a matching rule when
	// this task was synthesized. Empty for explicitly declared tasks. It
	// exists for provenance and diagnostics, not for staleness decisions.
	Source string
}

// New returns a bare task of the given kind with no prerequisites or actions.
func New(name string, kind Kind) *Task {
	return &Task{Name: name, Kind: kind}
}

// Enhance merges additional prerequisites into the task (preserving order,
// dropping duplicates) and appends an action if one is given. It returns the
// task itself so declarations can chain.
func (t *Task) Enhance(prereqs []string, action Action) *Task {
	for _, p := range prereqs {
		if !t.hasPrereq(p) {
			t.Prereqs = append(t.Prereqs, p)
		}
	}
	if action != nil {
		t.Actions = append(t.Actions, action)
	}
	return t
}

func (t *Task) hasPrereq(name string) bool {
	for _, p := range t.Prereqs {
		if p == name {
			return true
		}
	}
	return false
}

package registry

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/bakego/internal/task"
)

// Rule is a pattern-based template for synthesizing file tasks on demand.
// Rules are immutable once registered; matching is attempted in registration
// order and the first rule whose derived source exists on disk wins.
//
// The pattern and source specifiers are deliberately loosely typed, in the
// same spirit as the registry's handler fields elsewhere in this codebase:
// a string pattern matches as an anchored suffix, a func(string) bool pattern
// is an arbitrary predicate; a string source replaces the target's final
// extension, a func(string) string source derives the candidate path itself.
type Rule struct {
	pattern any
	source  any
	actions []task.Action
}

// RuleSpec describes one rule for CreateRule. Sources must contain exactly
// one specifier; the slice shape exists so that a declaration passing several
// fails loudly instead of silently dropping all but one.
type RuleSpec struct {
	Pattern any
	Sources []any
	Actions []task.Action
}

// CreateRule validates the spec and appends the rule to the registry's
// ordered rule list.
func (r *Registry) CreateRule(spec RuleSpec) (*Rule, error) {
	switch spec.Pattern.(type) {
	case string, func(string) bool:
	default:
		return nil, fmt.Errorf("%w: unsupported pattern specifier %T", ErrMalformedRule, spec.Pattern)
	}

	if len(spec.Sources) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one dependency source, got %d", ErrMalformedRule, len(spec.Sources))
	}
	switch spec.Sources[0].(type) {
	case string, func(string) string:
	default:
		return nil, fmt.Errorf("%w: unsupported source specifier %T", ErrMalformedRule, spec.Sources[0])
	}

	rule := &Rule{
		pattern: spec.Pattern,
		source:  spec.Sources[0],
		actions: spec.Actions,
	}
	r.rules = append(r.rules, rule)
	return rule, nil
}

// matches reports whether the rule's pattern applies to name.
func (ru *Rule) matches(name string) bool {
	switch p := ru.pattern.(type) {
	case string:
		return strings.HasSuffix(name, p)
	case func(string) bool:
		return p(name)
	default:
		return false
	}
}

// deriveSource computes the candidate source path for name.
func (ru *Rule) deriveSource(name string) (string, error) {
	switch s := ru.source.(type) {
	case string:
		return strings.TrimSuffix(name, filepath.Ext(name)) + s, nil
	case func(string) string:
		return s(name), nil
	default:
		return "", fmt.Errorf("%w: unsupported source specifier %T", ErrMalformedRule, ru.source)
	}
}

// synthesize scans rules in registration order for name. The first rule that
// matches and whose derived source exists on disk produces (or enhances) a
// file task: the source becomes a prerequisite, the rule's action template is
// attached, and the source is recorded for provenance. A false return means
// no rule applied; the caller decides what that means.
func (r *Registry) synthesize(name string) (*task.Task, bool, error) {
	for _, rule := range r.rules {
		if !rule.matches(name) {
			continue
		}
		source, err := rule.deriveSource(name)
		if err != nil {
			return nil, false, err
		}
		if !r.fs.Exists(source) {
			continue
		}
		t := r.LookupOrCreate(name, task.File)
		t.Enhance([]string{source}, nil)
		for _, a := range rule.actions {
			t.Enhance(nil, a)
		}
		t.Source = source
		return t, true, nil
	}
	return nil, false, nil
}

// EnhanceFromRules runs one rule-synthesis pass keyed on the task's own name,
// enhancing the already-registered task in place. It covers a task that was
// requested directly and reached execution with no actions of its own.
func (r *Registry) EnhanceFromRules(t *task.Task) (bool, error) {
	_, ok, err := r.synthesize(t.Name)
	return ok, err
}

package buildfile

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/specialistvlad/bakego/internal/ctxlog"
	"github.com/specialistvlad/bakego/internal/shellexec"
	"github.com/specialistvlad/bakego/internal/task"
)

// commandAction holds a deferred `commands` expression from a buildfile
// block. It renders the expression against the owning task at run time and
// hands each resulting string to the shell, aborting on the first failure.
type commandAction struct {
	expr   hcl.Expression
	dir    string
	stdout io.Writer
	stderr io.Writer
}

// Run implements task.Action.
func (a *commandAction) Run(ctx context.Context, t *task.Task) error {
	logger := ctxlog.FromContext(ctx)

	commands, err := a.render(t)
	if err != nil {
		return err
	}

	for _, command := range commands {
		logger.Debug("Running command.", "task", t.Name, "command", command)
		if err := shellexec.Run(ctx, a.dir, command, a.stdout, a.stderr); err != nil {
			return err
		}
	}
	return nil
}

// render evaluates the commands expression. A single string is accepted as a
// one-command list.
func (a *commandAction) render(t *task.Task) ([]string, error) {
	val, diags := a.expr.Value(evalContextFor(t))
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating commands for %s: %w", t.Name, diags)
	}

	if val.Type() == cty.String {
		return []string{val.AsString()}, nil
	}

	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("commands for %s must be a string or list of strings: %w", t.Name, err)
	}
	var commands []string
	if err := gocty.FromCtyValue(listVal, &commands); err != nil {
		return nil, fmt.Errorf("commands for %s must be a string or list of strings: %w", t.Name, err)
	}
	return commands, nil
}

// evalContextFor builds the evaluation context a command expression sees:
// `target` is the task name, `source` the rule-derived source (empty when the
// task was declared explicitly), `deps` the prerequisite list.
func evalContextFor(t *task.Task) *hcl.EvalContext {
	deps := make([]cty.Value, 0, len(t.Prereqs))
	for _, p := range t.Prereqs {
		deps = append(deps, cty.StringVal(p))
	}
	depsVal := cty.ListValEmpty(cty.String)
	if len(deps) > 0 {
		depsVal = cty.ListVal(deps)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"target": cty.StringVal(t.Name),
			"source": cty.StringVal(t.Source),
			"deps":   depsVal,
		},
		Functions: map[string]function.Function{
			"join": joinFunc,
		},
	}
}

// joinFunc concatenates a list of strings with a separator, the one
// convenience a command template regularly needs.
var joinFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "separator", Type: cty.String},
		{Name: "list", Type: cty.List(cty.String)},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		var parts []string
		for it := args[1].ElementIterator(); it.Next(); {
			_, v := it.Element()
			parts = append(parts, v.AsString())
		}
		return cty.StringVal(strings.Join(parts, args[0].AsString())), nil
	},
})

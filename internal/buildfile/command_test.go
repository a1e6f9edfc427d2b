package buildfile

import (
	"testing"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/bakego/internal/task"
)

// parseCommands extracts the commands expression from a one-block buildfile
// snippet so rendering can be tested without touching the filesystem.
func parseCommands(t *testing.T, src string) *commandAction {
	t.Helper()
	file, diags := hclparse.NewParser().ParseHCL([]byte(src), "test.hcl")
	require.False(t, diags.HasErrors(), diags.Error())

	parsed, err := parseFile(file.Body)
	require.NoError(t, err)
	require.Len(t, parsed.Tasks, 1)

	decl, err := decodeTask(parsed.Tasks[0])
	require.NoError(t, err)
	require.NotNil(t, decl.Commands)

	return &commandAction{expr: decl.Commands, dir: "."}
}

func TestRender_StaticCommands(t *testing.T) {
	action := parseCommands(t, `
task "build" {
  commands = ["echo one", "echo two"]
}
`)
	commands, err := action.render(task.New("build", task.Plain))
	require.NoError(t, err)
	assert.Equal(t, []string{"echo one", "echo two"}, commands)
}

func TestRender_SingleStringCommand(t *testing.T) {
	action := parseCommands(t, `
task "build" {
  commands = "echo hi"
}
`)
	commands, err := action.render(task.New("build", task.Plain))
	require.NoError(t, err)
	assert.Equal(t, []string{"echo hi"}, commands)
}

func TestRender_TargetSourceDepsVariables(t *testing.T) {
	action := parseCommands(t, `
task "link" {
  commands = ["cc -o ${target} ${join(" ", deps)}", "strip ${source}"]
}
`)

	tk := task.New("app.bin", task.File)
	tk.Enhance([]string{"main.o", "util.o"}, nil)
	tk.Source = "main.o"

	commands, err := action.render(tk)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"cc -o app.bin main.o util.o",
		"strip main.o",
	}, commands)
}

func TestRender_EmptyDeps(t *testing.T) {
	action := parseCommands(t, `
task "build" {
  commands = ["echo '${join(",", deps)}'"]
}
`)
	commands, err := action.render(task.New("build", task.Plain))
	require.NoError(t, err)
	assert.Equal(t, []string{"echo ''"}, commands)
}

func TestRender_UnknownVariableFails(t *testing.T) {
	action := parseCommands(t, `
task "build" {
  commands = ["echo ${nonsense}"]
}
`)
	_, err := action.render(task.New("build", task.Plain))
	assert.Error(t, err)
}

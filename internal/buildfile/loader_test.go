package buildfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/bakego/internal/buildfile"
	"github.com/specialistvlad/bakego/internal/registry"
	"github.com/specialistvlad/bakego/internal/task"
	"github.com/specialistvlad/bakego/internal/testutil"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_PopulatesRegistry(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.hcl", `
task "default" {
  deps = ["build"]
}

task "build" {
  deps     = ["app.bin"]
  commands = ["echo built"]
}

file "app.bin" {
  deps     = ["main.o"]
  commands = ["cc -o ${target} ${join(" ", deps)}"]
}

rule ".o" {
  source   = ".c"
  commands = ["cc -c -o ${target} ${source}"]
}
`)

	reg := registry.New(testutil.NewFakeFS())
	loader := buildfile.NewLoader(nil, nil)
	require.NoError(t, loader.Load(context.Background(), reg, path))

	if diff := cmp.Diff([]string{"default", "build", "app.bin"}, reg.Names()); diff != "" {
		t.Errorf("task names mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, reg.Rules(), 1)

	dflt, ok := reg.Lookup("default")
	require.True(t, ok)
	assert.Equal(t, task.Plain, dflt.Kind)
	assert.Equal(t, []string{"build"}, dflt.Prereqs)
	assert.Empty(t, dflt.Actions, "a task without commands gets no actions")

	bin, ok := reg.Lookup("app.bin")
	require.True(t, ok)
	assert.Equal(t, task.File, bin.Kind)
	assert.Equal(t, []string{"main.o"}, bin.Prereqs)
	assert.Len(t, bin.Actions, 1)
}

func TestLoad_SingleStringDep(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.hcl", `
task "test" {
  deps = "build"
}

task "build" {}
`)

	reg := registry.New(testutil.NewFakeFS())
	require.NoError(t, buildfile.NewLoader(nil, nil).Load(context.Background(), reg, path))

	tk, ok := reg.Lookup("test")
	require.True(t, ok)
	assert.Equal(t, []string{"build"}, tk.Prereqs)
}

func TestLoad_DirectoryMergesDeclarations(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.hcl", `
task "build" {
  deps     = ["compile"]
  commands = ["echo one"]
}
task "compile" {}
`)
	writeFile(t, dir, "b.hcl", `
task "build" {
  deps     = ["docs"]
  commands = ["echo two"]
}
task "docs" {}
`)

	reg := registry.New(testutil.NewFakeFS())
	require.NoError(t, buildfile.NewLoader(nil, nil).Load(context.Background(), reg, dir))

	tk, ok := reg.Lookup("build")
	require.True(t, ok)
	if diff := cmp.Diff([]string{"compile", "docs"}, tk.Prereqs); diff != "" {
		t.Errorf("prerequisite mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, tk.Actions, 2, "declarations across files append, never replace")
}

func TestLoad_EmptyDirectoryIsNotAnError(t *testing.T) {
	reg := registry.New(testutil.NewFakeFS())
	require.NoError(t, buildfile.NewLoader(nil, nil).Load(context.Background(), reg, t.TempDir()))
	assert.Empty(t, reg.Names())
}

func TestLoad_Failures(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"syntax error", `task "build" {`},
		{"unknown block type", `widget "x" {}`},
		{"unknown attribute", `task "build" { retries = 3 }`},
		{"non-string deps", `task "build" { deps = 42 }`},
		{"rule without source", `rule ".o" { commands = ["cc"] }`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeFile(t, dir, "main.hcl", tc.content)

			reg := registry.New(testutil.NewFakeFS())
			err := buildfile.NewLoader(nil, nil).Load(context.Background(), reg, path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	reg := registry.New(testutil.NewFakeFS())
	err := buildfile.NewLoader(nil, nil).Load(context.Background(), reg, filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}

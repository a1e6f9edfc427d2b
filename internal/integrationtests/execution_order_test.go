package integrationtests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/bakego/internal/invoker"
	"github.com/specialistvlad/bakego/internal/registry"
	"github.com/specialistvlad/bakego/internal/testutil"
)

func TestDiamondDependencyExecutesOnceInOrder(t *testing.T) {
	dir := t.TempDir()
	content := `
task "a" {
  deps     = ["b", "c"]
  commands = ["echo a >> order.log"]
}

task "b" {
  deps     = ["d"]
  commands = ["echo b >> order.log"]
}

task "c" {
  deps     = ["d"]
  commands = ["echo c >> order.log"]
}

task "d" {
  commands = ["echo d >> order.log"]
}
`
	result := testutil.RunBuildfile(t, dir, content, []string{"a"}, testutil.Options{})
	require.NoError(t, result.Err, result.Output)

	data, err := os.ReadFile(filepath.Join(dir, "order.log"))
	require.NoError(t, err)
	assert.Equal(t, "d\nb\nc\na\n", string(data),
		"the shared prerequisite runs exactly once, before both dependents")
}

func TestFailingCommandAbortsRemainingTraversal(t *testing.T) {
	dir := t.TempDir()
	content := `
task "default" {
  deps     = ["bad", "good"]
  commands = ["echo default >> order.log"]
}

task "bad" {
  commands = ["exit 1"]
}

task "good" {
  commands = ["echo good >> order.log"]
}
`
	result := testutil.RunBuildfile(t, dir, content, nil, testutil.Options{})
	require.Error(t, result.Err)

	_, err := os.Stat(filepath.Join(dir, "order.log"))
	assert.True(t, os.IsNotExist(err),
		"nothing after the failing sibling may run")
}

func TestDependencyCycleFailsRun(t *testing.T) {
	dir := t.TempDir()
	content := `
task "a" {
  deps = ["b"]
}

task "b" {
  deps = ["a"]
}
`
	result := testutil.RunBuildfile(t, dir, content, []string{"a"}, testutil.Options{})
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, invoker.ErrCycle)
}

func TestUnknownTargetFailsRun(t *testing.T) {
	dir := t.TempDir()
	result := testutil.RunBuildfile(t, dir, `task "default" {}`, []string{"missing_target"}, testutil.Options{})
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, registry.ErrUnknownTask)
}

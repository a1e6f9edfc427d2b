package registry_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/bakego/internal/registry"
	"github.com/specialistvlad/bakego/internal/task"
	"github.com/specialistvlad/bakego/internal/testutil"
)

func TestDefineTask(t *testing.T) {
	reg := registry.New(testutil.NewFakeFS())
	rec := &testutil.Recorder{}

	tk, err := reg.DefineTask(registry.Descriptor{
		Targets: []string{"build"},
		Deps:    []string{"compile", "docs"},
	}, rec.Action())
	require.NoError(t, err)

	assert.Equal(t, "build", tk.Name)
	assert.Equal(t, task.Plain, tk.Kind)
	assert.Equal(t, []string{"compile", "docs"}, tk.Prereqs)
	assert.Len(t, tk.Actions, 1)
}

func TestDefineTask_SingleStringDep(t *testing.T) {
	reg := registry.New(testutil.NewFakeFS())

	tk, err := reg.DefineTask(registry.Descriptor{Targets: []string{"test"}, Deps: "build"})
	require.NoError(t, err)
	assert.Equal(t, []string{"build"}, tk.Prereqs)
}

func TestDefineTask_RepeatedDeclarationsMerge(t *testing.T) {
	reg := registry.New(testutil.NewFakeFS())
	rec := &testutil.Recorder{}

	first, err := reg.DefineTask(registry.Descriptor{Targets: []string{"build"}, Deps: []string{"a", "b"}}, rec.Action())
	require.NoError(t, err)
	second, err := reg.DefineTask(registry.Descriptor{Targets: []string{"build"}, Deps: []string{"b", "c"}}, rec.Action())
	require.NoError(t, err)

	assert.Same(t, first, second)
	if diff := cmp.Diff([]string{"a", "b", "c"}, first.Prereqs); diff != "" {
		t.Errorf("prerequisite mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, first.Actions, 2, "re-declaration appends actions")
}

func TestDefineTask_MalformedDescriptors(t *testing.T) {
	reg := registry.New(testutil.NewFakeFS())

	cases := []struct {
		name string
		desc registry.Descriptor
	}{
		{"zero targets", registry.Descriptor{}},
		{"two targets", registry.Descriptor{Targets: []string{"a", "b"}}},
		{"bad deps shape", registry.Descriptor{Targets: []string{"a"}, Deps: 42}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reg.DefineTask(tc.desc)
			assert.ErrorIs(t, err, registry.ErrMalformedDeclaration)
		})
	}
}

func TestDefineFileTask(t *testing.T) {
	reg := registry.New(testutil.NewFakeFS())

	tk, err := reg.DefineFileTask(registry.Descriptor{
		Targets: []string{"app.bin"},
		Deps:    []string{"main.o"},
	})
	require.NoError(t, err)
	assert.Equal(t, task.File, tk.Kind)
}

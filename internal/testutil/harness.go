package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/bakego/internal/app"
	"github.com/specialistvlad/bakego/internal/buildfile"
	"github.com/specialistvlad/bakego/internal/fsutil"
)

// Options controls a harness run.
type Options struct {
	DryRun bool
	Trace  bool
}

// RunResult captures the outcome of a harness run.
type RunResult struct {
	// Output holds everything written to the app's writer: logs plus any
	// command output.
	Output string
	// Err is the error returned by App.Run (nil on success).
	Err error
	// App is the constructed application, exposing the registry for
	// assertions.
	App *app.App
}

// WriteBuildfile writes content as main.hcl inside dir and returns its path.
func WriteBuildfile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// RunBuildfile writes content into dir, loads it, and invokes the given
// targets against the real filesystem. Construction failures fail the test;
// run failures are returned in RunResult.Err for assertion.
func RunBuildfile(t *testing.T, dir, content string, targets []string, opts Options) RunResult {
	t.Helper()

	path := WriteBuildfile(t, dir, content)

	out := &SafeBuffer{}
	cfg, err := app.NewConfig(app.Config{
		BuildfilePath: path,
		Targets:       targets,
		LogLevel:      "debug",
		DryRun:        opts.DryRun,
		Trace:         opts.Trace,
	})
	require.NoError(t, err)

	loader := buildfile.NewLoader(out, out)
	application, err := app.NewApp(out, cfg, loader, fsutil.OSProbe{})
	require.NoError(t, err, "app construction should succeed; output:\n%s", out.String())

	runErr := application.Run(context.Background(), cfg)
	return RunResult{
		Output: out.String(),
		Err:    runErr,
		App:    application,
	}
}

// Package shellexec runs external commands through the system shell. The
// engine treats it as an opaque primitive: perform work, fail on nonzero
// exit, no interpretation of what the command does.
package shellexec

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Run executes command via `sh -c` in dir, streaming output to the given
// writers. A nonzero exit status (or failure to start) is returned as an
// error wrapping the underlying exec error.
func Run(ctx context.Context, dir, command string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", command, err)
	}
	return nil
}

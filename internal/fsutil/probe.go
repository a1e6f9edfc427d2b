package fsutil

import (
	"fmt"
	"os"
	"time"
)

// OSProbe answers existence and modification-time questions against the real
// filesystem. It is the production implementation of the probe interfaces
// consumed by the task and registry packages.
type OSProbe struct{}

// Exists reports whether a file or directory exists at path.
func (OSProbe) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ModTime returns the modification time of the file at path. It returns an
// error if the file does not exist or cannot be stat'd.
func (OSProbe) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.ModTime(), nil
}

package testutil

import (
	"fmt"
	"time"
)

// FakeFS is an in-memory filesystem probe. Tests shape existence and
// modification times directly instead of touching real files.
type FakeFS struct {
	files map[string]time.Time
}

// NewFakeFS returns an empty FakeFS.
func NewFakeFS() *FakeFS {
	return &FakeFS{files: make(map[string]time.Time)}
}

// Touch records path as existing with the given modification time.
func (f *FakeFS) Touch(path string, mtime time.Time) {
	f.files[path] = mtime
}

// Remove forgets path.
func (f *FakeFS) Remove(path string) {
	delete(f.files, path)
}

// Exists implements the probe interface.
func (f *FakeFS) Exists(path string) bool {
	_, ok := f.files[path]
	return ok
}

// ModTime implements the probe interface, failing for unknown paths the same
// way a real stat does.
func (f *FakeFS) ModTime(path string) (time.Time, error) {
	mtime, ok := f.files[path]
	if !ok {
		return time.Time{}, fmt.Errorf("failed to stat %s: file does not exist", path)
	}
	return mtime, nil
}

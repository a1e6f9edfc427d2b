// Package buildfile loads HCL build declarations into a registry.
//
// A buildfile is a single .hcl file or a directory of them. Three block types
// exist: `task` declares a plain task, `file` declares a file task whose
// label is a filesystem path, and `rule` declares a suffix rule whose label
// is the target suffix and whose `source` attribute is the replacement
// suffix for deriving the source path.
//
// Command lists are not evaluated at load time. They are kept as raw
// hcl.Expression values and resolved only when the owning task executes,
// against an evaluation context exposing `target`, `source` and `deps`. This
// is the same deferred-expression design used throughout this codebase: the
// model captures intent, and the execution stage resolves it.
package buildfile

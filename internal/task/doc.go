// Package task defines the Task data model, the atomic unit of work in a
// build graph, together with its staleness policy.
//
// A Task is either a plain task (a named grouping of actions that always
// runs) or a file task (a task whose name is a filesystem path and whose
// staleness is decided by timestamp comparison against its prerequisites).
// The kind is an explicit tag rather than a type hierarchy, so the two
// policies live side by side in one struct.
package task

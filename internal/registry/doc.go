// Package registry provides the central bookkeeping for the build graph.
//
// The Registry owns every Task and every Rule declared by a buildfile (or by
// Go code in tests). It is an explicit, passed-around object rather than
// process-wide state: constructing a fresh Registry gives a fully independent
// graph, which is how tests isolate themselves.
//
// The registry is populated during the declaration phase and is read-only
// during traversal, with one exception: resolution may synthesize file tasks
// on demand, either from a matching rule or from a file that already exists
// on disk.
package registry

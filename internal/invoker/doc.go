// Package invoker walks a build graph depth-first, executing each needed
// task's actions exactly once, after all of its transitive prerequisites.
//
// Traversal is strictly sequential and single-threaded. Memoization uses a
// tri-state mark per task; the in-progress state exists so that a dependency
// cycle fails the run with an explicit error instead of being silently
// treated as satisfied.
package invoker

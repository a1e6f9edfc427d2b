// Package app wires the application together: it owns the isolated logger,
// loads the buildfile into a fresh registry, and drives the invoker once per
// requested target.
package app

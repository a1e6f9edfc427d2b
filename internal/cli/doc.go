// Package cli translates command-line arguments into an app.Config. It is a
// collaborator of the engine, not part of it: by the time the app runs, all
// option handling is finished.
package cli

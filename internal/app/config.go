package app

import "errors"

// DefaultTarget is invoked when the user names no targets.
const DefaultTarget = "default"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	BuildfilePath string   // a single .hcl file or a directory of them
	Targets       []string // invoked in order; defaults to DefaultTarget

	LogFormat string
	LogLevel  string
	DryRun    bool
	Trace     bool
}

// NewConfig validates the configuration and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.BuildfilePath == "" {
		return nil, errors.New("BuildfilePath is a required configuration field and cannot be empty")
	}
	if len(cfg.Targets) == 0 {
		cfg.Targets = []string{DefaultTarget}
	}
	return &cfg, nil
}

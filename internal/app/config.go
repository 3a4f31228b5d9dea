package app

import (
	"errors"
	"fmt"
)

// What Run prints.
const (
	EmitValues = "values"
	EmitCode   = "code"
	EmitAll    = "all"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GraphPath string // .hcl file or directory
	Demo      bool   // use the built-in demo graph instead of GraphPath

	// OutputNode overrides the output declared by the seed file.
	OutputNode string
	Emit       string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.GraphPath == "" && !cfg.Demo {
		return nil, errors.New("GraphPath is a required configuration field and cannot be empty")
	}
	if cfg.GraphPath != "" && cfg.Demo {
		return nil, errors.New("GraphPath and Demo are mutually exclusive")
	}

	switch cfg.Emit {
	case "":
		cfg.Emit = EmitAll
	case EmitValues, EmitCode, EmitAll:
	default:
		return nil, fmt.Errorf("invalid emit mode %q: must be '%s', '%s' or '%s'", cfg.Emit, EmitValues, EmitCode, EmitAll)
	}

	return &cfg, nil
}

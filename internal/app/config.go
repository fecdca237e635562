package app

import (
	"errors"

	"github.com/vk/prog2math/internal/builder"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string // .json or .hcl call-graph file
	OutputPath string // formula destination; empty means stdout

	LogFormat string
	LogLevel  string
	MaxDepth  int
	Quiet     bool
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = builder.DefaultMaxDepth
	}
	return &cfg, nil
}

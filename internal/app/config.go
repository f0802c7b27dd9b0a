package app

import (
	"errors"

	"github.com/vk/ftlentries/internal/fixtures"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath string // .ftl file or directory
	OutputDir string // empty writes next to each source file
	Indent    string
	Stdout    bool // write the JSON of a single source to the output writer
	Check     bool // verify fixtures instead of converting

	LogFormat string
	LogLevel  string
	Fixtures  fixtures.Options
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.Check && (cfg.Stdout || cfg.OutputDir != "") {
		return nil, errors.New("check mode does not write output; drop the stdout and output options")
	}
	if cfg.Stdout && cfg.OutputDir != "" {
		return nil, errors.New("stdout and output directory are mutually exclusive")
	}
	if cfg.Fixtures.SourceExt == "" {
		cfg.Fixtures = fixtures.DefaultOptions()
	}

	return &cfg, nil
}

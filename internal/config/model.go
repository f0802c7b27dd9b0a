package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Config represents the parsed configuration for the ftlentries tool.
type Config struct {
	Output   OutputConfig   `toml:"output"`
	Log      LogConfig      `toml:"log"`
	Fixtures FixturesConfig `toml:"fixtures"`
}

// OutputConfig controls where and how entries JSON files are written.
type OutputConfig struct {
	// Directory to write .entries.json files to. Empty means next to each source file.
	Dir string `toml:"dir"`
	// Indentation used for each nesting level of the JSON output.
	Indent string `toml:"indent"`
}

// LogConfig contains logger configuration.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// FixturesConfig contains settings for fixture verification.
type FixturesConfig struct {
	// Source files whose name contains this marker are treated as error cases
	// and excluded from comparison.
	ErrorMarker string `toml:"error_marker"`
	SourceExt   string `toml:"source_ext"`
	EntriesExt  string `toml:"entries_ext"`
}

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Indent: "  ",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Fixtures: FixturesConfig{
			ErrorMarker: "errors",
			SourceExt:   ".ftl",
			EntriesExt:  ".entries.json",
		},
	}
}

// Validate checks if the Config is valid in its current state.
func (c *Config) Validate() error {
	if !contains(logLevels, c.Log.Level) {
		return fmt.Errorf("config: invalid log.level value %q (must be one of: %s)", c.Log.Level, strings.Join(logLevels, ", "))
	}
	if !contains(logFormats, c.Log.Format) {
		return fmt.Errorf("config: invalid log.format value %q (must be one of: %s)", c.Log.Format, strings.Join(logFormats, ", "))
	}
	if strings.Trim(c.Output.Indent, " \t") != "" {
		return errors.New("config: output.indent may only contain spaces and tabs")
	}
	if c.Fixtures.SourceExt == "" {
		return errors.New("config: missing fixtures.source_ext value")
	}
	if c.Fixtures.EntriesExt == "" {
		return errors.New("config: missing fixtures.entries_ext value")
	}
	if c.Fixtures.SourceExt == c.Fixtures.EntriesExt {
		return errors.New("config: fixtures.source_ext and fixtures.entries_ext must differ")
	}
	return nil
}

// Load reads config from a TOML file on top of the defaults and checks its validity.
// Unknown keys in the file are reported as an error.
func Load(file string) (Config, error) {
	conf := Default()
	md, err := toml.DecodeFile(file, &conf)
	if err != nil {
		return conf, fmt.Errorf("config: failed to read %s: %w", file, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return conf, fmt.Errorf("config: unknown keys in %s: %s", file, strings.Join(keys, ", "))
	}

	if err = conf.Validate(); err != nil {
		return conf, err
	}

	return conf, nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

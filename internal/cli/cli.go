package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/ftlentries/internal/app"
	"github.com/vk/ftlentries/internal/config"
	"github.com/vk/ftlentries/internal/fixtures"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Settings are layered: built-in defaults, then the -config file, then any
// flag given explicitly on the command line.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("ftlentries", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
ftlentries - Convert Fluent (.ftl) resources to ordered entries JSON.

Usage:
  ftlentries [options] PATH

Arguments:
  PATH
    Path to a single .ftl file or a directory containing .ftl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := config.Default()
	configFlag := flagSet.String("config", "", "Path to a TOML configuration file.")
	outFlag := flagSet.String("out", "", "Directory to write entries files to. Defaults to next to each source.")
	oFlag := flagSet.String("o", "", "Directory to write entries files to (shorthand).")
	indentFlag := flagSet.String("indent", defaults.Output.Indent, "Indentation for each JSON nesting level.")
	stdoutFlag := flagSet.Bool("stdout", false, "Write the JSON of a single source file to stdout.")
	checkFlag := flagSet.Bool("check", false, "Verify .ftl/.entries.json fixture pairs instead of converting.")
	logFormatFlag := flagSet.String("log-format", defaults.Log.Format, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.Log.Level, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected a single input path, got %d", flagSet.NArg())}
	}
	path := flagSet.Arg(0)
	slog.Debug("Input path determined.", "path", path)

	conf := defaults
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		conf = loaded
		slog.Debug("Config file loaded.", "file", *configFlag)
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			conf.Output.Dir = *outFlag
		case "o":
			conf.Output.Dir = *oFlag
		case "indent":
			conf.Output.Indent = *indentFlag
		case "log-format":
			conf.Log.Format = strings.ToLower(*logFormatFlag)
		case "log-level":
			conf.Log.Level = strings.ToLower(*logLevelFlag)
		}
	})

	if err := conf.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parameter validation complete.")

	outputDir := conf.Output.Dir
	if *checkFlag || *stdoutFlag {
		// A configured output directory only applies to plain conversion.
		if !isSet(flagSet, "out") && !isSet(flagSet, "o") {
			outputDir = ""
		}
	}

	appConfig, err := app.NewConfig(app.Config{
		InputPath: path,
		OutputDir: outputDir,
		Indent:    conf.Output.Indent,
		Stdout:    *stdoutFlag,
		Check:     *checkFlag,
		LogFormat: conf.Log.Format,
		LogLevel:  conf.Log.Level,
		Fixtures: fixtures.Options{
			SourceExt:   conf.Fixtures.SourceExt,
			EntriesExt:  conf.Fixtures.EntriesExt,
			ErrorMarker: conf.Fixtures.ErrorMarker,
		},
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}

func isSet(flagSet *flag.FlagSet, name string) bool {
	set := false
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

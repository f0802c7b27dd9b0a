// Package fixtures verifies pairs of FTL sources and their golden entries JSON
// files. For a source `name.ftl` the golden file is `name.entries.json` next to
// it. Sources whose file name contains the error marker are deliberately
// malformed and are skipped.
package fixtures

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/vk/ftlentries/internal/ctxlog"
	"github.com/vk/ftlentries/internal/fsutil"
	"github.com/vk/ftlentries/internal/pipeline"
)

// Options controls fixture discovery.
type Options struct {
	SourceExt   string
	EntriesExt  string
	ErrorMarker string
}

// DefaultOptions returns the standard fixture naming scheme.
func DefaultOptions() Options {
	return Options{
		SourceExt:   ".ftl",
		EntriesExt:  ".entries.json",
		ErrorMarker: "errors",
	}
}

// Pair is a source file and the golden entries file it is compared against.
type Pair struct {
	Source  string
	Entries string
	Skipped bool
}

// Result is the outcome of verifying a single Pair.
type Result struct {
	Pair Pair
	// Diff is the cmp.Diff between the decoded golden file (-) and the parsed
	// source (+). Empty when both agree.
	Diff string
	Err  error
}

// Passed reports whether the pair was verified without error or difference.
func (r Result) Passed() bool {
	return !r.Pair.Skipped && r.Err == nil && r.Diff == ""
}

// Report summarizes a VerifyAll run.
type Report struct {
	Results []Result
	Passed  int
	Failed  int
	Skipped int
}

// Failures returns the results that did not pass, in discovery order.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Pair.Skipped && !res.Passed() {
			out = append(out, res)
		}
	}
	return out
}

// Discover finds every source file under dir and pairs it with its golden file.
func Discover(dir string, opts Options) ([]Pair, error) {
	sources, err := fsutil.FindFilesByExtension(dir, opts.SourceExt)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures in %s: %w", dir, err)
	}

	pairs := make([]Pair, 0, len(sources))
	for _, src := range sources {
		pairs = append(pairs, Pair{
			Source:  src,
			Entries: fsutil.SwapExtension(src, opts.SourceExt, opts.EntriesExt),
			Skipped: opts.ErrorMarker != "" && strings.Contains(filepath.Base(src), opts.ErrorMarker),
		})
	}
	return pairs, nil
}

// Verify parses the source of pair, decodes its golden file and compares the
// two resources structurally.
func Verify(pair Pair) Result {
	res := Result{Pair: pair}
	if pair.Skipped {
		return res
	}

	src, err := os.ReadFile(pair.Source)
	if err != nil {
		res.Err = err
		return res
	}
	golden, err := os.ReadFile(pair.Entries)
	if err != nil {
		res.Err = fmt.Errorf("missing golden file for %s: %w", pair.Source, err)
		return res
	}

	parsed, err := pipeline.ParseFile(pair.Source, src)
	if err != nil {
		res.Err = fmt.Errorf("failed to parse %s: %w", pair.Source, err)
		return res
	}
	expected, err := pipeline.DeserializeJSON(string(golden))
	if err != nil {
		res.Err = fmt.Errorf("failed to decode %s: %w", pair.Entries, err)
		return res
	}

	res.Diff = cmp.Diff(expected, parsed)
	return res
}

// VerifyAll discovers and verifies every fixture pair under dir.
func VerifyAll(ctx context.Context, dir string, opts Options) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Discovering fixtures.", "dir", dir)

	pairs, err := Discover(dir, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("Fixtures discovered.", "count", len(pairs))

	report := &Report{Results: make([]Result, 0, len(pairs))}
	for _, pair := range pairs {
		result := Verify(pair)
		report.Results = append(report.Results, result)

		switch {
		case pair.Skipped:
			report.Skipped++
			logger.Debug("Skipping error fixture.", "source", pair.Source)
		case result.Passed():
			report.Passed++
			logger.Debug("Fixture matches.", "source", pair.Source)
		default:
			report.Failed++
			if result.Err != nil {
				logger.Warn("Fixture could not be verified.", "source", pair.Source, "error", result.Err)
			} else {
				logger.Warn("Fixture does not match its golden file.", "source", pair.Source, "entries", pair.Entries)
			}
		}
	}

	logger.Info("Fixture verification finished.", "passed", report.Passed, "failed", report.Failed, "skipped", report.Skipped)
	return report, nil
}

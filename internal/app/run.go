package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/ftlentries/internal/ctxlog"
	"github.com/vk/ftlentries/internal/fixtures"
	"github.com/vk/ftlentries/internal/fsutil"
	"github.com/vk/ftlentries/internal/pipeline"
)

// diagnosticsWidth is the wrap width used when rendering parse diagnostics.
const diagnosticsWidth = 78

// convert turns every source file under the input path into an entries JSON
// file. A file that fails produces no output; the run fails if any file did.
func (a *App) convert(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(a.config.InputPath, a.config.Fixtures.SourceExt)
	if err != nil {
		return fmt.Errorf("failed to list sources: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No source files found, nothing to convert.", "input", a.config.InputPath)
		return nil
	}
	if a.config.Stdout && len(files) != 1 {
		return fmt.Errorf("stdout output needs exactly one source file, found %d", len(files))
	}
	logger.Info("🚀 Converting sources.", "count", len(files))

	failed := 0
	for _, file := range files {
		if err := a.convertFile(ctxlog.With(ctx, "source", file), file); err != nil {
			failed++
			a.reportError(file, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to convert", failed, len(files))
	}
	logger.Info("🏁 Conversion finished.", "count", len(files))
	return nil
}

func (a *App) convertFile(ctx context.Context, file string) error {
	logger := ctxlog.FromContext(ctx)

	src, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	res, err := pipeline.ParseFile(file, src)
	if err != nil {
		return &sourceError{src: src, err: err}
	}
	logger.Debug("Source parsed.", "entries", res.Len())

	out, err := pipeline.SerializeJSONIndent(res, a.config.Indent)
	if err != nil {
		return err
	}

	if a.config.Stdout {
		_, err = fmt.Fprint(a.outW, out)
		return err
	}

	dest, err := a.destination(file)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dest, []byte(out), 0o644); err != nil {
		return err
	}
	logger.Debug("Entries written.", "destination", dest)
	return nil
}

// destination returns the entries file path for a source file, mirroring the
// input directory layout under the output directory when one is set.
func (a *App) destination(file string) (string, error) {
	name := fsutil.SwapExtension(file, a.config.Fixtures.SourceExt, a.config.Fixtures.EntriesExt)
	if a.config.OutputDir == "" {
		return name, nil
	}

	rel, err := filepath.Rel(a.config.InputPath, name)
	if err != nil || strings.HasPrefix(rel, "..") {
		// The input path is the source file itself.
		rel = filepath.Base(name)
	}
	return filepath.Join(a.config.OutputDir, rel), nil
}

// sourceError keeps the source bytes of a failed file so diagnostics can be
// rendered with snippets.
type sourceError struct {
	src []byte
	err error
}

func (e *sourceError) Error() string { return e.err.Error() }
func (e *sourceError) Unwrap() error { return e.err }

// reportError writes a failure for file to the error writer. Parse
// diagnostics are rendered with source snippets.
func (a *App) reportError(file string, err error) {
	var srcErr *sourceError
	var diags hcl.Diagnostics
	if errors.As(err, &srcErr) && errors.As(err, &diags) {
		files := map[string]*hcl.File{file: {Bytes: srcErr.src}}
		wr := hcl.NewDiagnosticTextWriter(a.errW, files, diagnosticsWidth, false)
		if werr := wr.WriteDiagnostics(diags); werr == nil {
			return
		}
	}
	fmt.Fprintf(a.errW, "Error: %s: %v\n", file, err)
}

// check verifies every fixture pair under the input path and prints the
// failures with their diffs.
func (a *App) check(ctx context.Context) error {
	report, err := fixtures.VerifyAll(ctx, a.config.InputPath, a.config.Fixtures)
	if err != nil {
		return err
	}

	for _, f := range report.Failures() {
		if f.Err != nil {
			fmt.Fprintf(a.outW, "FAIL %s: %v\n", f.Pair.Source, f.Err)
			continue
		}
		fmt.Fprintf(a.outW, "FAIL %s (-%s +%s):\n%s\n", f.Pair.Source, filepath.Base(f.Pair.Entries), filepath.Base(f.Pair.Source), f.Diff)
	}
	fmt.Fprintf(a.outW, "%d passed, %d failed, %d skipped\n", report.Passed, report.Failed, report.Skipped)

	if report.Failed > 0 {
		return fmt.Errorf("%d fixtures failed", report.Failed)
	}
	return nil
}

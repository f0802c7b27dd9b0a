package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       Config
		expectErr bool
	}{
		{name: "input only", cfg: Config{InputPath: "x"}},
		{name: "missing input", cfg: Config{}, expectErr: true},
		{name: "check with stdout", cfg: Config{InputPath: "x", Check: true, Stdout: true}, expectErr: true},
		{name: "check with output dir", cfg: Config{InputPath: "x", Check: true, OutputDir: "o"}, expectErr: true},
		{name: "stdout with output dir", cfg: Config{InputPath: "x", Stdout: true, OutputDir: "o"}, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ".ftl", cfg.Fixtures.SourceExt, "fixture options default when unset")
		})
	}
}

func TestRun_ConvertsNextToSources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "en.ftl"), "zeta = Z\nalpha = A\n")
	writeFile(t, filepath.Join(dir, "nested", "de.ftl"), "hallo = Welt\n")

	testApp, _, logs := SetupAppTest(t, Config{InputPath: dir})
	require.NoError(t, testApp.Run(context.Background()))

	assert.Equal(t, "{\n  \"zeta\": \"Z\",\n  \"alpha\": \"A\"\n}\n", readFile(t, filepath.Join(dir, "en.entries.json")))
	assert.JSONEq(t, `{"hallo": "Welt"}`, readFile(t, filepath.Join(dir, "nested", "de.entries.json")))
	assert.Contains(t, logs.String(), "Conversion finished.")
}

func TestRun_ConvertsIntoOutputDir(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	writeFile(t, filepath.Join(dir, "nested", "de.ftl"), "hallo = Welt\n")

	testApp, _, _ := SetupAppTest(t, Config{InputPath: dir, OutputDir: out, Indent: "\t"})
	require.NoError(t, testApp.Run(context.Background()))

	assert.Equal(t, "{\n\t\"hallo\": \"Welt\"\n}\n", readFile(t, filepath.Join(out, "nested", "de.entries.json")))
}

func TestRun_SingleFileToOutputDir(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	src := filepath.Join(dir, "en.ftl")
	writeFile(t, src, "foo = Bar\n")

	testApp, _, _ := SetupAppTest(t, Config{InputPath: src, OutputDir: out})
	require.NoError(t, testApp.Run(context.Background()))

	assert.JSONEq(t, `{"foo": "Bar"}`, readFile(t, filepath.Join(out, "en.entries.json")))
}

func TestRun_Stdout(t *testing.T) {
	src := filepath.Join(t.TempDir(), "en.ftl")
	writeFile(t, src, "foo = Bar\n")

	testApp, stdout, _ := SetupAppTest(t, Config{InputPath: src, Stdout: true})
	require.NoError(t, testApp.Run(context.Background()))

	assert.Equal(t, "{\n  \"foo\": \"Bar\"\n}\n", stdout.String())
	_, err := os.Stat(filepath.Join(filepath.Dir(src), "en.entries.json"))
	assert.True(t, os.IsNotExist(err), "stdout mode must not write files")
}

func TestRun_StdoutNeedsSingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ftl"), "a = A\n")
	writeFile(t, filepath.Join(dir, "b.ftl"), "b = B\n")

	testApp, _, _ := SetupAppTest(t, Config{InputPath: dir, Stdout: true})
	err := testApp.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one source file")
}

func TestRun_FailedFilesProduceNoOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.ftl"), "ok = Fine\n")
	writeFile(t, filepath.Join(dir, "syntax.ftl"), "ok = Fine\nbroken = { nope\n")
	writeFile(t, filepath.Join(dir, "placeable.ftl"), "about = About { brand }\n")
	writeFile(t, filepath.Join(dir, "novalue.ftl"), "empty =\n")

	testApp, _, logs := SetupAppTest(t, Config{InputPath: dir})
	err := testApp.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 of 4 files failed")

	assert.FileExists(t, filepath.Join(dir, "good.entries.json"))
	for _, name := range []string{"syntax", "placeable", "novalue"} {
		assert.NoFileExists(t, filepath.Join(dir, name+".entries.json"))
	}

	output := logs.String()
	assert.Contains(t, output, "Unclosed placeable")
	assert.Contains(t, output, "broken = { nope", "diagnostics should include a source snippet")
	assert.Contains(t, output, "message 'about' cannot be represented")
	assert.Contains(t, output, "message 'empty' has no value")
}

func TestRun_NoSources(t *testing.T) {
	testApp, _, logs := SetupAppTest(t, Config{InputPath: t.TempDir()})
	require.NoError(t, testApp.Run(context.Background()))
	assert.Contains(t, logs.String(), "No source files found")
}

func TestRun_Check(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "good.ftl"), "a = A\n")
	writeFile(t, filepath.Join(dir, "good.entries.json"), `{"a": "A"}`)
	writeFile(t, filepath.Join(dir, "parse_errors.ftl"), "= broken\n")

	testApp, stdout, _ := SetupAppTest(t, Config{InputPath: dir, Check: true})
	require.NoError(t, testApp.Run(context.Background()))
	assert.Contains(t, stdout.String(), "1 passed, 0 failed, 1 skipped")
}

func TestRun_CheckReportsDiff(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.ftl"), "a = A\n")
	writeFile(t, filepath.Join(dir, "bad.entries.json"), `{"a": "Other"}`)

	testApp, stdout, _ := SetupAppTest(t, Config{InputPath: dir, Check: true})
	err := testApp.Run(context.Background())
	require.Error(t, err)

	output := stdout.String()
	assert.Contains(t, output, "FAIL "+filepath.Join(dir, "bad.ftl"))
	assert.Contains(t, output, "Other")
	assert.Contains(t, output, "0 passed, 1 failed, 0 skipped")
}

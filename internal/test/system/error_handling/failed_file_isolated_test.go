package system

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/ftlentries/internal/app"
)

// Test for: one broken source fails the run but does not stop the others
func TestFailedFile_DoesNotStopOthers(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ftl"), []byte("a = A\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.ftl"), []byte("b = B { c }\nd = D { e }\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.ftl"), []byte("c = C\n"), 0o600))

	testApp, _, logs := app.SetupAppTest(t, app.Config{InputPath: dir})

	// --- Act ---
	err := testApp.Run(context.Background())

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 files failed")

	assert.FileExists(t, filepath.Join(dir, "a.entries.json"))
	assert.FileExists(t, filepath.Join(dir, "c.entries.json"))
	assert.NoFileExists(t, filepath.Join(dir, "b.entries.json"))

	// Both offending messages of b.ftl are reported.
	assert.Contains(t, logs.String(), "message 'b'")
	assert.Contains(t, logs.String(), "message 'd'")
}

// Test for: every syntax error in a file is reported with its position
func TestSyntaxErrors_AllReported(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.ftl")
	require.NoError(t, os.WriteFile(src, []byte("ok = Fine\n= nameless\nbad = { $var }\n"), 0o600))

	testApp, stdout, logs := app.SetupAppTest(t, app.Config{InputPath: src, Stdout: true})

	err := testApp.Run(context.Background())

	require.Error(t, err)
	assert.Empty(t, stdout.String())
	assert.Contains(t, logs.String(), "Invalid message identifier")
	assert.Contains(t, logs.String(), "Expected message reference")
	assert.Contains(t, logs.String(), "broken.ftl line 2")
}

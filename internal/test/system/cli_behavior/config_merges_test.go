package system

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/ftlentries/internal/app"
	"github.com/vk/ftlentries/internal/cli"
)

// Test for: config file settings reach the conversion, flags override them
func TestCLI_ConfigFileAndFlagsMerge(t *testing.T) {
	// --- Arrange ---
	srcDir := t.TempDir()
	outDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "en.ftl"), []byte("b = B\na = A\n"), 0o600))

	configFile := filepath.Join(t.TempDir(), "ftlentries.toml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
[output]
dir = "ignored-by-flag"
indent = "\t"
`), 0o600))

	cfg, shouldExit, err := cli.Parse([]string{"-config", configFile, "-o", outDir, srcDir}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)

	testApp := app.NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg)

	// --- Act ---
	err = testApp.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(outDir, "en.entries.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"b\": \"B\",\n\t\"a\": \"A\"\n}\n", string(got))
	assert.NoDirExists(t, "ignored-by-flag")
}

// Test for: a config file with unknown keys is rejected before any work starts
func TestCLI_RejectsUnknownConfigKeys(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "ftlentries.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[output]\nworkers = 3\n"), 0o600))

	_, _, err := cli.Parse([]string{"-config", configFile, t.TempDir()}, &bytes.Buffer{})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "output.workers")
}

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoclaire/petesky-image-bot/internal/scan"
)

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

// runCLI executes the root command with isolated flags, config discovery
// and captured output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	jsonOutput, verbose, configPath = false, false, ""
	_ = parseCmd.Flags().Set("file", "")
	t.Setenv("PETESKY_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func queueDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	return dir
}

func TestAnalyze_EndToEnd(t *testing.T) {
	dir := queueDir(t,
		"1x01 - Inflatable Face.jpg",
		"1x01 - Inflatable Face (2).jpg",
		"S01E02 - Sleep.png",
		"random_pic.png",
	)

	out, err := runCLI(t, dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Found 4 image files")
	assert.Contains(t, out, "Total episodes:      3")
	assert.Contains(t, out, "Total images:        4")
	assert.Contains(t, out, "S1E1")
	assert.Contains(t, out, "S1E2: Sleep")
	assert.Contains(t, out, "Random Pic")
	// The fallback title pattern classified random_pic.png, so nothing
	// was left unidentified.
	assert.NotContains(t, out, "UNIDENTIFIED")
}

func TestAnalyze_EmptyDirectory(t *testing.T) {
	dir := queueDir(t)

	out, err := runCLI(t, dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, scan.ErrNoImages)
	assert.NotContains(t, out, "EPISODE DISTRIBUTION", "no partial report on failure")
}

func TestAnalyze_MissingDirectory(t *testing.T) {
	_, err := runCLI(t, filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.ErrorIs(t, err, scan.ErrNotFound)
}

func TestAnalyze_JSON(t *testing.T) {
	dir := queueDir(t,
		"1x1 - Inflatable Face.jpg",
		"S01E02 - Sleep.png",
	)

	out, err := runCLI(t, "--json", dir)
	require.NoError(t, err)

	var got struct {
		Found         int     `json:"found"`
		TotalEpisodes int     `json:"total_episodes"`
		TotalImages   int     `json:"total_images"`
		AveragePerEp  float64 `json:"average_per_episode"`
		Episodes      []struct {
			Key   string `json:"key"`
			Count int    `json:"count"`
		} `json:"episodes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, 2, got.Found)
	assert.Equal(t, 2, got.TotalEpisodes)
	assert.Equal(t, 2, got.TotalImages)
	assert.InDelta(t, 1.0, got.AveragePerEp, 0.001)
	require.Len(t, got.Episodes, 2)
	assert.Equal(t, "S1E1", got.Episodes[0].Key)
	assert.Equal(t, "S1E2", got.Episodes[1].Key)
}

func TestAnalyze_ConfigOverride(t *testing.T) {
	dir := queueDir(t, "1x1 - Forever Ware.jpg")

	cfgPath := filepath.Join(t.TempDir(), "petesky.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[series]
name = "Eerie, Indiana"
proper_noun = "Eerie"
`), 0644))

	out, err := runCLI(t, "--config", cfgPath, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Eerie, Indiana Screenshot Distribution Analyzer")
}

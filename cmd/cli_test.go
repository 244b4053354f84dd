package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootWithoutArgsWritesAllOutputs(t *testing.T) {
	home, out := t.TempDir(), t.TempDir()
	require.NoError(t, writeConfigFixture(home, out))

	stdout, _, err := executeCLI(t, home)
	require.NoError(t, err)

	for _, name := range []string{"output.csv", "output_converted.csv", "output.html", "output_min_max.html"} {
		path := filepath.Join(out, name)
		assert.FileExists(t, path)
		assert.Contains(t, stdout, path)
	}
	assert.Contains(t, stdout, "(5 layers)")

	layers := readLines(t, filepath.Join(out, "output.csv"))
	assert.Len(t, layers, 5)
	assert.True(t, strings.HasPrefix(layers[0], "Layer 1,#"))

	assert.Len(t, readLines(t, filepath.Join(out, "output_converted.csv")), 5)

	summary, err := os.ReadFile(filepath.Join(out, "output.html"))
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(string(summary), "<tr>"))
	assert.Contains(t, string(summary), "Generate and Average")

	minMax, err := os.ReadFile(filepath.Join(out, "output_min_max.html"))
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(string(minMax), "<tr>"))
	assert.Contains(t, string(minMax), "Max, Min, Average")
}

func TestRunHonoursCountFlag(t *testing.T) {
	home, out := t.TempDir(), t.TempDir()
	require.NoError(t, writeConfigFixture(home, out))

	_, _, err := executeCLI(t, home, "run", "--count", "2")
	require.NoError(t, err)

	assert.Len(t, readLines(t, filepath.Join(out, "output.csv")), 2)
	assert.Len(t, readLines(t, filepath.Join(out, "output_converted.csv")), 2)
}

func TestGenerateWithSeedIsReproducible(t *testing.T) {
	home, out := t.TempDir(), t.TempDir()
	require.NoError(t, writeConfigFixture(home, out))

	_, _, err := executeCLI(t, home, "generate", "--seed", "42")
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(out, "output.csv"))
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "generate", "--seed", "42")
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(out, "output.csv"))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestConvertWithoutLayersFileFails(t *testing.T) {
	home, out := t.TempDir(), t.TempDir()
	require.NoError(t, writeConfigFixture(home, out))

	_, _, err := executeCLI(t, home, "convert")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestConvertAbortsOnInvalidNumber(t *testing.T) {
	home, out := t.TempDir(), t.TempDir()
	require.NoError(t, writeConfigFixture(home, out))
	require.NoError(t, os.WriteFile(filepath.Join(out, "output.csv"), []byte("Layer 1,#00000000,\"1.0,nope,2.0\"\n"), 0o644))

	_, _, err := executeCLI(t, home, "convert")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid number")
	assert.NoFileExists(t, filepath.Join(out, "output_converted.csv"))
}

func TestReportSubcommandsWriteSingleFile(t *testing.T) {
	home, out := t.TempDir(), t.TempDir()
	require.NoError(t, writeConfigFixture(home, out))

	stdout, _, err := executeCLI(t, home, "report", "minmax", "--count", "3")
	require.NoError(t, err)
	assert.Contains(t, stdout, "min/max report")

	page, err := os.ReadFile(filepath.Join(out, "output_min_max.html"))
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(page), "<tr>"))
	assert.NoFileExists(t, filepath.Join(out, "output.html"))

	_, _, err = executeCLI(t, home, "report", "summary")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "output.html"))
}

func TestStatsRendersLayersFile(t *testing.T) {
	home, out := t.TempDir(), t.TempDir()
	require.NoError(t, writeConfigFixture(home, out))
	require.NoError(t, os.WriteFile(filepath.Join(out, "custom.csv"), []byte(
		"solo,#00000000,\"0.0,0.0,3.0\"\npair,#00000000,\"0.0,0.0,2.0; 0.0,0.0,1.0\"\n",
	), 0o644))

	stdout, _, err := executeCLI(t, home, "stats", "custom.csv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "layers: 2 (custom.csv)")
	assert.Contains(t, stdout, "solo")
	assert.Contains(t, stdout, "28.27")
	assert.Contains(t, stdout, "+Inf")
	assert.Contains(t, stdout, "pair")
	assert.Contains(t, stdout, "12.57")
	assert.Contains(t, stdout, "3.14")
}

func TestStatsLogsThroughConfiguredLogger(t *testing.T) {
	home, out := t.TempDir(), t.TempDir()
	require.NoError(t, writeConfigFixture(home, out))
	require.NoError(t, os.WriteFile(filepath.Join(out, "output.csv"), []byte("solo,#00000000,\"0.0,0.0,1.0\"\n"), 0o644))

	_, stderr, err := executeCLI(t, home, "stats", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "loaded stats")
	assert.Contains(t, stderr, "output.csv")
}

func TestAveragesPrintsConvertedFile(t *testing.T) {
	home, out := t.TempDir(), t.TempDir()
	require.NoError(t, writeConfigFixture(home, out))
	require.NoError(t, os.WriteFile(filepath.Join(out, "output.csv"), []byte(
		"solo,#00000000,\"0.0,0.0,3.0\"\nempty,#00000000,\n",
	), 0o644))

	_, _, err := executeCLI(t, home, "convert")
	require.NoError(t, err)

	stdout, stderr, err := executeCLI(t, home, "averages", "-v")
	require.NoError(t, err)
	assert.Equal(t, "solo\t28.27\nempty\tNaN\n", stdout)
	assert.Contains(t, stderr, "loaded averages")
}

func TestAveragesWithoutConvertedFileFails(t *testing.T) {
	home, out := t.TempDir(), t.TempDir()
	require.NoError(t, writeConfigFixture(home, out))

	_, _, err := executeCLI(t, home, "averages")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunLogsWrittenFiles(t *testing.T) {
	home, out := t.TempDir(), t.TempDir()
	require.NoError(t, writeConfigFixture(home, out))

	_, stderr, err := executeCLI(t, home, "run", "--log-level", "info")
	require.NoError(t, err)
	assert.Contains(t, stderr, "run complete")
	assert.Contains(t, stderr, filepath.Join(out, "output_min_max.html"))
}

func TestConfigInitThenShow(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "config", "init")
	require.NoError(t, err)
	configPath := filepath.Join(home, ".layerstats", "config.toml")
	assert.Contains(t, stdout, configPath)
	assert.FileExists(t, configPath)

	_, _, err = executeCLI(t, home, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = executeCLI(t, home, "config", "init", "--force")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "config", "show", "--count", "8")
	require.NoError(t, err)
	assert.Contains(t, stdout, "# "+configPath)
	assert.Contains(t, stdout, "count = 8")
	assert.Contains(t, stdout, "min_max_mode = 'legacy'")
}

func TestInvalidConfigFails(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".layerstats")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[stats]\nmin_max_mode = \"median\"\n"), 0o644))

	_, _, err := executeCLI(t, home, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestVersionIgnoresBrokenConfig(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".layerstats")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("version = 99\n"), 0o644))

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestVerboseLogsToStderr(t *testing.T) {
	home, out := t.TempDir(), t.TempDir()
	require.NoError(t, writeConfigFixture(home, out))

	_, stderr, err := executeCLI(t, home, "generate", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "configured")
	assert.Contains(t, stderr, "step complete")
}

func TestUnknownCommandFails(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "plot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"plot\"")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfigFixture(home, outputDir string) error {
	configDir := filepath.Join(home, ".layerstats")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	config := fmt.Sprintf(`version = 1

[output]
dir = %q

[log]
level = "warn"
`, outputDir)

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o644)
}

func readLines(t *testing.T, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

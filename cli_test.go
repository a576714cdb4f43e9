package benchplot_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thiagonache/benchplot"
)

// Changes the working directory, so it cannot run in parallel.
func TestRunCLIWithoutInputsInWorkingDirectoryPrintsGuidance(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	stdout := &bytes.Buffer{}
	cmd := benchplot.NewCommand()
	cmd.SetArgs([]string{})
	cmd.SetOut(stdout)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "  - benchmark_asp.csv\n  - benchmark_std.csv\n")
	assert.NoFileExists(t, filepath.Join(dir, "benchmark_time.png"))
}

// Changes the working directory, so it cannot run in parallel.
func TestRunCLIWithDefaultsWritesChartToWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	copyFile(t, filepath.Join(wd, "testdata/benchmark_asp.csv"), filepath.Join(dir, "benchmark_asp.csv"))
	copyFile(t, filepath.Join(wd, "testdata/benchmark_std.csv"), filepath.Join(dir, "benchmark_std.csv"))
	t.Chdir(dir)

	require.NoError(t, benchplot.RunCLI(nil))
	assert.FileExists(t, filepath.Join(dir, "benchmark_time.png"))
}

func TestCommandFlagsOverrideFileNames(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "time.svg")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := benchplot.NewCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{
		"--asp", "testdata/benchmark_asp.csv",
		"--std", "testdata/benchmark_std.csv",
		"-o", out,
		"-v",
	})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "chart written")
}

func TestCommandRejectsPositionalArguments(t *testing.T) {
	t.Parallel()
	cmd := benchplot.NewCommand()
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestRunCLIReturnsErrorForMalformedInput(t *testing.T) {
	t.Parallel()
	out := filepath.Join(t.TempDir(), "benchmark_time.png")
	err := benchplot.RunCLI([]string{
		"--asp", "testdata/empty.csv",
		"--std", "testdata/benchmark_std.csv",
		"--output", out,
	})
	assert.ErrorIs(t, err, benchplot.ErrMalformedInput)
	assert.NoFileExists(t, out)
}

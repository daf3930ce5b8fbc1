package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/will-rowe/quill/src/pipeline"
	"github.com/will-rowe/quill/src/version"
)

func writeTestFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
		require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestIdentifyAndReport(t *testing.T) {
	dir := writeTestFiles(t, map[string]string{
		"authors/dickens/two.txt":   "It was the best of times, it was the worst of times, it was the age of wisdom.",
		"authors/melville/moby.txt": "Call me Ishmael. Some years ago, never mind how long precisely.",
		"unknown/one.txt":           "it was the worst of times",
		"quill.toml":                "order = 2\nsmoothing = 0.1\n",
	})
	reportPath := filepath.Join(dir, "run.qrep")
	logPath := filepath.Join(dir, "logs", "quill.log")

	RootCmd.SetArgs([]string{
		"identify",
		"--config", filepath.Join(dir, "quill.toml"),
		"--log", logPath,
		"-p", "1",
		"-t", filepath.Join(dir, "authors"),
		"-i", filepath.Join(dir, "unknown"),
		"-o", reportPath,
	})
	require.NoError(t, RootCmd.Execute())

	info := new(pipeline.Info)
	require.NoError(t, info.Load(reportPath))
	assert.Equal(t, version.VERSION, info.Version)
	assert.Equal(t, 2, info.Model.Order)
	require.Len(t, info.Identifications, 1)
	best, ok := info.Identifications[0].Best()
	require.True(t, ok)
	assert.Equal(t, "dickens", best.Author)

	logged, err := ioutil.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "starting the identify subcommand")

	RootCmd.SetArgs([]string{"report", "--log", logPath, "-r", reportPath})
	require.NoError(t, RootCmd.Execute())
}

func TestStatsAndBabble(t *testing.T) {
	dir := writeTestFiles(t, map[string]string{
		"authors/dickens/two.txt": "It was the best of times, it was the worst of times.",
	})
	logPath := filepath.Join(dir, "quill.log")

	// flags persist between executions, so clear the config file from any earlier test
	RootCmd.SetArgs([]string{"stats", "--config", "", "--log", logPath, "-n", "1", "-t", filepath.Join(dir, "authors")})
	require.NoError(t, RootCmd.Execute())

	RootCmd.SetArgs([]string{"babble", "--config", "", "--log", logPath, "-n", "1", "--seed", "3", "-l", "5", "-a", filepath.Join(dir, "authors", "dickens")})
	require.NoError(t, RootCmd.Execute())

	logged, err := ioutil.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "starting the stats subcommand")
	assert.Contains(t, string(logged), "starting the babble subcommand")
}

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"zoo-arrivals-report/internal/platform/config"
	"zoo-arrivals-report/internal/runner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestRootCmd_GeneratesReport(t *testing.T) {
	dir := t.TempDir()
	arrivals := filepath.Join(dir, "arrivals.txt")
	enclosures := filepath.Join(dir, "enclosures.txt")
	out := filepath.Join(dir, "report.txt")

	writeFile(t, arrivals, "Lion Leo 5 12.5\nHyena Spot 2\n")
	writeFile(t, enclosures, "Leo 3\n")

	var stdout bytes.Buffer
	cmd := newRootCmd(&stdout, noEnv)
	cmd.SetArgs([]string{
		"--arrivals", arrivals,
		"--enclosures", enclosures,
		"--report", out,
		"--log-level", "error",
	})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Report successfully generated in "+out+"\n", stdout.String())

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Species: Lion\n  Name: Leo, Age: 5, Enclosure: 3, Unique Info: Mane length: 12.500000 cm.\n")
	assert.Contains(t, string(b), "  Name: Spot, Age: 2, Enclosure: None, Unique Info: Distinctive laugh and scavenger habits.\n")
}

func TestRootCmd_MissingArrivalsFails(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.txt")

	var stdout bytes.Buffer
	cmd := newRootCmd(&stdout, noEnv)
	cmd.SetArgs([]string{
		"--arrivals", filepath.Join(dir, "missing.txt"),
		"--report", out,
		"--log-level", "error",
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, runner.ErrArrivalsUnreadable), "got %v", err)
	assert.Empty(t, stdout.String())

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "report should not be created")
}

func TestRootCmd_RejectsPositionalArgs(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{}, noEnv)
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestResolveConfig_EnvAndFlags(t *testing.T) {
	env := map[string]string{
		config.EnvArrivalsPath: "env-arrivals.txt",
		config.EnvReportPath:   "env-report.txt",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg, err := resolveConfig(flags{report: "flag-report.txt"}, lookup)
	require.NoError(t, err)
	assert.Equal(t, "env-arrivals.txt", cfg.ArrivalsPath)
	assert.Equal(t, config.DefaultEnclosuresPath, cfg.EnclosuresPath)
	assert.Equal(t, "flag-report.txt", cfg.ReportPath)
}

func TestResolveConfig_BadConfigFile(t *testing.T) {
	_, err := resolveConfig(flags{configPath: filepath.Join(t.TempDir(), "nope.yaml")}, noEnv)
	assert.Error(t, err)
}

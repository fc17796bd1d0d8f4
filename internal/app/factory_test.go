package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quickrecipe/console/internal/log"
	"github.com/quickrecipe/console/internal/store"
	"github.com/quickrecipe/console/internal/usage"
)

func testOptions(t *testing.T, input string) (Options, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	var out bytes.Buffer
	return Options{
		ConfigPath: filepath.Join(dir, ".qconsolerc"),
		Overrides: map[string]string{
			"history_path": filepath.Join(dir, "history.db"),
			"log_path":     filepath.Join(dir, "qconsole.log"),
			"color":        "never",
		},
		Input:  strings.NewReader(input),
		Output: &out,
	}, &out
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	require.Equal(t, os.Stdin, opts.Input)
	require.Equal(t, os.Stdout, opts.Output)
}

func TestNew_Defaults(t *testing.T) {
	opts, _ := testOptions(t, "")

	app, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(app) })

	require.Equal(t, log.LevelNormal, app.Session.Out.Threshold())
	require.Equal(t, "> ", app.Session.Prompt)
	require.IsType(t, &store.Store{}, app.History)
	require.FileExists(t, opts.ConfigPath, "rc file is created with defaults")
	require.FileExists(t, opts.Overrides["history_path"])
	require.NoFileExists(t, opts.Overrides["log_path"], "diagnostics are off by default")
}

func TestNew_Overrides(t *testing.T) {
	opts, _ := testOptions(t, "")
	opts.Overrides["log_level"] = "error"
	opts.Overrides["history"] = "false"
	opts.Overrides["enable_log"] = "true"

	app, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(app) })

	require.Equal(t, log.LevelError, app.Session.Out.Threshold())
	require.Equal(t, store.Nop{}, app.History)
	require.FileExists(t, opts.Overrides["log_path"])
}

func TestNew_ReadsConfigFile(t *testing.T) {
	opts, _ := testOptions(t, "")
	require.NoError(t, os.WriteFile(opts.ConfigPath, []byte("log_level=warn\nprompt=\"$ \"\n"), 0600))

	app, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(app) })

	require.Equal(t, log.LevelWarning, app.Session.Out.Threshold())
	require.Equal(t, "$ ", app.Session.Prompt)
}

func TestNew_InvalidLevel(t *testing.T) {
	opts, _ := testOptions(t, "")
	opts.Overrides["log_level"] = "loud"

	_, err := New(opts)
	require.True(t, usage.Is(err, usage.ErrInvalidLevel))
}

func TestNew_InvalidOverrideKey(t *testing.T) {
	opts, _ := testOptions(t, "")
	opts.Overrides["nope"] = "1"

	_, err := New(opts)
	require.True(t, usage.Is(err, usage.ErrInvalidConfigKey))
}

func TestNew_SessionRuns(t *testing.T) {
	opts, out := testOptions(t, "\n")
	opts.Overrides["history"] = "false"

	app, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(app) })

	require.NoError(t, app.Session.Run(t.Context()))
	require.Equal(t, "> > ", out.String())
}

func TestClose_NilComponents(t *testing.T) {
	require.NoError(t, Close(&Application{}))
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	require.True(t, colorEnabled("always", &buf))
	require.False(t, colorEnabled("never", &buf))
	require.False(t, colorEnabled("auto", &buf), "a buffer is not a terminal")
}

func TestNew_TraceLevelAndSessionField(t *testing.T) {
	opts, _ := testOptions(t, "version\n")
	opts.Overrides["history"] = "false"
	opts.Overrides["enable_log"] = "true"
	opts.Overrides["trace_level"] = "info"

	app, err := New(opts)
	require.NoError(t, err)

	require.NoError(t, app.Session.Run(t.Context()))
	require.NoError(t, Close(app))

	data, err := os.ReadFile(opts.Overrides["log_path"])
	require.NoError(t, err)

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}

	require.NotEmpty(t, records)
	for _, rec := range records {
		require.NotEqual(t, "debug", rec["level"], "debug dispatch records are below trace_level")
		require.Equal(t, app.Session.ID.String(), rec["session"])
	}
}

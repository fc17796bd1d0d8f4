package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/quickrecipe/console/internal/usage"
)

func setupHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	return dir
}

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(input), &out)
	cmd.SetArgs(args)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestOverrides(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want map[string]string
	}{
		{"none", nil, map[string]string{}},
		{"level", []string{"--level", "warn"}, map[string]string{"log_level": "warn"}},
		{"no color", []string{"--no-color"}, map[string]string{"color": "never"}},
		{"no history", []string{"--no-history"}, map[string]string{"history": "false"}},
		{"log", []string{"--log"}, map[string]string{"enable_log": "true"}},
		{"log path", []string{"--log", "--log-path", "/tmp/q.log"}, map[string]string{
			"enable_log": "true",
			"log_path":   "/tmp/q.log",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f flags
			cmd := &cobra.Command{}
			f.register(cmd)
			require.NoError(t, cmd.ParseFlags(tt.args))

			require.Equal(t, tt.want, f.overrides(cmd))
		})
	}
}

func TestRun_QuitSession(t *testing.T) {
	dir := setupHome(t)

	out, err := execute(t, "version\nquit\nversion\n", "--no-history", "--no-color")
	require.NoError(t, err)
	require.Equal(t, "> qconsole version dev\n> Quitting the program...\n", out)
	require.FileExists(t, filepath.Join(dir, ".qconsolerc"))
}

func TestRun_EndOfInput(t *testing.T) {
	setupHome(t)

	out, err := execute(t, "nope\n", "--no-history", "--no-color")
	require.NoError(t, err)
	require.Contains(t, out, "[WARN] ")
	require.Contains(t, out, "nope")
}

func TestRun_CustomConfig(t *testing.T) {
	dir := setupHome(t)
	rc := filepath.Join(dir, "custom.rc")
	require.NoError(t, os.WriteFile(rc, []byte("prompt=\"$ \"\nhistory=false\ncolor=never\n"), 0600))

	out, err := execute(t, "level\n", "--config", rc, "--level", "normal")
	require.NoError(t, err)
	require.Equal(t, "$ The output level is 4 (NORMAL).\n$ ", out)
}

func TestRun_HistoryRecorded(t *testing.T) {
	setupHome(t)

	out, err := execute(t, "version\nhistory\n", "--no-color")
	require.NoError(t, err)
	require.Contains(t, out, "ok        version")
}

func TestRun_InvalidLevel(t *testing.T) {
	setupHome(t)

	_, err := execute(t, "", "--level", "loud", "--no-history")
	require.True(t, usage.Is(err, usage.ErrInvalidLevel))
	require.Equal(t, 2, exitCode(err))
}

func TestRun_RejectsArguments(t *testing.T) {
	setupHome(t)

	_, err := execute(t, "", "extra")
	require.Error(t, err)
	require.Equal(t, 1, exitCode(err))
}

func TestExitCode(t *testing.T) {
	require.Equal(t, 0, exitCode(nil))
	require.Equal(t, 1, exitCode(errors.New("boom")))
	require.Equal(t, 2, exitCode(usage.InvalidConfigKey("x")))
	require.Equal(t, 1, exitCode(usage.IOFailure("x", errors.New("denied"))))
}

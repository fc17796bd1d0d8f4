package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func semanticFuncs() []struct {
	name string
	fn   func(string) string
} {
	return []struct {
		name string
		fn   func(string) string
	}{
		{"Fatal", Fatal},
		{"Error", Error},
		{"Warning", Warning},
		{"Info", Info},
		{"Success", Success},
		{"Header", Header},
		{"Muted", Muted},
	}
}

func TestDisabledReturnsPlainText(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("QC_NO_COLOR", "")

	Init(false, nil)

	for _, tt := range semanticFuncs() {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.fn("test message")
			require.Equal(t, "test message", output)
			require.NotContains(t, output, "\x1b[")
		})
	}
}

func TestEnabledReturnsStyledText(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("QC_NO_COLOR", "")

	Init(true, map[string]string{"theme": "default-dark"})
	defer Init(false, nil)

	for _, tt := range semanticFuncs() {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.fn("test message")
			require.Contains(t, output, "test message")
			require.True(t, strings.Contains(output, "\x1b["), "expected ANSI codes in %q", output)
		})
	}
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	Init(true, nil)

	require.False(t, Enabled())
	require.Equal(t, "test", Error("test"))
}

func TestQCNoColorEnvDisablesStyling(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("QC_NO_COLOR", "1")

	Init(true, nil)

	require.False(t, Enabled())
	require.Equal(t, "test", Warning("test"))
}

func TestLoadColorConfig_Overrides(t *testing.T) {
	t.Setenv("QC_THEME", "")
	t.Setenv("QC_COLOR_ERROR", "")
	t.Setenv("QC_COLOR_INFO", "33")

	cfg := LoadColorConfig(map[string]string{
		"theme":       "mono-light",
		"color_error": "196",
	})

	require.Equal(t, "196", cfg.Error)
	require.Equal(t, "33", cfg.Info)
	require.Equal(t, Themes["mono-light"].Warning, cfg.Warning)
}

func TestLoadColorConfig_UnknownThemeFallsBack(t *testing.T) {
	t.Setenv("QC_THEME", "")

	cfg := LoadColorConfig(map[string]string{"theme": "nope-dark"})

	require.Equal(t, Themes["default-dark"], cfg)
}

func TestNopStyler(t *testing.T) {
	s := NopStyler{}
	require.False(t, s.Enabled())
	require.Equal(t, "x", s.Error("x"))
	require.Equal(t, "x", s.Header("x"))
}

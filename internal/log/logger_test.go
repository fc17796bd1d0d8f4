package log

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quickrecipe/console/internal/ui/style"
	"github.com/quickrecipe/console/internal/usage"
)

func newTestLogger(threshold Level, input string) (*Logger, *bytes.Buffer) {
	var out bytes.Buffer
	l := New(&out, threshold,
		WithInput(strings.NewReader(input)),
		WithStyler(style.NopStyler{}),
	)
	return l, &out
}

func TestLogger_Tags(t *testing.T) {
	tests := []struct {
		name string
		emit func(l *Logger)
		want string
	}{
		{"normal", func(l *Logger) { l.Output("hello") }, "hello\n"},
		{"info", func(l *Logger) { l.Info("hello") }, "[INFO] hello\n"},
		{"warn", func(l *Logger) { l.Warn("hello") }, "[WARN] hello\n"},
		{"error no code", func(l *Logger) { l.Error("hello", nil) }, "[ERROR] hello\n"},
		{"error empty code", func(l *Logger) { l.Error("hello", "") }, "[ERROR] hello\n"},
		{"error string code", func(l *Logger) { l.Error("hello", "E42") }, "[ERROR NO.E42] hello\n"},
		{"error int code", func(l *Logger) { l.Error("hello", 404) }, "[ERROR NO.404] hello\n"},
		{"error negative code", func(l *Logger) { l.Error("hello", -7) }, "[ERROR NO.7] hello\n"},
		{"fatal code", func(l *Logger) { l.Fatal("boom", 1) }, "[FATAL NO.1] boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, out := newTestLogger(LevelNormal, "")
			tt.emit(l)
			require.Equal(t, tt.want, out.String())
		})
	}
}

func TestLogger_ThresholdSuppresses(t *testing.T) {
	l, out := newTestLogger(LevelWarning, "")

	l.Emit("detail", LevelInfo, nil)

	require.Empty(t, out.String())
	last, ok := l.LastValue()
	require.True(t, ok)
	require.Equal(t, "detail", last)
}

func TestLogger_ThresholdBoundary(t *testing.T) {
	l, out := newTestLogger(LevelWarning, "")

	l.Fatal("f", nil)
	l.Error("e", nil)
	l.Warn("w")
	l.Info("i")
	l.Output("n")

	require.Equal(t, "[FATAL] f\n[ERROR] e\n[WARN] w\n", out.String())
}

func TestLogger_SetThresholdIdempotent(t *testing.T) {
	l, out := newTestLogger(LevelNormal, "")

	l.SetThreshold(LevelError)
	l.SetThreshold(LevelError)
	require.Equal(t, LevelError, l.Threshold())

	l.Warn("hidden")
	l.Error("shown", nil)
	require.Equal(t, "[ERROR] shown\n", out.String())
}

func TestLogger_SetThresholdClamps(t *testing.T) {
	l, _ := newTestLogger(LevelInfo, "")

	l.SetThreshold(Level(42))
	require.Equal(t, LevelNormal, l.Threshold())

	l.SetThreshold(Level(-5))
	require.Equal(t, LevelFatal, l.Threshold())
}

func TestLogger_MemoryAlwaysUpdated(t *testing.T) {
	l, _ := newTestLogger(LevelFatal, "")

	l.Output("first")
	l.Info(map[string]int{"n": 1})

	last, ok := l.LastValue()
	require.True(t, ok)
	require.Equal(t, map[string]int{"n": 1}, last)

	l.ClearMemory()
	last, ok = l.LastValue()
	require.False(t, ok)
	require.Nil(t, last)
}

func TestLogger_Ask(t *testing.T) {
	l, out := newTestLogger(LevelFatal, "yes\r\nsecond\nlast")

	answer, err := l.Ask("Continue? ")
	require.NoError(t, err)
	require.Equal(t, "yes", answer)
	require.Equal(t, "Continue? ", out.String(), "prompt is visible even at FATAL threshold")

	answer, err = l.Ask("> ")
	require.NoError(t, err)
	require.Equal(t, "second", answer)

	answer, err = l.Ask("> ")
	require.NoError(t, err)
	require.Equal(t, "last", answer)

	_, err = l.Ask("> ")
	require.ErrorIs(t, err, io.EOF)

	last, _ := l.LastValue()
	require.Equal(t, "> ", last)
}

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type named struct{}

func (named) String() string { return "named!" }

func TestSerialize(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "plain", "plain"},
		{"error", errors.New("broken"), "broken"},
		{"stringer", named{}, "named!"},
		{"string slice", []string{"a", "b"}, "a\nb"},
		{"struct", point{X: 1, Y: 2}, `{"x":1,"y":2}`},
		{"nil", nil, "null"},
		{"int", 7, "7"},
		{"unmarshalable", func() {}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Serialize(tt.value)
			if tt.name == "unmarshalable" {
				require.NotEmpty(t, got)
				return
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"fatal", LevelFatal},
		{"0", LevelFatal},
		{"ERROR", LevelError},
		{"1", LevelError},
		{"warn", LevelWarning},
		{"Warning", LevelWarning},
		{"2", LevelWarning},
		{"info", LevelInfo},
		{"3", LevelInfo},
		{"normal", LevelNormal},
		{" 4 ", LevelNormal},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseLevel("loud")
	require.True(t, usage.Is(err, usage.ErrInvalidLevel))
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelPrompt, "PROMPT"},
		{LevelFatal, "FATAL"},
		{LevelError, "ERROR"},
		{LevelWarning, "WARN"},
		{LevelInfo, "INFO"},
		{LevelNormal, "NORMAL"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.level.String())
	}
}

func TestLevel_Ordering(t *testing.T) {
	require.Equal(t, Level(0), LevelFatal)
	require.Equal(t, Level(1), LevelError)
	require.Equal(t, Level(2), LevelWarning)
	require.Equal(t, Level(3), LevelInfo)
	require.Equal(t, Level(4), LevelNormal)
	require.Less(t, int(LevelPrompt), int(LevelFatal))
}

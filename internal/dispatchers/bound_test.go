package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quickrecipe/console/internal/usage"
)

func exportAction() Action {
	return Action{
		Name:    "export",
		Usage:   "export <path> (append) (sep)",
		Accepts: AcceptsAny,
		Params: []Param{
			{Name: "path", Required: true},
			{Name: "append", Default: "true"},
			{Name: "sep", Default: "\n"},
		},
		Run: func(Bound) error { return nil },
	}
}

func TestBind_Positional(t *testing.T) {
	b, err := Bind(exportAction(), Positional("out.txt", "false"))
	require.NoError(t, err)

	require.Equal(t, ModePositional, b.Mode())
	require.Equal(t, "out.txt", b.String("path"))
	require.False(t, b.Bool("append"))
	require.Equal(t, "\n", b.String("sep"))
	require.True(t, b.Has("append"))
	require.False(t, b.Has("sep"))
}

func TestBind_Keyed(t *testing.T) {
	b, err := Bind(exportAction(), Keyed(map[string]string{"sep": ",", "path": "out.txt"}))
	require.NoError(t, err)

	require.Equal(t, ModeKeyed, b.Mode())
	require.Equal(t, "out.txt", b.String("path"))
	require.True(t, b.Bool("append"), "default applies")
	require.Equal(t, ",", b.String("sep"))
	require.True(t, b.Has("sep"))
	require.False(t, b.Has("append"))
}

func TestBind_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     Arguments
		wantKind usage.ErrorKind
		contains string
	}{
		{
			name:     "too many positional",
			args:     Positional("a", "b", "c", "d"),
			wantKind: usage.ErrBinding,
			contains: "at most 3",
		},
		{
			name:     "missing required positional",
			args:     Positional(),
			wantKind: usage.ErrBinding,
			contains: "'path'",
		},
		{
			name:     "missing required keyed",
			args:     Keyed(map[string]string{"append": "false"}),
			wantKind: usage.ErrBinding,
			contains: "'path'",
		},
		{
			name:     "unknown keyword",
			args:     Keyed(map[string]string{"path": "x", "colour": "red"}),
			wantKind: usage.ErrBinding,
			contains: "'colour'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Bind(exportAction(), tt.args)
			require.Error(t, err)
			require.True(t, usage.Is(err, tt.wantKind))
			require.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestBind_ShapeMismatch(t *testing.T) {
	keyedOnly := Action{
		Name:    "greet",
		Accepts: AcceptsKeyed,
		Params:  []Param{{Name: "name", Required: true}},
		Run:     func(Bound) error { return nil },
	}

	_, err := Bind(keyedOnly, Positional("Ada"))
	require.True(t, usage.Is(err, usage.ErrShapeMismatch))
	require.Contains(t, err.Error(), "positional")

	positionalOnly := keyedOnly
	positionalOnly.Accepts = AcceptsPositional
	_, err = Bind(positionalOnly, Keyed(map[string]string{"name": "Ada"}))
	require.True(t, usage.Is(err, usage.ErrShapeMismatch))
	require.Contains(t, err.Error(), "keyed")
}

func TestBound_Int(t *testing.T) {
	action := Action{
		Name:    "history",
		Accepts: AcceptsAny,
		Params:  []Param{{Name: "limit", Default: "20"}},
		Run:     func(Bound) error { return nil },
	}

	b, err := Bind(action, Positional())
	require.NoError(t, err)
	require.Equal(t, 20, b.Int("limit", 5))

	b, err = Bind(action, Positional("abc"))
	require.NoError(t, err)
	require.Equal(t, 5, b.Int("limit", 5))

	b, err = Bind(action, Keyed(map[string]string{"limit": "7"}))
	require.NoError(t, err)
	require.Equal(t, 7, b.Int("limit", 5))
}

func TestShape(t *testing.T) {
	require.True(t, AcceptsAny.Allows(ModePositional))
	require.True(t, AcceptsAny.Allows(ModeKeyed))
	require.False(t, AcceptsKeyed.Allows(ModePositional))
	require.False(t, AcceptsPositional.Allows(Mode(7)))
	require.Equal(t, "positional|keyed", AcceptsAny.String())
	require.Equal(t, "none", Shape(0).String())
}

package usage

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	cause := fs.ErrPermission

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message only", &Error{Message: "bad"}, "bad"},
		{"cause only", &Error{Err: cause}, cause.Error()},
		{"message and cause", &Error{Message: "bad", Err: cause}, "bad: " + cause.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_UnwrapAndIs(t *testing.T) {
	err := fmt.Errorf("loading: %w", IOFailure("a.txt", fs.ErrNotExist))

	require.ErrorIs(t, err, fs.ErrNotExist)
	require.True(t, Is(err, ErrIO))
	require.False(t, Is(err, ErrNotFound))
	require.False(t, Is(errors.New("plain"), ErrIO))
	require.False(t, Is(nil, ErrIO))
}

func TestError_ExitCodes(t *testing.T) {
	tests := []struct {
		err  *Error
		want int
	}{
		{InvalidLevel("loud"), 2},
		{InvalidConfigKey("nope"), 2},
		{IOFailure("x", fs.ErrNotExist), 1},
		{UnknownCommand("x"), 1},
		{&Error{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.err.Kind.String(), func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.GetExitCode())
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	err := UnknownCommand("frobnicate")
	require.Equal(t, ErrUnknownCommand, err.Kind)
	require.Equal(t,
		"The command with the name 'frobnicate' was not found.\nType 'help' to see the list of the available commands.",
		err.Error())

	err = UnknownCommand("hlep", "help", "history")
	require.Contains(t, err.Error(), "Did you mean: help, history?")
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		err      *Error
		kind     ErrorKind
		contains string
	}{
		{EmptyInput(), ErrEmptyInput, "empty"},
		{ShapeMismatch("greet", "positional"), ErrShapeMismatch, "'greet' does not accept positional"},
		{TooManyArguments("quit", 0, 2), ErrBinding, "at most 0"},
		{MissingArgument("load", "path"), ErrBinding, "'path'"},
		{UnexpectedKeyword("load", "colour"), ErrBinding, "'colour'"},
		{DuplicateName("help"), ErrDuplicateName, "'help'"},
		{NotFound("action 'x'"), ErrNotFound, "action 'x' not found"},
		{InvalidAction("empty name"), ErrInvalidAction, "empty name"},
		{InvalidConfigKey("nope"), ErrInvalidConfigKey, "'nope'"},
		{InvalidLevel("loud"), ErrInvalidLevel, "'loud'"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			require.Equal(t, tt.kind, tt.err.Kind)
			require.Contains(t, tt.err.Error(), tt.contains)
		})
	}
}

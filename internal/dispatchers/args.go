package dispatchers

import (
	"maps"
	"strings"
)

// Mode tells how the arguments of a command were written.
type Mode int

const (
	ModePositional Mode = iota
	ModeKeyed
)

func (m Mode) String() string {
	switch m {
	case ModePositional:
		return "positional"
	case ModeKeyed:
		return "keyed"
	default:
		return "unknown"
	}
}

// keyMarker is the optional flag prefix of a keyed token (-k=v, --k=v).
const keyMarker = "-"

// Arguments is either an ordered list of values or a key/value mapping.
type Arguments struct {
	mode   Mode
	values []string
	keyed  map[string]string
}

// Positional builds positional arguments.
func Positional(values ...string) Arguments {
	return Arguments{mode: ModePositional, values: append([]string{}, values...)}
}

// Keyed builds keyed arguments.
func Keyed(m map[string]string) Arguments {
	if m == nil {
		m = map[string]string{}
	}
	return Arguments{mode: ModeKeyed, keyed: maps.Clone(m)}
}

// Mode returns the argument mode.
func (a Arguments) Mode() Mode {
	return a.mode
}

// Values returns the positional values, nil in keyed mode.
func (a Arguments) Values() []string {
	if a.mode != ModePositional {
		return nil
	}
	return append([]string{}, a.values...)
}

// Map returns the keyed values, nil in positional mode.
func (a Arguments) Map() map[string]string {
	if a.mode != ModeKeyed {
		return nil
	}
	return maps.Clone(a.keyed)
}

// Len returns the number of arguments.
func (a Arguments) Len() int {
	if a.mode == ModeKeyed {
		return len(a.keyed)
	}
	return len(a.values)
}

// DroppedToken is a keyed token that could not yield a key.
type DroppedToken struct {
	Token  string
	Reason string
}

// Resolve classifies raw argument tokens. The command is keyed only when
// every token is non-empty and contains '='; a single other token makes
// the whole command positional. Keyed tokens split at the first '=',
// with leading dashes stripped from the key. Later duplicates win.
// Tokens left with an empty key are dropped and reported.
func Resolve(raw []string) (Arguments, []DroppedToken) {
	if len(raw) == 0 || !allKeyed(raw) {
		return Positional(raw...), nil
	}

	keyed := make(map[string]string, len(raw))
	var dropped []DroppedToken

	for _, tok := range raw {
		key, value, _ := strings.Cut(tok, "=")
		key = strings.TrimLeft(key, keyMarker)
		if key == "" {
			dropped = append(dropped, DroppedToken{Token: tok, Reason: "empty key"})
			continue
		}
		keyed[key] = value
	}

	return Arguments{mode: ModeKeyed, keyed: keyed}, dropped
}

func allKeyed(raw []string) bool {
	for _, tok := range raw {
		if !isKeyedToken(tok) {
			return false
		}
	}
	return true
}

func isKeyedToken(tok string) bool {
	return tok != "" && strings.Contains(tok, "=")
}

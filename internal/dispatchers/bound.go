package dispatchers

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/quickrecipe/console/internal/usage"
)

// Bound gives a handler typed access to its arguments after they were
// matched against the declared parameters.
type Bound struct {
	mode   Mode
	values map[string]string
	given  map[string]bool
}

// Bind matches args against action's parameters. Positional values bind
// by order; keyed values bind by name. Parameters left unset take their
// default unless they are required. The argument mode must be one the
// action accepts.
func Bind(action Action, args Arguments) (Bound, error) {
	if !action.Accepts.Allows(args.Mode()) {
		return Bound{}, usage.ShapeMismatch(action.Name, args.Mode().String())
	}

	b := Bound{
		mode:   args.Mode(),
		values: make(map[string]string, len(action.Params)),
		given:  make(map[string]bool, len(action.Params)),
	}

	switch args.Mode() {
	case ModePositional:
		if len(args.values) > len(action.Params) {
			return Bound{}, usage.TooManyArguments(action.Name, len(action.Params), len(args.values))
		}
		for i, v := range args.values {
			name := action.Params[i].Name
			b.values[name] = v
			b.given[name] = true
		}
	case ModeKeyed:
		declared := make(map[string]bool, len(action.Params))
		for _, p := range action.Params {
			declared[p.Name] = true
		}
		for _, key := range slices.Sorted(maps.Keys(args.keyed)) {
			if !declared[key] {
				return Bound{}, usage.UnexpectedKeyword(action.Name, key)
			}
			b.values[key] = args.keyed[key]
			b.given[key] = true
		}
	}

	for _, p := range action.Params {
		if b.given[p.Name] {
			continue
		}
		if p.Required {
			return Bound{}, usage.MissingArgument(action.Name, p.Name)
		}
		b.values[p.Name] = p.Default
	}

	return b, nil
}

// Mode returns how the arguments were written.
func (b Bound) Mode() Mode {
	return b.mode
}

// Has returns true if the parameter was given explicitly.
func (b Bound) Has(name string) bool {
	return b.given[name]
}

// String returns the bound value of a parameter, or its declared default.
func (b Bound) String(name string) string {
	return b.values[name]
}

// Int returns the integer value of a parameter, or defaultVal if absent or invalid.
func (b Bound) Int(name string, defaultVal int) int {
	str := b.values[name]
	if str == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	return n
}

// Bool returns true for "true", "yes", "1" and "on" (case insensitive).
func (b Bound) Bool(name string) bool {
	switch strings.ToLower(b.values[name]) {
	case "true", "yes", "1", "on":
		return true
	default:
		return false
	}
}

package dispatchers

import "strings"

// Shape is the set of argument modes an action accepts.
type Shape int

const (
	AcceptsPositional Shape = 1 << iota
	AcceptsKeyed
	AcceptsAny = AcceptsPositional | AcceptsKeyed
)

// Allows reports whether s includes the given argument mode.
func (s Shape) Allows(m Mode) bool {
	switch m {
	case ModePositional:
		return s&AcceptsPositional != 0
	case ModeKeyed:
		return s&AcceptsKeyed != 0
	default:
		return false
	}
}

func (s Shape) String() string {
	var parts []string
	if s&AcceptsPositional != 0 {
		parts = append(parts, "positional")
	}
	if s&AcceptsKeyed != 0 {
		parts = append(parts, "keyed")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Param declares one handler parameter. Declaration order is the
// positional binding order; Name is the keyed binding name.
type Param struct {
	Name     string
	Required bool
	Default  string
}

// Handler runs an action with its bound arguments.
type Handler func(args Bound) error

// Action is one named, invocable capability.
type Action struct {
	Name          string
	Description   string
	Usage         string
	Specification string
	Accepts       Shape
	Params        []Param
	Run           Handler
}

// IsSentinel reports whether a is the not-found placeholder returned by
// Registry.Lookup.
func (a Action) IsSentinel() bool {
	return a.Name == ""
}

// DisplayUsage returns Usage, or the bare name when no usage was declared.
func (a Action) DisplayUsage() string {
	if a.Usage != "" {
		return a.Usage
	}
	return a.Name
}

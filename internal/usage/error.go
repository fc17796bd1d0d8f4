package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrEmptyInput
	ErrUnknownCommand
	ErrShapeMismatch
	ErrBinding
	ErrDuplicateName
	ErrNotFound
	ErrInvalidAction
	ErrIO
	ErrInvalidConfigKey
	ErrInvalidLevel
)

func (k ErrorKind) String() string {
	switch k {
	case ErrEmptyInput:
		return "empty input"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrShapeMismatch:
		return "argument shape mismatch"
	case ErrBinding:
		return "argument binding"
	case ErrDuplicateName:
		return "duplicate name"
	case ErrNotFound:
		return "not found"
	case ErrInvalidAction:
		return "invalid action"
	case ErrIO:
		return "io failure"
	case ErrInvalidConfigKey:
		return "invalid config key"
	case ErrInvalidLevel:
		return "invalid level"
	default:
		return "unknown"
	}
}

// Exit codes:
//
//	Exit 1: anything that stops the console before or outside the loop
//	Exit 2: user input errors reported at startup (bad level, bad config key)
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrIO:               1,
	ErrInvalidConfigKey: 2,
	ErrInvalidLevel:     2,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// GetExitCode returns the process exit code for this error.
func (e *Error) GetExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Is reports whether err is, or wraps, a usage error of the given kind.
func Is(err error, kind ErrorKind) bool {
	var ue *Error
	if !errors.As(err, &ue) {
		return false
	}
	return ue.Kind == kind
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)

package usage

import "fmt"

// DuplicateName is returned when registering an action whose name is taken.
func DuplicateName(name string) *Error {
	return &Error{
		Kind:    ErrDuplicateName,
		Message: fmt.Sprintf("an action named '%s' is already registered", name),
	}
}

// NotFound is returned when a named item does not exist.
func NotFound(what string) *Error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", what),
	}
}

// InvalidAction is returned when an action cannot be registered as given.
func InvalidAction(reason string) *Error {
	return &Error{
		Kind:    ErrInvalidAction,
		Message: "invalid action: " + reason,
	}
}

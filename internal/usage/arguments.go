package usage

import (
	"fmt"
	"strings"
)

// EmptyInput is returned by the tokenizer for blank lines.
func EmptyInput() *Error {
	return &Error{
		Kind:    ErrEmptyInput,
		Message: "empty input",
	}
}

// ShapeMismatch is returned when an action is called with an argument
// shape it does not declare.
func ShapeMismatch(action, got string) *Error {
	return &Error{
		Kind:    ErrShapeMismatch,
		Message: fmt.Sprintf("'%s' does not accept %s arguments", action, got),
	}
}

// TooManyArguments is returned when more positional values are given than
// the action declares parameters.
func TooManyArguments(action string, max, got int) *Error {
	return &Error{
		Kind:    ErrBinding,
		Message: fmt.Sprintf("'%s' takes at most %d argument(s) but %d were given", action, max, got),
	}
}

// MissingArgument is returned when a required parameter is not bound.
func MissingArgument(action, param string) *Error {
	return &Error{
		Kind:    ErrBinding,
		Message: fmt.Sprintf("'%s' is missing required argument '%s'", action, param),
	}
}

// UnexpectedKeyword is returned when a keyed argument names no parameter.
func UnexpectedKeyword(action, key string) *Error {
	return &Error{
		Kind:    ErrBinding,
		Message: fmt.Sprintf("'%s' got an unexpected keyword argument '%s'", action, key),
	}
}

// InvalidOption is returned when an argument is outside its allowed values.
func InvalidOption(action, param, value string, allowed ...string) *Error {
	msg := fmt.Sprintf("'%s' does not accept %s '%s'", action, param, value)
	if len(allowed) > 0 {
		msg += fmt.Sprintf(" (allowed: %s)", strings.Join(allowed, ", "))
	}
	return &Error{
		Kind:    ErrBinding,
		Message: msg,
	}
}

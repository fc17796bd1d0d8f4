package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is reported when no action is registered under command.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("The command with the name '%s' was not found.", command)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf(" Did you mean: %s?", strings.Join(suggestions, ", "))
	}
	msg += "\nType 'help' to see the list of the available commands."
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}

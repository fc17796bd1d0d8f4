package dispatchers

import (
	"errors"
	"fmt"

	"github.com/quickrecipe/console/internal/usage"
)

const defaultSuggestionsCount = 3

// Output is where the dispatcher reports the problems it contains.
type Output interface {
	Warn(value any)
	Error(value any, code any)
}

// Outcome is what happened to a dispatched command.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeUnknown
	OutcomeRejected
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeUnknown:
		return "unknown"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	default:
		return "invalid"
	}
}

// Command is one parsed input line.
type Command struct {
	Name    string
	Args    Arguments
	Dropped []DroppedToken
}

// Parse tokenizes line and resolves its argument mode.
func Parse(line string) (Command, error) {
	name, raw, err := Tokenize(line)
	if err != nil {
		return Command{}, err
	}
	args, dropped := Resolve(raw)
	return Command{Name: name, Args: args, Dropped: dropped}, nil
}

// Dispatcher resolves commands against a registry and runs them.
type Dispatcher struct {
	registry *Registry
	out      Output
}

// NewDispatcher creates a dispatcher reporting to out.
func NewDispatcher(registry *Registry, out Output) *Dispatcher {
	return &Dispatcher{registry: registry, out: out}
}

// Dispatch runs cmd. Unknown commands and arguments that do not fit the
// action are reported to the output and never returned. Errors raised by
// the handler itself are returned untouched.
func (d *Dispatcher) Dispatch(cmd Command) (Outcome, error) {
	action, ok := d.registry.Lookup(cmd.Name)
	if !ok {
		suggestions := FindSimilarCommands(cmd.Name, d.registry, defaultSuggestionsCount)
		d.out.Warn(usage.UnknownCommand(cmd.Name, suggestions...).Error())
		return OutcomeUnknown, nil
	}

	for _, dt := range cmd.Dropped {
		d.out.Warn(fmt.Sprintf("Ignoring argument '%s' of '%s': %s.", dt.Token, cmd.Name, dt.Reason))
	}

	bound, err := Bind(action, cmd.Args)
	if err != nil {
		d.reject(action, err)
		return OutcomeRejected, nil
	}

	if err := action.Run(bound); err != nil {
		return OutcomeFailed, err
	}
	return OutcomeOK, nil
}

// Execute parses and dispatches one line. Blank lines do nothing.
func (d *Dispatcher) Execute(line string) (Command, Outcome, error) {
	cmd, err := Parse(line)
	if err != nil {
		if usage.Is(err, usage.ErrEmptyInput) {
			return Command{}, OutcomeOK, nil
		}
		return Command{}, OutcomeFailed, err
	}
	outcome, err := d.Dispatch(cmd)
	return cmd, outcome, err
}

func (d *Dispatcher) reject(action Action, err error) {
	reason := err.Error()
	var ue *usage.Error
	if errors.As(err, &ue) {
		reason = ue.Message
	}
	d.out.Error(fmt.Sprintf(
		"Invalid arguments for '%s': %s\nPlease use the command parameters:\n    %s",
		action.Name, reason, action.DisplayUsage(),
	), nil)
}

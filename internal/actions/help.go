package actions

import (
	"fmt"

	"github.com/quickrecipe/console/internal/console"
	"github.com/quickrecipe/console/internal/dispatchers"
)

const helpNameWidth = 12

func helpAction(s *console.Session, _ Deps) dispatchers.Action {
	return dispatchers.Action{
		Name:        "help",
		Description: "Send a help message.",
		Usage:       "help (command) (show_usage)",
		Accepts:     dispatchers.AcceptsAny,
		Params: []dispatchers.Param{
			{Name: "cmd"},
			{Name: "show_usage", Default: "false"},
		},
		Run: func(args dispatchers.Bound) error {
			return help(s, args)
		},
	}
}

func help(s *console.Session, args dispatchers.Bound) error {
	name := args.String("cmd")

	if name == "" {
		s.Out.Output("Here is the list of all the commands:\n")
		showUsage := args.Bool("show_usage")
		for a := range s.Registry.All() {
			label := fmt.Sprintf("%-*s", helpNameWidth, a.Name)
			if showUsage {
				label = a.DisplayUsage()
			}
			s.Out.Output(label + ": " + a.Description)
		}
		return nil
	}

	action, ok := s.Registry.Lookup(name)
	if !ok {
		s.Out.Output(fmt.Sprintf("There is no registered command named '%s'", name))
		return nil
	}

	s.Out.Output(fmt.Sprintf("Here is the usage of the command '%s':\n    %s", name, action.DisplayUsage()))
	if action.Specification != "" {
		s.Out.Output(action.Specification)
	}
	return nil
}

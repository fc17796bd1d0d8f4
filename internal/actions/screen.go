package actions

import (
	"github.com/quickrecipe/console/internal/console"
	"github.com/quickrecipe/console/internal/dispatchers"
)

func quitAction(s *console.Session, _ Deps) dispatchers.Action {
	return dispatchers.Action{
		Name:        "quit",
		Description: "Quit the program.",
		Usage:       "quit",
		Run: func(dispatchers.Bound) error {
			s.Out.Output("Quitting the program...")
			return console.ErrQuit
		},
	}
}

func clearAction(_ *console.Session, deps Deps) dispatchers.Action {
	return dispatchers.Action{
		Name:        "clear",
		Description: "Clear the content of the console.",
		Usage:       "clear",
		Run: func(dispatchers.Bound) error {
			if deps.ClearScreen != nil {
				deps.ClearScreen()
			}
			return nil
		},
	}
}

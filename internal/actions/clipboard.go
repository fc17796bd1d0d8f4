package actions

import (
	"github.com/quickrecipe/console/internal/console"
	"github.com/quickrecipe/console/internal/dispatchers"
	"github.com/quickrecipe/console/internal/usage"
)

func clipboardAction(s *console.Session, _ Deps) dispatchers.Action {
	return dispatchers.Action{
		Name:        "clipboard",
		Description: "See or clear the actual clipboard value.",
		Usage:       "clipboard (clear)",
		Accepts:     dispatchers.AcceptsAny,
		Params:      []dispatchers.Param{{Name: "option"}},
		Run: func(args dispatchers.Bound) error {
			return clipboard(s, args)
		},
	}
}

func clipboard(s *console.Session, args dispatchers.Bound) error {
	switch option := args.String("option"); option {
	case "":
		value, ok := s.Clipboard.Get()
		if !ok {
			s.Out.Info("The clipboard is empty.")
			return nil
		}
		s.Out.Output(value)
		return nil
	case "clear":
		s.Clipboard.Clear()
		s.Out.Info("The clipboard has been cleared")
		s.Out.ClearMemory()
		return nil
	default:
		return usage.InvalidOption("clipboard", "option", option, "clear")
	}
}

func copyAction(s *console.Session, _ Deps) dispatchers.Action {
	return dispatchers.Action{
		Name:        "copy",
		Description: "Copy the last output value in the clipboard.",
		Usage:       "copy",
		Run: func(dispatchers.Bound) error {
			return copyLast(s)
		},
	}
}

func copyLast(s *console.Session) error {
	value, ok := s.LastOutput()
	if !ok {
		s.Out.Warn("There is no output to copy.")
		return nil
	}
	s.Clipboard.Set(value)
	s.Out.Info("The last output has been copied in the clipboard.")
	return nil
}

package actions

import (
	"github.com/quickrecipe/console/internal/console"
	"github.com/quickrecipe/console/internal/dispatchers"
)

func versionAction(s *console.Session, deps Deps) dispatchers.Action {
	return dispatchers.Action{
		Name:        "version",
		Description: "Show the version of the console.",
		Usage:       "version",
		Run: func(args dispatchers.Bound) error {
			return showVersion(s, args, deps)
		},
	}
}

func showVersion(s *console.Session, _ dispatchers.Bound, deps Deps) error {
	s.Out.Output("qconsole version " + deps.Version())
	return nil
}

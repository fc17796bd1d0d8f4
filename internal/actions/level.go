package actions

import (
	"fmt"

	"github.com/quickrecipe/console/internal/console"
	"github.com/quickrecipe/console/internal/dispatchers"
	"github.com/quickrecipe/console/internal/log"
)

func levelAction(s *console.Session, _ Deps) dispatchers.Action {
	return dispatchers.Action{
		Name:        "level",
		Description: "See or set the output level.",
		Usage:       "level (fatal|error|warn|info|normal|0-4)",
		Specification: "Messages less important than the level are not printed.\n" +
			"Their value can still be copied with 'copy'.",
		Accepts: dispatchers.AcceptsAny,
		Params:  []dispatchers.Param{{Name: "level"}},
		Run: func(args dispatchers.Bound) error {
			return level(s, args)
		},
	}
}

func level(s *console.Session, args dispatchers.Bound) error {
	value := args.String("level")
	if value == "" {
		current := s.Out.Threshold()
		s.Out.Output(fmt.Sprintf("The output level is %d (%s).", current, current))
		return nil
	}

	parsed, err := log.ParseLevel(value)
	if err != nil {
		return err
	}
	s.Out.SetThreshold(parsed)
	s.Out.Info(fmt.Sprintf("The output level has been set to %d (%s).", parsed, parsed))
	return nil
}

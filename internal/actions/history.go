package actions

import (
	"fmt"
	"time"

	"github.com/quickrecipe/console/internal/console"
	"github.com/quickrecipe/console/internal/dispatchers"
	"github.com/quickrecipe/console/internal/domain"
	"github.com/quickrecipe/console/internal/format"
)

const defaultHistoryLimit = 20

func historyAction(s *console.Session, deps Deps) dispatchers.Action {
	return dispatchers.Action{
		Name:        "history",
		Description: "List the commands of this session.",
		Usage:       "history (limit)",
		Accepts:     dispatchers.AcceptsAny,
		Params:      []dispatchers.Param{{Name: "limit", Default: fmt.Sprint(defaultHistoryLimit)}},
		Run: func(args dispatchers.Bound) error {
			return history(s, args, deps)
		},
	}
}

func history(s *console.Session, args dispatchers.Bound, deps Deps) error {
	records, err := s.History.ListSession(s.ID.String(), args.Int("limit", defaultHistoryLimit))
	if err != nil {
		return err
	}
	if len(records) == 0 {
		s.Out.Info("No command has been recorded in this session.")
		return nil
	}

	f := timeFormatter(deps.Config)
	now := time.Now()

	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, fmt.Sprintf("%s  %-8s  %s",
			f.Stamp(r.CreatedAt.Local(), now), r.Outcome, r.Command))
	}
	s.Out.Output(lines)
	return nil
}

func timeFormatter(cfg domain.ConfigProvider) format.Formatter {
	if cfg == nil {
		return format.New("", "")
	}
	date, _ := cfg.Get("display_date")
	clock, _ := cfg.Get("display_time")
	return format.New(date, clock)
}

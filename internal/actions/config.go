package actions

import (
	"errors"
	"fmt"

	"github.com/quickrecipe/console/internal/console"
	"github.com/quickrecipe/console/internal/dispatchers"
	"github.com/quickrecipe/console/internal/domain"
	"github.com/quickrecipe/console/internal/log"
	"github.com/quickrecipe/console/internal/usage"
)

var errNoConfig = errors.New("configuration is not available")

func configAction(s *console.Session, deps Deps) dispatchers.Action {
	return dispatchers.Action{
		Name:        "config",
		Description: "List, read or change the configuration.",
		Usage:       "config (key) (value)",
		Specification: "Without arguments every key is listed by section.\n" +
			"Use 'config key=<key> unset=true' to restore a default.",
		Accepts: dispatchers.AcceptsAny,
		Params: []dispatchers.Param{
			{Name: "key"},
			{Name: "value"},
			{Name: "unset", Default: "false"},
		},
		Run: func(args dispatchers.Bound) error {
			return configure(s, args, deps)
		},
	}
}

func configure(s *console.Session, args dispatchers.Bound, deps Deps) error {
	if deps.Config == nil {
		return errNoConfig
	}

	key := args.String("key")
	switch {
	case key == "":
		return listConfig(s, deps)
	case args.Bool("unset"):
		if err := deps.Config.Unset(key); err != nil {
			return err
		}
		s.Out.Info(fmt.Sprintf("unset %s", key))
		value, _ := deps.Config.Get(key)
		return applyConfig(s, key, value)
	case !args.Has("value"):
		value, found := deps.Config.Get(key)
		if !found {
			return usage.InvalidConfigKey(key)
		}
		s.Out.Output(value)
		return nil
	default:
		value := args.String("value")
		if err := validateConfig(key, value); err != nil {
			return err
		}
		if err := deps.Config.Set(key, value); err != nil {
			return err
		}
		s.Out.Info(fmt.Sprintf("set %s=%s", key, value))
		return applyConfig(s, key, value)
	}
}

// validateConfig rejects values the console could not start with.
func validateConfig(key, value string) error {
	if key == "log_level" {
		_, err := log.ParseLevel(value)
		return err
	}
	return nil
}

// applyConfig makes keys that shape the running session take effect now.
func applyConfig(s *console.Session, key, value string) error {
	switch key {
	case "log_level":
		level, err := log.ParseLevel(value)
		if err != nil {
			return err
		}
		s.Out.SetThreshold(level)
	case "prompt":
		s.Prompt = value
	}
	return nil
}

func listConfig(s *console.Session, deps Deps) error {
	values, err := deps.Config.GetAll()
	if err != nil {
		return err
	}

	bySection := domain.ConfigKeysBySection()
	for _, section := range domain.ConfigSections() {
		var lines []string
		for _, key := range bySection[section] {
			value := values[key.Name]
			if key.HideIfEmpty && value == "" {
				continue
			}
			lines = append(lines, fmt.Sprintf("  %s=%s", key.Name, value))
		}
		if len(lines) == 0 {
			continue
		}
		s.Out.Output("[" + section + "]")
		s.Out.Output(lines)
	}
	return nil
}

// Package actions holds the built-in actions of the console.
package actions

import (
	"github.com/quickrecipe/console/internal/console"
	"github.com/quickrecipe/console/internal/dispatchers"
)

type builder func(s *console.Session, deps Deps) dispatchers.Action

// catalog lists the built-in actions in help order.
var catalog = []builder{
	helpAction,
	quitAction,
	clearAction,
	clipboardAction,
	copyAction,
	levelAction,
	configAction,
	historyAction,
	loadAction,
	exportAction,
	replaceAction,
	sitemapAction,
	versionAction,
}

// Register installs every built-in action into the session registry.
func Register(s *console.Session, deps Deps) error {
	for _, build := range catalog {
		if err := s.Registry.Register(build(s, deps)); err != nil {
			return err
		}
	}
	return nil
}

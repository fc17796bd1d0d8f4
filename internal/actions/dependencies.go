package actions

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/quickrecipe/console/internal/app"
	"github.com/quickrecipe/console/internal/domain"
	"github.com/quickrecipe/console/internal/fileio"
	"github.com/quickrecipe/console/internal/web"
)

// Deps are the capabilities the built-in actions use. Config has no
// default; the caller provides the provider of its rc file.
type Deps struct {
	Files       domain.FileStore
	Web         domain.SitemapResolver
	Config      domain.ConfigProvider
	ClearScreen func()
	Version     func() string
}

func DefaultDeps() Deps {
	return Deps{
		Files:       fileio.New(),
		Web:         web.New(),
		ClearScreen: clearTerminal,
		Version:     func() string { return app.Version },
	}
}

// clearTerminal clears stdout when it is a terminal and does nothing otherwise.
func clearTerminal() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	termenv.NewOutput(os.Stdout).ClearScreen()
}

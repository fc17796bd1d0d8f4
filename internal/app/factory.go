// Package app builds the console and its infrastructure from the
// configuration.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"golang.org/x/term"

	"github.com/quickrecipe/console/internal/config"
	"github.com/quickrecipe/console/internal/console"
	"github.com/quickrecipe/console/internal/domain"
	"github.com/quickrecipe/console/internal/log"
	"github.com/quickrecipe/console/internal/paths"
	"github.com/quickrecipe/console/internal/store"
	"github.com/quickrecipe/console/internal/trace"
	"github.com/quickrecipe/console/internal/ui/style"
	"github.com/quickrecipe/console/internal/usage"
	"github.com/quickrecipe/console/internal/web"
)

// Version is set at build time with -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

// Options configures the application factory.
type Options struct {
	// ConfigPath is the rc file. Empty means ~/.qconsolerc.
	ConfigPath string

	// Overrides replace config values for this run only.
	Overrides map[string]string

	Input  io.Reader
	Output io.Writer
}

// DefaultOptions returns options reading stdin and writing stdout.
func DefaultOptions() Options {
	return Options{
		Input:  os.Stdin,
		Output: os.Stdout,
	}
}

// Application holds the wired session and the resources it owns.
type Application struct {
	Config  *config.Provider
	Trace   domain.Logger
	History domain.HistoryStore
	Web     *web.Resolver
	Session *console.Session
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*Application, error) {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	if opts.ConfigPath == "" {
		path, err := paths.ConfigFilePath()
		if err != nil {
			return nil, usage.IOFailure("~/.qconsolerc", err)
		}
		opts.ConfigPath = path
	}

	provider := config.NewProvider(opts.ConfigPath, trace.Nop())
	for key, value := range opts.Overrides {
		if !domain.IsValidConfigKey(key) {
			return nil, usage.InvalidConfigKey(key)
		}
		provider.Override(key, value)
	}
	if err := provider.Init(); err != nil {
		return nil, err
	}

	cfg, err := provider.GetAll()
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg["log_level"])
	if err != nil {
		return nil, err
	}

	// Diagnostics are optional; a log file that cannot be opened is not
	// worth refusing to start for.
	var tracer domain.Logger = trace.Nop()
	if cfg["enable_log"] == "true" {
		if l, err := trace.New(cfg["log_path"], trace.ParseLevel(cfg["trace_level"])); err == nil {
			tracer = l
		}
	}

	var history domain.HistoryStore = store.Nop{}
	if cfg["history"] == "true" {
		s, err := store.New(cfg["history_path"])
		if err != nil {
			_ = tracer.Close()
			return nil, usage.IOFailure(cfg["history_path"], fmt.Errorf("open history: %w", err))
		}
		history = s
	}

	style.Init(colorEnabled(cfg["color"], opts.Output), cfg)

	out := log.New(opts.Output, level, log.WithInput(opts.Input))

	resolver := web.New(
		web.WithUserAgent(cfg["user_agent"]),
		web.WithTimeout(time.Duration(atoi(cfg["fetch_timeout_sec"]))*time.Second),
		web.WithWorkers(atoi(cfg["sitemap_workers"])),
		web.WithLogger(tracer),
	)

	session := console.New(out,
		console.WithHistory(history),
		console.WithTrace(tracer),
		console.WithPrompt(cfg["prompt"]),
	)
	if l, ok := tracer.(*trace.Logger); ok {
		session.Trace = l.With("session", session.ID.String())
	}

	return &Application{
		Config:  provider,
		Trace:   tracer,
		History: history,
		Web:     resolver,
		Session: session,
	}, nil
}

// Close cleans up application resources.
func Close(app *Application) error {
	var errs []error
	if app.History != nil {
		errs = append(errs, app.History.Close())
	}
	if app.Trace != nil {
		errs = append(errs, app.Trace.Close())
	}
	return errors.Join(errs...)
}

// colorEnabled resolves the color key: "always", "never", or "auto" which
// styles only when w is a terminal.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

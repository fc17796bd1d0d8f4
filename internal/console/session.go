// Package console runs the interactive read-eval-print loop.
package console

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quickrecipe/console/internal/dispatchers"
	"github.com/quickrecipe/console/internal/domain"
	"github.com/quickrecipe/console/internal/log"
	"github.com/quickrecipe/console/internal/store"
	"github.com/quickrecipe/console/internal/trace"
)

// ErrQuit is returned by an action to end the loop.
var ErrQuit = errors.New("console: quit")

// DefaultPrompt is printed before each line is read.
const DefaultPrompt = "> "

// Session owns one registry, one logger, one dispatcher and one clipboard.
type Session struct {
	ID         uuid.UUID
	Registry   *dispatchers.Registry
	Out        *log.Logger
	Dispatcher *dispatchers.Dispatcher
	Clipboard  *Clipboard
	History    domain.HistoryStore
	Trace      domain.Logger
	Prompt     string

	ctx     context.Context
	last    any
	hasLast bool
}

// Option configures a Session.
type Option func(*Session)

// WithHistory records every dispatched command to h.
func WithHistory(h domain.HistoryStore) Option {
	return func(s *Session) { s.History = h }
}

// WithTrace sends diagnostics to l.
func WithTrace(l domain.Logger) Option {
	return func(s *Session) { s.Trace = l }
}

// WithPrompt replaces the prompt.
func WithPrompt(p string) Option {
	return func(s *Session) { s.Prompt = p }
}

// New creates a session with an empty registry writing to out.
func New(out *log.Logger, opts ...Option) *Session {
	s := &Session{
		ID:        uuid.New(),
		Registry:  dispatchers.NewRegistry(),
		Out:       out,
		Clipboard: &Clipboard{},
		History:   store.Nop{},
		Trace:     trace.Nop(),
		Prompt:    DefaultPrompt,
		ctx:       context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Dispatcher = dispatchers.NewDispatcher(s.Registry, out)
	return s
}

// Context returns the context of the running loop. Actions pass it to
// blocking calls.
func (s *Session) Context() context.Context {
	return s.ctx
}

// LastOutput returns the last value emitted before the current command was
// read. The prompt itself is not counted.
func (s *Session) LastOutput() (any, bool) {
	return s.last, s.hasLast
}

// Run reads and executes lines until quit, end of input or ctx is done.
// Quit and end of input return nil.
func (s *Session) Run(ctx context.Context) error {
	s.ctx = ctx
	defer func() { s.ctx = context.Background() }()

	s.Trace.Info("session %s started", s.ID)
	defer s.Trace.Info("session %s ended", s.ID)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.capture()
		line, err := s.Out.Ask(s.Prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := s.execute(line); errors.Is(err, ErrQuit) {
			return nil
		}
	}
}

// Execute runs one line. Blank lines do nothing. Handler errors are
// printed and swallowed except ErrQuit, which is returned.
func (s *Session) Execute(line string) error {
	s.capture()
	return s.execute(line)
}

func (s *Session) capture() {
	s.last, s.hasLast = s.Out.LastValue()
}

func (s *Session) execute(line string) error {
	cmd, outcome, err := s.Dispatcher.Execute(line)
	if cmd.Name == "" && err == nil {
		return nil
	}

	if errors.Is(err, ErrQuit) {
		s.record(line, cmd, dispatchers.OutcomeOK)
		return ErrQuit
	}
	s.record(line, cmd, outcome)

	if err != nil {
		s.Trace.Warn("%s failed: %v", cmd.Name, err)
		s.Out.Error(err, nil)
	}
	return nil
}

func (s *Session) record(line string, cmd dispatchers.Command, outcome dispatchers.Outcome) {
	mode := cmd.Args.Mode().String()
	s.Trace.Debug("dispatch name=%s mode=%s outcome=%s", cmd.Name, mode, outcome)

	err := s.History.Insert(domain.HistoryRecord{
		SessionID: s.ID.String(),
		Command:   strings.TrimSpace(line),
		Mode:      mode,
		Outcome:   outcome.String(),
		CreatedAt: time.Now(),
	})
	if err != nil {
		s.Trace.Error("history: %v", err)
	}
}

// Package log implements the console's leveled output.
//
// Every message carries a severity. Messages less important than the
// current threshold are not printed, but the last value handed to the
// logger is always remembered so actions can pick it up later.
package log

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/quickrecipe/console/internal/domain"
	"github.com/quickrecipe/console/internal/ui/style"
	"github.com/quickrecipe/console/internal/usage"
)

// Level is the importance of a message. Lower is more important.
type Level int

const (
	// LevelPrompt is used by Ask and is never suppressed.
	LevelPrompt Level = iota - 1
	LevelFatal
	LevelError
	LevelWarning
	LevelInfo
	LevelNormal
)

// DefaultThreshold prints everything.
const DefaultThreshold = LevelNormal

func (l Level) String() string {
	switch l {
	case LevelPrompt:
		return "PROMPT"
	case LevelFatal:
		return "FATAL"
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelNormal:
		return "NORMAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name or its number to a Level.
// Valid values: "fatal", "error", "warn"/"warning", "info", "normal"
// (case insensitive) or "0" to "4".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fatal", "0":
		return LevelFatal, nil
	case "error", "1":
		return LevelError, nil
	case "warn", "warning", "2":
		return LevelWarning, nil
	case "info", "3":
		return LevelInfo, nil
	case "normal", "4":
		return LevelNormal, nil
	default:
		return DefaultThreshold, usage.InvalidLevel(s)
	}
}

// clamp keeps a threshold within the fixed FATAL..NORMAL domain.
func clamp(l Level) Level {
	if l < LevelFatal {
		return LevelFatal
	}
	if l > LevelNormal {
		return LevelNormal
	}
	return l
}

// Logger prints tagged messages and reads answers from the input source.
type Logger struct {
	mu        sync.Mutex
	out       io.Writer
	in        *bufio.Reader
	styler    domain.Styler
	threshold Level
	last      any
	hasLast   bool
}

// Option configures a Logger.
type Option func(*Logger)

// WithInput sets the source read by Ask.
func WithInput(r io.Reader) Option {
	return func(l *Logger) {
		l.in = bufio.NewReader(r)
	}
}

// WithStyler sets the styler used for tags.
func WithStyler(s domain.Styler) Option {
	return func(l *Logger) {
		l.styler = s
	}
}

// New creates a Logger writing to out with the given threshold.
// Defaults: stdin as input, global style package for tags.
func New(out io.Writer, threshold Level, opts ...Option) *Logger {
	l := &Logger{
		out:       out,
		in:        bufio.NewReader(os.Stdin),
		styler:    style.NewStyler(),
		threshold: clamp(threshold),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Emit remembers value and prints it when level passes the threshold.
func (l *Logger) Emit(value any, level Level, code any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.last = value
	l.hasLast = true

	if level > l.threshold {
		return
	}

	line := l.tag(level, code) + Serialize(value)
	if level == LevelPrompt {
		fmt.Fprint(l.out, line)
		return
	}
	fmt.Fprintln(l.out, line)
}

// Output prints value with no tag at NORMAL level.
func (l *Logger) Output(value any) {
	l.Emit(value, LevelNormal, nil)
}

// Info prints an informational message.
func (l *Logger) Info(value any) {
	l.Emit(value, LevelInfo, nil)
}

// Warn prints a warning.
func (l *Logger) Warn(value any) {
	l.Emit(value, LevelWarning, nil)
}

// Error prints an error with an optional code (string or integer).
func (l *Logger) Error(value any, code any) {
	l.Emit(value, LevelError, code)
}

// Fatal prints an unrecoverable error with an optional code.
func (l *Logger) Fatal(value any, code any) {
	l.Emit(value, LevelFatal, code)
}

// SetThreshold replaces the threshold. Values outside FATAL..NORMAL are clamped.
func (l *Logger) SetThreshold(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.threshold = clamp(level)
}

// Threshold returns the current threshold.
func (l *Logger) Threshold() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.threshold
}

// Ask prints question and blocks until one line is read.
// The line terminator is stripped. io.EOF is returned only when the input
// is exhausted before anything was read.
func (l *Logger) Ask(question string) (string, error) {
	l.Emit(question, LevelPrompt, nil)

	line, err := l.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r") // Windows CRLF
	return line, nil
}

// LastValue returns the last value passed to Emit or Ask.
func (l *Logger) LastValue() (any, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last, l.hasLast
}

// ClearMemory forgets the last value.
func (l *Logger) ClearMemory() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.last = nil
	l.hasLast = false
}

func (l *Logger) tag(level Level, code any) string {
	switch level {
	case LevelInfo:
		return l.styler.Info("[INFO]") + " "
	case LevelWarning:
		return l.styler.Warning("[WARN]") + " "
	case LevelError:
		return l.styler.Error("[ERROR"+codeSegment(code)+"]") + " "
	case LevelFatal:
		return l.styler.Fatal("[FATAL"+codeSegment(code)+"]") + " "
	default:
		return ""
	}
}

// codeSegment renders an error code as " NO.<code>", or "" without one.
func codeSegment(code any) string {
	var s string
	switch c := code.(type) {
	case nil:
		return ""
	case string:
		s = c
	case int:
		s = strconv.FormatUint(absInt(int64(c)), 10)
	case int64:
		s = strconv.FormatUint(absInt(c), 10)
	case int32:
		s = strconv.FormatUint(absInt(int64(c)), 10)
	case uint:
		s = strconv.FormatUint(uint64(c), 10)
	case uint64:
		s = strconv.FormatUint(c, 10)
	default:
		s = fmt.Sprint(c)
	}
	if s == "" {
		return ""
	}
	return " NO." + s
}

func absInt(n int64) uint64 {
	if n < 0 {
		return uint64(-n)
	}
	return uint64(n)
}

// Serialize renders a value as printable text. Strings pass through,
// errors and Stringers use their own text, string slices are one item per
// line and anything else is JSON.
func Serialize(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case []string:
		return strings.Join(v, "\n")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(data)
}

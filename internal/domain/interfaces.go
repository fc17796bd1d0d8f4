package domain

import (
	"context"
	"time"
)

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines diagnostic logging operations. Diagnostics never reach the
// console output; they go to the log file when enabled.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Close() error
}

// Styler defines text styling operations.
type Styler interface {
	Enabled() bool
	Fatal(text string) string
	Error(text string) string
	Warning(text string) string
	Info(text string) string
	Success(text string) string
	Muted(text string) string
	Header(text string) string
}

// FileStore is the synchronous file capability consumed by actions.
type FileStore interface {
	// ReadFile returns the whole content of path.
	ReadFile(path string) (string, error)

	// ReadLines returns the content of path split on newlines.
	ReadLines(path string) ([]string, error)

	// WriteFile writes content to path, appending when append is true.
	WriteFile(path, content string, append bool) error

	// Exists reports whether path exists.
	Exists(path string) bool
}

// SitemapResolver is the web capability consumed by the sitemap action.
type SitemapResolver interface {
	// ResolveSitemaps returns the sitemap URLs of the site hosting url.
	ResolveSitemaps(ctx context.Context, url string) ([]string, error)

	// ResolveAll resolves several sites; failed sites are reported per URL.
	ResolveAll(ctx context.Context, urls []string) []SitemapResult
}

// SitemapResult is the outcome of resolving one site.
type SitemapResult struct {
	URL      string
	Sitemaps []string
	Err      error
}

// HistoryRecord is one dispatched command as stored in the history.
type HistoryRecord struct {
	ID        int64
	SessionID string
	Command   string
	Mode      string
	Outcome   string
	CreatedAt time.Time
}

// HistoryStore records dispatched commands.
type HistoryStore interface {
	Insert(record HistoryRecord) error
	ListSession(sessionID string, limit int) ([]HistoryRecord, error)
	Close() error
}

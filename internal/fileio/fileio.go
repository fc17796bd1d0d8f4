// Package fileio is the file capability used by the built-in actions.
package fileio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/quickrecipe/console/internal/domain"
	"github.com/quickrecipe/console/internal/usage"
)

// Store reads and writes plain files on the local disk.
type Store struct {
	perm fs.FileMode
}

// New creates a Store creating files with mode 0644.
func New() *Store {
	return &Store{perm: 0644}
}

// ReadFile returns the content of path.
func (s *Store) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", usage.FileNotFound(path, err)
	}
	if err != nil {
		return "", usage.IOFailure(path, err)
	}
	return string(data), nil
}

// ReadLines returns the content of path split on newlines. A trailing
// newline does not produce an empty last line and CRLF endings are accepted.
func (s *Store) ReadLines(path string) ([]string, error) {
	content, err := s.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return SplitLines(content), nil
}

// SplitLines splits text on newlines, dropping a final empty line and
// carriage returns.
func SplitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return []string{}
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r") // Windows CRLF
	}
	return lines
}

// WriteFile writes content to path. With appendMode the content is added at
// the end of the file; otherwise the file is replaced atomically.
func (s *Store) WriteFile(path, content string, appendMode bool) error {
	if appendMode {
		return s.appendFile(path, content)
	}
	return s.replaceFile(path, content)
}

// Exists reports whether path exists.
func (s *Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *Store) appendFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, s.perm)
	if err != nil {
		return usage.IOFailure(path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return usage.IOFailure(path, err)
	}
	if err := f.Close(); err != nil {
		return usage.IOFailure(path, err)
	}
	return nil
}

func (s *Store) replaceFile(path, content string) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return usage.IOFailure(path, err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	perm := s.perm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := tmpFile.Chmod(perm); err != nil {
		return usage.IOFailure(path, err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		return usage.IOFailure(path, err)
	}
	if err := tmpFile.Sync(); err != nil {
		return usage.IOFailure(path, err)
	}
	if err := tmpFile.Close(); err != nil {
		return usage.IOFailure(path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return usage.IOFailure(path, err)
	}

	success = true
	return nil
}

var _ domain.FileStore = (*Store)(nil)

package config

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/quickrecipe/console/internal/domain"
)

// ReadLines returns the lines of the rc file at path. A missing file yields
// no lines and no error.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// initialLines is the content written to a new rc file: one assignment per
// visible key, optional overrides commented out.
func initialLines() []string {
	lines := []string{
		"# qconsole configuration",
		"# Edit values below or use: config <key> <value>",
		"",
	}

	for _, key := range domain.VisibleConfigKeys() {
		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
			continue
		}

		lines, _ = Set(lines, key.Name, defaultValue(key))
	}

	return lines
}

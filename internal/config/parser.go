package config

import (
	"fmt"
	"strings"
)

const bom = "\uFEFF"

// splitLine returns the key and raw value of an assignment line.
// ok is false for blank lines and comments.
func splitLine(line string) (key, value string, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false, nil
	}

	key, value, found := strings.Cut(trimmed, "=")
	if !found {
		return "", "", false, fmt.Errorf("config: missing '=' in line %q", line)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false, fmt.Errorf("config: empty key in line %q", line)
	}
	return key, value, true, nil
}

// cleanValue drops an inline comment introduced by " #", trims the value
// and removes one pair of surrounding double quotes.
func cleanValue(value string) string {
	if i := strings.Index(value, " #"); i >= 0 {
		value = value[:i]
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	return value
}

// Parse reads key=value lines. Blank lines and lines starting with '#' are
// skipped; later duplicates win.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, bom)
		}
		key, value, ok, err := splitLine(line)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		cfg[key] = cleanValue(value)
	}

	return cfg, nil
}

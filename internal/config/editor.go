package config

import "strings"

// Set replaces the value of key in lines, keeping an inline comment, or
// appends a new assignment. It reports whether an existing line was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	if strings.Contains(value, " ") {
		value = `"` + value + `"`
	}

	for i, line := range lines {
		k, oldValue, ok, err := splitLine(line)
		if err != nil || !ok || k != key {
			continue
		}

		if commentIdx := strings.Index(oldValue, " #"); commentIdx >= 0 {
			comment := strings.TrimSpace(oldValue[commentIdx:])
			lines[i] = key + "=" + value + " " + comment
		} else {
			lines[i] = key + "=" + value
		}
		return lines, true
	}

	lines = append(lines, key+"="+value)
	return lines, false
}

// Unset removes every assignment of key from lines.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		k, _, ok, err := splitLine(line)
		if err == nil && ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

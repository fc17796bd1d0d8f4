package config

import (
	"github.com/quickrecipe/console/internal/domain"
	"github.com/quickrecipe/console/internal/paths"
)

// Dynamic defaults, computed when read. Every other key defaults to the
// value in the domain key catalog.
var Defaults = map[string]func() string{
	"log_path":     paths.LogFilePath,
	"history_path": paths.HistoryDBPath,
}

func defaultValue(key domain.ConfigKey) string {
	if fn, ok := Defaults[key.Name]; ok {
		return fn()
	}
	return key.Default
}

// DefaultValues returns the default of every catalog key that has one.
func DefaultValues() map[string]string {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		if v := defaultValue(key); v != "" {
			result[key.Name] = v
		}
	}
	return result
}

package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in `config` output
	Hidden      bool   // Hidden keys are not listed
	HideIfEmpty bool   // Only listed if explicitly set
}

// ConfigKeys defines all available configuration keys.
// Order determines display order in `config`.
var ConfigKeys = []ConfigKey{
	// Console
	{
		Name:        "log_level",
		Default:     "4",
		Description: "Output threshold: fatal(0), error(1), warn(2), info(3), normal(4)",
		Section:     "Console",
	},
	{
		Name:        "prompt",
		Default:     "> ",
		Description: "Prompt printed before each command",
		Section:     "Console",
	},
	{
		Name:        "color",
		Default:     "auto",
		Description: "Colored tags: auto, always, never",
		Section:     "Console",
	},
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, mono",
		Section:     "Console",
	},
	{
		Name:        "display_date",
		Default:     "Jan 02 2006",
		Description: "Date format: dd/mm/yyyy, mm/dd/yyyy, yyyy-mm-dd or a Go layout",
		Section:     "Console",
	},
	{
		Name:        "display_time",
		Default:     "24h",
		Description: "Time format: 12h or 24h",
		Section:     "Console",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "false",
		Description: "Write diagnostics to the log file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "trace_level",
		Default:     "debug",
		Description: "Least severe diagnostic written: debug, info, warn, error",
		Section:     "Logging",
	},
	{
		Name:        "log_path",
		Default:     "", // Set dynamically to paths.LogFilePath()
		Description: "Path of the diagnostics log file",
		Section:     "Logging",
	},
	// History
	{
		Name:        "history",
		Default:     "true",
		Description: "Record dispatched commands (true/false)",
		Section:     "History",
	},
	{
		Name:        "history_path",
		Default:     "", // Set dynamically to paths.HistoryDBPath()
		Description: "Path of the command history database",
		Section:     "History",
	},
	// Web
	{
		Name:        "user_agent",
		Default:     "Mozilla/5.0 (compatible; qconsole/1.0)",
		Description: "User-Agent header sent when fetching sitemaps",
		Section:     "Web",
	},
	{
		Name:        "fetch_timeout_sec",
		Default:     "15",
		Description: "Timeout in seconds for each HTTP request",
		Section:     "Web",
	},
	{
		Name:        "sitemap_workers",
		Default:     "4",
		Description: "Sites resolved concurrently by the sitemap command",
		Section:     "Web",
	},
	// Color overrides (ANSI 0-255)
	{
		Name:        "color_error",
		Description: "Override error color from the current theme",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_warning",
		Description: "Override warning color from the current theme",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_info",
		Description: "Override info color from the current theme",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_muted",
		Description: "Override muted text color from the current theme",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
}

var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Console", "Logging", "History", "Web", "Color Overrides"}
}

// ConfigKeysBySection returns visible config keys grouped by section.
func ConfigKeysBySection() map[string][]ConfigKey {
	result := make(map[string][]ConfigKey)
	for _, key := range ConfigKeys {
		if !key.Hidden {
			result[key.Section] = append(result[key.Section], key)
		}
	}
	return result
}

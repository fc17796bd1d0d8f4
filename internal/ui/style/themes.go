package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for console output.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Fatal   string
	Error   string
	Warning string
	Info    string
	Success string
	Muted   string
	Header  string
}

// ThemeNames lists the built-in themes with explicit dark/light variants.
var ThemeNames = []string{
	"default-dark", "default-light",
	"mono-dark", "mono-light",
}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes use dark saturated ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Fatal:   "9",
		Error:   "9",
		Warning: "11",
		Info:    "14",
		Success: "10",
		Muted:   "245",
		Header:  "bold",
	},
	"default-light": {
		Fatal:   "124",
		Error:   "124",
		Warning: "130",
		Info:    "27",
		Success: "28",
		Muted:   "242",
		Header:  "bold",
	},
	"mono-dark": {
		Fatal:   "bold",
		Error:   "15",
		Warning: "250",
		Info:    "245",
		Success: "15",
		Muted:   "240",
		Header:  "bold",
	},
	"mono-light": {
		Fatal:   "bold",
		Error:   "0",
		Warning: "238",
		Info:    "242",
		Success: "0",
		Muted:   "246",
		Header:  "bold",
	},
}

// colorConfigKeys maps config keys to ColorConfig fields.
var colorConfigKeys = map[string]string{
	"color_error":   "Error",
	"color_warning": "Warning",
	"color_info":    "Info",
	"color_muted":   "Muted",
}

// IsDarkBackground returns true if the terminal has a dark background.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends a -dark/-light suffix based on the terminal
// background when name has none.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
// 1. Environment variable (QC_COLOR_*)
// 2. Config file value
// 3. Theme value (from the theme config key)
// 4. Default theme (auto-detected based on terminal background)
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := "default-dark"
	if cfgTheme, ok := cfg["theme"]; ok && cfgTheme != "" {
		themeName = ResolveThemeName(cfgTheme)
	}
	if envTheme := os.Getenv("QC_THEME"); envTheme != "" {
		themeName = ResolveThemeName(envTheme)
	}

	result, ok := Themes[themeName]
	if !ok {
		result = Themes["default-dark"]
	}

	for configKey, field := range colorConfigKeys {
		if envVal := os.Getenv("QC_" + strings.ToUpper(configKey)); envVal != "" {
			setColorField(&result, field, envVal)
			continue
		}
		if cfgVal, ok := cfg[configKey]; ok && cfgVal != "" {
			setColorField(&result, field, cfgVal)
		}
	}

	return result
}

func setColorField(c *ColorConfig, field, value string) {
	switch field {
	case "Error":
		c.Error = value
	case "Warning":
		c.Warning = value
	case "Info":
		c.Info = value
	case "Muted":
		c.Muted = value
	}
}

package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appDirName     = "qconsole"
	configFileName = ".qconsolerc"
	logFileName    = "qconsole.log"
	historyDBName  = "history.db"
)

// AppDataDir returns the application data directory for config and logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory.
// This is where machine-local data (like the command history) lives.
//   - macOS: ~/Library/Application Support/qconsole
//   - Linux: $XDG_DATA_HOME/qconsole or ~/.local/share/qconsole
//   - Windows: %LOCALAPPDATA%\qconsole
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns the path of the rc file in the home directory.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, configFileName), nil
}

// LogFilePath returns the path of the diagnostics log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), logFileName)
}

// HistoryDBPath returns the path of the command history database.
func HistoryDBPath() string {
	return filepath.Join(AppLocalDataDir(), historyDBName)
}

// Package paths resolves the config, data and input directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Directory defaults. Data and input defaults are relative to the working
// directory.
const (
	AppName             = "advent"
	DefaultDataDirName  = ".advent-db"
	DefaultInputDirName = "assets/days"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "ADVENT_CONFIG_DIR"
	EnvDataDir   = "ADVENT_DATA_DIR"
	EnvInputDir  = "ADVENT_INPUT_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/advent (fallback ~/.config/advent)
// macOS:   ~/Library/Application Support/advent
// Windows: %APPDATA%/advent
func DefaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > ADVENT_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if dir, ok, err := first(flag, os.Getenv(EnvConfigDir)); ok || err != nil {
		return dir, err
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the answer log directory following the precedence
// chain: flag > configYAMLValue > ADVENT_DATA_DIR env > $(CWD)/.advent-db.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	return resolveCWD(DefaultDataDirName, flag, configYAMLValue, os.Getenv(EnvDataDir))
}

// ResolveInputDir returns the puzzle input directory following the
// precedence chain: flag > configYAMLValue > ADVENT_INPUT_DIR env >
// $(CWD)/assets/days.
func ResolveInputDir(flag, configYAMLValue string) (string, error) {
	return resolveCWD(DefaultInputDirName, flag, configYAMLValue, os.Getenv(EnvInputDir))
}

func resolveCWD(def string, candidates ...string) (string, error) {
	if dir, ok, err := first(candidates...); ok || err != nil {
		return dir, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, def), nil
}

// first returns the first non-empty candidate as an absolute path.
func first(candidates ...string) (string, bool, error) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		abs, err := filepath.Abs(c)
		return abs, true, err
	}
	return "", false, nil
}

package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "linkgen"

	// ConfigFileName is the tool config file name inside ConfigDir
	ConfigFileName = "config.toml"

	// LogFileName is the log file name inside StateDir
	LogFileName = "linkgen.log"

	// EnvConfigDir overrides the config directory
	EnvConfigDir = "LINKGEN_CONFIG_DIR"

	// EnvStateDir overrides the state directory
	EnvStateDir = "LINKGEN_STATE_DIR"
)

// ConfigDir returns the directory holding the tool config file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	// xdg caches its values at init; honour a changed environment.
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the default tool config file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory holding the log file.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFile returns the log file path.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

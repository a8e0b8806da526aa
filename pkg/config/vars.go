package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "gndwca"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gndwca by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gndwca by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// DownloadDir returns the directory where downloaded and extracted
// DwCA inputs are kept between runs.
// Returns ~/.cache/gndwca/dwca by default.
func DownloadDir(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "dwca")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gndwca/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gndwca/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SourcesFilePath returns the full path to the sources.yaml file that
// describes the known nomenclature sources.
// Returns ~/.config/gndwca/sources.yaml by default.
func SourcesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "sources.yaml")
}

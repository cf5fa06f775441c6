package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "glance.yaml"

	// DefaultDataFile is the CSV file loaded when none is configured.
	DefaultDataFile = "open-meteo-subset.csv"

	// DefaultAddr is the address the server listens on by default.
	DefaultAddr = "127.0.0.1:8501"

	// DefaultTitle is the application title shown on every page.
	DefaultTitle = "Glance"

	// PreviewRows is the number of rows shown on the home page.
	PreviewRows = 10

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultConfigPath returns the config file path inside dir.
func DefaultConfigPath(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

// ResolveDataPath resolves a data path relative to baseDir unless it is absolute.
func ResolveDataPath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

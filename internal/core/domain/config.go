// Package domain holds the core types of the validator: the loaded configuration
// and the outcomes produced by the validation and install phases.
package domain

import "path/filepath"

// ConfigFilename is the name of the configuration file looked up in the working directory.
const ConfigFilename = "github-actions-validator.config.yml"

// Lockfiles lists the lockfiles removed from an install directory before installing.
var Lockfiles = []string{"yarn.lock", "package-lock.json"}

// DefaultInstallCommand installs production dependencies only.
var DefaultInstallCommand = []string{"npm", "install", "--omit=dev"}

// ValidationEntry names a build artifact to check.
type ValidationEntry struct {
	// Label is the human-readable name used in console output.
	Label string
	// Path is the artifact path, relative to the working directory.
	Path string
}

// Config is the parsed configuration file.
// It is loaded once per invocation and never mutated afterwards.
type Config struct {
	// Validate holds the validation entries in file order.
	Validate []ValidationEntry
	// Install holds the install directories in file order.
	Install []string
}

// ResolvePath resolves p against root. Absolute paths are returned cleaned.
func ResolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

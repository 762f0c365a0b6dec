// Package config loads optional project settings from a suitenorm.toml
// discovered by walking from the working directory toward the filesystem
// root. Flags always win over the file; the file wins over built-ins.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the project config file looked up by Discover.
const FileName = "suitenorm.toml"

// Config holds the CLI defaults a project can pin.
type Config struct {
	Format   string `toml:"format"`   // yaml or json
	Revision string `toml:"revision"` // canonical or metadata
	Jobs     int    `toml:"jobs"`     // 0 means one worker per CPU
	Suffix   string `toml:"suffix"`   // batch output suffix
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Format: "yaml", Revision: "canonical", Suffix: ".norm.yaml"}
}

// Find walks from startDir toward the filesystem root looking for the
// config file.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads the nearest config file, or the defaults when none exists.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

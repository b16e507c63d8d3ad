package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config location checked by Load.
const LocalPath = "configs/monkey.yaml"

// Load loads the game configuration and returns it with the path it came
// from ("" for the embedded default).
// Search order: customPath -> ~/.monkey/configs/monkey.yaml -> ./configs/monkey.yaml -> embedded default
func Load(customPath string) (GameConfig, string, error) {
	// A custom path must exist and parse
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		return cfg, customPath, err
	}

	// User and local files are optional; a broken one falls through
	for _, path := range []string{userConfigPath("monkey.yaml"), LocalPath} {
		if path == "" {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultMonkeyYAML)
	if err != nil {
		return DefaultGameConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// LoadFile reads and validates a single config file.
func LoadFile(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return GameConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults, so partial files only
// override what they name, and validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".monkey", "configs", filename)
}

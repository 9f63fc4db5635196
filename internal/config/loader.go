package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadWindow loads the window configuration.
// Search order: customPath -> ~/.snake/configs/window.yaml -> ./configs/window.yaml -> embedded default
//
// Fields missing from a file keep their default values.
func LoadWindow(customPath string) (Window, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Window{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseWindow(data)
		if err != nil {
			return Window{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("window.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseWindow(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/window.yaml"); err == nil {
		if cfg, err := ParseWindow(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseWindow(defaultWindowYAML)
	if err != nil {
		return DefaultWindow(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseWindow decodes YAML on top of DefaultWindow.
func ParseWindow(data []byte) (Window, error) {
	cfg := DefaultWindow()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Window{}, err
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle()
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

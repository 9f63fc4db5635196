package config

import (
	_ "embed"
)

//go:embed defaults/window.yaml
var defaultWindowYAML []byte

// DefaultWindow returns the default window configuration.
func DefaultWindow() Window {
	return Window{
		Title:       DefaultTitle(),
		Width:       800,
		Height:      600,
		Centered:    true,
		HighDPI:     true,
		Accelerated: true,
		VSync:       true,
	}
}

// GetDefaultYAML returns the embedded default window YAML.
func GetDefaultYAML() []byte {
	return defaultWindowYAML
}

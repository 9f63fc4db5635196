// Package config provides YAML-based window configuration loading for the
// snake application.
package config

import "fmt"

// Version is the application version. Overridden at build time with
// -ldflags "-X github.com/vovakirdan/snake/internal/config.Version=...".
var Version = "0.1.0"

// DefaultTitle returns the title used when none is configured.
func DefaultTitle() string {
	return fmt.Sprintf("Snake %s", Version)
}

// Window contains the window and drawing surface settings.
type Window struct {
	Title       string `yaml:"title"` // Empty means DefaultTitle()
	Width       uint32 `yaml:"width"`
	Height      uint32 `yaml:"height"`
	Centered    bool   `yaml:"centered"`
	HighDPI     bool   `yaml:"high_dpi"`
	Accelerated bool   `yaml:"accelerated"`
	VSync       bool   `yaml:"vsync"`
}

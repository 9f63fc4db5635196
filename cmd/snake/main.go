// snake opens the game window and prints the resulting app bundle.
//
// Usage:
//
//	snake                    - Open the window and print its debug form
//	snake info               - Open the window and print a one-line summary
//	snake backends           - List available platform backends
//	snake version            - Print the version
//
// Global flags:
//
//	--backend <name>   - Platform backend (default: sdl)
//	--config <path>    - Window config YAML (default: search ~/.snake/configs, ./configs)
//	--title <text>     - Override the window title
//	--width <px>       - Override the window width
//	--height <px>      - Override the window height
//	--log-level <lvl>  - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake/internal/app"
	"github.com/vovakirdan/snake/internal/config"
	"github.com/vovakirdan/snake/internal/platform"

	// Import backends to register them
	_ "github.com/vovakirdan/snake/internal/platform/headless"
	"github.com/vovakirdan/snake/internal/platform/sdl2"
)

var (
	// Global flags
	flagBackend  string
	flagConfig   string
	flagTitle    string
	flagWidth    uint32
	flagHeight   uint32
	flagLogLevel string
)

func init() {
	// SDL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - open the game window",
	Long: `Snake initializes the video subsystem, opens a centered high-DPI window
with an accelerated vsync canvas, and prints the resulting app bundle.

Available commands:
  info      - One-line summary of the opened window
  backends  - Show available platform backends
  version   - Print the version

Examples:
  snake
  snake --title "My Snake" --width 1024 --height 768
  snake info --backend headless`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", sdl2.Name, "Platform backend")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to window config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTitle, "title", "", "Window title (overrides config)")
	rootCmd.PersistentFlags().Uint32Var(&flagWidth, "width", 0, "Window width in pixels (overrides config)")
	rootCmd.PersistentFlags().Uint32Var(&flagHeight, "height", 0, "Window height in pixels (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(versionCmd)
}

func runRoot(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Release()

	fmt.Fprintf(cmd.OutOrStdout(), "%#v\n", a)
	return nil
}

// openApp loads the window config, applies flag overrides and opens the app
// on the selected backend.
func openApp(cmd *cobra.Command) (*app.App, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "snake"})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	cfg, err := config.LoadWindow(flagConfig)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		cfg.Title = flagTitle
	}
	if flags.Changed("width") {
		cfg.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Height = flagHeight
	}

	p, err := platform.Create(flagBackend)
	if err != nil {
		return nil, err
	}
	logger.Debug("using backend", "name", p.Name())

	return app.New(p, app.WithConfig(cfg), app.WithLogger(logger))
}

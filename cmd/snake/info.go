package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	infoStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	driverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Open the window and print a one-line summary",
	Long: `Open the window and print the terse form of the app bundle,
followed by the active video driver.

Examples:
  snake info
  snake info --backend headless --width 320 --height 240`,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Release()

	line := a.String()
	driver := "driver: " + a.Driver()

	out := cmd.OutOrStdout()

	// Plain output when piped
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		line = infoStyle.Render(line)
		driver = driverStyle.Render(driver)
	}

	fmt.Fprintln(out, line)
	fmt.Fprintln(out, driver)
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake/internal/config"
	"github.com/vovakirdan/snake/internal/platform"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List all available platform backends",
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(config.DefaultTitle())
	},
}

func runBackends(_ *cobra.Command, _ []string) {
	names := platform.List()

	if len(names) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println("Available backends:")
	fmt.Println()

	for _, name := range names {
		marker := " "
		if name == flagBackend {
			marker = "*"
		}
		fmt.Printf("  %s %s\n", marker, name)
	}

	fmt.Println()
	fmt.Println("Run 'snake --backend <name>' to pick one.")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-clone/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List available front ends",
	Long: `Shows the front ends compiled into this binary.

sdl and ebiten are only present when built with -tags sdl or -tags ebiten.`,
	Args: cobra.NoArgs,
	Run:  runBackends,
}

func runBackends(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Fprintln(out, "No front ends available.")
		return
	}

	fmt.Fprintln(out, "Available front ends:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----")

	for _, b := range backends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, b.Name, b.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'pong --backend <name>' to use one.")
}

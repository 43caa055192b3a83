package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ilyakarev/breakout/internal/breakout"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List built-in levels",
	Long:  `Shows the built-in campaign levels in play order.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	levels := breakout.BuiltinLevels()

	fmt.Println("Built-in levels:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %s\n", "#", maxNameLen, "Name", "Bricks")
	fmt.Printf("  %-3s  %-*s  %s\n", "---", maxNameLen, "----", "------")

	for i, l := range levels {
		fmt.Printf("  %-3d  %-*s  %d\n", i+1, maxNameLen, l.Name, l.CountAlive())
	}

	fmt.Println()
	fmt.Println("Run 'breakout play --level <#>' to start from a specific level.")
}

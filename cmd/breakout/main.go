// breakout is a terminal Breakout game playable locally or over SSH.
//
// Usage:
//
//	breakout play            - Play the campaign
//	breakout menu            - Interactive mode picker
//	breakout levels          - List built-in levels
//	breakout serve           - Start SSH server for remote play
//	breakout scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.breakout/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/ilyakarev/breakout/internal/breakout"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - classic brick-breaking in your terminal",
	Long: `Breakout is a terminal brick-breaking game with campaign and
endless modes, power-ups, and shared leaderboards over SSH.

Available commands:
  play     - Play directly (campaign or endless)
  menu     - Interactive mode picker
  levels   - List built-in levels
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  breakout play
  breakout play --endless
  breakout play --level 4 --difficulty hard
  breakout menu
  breakout serve --ssh :2222
  breakout scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

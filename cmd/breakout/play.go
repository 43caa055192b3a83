package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ilyakarev/breakout/internal/breakout"
	"github.com/ilyakarev/breakout/internal/core"
	"github.com/ilyakarev/breakout/internal/platform/tui"
	"github.com/ilyakarev/breakout/internal/registry"
	"github.com/ilyakarev/breakout/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagEndless    bool
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing directly, skipping the mode picker.

Controls:
  A/D, Left/Right - Move paddle (or move the mouse)
  Space           - Launch ball / fire laser
  P               - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Extra lives, wider paddle, slower ball
  normal - Default settings
  hard   - Fewer lives, narrow paddle, faster ball
  fixed  - No difficulty progression

Examples:
  breakout play
  breakout play --endless
  breakout play --level 4
  breakout play --difficulty hard
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode (levels cycle forever)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (1-based, campaign only)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "breakout"
	if flagEndless {
		gameID = "breakout_endless"
	}

	if flagLevel < 0 || flagLevel > breakout.LevelCount() {
		fmt.Fprintf(os.Stderr, "Error: level must be between 1 and %d\n", breakout.LevelCount())
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply CLI options before the game instance is created
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	breakout.SetStartLevel(flagLevel)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

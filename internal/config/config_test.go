package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		want   string
	}{
		{"zero ball speed", func(c *BreakoutConfig) { c.Physics.BallSpeed = 0 }, "ball_speed"},
		{"negative paddle speed", func(c *BreakoutConfig) { c.Physics.PaddleSpeed = -1 }, "paddle_speed"},
		{"cap below launch speed", func(c *BreakoutConfig) { c.Physics.MaxBallSpeed = c.Physics.BallSpeed - 1 }, "max_ball_speed"},
		{"negative ramp", func(c *BreakoutConfig) { c.Physics.LevelSpeedRamp = -5 }, "level_speed_ramp"},
		{"zero paddle width", func(c *BreakoutConfig) { c.Paddle.Width = 0 }, "paddle width"},
		{"inverted width bounds", func(c *BreakoutConfig) { c.Paddle.MinWidth = 10; c.Paddle.MaxWidth = 5 }, "width bounds"},
		{"large scale shrinks", func(c *BreakoutConfig) { c.Paddle.LargeScale = 90 }, "large_scale"},
		{"small scale grows", func(c *BreakoutConfig) { c.Paddle.SmallScale = 120 }, "small_scale"},
		{"zero lives", func(c *BreakoutConfig) { c.Gameplay.Lives = 0 }, "lives"},
		{"drop chance over 100", func(c *BreakoutConfig) { c.PowerUps.DropChance = 150 }, "drop_chance"},
		{"zero effect duration", func(c *BreakoutConfig) { c.PowerUps.DurationSecs = 0 }, "duration_secs"},
		{"zero laser shots", func(c *BreakoutConfig) { c.PowerUps.LaserShots = 0 }, "laser_shots"},
		{"slow scale speeds up", func(c *BreakoutConfig) { c.PowerUps.SlowScale = 100 }, "slow_scale"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should reject the config")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	yaml := `
physics:
  ball_speed: 123
paddle:
  width: 12
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}

	if cfg.Physics.BallSpeed != 123 {
		t.Errorf("ball_speed = %d, expected 123", cfg.Physics.BallSpeed)
	}
	if cfg.Paddle.Width != 12 {
		t.Errorf("paddle width = %d, expected 12", cfg.Paddle.Width)
	}
}

func TestLoadBreakoutMissingCustomPath(t *testing.T) {
	_, err := LoadBreakout("/nonexistent/config.yaml")
	if err == nil {
		t.Error("LoadBreakout() with missing custom path should fail")
	}
}

func TestLoadBreakoutEmbeddedDefault(t *testing.T) {
	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}

	// The embedded default must itself validate
	if err := cfg.Validate(); err != nil {
		t.Errorf("Embedded default config should validate, got: %v", err)
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	easy := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives != 5 {
		t.Errorf("Easy preset lives = %d, expected 5", easy.Gameplay.Lives)
	}
	if !easy.Difficulty.Enabled {
		t.Error("Easy preset should keep progression enabled")
	}

	hard := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&hard, DifficultyHard)
	if hard.Gameplay.Lives != 2 {
		t.Errorf("Hard preset lives = %d, expected 2", hard.Gameplay.Lives)
	}
	if hard.Physics.BallSpeed <= easy.Physics.BallSpeed {
		t.Error("Hard preset should launch faster than easy")
	}

	fixed := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("Fixed preset should disable progression")
	}

	// Presets must never produce an invalid config
	for _, cfg := range []BreakoutConfig{easy, hard, fixed} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("Preset config should validate, got: %v", err)
		}
	}
}

func TestDifficultyManagerProgression(t *testing.T) {
	cfg := DefaultBreakoutConfig().Difficulty
	cfg.Enabled = true
	cfg.InitialLevel = 0.0
	cfg.Progression.Type = "score"
	cfg.Progression.MaxAt = 100
	cfg.Scaling.SpeedMultiplier = 1.0

	dm := NewDifficultyManager(cfg)

	atStart := dm.Speed(300, 0, 0)
	atMax := dm.Speed(300, 100, 0)

	if atStart != 300 {
		t.Errorf("Speed at zero difficulty = %f, expected 300", atStart)
	}
	if atMax <= atStart {
		t.Errorf("Speed should rise with difficulty: start %f, max %f", atStart, atMax)
	}

	// Past max_at the level is clamped
	beyond := dm.Speed(300, 1000, 0)
	if beyond != atMax {
		t.Errorf("Speed beyond max_at = %f, expected %f", beyond, atMax)
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	cfg := DefaultBreakoutConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.5

	dm := NewDifficultyManager(cfg)

	if dm.Speed(300, 0, 0) != dm.Speed(300, 9999, 9999) {
		t.Error("Disabled progression should not change speed over time")
	}
}

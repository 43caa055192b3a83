// Package config provides YAML-based game configuration loading,
// validation, and difficulty management.
package config

import (
	"fmt"
)

// BreakoutConfig contains all tunable parameters for a game session.
type BreakoutConfig struct {
	Physics    BreakoutPhysics  `yaml:"physics"`
	Paddle     BreakoutPaddle   `yaml:"paddle"`
	Gameplay   BreakoutGameplay `yaml:"gameplay"`
	PowerUps   PowerUpSettings  `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BreakoutPhysics defines motion parameters.
// Speeds are fixed-point: 1000 units = 1 cell per tick.
type BreakoutPhysics struct {
	BallSpeed      int `yaml:"ball_speed"`
	PaddleSpeed    int `yaml:"paddle_speed"`
	MaxBallSpeed   int `yaml:"max_ball_speed"`
	LevelSpeedRamp int `yaml:"level_speed_ramp"` // speed cap increase per cleared level
	BallRadius     int `yaml:"ball_radius"`      // fixed-point units
}

// BreakoutPaddle defines paddle parameters.
type BreakoutPaddle struct {
	Width      int `yaml:"width"`       // base width in cells
	LargeScale int `yaml:"large_scale"` // percent applied by the large-paddle effect
	SmallScale int `yaml:"small_scale"` // percent applied by the small-paddle effect
	MinWidth   int `yaml:"min_width"`
	MaxWidth   int `yaml:"max_width"`
}

// BreakoutGameplay defines session rules.
type BreakoutGameplay struct {
	Lives       int `yaml:"lives"`
	BrickPoints int `yaml:"brick_points"`
}

// PowerUpSettings defines power-up spawning and effect parameters.
type PowerUpSettings struct {
	DropChance   int      `yaml:"drop_chance"`   // percent chance per destroyed brick
	DurationSecs int      `yaml:"duration_secs"` // timed-effect duration
	LaserShots   int      `yaml:"laser_shots"`   // ammunition per laser pickup
	FallSpeed    int      `yaml:"fall_speed"`    // fixed-point cells per tick
	SlowScale    int      `yaml:"slow_scale"`    // percent applied by the slow-ball effect
	Enabled      []string `yaml:"enabled"`       // kind names; empty enables all kinds
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate rejects malformed configuration before any simulation tick runs.
func (c BreakoutConfig) Validate() error {
	if c.Physics.BallSpeed <= 0 {
		return fmt.Errorf("config: ball_speed must be positive, got %d", c.Physics.BallSpeed)
	}
	if c.Physics.PaddleSpeed <= 0 {
		return fmt.Errorf("config: paddle_speed must be positive, got %d", c.Physics.PaddleSpeed)
	}
	if c.Physics.MaxBallSpeed < c.Physics.BallSpeed {
		return fmt.Errorf("config: max_ball_speed %d below ball_speed %d", c.Physics.MaxBallSpeed, c.Physics.BallSpeed)
	}
	if c.Physics.LevelSpeedRamp < 0 {
		return fmt.Errorf("config: level_speed_ramp must not be negative, got %d", c.Physics.LevelSpeedRamp)
	}
	if c.Physics.BallRadius < 0 {
		return fmt.Errorf("config: ball_radius must not be negative, got %d", c.Physics.BallRadius)
	}
	if c.Paddle.Width <= 0 {
		return fmt.Errorf("config: paddle width must be positive, got %d", c.Paddle.Width)
	}
	if c.Paddle.MinWidth <= 0 || c.Paddle.MaxWidth < c.Paddle.MinWidth {
		return fmt.Errorf("config: paddle width bounds [%d, %d] invalid", c.Paddle.MinWidth, c.Paddle.MaxWidth)
	}
	if c.Paddle.LargeScale <= 100 {
		return fmt.Errorf("config: large_scale must exceed 100, got %d", c.Paddle.LargeScale)
	}
	if c.Paddle.SmallScale <= 0 || c.Paddle.SmallScale >= 100 {
		return fmt.Errorf("config: small_scale must be in (0, 100), got %d", c.Paddle.SmallScale)
	}
	if c.Gameplay.Lives <= 0 {
		return fmt.Errorf("config: lives must be positive, got %d", c.Gameplay.Lives)
	}
	if c.Gameplay.BrickPoints <= 0 {
		return fmt.Errorf("config: brick_points must be positive, got %d", c.Gameplay.BrickPoints)
	}
	if c.PowerUps.DropChance < 0 || c.PowerUps.DropChance > 100 {
		return fmt.Errorf("config: drop_chance must be in [0, 100], got %d", c.PowerUps.DropChance)
	}
	if c.PowerUps.DurationSecs <= 0 {
		return fmt.Errorf("config: duration_secs must be positive, got %d", c.PowerUps.DurationSecs)
	}
	if c.PowerUps.LaserShots <= 0 {
		return fmt.Errorf("config: laser_shots must be positive, got %d", c.PowerUps.LaserShots)
	}
	if c.PowerUps.FallSpeed <= 0 {
		return fmt.Errorf("config: fall_speed must be positive, got %d", c.PowerUps.FallSpeed)
	}
	if c.PowerUps.SlowScale <= 0 || c.PowerUps.SlowScale >= 100 {
		return fmt.Errorf("config: slow_scale must be in (0, 100), got %d", c.PowerUps.SlowScale)
	}
	return nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:      300,  // 0.3 cells per tick
			PaddleSpeed:    500,  // 0.5 cells per tick
			MaxBallSpeed:   1000, // 1.0 cells per tick max
			LevelSpeedRamp: 50,   // cap raised by 0.05 cells per cleared level
			BallRadius:     400,  // 0.4 cells
		},
		Paddle: BreakoutPaddle{
			Width:      8,
			LargeScale: 150,
			SmallScale: 70,
			MinWidth:   3,
			MaxWidth:   20,
		},
		Gameplay: BreakoutGameplay{
			Lives:       3,
			BrickPoints: 10,
		},
		PowerUps: PowerUpSettings{
			DropChance:   25,
			DurationSecs: 10,
			LaserShots:   20,
			FallSpeed:    150, // 0.15 cells per tick
			SlowScale:    70,
			Enabled:      nil, // all kinds
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBreakoutYAML
}

package breakout

import (
	"fmt"

	"github.com/ilyakarev/breakout/internal/config"
)

// PickupType represents different kinds of power-up pickups.
type PickupType int

const (
	PickupMultiball   PickupType = iota // Clone a live ball
	PickupLargePaddle                   // Widen paddle
	PickupSmallPaddle                   // Shrink paddle
	PickupLaserPaddle                   // Paddle fires lasers
	PickupStickyPaddle                  // Ball sticks to paddle
	PickupExtraLife                     // Extra life, instant
	PickupSlowBall                      // Slow down balls
	PickupCount                         // Sentinel for counting types
)

// Glyph returns the display character for a pickup type.
func (p PickupType) Glyph() rune {
	switch p {
	case PickupMultiball:
		return 'M'
	case PickupLargePaddle:
		return 'L'
	case PickupSmallPaddle:
		return 'S'
	case PickupLaserPaddle:
		return '!'
	case PickupStickyPaddle:
		return 'T'
	case PickupExtraLife:
		return '♥'
	case PickupSlowBall:
		return '-'
	default:
		return '?'
	}
}

// String returns the name of the pickup type.
func (p PickupType) String() string {
	switch p {
	case PickupMultiball:
		return "multi"
	case PickupLargePaddle:
		return "large"
	case PickupSmallPaddle:
		return "small"
	case PickupLaserPaddle:
		return "laser"
	case PickupStickyPaddle:
		return "sticky"
	case PickupExtraLife:
		return "life"
	case PickupSlowBall:
		return "slow"
	default:
		return "?"
	}
}

// ParsePickupType converts a config name into a pickup type.
func ParsePickupType(name string) (PickupType, error) {
	for p := PickupType(0); p < PickupCount; p++ {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown power-up kind %q", name)
}

// Pickup represents a falling power-up item.
type Pickup struct {
	Type   PickupType
	X      Fixed // Center X position
	Y      Fixed // Center Y position
	VY     Fixed // Fall speed (positive = down)
	Active bool  // Whether pickup is still in play
}

// CellX returns pickup X in cell coordinates.
func (p *Pickup) CellX() int {
	return p.X.ToCell()
}

// CellY returns pickup Y in cell coordinates.
func (p *Pickup) CellY() int {
	return p.Y.ToCell()
}

// Move updates pickup position.
func (p *Pickup) Move() {
	p.Y = p.Y.Add(p.VY)
}

// EffectType represents timed effects active on the game.
type EffectType int

const (
	EffectLargePaddle EffectType = iota
	EffectSmallPaddle
	EffectLaser
	EffectSticky
	EffectSlowBall
	EffectCount // Sentinel for counting types
)

// String returns the short name for effect display.
func (e EffectType) String() string {
	switch e {
	case EffectLargePaddle:
		return "L"
	case EffectSmallPaddle:
		return "S"
	case EffectLaser:
		return "!"
	case EffectSticky:
		return "T"
	case EffectSlowBall:
		return "-"
	default:
		return "?"
	}
}

// Effect represents an active timed effect.
type Effect struct {
	Type      EffectType
	UntilTick int // Tick at which effect expires
}

// TicksRemaining returns how many ticks until effect expires.
func (e *Effect) TicksRemaining(currentTick int) int {
	remaining := e.UntilTick - currentTick
	if remaining < 0 {
		return 0
	}
	return remaining
}

// PowerUpConfig holds resolved power-up parameters in tick units.
type PowerUpConfig struct {
	SpawnChance   int          // Percentage chance to spawn on brick destroy (0-100)
	DurationTicks int          // Duration of timed effects
	LaserShots    int          // Ammunition granted per laser pickup
	FallSpeed     Fixed        // Pickup fall speed
	Enabled       []PickupType // Kinds eligible to drop, in spawn-roll order
}

// ResolvePowerUpConfig converts YAML power-up settings into tick units.
// An empty enabled list means every kind is eligible. Unknown kind names
// are rejected so typos surface at session start.
func ResolvePowerUpConfig(cfg config.PowerUpSettings, tickRate int) (PowerUpConfig, error) {
	resolved := PowerUpConfig{
		SpawnChance:   cfg.DropChance,
		DurationTicks: cfg.DurationSecs * tickRate,
		LaserShots:    cfg.LaserShots,
		FallSpeed:     Fixed(cfg.FallSpeed),
	}

	if len(cfg.Enabled) == 0 {
		for p := PickupType(0); p < PickupCount; p++ {
			resolved.Enabled = append(resolved.Enabled, p)
		}
		return resolved, nil
	}

	for _, name := range cfg.Enabled {
		p, err := ParsePickupType(name)
		if err != nil {
			return PowerUpConfig{}, err
		}
		resolved.Enabled = append(resolved.Enabled, p)
	}
	return resolved, nil
}

// PowerUpManager handles pickup spawning, falling, collection, and effects.
type PowerUpManager struct {
	Config  PowerUpConfig
	Pickups []*Pickup  // Active falling pickups
	Effects []*Effect  // Active effects
	RNG     *SimpleRNG // Deterministic RNG
}

// NewPowerUpManager creates a new power-up manager with given seed.
func NewPowerUpManager(seed int64, cfg PowerUpConfig) *PowerUpManager {
	return &PowerUpManager{
		Config:  cfg,
		Pickups: make([]*Pickup, 0),
		Effects: make([]*Effect, 0),
		RNG:     NewSimpleRNG(seed),
	}
}

// Reset clears all pickups and effects and reseeds the RNG.
func (pm *PowerUpManager) Reset(seed int64) {
	pm.Pickups = pm.Pickups[:0]
	pm.Effects = pm.Effects[:0]
	pm.RNG = NewSimpleRNG(seed)
}

// TrySpawnPickup attempts to spawn a pickup at the given brick position.
// The kind is chosen uniformly from the enabled set.
// Returns true if a pickup was spawned.
func (pm *PowerUpManager) TrySpawnPickup(brickCenterX, brickCenterY int) bool {
	if len(pm.Config.Enabled) == 0 {
		return false
	}

	roll := pm.RNG.Intn(100)
	if roll >= pm.Config.SpawnChance {
		return false
	}

	kind := pm.Config.Enabled[pm.RNG.Intn(len(pm.Config.Enabled))]

	pm.Pickups = append(pm.Pickups, &Pickup{
		Type:   kind,
		X:      ToFixed(brickCenterX),
		Y:      ToFixed(brickCenterY),
		VY:     pm.Config.FallSpeed,
		Active: true,
	})
	return true
}

// Update moves all pickups and drops the ones that left the screen.
// A pickup falling past the bottom is missed and has no effect.
func (pm *PowerUpManager) Update(screenH int) {
	maxY := ToFixed(screenH + 1)

	active := pm.Pickups[:0]
	for _, p := range pm.Pickups {
		if !p.Active {
			continue
		}
		p.Move()
		if p.Y < maxY {
			active = append(active, p)
		}
	}
	pm.Pickups = active
}

// CheckPaddleCollision checks if any pickup hits the paddle.
// Returns the pickup type if collected, or -1 if none.
func (pm *PowerUpManager) CheckPaddleCollision(paddle *Paddle) PickupType {
	paddleLeft := paddle.Left()
	paddleRight := paddle.Right()
	paddleY := paddle.Y

	for _, p := range pm.Pickups {
		if !p.Active {
			continue
		}

		pickupY := p.CellY()
		if pickupY != paddleY && pickupY != paddleY-1 {
			continue
		}

		if p.X >= paddleLeft && p.X <= paddleRight {
			p.Active = false
			return p.Type
		}
	}

	return PickupType(-1)
}

// AddEffect adds an effect, or resets the timer if it is already active.
// Timed effects never stack.
func (pm *PowerUpManager) AddEffect(effectType EffectType, currentTick, duration int) {
	for _, e := range pm.Effects {
		if e.Type == effectType {
			e.UntilTick = currentTick + duration
			return
		}
	}

	pm.Effects = append(pm.Effects, &Effect{
		Type:      effectType,
		UntilTick: currentTick + duration,
	})
}

// RemoveEffect removes an effect by type.
func (pm *PowerUpManager) RemoveEffect(effectType EffectType) {
	for i, e := range pm.Effects {
		if e.Type == effectType {
			pm.Effects = append(pm.Effects[:i], pm.Effects[i+1:]...)
			return
		}
	}
}

// ExpireEffects removes effects that have expired and returns their types
// so the game can revert the matching modifiers.
func (pm *PowerUpManager) ExpireEffects(currentTick int) []EffectType {
	expired := make([]EffectType, 0)
	active := pm.Effects[:0]

	for _, e := range pm.Effects {
		if e.UntilTick <= currentTick {
			expired = append(expired, e.Type)
		} else {
			active = append(active, e)
		}
	}

	pm.Effects = active
	return expired
}

// HasEffect returns true if the given effect is active.
func (pm *PowerUpManager) HasEffect(effectType EffectType) bool {
	for _, e := range pm.Effects {
		if e.Type == effectType {
			return true
		}
	}
	return false
}

// GetEffectRemaining returns ticks remaining for an effect, or 0 if not active.
func (pm *PowerUpManager) GetEffectRemaining(effectType EffectType, currentTick int) int {
	for _, e := range pm.Effects {
		if e.Type == effectType {
			return e.TicksRemaining(currentTick)
		}
	}
	return 0
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator).
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
// Uses the high bits: the low bits of an LCG have short periods and would
// make small-range draws cycle through a fixed pattern.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 32) % uint64(n)) //#nosec G115 -- n is always positive
}

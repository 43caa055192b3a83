package breakout

import (
	"testing"

	"github.com/ilyakarev/breakout/internal/config"
)

func testPowerUpConfig() PowerUpConfig {
	cfg, err := ResolvePowerUpConfig(config.PowerUpSettings{
		DropChance:   25,
		DurationSecs: 10,
		LaserShots:   20,
		FallSpeed:    150,
		SlowScale:    70,
	}, 60)
	if err != nil {
		panic(err)
	}
	return cfg
}

func TestResolvePowerUpConfig(t *testing.T) {
	cfg := testPowerUpConfig()

	if cfg.DurationTicks != 600 {
		t.Errorf("10 seconds at 60 ticks should be 600, got %d", cfg.DurationTicks)
	}
	if len(cfg.Enabled) != int(PickupCount) {
		t.Errorf("empty enabled list should enable every kind, got %d", len(cfg.Enabled))
	}

	// Named subset
	named, err := ResolvePowerUpConfig(config.PowerUpSettings{
		DropChance:   25,
		DurationSecs: 10,
		LaserShots:   20,
		FallSpeed:    150,
		Enabled:      []string{"multi", "life"},
	}, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(named.Enabled) != 2 {
		t.Errorf("named subset should have 2 kinds, got %d", len(named.Enabled))
	}

	// Unknown names are rejected at session start
	_, err = ResolvePowerUpConfig(config.PowerUpSettings{
		DropChance: 25,
		Enabled:    []string{"banana"},
	}, 60)
	if err == nil {
		t.Error("unknown power-up kind should be rejected")
	}
}

func TestSpawnChanceBounds(t *testing.T) {
	cfg := testPowerUpConfig()

	cfg.SpawnChance = 0
	pm := NewPowerUpManager(1, cfg)
	for i := 0; i < 100; i++ {
		if pm.TrySpawnPickup(10, 5) {
			t.Fatal("zero spawn chance should never spawn")
		}
	}

	cfg.SpawnChance = 100
	pm = NewPowerUpManager(1, cfg)
	for i := 0; i < 100; i++ {
		if !pm.TrySpawnPickup(10, 5) {
			t.Fatal("full spawn chance should always spawn")
		}
	}
}

func TestSpawnKindUniformOverEnabledSet(t *testing.T) {
	cfg := testPowerUpConfig()
	cfg.SpawnChance = 100
	cfg.Enabled = []PickupType{PickupMultiball, PickupExtraLife}

	pm := NewPowerUpManager(99, cfg)
	counts := make(map[PickupType]int)
	for i := 0; i < 1000; i++ {
		pm.TrySpawnPickup(10, 5)
	}
	for _, p := range pm.Pickups {
		counts[p.Type]++
	}

	for kind := range counts {
		if kind != PickupMultiball && kind != PickupExtraLife {
			t.Fatalf("disabled kind %v spawned", kind)
		}
	}
	if counts[PickupMultiball] == 0 || counts[PickupExtraLife] == 0 {
		t.Error("both enabled kinds should appear over many spawns")
	}

	// Roughly uniform: neither kind takes more than 65% of the rolls
	if counts[PickupMultiball] > 650 || counts[PickupExtraLife] > 650 {
		t.Errorf("selection looks skewed: %v", counts)
	}
}

func TestSpawnDeterministicPerSeed(t *testing.T) {
	cfg := testPowerUpConfig()

	pm1 := NewPowerUpManager(777, cfg)
	pm2 := NewPowerUpManager(777, cfg)

	for i := 0; i < 200; i++ {
		if pm1.TrySpawnPickup(10, 5) != pm2.TrySpawnPickup(10, 5) {
			t.Fatal("same seed should produce identical spawn decisions")
		}
	}
	if len(pm1.Pickups) != len(pm2.Pickups) {
		t.Fatal("same seed should produce identical pickup counts")
	}
	for i := range pm1.Pickups {
		if pm1.Pickups[i].Type != pm2.Pickups[i].Type {
			t.Fatal("same seed should produce identical pickup kinds")
		}
	}
}

func TestAddEffectResetsTimer(t *testing.T) {
	pm := NewPowerUpManager(1, testPowerUpConfig())

	pm.AddEffect(EffectSticky, 100, 600)
	pm.AddEffect(EffectSticky, 300, 600) // Duplicate collection

	if len(pm.Effects) != 1 {
		t.Fatalf("duplicate effects must not stack, got %d entries", len(pm.Effects))
	}
	if pm.Effects[0].UntilTick != 900 {
		t.Errorf("duplicate should reset the timer to 900, got %d", pm.Effects[0].UntilTick)
	}
}

func TestExpireEffects(t *testing.T) {
	pm := NewPowerUpManager(1, testPowerUpConfig())

	pm.AddEffect(EffectSticky, 0, 100)
	pm.AddEffect(EffectLaser, 0, 500)

	expired := pm.ExpireEffects(100)
	if len(expired) != 1 || expired[0] != EffectSticky {
		t.Errorf("only the sticky effect should expire at tick 100, got %v", expired)
	}
	if !pm.HasEffect(EffectLaser) {
		t.Error("laser effect should still be active")
	}
	if pm.HasEffect(EffectSticky) {
		t.Error("expired effect should be gone")
	}

	if pm.GetEffectRemaining(EffectLaser, 100) != 400 {
		t.Errorf("laser should have 400 ticks left, got %d", pm.GetEffectRemaining(EffectLaser, 100))
	}
}

func TestPickupFallsAndExpires(t *testing.T) {
	cfg := testPowerUpConfig()
	cfg.SpawnChance = 100
	pm := NewPowerUpManager(1, cfg)

	pm.TrySpawnPickup(10, 5)
	if len(pm.Pickups) != 1 {
		t.Fatal("pickup should spawn")
	}

	startY := pm.Pickups[0].Y
	pm.Update(24)
	if pm.Pickups[0].Y <= startY {
		t.Error("pickup should fall")
	}

	// Push it past the bottom; it is missed with no effect
	pm.Pickups[0].Y = ToFixed(26)
	pm.Update(24)
	if len(pm.Pickups) != 0 {
		t.Error("pickup past the bottom should be removed")
	}
}

func TestPickupPaddleCollection(t *testing.T) {
	cfg := testPowerUpConfig()
	cfg.SpawnChance = 100
	pm := NewPowerUpManager(1, cfg)
	paddle := &Paddle{X: ToFixed(36), Y: 21, Width: 8}

	pm.TrySpawnPickup(40, 21)

	got := pm.CheckPaddleCollision(paddle)
	if got < 0 {
		t.Fatal("pickup over the paddle should be collected")
	}
	if pm.Pickups[0].Active {
		t.Error("collected pickup should be deactivated")
	}

	// A second check finds nothing
	if pm.CheckPaddleCollision(paddle) >= 0 {
		t.Error("a pickup must not be collected twice")
	}
}

func TestParsePickupType(t *testing.T) {
	for p := PickupType(0); p < PickupCount; p++ {
		got, err := ParsePickupType(p.String())
		if err != nil {
			t.Fatalf("round trip failed for %v: %v", p, err)
		}
		if got != p {
			t.Errorf("round trip mismatch: %v != %v", got, p)
		}
	}

	if _, err := ParsePickupType("nope"); err == nil {
		t.Error("unknown name should error")
	}
}

func TestSimpleRNGDeterminism(t *testing.T) {
	r1 := NewSimpleRNG(42)
	r2 := NewSimpleRNG(42)

	for i := 0; i < 100; i++ {
		if r1.Intn(1000) != r2.Intn(1000) {
			t.Fatal("same seed should produce the same sequence")
		}
	}

	// Zero seed is remapped, not degenerate
	r3 := NewSimpleRNG(0)
	r4 := NewSimpleRNG(0)
	if r3.Intn(1000) != r4.Intn(1000) {
		t.Error("zero seed should still be deterministic")
	}
}

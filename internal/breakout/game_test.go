package breakout

import (
	"testing"

	"github.com/ilyakarev/breakout/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// startPlaying moves a freshly reset game from the menu into play.
func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	if err := g.ConfigError(); err != nil {
		t.Fatalf("unexpected config error: %v", err)
	}
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	if g.state != StatePlaying {
		t.Fatalf("game should be playing after start input, got %s", g.state)
	}
}

// singleBrickLevel replaces the loaded grid with one normal brick and
// disables power-up drops so tests control exactly what happens.
func singleBrickLevel(t *testing.T, g *Game) {
	t.Helper()
	level, err := ParseLevel("single", "Single", 10, []string{"#"})
	if err != nil {
		t.Fatalf("parse level: %v", err)
	}
	g.level = level
	g.bricksTotal = level.CountAlive()
	g.powerups.Config.SpawnChance = 0
}

func TestGameDeterminism(t *testing.T) {
	// Same inputs must produce identical results
	cfg := testRuntime(12345)

	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputSequence[i].Set(core.ActionConfirm)
		case i == 10:
			inputSequence[i].Set(core.ActionFire) // Launch ball
		case i > 10 && i%5 < 3:
			inputSequence[i].Set(core.ActionRight)
		case i > 10:
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	g1 := New()
	g1.Reset(cfg)
	for _, in := range inputSequence {
		if result := g1.Step(in); result.State.GameOver {
			break
		}
	}
	snap1 := g1.Snapshot()

	g2 := New()
	g2.Reset(cfg)
	for _, in := range inputSequence {
		if result := g2.Step(in); result.State.GameOver {
			break
		}
	}
	snap2 := g2.Snapshot()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ, run1=%d run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("determinism failed: scores differ, run1=%d run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Tick != snap2.Tick {
		t.Errorf("determinism failed: ticks differ, run1=%d run2=%d", snap1.Tick, snap2.Tick)
	}
}

func TestGameStartsInMenu(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	if g.state != StateMenu {
		t.Errorf("game should start in menu, got %s", g.state)
	}

	// Ticks in the menu must not advance the simulation
	g.Step(core.NewInputFrame())
	if g.tickCount != 0 {
		t.Errorf("menu steps should not tick the simulation, got tick %d", g.tickCount)
	}

	startPlaying(t, g)

	// One stuck ball waits on the paddle
	if len(g.balls) != 1 || !g.balls[0].Stuck {
		t.Error("a stuck ball should wait on the paddle after start")
	}
}

func TestGameReset(t *testing.T) {
	cfg := testRuntime(42)

	g := New()
	g.Reset(cfg)
	startPlaying(t, g)

	fireInput := core.NewInputFrame()
	fireInput.Set(core.ActionFire)
	g.Step(fireInput)

	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		if i%2 == 0 {
			in.Set(core.ActionRight)
		}
		g.Step(in)
	}

	g.Reset(cfg)

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.state != StateMenu {
		t.Errorf("Reset should return to menu, got %s", g.state)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if g.levelIndex != 0 {
		t.Errorf("Reset should reset levelIndex, got %d", g.levelIndex)
	}
	if g.combo != 1 {
		t.Errorf("Reset should reset combo, got %d", g.combo)
	}
}

func TestStuckBallFollowsPaddle(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)

	ball := g.balls[0]
	if ball.VX != 0 || ball.VY != 0 {
		t.Errorf("stuck ball should have zero velocity, got VX=%d VY=%d", ball.VX, ball.VY)
	}

	rightInput := core.NewInputFrame()
	rightInput.Set(core.ActionRight)
	g.Step(rightInput)

	if ball.X != g.paddle.CenterX() {
		t.Errorf("stuck ball should track the paddle center, ball=%d paddle=%d", ball.X, g.paddle.CenterX())
	}

	fireInput := core.NewInputFrame()
	fireInput.Set(core.ActionFire)
	g.Step(fireInput)

	if ball.Stuck {
		t.Error("ball should be released after fire input")
	}
	if ball.VY >= 0 {
		t.Errorf("ball should move up after launch, VY=%d", ball.VY)
	}
}

func TestPaddleMovement(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)

	initialX := g.paddle.X

	rightInput := core.NewInputFrame()
	rightInput.Set(core.ActionRight)
	g.Step(rightInput)

	if g.paddle.X <= initialX {
		t.Errorf("paddle should move right, was %d, now %d", initialX, g.paddle.X)
	}

	newX := g.paddle.X
	leftInput := core.NewInputFrame()
	leftInput.Set(core.ActionLeft)
	g.Step(leftInput)

	if g.paddle.X >= newX {
		t.Errorf("paddle should move left, was %d, now %d", newX, g.paddle.X)
	}
}

func TestPaddleStaysInBounds(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)

	leftInput := core.NewInputFrame()
	leftInput.Set(core.ActionLeft)
	for i := 0; i < 500; i++ {
		g.Step(leftInput)
		if g.paddle.X < ToFixed(1) {
			t.Fatalf("paddle escaped left bound at tick %d: %d", i, g.paddle.X)
		}
	}

	rightInput := core.NewInputFrame()
	rightInput.Set(core.ActionRight)
	maxX := ToFixed(g.runtime.ScreenW - g.paddle.Width - 1)
	for i := 0; i < 500; i++ {
		g.Step(rightInput)
		if g.paddle.X > maxX {
			t.Fatalf("paddle escaped right bound at tick %d: %d", i, g.paddle.X)
		}
	}
}

func TestPointerControl(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)

	in := core.NewInputFrame()
	in.SetPointer(40)
	g.Step(in)

	center := g.paddle.CenterX()
	if center.ToCell() != 40 {
		t.Errorf("paddle center should follow the pointer, got cell %d, want 40", center.ToCell())
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)

	fireInput := core.NewInputFrame()
	fireInput.Set(core.ActionFire)
	g.Step(fireInput)

	pauseInput := core.NewInputFrame()
	pauseInput.Set(core.ActionPause)
	g.Step(pauseInput)

	if g.state != StatePaused {
		t.Errorf("game should be paused, got %s", g.state)
	}

	ball := g.balls[0]
	ballX, ballY := ball.X, ball.Y

	g.Step(core.NewInputFrame())

	if ball.X != ballX || ball.Y != ballY {
		t.Error("ball position should not change while paused")
	}

	g.Step(pauseInput)
	if g.state == StatePaused {
		t.Error("game should be unpaused")
	}
}

func TestSingleBrickScenario(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)
	singleBrickLevel(t, g)

	// One ball aimed straight at the only brick, which sits in the
	// grid cell spanning [0, brickWidth) x [2, 3)
	g.balls = g.balls[:0]
	g.balls = append(g.balls, &Ball{
		X:      ToFixed(g.brickWidth / 2),
		Y:      Fixed(3600),
		VX:     0,
		VY:     Fixed(-400),
		Radius: Fixed(400),
		Active: true,
	})

	grid := g.level
	result := g.Step(core.NewInputFrame())

	if grid.Bricks[0][0].Alive {
		t.Error("brick should be destroyed")
	}
	if g.score != 10 {
		t.Errorf("score should be 10, got %d", g.score)
	}
	if g.combo != 2 {
		t.Errorf("combo should be 2 after first destroy, got %d", g.combo)
	}

	found := false
	for _, ev := range result.Events {
		if ev.Kind == core.EventBrickDestroyed && ev.Value == 10 {
			found = true
		}
	}
	if !found {
		t.Error("a BrickDestroyed event worth 10 points should be emitted")
	}
}

func TestComboScoring(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)
	singleBrickLevel(t, g)

	// Destroy two bricks directly: 10*1 then 10*2
	level, err := ParseLevel("pair", "Pair", 10, []string{"##"})
	if err != nil {
		t.Fatalf("parse level: %v", err)
	}
	g.level = level

	g.hitBrick(&g.level.Bricks[0][0], 0, 0)
	g.hitBrick(&g.level.Bricks[0][1], 0, 1)

	if g.score != 30 {
		t.Errorf("combo scoring should give 10+20=30, got %d", g.score)
	}
	if g.combo != 3 {
		t.Errorf("combo should be 3 after two destroys, got %d", g.combo)
	}
}

func TestBrickHitPointsNeverNegative(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)
	singleBrickLevel(t, g)

	brick := &g.level.Bricks[0][0]
	g.hitBrick(brick, 0, 0)
	g.hitBrick(brick, 0, 0) // Dead brick must absorb nothing

	if brick.HP < 0 {
		t.Errorf("hit points must never go negative, got %d", brick.HP)
	}
	if g.score != 10 {
		t.Errorf("a destroyed brick must not award points twice, score=%d", g.score)
	}
}

func TestSolidBrickAbsorbsHits(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)

	level, err := ParseLevel("solid", "Solid", 10, []string{"X#"})
	if err != nil {
		t.Fatalf("parse level: %v", err)
	}
	g.level = level

	solid := &g.level.Bricks[0][0]
	hp := solid.HP
	g.hitBrick(solid, 0, 0)

	if !solid.Alive || solid.HP != hp {
		t.Error("solid bricks should absorb hits without losing hit points")
	}
	if g.score != 0 {
		t.Errorf("solid bricks should not award points, score=%d", g.score)
	}
}

func TestLifeLossClearsEffects(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)

	g.activatePickup(PickupLargePaddle)
	g.activatePickup(PickupStickyPaddle)
	g.activatePickup(PickupSlowBall)

	// Drop the only ball past the bottom
	g.balls = g.balls[:0]
	g.balls = append(g.balls, &Ball{
		X:      ToFixed(40),
		Y:      ToFixed(g.runtime.ScreenH + 1),
		VY:     Fixed(300),
		Radius: Fixed(400),
		Active: true,
	})

	result := g.Step(core.NewInputFrame())

	if g.lives != g.cfg.Gameplay.Lives-1 {
		t.Errorf("lives should drop by one, got %d", g.lives)
	}
	if len(g.powerups.Effects) != 0 {
		t.Errorf("life loss should clear all effects, %d remain", len(g.powerups.Effects))
	}
	if g.paddle.Width != g.basePaddleWidth {
		t.Errorf("paddle width should revert to base, got %d", g.paddle.Width)
	}
	if g.speedScale != 100 {
		t.Errorf("speed scale should revert to 100, got %d", g.speedScale)
	}
	if g.combo != 1 {
		t.Errorf("combo should reset on life loss, got %d", g.combo)
	}
	if len(g.balls) != 1 || !g.balls[0].Stuck {
		t.Error("a new stuck ball should spawn on the paddle")
	}

	found := false
	for _, ev := range result.Events {
		if ev.Kind == core.EventLifeLost {
			found = true
		}
	}
	if !found {
		t.Error("a LifeLost event should be emitted")
	}
}

func TestGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)
	g.lives = 1 // Last life

	g.balls = g.balls[:0]
	g.balls = append(g.balls, &Ball{
		X:      ToFixed(40),
		Y:      ToFixed(g.runtime.ScreenH + 1),
		VY:     Fixed(300),
		Radius: Fixed(400),
		Active: true,
	})

	result := g.Step(core.NewInputFrame())

	if !result.State.GameOver {
		t.Error("game should be over when the last ball falls with one life")
	}

	found := false
	for _, ev := range result.Events {
		if ev.Kind == core.EventGameOver {
			found = true
		}
	}
	if !found {
		t.Error("a GameOver event should be emitted")
	}

	// No entity updates after game over
	tick := g.tickCount
	g.Step(core.NewInputFrame())
	if g.tickCount != tick {
		t.Error("simulation should not tick after game over")
	}

	// Restart returns to the menu with a fresh session
	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.state != StateMenu {
		t.Errorf("restart should return to menu, got %s", g.state)
	}
	if g.score != 0 || g.lives != g.cfg.Gameplay.Lives {
		t.Error("restart should reset score and lives")
	}
}

func TestVictoryEmittedOnce(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)
	singleBrickLevel(t, g)
	g.levelIndex = LevelCount() - 1

	g.hitBrick(&g.level.Bricks[0][0], 0, 0)

	if g.state != StateVictory {
		t.Fatalf("clearing the last level should end in victory, got %s", g.state)
	}

	victories := 0
	for _, ev := range g.events {
		if ev.Kind == core.EventVictory {
			victories++
		}
	}
	if victories != 1 {
		t.Errorf("victory should be emitted exactly once, got %d", victories)
	}

	// Further steps emit nothing new
	result := g.Step(core.NewInputFrame())
	for _, ev := range result.Events {
		if ev.Kind == core.EventVictory {
			t.Error("victory must not re-trigger on later ticks")
		}
	}
}

func TestEndlessModeCyclesLevels(t *testing.T) {
	g := NewEndless()
	g.Reset(testRuntime(1))
	startPlaying(t, g)
	singleBrickLevel(t, g)
	g.levelIndex = LevelCount() - 1

	g.hitBrick(&g.level.Bricks[0][0], 0, 0)

	if g.state != StatePlaying {
		t.Errorf("endless mode should keep playing, got %s", g.state)
	}
	if g.levelIndex != 0 || g.endlessCycle != 1 {
		t.Errorf("endless mode should wrap to level 0, got index=%d cycle=%d", g.levelIndex, g.endlessCycle)
	}
}

func TestSpeedCapRisesWithLevels(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)
	singleBrickLevel(t, g)

	before := g.speedCap
	g.hitBrick(&g.level.Bricks[0][0], 0, 0)

	if g.speedCap <= before {
		t.Errorf("speed cap should rise on level clear, was %d, now %d", before, g.speedCap)
	}
}

func TestLevelClearStopsBallResolution(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)
	singleBrickLevel(t, g)

	// The first ball destroys the last brick; the second sits inside the
	// rows where the next level's bricks will load. Once the level swaps
	// mid-tick, the second ball must not resolve against the fresh grid.
	g.balls = g.balls[:0]
	g.balls = append(g.balls, &Ball{
		X:      ToFixed(g.brickWidth / 2),
		Y:      Fixed(3600),
		VY:     Fixed(-400),
		Radius: Fixed(400),
		Active: true,
	})
	g.balls = append(g.balls, &Ball{
		X:      ToFixed(g.runtime.ScreenW / 2),
		Y:      Fixed(4600),
		VY:     Fixed(-400),
		Radius: Fixed(400),
		Active: true,
	})

	result := g.Step(core.NewInputFrame())

	destroyed := 0
	for _, ev := range result.Events {
		if ev.Kind == core.EventBrickDestroyed {
			destroyed++
		}
	}
	if destroyed != 1 {
		t.Errorf("only the finished level's brick should be destroyed, got %d", destroyed)
	}
	if g.score != 10 {
		t.Errorf("score should not include bricks of the next level, got %d", g.score)
	}
	if got, want := g.level.CountAlive(), GetLevel(g.levelIndex).CountAlive(); got != want {
		t.Errorf("next level should load untouched, %d bricks alive, want %d", got, want)
	}
	if len(g.balls) != 1 || !g.balls[0].Stuck {
		t.Error("a single stuck ball should wait on the paddle after the clear")
	}
}

func TestLevelClearDropsInFlightLasers(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)
	singleBrickLevel(t, g)

	// Keep one airborne ball away from the brick so the clear comes from
	// the laser, with a second laser still in flight
	g.balls = g.balls[:0]
	g.balls = append(g.balls, &Ball{
		X:      ToFixed(40),
		Y:      ToFixed(12),
		VY:     Fixed(-300),
		Radius: Fixed(400),
		Active: true,
	})
	g.lasers = append(g.lasers,
		&Laser{X: ToFixed(2), Y: Fixed(2800), VY: Fixed(-500), Active: true},
		&Laser{X: ToFixed(40), Y: ToFixed(10), VY: Fixed(-500), Active: true},
	)

	result := g.Step(core.NewInputFrame())

	destroyed := 0
	for _, ev := range result.Events {
		if ev.Kind == core.EventBrickDestroyed {
			destroyed++
		}
	}
	if destroyed != 1 {
		t.Errorf("only the finished level's brick should be destroyed, got %d", destroyed)
	}
	if len(g.lasers) != 0 {
		t.Errorf("lasers must not survive a level clear, %d remain", len(g.lasers))
	}
	if got, want := g.level.CountAlive(), GetLevel(g.levelIndex).CountAlive(); got != want {
		t.Errorf("next level should load untouched, %d bricks alive, want %d", got, want)
	}
}

func TestPickupCollectionResolvesAfterBalls(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)
	singleBrickLevel(t, g)

	level, err := ParseLevel("pair", "Pair", 10, []string{"##"})
	if err != nil {
		t.Fatalf("parse level: %v", err)
	}
	g.level = level
	g.bricksTotal = level.CountAlive()

	// A ball about to destroy a brick and a pickup already resting on the
	// paddle, both resolving in the same tick
	g.balls = g.balls[:0]
	g.balls = append(g.balls, &Ball{
		X:      ToFixed(g.brickWidth / 2),
		Y:      Fixed(3600),
		VY:     Fixed(-400),
		Radius: Fixed(400),
		Active: true,
	})
	g.powerups.Pickups = append(g.powerups.Pickups, &Pickup{
		Type:   PickupExtraLife,
		X:      g.paddle.CenterX(),
		Y:      ToFixed(g.paddle.Y - 1),
		Active: true,
	})

	result := g.Step(core.NewInputFrame())

	brickAt, pickupAt := -1, -1
	for i, ev := range result.Events {
		switch ev.Kind {
		case core.EventBrickDestroyed:
			brickAt = i
		case core.EventPowerupCollected:
			pickupAt = i
		}
	}
	if brickAt < 0 || pickupAt < 0 {
		t.Fatalf("both events should fire this tick, brick=%d pickup=%d", brickAt, pickupAt)
	}
	if brickAt > pickupAt {
		t.Error("brick destruction should resolve before pickup collection")
	}
}

func TestPaddleSizeEffectsMutuallyExclusive(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)

	g.activatePickup(PickupSmallPaddle)
	if g.paddle.Width >= g.basePaddleWidth {
		t.Errorf("small paddle should shrink width, got %d", g.paddle.Width)
	}

	g.activatePickup(PickupLargePaddle)

	if g.powerups.HasEffect(EffectSmallPaddle) {
		t.Error("large paddle should cancel the small paddle effect")
	}
	if !g.powerups.HasEffect(EffectLargePaddle) {
		t.Error("large paddle effect should be active")
	}
	if len(g.powerups.Effects) != 1 {
		t.Errorf("exactly one size effect should remain, got %d", len(g.powerups.Effects))
	}

	want := g.basePaddleWidth * g.cfg.Paddle.LargeScale / 100
	if want > g.cfg.Paddle.MaxWidth {
		want = g.cfg.Paddle.MaxWidth
	}
	if g.paddle.Width != want {
		t.Errorf("paddle width should be %d, got %d", want, g.paddle.Width)
	}
}

func TestMultiballClonesFirstLiveBall(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)

	g.balls = g.balls[:0]
	g.balls = append(g.balls, &Ball{
		X:      ToFixed(40),
		Y:      ToFixed(12),
		VX:     Fixed(200),
		VY:     Fixed(-300),
		Radius: Fixed(400),
		Active: true,
	})

	g.activatePickup(PickupMultiball)

	if len(g.balls) != 2 {
		t.Fatalf("multiball should add one ball, got %d", len(g.balls))
	}

	clone := g.balls[1]
	if clone.VX != -Fixed(200) {
		t.Errorf("clone should have inverted VX, got %d", clone.VX)
	}
	if clone.VY != Fixed(-300) {
		t.Errorf("clone should keep VY, got %d", clone.VY)
	}
}

func TestMultiballFallsBackToStuckBall(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)

	if len(g.balls) != 1 || !g.balls[0].Stuck {
		t.Fatal("expected a single stuck ball on the paddle")
	}

	g.activatePickup(PickupMultiball)

	if len(g.balls) != 2 {
		t.Fatalf("multiball should clone the stuck ball, got %d balls", len(g.balls))
	}

	clone := g.balls[1]
	if clone.Stuck {
		t.Error("clone should launch free, not stick to the paddle")
	}
	if clone.VY >= 0 {
		t.Errorf("clone should move upward, VY=%d", clone.VY)
	}
	if clone.VX == 0 {
		t.Error("clone should have horizontal velocity")
	}
}

func TestExtraLifeIsInstant(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)

	lives := g.lives
	g.activatePickup(PickupExtraLife)

	if g.lives != lives+1 {
		t.Errorf("extra life should add a life, got %d", g.lives)
	}
	if len(g.powerups.Effects) != 0 {
		t.Error("extra life should not create a timed effect")
	}
}

func TestLaserFireConsumesAmmo(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)

	// Keep one airborne ball so a fire input cannot trigger a life loss
	g.balls = g.balls[:0]
	g.balls = append(g.balls, &Ball{
		X:      ToFixed(40),
		Y:      ToFixed(12),
		VX:     0,
		VY:     Fixed(-300),
		Radius: Fixed(400),
		Active: true,
	})

	g.activatePickup(PickupLaserPaddle)
	if g.laserAmmo != g.cfg.PowerUps.LaserShots {
		t.Fatalf("laser pickup should grant %d shots, got %d", g.cfg.PowerUps.LaserShots, g.laserAmmo)
	}

	fireInput := core.NewInputFrame()
	fireInput.Set(core.ActionFire)
	g.Step(fireInput)

	if g.laserAmmo != g.cfg.PowerUps.LaserShots-1 {
		t.Errorf("firing should consume one shot, got %d", g.laserAmmo)
	}
	if len(g.lasers) != 1 {
		t.Errorf("one laser should be in flight, got %d", len(g.lasers))
	}

	// Without the effect no lasers fire
	g.powerups.RemoveEffect(EffectLaser)
	g.laserAmmo = 0
	before := len(g.lasers)
	g.Step(fireInput)
	if len(g.lasers) > before {
		t.Error("laser should not fire without the effect")
	}
}

func TestLaserAmmoForfeitedOnExpiry(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)

	g.activatePickup(PickupLaserPaddle)
	g.onEffectExpired(EffectLaser)

	if g.laserAmmo != 0 {
		t.Errorf("remaining ammunition should be forfeited on expiry, got %d", g.laserAmmo)
	}
}

func TestStickyPaddleAttachesBall(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)

	g.activatePickup(PickupStickyPaddle)

	g.balls = g.balls[:0]
	ball := &Ball{
		X:      g.paddle.CenterX(),
		Y:      ToFixed(g.paddle.Y-1) - Fixed(200),
		VX:     0,
		VY:     Fixed(500),
		Radius: Fixed(400),
		Active: true,
	}
	g.balls = append(g.balls, ball)

	g.Step(core.NewInputFrame())

	if !ball.Stuck {
		t.Error("ball should attach to a sticky paddle")
	}
	if ball.VX != 0 || ball.VY != 0 {
		t.Error("attached ball should have zero velocity")
	}

	// Fire releases it
	fireInput := core.NewInputFrame()
	fireInput.Set(core.ActionFire)
	g.Step(fireInput)

	if ball.Stuck {
		t.Error("fire input should release the attached ball")
	}
}

func TestSlowBallScalesDisplacement(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	startPlaying(t, g)

	g.activatePickup(PickupSlowBall)
	if g.speedScale != g.cfg.PowerUps.SlowScale {
		t.Fatalf("slow effect should set the speed scale, got %d", g.speedScale)
	}

	g.balls = g.balls[:0]
	ball := &Ball{
		X:      ToFixed(40),
		Y:      ToFixed(12),
		VX:     Fixed(0),
		VY:     Fixed(-1000),
		Radius: Fixed(400),
		Active: true,
	}
	g.balls = append(g.balls, ball)

	before := ball.Y
	g.Step(core.NewInputFrame())

	moved := before - ball.Y
	want := Fixed(1000 * g.cfg.PowerUps.SlowScale / 100)
	if moved != want {
		t.Errorf("slowed ball should move %d per tick, moved %d", want, moved)
	}

	// Expiry restores full displacement and the stored velocity is untouched
	g.onEffectExpired(EffectSlowBall)
	if g.speedScale != 100 {
		t.Errorf("speed scale should revert to 100, got %d", g.speedScale)
	}
	if ball.VY != Fixed(-1000) {
		t.Errorf("stored velocity should be unchanged by the slow effect, got %d", ball.VY)
	}
}

func TestGameRender(t *testing.T) {
	cfg := testRuntime(1)

	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	// Menu should draw something
	str := screen.String()
	hasContent := false
	for _, ch := range str {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("menu render should draw something")
	}

	startPlaying(t, g)
	g.Render(screen)

	paddleX := g.paddle.CellX()
	if screen.Get(paddleX, g.paddle.Y) != PaddleChar {
		t.Errorf("paddle should be drawn, got %q at paddle position", screen.Get(paddleX, g.paddle.Y))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	cfg := testRuntime(7)

	g := New()
	g.Reset(cfg)
	startPlaying(t, g)

	fireInput := core.NewInputFrame()
	fireInput.Set(core.ActionFire)
	g.Step(fireInput)

	for i := 0; i < 20; i++ {
		in := core.NewInputFrame()
		if i%3 == 0 {
			in.Set(core.ActionRight)
		}
		g.Step(in)
	}

	snap := g.Snapshot()

	if snap.Tick != uint64(g.tickCount) {
		t.Errorf("snapshot tick should match game tick, got %d, want %d", snap.Tick, g.tickCount)
	}
	if snap.Score != g.score {
		t.Errorf("snapshot score should match game score, got %d, want %d", snap.Score, g.score)
	}
	if snap.Lives != g.lives {
		t.Errorf("snapshot lives should match game lives, got %d, want %d", snap.Lives, g.lives)
	}

	g2 := New()
	g2.Reset(cfg)
	g2.ApplySnapshot(snap)

	snap2 := g2.Snapshot()
	if snap.Hash() != snap2.Hash() {
		t.Errorf("snapshot hash should match after apply, got %d, want %d", snap2.Hash(), snap.Hash())
	}
}

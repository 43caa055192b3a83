package breakout

import (
	"fmt"

	"github.com/ilyakarev/breakout/internal/config"
	"github.com/ilyakarev/breakout/internal/core"
	"github.com/ilyakarev/breakout/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	LaserChar   = '|'
	BorderHoriz = '─'
)

// Brick glyphs cycle by row
var BrickGlyphs = []rune{'█', '▓', '▒', '░', '#', '+', '*', '='}

// Hard brick glyph (while above 1 HP)
const HardBrickGlyph = '▓'

// Solid brick glyph
const SolidBrickGlyph = '█'

// Game states
const (
	StateMenu     = "menu"     // Title screen, waiting for start
	StatePlaying  = "playing"  // Simulation running (a stuck ball waits for fire)
	StatePaused   = "paused"   // No entity updates
	StateGameOver = "gameover" // No lives left
	StateVictory  = "victory"  // All levels cleared (campaign only)
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through levels, victory at end
	ModeEndless                  // Levels cycle forever, score until game over
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel stores a 1-indexed starting level set via CLI (0 = first level)
var startLevel int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartLevel sets the 1-indexed starting level. Out-of-range values
// are ignored and the game starts from the first level.
func SetStartLevel(level int) {
	startLevel = level
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the Breakout simulation.
type Game struct {
	mode GameMode

	// Entities
	paddle *Paddle
	balls  []*Ball
	lasers []*Laser
	level  *Level

	// Power-up system
	powerups *PowerUpManager

	// Session state
	state           string
	score           int
	lives           int
	combo           int // Score multiplier, grows per destroyed brick, resets on life loss
	laserAmmo       int
	levelIndex      int
	tickCount       int
	bricksTotal     int   // Total bricks at level start
	levelCleared    bool  // Set when a hit this tick cleared the level; stops further resolution
	endlessCycle    int   // Times the level list has wrapped (endless mode)
	basePaddleWidth int   // Paddle width before size effects
	ballSpeed       Fixed // Nominal launch speed
	speedScale      int   // Percent applied to ball velocity, 100 = normal
	speedCap        Fixed // Per-axis velocity clamp, raised per cleared level

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.BreakoutConfig
	difficulty *config.DifficultyManager
	cfgErr     error

	// Layout (computed from screen size)
	brickAreaTop   int
	brickHeight    int
	brickWidth     int
	paddleY        int
	minScreenW     int
	minScreenH     int
	screenTooSmall bool

	// Events emitted during the current tick
	events []core.Event
}

// New creates a new Breakout game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new Breakout game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "breakout_endless"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Breakout (Endless)"
	}
	return "Breakout"
}

// ConfigError reports a configuration problem detected during Reset.
// The platform surfaces it at startup; the simulation refuses to tick
// while it is non-nil.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Reset initializes or restarts the game and enters the menu state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	// Reject malformed configuration before any tick runs
	g.cfgErr = cfg.Validate()
	if g.cfgErr == nil {
		for _, level := range BuiltinLevels() {
			if err := level.Validate(20); err != nil {
				g.cfgErr = err
				break
			}
		}
	}

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.calculateLayout()

	g.minScreenW = 30
	g.minScreenH = 15
	g.screenTooSmall = g.runtime.ScreenW < g.minScreenW || g.runtime.ScreenH < g.minScreenH

	puCfg, err := ResolvePowerUpConfig(cfg.PowerUps, g.runtime.TickRate)
	if err != nil && g.cfgErr == nil {
		g.cfgErr = err
	}
	g.powerups = NewPowerUpManager(g.runtime.Seed, puCfg)

	g.resetSession()
}

// resetSession restores score, lives, grid, and effects to initial values
// and returns to the menu.
func (g *Game) resetSession() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.combo = 1
	g.laserAmmo = 0
	g.levelIndex = 0
	if startLevel > 0 && startLevel <= LevelCount() {
		g.levelIndex = startLevel - 1
	}
	g.tickCount = 0
	g.endlessCycle = 0
	g.basePaddleWidth = g.cfg.Paddle.Width
	g.ballSpeed = Fixed(g.cfg.Physics.BallSpeed)
	g.speedScale = 100
	g.speedCap = Fixed(g.cfg.Physics.MaxBallSpeed)

	g.powerups.Reset(g.runtime.Seed)
	g.lasers = g.lasers[:0]

	g.loadLevel(g.levelIndex)

	g.paddle = &Paddle{
		X:     ToFixed((g.runtime.ScreenW - g.cfg.Paddle.Width) / 2),
		Y:     g.paddleY,
		Width: g.cfg.Paddle.Width,
	}

	g.balls = make([]*Ball, 0, 8)
	g.placeBallOnPaddle()
	g.state = StateMenu
}

// calculateLayout computes brick and paddle positions based on screen size.
func (g *Game) calculateLayout() {
	// HUD takes top 2 rows
	g.brickAreaTop = 2

	g.brickHeight = 1
	g.brickWidth = g.runtime.ScreenW / 20 // 20 columns of bricks
	if g.brickWidth < 2 {
		g.brickWidth = 2
	}

	// Paddle at bottom, one row of ball clearance below
	g.paddleY = g.runtime.ScreenH - 3
}

// loadLevel loads a level by index.
func (g *Game) loadLevel(index int) {
	g.level = GetLevel(index)
	g.bricksTotal = g.level.CountAlive()
}

// placeBallOnPaddle creates a new stuck ball on the paddle.
func (g *Game) placeBallOnPaddle() {
	g.balls = append(g.balls, &Ball{
		X:      g.paddle.CenterX(),
		Y:      ToFixed(g.paddle.Y - 1),
		Radius: Fixed(g.cfg.Physics.BallRadius),
		Stuck:  true,
		Active: true,
	})
}

// launchSpeed returns the current launch speed with difficulty scaling.
func (g *Game) launchSpeed() Fixed {
	scaled := g.difficulty.Speed(float64(g.ballSpeed), g.score, g.tickCount)
	return ClampFixed(Fixed(scaled), g.ballSpeed, g.speedCap)
}

// launchStuckBalls releases every stuck ball upward.
func (g *Game) launchStuckBalls() {
	speed := g.launchSpeed()
	for _, ball := range g.balls {
		if ball.Stuck && ball.Active {
			ball.VX = speed / 4
			ball.VY = -speed
			ball.Stuck = false
		}
	}
}

func (g *Game) countActiveBalls() int {
	count := 0
	for _, ball := range g.balls {
		if ball.Active {
			count++
		}
	}
	return count
}

func (g *Game) countStuckBalls() int {
	count := 0
	for _, ball := range g.balls {
		if ball.Active && ball.Stuck {
			count++
		}
	}
	return count
}

// emit appends an event to the current tick's event stream.
func (g *Game) emit(kind core.EventKind, x, y, value int) {
	g.events = append(g.events, core.Event{Kind: kind, X: x, Y: y, Value: value})
}

// result packages the current state with this tick's events.
func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.cfgErr != nil || g.screenTooSmall {
		return g.result()
	}

	switch g.state {
	case StateMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.state = StatePlaying
		}
		return g.result()

	case StateGameOver, StateVictory:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.resetSession()
		}
		return g.result()

	case StatePaused:
		if in.Has(core.ActionPause) {
			g.state = StatePlaying
		}
		return g.result()
	}

	// Playing
	if in.Has(core.ActionPause) {
		g.state = StatePaused
		return g.result()
	}

	g.tickCount++
	g.levelCleared = false

	// Expire power-up effects and revert their modifiers
	for _, effectType := range g.powerups.ExpireEffects(g.tickCount) {
		g.onEffectExpired(effectType)
	}

	g.updatePaddle(in)

	// Stuck balls track the paddle until released
	for _, ball := range g.balls {
		if ball.Active && ball.Stuck {
			ball.X = g.paddle.CenterX()
			ball.Y = ToFixed(g.paddle.Y - 1)
		}
	}

	if in.Has(core.ActionFire) {
		g.launchStuckBalls()
		g.fireLaser()
	}

	g.updateBalls()
	g.updateLasers()

	// Falling pickups resolve last, after ball and laser collisions
	g.powerups.Update(g.runtime.ScreenH)
	if collected := g.powerups.CheckPaddleCollision(g.paddle); collected >= 0 {
		g.emit(core.EventPowerupCollected, g.paddle.CellX(), g.paddle.Y, int(collected))
		g.activatePickup(collected)
	}

	return g.result()
}

// updatePaddle handles paddle movement from keys or an absolute pointer.
func (g *Game) updatePaddle(in core.InputFrame) {
	if in.PointerX >= 0 {
		// Center the paddle under the pointer
		g.paddle.X = ToFixed(in.PointerX) - ToFixed(g.paddle.Width).Div(2)
	} else {
		speed := Fixed(g.cfg.Physics.PaddleSpeed)
		if in.Has(core.ActionLeft) {
			g.paddle.X = g.paddle.X.Sub(speed)
		}
		if in.Has(core.ActionRight) {
			g.paddle.X = g.paddle.X.Add(speed)
		}
	}

	minX := ToFixed(1)
	maxX := ToFixed(g.runtime.ScreenW - g.paddle.Width - 1)
	g.paddle.X = ClampFixed(g.paddle.X, minX, maxX)
}

// fireLaser spawns a projectile from the paddle center while the laser
// effect is active and ammunition remains.
func (g *Game) fireLaser() {
	if !g.powerups.HasEffect(EffectLaser) || g.laserAmmo <= 0 {
		return
	}

	g.laserAmmo--
	g.lasers = append(g.lasers, &Laser{
		X:      g.paddle.CenterX(),
		Y:      ToFixed(g.paddle.Y - 1),
		VY:     -ToFixed(1) / 2, // Half a cell per tick, upward
		Active: true,
	})
}

// updateLasers moves projectiles and resolves brick hits. A laser is
// consumed on any hit or on leaving the top of the playfield.
func (g *Game) updateLasers() {
	active := g.lasers[:0]
	for _, laser := range g.lasers {
		if !laser.Active {
			continue
		}

		laser.Move()
		if laser.Y < ToFixed(2) {
			continue
		}

		row, col := FindLaserHit(laser, g.level, g.brickAreaTop, g.brickHeight, g.brickWidth)
		if row >= 0 {
			g.hitBrick(&g.level.Bricks[row][col], row, col)
			if g.levelCleared {
				// The level swap already dropped the in-flight lasers;
				// writing back the stale slice would resurrect them
				return
			}
			continue
		}

		active = append(active, laser)
	}
	g.lasers = active
}

// updateBalls moves every ball and resolves collisions in fixed order:
// walls first, then paddle, then at most one brick per ball.
func (g *Game) updateBalls() {
	isSticky := g.powerups.HasEffect(EffectSticky)

	for _, ball := range g.balls {
		if !ball.Active || ball.Stuck {
			continue
		}

		// Clamp then move; the slow effect scales displacement without
		// touching the stored velocity, so expiry reverts exactly
		ball.ClampSpeed(g.speedCap)
		ball.X = ball.X.Add(ball.VX.Mul(g.speedScale).Div(100))
		ball.Y = ball.Y.Add(ball.VY.Mul(g.speedScale).Div(100))

		// Walls take precedence over bricks so a cornered ball cannot
		// escape the playfield
		side, fellOff := CheckWallCollision(ball, g.runtime.ScreenW, g.runtime.ScreenH)
		if fellOff {
			ball.Active = false
			continue
		}
		if side != CollisionNone {
			ApplyCollisionBounce(ball, side)
		}

		if CheckPaddleCollision(ball, g.paddle, g.launchSpeed()) {
			if isSticky {
				ball.Stuck = true
				ball.VX = 0
				ball.VY = 0
				ball.X = g.paddle.CenterX()
				ball.Y = ToFixed(g.paddle.Y - 1)
			}
			continue
		}

		// At most one brick per ball per tick
		row, col, brickSide := FindBrickHit(ball, g.level, g.brickAreaTop, g.brickHeight, g.brickWidth)
		if brickSide != CollisionNone && row >= 0 {
			g.hitBrick(&g.level.Bricks[row][col], row, col)
			if g.levelCleared {
				// The remaining balls belong to the cleared level and must
				// not resolve against the freshly loaded grid
				return
			}
			ApplyCollisionBounce(ball, brickSide)
		}
	}

	if g.countActiveBalls() == 0 {
		g.handleLifeLost()
	}
}

// hitBrick decrements a brick's hit points. Solid bricks absorb hits;
// destroyed bricks award combo-scaled points and may drop a pickup.
func (g *Game) hitBrick(brick *Brick, row, col int) {
	if brick.Type == BrickSolid || !brick.Alive {
		return
	}

	brick.HP--
	if brick.HP > 0 {
		return
	}

	brick.Alive = false
	points := brick.Points * g.combo
	g.score += points
	g.combo++

	brickCenterX := col*g.brickWidth + g.brickWidth/2
	brickCenterY := g.brickAreaTop + row*g.brickHeight
	g.emit(core.EventBrickDestroyed, brickCenterX, brickCenterY, points)

	g.powerups.TrySpawnPickup(brickCenterX, brickCenterY)

	if g.level.CountAlive() == 0 {
		g.handleLevelClear()
	}
}

// activatePickup applies a collected pickup by kind.
func (g *Game) activatePickup(pickupType PickupType) {
	duration := g.powerups.Config.DurationTicks

	switch pickupType {
	case PickupMultiball:
		g.spawnMultiball()

	case PickupLargePaddle:
		g.powerups.AddEffect(EffectLargePaddle, g.tickCount, duration)
		g.powerups.RemoveEffect(EffectSmallPaddle) // Mutually exclusive
		g.applyPaddleWidth()

	case PickupSmallPaddle:
		g.powerups.AddEffect(EffectSmallPaddle, g.tickCount, duration)
		g.powerups.RemoveEffect(EffectLargePaddle) // Mutually exclusive
		g.applyPaddleWidth()

	case PickupLaserPaddle:
		g.powerups.AddEffect(EffectLaser, g.tickCount, duration)
		g.laserAmmo = g.powerups.Config.LaserShots

	case PickupStickyPaddle:
		g.powerups.AddEffect(EffectSticky, g.tickCount, duration)

	case PickupExtraLife:
		g.lives++

	case PickupSlowBall:
		g.powerups.AddEffect(EffectSlowBall, g.tickCount, duration)
		g.speedScale = g.cfg.PowerUps.SlowScale
	}
}

// onEffectExpired reverts the modifier belonging to an expired effect.
func (g *Game) onEffectExpired(effectType EffectType) {
	switch effectType {
	case EffectLargePaddle, EffectSmallPaddle:
		g.applyPaddleWidth()
	case EffectSlowBall:
		g.speedScale = 100
	case EffectLaser:
		g.laserAmmo = 0 // Remaining ammunition is forfeited
	case EffectSticky:
		g.launchStuckBalls() // Release any attached ball
	}
}

// applyPaddleWidth recomputes paddle width from the base width and the
// active size effect, clamped to the configured bounds.
func (g *Game) applyPaddleWidth() {
	width := g.basePaddleWidth
	if g.powerups.HasEffect(EffectLargePaddle) {
		width = g.basePaddleWidth * g.cfg.Paddle.LargeScale / 100
	} else if g.powerups.HasEffect(EffectSmallPaddle) {
		width = g.basePaddleWidth * g.cfg.Paddle.SmallScale / 100
	}

	if width < g.cfg.Paddle.MinWidth {
		width = g.cfg.Paddle.MinWidth
	}
	if width > g.cfg.Paddle.MaxWidth {
		width = g.cfg.Paddle.MaxWidth
	}

	g.paddle.Width = width

	maxX := ToFixed(g.runtime.ScreenW - g.paddle.Width - 1)
	g.paddle.X = ClampFixed(g.paddle.X, ToFixed(1), maxX)
}

// spawnMultiball clones the first live ball with its horizontal velocity
// inverted so the pair diverges immediately. A stuck ball counts as live;
// its clone launches with a fresh velocity so the pickup is never wasted.
func (g *Game) spawnMultiball() {
	var source *Ball
	for _, ball := range g.balls {
		if ball.Active && !ball.Stuck {
			source = ball
			break
		}
	}
	if source == nil {
		for _, ball := range g.balls {
			if ball.Active {
				source = ball
				break
			}
		}
	}
	if source == nil {
		return
	}

	vx := -source.VX
	if vx == 0 {
		vx = g.launchSpeed() / 4
	}
	vy := source.VY
	if vy == 0 {
		vy = -g.launchSpeed()
	}

	g.balls = append(g.balls, &Ball{
		X:      source.X,
		Y:      source.Y,
		VX:     vx,
		VY:     vy,
		Radius: source.Radius,
		Active: true,
	})
}

// handleLifeLost runs when every ball has fallen off the screen.
// All effects are cleared and their modifiers reverted; the combo resets.
func (g *Game) handleLifeLost() {
	g.lives--
	g.combo = 1
	g.emit(core.EventLifeLost, 0, 0, g.lives)

	g.balls = g.balls[:0]
	g.lasers = g.lasers[:0]
	g.laserAmmo = 0
	g.speedScale = 100
	g.powerups.Pickups = g.powerups.Pickups[:0]
	g.powerups.Effects = g.powerups.Effects[:0]
	g.paddle.Width = g.basePaddleWidth

	if g.lives <= 0 {
		g.state = StateGameOver
		g.emit(core.EventGameOver, 0, 0, g.score)
		return
	}

	g.placeBallOnPaddle()
}

// handleLevelClear advances to the next level or ends the campaign.
// The speed cap only ever rises with level progress.
func (g *Game) handleLevelClear() {
	g.levelCleared = true
	g.levelIndex++
	g.speedCap = g.speedCap.Add(Fixed(g.cfg.Physics.LevelSpeedRamp))

	if g.mode == ModeCampaign && g.levelIndex >= LevelCount() {
		g.state = StateVictory
		g.emit(core.EventVictory, 0, 0, g.score)
		return
	}

	if g.levelIndex >= LevelCount() {
		g.levelIndex = 0
		g.endlessCycle++
	}

	g.emit(core.EventLevelCleared, 0, 0, g.levelIndex)

	g.loadLevel(g.levelIndex)

	// Pickups vanish with the old level; timed effects carry over
	g.powerups.Pickups = g.powerups.Pickups[:0]
	g.lasers = g.lasers[:0]

	g.balls = g.balls[:0]
	g.placeBallOnPaddle()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.cfgErr != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Configuration error")
		dst.DrawTextCentered(dst.Height()/2+1, g.cfgErr.Error())
		return
	}

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	if g.state == StateMenu {
		g.renderMenu(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBricks(dst)
	g.renderPickups(dst)
	g.renderLasers(dst)
	g.renderPaddle(dst)
	g.renderBalls(dst)
	g.renderOverlay(dst)
}

// renderMenu draws the title screen.
func (g *Game) renderMenu(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-3, g.Title(), core.ColorCyan)
	dst.DrawTextCentered(mid-1, "←/→ or mouse to move, SPACE to launch")
	dst.DrawTextCentered(mid, "P pauses, R restarts")
	dst.DrawTextCenteredColored(mid+2, "Press ENTER to start", core.ColorYellow)
}

// renderHUD draws score, lives, combo, level, and active effects.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	if g.combo > 1 {
		scoreText += fmt.Sprintf("  x%d", g.combo)
	}
	dst.DrawText(1, 0, scoreText)

	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", g.endlessCycle*LevelCount()+g.levelIndex+1)
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", g.levelIndex+1, LevelCount())
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	effectsStr := g.buildEffectsString()
	if effectsStr != "" {
		dst.DrawTextColored(1, 1, effectsStr, core.ColorGreen)
	} else {
		for x := range dst.Width() {
			dst.Set(x, 1, BorderHoriz)
		}
	}
}

// buildEffectsString creates a compact active-effects display.
func (g *Game) buildEffectsString() string {
	if len(g.powerups.Effects) == 0 {
		return ""
	}

	result := ""
	for _, e := range g.powerups.Effects {
		secs := e.TicksRemaining(g.tickCount) / g.runtime.TickRate
		if result != "" {
			result += " "
		}
		result += fmt.Sprintf("%s(%d)", e.Type.String(), secs)
		if e.Type == EffectLaser {
			result += fmt.Sprintf("[%d]", g.laserAmmo)
		}
	}
	return result
}

// renderBricks draws all alive bricks.
func (g *Game) renderBricks(dst *core.Screen) {
	for row := range g.level.Height {
		for col := range g.level.Width {
			brick := g.level.Bricks[row][col]
			if !brick.Alive || brick.Type == BrickEmpty {
				continue
			}

			screenY := g.brickAreaTop + row*g.brickHeight
			screenX := col * g.brickWidth

			var glyph rune
			switch brick.Type {
			case BrickHard:
				if brick.HP > 1 {
					glyph = HardBrickGlyph
				} else {
					glyph = BrickGlyphs[row%len(BrickGlyphs)]
				}
			case BrickSolid:
				glyph = SolidBrickGlyph
			default:
				glyph = BrickGlyphs[row%len(BrickGlyphs)]
			}

			for dx := range g.brickWidth {
				if screenX+dx < dst.Width() && screenY < dst.Height() {
					dst.SetColored(screenX+dx, screenY, glyph, brick.Color)
				}
			}
		}
	}
}

// renderPickups draws falling power-ups.
func (g *Game) renderPickups(dst *core.Screen) {
	for _, pickup := range g.powerups.Pickups {
		if !pickup.Active {
			continue
		}

		x := pickup.CellX()
		y := pickup.CellY()
		if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
			dst.SetColored(x, y, pickup.Type.Glyph(), core.ColorMagenta)
		}
	}
}

// renderLasers draws projectiles.
func (g *Game) renderLasers(dst *core.Screen) {
	for _, laser := range g.lasers {
		if !laser.Active {
			continue
		}

		x := laser.X.ToCell()
		y := laser.Y.ToCell()
		if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
			dst.SetColored(x, y, LaserChar, core.ColorRed)
		}
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	paddleX := g.paddle.CellX()
	for i := range g.paddle.Width {
		if paddleX+i < dst.Width() {
			dst.SetColored(paddleX+i, g.paddle.Y, PaddleChar, core.ColorCyan)
		}
	}
}

// renderBalls draws all balls.
func (g *Game) renderBalls(dst *core.Screen) {
	for _, ball := range g.balls {
		if !ball.Active {
			continue
		}

		x := ball.CellX()
		y := ball.CellY()
		if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
			dst.SetColored(x, y, BallChar, core.ColorWhite)
		}
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePlaying:
		if g.countStuckBalls() > 0 {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		}

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))

	case StateVictory:
		g.drawCenteredBox(dst, "VICTORY!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.levelIndex + 1,
		GameOver: g.state == StateGameOver || g.state == StateVictory,
		Paused:   g.state == StatePaused,
	}
}

// Register the game modes with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_endless", func() registry.Game {
		return NewEndless()
	})
}

package breakout

// Snapshot contains the complete game state for replay and determinism
// testing. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick            uint64
	PaddleX         int
	PaddleWidth     int
	Score           int
	Lives           int
	Combo           int
	LaserAmmo       int
	LevelIndex      int
	BricksRemaining int
	State           string

	// Game mode and endless tracking
	Mode         int // 0=Campaign, 1=Endless
	EndlessCycle int
	BallSpeed    int // Nominal launch speed (fixed-point)
	SpeedScale   int
	SpeedCap     int

	// Ball state (each ball is 7 ints: X, Y, VX, VY, Radius, Stuck, Active)
	BallCount int
	BallData  []int

	// Laser state (each laser is 3 ints: X, Y, VY)
	LaserCount int
	LaserData  []int

	// Pickup state (each pickup is 5 ints: Type, X, Y, VY, Active)
	PickupCount int
	PickupData  []int

	// Effect state (each effect is 2 ints: Type, UntilTick)
	EffectCount int
	EffectData  []int

	// Brick states (flattened: row*width + col = index)
	// Each brick is 2 ints: Alive, HP
	BrickData []int

	// RNG state for power-up manager
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, g.level.Width*g.level.Height*2)
	for row := range g.level.Height {
		for col := range g.level.Width {
			idx := (row*g.level.Width + col) * 2
			brick := g.level.Bricks[row][col]
			if brick.Alive {
				brickData[idx] = 1
			}
			brickData[idx+1] = brick.HP
		}
	}

	ballData := make([]int, len(g.balls)*7)
	for i, ball := range g.balls {
		idx := i * 7
		ballData[idx] = int(ball.X)
		ballData[idx+1] = int(ball.Y)
		ballData[idx+2] = int(ball.VX)
		ballData[idx+3] = int(ball.VY)
		ballData[idx+4] = int(ball.Radius)
		if ball.Stuck {
			ballData[idx+5] = 1
		}
		if ball.Active {
			ballData[idx+6] = 1
		}
	}

	laserData := make([]int, len(g.lasers)*3)
	for i, laser := range g.lasers {
		idx := i * 3
		laserData[idx] = int(laser.X)
		laserData[idx+1] = int(laser.Y)
		laserData[idx+2] = int(laser.VY)
	}

	pickupData := make([]int, len(g.powerups.Pickups)*5)
	for i, pickup := range g.powerups.Pickups {
		idx := i * 5
		pickupData[idx] = int(pickup.Type)
		pickupData[idx+1] = int(pickup.X)
		pickupData[idx+2] = int(pickup.Y)
		pickupData[idx+3] = int(pickup.VY)
		if pickup.Active {
			pickupData[idx+4] = 1
		}
	}

	effectData := make([]int, len(g.powerups.Effects)*2)
	for i, effect := range g.powerups.Effects {
		idx := i * 2
		effectData[idx] = int(effect.Type)
		effectData[idx+1] = effect.UntilTick
	}

	return Snapshot{
		Tick:            uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		PaddleX:         int(g.paddle.X),
		PaddleWidth:     g.paddle.Width,
		Score:           g.score,
		Lives:           g.lives,
		Combo:           g.combo,
		LaserAmmo:       g.laserAmmo,
		LevelIndex:      g.levelIndex,
		BricksRemaining: g.level.CountAlive(),
		State:           g.state,

		Mode:         int(g.mode),
		EndlessCycle: g.endlessCycle,
		BallSpeed:    int(g.ballSpeed),
		SpeedScale:   g.speedScale,
		SpeedCap:     int(g.speedCap),

		BallCount:   len(g.balls),
		BallData:    ballData,
		LaserCount:  len(g.lasers),
		LaserData:   laserData,
		PickupCount: len(g.powerups.Pickups),
		PickupData:  pickupData,
		EffectCount: len(g.powerups.Effects),
		EffectData:  effectData,

		BrickData: brickData,
		RNGState:  g.powerups.RNG.state,
	}
}

// ApplySnapshot restores game state from a snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.paddle.X = Fixed(snap.PaddleX)
	g.paddle.Width = snap.PaddleWidth
	g.score = snap.Score
	g.lives = snap.Lives
	g.combo = snap.Combo
	g.laserAmmo = snap.LaserAmmo
	g.levelIndex = snap.LevelIndex
	g.state = snap.State

	g.mode = GameMode(snap.Mode)
	g.endlessCycle = snap.EndlessCycle
	g.ballSpeed = Fixed(snap.BallSpeed)
	g.speedScale = snap.SpeedScale
	g.speedCap = Fixed(snap.SpeedCap)

	if g.level != nil && len(snap.BrickData) == g.level.Width*g.level.Height*2 {
		for row := range g.level.Height {
			for col := range g.level.Width {
				idx := (row*g.level.Width + col) * 2
				g.level.Bricks[row][col].Alive = snap.BrickData[idx] == 1
				g.level.Bricks[row][col].HP = snap.BrickData[idx+1]
			}
		}
	}

	g.balls = make([]*Ball, 0, snap.BallCount)
	for i := range snap.BallCount {
		idx := i * 7
		if idx+6 < len(snap.BallData) {
			g.balls = append(g.balls, &Ball{
				X:      Fixed(snap.BallData[idx]),
				Y:      Fixed(snap.BallData[idx+1]),
				VX:     Fixed(snap.BallData[idx+2]),
				VY:     Fixed(snap.BallData[idx+3]),
				Radius: Fixed(snap.BallData[idx+4]),
				Stuck:  snap.BallData[idx+5] == 1,
				Active: snap.BallData[idx+6] == 1,
			})
		}
	}

	g.lasers = make([]*Laser, 0, snap.LaserCount)
	for i := range snap.LaserCount {
		idx := i * 3
		if idx+2 < len(snap.LaserData) {
			g.lasers = append(g.lasers, &Laser{
				X:      Fixed(snap.LaserData[idx]),
				Y:      Fixed(snap.LaserData[idx+1]),
				VY:     Fixed(snap.LaserData[idx+2]),
				Active: true,
			})
		}
	}

	g.powerups.Pickups = make([]*Pickup, 0, snap.PickupCount)
	for i := range snap.PickupCount {
		idx := i * 5
		if idx+4 < len(snap.PickupData) {
			g.powerups.Pickups = append(g.powerups.Pickups, &Pickup{
				Type:   PickupType(snap.PickupData[idx]),
				X:      Fixed(snap.PickupData[idx+1]),
				Y:      Fixed(snap.PickupData[idx+2]),
				VY:     Fixed(snap.PickupData[idx+3]),
				Active: snap.PickupData[idx+4] == 1,
			})
		}
	}

	g.powerups.Effects = make([]*Effect, 0, snap.EffectCount)
	for i := range snap.EffectCount {
		idx := i * 2
		if idx+1 < len(snap.EffectData) {
			g.powerups.Effects = append(g.powerups.Effects, &Effect{
				Type:      EffectType(snap.EffectData[idx]),
				UntilTick: snap.EffectData[idx+1],
			})
		}
	}

	g.powerups.RNG.state = snap.RNGState
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.PaddleX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleWidth)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LaserAmmo)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EndlessCycle)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallSpeed)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpeedScale)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpeedCap)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LaserCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PickupCount)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EffectCount)     //#nosec G115 -- hash computation

	for _, v := range snap.BallData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.LaserData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PickupData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EffectData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState
	return h
}

package breakout

// Fixed-point scale factor: 1 cell = 1000 units.
// This allows for sub-cell precision while maintaining determinism.
const Scale = 1000

// Fixed represents a fixed-point integer (scaled by Scale).
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// ToCell converts fixed-point to cell coordinate (truncated).
func (f Fixed) ToCell() int {
	return int(f) / Scale
}

// ToCellRounded converts fixed-point to nearest cell.
func (f Fixed) ToCellRounded() int {
	if f >= 0 {
		return int(f+Scale/2) / Scale
	}
	return int(f-Scale/2) / Scale
}

// Add adds two fixed-point values.
func (f Fixed) Add(other Fixed) Fixed {
	return f + other
}

// Sub subtracts two fixed-point values.
func (f Fixed) Sub(other Fixed) Fixed {
	return f - other
}

// Mul multiplies fixed-point by an integer.
func (f Fixed) Mul(n int) Fixed {
	return Fixed(int(f) * n)
}

// Div divides fixed-point by an integer.
func (f Fixed) Div(n int) Fixed {
	if n == 0 {
		return 0
	}
	return Fixed(int(f) / n)
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0, or 1.
func (f Fixed) Sign() int {
	if f < 0 {
		return -1
	}
	if f > 0 {
		return 1
	}
	return 0
}

// ClampFixed restricts a value to [minVal, maxVal].
func ClampFixed(val, minVal, maxVal Fixed) Fixed {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// FixedRect is an axis-aligned rectangle in fixed-point units.
type FixedRect struct {
	X, Y, W, H Fixed
}

// Right returns the X coordinate of the right edge.
func (r FixedRect) Right() Fixed {
	return r.X + r.W
}

// Bottom returns the Y coordinate of the bottom edge.
func (r FixedRect) Bottom() Fixed {
	return r.Y + r.H
}

// RectOverlap reports whether two rectangles overlap.
// Touching edges count as overlap.
func RectOverlap(a, b FixedRect) bool {
	return a.X <= b.Right() && a.Right() >= b.X &&
		a.Y <= b.Bottom() && a.Bottom() >= b.Y
}

// CircleRectOverlap reports whether a circle overlaps a rectangle.
// The circle center is clamped to the rectangle bounds and the clamped
// distance is compared to the radius. Touching counts as overlap.
func CircleRectOverlap(cx, cy, radius Fixed, rect FixedRect) bool {
	nearX := ClampFixed(cx, rect.X, rect.Right())
	nearY := ClampFixed(cy, rect.Y, rect.Bottom())

	dx := int64(cx - nearX)
	dy := int64(cy - nearY)
	r := int64(radius)
	return dx*dx+dy*dy <= r*r
}

// Ball represents a ball with fixed-point center coordinates.
type Ball struct {
	X, Y   Fixed // Position (center)
	VX, VY Fixed // Velocity per tick
	Radius Fixed
	Stuck  bool // Whether ball is attached to the paddle
	Active bool // Whether ball is in play (false once it falls off)
}

// CellX returns the ball's X position in cell coordinates.
func (b *Ball) CellX() int {
	return b.X.ToCell()
}

// CellY returns the ball's Y position in cell coordinates.
func (b *Ball) CellY() int {
	return b.Y.ToCell()
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X = b.X.Add(b.VX)
	b.Y = b.Y.Add(b.VY)
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// ClampSpeed limits each velocity component to [-maxSpeed, maxSpeed].
// Run every tick so a corrupted velocity can never grow without bound.
func (b *Ball) ClampSpeed(maxSpeed Fixed) {
	b.VX = ClampFixed(b.VX, -maxSpeed, maxSpeed)
	b.VY = ClampFixed(b.VY, -maxSpeed, maxSpeed)
}

// Paddle represents the player's paddle.
type Paddle struct {
	X     Fixed // Left edge position (fixed-point)
	Y     int   // Cell Y position (fixed row at bottom)
	Width int   // Width in cells
}

// CellX returns paddle's left edge in cell coordinates.
func (p *Paddle) CellX() int {
	return p.X.ToCell()
}

// CenterX returns paddle's center in fixed-point.
func (p *Paddle) CenterX() Fixed {
	return p.X.Add(ToFixed(p.Width).Div(2))
}

// Left returns left edge in fixed-point.
func (p *Paddle) Left() Fixed {
	return p.X
}

// Right returns right edge in fixed-point.
func (p *Paddle) Right() Fixed {
	return p.X.Add(ToFixed(p.Width))
}

// Laser is an upward projectile fired while the laser effect is active.
type Laser struct {
	X, Y   Fixed
	VY     Fixed // Negative (upward)
	Active bool
}

// Move updates laser position.
func (l *Laser) Move() {
	l.Y = l.Y.Add(l.VY)
}

// CollisionSide indicates which face of an object was struck.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// CheckWallCollision checks the ball against the playfield boundaries.
// The ball is clamped back in bounds on a hit so it cannot tunnel out.
// Returns the collision side and whether the ball fell below the screen.
// Walls are resolved before bricks each tick so a ball in a corner pocket
// cannot escape through the boundary.
func CheckWallCollision(ball *Ball, screenW, screenH int) (side CollisionSide, fellOff bool) {
	r := ball.Radius

	// Left wall
	if ball.X-r < ToFixed(1) {
		ball.X = ToFixed(1) + r
		return CollisionLeft, false
	}

	// Right wall
	if ball.X+r >= ToFixed(screenW-1) {
		ball.X = ToFixed(screenW-1) - r
		return CollisionRight, false
	}

	// Ceiling (HUD occupies the top two rows)
	if ball.Y-r < ToFixed(2) {
		ball.Y = ToFixed(2) + r
		return CollisionTop, false
	}

	// Bottom - ball fell off, no reflection
	if ball.Y >= ToFixed(screenH) {
		return CollisionBottom, true
	}

	return CollisionNone, false
}

// maxPaddleDeflect bounds the horizontal component imparted by a paddle hit
// to 75% of the ball speed, so the ball never bounces near-horizontal.
const maxPaddleDeflect = 75

// CheckPaddleCollision checks the ball against the paddle.
// On a hit the ball bounces upward and its horizontal velocity is set
// proportionally to the hit offset from the paddle center: edge hits give
// steep angles, center hits go straight up.
// Returns true if a collision occurred.
func CheckPaddleCollision(ball *Ball, paddle *Paddle, speed Fixed) bool {
	// Ball must be moving downward and at the paddle's Y band
	if ball.VY <= 0 {
		return false
	}

	ballY := ball.Y.ToCell()
	if ballY != paddle.Y && ballY != paddle.Y-1 {
		return false
	}

	if ball.X+ball.Radius < paddle.Left() || ball.X-ball.Radius > paddle.Right() {
		return false
	}

	// Normalize hit offset to [-1000, 1000] across the paddle half-width
	hitOffset := ball.X.Sub(paddle.CenterX())
	halfWidth := ToFixed(paddle.Width).Div(2)
	var normalizedHit Fixed
	if halfWidth > 0 {
		normalizedHit = ClampFixed(hitOffset.Mul(Scale).Div(int(halfWidth)), -Scale, Scale)
	}

	// Bounce upward at full speed
	ball.VY = -speed

	// Horizontal deflection proportional to hit offset, bounded so the
	// vertical component always dominates
	maxVX := speed.Mul(maxPaddleDeflect).Div(100)
	ball.VX = ClampFixed(normalizedHit.Mul(int(speed))/Scale, -maxVX, maxVX)

	// Place ball just above the paddle
	ball.Y = ToFixed(paddle.Y - 1)

	return true
}

// BrickRect returns the playfield rectangle of the brick at (row, col).
func BrickRect(row, col, brickAreaTop, brickHeight, brickWidth int) FixedRect {
	return FixedRect{
		X: ToFixed(col * brickWidth),
		Y: ToFixed(brickAreaTop + row*brickHeight),
		W: ToFixed(brickWidth),
		H: ToFixed(brickHeight),
	}
}

// FindBrickHit scans the grid top-to-bottom, left-to-right and returns the
// first live brick whose rectangle overlaps the ball circle, together with
// the struck face. The fixed scan order makes multi-overlap ticks
// deterministic, and callers resolve at most one brick per ball per tick.
// Returns (-1, -1, CollisionNone) if no brick is hit.
func FindBrickHit(ball *Ball, level *Level, brickAreaTop, brickHeight, brickWidth int) (row, col int, side CollisionSide) {
	for r := range level.Height {
		for c := range level.Width {
			brick := &level.Bricks[r][c]
			if !brick.Alive || brick.Type == BrickEmpty {
				continue
			}

			rect := BrickRect(r, c, brickAreaTop, brickHeight, brickWidth)
			if !CircleRectOverlap(ball.X, ball.Y, ball.Radius, rect) {
				continue
			}

			return r, c, struckFace(ball, rect)
		}
	}
	return -1, -1, CollisionNone
}

// struckFace determines which face of a brick the ball hit by comparing
// penetration depth on each axis: the axis with the smaller penetration is
// the one the ball crossed, so that component reflects.
func struckFace(ball *Ball, rect FixedRect) CollisionSide {
	ballLeft := ball.X - ball.Radius
	ballRight := ball.X + ball.Radius
	ballTop := ball.Y - ball.Radius
	ballBottom := ball.Y + ball.Radius

	penX := minFixed(ballRight, rect.Right()) - maxFixed(ballLeft, rect.X)
	penY := minFixed(ballBottom, rect.Bottom()) - maxFixed(ballTop, rect.Y)

	if penX < penY {
		if ball.X < rect.X+rect.W.Div(2) {
			return CollisionLeft
		}
		return CollisionRight
	}
	if ball.Y < rect.Y+rect.H.Div(2) {
		return CollisionTop
	}
	return CollisionBottom
}

// FindLaserHit scans the grid in the same order as FindBrickHit and returns
// the first live brick containing the laser point, or (-1, -1).
func FindLaserHit(laser *Laser, level *Level, brickAreaTop, brickHeight, brickWidth int) (row, col int) {
	for r := range level.Height {
		for c := range level.Width {
			brick := &level.Bricks[r][c]
			if !brick.Alive || brick.Type == BrickEmpty {
				continue
			}

			rect := BrickRect(r, c, brickAreaTop, brickHeight, brickWidth)
			if laser.X >= rect.X && laser.X <= rect.Right() &&
				laser.Y >= rect.Y && laser.Y <= rect.Bottom() {
				return r, c
			}
		}
	}
	return -1, -1
}

// ApplyCollisionBounce reflects the velocity component matching the struck
// face. Reflection preserves speed: only the sign of one component flips.
func ApplyCollisionBounce(ball *Ball, side CollisionSide) {
	switch side {
	case CollisionTop:
		if ball.VY > 0 {
			ball.BounceY()
		}
	case CollisionBottom:
		if ball.VY < 0 {
			ball.BounceY()
		}
	case CollisionLeft:
		if ball.VX > 0 {
			ball.BounceX()
		}
	case CollisionRight:
		if ball.VX < 0 {
			ball.BounceX()
		}
	}
}

func minFixed(a, b Fixed) Fixed {
	if a < b {
		return a
	}
	return b
}

func maxFixed(a, b Fixed) Fixed {
	if a > b {
		return a
	}
	return b
}

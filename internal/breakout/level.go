// Package breakout implements the Breakout simulation core: paddle, balls,
// brick grid, power-ups, lasers, and the game-state machine that ties them
// together. The package contains pure deterministic logic with no terminal
// or timing dependencies.
package breakout

import (
	"fmt"

	"github.com/ilyakarev/breakout/internal/core"
)

// BrickType represents different types of bricks.
type BrickType int

const (
	BrickEmpty  BrickType = iota // No brick
	BrickNormal                  // Standard brick, destroyed in one hit
	BrickHard                    // Requires 2 hits to destroy
	BrickSolid                   // Indestructible
)

// Brick represents a single brick in the level.
type Brick struct {
	Type   BrickType
	Points int        // Points awarded when destroyed
	Alive  bool       // Whether brick is still present
	HP     int        // Hit points remaining (for hard bricks)
	Color  core.Color // Display color
}

// Level represents a playable level with brick layout.
type Level struct {
	ID     string
	Name   string
	Width  int       // Number of brick columns
	Height int       // Number of brick rows
	Bricks [][]Brick // 2D grid of bricks [row][col]
}

// Clone creates a deep copy of the level (for reset).
func (l *Level) Clone() *Level {
	clone := &Level{
		ID:     l.ID,
		Name:   l.Name,
		Width:  l.Width,
		Height: l.Height,
		Bricks: make([][]Brick, len(l.Bricks)),
	}
	for i, row := range l.Bricks {
		clone.Bricks[i] = make([]Brick, len(row))
		copy(clone.Bricks[i], row)
	}
	return clone
}

// CountAlive returns the number of remaining (alive, destroyable) bricks.
func (l *Level) CountAlive() int {
	count := 0
	for _, row := range l.Bricks {
		for _, b := range row {
			if b.Alive && b.Type != BrickEmpty && b.Type != BrickSolid {
				count++
			}
		}
	}
	return count
}

// Validate rejects layouts the simulation cannot run: ragged rows, no
// destroyable bricks, or a grid wider than the playfield supports.
func (l *Level) Validate(maxCols int) error {
	if l.Height == 0 || l.Width == 0 {
		return fmt.Errorf("level %s: empty layout", l.ID)
	}
	if len(l.Bricks) != l.Height {
		return fmt.Errorf("level %s: row count %d does not match height %d", l.ID, len(l.Bricks), l.Height)
	}
	for row, r := range l.Bricks {
		if len(r) != l.Width {
			return fmt.Errorf("level %s: row %d has %d columns, want %d", l.ID, row, len(r), l.Width)
		}
	}
	if maxCols > 0 && l.Width > maxCols {
		return fmt.Errorf("level %s: %d columns exceed playfield limit %d", l.ID, l.Width, maxCols)
	}
	if l.CountAlive() == 0 {
		return fmt.Errorf("level %s: no destroyable bricks", l.ID)
	}
	return nil
}

// rowColors cycles brick colors per row, classic arcade style.
var rowColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// ParseLevel creates a Level from an ASCII map.
// Characters:
//
//	'#' = normal brick (base points)
//	'.' = empty
//	'1'-'9' = normal brick worth base points * digit
//	'H' = hard brick (2 HP, double points)
//	'X' = solid/indestructible brick (0 points)
//
// Returns an error for any other character so malformed layouts are caught
// before a session starts.
func ParseLevel(id, name string, basePoints int, lines []string) (*Level, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("level %s: empty layout", id)
	}

	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	level := &Level{
		ID:     id,
		Name:   name,
		Width:  maxWidth,
		Height: len(lines),
		Bricks: make([][]Brick, len(lines)),
	}

	for row, line := range lines {
		level.Bricks[row] = make([]Brick, maxWidth)
		color := rowColors[row%len(rowColors)]
		for col := range maxWidth {
			var ch byte = '.'
			if col < len(line) {
				ch = line[col]
			}

			switch {
			case ch == '#':
				level.Bricks[row][col] = Brick{
					Type:   BrickNormal,
					Points: basePoints,
					Alive:  true,
					HP:     1,
					Color:  color,
				}
			case ch >= '1' && ch <= '9':
				level.Bricks[row][col] = Brick{
					Type:   BrickNormal,
					Points: int(ch-'0') * basePoints,
					Alive:  true,
					HP:     1,
					Color:  color,
				}
			case ch == 'H' || ch == 'h':
				level.Bricks[row][col] = Brick{
					Type:   BrickHard,
					Points: basePoints * 2,
					Alive:  true,
					HP:     2,
					Color:  core.ColorGray,
				}
			case ch == 'X' || ch == 'x':
				level.Bricks[row][col] = Brick{
					Type:   BrickSolid,
					Points: 0,
					Alive:  true,
					HP:     999, // Effectively indestructible
					Color:  core.ColorWhite,
				}
			case ch == '.':
				level.Bricks[row][col] = Brick{Type: BrickEmpty}
			default:
				return nil, fmt.Errorf("level %s: unknown brick character %q at row %d col %d", id, ch, row, col)
			}
		}
	}

	return level, nil
}

// mustParse panics on a malformed built-in layout. Built-ins are compile-time
// constants covered by tests, so a panic here is a programming error.
func mustParse(id, name string, basePoints int, lines []string) *Level {
	level, err := ParseLevel(id, name, basePoints, lines)
	if err != nil {
		panic(err)
	}
	return level
}

// BuiltinLevels returns all built-in levels in campaign order.
func BuiltinLevels() []*Level {
	return []*Level{
		// Level 1: Classic wall, hard bricks on the top two rows
		mustParse("classic", "Classic", 10, []string{
			"HHHHHHHHHHHHHHHHHHHH",
			"HHHHHHHHHHHHHHHHHHHH",
			"####################",
			"####################",
			"####################",
			"####################",
		}),

		// Level 2: Pyramid
		mustParse("pyramid", "Pyramid", 10, []string{
			"........####........",
			"......########......",
			"....############....",
			"..################..",
			"####################",
		}),

		// Level 3: Checkerboard
		mustParse("checker", "Checkerboard", 10, []string{
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
			"#.#.#.#.#.#.#.#.#.#.",
			".#.#.#.#.#.#.#.#.#.#",
		}),

		// Level 4: Diamond with a valuable core
		mustParse("diamond", "Diamond", 10, []string{
			".........##.........",
			"........####........",
			".......######.......",
			"......###55###......",
			".....####55####.....",
			"......###55###......",
			".......######.......",
			"........####........",
			".........##.........",
		}),

		// Level 5: Fortress (hard brick shell)
		mustParse("fortress", "Fortress", 10, []string{
			"HHHHHHHHHHHHHHHHHHHH",
			"H..................H",
			"H.################.H",
			"H.###3333333333###.H",
			"H.################.H",
			"H..................H",
			"HHHHHHHHHHHHHHHHHHHH",
		}),

		// Level 6: Striped
		mustParse("striped", "Striped", 10, []string{
			"####################",
			"....................",
			"####################",
			"....................",
			"####################",
			"....................",
			"####################",
		}),

		// Level 7: Castle (solid battlements guard the wall)
		mustParse("castle", "Castle", 10, []string{
			"X..X....X..X....X..X",
			"XXXX....XXXX....XXXX",
			"X..X....X..X....X..X",
			"....................",
			"####################",
			"####################",
			"####################",
			"####################",
		}),

		// Level 8: Final Boss (hard bricks everywhere)
		mustParse("boss", "Final Boss", 10, []string{
			"HHHHHHHHHHHHHHHHHHHH",
			"H##################H",
			"H#HHHHHHHHHHHHHHHH#H",
			"H#H##############H#H",
			"H#HHHHHHHHHHHHHHHH#H",
			"H##################H",
			"HHHHHHHHHHHHHHHHHHHH",
		}),
	}
}

// GetLevelByID returns a fresh copy of a level by its ID.
func GetLevelByID(id string) (*Level, bool) {
	for _, level := range BuiltinLevels() {
		if level.ID == id {
			return level.Clone(), true
		}
	}
	return nil, false
}

// GetLevel returns a level by index (wraps around if index >= len).
func GetLevel(index int) *Level {
	levels := BuiltinLevels()
	return levels[index%len(levels)].Clone()
}

// LevelCount returns the total number of available levels.
func LevelCount() int {
	return len(BuiltinLevels())
}

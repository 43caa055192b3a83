package breakout

import "testing"

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("test", "Test", 10, []string{
		"#3.",
		"HX#",
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if level.Width != 3 || level.Height != 2 {
		t.Errorf("expected 3x2 grid, got %dx%d", level.Width, level.Height)
	}

	normal := level.Bricks[0][0]
	if normal.Type != BrickNormal || normal.Points != 10 || normal.HP != 1 || !normal.Alive {
		t.Errorf("'#' should be a 1-HP normal brick worth 10, got %+v", normal)
	}

	digit := level.Bricks[0][1]
	if digit.Type != BrickNormal || digit.Points != 30 {
		t.Errorf("'3' should be worth 30, got %+v", digit)
	}

	empty := level.Bricks[0][2]
	if empty.Type != BrickEmpty || empty.Alive {
		t.Errorf("'.' should be empty, got %+v", empty)
	}

	hard := level.Bricks[1][0]
	if hard.Type != BrickHard || hard.HP != 2 || hard.Points != 20 {
		t.Errorf("'H' should be a 2-HP brick worth 20, got %+v", hard)
	}

	solid := level.Bricks[1][1]
	if solid.Type != BrickSolid || solid.Points != 0 {
		t.Errorf("'X' should be solid and worthless, got %+v", solid)
	}
}

func TestParseLevelRejectsUnknownChars(t *testing.T) {
	if _, err := ParseLevel("bad", "Bad", 10, []string{"#?#"}); err == nil {
		t.Error("unknown layout characters should be rejected")
	}
	if _, err := ParseLevel("empty", "Empty", 10, nil); err == nil {
		t.Error("empty layouts should be rejected")
	}
}

func TestParseLevelPadsShortRows(t *testing.T) {
	level, err := ParseLevel("ragged", "Ragged", 10, []string{
		"####",
		"##",
	})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if level.Width != 4 {
		t.Fatalf("width should be the longest row, got %d", level.Width)
	}
	if level.Bricks[1][3].Type != BrickEmpty {
		t.Error("short rows should be padded with empty cells")
	}
	if err := level.Validate(20); err != nil {
		t.Errorf("padded level should validate: %v", err)
	}
}

func TestLevelValidate(t *testing.T) {
	// Only solid bricks: unwinnable, reject
	solidOnly, err := ParseLevel("solid", "Solid", 10, []string{"XXX"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if err := solidOnly.Validate(20); err == nil {
		t.Error("a level with no destroyable bricks should fail validation")
	}

	// Wider than the playfield supports
	wide, err := ParseLevel("wide", "Wide", 10, []string{"#########################"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if wide.Validate(20) == nil {
		t.Error("a level wider than the column limit should fail validation")
	}
}

func TestBuiltinLevelsAreValid(t *testing.T) {
	levels := BuiltinLevels()
	if len(levels) == 0 {
		t.Fatal("there should be built-in levels")
	}

	for i, level := range levels {
		if level.Name == "" {
			t.Errorf("level %d should have a name", i)
		}
		if err := level.Validate(20); err != nil {
			t.Errorf("built-in level %d invalid: %v", i, err)
		}
	}
}

func TestLevelClone(t *testing.T) {
	original := GetLevel(0)
	clone := original.Clone()

	clone.Bricks[0][0].Alive = false

	if !original.Bricks[0][0].Alive {
		t.Error("mutating a clone must not touch the original")
	}
}

func TestGetLevelWrapsAround(t *testing.T) {
	first := GetLevel(0)
	wrapped := GetLevel(LevelCount())

	if first.ID != wrapped.ID {
		t.Errorf("index should wrap, got %s and %s", first.ID, wrapped.ID)
	}
}

func TestGetLevelByID(t *testing.T) {
	level, ok := GetLevelByID("classic")
	if !ok || level.ID != "classic" {
		t.Error("classic level should exist")
	}

	if _, ok := GetLevelByID("missing"); ok {
		t.Error("unknown level IDs should not resolve")
	}
}

package core

// EventKind identifies a gameplay event emitted during a simulation tick.
type EventKind int

const (
	EventBrickDestroyed  EventKind = iota // a destroyable brick reached 0 HP
	EventPowerupCollected                 // the paddle caught a falling drop
	EventLifeLost                         // all balls left the screen
	EventLevelCleared                     // a level's bricks are gone, more levels remain
	EventGameOver                         // last life lost
	EventVictory                          // final level cleared
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBrickDestroyed:
		return "BrickDestroyed"
	case EventPowerupCollected:
		return "PowerupCollected"
	case EventLifeLost:
		return "LifeLost"
	case EventLevelCleared:
		return "LevelCleared"
	case EventGameOver:
		return "GameOver"
	case EventVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// Event is a single gameplay occurrence, emitted in resolution order within
// a tick and consumed by downstream audio/score-display collaborators.
// X and Y are cell coordinates where that makes sense (brick hits, pickup
// collection); Value carries awarded points for BrickDestroyed and the
// pickup kind for PowerupCollected.
type Event struct {
	Kind  EventKind
	X, Y  int
	Value int
}

package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the summary the platform reads after every tick.
type GameState struct {
	Score    int  // Current score
	MaxTile  int  // Highest tile on the board
	GameOver bool // No legal moves remain
	Busy     bool // Directional input is currently dropped
}

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventNewGame EventKind = iota
	EventMove
	EventSpawn
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNewGame:
		return "new_game"
	case EventMove:
		return "move"
	case EventSpawn:
		return "spawn"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by the game for the platform to log or react to.
// Fields irrelevant to a kind are left zero.
type Event struct {
	Kind       EventKind
	Direction  string
	ScoreDelta int
	Value      int
	Row, Col   int
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

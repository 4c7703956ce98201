package t2048

import (
	"fmt"
	"math/rand"
)

// Phase is the GameState state-machine position.
type Phase int

const (
	PhaseIdle      Phase = iota // Waiting for a move
	PhaseAnimating              // A committed move is being animated
	PhaseGameOver               // No legal moves; frozen until NewGame
)

// String returns the phase name used in snapshots and logs.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnimating:
		return "animating"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// spawnTwoProb is the chance a spawned tile is a 2 rather than a 4.
const spawnTwoProb = 0.9

// MoveRecord describes one committed move for the animator.
type MoveRecord struct {
	Direction  Direction
	Tiles      []TileMove
	ScoreDelta int
	Merges     int
}

// SpawnRecord describes a newly placed tile.
type SpawnRecord struct {
	Cell  Cell
	Value int
}

// State owns the grid, score and phase. It is the only thing that mutates
// them; all commands received in the wrong phase are ignored.
type State struct {
	grid  Board
	score int
	phase Phase
	rng   *rand.Rand
}

// NewState creates an empty state drawing spawns from rng.
// Call NewGame before accepting moves.
func NewState(rng *rand.Rand) *State {
	return &State{rng: rng}
}

// Grid returns a copy of the current grid.
func (s *State) Grid() Board {
	return s.grid
}

// Score returns the current score.
func (s *State) Score() int {
	return s.score
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	return s.phase
}

// Idle reports whether the state accepts a move.
func (s *State) Idle() bool {
	return s.phase == PhaseIdle
}

// GameOver reports whether the game has ended.
func (s *State) GameOver() bool {
	return s.phase == PhaseGameOver
}

// NewGame clears the board and score, spawns two tiles and returns to Idle.
// Callable from any phase.
func (s *State) NewGame() []SpawnRecord {
	s.grid = Board{}
	s.score = 0
	s.phase = PhaseIdle

	return []SpawnRecord{s.spawnTile(), s.spawnTile()}
}

// ApplyMove slides the board in dir. It returns false, leaving everything
// untouched, when the state is not Idle, dir is invalid, or the move would
// not change the board. Otherwise the new grid and score are committed
// and the state enters Animating.
func (s *State) ApplyMove(dir Direction) (MoveRecord, bool) {
	if s.phase != PhaseIdle || !dir.Valid() {
		return MoveRecord{}, false
	}

	out := Slide(s.grid, dir)
	if !out.Moved {
		return MoveRecord{}, false
	}

	s.grid = out.Board
	s.score += out.Score
	s.phase = PhaseAnimating

	return MoveRecord{
		Direction:  dir,
		Tiles:      out.Tiles,
		ScoreDelta: out.Score,
		Merges:     out.Merges,
	}, true
}

// CompleteMove finishes an animated move: it spawns one tile and then
// either returns to Idle or, when no move remains, enters GameOver.
// Outside Animating it does nothing and returns false.
func (s *State) CompleteMove() (SpawnRecord, bool) {
	if s.phase != PhaseAnimating {
		return SpawnRecord{}, false
	}

	spawn := s.spawnTile()
	if HasAnyMove(s.grid) {
		s.phase = PhaseIdle
	} else {
		s.phase = PhaseGameOver
	}
	return spawn, true
}

// spawnTile places a 2 (90%) or 4 (10%) in a uniformly chosen empty cell.
// A committed move always frees a cell, so a full board here is a bug.
func (s *State) spawnTile() SpawnRecord {
	empty := EmptyCells(s.grid)
	if len(empty) == 0 {
		panic(fmt.Sprintf("t2048: spawn on full board %v", s.grid))
	}

	cell := empty[s.rng.Intn(len(empty))]
	value := 2
	if s.rng.Float64() >= spawnTwoProb {
		value = 4
	}

	s.grid[cell.Row][cell.Col] = value
	return SpawnRecord{Cell: cell, Value: value}
}

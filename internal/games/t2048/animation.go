package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// done absorbs float drift so five steps of 0.2 count as complete.
const done = 1 - 1e-9

// TileAnimation is one tile sliding from its source to its destination.
type TileAnimation struct {
	Move     TileMove
	Progress float64 // 0.0 → 1.0
}

// Position returns the interpolated cell coordinates of the tile.
func (a TileAnimation) Position() (row, col float64) {
	row = core.Lerp(float64(a.Move.From.Row), float64(a.Move.To.Row), a.Progress)
	col = core.Lerp(float64(a.Move.From.Col), float64(a.Move.To.Col), a.Progress)
	return row, col
}

// SpawnAnimation is a freshly placed tile growing from 0 to full size.
type SpawnAnimation struct {
	Spawn SpawnRecord
	Scale float64 // 0.0 → 1.0
}

// Animator drains pending slide and spawn animations one tick at a time.
// It reads the State and calls back into it once per finished slide set.
type Animator struct {
	state      *State
	slideStep  float64
	scaleStep  float64
	slides     []TileAnimation
	spawns     []SpawnAnimation
	inProgress bool // A move was started and CompleteMove is still owed
}

// NewAnimator creates an animator bound to state.
func NewAnimator(state *State, cfg config.AnimationConfig) *Animator {
	return &Animator{
		state:     state,
		slideStep: cfg.SlideStep,
		scaleStep: cfg.SpawnScaleStep,
	}
}

// Start queues the slides of a committed move.
func (a *Animator) Start(rec MoveRecord) {
	a.slides = a.slides[:0]
	for _, m := range rec.Tiles {
		a.slides = append(a.slides, TileAnimation{Move: m})
	}
	a.inProgress = true
}

// AddSpawns queues scale-in animations for new tiles.
func (a *Animator) AddSpawns(spawns ...SpawnRecord) {
	for _, sp := range spawns {
		a.spawns = append(a.spawns, SpawnAnimation{Spawn: sp})
	}
}

// Reset drops all pending animation state.
func (a *Animator) Reset() {
	a.slides = a.slides[:0]
	a.spawns = a.spawns[:0]
	a.inProgress = false
}

// Sliding reports whether a move is still animating.
func (a *Animator) Sliding() bool {
	return a.inProgress
}

// Idle reports whether nothing at all is animating.
func (a *Animator) Idle() bool {
	return !a.inProgress && len(a.spawns) == 0
}

// FrameResult reports what a single AdvanceFrame call finished.
type FrameResult struct {
	Completed bool        // The slide set finished and the move was completed
	Spawned   bool        // Completion placed a tile
	Spawn     SpawnRecord // Valid when Spawned
}

// AdvanceFrame moves every animation forward by one tick. When all slides
// reach full progress it clears them and completes the move on the State,
// queueing the resulting spawn.
func (a *Animator) AdvanceFrame() FrameResult {
	a.advanceSpawns()

	if !a.inProgress {
		return FrameResult{}
	}

	finished := true
	for i := range a.slides {
		p := a.slides[i].Progress
		if p < 1 {
			p += a.slideStep
			if p >= done {
				p = 1
			}
			a.slides[i].Progress = p
		}
		if p < 1 {
			finished = false
		}
	}

	if !finished {
		return FrameResult{}
	}

	a.slides = a.slides[:0]
	a.inProgress = false

	res := FrameResult{Completed: true}
	if spawn, ok := a.state.CompleteMove(); ok {
		a.AddSpawns(spawn)
		res.Spawned = true
		res.Spawn = spawn
	}
	return res
}

// advanceSpawns grows spawn tiles and drops the ones at full size.
func (a *Animator) advanceSpawns() {
	kept := a.spawns[:0]
	for _, sp := range a.spawns {
		sp.Scale += a.scaleStep
		if sp.Scale >= done {
			continue
		}
		kept = append(kept, sp)
	}
	a.spawns = kept
}

// Slides returns a copy of the active slide animations.
func (a *Animator) Slides() []TileAnimation {
	return append([]TileAnimation(nil), a.slides...)
}

// Spawns returns a copy of the active spawn animations.
func (a *Animator) Spawns() []SpawnAnimation {
	return append([]SpawnAnimation(nil), a.spawns...)
}

// Frame is the read-only view handed to the renderer each tick.
type Frame struct {
	Grid     Board
	Slides   []TileAnimation
	Spawns   []SpawnAnimation
	Score    int
	GameOver bool
	Phase    Phase
}

// Frame captures the current state for rendering.
func (a *Animator) Frame() Frame {
	return Frame{
		Grid:     a.state.Grid(),
		Slides:   a.Slides(),
		Spawns:   a.Spawns(),
		Score:    a.state.Score(),
		GameOver: a.state.GameOver(),
		Phase:    a.state.Phase(),
	}
}

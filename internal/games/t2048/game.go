package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// Game drives a State with an Animator and an InputAdapter from a fixed-rate
// tick. It holds no timers; the platform calls Step once per frame.
type Game struct {
	cfg   config.Config
	rng   *rand.Rand
	state *State
	anim  *Animator
	input *InputAdapter
	tick  uint64

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	events []core.Event
}

// New creates a game using the given configuration.
// Call Reset before the first Step.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// GameID identifies 2048 results in score storage.
const GameID = "2048"

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return GameID
}

// Reset seeds the RNG from cfg and starts a fresh game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.state = NewState(g.rng)
	g.anim = NewAnimator(g.state, g.cfg.Animation)
	g.input = NewInputAdapter(g.state, g.cfg.Input.SwipeMinDistance)
	g.tick = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.events = g.events[:0]
	g.NewGame()
}

// Resize updates the screen dimensions without touching the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < minScreenW || height < minScreenH
}

// NewGame discards the current game, including any animation in flight.
func (g *Game) NewGame() {
	g.anim.Reset()
	spawns := g.state.NewGame()
	g.anim.AddSpawns(spawns...)

	g.events = append(g.events, core.Event{Kind: core.EventNewGame})
	for _, sp := range spawns {
		g.events = append(g.events, spawnEvent(sp))
	}
}

// Step advances the game by one tick: input first, then animation.
// Events raised since the previous Step, including by Reset, are returned.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.NewGame()
	} else if !g.tooSmall {
		g.handleMove(in)
	}

	res := g.anim.AdvanceFrame()
	if res.Spawned {
		g.events = append(g.events, spawnEvent(res.Spawn))
	}
	if res.Completed && g.state.GameOver() {
		g.events = append(g.events, core.Event{Kind: core.EventGameOver})
	}

	result := core.StepResult{
		State:  g.State(),
		Events: append([]core.Event(nil), g.events...),
	}
	g.events = g.events[:0]
	return result
}

// handleMove applies at most one move per tick; the Animating phase
// rejects anything after the first accepted direction.
func (g *Game) handleMove(in core.InputFrame) {
	dir, ok := g.input.Next(in)
	if !ok {
		return
	}

	rec, moved := g.state.ApplyMove(dir)
	if !moved {
		return
	}

	g.anim.Start(rec)
	g.events = append(g.events, core.Event{
		Kind:       core.EventMove,
		Direction:  dir.String(),
		ScoreDelta: rec.ScoreDelta,
	})
}

// State returns the summary the platform reads after every tick.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		MaxTile:  MaxTile(g.state.Grid()),
		GameOver: g.state.GameOver(),
		Busy:     !g.state.Idle(),
	}
}

// Frame returns the renderer's view of the current tick.
func (g *Game) Frame() Frame {
	return g.anim.Frame()
}

func spawnEvent(sp SpawnRecord) core.Event {
	return core.Event{
		Kind:  core.EventSpawn,
		Value: sp.Value,
		Row:   sp.Cell.Row,
		Col:   sp.Cell.Col,
	}
}

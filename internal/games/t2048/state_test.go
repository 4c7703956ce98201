package t2048

import (
	"math/rand"
	"testing"
)

func newTestState(seed int64) *State {
	s := NewState(rand.New(rand.NewSource(seed)))
	s.NewGame()
	return s
}

// lastMoveBoard leaves exactly one empty cell after sliding left, and no
// legal move whatever value spawns there.
var lastMoveBoard = Board{
	{2, 4, 2, 4},
	{4, 2, 4, 2},
	{2, 4, 2, 8},
	{0, 8, 16, 32},
}

func countTiles(b Board) int {
	n := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewGameSpawnsTwoTiles(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s := NewState(rand.New(rand.NewSource(seed)))
		spawns := s.NewGame()

		grid := s.Grid()
		if n := countTiles(grid); n != 2 {
			t.Fatalf("seed %d: NewGame placed %d tiles, want 2", seed, n)
		}
		if len(spawns) != 2 || spawns[0].Cell == spawns[1].Cell {
			t.Fatalf("seed %d: spawns = %+v, want two distinct cells", seed, spawns)
		}
		for _, sp := range spawns {
			if sp.Value != 2 && sp.Value != 4 {
				t.Fatalf("seed %d: spawned %d, want 2 or 4", seed, sp.Value)
			}
			if grid[sp.Cell.Row][sp.Cell.Col] != sp.Value {
				t.Fatalf("seed %d: spawn %+v not on grid", seed, sp)
			}
		}
		if s.Score() != 0 || s.Phase() != PhaseIdle {
			t.Fatalf("seed %d: score %d phase %s, want 0 idle", seed, s.Score(), s.Phase())
		}
	}
}

func TestNewGameFromAnyPhase(t *testing.T) {
	s := newTestState(1)
	s.grid = lastMoveBoard
	if _, ok := s.ApplyMove(DirLeft); !ok {
		t.Fatal("setup move rejected")
	}
	if s.Phase() != PhaseAnimating {
		t.Fatalf("phase = %s, want animating", s.Phase())
	}

	s.NewGame()
	if s.Phase() != PhaseIdle || s.Score() != 0 || countTiles(s.Grid()) != 2 {
		t.Errorf("NewGame mid-animation: phase %s score %d tiles %d", s.Phase(), s.Score(), countTiles(s.Grid()))
	}
}

func TestApplyMoveCommits(t *testing.T) {
	s := newTestState(2)
	s.grid = Board{
		{2, 2, 0, 0},
		{0, 0, 0, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	rec, ok := s.ApplyMove(DirLeft)
	if !ok {
		t.Fatal("ApplyMove(left) rejected")
	}

	want := Board{
		{4, 0, 0, 0},
		{4, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if s.Grid() != want {
		t.Errorf("grid = %v, want %v", s.Grid(), want)
	}
	if s.Score() != 4 || rec.ScoreDelta != 4 || rec.Merges != 1 {
		t.Errorf("score %d delta %d merges %d, want 4 4 1", s.Score(), rec.ScoreDelta, rec.Merges)
	}
	if rec.Direction != DirLeft || len(rec.Tiles) != 3 {
		t.Errorf("record = %+v", rec)
	}
	if s.Phase() != PhaseAnimating {
		t.Errorf("phase = %s, want animating", s.Phase())
	}
}

func TestApplyMoveNoChange(t *testing.T) {
	s := newTestState(3)
	s.grid = Board{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	before := s.Grid()

	if _, ok := s.ApplyMove(DirLeft); ok {
		t.Error("ApplyMove should reject a move that changes nothing")
	}
	if s.Grid() != before || s.Score() != 0 || s.Phase() != PhaseIdle {
		t.Error("rejected move must leave state untouched")
	}
}

func TestApplyMoveRejectedWhileAnimating(t *testing.T) {
	s := newTestState(4)
	s.grid = Board{{2, 0, 0, 2}}

	if _, ok := s.ApplyMove(DirLeft); !ok {
		t.Fatal("first move rejected")
	}
	afterFirst := s.Grid()

	if _, ok := s.ApplyMove(DirRight); ok {
		t.Error("second move accepted while animating")
	}
	if s.Grid() != afterFirst || s.Score() != 4 {
		t.Error("rejected move mutated state")
	}
}

func TestApplyMoveInvalidDirection(t *testing.T) {
	s := newTestState(5)
	before := s.Grid()

	if _, ok := s.ApplyMove(Direction(42)); ok {
		t.Error("invalid direction accepted")
	}
	if s.Grid() != before || s.Phase() != PhaseIdle {
		t.Error("invalid direction mutated state")
	}
}

func TestCompleteMoveSpawns(t *testing.T) {
	s := newTestState(6)
	s.grid = Board{
		{2, 2, 4, 0},
		{0, 0, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
	}
	before := Sum(s.Grid())

	rec, ok := s.ApplyMove(DirLeft)
	if !ok {
		t.Fatal("move rejected")
	}
	if Sum(s.Grid()) != before {
		t.Fatal("move changed tile sum before spawn")
	}

	spawn, ok := s.CompleteMove()
	if !ok {
		t.Fatal("CompleteMove returned false while animating")
	}
	if Sum(s.Grid()) != before+spawn.Value {
		t.Errorf("sum after spawn = %d, want %d", Sum(s.Grid()), before+spawn.Value)
	}
	if s.Score() != rec.ScoreDelta {
		t.Errorf("score = %d, want %d", s.Score(), rec.ScoreDelta)
	}
	if s.Phase() != PhaseIdle {
		t.Errorf("phase = %s, want idle", s.Phase())
	}

	if _, ok := s.CompleteMove(); ok {
		t.Error("CompleteMove outside animating should do nothing")
	}
}

func TestGameOverFreezesState(t *testing.T) {
	s := newTestState(7)
	s.grid = lastMoveBoard

	if _, ok := s.ApplyMove(DirLeft); !ok {
		t.Fatal("final move rejected")
	}
	if _, ok := s.CompleteMove(); !ok {
		t.Fatal("CompleteMove failed")
	}
	if !s.GameOver() {
		t.Fatalf("phase = %s, want game_over", s.Phase())
	}

	grid, score := s.Grid(), s.Score()
	for _, dir := range Directions {
		if _, ok := s.ApplyMove(dir); ok {
			t.Errorf("ApplyMove(%s) accepted after game over", dir)
		}
	}
	if s.Grid() != grid || s.Score() != score {
		t.Error("game over state changed")
	}

	s.NewGame()
	if !s.Idle() {
		t.Error("NewGame should leave game over")
	}
}

func TestSpawnOnFullBoardPanics(t *testing.T) {
	s := newTestState(8)
	s.grid = lastMoveBoard
	s.grid[3][0] = 64

	defer func() {
		if recover() == nil {
			t.Error("spawnTile on a full board should panic")
		}
	}()
	s.spawnTile()
}

func TestSpawnDistribution(t *testing.T) {
	s := NewState(rand.New(rand.NewSource(42)))

	fours, total := 0, 0
	for range 5000 {
		for _, sp := range s.NewGame() {
			total++
			if sp.Value == 4 {
				fours++
			}
		}
	}

	ratio := float64(fours) / float64(total)
	if ratio < 0.08 || ratio > 0.12 {
		t.Errorf("fraction of 4s = %.3f, want about 0.1", ratio)
	}
}

func TestStateDeterminism(t *testing.T) {
	play := func() (Board, int) {
		s := newTestState(12345)
		for i := range 200 {
			dir := Directions[i%len(Directions)]
			if _, ok := s.ApplyMove(dir); ok {
				s.CompleteMove()
			}
			if s.GameOver() {
				break
			}
		}
		return s.Grid(), s.Score()
	}

	g1, s1 := play()
	g2, s2 := play()
	if g1 != g2 || s1 != s2 {
		t.Errorf("same seed diverged: %v/%d vs %v/%d", g1, s1, g2, s2)
	}
}

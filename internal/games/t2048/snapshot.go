package t2048

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Score         int
	Board         Board
	MaxTile       int
	Phase         string
	Sliding       bool // A move animation is in flight
	PendingSpawns int  // Spawn tiles still scaling in
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:          g.tick,
		Score:         g.state.Score(),
		Board:         g.state.Grid(),
		MaxTile:       MaxTile(g.state.Grid()),
		Phase:         g.state.Phase().String(),
		Sliding:       g.anim.Sliding(),
		PendingSpawns: len(g.anim.Spawns()),
	}
}

package numblast

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Phase    string
	Score    int
	Combo    int
	Level    int
	TimeLeft int
	Settling bool
	Pending  int     // Scheduled tasks still queued
	Cells    []int8  // Row-major board copy, -1 for empty
	PowerUp  *string // Pending power-up name, nil if none
}

// Snapshot returns the current session snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	cells := make([]int8, len(g.grid.cells))
	copy(cells, g.grid.cells)

	var powerUp *string
	if g.powerUp != nil {
		name := g.powerUp.Type.String()
		powerUp = &name
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Phase:    g.phase.String(),
		Score:    g.score,
		Combo:    g.combo,
		Level:    g.level,
		TimeLeft: g.timeLeft,
		Settling: g.settling,
		Pending:  g.sched.pending(),
		Cells:    cells,
		PowerUp:  powerUp,
	}
}

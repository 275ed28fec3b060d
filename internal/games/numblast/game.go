// Package numblast implements the digit-blast puzzle: click connected groups
// of equal digits to destroy them, chain combos, level up and race the clock.
// The package is pure game logic driven by fixed ticks; rendering and input
// mapping live in the platform layer.
package numblast

import (
	"math/rand"

	"github.com/mkarpenko/numblast/internal/config"
	"github.com/mkarpenko/numblast/internal/core"
	"github.com/mkarpenko/numblast/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // Timed round, game over at zero
	ModeZen     Mode = "zen"     // No countdown, play until quit
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle    Phase = iota // Before the first Reset
	PhasePlaying              // Countdown running, input live
	PhasePaused               // Countdown suspended, input disabled
	PhaseEnded                // Timer expired, awaiting restart
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseEnded:
		return "ended"
	default:
		return "idle"
	}
}

// Package-level variables for CLI-provided options, set before game creation.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for subsequent games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for subsequent games.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game is the numblast session: grid, scoring, combo, countdown and
// power-ups, advanced one tick at a time. All delayed work runs through the
// tick-keyed scheduler, so a fixed seed and tick rate replay identically.
type Game struct {
	mode  Mode
	cfg   config.NumblastConfig
	rules ScoringRules

	rng  *rand.Rand
	tick uint64
	tps  uint64 // Ticks per second, from RuntimeConfig.TickRate

	grid        *Grid
	sched       scheduler
	settleTicks uint64 // Delay between settle phases

	phase    Phase
	settling bool // Grid locked: compact/refill pending for a prior match

	score    int
	combo    int
	level    int
	timeLeft int // Seconds; classic mode only

	countdownAcc uint64 // Ticks accumulated toward the next second
	warnedLow    []bool // Low-time warnings already fired, indexed by second

	cursor  Coord
	preview []Coord // Hovered group shown on the board, nil if below minimum

	powerUp *PowerUp // Pending claimable power-up, nil if none

	events []core.Event

	// Screen bookkeeping
	screenW   int
	screenH   int
	tooSmall  bool
	boardRect core.Rect // Set during Render; used for pointer hit tests
}

// New creates a classic timed game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZen creates an untimed practice game.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

func init() {
	registry.Register("numblast", func() registry.Game {
		return New()
	})
	registry.Register("numblast_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "numblast_zen"
	}
	return "numblast"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Numblast (Zen)"
	}
	return "Numblast"
}

// Reset initializes or restarts the session: fresh grid, score/combo zeroed,
// level 1, full countdown, every pending scheduled task cancelled.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadNumblast(configPath)
	if err != nil {
		cfg = config.DefaultNumblastConfig()
	}
	if difficultyPreset != "" {
		config.ApplyNumblastPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = cfg
	g.rules = rulesFromConfig(cfg.Scoring)

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.tps = uint64(core.Max(1, rc.TickRate))
	g.settleTicks = uint64(core.Max(1, cfg.Settle.StepMS*rc.TickRate/1000))

	g.sched.cancelAll()
	g.grid = NewGrid(cfg.Grid.Size, g.rng)
	g.settling = false

	g.score = 0
	g.combo = 0
	g.level = 1
	g.timeLeft = cfg.Timer.RoundSeconds
	g.countdownAcc = 0
	g.warnedLow = make([]bool, cfg.Timer.LowTimeThreshold+1)

	g.cursor = C(cfg.Grid.Size/2, cfg.Grid.Size/2)
	g.preview = nil
	g.powerUp = nil
	g.events = nil

	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.checkScreenSize()

	g.phase = PhasePlaying
	g.refreshPreview()
	g.scheduleSpawnRoll()
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	minW := g.cfg.Grid.Size*cellWidth + 2
	minH := g.cfg.Grid.Size + 2 + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.phase {
		case PhasePlaying:
			g.phase = PhasePaused
		case PhasePaused:
			g.phase = PhasePlaying
		}
	}

	// Already-scheduled work (settle phases, combo decay, power-up expiry)
	// keeps running even while paused; only the countdown suspends.
	g.sched.runDue(g.tick)

	if g.phase == PhasePlaying {
		g.stepCountdown()
	}
	if g.phase == PhasePlaying {
		g.handleInput(in)
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// stepCountdown advances the per-second countdown while playing.
func (g *Game) stepCountdown() {
	if g.mode != ModeClassic {
		return
	}

	g.countdownAcc++
	if g.countdownAcc < g.tps {
		return
	}
	g.countdownAcc = 0
	g.timeLeft--

	if g.timeLeft >= 0 && g.timeLeft <= g.cfg.Timer.LowTimeThreshold && !g.warnedLow[g.timeLeft] {
		g.warnedLow[g.timeLeft] = true
		g.emit(core.Event{Kind: core.EventLowTime, Value: g.timeLeft})
	}

	if g.timeLeft <= 0 {
		g.endGame()
	}
}

// endGame finalizes the session when the countdown reaches zero.
func (g *Game) endGame() {
	g.phase = PhaseEnded
	g.powerUp = nil
	g.preview = nil
	g.emit(core.Event{Kind: core.EventGameOver, Value: g.score})
}

// handleInput processes cursor movement, selection and power-up claims.
func (g *Game) handleInput(in core.InputFrame) {
	moved := false
	if in.Has(core.ActionUp) {
		g.cursor.Row--
		moved = true
	}
	if in.Has(core.ActionDown) {
		g.cursor.Row++
		moved = true
	}
	if in.Has(core.ActionLeft) {
		g.cursor.Col--
		moved = true
	}
	if in.Has(core.ActionRight) {
		g.cursor.Col++
		moved = true
	}
	if moved {
		last := g.grid.Size() - 1
		g.cursor.Row = core.Clamp(g.cursor.Row, 0, last)
		g.cursor.Col = core.Clamp(g.cursor.Col, 0, last)
	}

	clicked := false
	if in.Pointer != nil {
		if cell, ok := g.cellAt(in.Pointer.X, in.Pointer.Y); ok {
			g.cursor = cell
			moved = true
			clicked = in.Pointer.Clicked
		}
	}

	if moved {
		g.refreshPreview()
	}

	if clicked || in.Has(core.ActionSelect) {
		g.attemptMatch(g.cursor)
	}
	if in.Has(core.ActionClaim) {
		g.claimPowerUp()
	}
}

// attemptMatch validates and resolves a selection at the given cell.
// While a settle cycle is in flight the grid is locked and every attempt is
// rejected, so a pending compact/refill can never act on shifted coordinates.
func (g *Game) attemptMatch(c Coord) {
	if g.settling {
		g.emit(core.Event{Kind: core.EventMatchRejected, Row: c.Row, Col: c.Col})
		return
	}

	group := FindGroup(g.grid, c)
	if len(group) < g.cfg.Grid.MinMatch {
		g.emit(core.Event{Kind: core.EventMatchRejected, Row: c.Row, Col: c.Col})
		return
	}

	g.destroyCells(group)
}

// destroyCells clears the cells, scores them and starts a settle cycle.
// Power-up effects reuse this path with arbitrary cell sets, bypassing the
// minimum-size check.
func (g *Game) destroyCells(cells []Coord) {
	g.grid.Clear(cells)
	points := g.scoreMatch(len(cells))
	g.emit(core.Event{Kind: core.EventMatchAccepted, Value: points, Count: len(cells)})
	g.beginSettle()
}

// scoreMatch applies the scoring formula for n destroyed cells, bumps the
// combo and schedules its decay, then checks the level threshold.
func (g *Game) scoreMatch(n int) int {
	points := g.rules.Points(n, g.combo, g.level)
	g.score += points
	g.combo++
	g.emit(core.Event{Kind: core.EventComboChanged, Value: g.combo})
	g.scheduleComboDecay()
	g.checkLevelUp()
	return points
}

// scheduleComboDecay queues a single combo decrement. Each scoring event
// schedules its own decay; overlapping decays each subtract one, clamped at
// zero, regardless of increments in between.
func (g *Game) scheduleComboDecay() {
	delay := g.tps * uint64(g.cfg.Scoring.ComboDecaySeconds)
	g.sched.after(g.tick, delay, func() {
		if g.combo > 0 {
			g.combo--
			g.emit(core.Event{Kind: core.EventComboChanged, Value: g.combo})
		}
	})
}

// checkLevelUp raises the level when the score threshold is crossed.
func (g *Game) checkLevelUp() {
	next := g.rules.NextLevel(g.score, g.level)
	if next != g.level {
		g.level = next
		g.emit(core.Event{Kind: core.EventLevelUp, Value: g.level})
	}
}

// beginSettle locks the grid and schedules the compact and refill phases.
// The short gaps let the platform show the holes and the drop.
func (g *Game) beginSettle() {
	g.settling = true
	g.preview = nil

	g.sched.after(g.tick, g.settleTicks, func() {
		g.grid.Compact()
	})
	g.sched.after(g.tick, g.settleTicks*2, func() {
		g.grid.Refill(g.rng)
		g.settling = false
		g.refreshPreview()
	})
}

// refreshPreview recomputes the hover highlight for the cursor cell.
func (g *Game) refreshPreview() {
	if g.settling || g.phase == PhaseEnded {
		g.preview = nil
		return
	}
	group := FindGroup(g.grid, g.cursor)
	if len(group) < g.cfg.Grid.MinMatch {
		g.preview = nil
		return
	}
	g.preview = group
}

// scheduleSpawnRoll queues the next stochastic power-up roll at a uniformly
// random delay within the configured window.
func (g *Game) scheduleSpawnRoll() {
	pu := g.cfg.PowerUps
	span := pu.SpawnMaxSeconds - pu.SpawnMinSeconds + 1
	delay := g.tps * uint64(pu.SpawnMinSeconds+g.rng.Intn(span))
	g.sched.after(g.tick, delay, g.rollPowerUp)
}

// rollPowerUp runs one spawn roll and requeues the next one. Rolls made
// while not playing, or while another power-up is pending, are skipped.
func (g *Game) rollPowerUp() {
	defer g.scheduleSpawnRoll()

	if g.phase != PhasePlaying || g.powerUp != nil {
		return
	}
	if g.rng.Intn(100) >= g.cfg.PowerUps.SpawnChance {
		return
	}

	p := &PowerUp{
		Type:      PowerUpType(g.rng.Intn(int(PowerUpCount))),
		ExpiresAt: g.tick + g.tps*uint64(g.cfg.PowerUps.LifetimeSeconds),
	}
	g.powerUp = p
	g.emit(core.Event{Kind: core.EventPowerUpSpawned, Value: int(p.Type)})

	g.sched.after(g.tick, p.ExpiresAt-g.tick, func() {
		if g.powerUp == p && !p.Claimed {
			g.powerUp = nil
			g.emit(core.Event{Kind: core.EventPowerUpExpired, Value: int(p.Type)})
		}
	})
}

// claimPowerUp consumes the pending power-up and applies its effect.
// Claims are ignored during a settle cycle because the grid effects would
// race the pending compact/refill.
func (g *Game) claimPowerUp() {
	p := g.powerUp
	if p == nil || g.settling {
		return
	}

	p.Claimed = true
	g.powerUp = nil
	g.emit(core.Event{Kind: core.EventPowerUpActivated, Value: int(p.Type)})

	pu := g.cfg.PowerUps
	switch p.Type {
	case PowerUpTimeBonus:
		if g.mode == ModeClassic {
			g.timeLeft += pu.TimeBonusSeconds
		}
	case PowerUpAreaBlast:
		cells := g.randomFilledCells(pu.AreaBlastCells)
		if len(cells) > 0 {
			g.destroyCells(cells)
		}
	case PowerUpScoreBonus:
		g.score += pu.ScoreBonusPoints
		g.checkLevelUp()
	case PowerUpComboBonus:
		for i := 0; i < pu.ComboBonusSteps; i++ {
			g.combo++
			g.scheduleComboDecay()
		}
		g.emit(core.Event{Kind: core.EventComboChanged, Value: g.combo})
	case PowerUpDigitClear:
		digit := g.rng.Intn(DigitRange)
		cells := g.grid.CellsWithDigit(digit)
		if len(cells) > 0 {
			g.destroyCells(cells)
		}
	}
}

// randomFilledCells picks up to n distinct non-empty cells at random.
func (g *Game) randomFilledCells(n int) []Coord {
	filled := g.grid.FilledCells()
	g.rng.Shuffle(len(filled), func(i, j int) {
		filled[i], filled[j] = filled[j], filled[i]
	})
	if len(filled) > n {
		filled = filled[:n]
	}
	return filled
}

// emit appends an event to the current tick's output.
func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.phase == PhaseEnded,
		Paused:   g.phase == PhasePaused || g.tooSmall,
	}
}

package numblast

import (
	"reflect"
	"testing"

	"github.com/mkarpenko/numblast/internal/core"
)

// newTestGame creates a classic game with a fast, round tick rate.
// TickRate 10 keeps second-based delays at 10 ticks and the settle step at 1.
func newTestGame(t *testing.T, seed int64, tickRate int) *Game {
	t.Helper()
	SetConfigPath("")
	SetDifficultyPreset("")

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: tickRate, Seed: seed})
	return g
}

// setCheckerboard fills the board so no cell has a same-digit 4-neighbor.
func setCheckerboard(g *Game) {
	size := g.grid.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			g.grid.SetDigit(C(row, col), (row+col)%2)
		}
	}
}

// stepN advances the game n ticks with no input, returning all events.
func stepN(g *Game, n int) []core.Event {
	var events []core.Event
	for i := 0; i < n; i++ {
		res := g.Step(core.NewInputFrame())
		events = append(events, res.Events...)
	}
	return events
}

func selectFrame() core.InputFrame {
	f := core.NewInputFrame()
	f.Set(core.ActionSelect)
	return f
}

func eventsOfKind(events []core.Event, kind core.EventKind) []core.Event {
	var out []core.Event
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func TestRejectedSelectionLeavesGridUntouched(t *testing.T) {
	g := newTestGame(t, 42, 10)
	setCheckerboard(g)
	g.cursor = C(4, 4)

	before := g.Snapshot()
	res := g.Step(selectFrame())

	rejected := eventsOfKind(res.Events, core.EventMatchRejected)
	if len(rejected) != 1 {
		t.Fatalf("rejected events = %d, want 1", len(rejected))
	}
	if rejected[0].Row != 4 || rejected[0].Col != 4 {
		t.Errorf("rejected cell = (%d,%d), want (4,4)", rejected[0].Row, rejected[0].Col)
	}

	after := g.Snapshot()
	if !reflect.DeepEqual(before.Cells, after.Cells) {
		t.Error("grid changed on a rejected selection")
	}
	if after.Score != 0 || after.Combo != 0 {
		t.Errorf("score/combo = %d/%d after rejection, want 0/0", after.Score, after.Combo)
	}
}

func TestAcceptedMatchScoresAndSettles(t *testing.T) {
	g := newTestGame(t, 42, 10)
	setCheckerboard(g)
	g.grid.SetDigit(C(4, 4), 7)
	g.grid.SetDigit(C(4, 5), 7)
	g.cursor = C(4, 4)
	g.refreshPreview()

	if len(g.preview) != 2 {
		t.Fatalf("hover preview size = %d, want 2", len(g.preview))
	}

	res := g.Step(selectFrame())

	accepted := eventsOfKind(res.Events, core.EventMatchAccepted)
	if len(accepted) != 1 {
		t.Fatalf("accepted events = %d, want 1", len(accepted))
	}
	// n=2, combo=0, level=1: 20 + 0 + 0 + 2
	if accepted[0].Value != 22 || accepted[0].Count != 2 {
		t.Errorf("accepted event = %+v, want points 22 for 2 cells", accepted[0])
	}

	snap := g.Snapshot()
	if snap.Score != 22 {
		t.Errorf("score = %d, want 22", snap.Score)
	}
	if snap.Combo != 1 {
		t.Errorf("combo = %d, want 1", snap.Combo)
	}
	if !snap.Settling {
		t.Error("grid should be settling after an accepted match")
	}
	if n := g.grid.EmptyCount(); n != 2 {
		t.Errorf("empty cells = %d, want 2", n)
	}

	// Compact runs one settle step later, refill one more after that.
	stepN(g, 2)

	if g.settling {
		t.Error("settling flag still set after refill")
	}
	if n := g.grid.EmptyCount(); n != 0 {
		t.Errorf("empty cells after settle = %d, want 0", n)
	}
}

func TestMatchDuringSettleIsRejected(t *testing.T) {
	g := newTestGame(t, 42, 10)
	setCheckerboard(g)
	g.grid.SetDigit(C(4, 4), 7)
	g.grid.SetDigit(C(4, 5), 7)
	g.grid.SetDigit(C(0, 0), 9)
	g.grid.SetDigit(C(0, 1), 9)

	g.cursor = C(4, 4)
	g.Step(selectFrame())

	// Second valid group selected before compact+refill completed
	g.cursor = C(0, 0)
	res := g.Step(selectFrame())

	if len(eventsOfKind(res.Events, core.EventMatchAccepted)) != 0 {
		t.Error("match accepted while grid was settling")
	}
	if len(eventsOfKind(res.Events, core.EventMatchRejected)) != 1 {
		t.Error("expected a rejection while settling")
	}
	if g.score != 22 {
		t.Errorf("score = %d, want 22 from the first match only", g.score)
	}
}

func TestComboDecaysAfterDelay(t *testing.T) {
	g := newTestGame(t, 42, 10)
	setCheckerboard(g)
	g.grid.SetDigit(C(4, 4), 7)
	g.grid.SetDigit(C(4, 5), 7)
	g.cursor = C(4, 4)

	g.Step(selectFrame()) // tick 1, decay due at tick 31
	if g.combo != 1 {
		t.Fatalf("combo = %d after match, want 1", g.combo)
	}

	stepN(g, 29) // tick 30
	if g.combo != 1 {
		t.Errorf("combo = %d before decay delay elapsed, want 1", g.combo)
	}

	events := stepN(g, 1) // tick 31
	if g.combo != 0 {
		t.Errorf("combo = %d after decay delay, want 0", g.combo)
	}
	changed := eventsOfKind(events, core.EventComboChanged)
	if len(changed) != 1 || changed[0].Value != 0 {
		t.Errorf("combo change events = %v, want single change to 0", changed)
	}

	// Decay never drives combo negative
	stepN(g, 50)
	if g.combo != 0 {
		t.Errorf("combo = %d, want 0", g.combo)
	}
}

func TestLevelUpStrictCrossing(t *testing.T) {
	g := newTestGame(t, 42, 10)

	g.events = nil
	g.score = 600
	g.checkLevelUp()
	if g.level != 1 {
		t.Errorf("level = %d at exactly 600, want 1", g.level)
	}

	g.score = 601
	g.checkLevelUp()
	if g.level != 2 {
		t.Errorf("level = %d past 600, want 2", g.level)
	}
	ups := eventsOfKind(g.events, core.EventLevelUp)
	if len(ups) != 1 || ups[0].Value != 2 {
		t.Errorf("level-up events = %v, want single up to 2", ups)
	}

	// Repeated checks at the same score do not level again (threshold is now 1200)
	g.checkLevelUp()
	if g.level != 2 {
		t.Errorf("level = %d after repeat check, want 2", g.level)
	}
}

func TestCountdownEndsGameAndWarnsOnce(t *testing.T) {
	g := newTestGame(t, 5, 1) // 1 tick per second

	var lows []int
	endedAt := 0
	for i := 1; i <= 60; i++ {
		res := g.Step(core.NewInputFrame())
		for _, e := range eventsOfKind(res.Events, core.EventLowTime) {
			lows = append(lows, e.Value)
		}
		if res.State.GameOver && endedAt == 0 {
			endedAt = i
			over := eventsOfKind(res.Events, core.EventGameOver)
			if len(over) != 1 {
				t.Errorf("game-over events = %d, want 1", len(over))
			}
		}
	}

	if endedAt != 60 {
		t.Errorf("game ended at tick %d, want 60", endedAt)
	}
	if g.timeLeft != 0 {
		t.Errorf("timeLeft = %d at game over, want 0", g.timeLeft)
	}

	want := []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	if !reflect.DeepEqual(lows, want) {
		t.Errorf("low-time warnings = %v, want %v", lows, want)
	}

	// No further warnings after the end
	extra := stepN(g, 10)
	if len(eventsOfKind(extra, core.EventLowTime)) != 0 {
		t.Error("low-time warnings emitted after game over")
	}
}

func TestPauseSuspendsOnlyCountdown(t *testing.T) {
	g := newTestGame(t, 5, 1)
	setCheckerboard(g)
	g.grid.SetDigit(C(4, 4), 7)
	g.grid.SetDigit(C(4, 5), 7)
	g.cursor = C(4, 4)

	stepN(g, 5)
	if g.timeLeft != 55 {
		t.Fatalf("timeLeft = %d after 5 seconds, want 55", g.timeLeft)
	}

	// Match, then pause immediately; the settle sequence must finish anyway.
	g.Step(selectFrame())
	timeAtPause := g.timeLeft

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	stepN(g, 10)
	if g.timeLeft != timeAtPause {
		t.Errorf("timeLeft = %d while paused, want %d", g.timeLeft, timeAtPause)
	}
	if g.settling {
		t.Error("settle sequence did not complete while paused")
	}
	if n := g.grid.EmptyCount(); n != 0 {
		t.Errorf("empty cells = %d while paused, want 0 after settle", n)
	}

	// Resume: the countdown runs again on the very same tick
	g.Step(pause)
	if g.timeLeft != timeAtPause-1 {
		t.Errorf("timeLeft = %d after resume, want %d", g.timeLeft, timeAtPause-1)
	}
}

func TestResetRestoresBaselineAndCancelsWork(t *testing.T) {
	g := newTestGame(t, 42, 10)
	setCheckerboard(g)
	g.grid.SetDigit(C(4, 4), 7)
	g.grid.SetDigit(C(4, 5), 7)
	g.cursor = C(4, 4)

	g.Step(selectFrame()) // leaves a pending settle and combo decay
	g.powerUp = &PowerUp{Type: PowerUpTimeBonus, ExpiresAt: g.tick + 100}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 43})

	snap := g.Snapshot()
	if snap.Score != 0 || snap.Combo != 0 || snap.Level != 1 {
		t.Errorf("score/combo/level = %d/%d/%d, want 0/0/1", snap.Score, snap.Combo, snap.Level)
	}
	if snap.TimeLeft != 60 {
		t.Errorf("timeLeft = %d, want 60", snap.TimeLeft)
	}
	if snap.Settling {
		t.Error("settling flag survived reset")
	}
	if snap.PowerUp != nil {
		t.Error("power-up survived reset")
	}
	if n := g.grid.EmptyCount(); n != 0 {
		t.Errorf("grid has %d empty cells after reset", n)
	}
	// Only the fresh spawn roll may be queued
	if snap.Pending != 1 {
		t.Errorf("pending tasks = %d after reset, want 1", snap.Pending)
	}
}

func TestPowerUpSpawnAndExpiry(t *testing.T) {
	g := newTestGame(t, 42, 10)

	// Drive the stochastic roll directly until it spawns (30% per roll).
	for i := 0; i < 200 && g.powerUp == nil; i++ {
		g.rollPowerUp()
	}
	if g.powerUp == nil {
		t.Fatal("no power-up spawned after 200 rolls")
	}

	expiresAt := g.powerUp.ExpiresAt
	if expiresAt != g.tick+50 { // 5 seconds at 10 ticks/second
		t.Errorf("ExpiresAt = %d, want %d", expiresAt, g.tick+50)
	}

	events := stepN(g, int(expiresAt-g.tick))
	if g.powerUp != nil {
		t.Error("power-up did not expire")
	}
	if len(eventsOfKind(events, core.EventPowerUpExpired)) != 1 {
		t.Error("expected a single expiry event")
	}
}

func TestPowerUpTimeBonus(t *testing.T) {
	g := newTestGame(t, 42, 10)

	g.powerUp = &PowerUp{Type: PowerUpTimeBonus, ExpiresAt: g.tick + 100}
	g.claimPowerUp()

	if g.timeLeft != 70 {
		t.Errorf("timeLeft = %d after time bonus, want 70", g.timeLeft)
	}
	if g.powerUp != nil {
		t.Error("power-up not consumed")
	}
}

func TestPowerUpScoreBonusTriggersLevelCheck(t *testing.T) {
	g := newTestGame(t, 42, 10)
	g.score = 550

	g.powerUp = &PowerUp{Type: PowerUpScoreBonus, ExpiresAt: g.tick + 100}
	g.claimPowerUp()

	if g.score != 650 {
		t.Errorf("score = %d, want 650", g.score)
	}
	if g.level != 2 {
		t.Errorf("level = %d after crossing threshold, want 2", g.level)
	}
}

func TestPowerUpComboBonusDecays(t *testing.T) {
	g := newTestGame(t, 42, 10)

	g.powerUp = &PowerUp{Type: PowerUpComboBonus, ExpiresAt: g.tick + 100}
	g.claimPowerUp()

	if g.combo != 3 {
		t.Fatalf("combo = %d after boost, want 3", g.combo)
	}

	// All three decays land 3 seconds later
	stepN(g, 31)
	if g.combo != 0 {
		t.Errorf("combo = %d after decay window, want 0", g.combo)
	}
}

func TestPowerUpAreaBlast(t *testing.T) {
	g := newTestGame(t, 42, 10)

	g.powerUp = &PowerUp{Type: PowerUpAreaBlast, ExpiresAt: g.tick + 100}
	g.claimPowerUp()

	if n := g.grid.EmptyCount(); n != 8 {
		t.Errorf("cells destroyed = %d, want 8", n)
	}
	if g.score == 0 {
		t.Error("area blast should score its destroyed cells")
	}
	if !g.settling {
		t.Error("area blast should start a settle cycle")
	}
}

func TestPowerUpDigitClear(t *testing.T) {
	g := newTestGame(t, 42, 10)
	size := g.grid.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			g.grid.SetDigit(C(row, col), (row+col)%DigitRange)
		}
	}

	counts := make(map[int]int)
	for d := 0; d < DigitRange; d++ {
		counts[d] = len(g.grid.CellsWithDigit(d))
	}

	g.powerUp = &PowerUp{Type: PowerUpDigitClear, ExpiresAt: g.tick + 100}
	g.claimPowerUp()

	emptied := g.grid.EmptyCount()
	if emptied == 0 {
		t.Fatal("digit clear destroyed nothing")
	}

	// Exactly one digit must have vanished, and the hole count must match it.
	cleared := -1
	for d := 0; d < DigitRange; d++ {
		if counts[d] > 0 && len(g.grid.CellsWithDigit(d)) == 0 {
			cleared = d
		}
	}
	if cleared == -1 {
		t.Fatal("no digit was fully cleared")
	}
	if emptied != counts[cleared] {
		t.Errorf("empty cells = %d, want %d (all of digit %d)", emptied, counts[cleared], cleared)
	}
}

func TestPowerUpClaimIgnoredWhileSettling(t *testing.T) {
	g := newTestGame(t, 42, 10)
	setCheckerboard(g)
	g.grid.SetDigit(C(4, 4), 7)
	g.grid.SetDigit(C(4, 5), 7)
	g.cursor = C(4, 4)
	g.Step(selectFrame())

	g.powerUp = &PowerUp{Type: PowerUpTimeBonus, ExpiresAt: g.tick + 100}
	timeBefore := g.timeLeft
	g.claimPowerUp()

	if g.powerUp == nil {
		t.Error("claim should be ignored while settling")
	}
	if g.timeLeft != timeBefore {
		t.Error("effect applied while settling")
	}
}

func TestZenModeHasNoCountdown(t *testing.T) {
	SetConfigPath("")
	SetDifficultyPreset("")

	g := NewZen()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 1, Seed: 7})

	events := stepN(g, 120)

	if g.State().GameOver {
		t.Error("zen mode should never end on time")
	}
	if g.timeLeft != 60 {
		t.Errorf("timeLeft = %d, want untouched 60", g.timeLeft)
	}
	if len(eventsOfKind(events, core.EventLowTime)) != 0 {
		t.Error("zen mode emitted low-time warnings")
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() Snapshot {
		SetConfigPath("")
		SetDifficultyPreset("")

		g := New()
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 5, Seed: 123})

		for i := 1; i <= 300; i++ {
			f := core.NewInputFrame()
			if i%7 == 0 {
				f.Set(core.ActionSelect)
			}
			if i%11 == 0 {
				f.Set(core.ActionDown)
			}
			if i%13 == 0 {
				f.Set(core.ActionRight)
			}
			if i%50 == 0 {
				f.Set(core.ActionClaim)
			}
			g.Step(f)
		}
		return g.Snapshot()
	}

	first := run()
	second := run()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("replays diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestPointerHitTest(t *testing.T) {
	g := newTestGame(t, 42, 10)
	g.Render(core.NewScreen(80, 24))

	// Board: 8*3+2 = 26 wide, centered on 80 columns -> x 27, y 4.
	tests := []struct {
		name   string
		x, y   int
		want   Coord
		wantOK bool
	}{
		{"top-left cell", 28, 5, C(0, 0), true},
		{"top-left cell digit column", 29, 5, C(0, 0), true},
		{"second column", 31, 5, C(0, 1), true},
		{"bottom-right cell", 51, 12, C(7, 7), true},
		{"left border", 27, 5, Coord{}, false},
		{"above board", 28, 3, Coord{}, false},
		{"below board", 28, 13, Coord{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := g.cellAt(tc.x, tc.y)
			if ok != tc.wantOK || (ok && got != tc.want) {
				t.Errorf("cellAt(%d,%d) = %v,%v, want %v,%v", tc.x, tc.y, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestPointerClickSelectsCell(t *testing.T) {
	g := newTestGame(t, 42, 10)
	setCheckerboard(g)
	g.Render(core.NewScreen(80, 24))

	f := core.NewInputFrame()
	f.SetPointer(28, 5, true) // cell (0,0)
	res := g.Step(f)

	if g.cursor != C(0, 0) {
		t.Errorf("cursor = %v after click, want (0,0)", g.cursor)
	}
	rejected := eventsOfKind(res.Events, core.EventMatchRejected)
	if len(rejected) != 1 || rejected[0].Row != 0 || rejected[0].Col != 0 {
		t.Errorf("rejected events = %v, want single rejection at (0,0)", rejected)
	}
}

func TestRenderDrawsBoardDigits(t *testing.T) {
	g := newTestGame(t, 42, 10)
	setCheckerboard(g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Cell (0,0) holds digit 0 at screen position (29, 5)
	if got := screen.Get(29, 5); got != '0' {
		t.Errorf("cell (0,0) rendered as %q, want '0'", got)
	}
	// Cell (0,1) holds digit 1
	if got := screen.Get(32, 5); got != '1' {
		t.Errorf("cell (0,1) rendered as %q, want '1'", got)
	}
	// Border present
	if got := screen.Get(27, 4); got != '┌' {
		t.Errorf("board corner = %q, want '┌'", got)
	}
}

package numblast

// PowerUpType represents the five power-up kinds.
type PowerUpType int

const (
	PowerUpTimeBonus  PowerUpType = iota // Adds seconds to the countdown
	PowerUpAreaBlast                     // Destroys a handful of random cells
	PowerUpScoreBonus                    // Flat score gift
	PowerUpComboBonus                    // Raises the combo counter
	PowerUpDigitClear                    // Destroys every cell of a random digit
	PowerUpCount                         // Sentinel for counting types
)

// Glyph returns the display character for a power-up type.
func (p PowerUpType) Glyph() rune {
	switch p {
	case PowerUpTimeBonus:
		return '⏱'
	case PowerUpAreaBlast:
		return '✸'
	case PowerUpScoreBonus:
		return '$'
	case PowerUpComboBonus:
		return '×'
	case PowerUpDigitClear:
		return '#'
	default:
		return '?'
	}
}

// String returns the name of the power-up type.
func (p PowerUpType) String() string {
	switch p {
	case PowerUpTimeBonus:
		return "Time Bonus"
	case PowerUpAreaBlast:
		return "Area Blast"
	case PowerUpScoreBonus:
		return "Score Bonus"
	case PowerUpComboBonus:
		return "Combo Boost"
	case PowerUpDigitClear:
		return "Digit Clear"
	default:
		return "?"
	}
}

// PowerUp is a transient claimable bonus. A power-up is spawned by the
// stochastic spawn roll, auto-expires when its tick passes, and is consumed
// on activation; no instance can be claimed twice.
type PowerUp struct {
	Type      PowerUpType
	ExpiresAt uint64 // Tick at which the unclaimed power-up disappears
	Claimed   bool
}

// TicksRemaining returns how many ticks until expiry, floored at zero.
func (p *PowerUp) TicksRemaining(now uint64) uint64 {
	if p.ExpiresAt <= now {
		return 0
	}
	return p.ExpiresAt - now
}

package core

// EventKind identifies an engine-emitted signal. The platform layer consumes
// events for status flashes and sounds; the engine itself never reacts to them.
type EventKind int

const (
	EventNone EventKind = iota
	EventMatchAccepted    // Value = points scored, Count = cells destroyed
	EventMatchRejected    // Row/Col = selected cell
	EventLevelUp          // Value = new level
	EventComboChanged     // Value = new combo count
	EventGameOver         // Value = final score
	EventLowTime          // Value = seconds remaining (10..0)
	EventPowerUpSpawned   // Value = power-up type tag
	EventPowerUpActivated // Value = power-up type tag
	EventPowerUpExpired   // Value = power-up type tag
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMatchAccepted:
		return "MatchAccepted"
	case EventMatchRejected:
		return "MatchRejected"
	case EventLevelUp:
		return "LevelUp"
	case EventComboChanged:
		return "ComboChanged"
	case EventGameOver:
		return "GameOver"
	case EventLowTime:
		return "LowTime"
	case EventPowerUpSpawned:
		return "PowerUpSpawned"
	case EventPowerUpActivated:
		return "PowerUpActivated"
	case EventPowerUpExpired:
		return "PowerUpExpired"
	default:
		return "None"
	}
}

// Event is a single engine signal emitted during a simulation tick.
// The meaning of Value, Count, Row and Col depends on the kind.
type Event struct {
	Kind  EventKind
	Value int
	Count int
	Row   int
	Col   int
}

// Package config provides YAML-based game configuration loading and
// difficulty management for the numblast platform.
package config

// NumblastConfig contains all tunable parameters for the game.
type NumblastConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Timer    TimerConfig    `yaml:"timer"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Settle   SettleConfig   `yaml:"settle"`
	PowerUps PowerUpsConfig `yaml:"powerups"`
}

// GridConfig defines board dimensions and match rules.
type GridConfig struct {
	Size     int `yaml:"size"`      // Board is Size x Size cells
	MinMatch int `yaml:"min_match"` // Minimum group size for a valid match
}

// TimerConfig defines the round countdown.
type TimerConfig struct {
	RoundSeconds     int `yaml:"round_seconds"`      // Starting time
	LowTimeThreshold int `yaml:"low_time_threshold"` // Warnings fire at and below this value
}

// ScoringConfig defines the scoring formula and level progression.
type ScoringConfig struct {
	BasePerTile       int `yaml:"base_per_tile"`       // Points per destroyed cell
	SizeBonus         int `yaml:"size_bonus"`          // Extra points per cell beyond two
	ComboBonus        int `yaml:"combo_bonus"`         // Points per active combo step
	LevelBonus        int `yaml:"level_bonus"`         // Points per current level
	LevelStep         int `yaml:"level_step"`          // Score per level threshold
	MaxLevel          int `yaml:"max_level"`           // Level cap
	ComboDecaySeconds int `yaml:"combo_decay_seconds"` // Delay before each combo step decays
}

// SettleConfig defines the pacing of the clear -> compact -> refill sequence.
type SettleConfig struct {
	StepMS int `yaml:"step_ms"` // Delay between settle phases in milliseconds
}

// PowerUpsConfig defines power-up spawning and effect magnitudes.
type PowerUpsConfig struct {
	SpawnMinSeconds  int `yaml:"spawn_min_seconds"` // Lower bound of the spawn roll interval
	SpawnMaxSeconds  int `yaml:"spawn_max_seconds"` // Upper bound of the spawn roll interval
	SpawnChance      int `yaml:"spawn_chance"`      // Percentage chance per roll (0-100)
	LifetimeSeconds  int `yaml:"lifetime_seconds"`  // Unclaimed power-ups expire after this
	AreaBlastCells   int `yaml:"area_blast_cells"`  // Max cells destroyed by an area blast
	TimeBonusSeconds int `yaml:"time_bonus_seconds"`
	ScoreBonusPoints int `yaml:"score_bonus_points"`
	ComboBonusSteps  int `yaml:"combo_bonus_steps"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyRelaxed DifficultyPreset = "relaxed"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyFrenzy  DifficultyPreset = "frenzy"
	DifficultyFixed   DifficultyPreset = "fixed"
)

// ApplyNumblastPreset modifies the config based on a difficulty preset.
// The fixed preset leaves file values untouched.
func ApplyNumblastPreset(cfg *NumblastConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyRelaxed:
		cfg.Timer.RoundSeconds = 90
		cfg.PowerUps.SpawnChance = 40
	case DifficultyNormal:
		cfg.Timer.RoundSeconds = 60
		cfg.PowerUps.SpawnChance = 30
	case DifficultyFrenzy:
		cfg.Timer.RoundSeconds = 45
		cfg.PowerUps.SpawnChance = 25
		cfg.PowerUps.SpawnMinSeconds = 6
		cfg.PowerUps.SpawnMaxSeconds = 12
	}
}

// Sanitize clamps nonsensical values to usable defaults so a hand-edited
// config cannot wedge the engine.
func (c *NumblastConfig) Sanitize() {
	def := DefaultNumblastConfig()

	if c.Grid.Size < 2 {
		c.Grid.Size = def.Grid.Size
	}
	if c.Grid.MinMatch < 2 {
		c.Grid.MinMatch = def.Grid.MinMatch
	}
	if c.Timer.RoundSeconds <= 0 {
		c.Timer.RoundSeconds = def.Timer.RoundSeconds
	}
	if c.Timer.LowTimeThreshold < 0 {
		c.Timer.LowTimeThreshold = def.Timer.LowTimeThreshold
	}
	if c.Scoring.LevelStep <= 0 {
		c.Scoring.LevelStep = def.Scoring.LevelStep
	}
	if c.Scoring.MaxLevel < 1 {
		c.Scoring.MaxLevel = def.Scoring.MaxLevel
	}
	if c.Scoring.ComboDecaySeconds <= 0 {
		c.Scoring.ComboDecaySeconds = def.Scoring.ComboDecaySeconds
	}
	if c.Settle.StepMS <= 0 {
		c.Settle.StepMS = def.Settle.StepMS
	}
	if c.PowerUps.SpawnMinSeconds <= 0 {
		c.PowerUps.SpawnMinSeconds = def.PowerUps.SpawnMinSeconds
	}
	if c.PowerUps.SpawnMaxSeconds < c.PowerUps.SpawnMinSeconds {
		c.PowerUps.SpawnMaxSeconds = c.PowerUps.SpawnMinSeconds
	}
	if c.PowerUps.SpawnChance < 0 || c.PowerUps.SpawnChance > 100 {
		c.PowerUps.SpawnChance = def.PowerUps.SpawnChance
	}
	if c.PowerUps.LifetimeSeconds <= 0 {
		c.PowerUps.LifetimeSeconds = def.PowerUps.LifetimeSeconds
	}
	if c.PowerUps.AreaBlastCells <= 0 {
		c.PowerUps.AreaBlastCells = def.PowerUps.AreaBlastCells
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/numblast.yaml
var defaultNumblastYAML []byte

// DefaultNumblastConfig returns the default game configuration.
func DefaultNumblastConfig() NumblastConfig {
	return NumblastConfig{
		Grid: GridConfig{
			Size:     8,
			MinMatch: 2,
		},
		Timer: TimerConfig{
			RoundSeconds:     60,
			LowTimeThreshold: 10,
		},
		Scoring: ScoringConfig{
			BasePerTile:       10,
			SizeBonus:         15,
			ComboBonus:        5,
			LevelBonus:        2,
			LevelStep:         600,
			MaxLevel:          15,
			ComboDecaySeconds: 3,
		},
		Settle: SettleConfig{
			StepMS: 180,
		},
		PowerUps: PowerUpsConfig{
			SpawnMinSeconds:  8,
			SpawnMaxSeconds:  15,
			SpawnChance:      30,
			LifetimeSeconds:  5,
			AreaBlastCells:   8,
			TimeBonusSeconds: 10,
			ScoreBonusPoints: 100,
			ComboBonusSteps:  3,
		},
	}
}

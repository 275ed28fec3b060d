package numblast

import "github.com/mkarpenko/numblast/internal/config"

// ScoringRules holds the scoring formula constants and level progression.
type ScoringRules struct {
	BasePerTile int // Points per destroyed cell
	SizeBonus   int // Extra points per cell beyond two
	ComboBonus  int // Points per active combo step
	LevelBonus  int // Points per current level
	LevelStep   int // Score threshold per level is LevelStep * level
	MaxLevel    int // Level cap; scoring never raises level past this
}

// rulesFromConfig maps the loaded YAML scoring section onto ScoringRules.
func rulesFromConfig(sc config.ScoringConfig) ScoringRules {
	return ScoringRules{
		BasePerTile: sc.BasePerTile,
		SizeBonus:   sc.SizeBonus,
		ComboBonus:  sc.ComboBonus,
		LevelBonus:  sc.LevelBonus,
		LevelStep:   sc.LevelStep,
		MaxLevel:    sc.MaxLevel,
	}
}

// Points computes the score awarded for destroying n cells at the given
// combo count and level:
//
//	base       = n * BasePerTile
//	sizeBonus  = max(0, (n-2) * SizeBonus)
//	comboBonus = combo * ComboBonus
//	levelBonus = level * LevelBonus
func (r ScoringRules) Points(n, combo, level int) int {
	base := n * r.BasePerTile
	sizeBonus := (n - 2) * r.SizeBonus
	if sizeBonus < 0 {
		sizeBonus = 0
	}
	return base + sizeBonus + combo*r.ComboBonus + level*r.LevelBonus
}

// NextLevel returns the level after a score change. The threshold must be
// crossed strictly (score > level*LevelStep) and the cap is never exceeded.
// At most one level is gained per call.
func (r ScoringRules) NextLevel(score, level int) int {
	if level < r.MaxLevel && score > level*r.LevelStep {
		return level + 1
	}
	return level
}

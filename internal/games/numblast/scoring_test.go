package numblast

import (
	"testing"

	"github.com/mkarpenko/numblast/internal/config"
)

func defaultRules() ScoringRules {
	return rulesFromConfig(config.DefaultNumblastConfig().Scoring)
}

func TestPointsFormula(t *testing.T) {
	rules := defaultRules()

	tests := []struct {
		name            string
		n, combo, level int
		want            int
	}{
		{"minimum match", 2, 0, 1, 22},     // 20 + 0 + 0 + 2
		{"four with combo", 4, 2, 3, 86},   // 40 + 30 + 10 + 6
		{"triple fresh", 3, 0, 1, 47},      // 30 + 15 + 0 + 2
		{"big group", 8, 0, 1, 172},        // 80 + 90 + 0 + 2
		{"high combo", 2, 10, 1, 72},       // 20 + 0 + 50 + 2
		{"max level bonus", 2, 0, 15, 50},  // 20 + 0 + 0 + 30
		{"everything at once", 5, 4, 7, 129}, // 50 + 45 + 20 + 14
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := rules.Points(tc.n, tc.combo, tc.level)
			if got != tc.want {
				t.Errorf("Points(%d, %d, %d) = %d, want %d", tc.n, tc.combo, tc.level, got, tc.want)
			}
		})
	}
}

func TestNextLevelStrictThreshold(t *testing.T) {
	rules := defaultRules()

	tests := []struct {
		name         string
		score, level int
		want         int
	}{
		{"below threshold", 599, 1, 1},
		{"at threshold", 600, 1, 1}, // Strictly greater required
		{"just over threshold", 601, 1, 2},
		{"level 3 threshold", 1801, 3, 4},
		{"far past threshold gains one", 5000, 1, 2},
		{"at cap", 1000000, 15, 15},
		{"one below cap", 1000000, 14, 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := rules.NextLevel(tc.score, tc.level)
			if got != tc.want {
				t.Errorf("NextLevel(%d, %d) = %d, want %d", tc.score, tc.level, got, tc.want)
			}
		})
	}
}

func TestLevelNeverExceedsCap(t *testing.T) {
	rules := defaultRules()

	level := 1
	for i := 0; i < 100; i++ {
		level = rules.NextLevel(1<<30, level)
	}
	if level != rules.MaxLevel {
		t.Errorf("level after repeated huge scores = %d, want %d", level, rules.MaxLevel)
	}
}

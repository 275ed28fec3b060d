package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree, otherwise the
	// two default paths produce different games.
	loaded, err := LoadNumblast("")
	if err != nil {
		t.Fatalf("LoadNumblast() failed: %v", err)
	}

	def := DefaultNumblastConfig()
	if loaded != def {
		t.Errorf("embedded default = %+v, hardcoded default = %+v", loaded, def)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yaml := `
grid:
  size: 6
  min_match: 3
timer:
  round_seconds: 30
  low_time_threshold: 5
scoring:
  base_per_tile: 20
  size_bonus: 15
  combo_bonus: 5
  level_bonus: 2
  level_step: 600
  max_level: 15
  combo_decay_seconds: 3
settle:
  step_ms: 100
powerups:
  spawn_min_seconds: 8
  spawn_max_seconds: 15
  spawn_chance: 30
  lifetime_seconds: 5
  area_blast_cells: 8
  time_bonus_seconds: 10
  score_bonus_points: 100
  combo_bonus_steps: 3
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadNumblast(path)
	if err != nil {
		t.Fatalf("LoadNumblast(%s) failed: %v", path, err)
	}

	if cfg.Grid.Size != 6 {
		t.Errorf("Grid.Size = %d, want 6", cfg.Grid.Size)
	}
	if cfg.Grid.MinMatch != 3 {
		t.Errorf("Grid.MinMatch = %d, want 3", cfg.Grid.MinMatch)
	}
	if cfg.Timer.RoundSeconds != 30 {
		t.Errorf("Timer.RoundSeconds = %d, want 30", cfg.Timer.RoundSeconds)
	}
	if cfg.Scoring.BasePerTile != 20 {
		t.Errorf("Scoring.BasePerTile = %d, want 20", cfg.Scoring.BasePerTile)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := LoadNumblast("/nonexistent/numblast.yaml")
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestSanitizeFixesBadValues(t *testing.T) {
	cfg := NumblastConfig{}
	cfg.Grid.Size = 1
	cfg.Grid.MinMatch = 0
	cfg.Timer.RoundSeconds = -5
	cfg.PowerUps.SpawnMinSeconds = 10
	cfg.PowerUps.SpawnMaxSeconds = 4 // below min
	cfg.PowerUps.SpawnChance = 250

	cfg.Sanitize()

	def := DefaultNumblastConfig()
	if cfg.Grid.Size != def.Grid.Size {
		t.Errorf("Grid.Size = %d, want default %d", cfg.Grid.Size, def.Grid.Size)
	}
	if cfg.Grid.MinMatch != def.Grid.MinMatch {
		t.Errorf("Grid.MinMatch = %d, want default %d", cfg.Grid.MinMatch, def.Grid.MinMatch)
	}
	if cfg.Timer.RoundSeconds != def.Timer.RoundSeconds {
		t.Errorf("Timer.RoundSeconds = %d, want default %d", cfg.Timer.RoundSeconds, def.Timer.RoundSeconds)
	}
	if cfg.PowerUps.SpawnMaxSeconds != cfg.PowerUps.SpawnMinSeconds {
		t.Errorf("SpawnMaxSeconds = %d, should be clamped to min %d",
			cfg.PowerUps.SpawnMaxSeconds, cfg.PowerUps.SpawnMinSeconds)
	}
	if cfg.PowerUps.SpawnChance != def.PowerUps.SpawnChance {
		t.Errorf("SpawnChance = %d, want default %d", cfg.PowerUps.SpawnChance, def.PowerUps.SpawnChance)
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		roundSeconds int
		spawnChance  int
	}{
		{DifficultyRelaxed, 90, 40},
		{DifficultyNormal, 60, 30},
		{DifficultyFrenzy, 45, 25},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultNumblastConfig()
			ApplyNumblastPreset(&cfg, tc.preset)

			if cfg.Timer.RoundSeconds != tc.roundSeconds {
				t.Errorf("RoundSeconds = %d, want %d", cfg.Timer.RoundSeconds, tc.roundSeconds)
			}
			if cfg.PowerUps.SpawnChance != tc.spawnChance {
				t.Errorf("SpawnChance = %d, want %d", cfg.PowerUps.SpawnChance, tc.spawnChance)
			}
		})
	}

	// Fixed preset leaves values alone
	cfg := DefaultNumblastConfig()
	cfg.Timer.RoundSeconds = 123
	ApplyNumblastPreset(&cfg, DifficultyFixed)
	if cfg.Timer.RoundSeconds != 123 {
		t.Errorf("fixed preset changed RoundSeconds to %d", cfg.Timer.RoundSeconds)
	}
}

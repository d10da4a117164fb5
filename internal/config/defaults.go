package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Grid: GridConfig{
			Width:      10,
			Height:     22,
			HiddenRows: 2,
			SpawnX:     3,
			SpawnY:     2,
		},
		Timing: TimingConfig{
			LockDelay:        30,
			EntryDelay:       25,
			ClearDelay:       40,
			ClearSweepTicks:  1,
			GameOverDelay:    60,
			GameOverRowTicks: 4,
			SoftDropGravity:  1,
		},
		Controls: ControlsConfig{
			AutoRepeat: AutoRepeatConfig{
				Delay:    15,
				Interval: 3,
			},
			SoftDropReleaseTicks: 30, // longer than a terminal key-repeat delay
		},
		Progression: ProgressionConfig{
			Enabled:       true,
			StartLevel:    1,
			LinesPerLevel: 10,
		},
		Scores: ScoresConfig{
			Keep: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_fixed":
		return defaultTetrisYAML
	default:
		return nil
	}
}

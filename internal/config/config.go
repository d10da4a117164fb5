// Package config provides YAML-based game configuration loading and
// difficulty presets for the tetris modes.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all configuration for a tetris session.
type TetrisConfig struct {
	Grid        GridConfig        `yaml:"grid"`
	Timing      TimingConfig      `yaml:"timing"`
	Controls    ControlsConfig    `yaml:"controls"`
	Progression ProgressionConfig `yaml:"progression"`
	Scores      ScoresConfig      `yaml:"scores"`
}

// GridConfig defines the well dimensions and the spawn origin.
type GridConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`      // includes hidden rows
	HiddenRows int `yaml:"hidden_rows"` // rows above the visible well
	SpawnX     int `yaml:"spawn_x"`
	SpawnY     int `yaml:"spawn_y"`
}

// TimingConfig holds the frame-counted delays. All values are ticks.
type TimingConfig struct {
	LockDelay        int `yaml:"lock_delay"`
	EntryDelay       int `yaml:"entry_delay"`
	ClearDelay       int `yaml:"clear_delay"`
	ClearSweepTicks  int `yaml:"clear_sweep_ticks"`
	GameOverDelay    int `yaml:"game_over_delay"`
	GameOverRowTicks int `yaml:"game_over_row_ticks"`
	SoftDropGravity  int `yaml:"soft_drop_gravity"`
}

// ControlsConfig tunes input handling.
type ControlsConfig struct {
	AutoRepeat AutoRepeatConfig `yaml:"autorepeat"`
	// Terminals send no key-release events, so soft drop switches itself
	// off after this many ticks without a fresh press. 0 disables.
	SoftDropReleaseTicks int  `yaml:"soft_drop_release_ticks"`
	StartPaused          bool `yaml:"start_paused"`
}

// AutoRepeatConfig defines held-shift repetition.
type AutoRepeatConfig struct {
	Delay    int `yaml:"delay"`    // frames before the first repeat
	Interval int `yaml:"interval"` // frames between repeats
}

// ProgressionConfig defines levels.
type ProgressionConfig struct {
	Enabled       bool `yaml:"enabled"` // false keeps the start level forever
	StartLevel    int  `yaml:"start_level"`
	LinesPerLevel int  `yaml:"lines_per_level"`
}

// ScoresConfig defines the high-score table.
type ScoresConfig struct {
	Keep int `yaml:"keep"` // entries retained per mode
}

// MaxStartLevel is the highest selectable start level.
const MaxStartLevel = 20

// Validate reports every impossible value in the config.
func (c TetrisConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	g := c.Grid
	check(g.Width >= 4, "grid.width must be at least 4, got %d", g.Width)
	check(g.Height > 0, "grid.height must be positive, got %d", g.Height)
	check(g.HiddenRows >= 0 && g.HiddenRows < g.Height,
		"grid.hidden_rows must be in [0, %d), got %d", g.Height, g.HiddenRows)
	check(g.SpawnX >= 0 && g.SpawnX+4 <= g.Width,
		"grid.spawn_x must leave room for a 4-wide piece, got %d", g.SpawnX)
	check(g.SpawnY >= 1 && g.SpawnY+2 <= g.Height,
		"grid.spawn_y must be in [1, %d], got %d", g.Height-2, g.SpawnY)

	t := c.Timing
	check(t.LockDelay >= 0, "timing.lock_delay must not be negative")
	check(t.EntryDelay >= 0, "timing.entry_delay must not be negative")
	check(t.ClearDelay >= 0, "timing.clear_delay must not be negative")
	check(t.ClearSweepTicks >= 1, "timing.clear_sweep_ticks must be at least 1")
	check(t.GameOverDelay >= 0, "timing.game_over_delay must not be negative")
	check(t.GameOverRowTicks >= 1, "timing.game_over_row_ticks must be at least 1")
	check(t.SoftDropGravity >= 0, "timing.soft_drop_gravity must not be negative")

	ar := c.Controls.AutoRepeat
	check(ar.Delay >= 0 && ar.Interval >= 1,
		"controls.autorepeat needs delay >= 0 and interval >= 1, got %d/%d", ar.Delay, ar.Interval)
	check(c.Controls.SoftDropReleaseTicks >= 0, "controls.soft_drop_release_ticks must not be negative")

	p := c.Progression
	check(p.StartLevel >= 1 && p.StartLevel <= MaxStartLevel,
		"progression.start_level must be in [1, %d], got %d", MaxStartLevel, p.StartLevel)
	check(!p.Enabled || p.LinesPerLevel > 0,
		"progression.lines_per_level must be positive when leveling is enabled")

	check(c.Scores.Keep > 0, "scores.keep must be positive, got %d", c.Scores.Keep)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid tetris config: %w", err)
	}
	return nil
}

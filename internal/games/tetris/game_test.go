package tetris

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/playfield"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/progression"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func resetSettings(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
		SetStartLevel(0)
		SetLogger(nil)
	})
}

func newGame(t *testing.T, cfg config.TetrisConfig) *Game {
	t.Helper()
	resetSettings(t)
	g := New()
	g.UseConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"tetris", "tetris_fixed"} {
		require.True(t, registry.Exists(id), id)
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
	assert.Equal(t, "Tetris (Fixed Level)", NewFixed().Title())
}

func TestResetStartsFallingImmediately(t *testing.T) {
	g := newGame(t, config.DefaultTetrisConfig())

	snap := g.Snapshot()
	assert.Equal(t, "falling", snap.Phase)
	assert.Equal(t, 1, snap.Level)
	assert.Zero(t, snap.Score)
	assert.False(t, g.State().GameOver)
	assert.Len(t, g.HighScores(), 10)
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newGame(t, config.DefaultTetrisConfig())
		for i := 0; i < 3000; i++ {
			in := core.NewInputFrame()
			switch i % 40 {
			case 5:
				in.Set(core.ActionLeft)
			case 12:
				in.Set(core.ActionRotateCW)
			case 20:
				in.Set(core.ActionRight)
			case 30:
				in.Set(core.ActionSoftDrop)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestPresetAndStartLevel(t *testing.T) {
	resetSettings(t)
	SetDifficultyPreset("hard")

	g := New()
	g.UseConfig(config.DefaultTetrisConfig())
	g.Reset(core.DefaultConfig())
	assert.Equal(t, 10, g.State().Level)
	assert.Equal(t, progression.GravityTicks(10, 60), g.field.Gravity())

	SetStartLevel(7)
	g.Reset(core.DefaultConfig())
	assert.Equal(t, 7, g.State().Level, "explicit start level beats the preset")

	SetStartLevel(50)
	g.Reset(core.DefaultConfig())
	assert.Equal(t, config.MaxStartLevel, g.State().Level)
}

func TestFixedModeDisablesLeveling(t *testing.T) {
	resetSettings(t)
	g := NewFixed()
	g.UseConfig(config.DefaultTetrisConfig())
	g.Reset(core.DefaultConfig())

	assert.Zero(t, g.tracker.LinesUntilLevelUp())
	g.tracker.OnLinesCleared(4)
	g.tracker.OnLinesCleared(4)
	g.tracker.OnLinesCleared(4)
	assert.Equal(t, 1, g.State().Level)
	assert.Equal(t, 12, g.State().Lines)
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newGame(t, config.DefaultTetrisConfig())
	g.Step(frame())

	g.Step(frame(core.ActionPause))
	require.True(t, g.State().Paused)
	frozen := g.Snapshot().Field

	for rep := 0; rep < 200; rep++ {
		g.Step(frame(core.ActionLeft, core.ActionSoftDrop))
	}
	assert.Equal(t, frozen, g.Snapshot().Field)

	g.Step(frame(core.ActionPause))
	assert.False(t, g.State().Paused)
	assert.NotEqual(t, frozen, g.Snapshot().Field)
}

func TestStartPaused(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Controls.StartPaused = true
	g := newGame(t, cfg)

	assert.True(t, g.State().Paused)
}

func wideConfig() config.TetrisConfig {
	cfg := config.DefaultTetrisConfig()
	cfg.Grid.Width = 20
	return cfg
}

func TestHeldShiftAutoRepeats(t *testing.T) {
	g := newGame(t, wideConfig())
	startX := g.field.Active().Origin().X

	first := frame(core.ActionRight)
	first.Hold(core.ActionRight)
	g.Step(first)
	assert.Equal(t, startX+1, g.field.Active().Origin().X)

	held := core.NewInputFrame()
	held.Hold(core.ActionRight)
	for rep := 0; rep < 20; rep++ { // frames 2..21
		g.Step(held)
	}
	assert.Equal(t, startX+3, g.field.Active().Origin().X, "repeats on frames 16 and 19")

	g.Step(held) // frame 22
	assert.Equal(t, startX+4, g.field.Active().Origin().X)

	for rep := 0; rep < 10; rep++ {
		g.Step(frame())
	}
	assert.Equal(t, startX+4, g.field.Active().Origin().X, "release stops repeating")
}

func TestPressWithoutHoldShiftsOnce(t *testing.T) {
	g := newGame(t, wideConfig())
	startX := g.field.Active().Origin().X

	g.Step(frame(core.ActionLeft))
	for rep := 0; rep < 30; rep++ {
		g.Step(frame())
	}
	assert.Equal(t, startX-1, g.field.Active().Origin().X)
}

func TestSoftDropAutoRelease(t *testing.T) {
	g := newGame(t, config.DefaultTetrisConfig())

	release := g.cfg.Controls.SoftDropReleaseTicks
	require.Equal(t, 30, release, "outlasts a terminal key-repeat delay")

	g.Step(frame(core.ActionSoftDrop))
	require.True(t, g.field.SoftDrop())
	for rep := 0; rep < release; rep++ {
		g.Step(frame())
	}
	assert.True(t, g.field.SoftDrop())
	g.Step(frame())
	assert.False(t, g.field.SoftDrop())
}

func TestSoftDropExplicitRelease(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Controls.SoftDropReleaseTicks = 0
	g := newGame(t, cfg)

	g.Step(frame(core.ActionSoftDrop))
	for rep := 0; rep < 50; rep++ {
		g.Step(frame())
	}
	require.True(t, g.field.SoftDrop(), "no auto release when disabled")

	g.Step(frame(core.ActionSoftDropRelease))
	assert.False(t, g.field.SoftDrop())
}

func TestSoftDropPressLocksGroundedPiece(t *testing.T) {
	g := newGame(t, config.DefaultTetrisConfig())

	for rep := 0; rep < 200; rep++ {
		if g.field.Phase() == playfield.PhaseLocking {
			break
		}
		g.Step(frame(core.ActionSoftDrop))
	}
	require.Equal(t, playfield.PhaseLocking, g.field.Phase())

	// soft drop is still switched on from the earlier presses
	g.Step(frame())
	require.Equal(t, playfield.PhaseLocking, g.field.Phase())
	require.True(t, g.field.SoftDrop())
	require.Zero(t, g.field.Locked())

	g.Step(frame(core.ActionSoftDrop))
	assert.Equal(t, playfield.PhaseSpawning, g.field.Phase())
	assert.Equal(t, 1, g.field.Locked())
}

// playUntilOver holds soft drop without steering, so pieces stack in the
// spawn columns until one cannot spawn.
func playUntilOver(t *testing.T, g *Game) {
	t.Helper()
	in := core.NewInputFrame()
	in.Hold(core.ActionSoftDrop)
	for rep := 0; rep < 20000; rep++ {
		if g.Step(in).State.GameOver {
			return
		}
	}
	t.Fatal("game did not end")
}

func TestSessionEndSubmitsHighScore(t *testing.T) {
	g := newGame(t, config.DefaultTetrisConfig())
	g.SetHighScores([]int{1})

	playUntilOver(t, g)

	state := g.State()
	require.True(t, state.GameOver)
	assert.Positive(t, state.Score, "soft drop rows score points")
	assert.Equal(t, state.Score, g.HighScores()[0])
	assert.NotEqual(t, playfield.EndNone, g.field.EndCause())

	frozen := g.Snapshot().Field
	for rep := 0; rep < 100; rep++ {
		g.Step(frame(core.ActionLeft, core.ActionPause))
	}
	assert.Equal(t, frozen, g.Snapshot().Field)
	assert.False(t, g.State().Paused, "no pausing after game over")

	g.Step(frame(core.ActionRestart))
	assert.False(t, g.State().GameOver)
	assert.Zero(t, g.State().Score)
	assert.Equal(t, state.Score, g.HighScores()[0], "high scores survive a restart")
}

func TestSetHighScores(t *testing.T) {
	g := newGame(t, config.DefaultTetrisConfig())
	g.SetHighScores([]int{300, 500})

	scores := g.HighScores()
	require.Len(t, scores, 10)
	assert.Equal(t, []int{500, 300, 0}, scores[:3])
}

func TestLoggerReceivesLifecycle(t *testing.T) {
	resetSettings(t)
	var buf bytes.Buffer
	SetLogger(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))

	g := New()
	g.UseConfig(config.DefaultTetrisConfig())
	g.Reset(core.DefaultConfig())
	g.Step(frame(core.ActionPause))

	out := buf.String()
	assert.True(t, strings.Contains(out, "session start"), out)
	assert.True(t, strings.Contains(out, "pause"), out)
}

func TestScoreKeep(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Scores.Keep = 3

	resetSettings(t)
	g := New()
	g.UseConfig(cfg)
	assert.Equal(t, 3, g.ScoreKeep(), "known before the first reset")

	g.Reset(core.DefaultConfig())
	assert.Equal(t, 3, g.ScoreKeep())
	assert.Len(t, g.HighScores(), 3)
}

func TestInvalidPinnedConfigFallsBackToDefaults(t *testing.T) {
	resetSettings(t)
	var buf bytes.Buffer
	SetLogger(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))

	cfg := config.DefaultTetrisConfig()
	cfg.Grid.Width = 0

	g := New()
	g.UseConfig(cfg)
	require.NotPanics(t, func() { g.Reset(core.DefaultConfig()) })

	def := config.DefaultTetrisConfig()
	assert.Equal(t, def.Grid.Width, g.field.Grid().Width())
	assert.Equal(t, playfield.PhaseFalling, g.field.Phase())
	assert.Contains(t, buf.String(), "pinned config invalid")
}

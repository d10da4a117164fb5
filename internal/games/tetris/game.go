// Package tetris is the game session controller: it wires the playfield
// simulation to progression, input intents and the platform's Game
// interface.
package tetris

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/playfield"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/progression"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeMarathon Mode = "marathon" // level rises every lines_per_level lines
	ModeFixed    Mode = "fixed"    // level never changes
)

// Package-level settings applied on every Reset (like the breakout pattern).
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
	logger             = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-20). 0 keeps the configured level.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetLogger routes game lifecycle events to l. nil silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the tetris session.
type Game struct {
	mode      Mode
	cfg       config.TetrisConfig
	pinnedCfg *config.TetrisConfig

	field   *playfield.Playfield
	tracker *progression.Tracker
	highs   *progression.HighScores
	seeded  []int
	repeat  AutoRepeat
	rng     *rand.Rand
	runtime core.RuntimeConfig

	tick         uint64
	paused       bool
	tooSmall     bool
	softDropIdle int
	toppedOut    bool
	sessionEnded bool
}

// New creates a marathon mode game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewFixed creates a fixed-level game.
func NewFixed() *Game {
	return &Game{mode: ModeFixed}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_fixed", func() registry.Game {
		return NewFixed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeFixed {
		return "tetris_fixed"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeFixed {
		return "Tetris (Fixed Level)"
	}
	return "Tetris"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode { return g.mode }

// UseConfig pins cfg for every following Reset instead of loading YAML.
// Presets and the selected start level still apply on top. An invalid cfg
// is replaced by the defaults, as a broken YAML file would be.
func (g *Game) UseConfig(cfg config.TetrisConfig) {
	g.pinnedCfg = &cfg
}

// SetHighScores seeds the high-score list, usually from storage. It takes
// effect immediately and survives resets.
func (g *Game) SetHighScores(scores []int) {
	g.seeded = append([]int(nil), scores...)
	if g.highs != nil {
		g.highs = progression.NewHighScores(g.cfg.Scores.Keep, g.seeded)
	}
}

// HighScores returns the current high-score list, best first.
func (g *Game) HighScores() []int {
	if g.highs == nil {
		return nil
	}
	return g.highs.Scores()
}

// ScoreKeep is how many results the score table retains for this mode.
func (g *Game) ScoreKeep() int {
	if g.tracker == nil {
		return g.loadConfig().Scores.Keep
	}
	return g.cfg.Scores.Keep
}

func (g *Game) loadConfig() config.TetrisConfig {
	var cfg config.TetrisConfig
	if g.pinnedCfg != nil {
		cfg = *g.pinnedCfg
		if err := cfg.Validate(); err != nil {
			logger.Warn("pinned config invalid, using defaults", "game", g.ID(), "error", err)
			cfg = config.DefaultTetrisConfig()
		}
	} else {
		var err error
		cfg, err = config.LoadTetris(configPath)
		if err != nil {
			logger.Warn("config load failed, using defaults", "path", configPath, "error", err)
			cfg = config.DefaultTetrisConfig()
		}
	}

	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	if selectedStartLevel > 0 {
		cfg.Progression.StartLevel = core.Clamp(selectedStartLevel, 1, config.MaxStartLevel)
	}
	if g.mode == ModeFixed {
		cfg.Progression.Enabled = false
	}
	return cfg
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.paused = g.cfg.Controls.StartPaused
	g.tooSmall = false
	g.softDropIdle = 0
	g.toppedOut = false
	g.sessionEnded = false

	linesPerLevel := 0
	if g.cfg.Progression.Enabled {
		linesPerLevel = g.cfg.Progression.LinesPerLevel
	}
	g.tracker = progression.NewTracker(g.cfg.Progression.StartLevel, linesPerLevel)
	g.tracker.OnLevelUp(func(level int) {
		logger.Debug("level up", "game", g.ID(), "level", level, "lines", g.tracker.Lines())
	})
	scores := g.seeded
	if g.highs != nil {
		scores = g.highs.Scores() // keep this process's results across restarts
	}
	g.highs = progression.NewHighScores(g.cfg.Scores.Keep, scores)
	g.repeat = NewAutoRepeat(g.cfg.Controls.AutoRepeat.Delay, g.cfg.Controls.AutoRepeat.Interval)

	s := session{g: g}
	g.field = playfield.New(playfield.Options{
		Width:       g.cfg.Grid.Width,
		Height:      g.cfg.Grid.Height,
		HiddenRows:  g.cfg.Grid.HiddenRows,
		Timing:      g.timing(rc.TickRate),
		Seed:        rc.Seed,
		Progression: s,
		Score:       s,
		Observer:    s,
	})

	logger.Debug("session start", "game", g.ID(), "seed", rc.Seed, "level", g.tracker.Level())
}

func (g *Game) timing(tickRate int) playfield.Timing {
	t := g.cfg.Timing
	return playfield.Timing{
		TickRate:         tickRate,
		LockDelay:        t.LockDelay,
		EntryDelay:       t.EntryDelay,
		ClearDelay:       t.ClearDelay,
		ClearSweepTicks:  t.ClearSweepTicks,
		GameOverDelay:    t.GameOverDelay,
		GameOverRowTicks: t.GameOverRowTicks,
		SoftDropGravity:  t.SoftDropGravity,
		Spawn:            core.Pt(g.cfg.Grid.SpawnX, g.cfg.Grid.SpawnY),
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if in.Has(core.ActionRestart) && g.sessionEnded {
		rc := g.runtime
		rc.Seed = g.rng.Int63()
		g.Reset(rc)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && g.field.Phase() != playfield.PhaseGameOver {
		g.paused = !g.paused
		g.repeat.Reset()
		logger.Debug("pause", "game", g.ID(), "paused", g.paused)
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.field.Phase() != playfield.PhaseGameOver {
		g.applyIntents(in)
	}

	g.field.Tick()

	if !g.toppedOut && g.field.Phase() == playfield.PhaseGameOver {
		g.toppedOut = true
		logger.Debug("top out", "game", g.ID(), "cause", g.field.EndCause(), "score", g.tracker.Score())
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) applyIntents(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.field.ShiftLeft()
		g.repeat.Press(core.ActionLeft)
	case in.Has(core.ActionRight):
		g.field.ShiftRight()
		g.repeat.Press(core.ActionRight)
	}
	if held := g.repeat.Held(); held != core.ActionNone && !in.IsHeld(held) {
		g.repeat.Release(held)
	}

	if in.Has(core.ActionRotateCW) {
		g.field.RotateClockwise()
	}
	if in.Has(core.ActionRotateCCW) {
		g.field.RotateAnticlockwise()
	}

	g.applySoftDrop(in)

	switch g.repeat.Tick() {
	case core.ActionLeft:
		g.field.ShiftLeft()
	case core.ActionRight:
		g.field.ShiftRight()
	}
}

// applySoftDrop turns soft drop on at the first press. Hosts that see key
// releases send ActionSoftDropRelease; terminal hosts only repeat presses,
// so soft drop also switches off after SoftDropReleaseTicks quiet ticks.
func (g *Game) applySoftDrop(in core.InputFrame) {
	switch {
	case in.Has(core.ActionSoftDropRelease):
		g.softDropIdle = 0
		if g.field.SoftDrop() {
			g.field.DeactivateSoftDrop()
		}
	case in.Has(core.ActionSoftDrop):
		// every press counts, so a press on a locking piece locks it
		g.softDropIdle = 0
		g.field.ActivateSoftDrop()
	case in.IsHeld(core.ActionSoftDrop):
		g.softDropIdle = 0
		if !g.field.SoftDrop() {
			g.field.ActivateSoftDrop()
		}
	case g.field.SoftDrop() && g.cfg.Controls.SoftDropReleaseTicks > 0:
		g.softDropIdle++
		if g.softDropIdle > g.cfg.Controls.SoftDropReleaseTicks {
			g.softDropIdle = 0
			g.field.DeactivateSoftDrop()
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.tracker == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.tracker.Score(),
		Level:    g.tracker.Level(),
		Lines:    g.tracker.Lines(),
		GameOver: g.sessionEnded,
		Paused:   g.paused,
	}
}

// session adapts the game to the playfield's collaborator interfaces.
type session struct{ g *Game }

func (s session) Level() int { return s.g.tracker.Level() }

func (s session) AddPoints(n int) { s.g.tracker.AddPoints(n) }

func (s session) OnLinesCleared(n int) {
	s.g.tracker.OnLinesCleared(n)
	logger.Debug("lines cleared", "game", s.g.ID(), "count", n, "score", s.g.tracker.Score())
}

func (s session) OnSessionEnd() {
	g := s.g
	g.sessionEnded = true
	kept := g.highs.Submit(g.tracker.Score())
	logger.Info("session end", "game", g.ID(),
		"score", g.tracker.Score(), "lines", g.tracker.Lines(), "level", g.tracker.Level(), "high_score", kept)
}

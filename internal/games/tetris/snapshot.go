package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/piece"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/playfield"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Phase    string
	Score    int
	Level    int
	Lines    int
	Next     piece.Shape
	Paused   bool
	GameOver bool
	Field    playfield.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Mode:     string(g.mode),
		Phase:    g.field.Phase().String(),
		Score:    g.tracker.Score(),
		Level:    g.tracker.Level(),
		Lines:    g.tracker.Lines(),
		Next:     g.field.Next(),
		Paused:   g.paused,
		GameOver: g.sessionEnded,
		Field:    g.field.Snapshot(),
	}
}

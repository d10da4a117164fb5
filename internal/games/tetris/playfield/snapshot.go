package playfield

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/piece"
)

// PieceSnapshot captures the active piece.
type PieceSnapshot struct {
	Shape    piece.Shape
	Token    Token
	Origin   core.Point
	Rotation int
	Cells    [4]core.Point
}

// Snapshot is the full serializable state of a playfield, used for
// determinism tests and debugging.
type Snapshot struct {
	Phase          Phase
	Cause          EndCause
	Active         *PieceSnapshot
	Next           piece.Shape
	Gravity        int
	GravityCounter int
	LockCounter    int
	EntryCounter   int
	SoftDrop       bool
	ClearRows      []int
	ClearTick      int
	GameOverTick   int
	Ended          bool
	Locked         int
	Grid           [][]Cell
}

// Snapshot returns a deep copy of the playfield state.
func (p *Playfield) Snapshot() Snapshot {
	s := Snapshot{
		Phase:          p.phase,
		Cause:          p.cause,
		Next:           p.queue.PeekNext(),
		Gravity:        p.gravity,
		GravityCounter: p.gravityCounter,
		LockCounter:    p.lockCounter,
		EntryCounter:   p.entryCounter,
		SoftDrop:       p.softDrop,
		ClearRows:      append([]int(nil), p.clearRows...),
		ClearTick:      p.clearTick,
		GameOverTick:   p.overTick,
		Ended:          p.ended,
		Locked:         p.locked,
		Grid:           p.grid.Rows(),
	}
	if a := p.active; a != nil {
		s.Active = &PieceSnapshot{
			Shape:    a.shape,
			Token:    a.token,
			Origin:   a.origin,
			Rotation: a.rotation,
			Cells:    a.cells,
		}
	}
	return s
}

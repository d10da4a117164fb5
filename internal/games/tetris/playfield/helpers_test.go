package playfield

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/piece"
)

// debris is a locked block that belongs to no live piece.
var debris = Cell{Shape: piece.Z, Color: core.ColorGray}

type recordingProgression struct {
	level   int
	cleared []int
}

func (r *recordingProgression) OnLinesCleared(n int) { r.cleared = append(r.cleared, n) }
func (r *recordingProgression) Level() int           { return r.level }

type pointCounter struct{ points int }

func (c *pointCounter) AddPoints(n int) { c.points += n }

type endCounter struct{ ends int }

func (c *endCounter) OnSessionEnd() { c.ends++ }

func newTestField(prog Progression, score ScoreSink, obs SessionObserver) *Playfield {
	opts := DefaultOptions()
	opts.Seed = 42
	opts.Progression = prog
	opts.Score = score
	opts.Observer = obs
	return New(opts)
}

// setActive replaces whatever piece is in play with shape at origin.
func setActive(p *Playfield, shape piece.Shape, origin core.Point, rotation int) *ActivePiece {
	if p.active != nil {
		p.active.lift()
	}
	p.lastToken++
	a := NewActivePiece(p.grid, shape, p.lastToken, origin)
	a.moveTo(origin, rotation)
	a.Place()
	p.active = a
	p.phase = PhaseFalling
	p.gravityCounter = 0
	p.lockCounter = 0
	return a
}

// fillRow places debris across row y, skipping the listed columns.
func fillRow(g *Grid, y int, skip ...int) {
	holes := map[int]bool{}
	for _, x := range skip {
		holes[x] = true
	}
	for x := 0; x < g.Width(); x++ {
		if !holes[x] {
			g.Place(core.Pt(x, y), debris)
		}
	}
}

func tickN(p *Playfield, n int) {
	for rep := 0; rep < n; rep++ {
		p.Tick()
	}
}

func tickUntil(t *testing.T, p *Playfield, limit int, done func() bool) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		p.Tick()
		if done() {
			return i
		}
	}
	t.Fatalf("condition not reached within %d ticks (phase %s)", limit, p.Phase())
	return 0
}

func requireContractPanic(t *testing.T, fn func()) *ContractError {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()
	require.NotNil(t, got, "expected a contract violation")
	err, ok := got.(*ContractError)
	require.True(t, ok, "panic value %T is not *ContractError", got)
	return err
}

func ownedCells(g *Grid, owner Token) int {
	n := 0
	for _, row := range g.Rows() {
		for _, c := range row {
			if c.Filled && c.Owner == owner {
				n++
			}
		}
	}
	return n
}

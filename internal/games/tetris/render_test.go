package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/piece"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/playfield"
)

// On 80x24 the 42x22 layout starts at (19, 1); the well interior spans
// x 20..39 and y 2..21.
func countBlocksInWell(s *core.Screen) int {
	n := 0
	for y := 2; y <= 21; y++ {
		for x := 20; x <= 39; x++ {
			if s.Get(x, y) == '█' {
				n++
			}
		}
	}
	return n
}

func TestRenderLayout(t *testing.T) {
	g := newGame(t, config.DefaultTetrisConfig())
	s := core.NewScreen(80, 24)
	g.Render(s)

	assert.Equal(t, '┌', s.Get(19, 1))
	assert.Equal(t, '└', s.Get(19, 22))
	assert.Equal(t, '┐', s.Get(40, 1))
	assert.Equal(t, 8, countBlocksInWell(s), "four cells, two columns each")

	out := s.String()
	for _, want := range []string{"NEXT", "SCORE", "LEVEL", "LINES", "HIGH", "Tetris"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderSkipsHiddenRows(t *testing.T) {
	g := newGame(t, config.DefaultTetrisConfig())
	g.field.Grid().Place(core.Pt(0, 0), playfield.Cell{Shape: piece.Z, Color: core.ColorRed})

	s := core.NewScreen(80, 24)
	g.Render(s)
	assert.Equal(t, 8, countBlocksInWell(s))
}

func TestRenderPausedHidesWell(t *testing.T) {
	g := newGame(t, config.DefaultTetrisConfig())
	g.Step(frame(core.ActionPause))

	s := core.NewScreen(80, 24)
	g.Render(s)
	assert.Zero(t, countBlocksInWell(s))
	assert.Contains(t, s.String(), "PAUSED")
	assert.NotContains(t, s.String(), "·")
}

func TestRenderTooSmallPausesSimulation(t *testing.T) {
	g := newGame(t, config.DefaultTetrisConfig())
	s := core.NewScreen(30, 10)
	g.Render(s)

	assert.True(t, strings.Contains(s.String(), "Window too small"))

	before := g.Snapshot().Field
	for rep := 0; rep < 100; rep++ {
		g.Step(frame())
	}
	assert.Equal(t, before, g.Snapshot().Field)

	g.Render(core.NewScreen(80, 24))
	g.Step(frame())
	assert.NotEqual(t, before, g.Snapshot().Field)
}

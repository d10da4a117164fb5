package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestStateCounts(t *testing.T) {
	want := map[Shape]int{I: 2, J: 4, L: 4, O: 1, S: 2, T: 4, Z: 2}
	for s, n := range want {
		assert.Equal(t, n, s.States(), "shape %s", s)
	}
}

func TestEveryStateHasFourDistinctCells(t *testing.T) {
	for _, s := range Shapes() {
		for r := 0; r < s.States(); r++ {
			seen := map[core.Point]bool{}
			for _, p := range s.Offsets(r) {
				require.False(t, seen[p], "shape %s state %d repeats offset %v", s, r, p)
				seen[p] = true
			}
		}
	}
}

func TestNextRotationWraps(t *testing.T) {
	tests := []struct {
		shape    Shape
		current  int
		dir      Direction
		expected int
	}{
		{T, 3, Clockwise, 0},
		{T, 0, Anticlockwise, 3},
		{I, 1, Clockwise, 0},
		{I, 0, Anticlockwise, 1},
		{O, 0, Clockwise, 0},
		{O, 0, Anticlockwise, 0},
		{J, 1, Clockwise, 2},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.shape.NextRotation(tc.current, tc.dir),
			"%s from %d dir %d", tc.shape, tc.current, tc.dir)
	}
}

func TestClockwiseThenAnticlockwiseIsIdentity(t *testing.T) {
	for _, s := range Shapes() {
		for r := 0; r < s.States(); r++ {
			back := s.NextRotation(s.NextRotation(r, Clockwise), Anticlockwise)
			assert.Equal(t, r, back, "shape %s state %d", s, r)
			assert.Equal(t, s.Offsets(r), s.Offsets(back))
		}
	}
}

func TestOffsetsWrapIndex(t *testing.T) {
	assert.Equal(t, T.Offsets(0), T.Offsets(4))
	assert.Equal(t, T.Offsets(3), T.Offsets(-1))
	assert.Equal(t, O.Offsets(0), O.Offsets(7))
}

func TestOnlyORotatesAsNoOp(t *testing.T) {
	for _, s := range Shapes() {
		assert.Equal(t, s != O, s.Rotates(), "shape %s", s)
	}
}

func TestColors(t *testing.T) {
	want := map[Shape]core.Color{
		I: core.ColorCyan,
		J: core.ColorBlue,
		L: core.ColorOrange,
		O: core.ColorYellow,
		S: core.ColorGreen,
		T: core.ColorMagenta,
		Z: core.ColorRed,
	}
	for s, c := range want {
		assert.Equal(t, c, s.Color(), "shape %s", s)
	}
}

func TestInvalidShapePanics(t *testing.T) {
	assert.Equal(t, "Shape(9)", Shape(9).String())
	assert.Panics(t, func() { Shape(9).Offsets(0) })
}

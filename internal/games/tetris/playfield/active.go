package playfield

import (
	"slices"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/piece"
)

// ActivePiece is the falling piece. Its four blocks live in the grid under
// the piece's token; every move lifts them, recomputes positions and puts
// them back, so no caller ever sees old and new positions at once.
type ActivePiece struct {
	grid     *Grid
	shape    piece.Shape
	token    Token
	origin   core.Point
	rotation int
	cells    [4]core.Point
}

// NewActivePiece builds a piece at origin in rotation state 0. The piece
// is not written to the grid until Place is called.
func NewActivePiece(g *Grid, shape piece.Shape, token Token, origin core.Point) *ActivePiece {
	a := &ActivePiece{grid: g, shape: shape, token: token}
	a.moveTo(origin, 0)
	return a
}

// Shape returns the tetromino kind.
func (a *ActivePiece) Shape() piece.Shape { return a.shape }

// Token returns the ownership token stamped on the piece's grid cells.
func (a *ActivePiece) Token() Token { return a.token }

// Origin returns the top-left of the piece's bounding box.
func (a *ActivePiece) Origin() core.Point { return a.origin }

// Rotation returns the rotation index, 0 being the spawn orientation.
func (a *ActivePiece) Rotation() int { return a.rotation }

// Cells returns the four grid cells the piece occupies.
func (a *ActivePiece) Cells() [4]core.Point { return a.cells }

func layout(origin core.Point, offsets [4]core.Point) [4]core.Point {
	var out [4]core.Point
	for i, off := range offsets {
		out[i] = origin.Add(off)
	}
	return out
}

func (a *ActivePiece) moveTo(origin core.Point, rotation int) {
	a.origin = origin
	a.rotation = rotation
	a.cells = layout(origin, a.shape.Offsets(rotation))
}

func (a *ActivePiece) collides(cells [4]core.Point) bool {
	for _, p := range cells {
		if !a.grid.InBounds(p) {
			return true
		}
		c := a.grid.Cell(p)
		if c.Filled && c.Owner != a.token {
			return true
		}
	}
	return false
}

func (a *ActivePiece) block() Cell {
	return Cell{Filled: true, Shape: a.shape, Color: a.shape.Color(), Owner: a.token}
}

// Place writes the piece's blocks into the grid.
func (a *ActivePiece) Place() {
	for _, p := range a.cells {
		a.grid.Place(p, a.block())
	}
}

func (a *ActivePiece) forcePlace() {
	for _, p := range a.cells {
		a.grid.Force(p, a.block())
	}
}

func (a *ActivePiece) lift() {
	for _, p := range a.cells {
		a.grid.Remove(p, a.token)
	}
}

// WouldCollide reports whether the piece offset by (dx, dy) would leave the
// grid or overlap a block that is not its own.
func (a *ActivePiece) WouldCollide(dx, dy int) bool {
	return a.collides(layout(a.origin.Add(core.Pt(dx, dy)), a.shape.Offsets(a.rotation)))
}

// Shift moves the piece by (dx, dy) unless that collides. It reports
// whether the piece moved.
func (a *ActivePiece) Shift(dx, dy int) bool {
	if a.WouldCollide(dx, dy) {
		return false
	}
	a.lift()
	a.moveTo(a.origin.Add(core.Pt(dx, dy)), a.rotation)
	a.Place()
	return true
}

// Rotate turns the piece in place. There is no wall kick: if any cell of
// the new state collides the rotation is rejected and nothing changes.
// Rotating an O never changes anything.
func (a *ActivePiece) Rotate(dir piece.Direction) bool {
	if !a.shape.Rotates() {
		return false
	}
	next := a.shape.NextRotation(a.rotation, dir)
	if a.collides(layout(a.origin, a.shape.Offsets(next))) {
		return false
	}
	a.lift()
	a.moveTo(a.origin, next)
	a.Place()
	return true
}

// IsOnGround reports whether the piece cannot move down.
func (a *ActivePiece) IsOnGround() bool {
	return a.WouldCollide(0, 1)
}

// OccupiedRows returns the distinct rows the piece covers, ascending.
func (a *ActivePiece) OccupiedRows() []int {
	rows := make([]int, 0, 4)
	for _, p := range a.cells {
		rows = append(rows, p.Y)
	}
	slices.Sort(rows)
	return slices.Compact(rows)
}

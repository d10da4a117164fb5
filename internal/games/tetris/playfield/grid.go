package playfield

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/piece"
)

// Token identifies the piece that owns a block. Zero means no owner.
type Token uint32

// Cell is one grid square. Locked blocks keep the token of the piece they
// came from; a new piece always gets a fresh token, so only the active
// piece's own blocks share its token.
type Cell struct {
	Filled bool
	Shape  piece.Shape
	Color  core.Color
	Owner  Token
}

// Grid is the fixed-size block matrix. Rows [0, hiddenRows) sit above the
// visible well but still take part in collision.
type Grid struct {
	width      int
	height     int
	hiddenRows int
	cells      [][]Cell // [y][x]
}

// NewGrid allocates an empty grid. It panics on impossible dimensions.
func NewGrid(width, height, hiddenRows int) *Grid {
	if width <= 0 || height <= 0 || hiddenRows < 0 || hiddenRows >= height {
		panic(fmt.Sprintf("playfield: invalid grid %dx%d with %d hidden rows", width, height, hiddenRows))
	}
	g := &Grid{width: width, height: height, hiddenRows: hiddenRows}
	g.cells = make([][]Cell, height)
	for y := range g.cells {
		g.cells[y] = make([]Cell, width)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows, hidden rows included.
func (g *Grid) Height() int { return g.height }

// HiddenRows returns how many rows at the top are above the visible well.
func (g *Grid) HiddenRows() int { return g.hiddenRows }

// InBounds reports whether p lies inside the grid, hidden rows included.
func (g *Grid) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

func (g *Grid) at(op string, p core.Point) *Cell {
	if !g.InBounds(p) {
		violate(op, p, "out of bounds")
	}
	return &g.cells[p.Y][p.X]
}

func (g *Grid) checkRow(op string, y int) {
	if y < 0 || y >= g.height {
		violate(op, core.Pt(0, y), "row out of bounds")
	}
}

// Cell returns the cell at p.
func (g *Grid) Cell(p core.Point) Cell {
	return *g.at("read", p)
}

// IsEmpty reports whether no block occupies p.
func (g *Grid) IsEmpty(p core.Point) bool {
	return !g.at("read", p).Filled
}

// Place puts a block on an empty cell.
func (g *Grid) Place(p core.Point, c Cell) {
	dst := g.at("place", p)
	if dst.Filled {
		violate("place", p, "cell already occupied")
	}
	c.Filled = true
	*dst = c
}

// Remove takes owner's block off p.
func (g *Grid) Remove(p core.Point, owner Token) {
	dst := g.at("remove", p)
	if !dst.Filled {
		violate("remove", p, "no block present")
	}
	if dst.Owner != owner {
		violate("remove", p, fmt.Sprintf("block owned by %d, not %d", dst.Owner, owner))
	}
	*dst = Cell{}
}

// Force writes a block regardless of occupancy. Only a failed spawn uses
// it, so the final frame shows the piece stacked on top of the pile.
func (g *Grid) Force(p core.Point, c Cell) {
	c.Filled = true
	*g.at("force", p) = c
}

// ClearCell empties p.
func (g *Grid) ClearCell(p core.Point) {
	*g.at("clear", p) = Cell{}
}

// ClearRow empties row y.
func (g *Grid) ClearRow(y int) {
	g.checkRow("clear row", y)
	clear(g.cells[y])
}

// RowFull reports whether every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	g.checkRow("row full", y)
	for _, c := range g.cells[y] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// RowEmpty reports whether row y holds no blocks.
func (g *Grid) RowEmpty(y int) bool {
	g.checkRow("row empty", y)
	for _, c := range g.cells[y] {
		if c.Filled {
			return false
		}
	}
	return true
}

// Empty reports whether the whole grid is empty.
func (g *Grid) Empty() bool {
	for y := range g.cells {
		if !g.RowEmpty(y) {
			return false
		}
	}
	return true
}

// Collapse removes the given rows and lets everything above fall into the
// gaps: each remaining row moves down by the number of removed rows below
// it. Nothing moves when the grid is already empty.
func (g *Grid) Collapse(rows []int) {
	if len(rows) == 0 || g.Empty() {
		return
	}
	removed := make(map[int]bool, len(rows))
	for _, y := range rows {
		g.checkRow("collapse", y)
		removed[y] = true
	}

	write := g.height - 1
	for read := g.height - 1; read >= 0; read-- {
		if removed[read] {
			continue
		}
		if write != read {
			copy(g.cells[write], g.cells[read])
		}
		write--
	}
	for ; write >= 0; write-- {
		clear(g.cells[write])
	}
}

// Rows returns a deep copy of the grid, top row first.
func (g *Grid) Rows() [][]Cell {
	out := make([][]Cell, g.height)
	for y := range g.cells {
		out[y] = append([]Cell(nil), g.cells[y]...)
	}
	return out
}

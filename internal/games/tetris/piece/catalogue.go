// Package piece defines the seven tetromino shapes, their rotation states
// and the bag randomizer that deals them.
package piece

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	I Shape = iota
	J
	L
	O
	S
	T
	Z
)

// Count is the number of distinct shapes.
const Count = 7

// Direction is a rotation direction.
type Direction int

const (
	Clockwise     Direction = 1
	Anticlockwise Direction = -1
)

type definition struct {
	name   string
	color  core.Color
	states [][4]core.Point
}

func pts(xy ...int) [4]core.Point {
	var out [4]core.Point
	for i := range out {
		out[i] = core.Pt(xy[2*i], xy[2*i+1])
	}
	return out
}

// Offsets are relative to the piece origin, y grows downwards.
var catalogue = [Count]definition{
	I: {"I", core.ColorCyan, [][4]core.Point{
		pts(0, 0, 1, 0, 2, 0, 3, 0),
		pts(2, -1, 2, 0, 2, 1, 2, 2),
	}},
	J: {"J", core.ColorBlue, [][4]core.Point{
		pts(0, 0, 0, 1, 1, 1, 2, 1),
		pts(2, -1, 1, -1, 1, 0, 1, 1),
		pts(2, 1, 2, 0, 1, 0, 0, 0),
		pts(0, 1, 1, 1, 1, 0, 1, -1),
	}},
	L: {"L", core.ColorOrange, [][4]core.Point{
		pts(0, 1, 1, 1, 2, 1, 2, 0),
		pts(1, -1, 1, 0, 1, 1, 2, 1),
		pts(2, 0, 1, 0, 0, 0, 0, 1),
		pts(1, 1, 1, 0, 1, -1, 0, -1),
	}},
	O: {"O", core.ColorYellow, [][4]core.Point{
		pts(1, 0, 1, 1, 2, 1, 2, 0),
	}},
	S: {"S", core.ColorGreen, [][4]core.Point{
		pts(0, 1, 1, 1, 1, 0, 2, 0),
		pts(0, -1, 0, 0, 1, 0, 1, 1),
	}},
	T: {"T", core.ColorMagenta, [][4]core.Point{
		pts(1, 0, 0, 1, 1, 1, 2, 1),
		pts(2, 0, 1, -1, 1, 0, 1, 1),
		pts(1, 1, 2, 0, 1, 0, 0, 0),
		pts(0, 0, 1, 1, 1, 0, 1, -1),
	}},
	Z: {"Z", core.ColorRed, [][4]core.Point{
		pts(0, 0, 1, 0, 1, 1, 2, 1),
		pts(2, -1, 2, 0, 1, 0, 1, 1),
	}},
}

// Shapes returns every shape in catalogue order.
func Shapes() []Shape {
	return []Shape{I, J, L, O, S, T, Z}
}

// Valid reports whether s names a catalogue shape.
func (s Shape) Valid() bool {
	return s < Count
}

func (s Shape) def() *definition {
	if !s.Valid() {
		panic(fmt.Sprintf("piece: invalid shape %d", uint8(s)))
	}
	return &catalogue[s]
}

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
	return catalogue[s].name
}

// Color returns the display color of the shape.
func (s Shape) Color() core.Color {
	return s.def().color
}

// States returns the number of rotation states: 1 for O, 2 for I/S/Z, 4 for J/L/T.
func (s Shape) States() int {
	return len(s.def().states)
}

// Rotates reports whether rotating can change the shape's cells.
// O is the only shape for which rotation is a no-op.
func (s Shape) Rotates() bool {
	return s != O
}

// NextRotation returns the rotation index reached from current in direction
// dir, wrapping in both directions.
func (s Shape) NextRotation(current int, dir Direction) int {
	n := s.States()
	return ((current+int(dir))%n + n) % n
}

// Offsets returns the four cell offsets of the given rotation state.
// The index wraps modulo the number of states.
func (s Shape) Offsets(rotation int) [4]core.Point {
	d := s.def()
	n := len(d.states)
	return d.states[(rotation%n+n)%n]
}

package playfield

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ContractError describes a broken grid invariant: reading outside the
// grid, placing onto an occupied cell, or removing a block that is not
// where its owner expects it. These are programming errors; the playfield
// panics with a *ContractError instead of returning them.
type ContractError struct {
	Op     string
	Pos    core.Point
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("playfield: %s at (%d,%d): %s", e.Op, e.Pos.X, e.Pos.Y, e.Reason)
}

func violate(op string, p core.Point, reason string) {
	panic(&ContractError{Op: op, Pos: p, Reason: reason})
}

// Package progression holds the level, score and speed rules of a session:
// the gravity formula, line scoring, level-ups and the high-score list.
package progression

import (
	"math"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// MaxGravityLevel is the level past which gravity stops getting faster.
// The formula's base turns negative far beyond it, and by this level the
// interval has long since reached one tick.
const MaxGravityLevel = 20

// GravityTicks returns the number of ticks between automatic drops at the
// given 1-indexed level:
//
//	ceil((0.8 - (L-1)*0.007)^(L-1) * tickRate)
//
// The result is never below one tick.
func GravityTicks(level, tickRate int) int {
	l := float64(core.Clamp(level, 1, MaxGravityLevel) - 1)
	seconds := math.Pow(0.8-l*0.007, l)
	ticks := int(math.Ceil(seconds * float64(tickRate)))
	return core.Max(ticks, 1)
}

// LinePoints returns the base points for clearing n lines with one lock,
// before the level multiplier. Counts other than 1..4 score nothing.
func LinePoints(n int) int {
	switch n {
	case 1:
		return 40
	case 2:
		return 100
	case 3:
		return 300
	case 4:
		return 1200
	default:
		return 0
	}
}

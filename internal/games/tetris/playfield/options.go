package playfield

import "github.com/vovakirdan/tui-tetris/internal/core"

// Progression supplies the level and is told about cleared lines.
type Progression interface {
	OnLinesCleared(count int)
	Level() int
}

// ScoreSink receives points earned inside the playfield (soft drop).
type ScoreSink interface {
	AddPoints(n int)
}

// SessionObserver is told once when the game-over wipe has finished.
type SessionObserver interface {
	OnSessionEnd()
}

// Timing holds every frame-counted delay of the state machine.
// A counter must exceed its delay before the transition happens.
type Timing struct {
	TickRate         int        // host ticks per second, feeds the gravity formula
	LockDelay        int        // grounded ticks before a piece locks
	EntryDelay       int        // ticks between a lock and the next spawn
	ClearDelay       int        // settle time after a line clear starts
	ClearSweepTicks  int        // ticks spent clearing each column
	GameOverDelay    int        // ticks before the game-over wipe starts
	GameOverRowTicks int        // ticks per wiped row
	SoftDropGravity  int        // gravity interval while soft dropping
	Spawn            core.Point // spawn origin; one row higher is tried on collision
}

// DefaultTiming returns the classic 60 tick per second timings.
func DefaultTiming() Timing {
	return Timing{
		TickRate:         60,
		LockDelay:        30,
		EntryDelay:       25,
		ClearDelay:       40,
		ClearSweepTicks:  1,
		GameOverDelay:    60,
		GameOverRowTicks: 4,
		SoftDropGravity:  1,
		Spawn:            core.Pt(3, 2),
	}
}

// Options configures a Playfield.
type Options struct {
	Width      int
	Height     int
	HiddenRows int
	Timing     Timing
	Seed       int64

	Progression Progression     // nil: level 1 forever
	Score       ScoreSink       // nil: points dropped
	Observer    SessionObserver // nil: session end unobserved
}

// DefaultOptions returns a 10x22 well with two hidden rows.
func DefaultOptions() Options {
	return Options{
		Width:      10,
		Height:     22,
		HiddenRows: 2,
		Timing:     DefaultTiming(),
	}
}

type fixedLevel struct{}

func (fixedLevel) OnLinesCleared(int) {}
func (fixedLevel) Level() int         { return 1 }

type discardPoints struct{}

func (discardPoints) AddPoints(int) {}

type ignoreEnd struct{}

func (ignoreEnd) OnSessionEnd() {}

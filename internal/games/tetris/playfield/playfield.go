// Package playfield is the simulation core: the block grid, the active
// piece and the phase state machine that spawns, drops, locks and clears.
//
// A Playfield advances exactly one step per Tick. Every multi-tick sequence
// (entry delay, lock delay, line-clear sweep, game-over wipe) is an explicit
// counter, so the host may pause, snapshot or reset between any two ticks.
package playfield

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/piece"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/progression"
)

// EndCause tells why a session ended.
type EndCause int

const (
	EndNone     EndCause = iota
	EndBlockOut          // a new piece could not be placed
	EndLockOut           // a piece locked entirely inside the hidden rows
)

func (c EndCause) String() string {
	switch c {
	case EndBlockOut:
		return "block out"
	case EndLockOut:
		return "lock out"
	default:
		return "none"
	}
}

// Playfield owns the grid, the next queue and every phase counter.
type Playfield struct {
	opts   Options
	timing Timing

	grid   *Grid
	queue  *piece.Queue
	active *ActivePiece
	phase  Phase
	cause  EndCause

	lastToken Token
	locked    int

	gravity        int
	gravityCounter int
	lockCounter    int
	entryCounter   int
	softDrop       bool

	clearRows []int
	clearTick int

	overTick int
	ended    bool
}

// New builds a playfield and spawns the first piece straight away.
func New(opts Options) *Playfield {
	if opts.Progression == nil {
		opts.Progression = fixedLevel{}
	}
	if opts.Score == nil {
		opts.Score = discardPoints{}
	}
	if opts.Observer == nil {
		opts.Observer = ignoreEnd{}
	}
	t := opts.Timing
	if t.TickRate <= 0 {
		t.TickRate = 60
	}
	t.ClearSweepTicks = core.Max(t.ClearSweepTicks, 1)
	t.GameOverRowTicks = core.Max(t.GameOverRowTicks, 1)
	t.SoftDropGravity = core.Max(t.SoftDropGravity, 0)

	p := &Playfield{opts: opts, timing: t}
	p.Reset(opts.Seed)
	return p
}

// Reset discards all state and starts over with a fresh grid, a fresh bag
// seeded with seed and zeroed counters. The first piece spawns immediately.
func (p *Playfield) Reset(seed int64) {
	p.grid = NewGrid(p.opts.Width, p.opts.Height, p.opts.HiddenRows)
	p.queue = piece.NewQueue(piece.NewBag(rand.New(rand.NewSource(seed))))
	p.active = nil
	p.cause = EndNone
	p.lastToken = 0
	p.locked = 0
	p.gravityCounter = 0
	p.lockCounter = 0
	p.entryCounter = 0
	p.softDrop = false
	p.clearRows = nil
	p.clearTick = 0
	p.overTick = 0
	p.ended = false
	p.gravity = p.levelGravity()
	p.spawn()
}

func (p *Playfield) levelGravity() int {
	return progression.GravityTicks(p.opts.Progression.Level(), p.timing.TickRate)
}

// Tick advances the state machine by one step.
func (p *Playfield) Tick() {
	switch p.phase {
	case PhaseGameOver:
		p.tickGameOver()
	case PhaseClearing:
		p.tickClearing()
	case PhaseFalling, PhaseLocking:
		p.tickGravity()
		p.tickLock()
	case PhaseSpawning:
		p.tickSpawning()
	}
}

func (p *Playfield) tickSpawning() {
	if p.entryCounter > p.timing.EntryDelay {
		p.entryCounter = 0
		p.spawn()
		return
	}
	p.entryCounter++
}

func (p *Playfield) spawn() {
	p.lastToken++
	a := NewActivePiece(p.grid, p.queue.Advance(), p.lastToken, p.timing.Spawn)

	if a.WouldCollide(0, 0) {
		a.moveTo(p.timing.Spawn.Add(core.Pt(0, -1)), 0)
		if a.WouldCollide(0, 0) {
			a.forcePlace()
			p.enterGameOver(EndBlockOut)
			return
		}
	}
	a.Place()
	p.active = a
	p.phase = PhaseFalling
}

// tickGravity keeps the counter rules exactly: once grounded and locking,
// the gravity counter is pinned to zero, but a grounded piece that has not
// started locking keeps counting until the interval runs out.
func (p *Playfield) tickGravity() {
	grounded := p.active.IsOnGround()

	if p.gravityCounter > p.gravity {
		if grounded {
			p.phase = PhaseLocking
		} else {
			p.active.Shift(0, 1)
			p.phase = PhaseFalling
			p.lockCounter = 0
			if p.softDrop {
				p.opts.Score.AddPoints(1)
			}
		}
		p.gravityCounter = 0
		return
	}

	switch {
	case !grounded:
		if p.phase == PhaseLocking {
			p.lockCounter = 0
		}
		p.phase = PhaseFalling
		p.gravityCounter++
	case p.phase == PhaseLocking:
		p.gravityCounter = 0
	default:
		p.gravityCounter++
	}
}

func (p *Playfield) tickLock() {
	if p.phase != PhaseLocking {
		return
	}
	p.lockCounter++
	if p.lockCounter > p.timing.LockDelay {
		p.lock()
	}
}

// lock turns the active piece into permanent blocks. Its cells already sit
// in the grid, so locking only drops the reference.
func (p *Playfield) lock() {
	a := p.active
	p.active = nil
	p.lockCounter = 0
	p.locked++

	rows := a.OccupiedRows()
	if rows[len(rows)-1] < p.grid.HiddenRows() {
		p.enterGameOver(EndLockOut)
		return
	}

	var full []int
	for _, y := range rows {
		if p.grid.RowFull(y) {
			full = append(full, y)
		}
	}
	if len(full) > 0 {
		p.phase = PhaseClearing
		p.clearRows = full
		p.clearTick = 0
		return
	}
	p.phase = PhaseSpawning
	p.entryCounter = 0
}

// tickClearing sweeps the full rows left to right, one column per
// ClearSweepTicks, then waits until ClearDelay has passed before collapsing.
func (p *Playfield) tickClearing() {
	p.clearTick++
	step := p.timing.ClearSweepTicks
	sweep := p.grid.Width() * step

	if p.clearTick <= sweep {
		if (p.clearTick-1)%step == 0 {
			x := (p.clearTick - 1) / step
			for _, y := range p.clearRows {
				p.grid.ClearCell(core.Pt(x, y))
			}
		}
		return
	}
	if p.clearTick <= core.Max(sweep, p.timing.ClearDelay+1) {
		return
	}

	n := len(p.clearRows)
	p.grid.Collapse(p.clearRows)
	p.clearRows = nil
	p.clearTick = 0

	p.opts.Progression.OnLinesCleared(n)
	if !p.softDrop {
		p.gravity = p.levelGravity()
	}
	p.phase = PhaseSpawning
	p.entryCounter = 0
}

func (p *Playfield) enterGameOver(cause EndCause) {
	p.active = nil
	p.phase = PhaseGameOver
	p.cause = cause
	p.overTick = 0
}

// tickGameOver waits GameOverDelay, wipes the grid one row per
// GameOverRowTicks from the top, then reports the end once and goes inert.
func (p *Playfield) tickGameOver() {
	if p.ended {
		return
	}
	p.overTick++

	k := p.overTick - (p.timing.GameOverDelay + 2)
	if k < 0 {
		return
	}
	step := p.timing.GameOverRowTicks
	if k < p.grid.Height()*step {
		if k%step == 0 {
			p.grid.ClearRow(k / step)
		}
		return
	}
	p.ended = true
	p.opts.Observer.OnSessionEnd()
}

// ShiftLeft moves the active piece one column left if possible.
func (p *Playfield) ShiftLeft() bool {
	return p.active != nil && p.active.Shift(-1, 0)
}

// ShiftRight moves the active piece one column right if possible.
func (p *Playfield) ShiftRight() bool {
	return p.active != nil && p.active.Shift(1, 0)
}

// RotateClockwise rotates the active piece clockwise if possible.
func (p *Playfield) RotateClockwise() bool {
	return p.active != nil && p.active.Rotate(piece.Clockwise)
}

// RotateAnticlockwise rotates the active piece anticlockwise if possible.
func (p *Playfield) RotateAnticlockwise() bool {
	return p.active != nil && p.active.Rotate(piece.Anticlockwise)
}

// ActivateSoftDrop switches gravity to the soft-drop interval. A grounded
// piece that is already locking locks at once.
func (p *Playfield) ActivateSoftDrop() {
	p.softDrop = true
	p.gravity = p.timing.SoftDropGravity
	if p.phase == PhaseLocking && p.active.IsOnGround() {
		p.lock()
	}
}

// DeactivateSoftDrop restores the level's gravity interval.
func (p *Playfield) DeactivateSoftDrop() {
	p.softDrop = false
	p.gravity = p.levelGravity()
}

// Phase returns the current phase.
func (p *Playfield) Phase() Phase { return p.phase }

// Grid returns the live grid. Callers must treat it as read-only.
func (p *Playfield) Grid() *Grid { return p.grid }

// Active returns the active piece, or nil outside Falling and Locking.
func (p *Playfield) Active() *ActivePiece { return p.active }

// Next returns the shape the next spawn will use.
func (p *Playfield) Next() piece.Shape { return p.queue.PeekNext() }

// Gravity returns the current gravity interval in ticks.
func (p *Playfield) Gravity() int { return p.gravity }

// SoftDrop reports whether soft drop is active.
func (p *Playfield) SoftDrop() bool { return p.softDrop }

// Ended reports whether the game-over wipe has finished.
func (p *Playfield) Ended() bool { return p.ended }

// EndCause reports why the game ended, EndNone while playing.
func (p *Playfield) EndCause() EndCause { return p.cause }

// Locked returns the number of pieces locked so far.
func (p *Playfield) Locked() int { return p.locked }

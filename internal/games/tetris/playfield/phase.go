package playfield

// Phase is the state of the playfield state machine.
type Phase int

const (
	PhaseSpawning Phase = iota // waiting out the entry delay
	PhaseFalling               // active piece under gravity
	PhaseLocking               // active piece grounded, lock delay running
	PhaseClearing              // line-clear sweep and settle delay
	PhaseGameOver              // row wipe, then terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseClearing:
		return "clearing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

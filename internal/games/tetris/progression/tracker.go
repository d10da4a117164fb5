package progression

// DefaultLinesPerLevel is the number of cleared lines between level-ups.
const DefaultLinesPerLevel = 10

// Tracker keeps the score, line count and level of one session.
// It satisfies the playfield's Progression and ScoreSink collaborators.
type Tracker struct {
	startLevel    int
	level         int
	lines         int
	score         int
	linesPerLevel int // <= 0 keeps the level fixed
	linesLeft     int

	onLevelUp func(level int)
}

// NewTracker creates a tracker starting at startLevel (clamped to >= 1).
// linesPerLevel <= 0 disables levelling.
func NewTracker(startLevel, linesPerLevel int) *Tracker {
	if startLevel < 1 {
		startLevel = 1
	}
	return &Tracker{
		startLevel:    startLevel,
		level:         startLevel,
		linesPerLevel: linesPerLevel,
		linesLeft:     linesPerLevel,
	}
}

// OnLevelUp registers a callback invoked after every level increase.
func (t *Tracker) OnLevelUp(fn func(level int)) {
	t.onLevelUp = fn
}

// OnLinesCleared scores n lines at the current level, then counts them
// towards the next level.
func (t *Tracker) OnLinesCleared(n int) {
	if n <= 0 {
		return
	}
	t.lines += n
	t.score += LinePoints(n) * t.level

	if t.linesPerLevel <= 0 {
		return
	}
	for rep := 0; rep < n; rep++ {
		t.linesLeft--
		if t.linesLeft == 0 {
			t.level++
			t.linesLeft = t.linesPerLevel
			if t.onLevelUp != nil {
				t.onLevelUp(t.level)
			}
		}
	}
}

// AddPoints adds n points to the score.
func (t *Tracker) AddPoints(n int) {
	t.score += n
}

// Level returns the current 1-indexed level.
func (t *Tracker) Level() int { return t.level }

// StartLevel returns the level the session began at.
func (t *Tracker) StartLevel() int { return t.startLevel }

// Lines returns the total number of cleared lines.
func (t *Tracker) Lines() int { return t.lines }

// Score returns the current score.
func (t *Tracker) Score() int { return t.score }

// LinesUntilLevelUp returns the lines still needed for the next level,
// or 0 when levelling is disabled.
func (t *Tracker) LinesUntilLevelUp() int {
	if t.linesPerLevel <= 0 {
		return 0
	}
	return t.linesLeft
}

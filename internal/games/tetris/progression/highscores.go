package progression

import "sort"

// HighScores is a fixed-size list of the best scores, sorted descending.
// The list is always full; unused slots hold zero, so a score only enters
// the list when it beats the current minimum.
type HighScores struct {
	scores []int
}

// NewHighScores creates a list of the given size seeded with existing
// scores. Extra seed values beyond size are dropped after sorting.
func NewHighScores(size int, seed []int) *HighScores {
	if size < 1 {
		size = 1
	}
	h := &HighScores{scores: make([]int, size)}
	sorted := append([]int(nil), seed...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	copy(h.scores, sorted)
	return h
}

// Submit offers a final score. It reports whether the score was kept.
func (h *HighScores) Submit(score int) bool {
	last := len(h.scores) - 1
	if score <= h.scores[last] {
		return false
	}
	h.scores[last] = score
	for i := last; i > 0 && h.scores[i] > h.scores[i-1]; i-- {
		h.scores[i], h.scores[i-1] = h.scores[i-1], h.scores[i]
	}
	return true
}

// Best returns the highest score, 0 if nothing has been recorded.
func (h *HighScores) Best() int {
	return h.scores[0]
}

// Size returns the fixed length of the list.
func (h *HighScores) Size() int {
	return len(h.scores)
}

// Scores returns a copy of the list, highest first.
func (h *HighScores) Scores() []int {
	return append([]int(nil), h.scores...)
}

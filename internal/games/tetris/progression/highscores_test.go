package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighScoresSeedSortedAndPadded(t *testing.T) {
	h := NewHighScores(5, []int{30, 100, 70})
	assert.Equal(t, []int{100, 70, 30, 0, 0}, h.Scores())
	assert.Equal(t, 100, h.Best())
	assert.Equal(t, 5, h.Size())
}

func TestHighScoresSeedTruncated(t *testing.T) {
	h := NewHighScores(2, []int{1, 5, 3})
	assert.Equal(t, []int{5, 3}, h.Scores())
}

func TestHighScoresSubmitRequiresBeatingMinimum(t *testing.T) {
	h := NewHighScores(3, []int{300, 200, 100})

	assert.False(t, h.Submit(100), "equal to the minimum is not enough")
	assert.False(t, h.Submit(50))
	assert.Equal(t, []int{300, 200, 100}, h.Scores())

	assert.True(t, h.Submit(250))
	assert.Equal(t, []int{300, 250, 200}, h.Scores())

	assert.True(t, h.Submit(1000))
	assert.Equal(t, []int{1000, 300, 250}, h.Scores())
	assert.Equal(t, 1000, h.Best())
}

func TestHighScoresZeroNeverKept(t *testing.T) {
	h := NewHighScores(3, nil)
	assert.False(t, h.Submit(0))
	assert.True(t, h.Submit(1))
	assert.Equal(t, []int{1, 0, 0}, h.Scores())
}

func TestHighScoresScoresIsCopy(t *testing.T) {
	h := NewHighScores(2, []int{10, 5})
	s := h.Scores()
	s[0] = 999
	assert.Equal(t, 10, h.Best())
}

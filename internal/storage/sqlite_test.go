package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func record(t *testing.T, store *Store, gameID string, score, keep int) bool {
	t.Helper()
	kept, err := store.RecordScore(ScoreEntry{GameID: gameID, Score: score, Lines: score / 40, Level: 1}, keep)
	if err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}
	return kept
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreRecordAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	record(t, store, "tetris", 100, 10)
	record(t, store, "tetris", 50, 10)
	record(t, store, "tetris", 200, 10)

	// Different mode
	record(t, store, "tetris_fixed", 500, 10)

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Lines != 5 || scores[0].Level != 1 {
		t.Errorf("Lines/level not stored: %+v", scores[0])
	}
	if scores[0].RunID == "" || scores[0].RunID == scores[1].RunID {
		t.Errorf("Expected distinct generated run ids, got %q and %q", scores[0].RunID, scores[1].RunID)
	}

	fixed, err := store.TopScores("tetris_fixed", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(fixed) != 1 {
		t.Errorf("Expected 1 tetris_fixed score, got %d", len(fixed))
	}
}

func TestStoreRecordKeepsRunID(t *testing.T) {
	store := openTestStore(t)

	_, err := store.RecordScore(ScoreEntry{RunID: "run-1", GameID: "tetris", Score: 40}, 10)
	if err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}
	scores, _ := store.TopScores("tetris", 1)
	if len(scores) != 1 || scores[0].RunID != "run-1" {
		t.Errorf("Expected run id run-1, got %v", scores)
	}
}

func TestStoreRecordRetention(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{300, 100, 200} {
		if !record(t, store, "tetris", s, 3) {
			t.Fatalf("score %d should fill an empty slot", s)
		}
	}

	// Table is full: must beat the minimum (100)
	if record(t, store, "tetris", 100, 3) {
		t.Error("score equal to the minimum should not be kept")
	}
	if record(t, store, "tetris", 50, 3) {
		t.Error("score below the minimum should not be kept")
	}
	if !record(t, store, "tetris", 150, 3) {
		t.Error("score above the minimum should be kept")
	}

	scores, err := store.AllScores("tetris")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected table capped at 3, got %d", len(scores))
	}
	if scores[0].Score != 300 || scores[1].Score != 200 || scores[2].Score != 150 {
		t.Errorf("Unexpected retained scores: %v", scores)
	}
}

func TestStoreRecordIgnoresZero(t *testing.T) {
	store := openTestStore(t)

	if record(t, store, "tetris", 0, 10) {
		t.Error("zero score should never be kept")
	}
	high, _ := store.HighScore("tetris")
	if high != 0 {
		t.Errorf("Expected no scores, got high %d", high)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		record(t, store, "test", (i+1)*100, 10)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	record(t, store, "tetris", 100, 10)
	record(t, store, "tetris", 300, 10)
	record(t, store, "tetris", 200, 10)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	record(t, store, "tetris", 100, 10)
	record(t, store, "tetris", 200, 10)
	record(t, store, "tetris_fixed", 300, 10)

	// Clear only marathon scores
	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("tetris", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 tetris scores after clear, got %d", len(scores))
	}

	fixed, _ := store.TopScores("tetris_fixed", 10)
	if len(fixed) != 1 {
		t.Errorf("tetris_fixed scores should not be affected by clearing tetris")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 20; i++ {
		record(t, store, "test", i*10, 50)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	record(t, store, "tetris", 400, 10)
	record(t, store, "tetris", 200, 10)
	if _, err := store.RecordScore(ScoreEntry{GameID: "tetris", Score: 90, Lines: 33, Level: 4}, 10); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 400 || stats.TotalScore != 690 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.MostLines != 33 || stats.BestLevel != 4 {
		t.Errorf("Unexpected lines/level stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played time")
	}

	empty, err := store.GetGameStats("tetris_fixed")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["tetris"] == nil || all["tetris"].HighScore != 400 {
		t.Errorf("Unexpected all-games stats: %v", all)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/nested/deep/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created under home
	if _, err := os.Stat(filepath.Join(home, "nested", "deep", "test.db")); os.IsNotExist(err) {
		t.Error("Database file was not created in expanded home directory")
	}
}

package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 300, 10} {
		if _, err := store.SaveScore("shooter", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("shooter_bullets", 999)

	scores, err := store.TopScores("shooter", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	expected := []int{300, 200, 100}
	if len(scores) != len(expected) {
		t.Fatalf("TopScores() returned %d entries, expected %d", len(scores), len(expected))
	}
	for i, e := range scores {
		if e.Score != expected[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, e.Score, expected[i])
		}
		if e.GameID != "shooter" {
			t.Errorf("scores[%d].GameID = %q, expected shooter", i, e.GameID)
		}
	}

	all, err := store.AllScores("shooter")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("AllScores() returned %d entries, expected 5", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d for empty build, expected 0", high)
	}

	store.SaveScore("shooter", 4)
	store.SaveScore("shooter", 12)
	store.SaveScore("shooter", 7)

	high, err = store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("HighScore() = %d, expected 12", high)
	}
	if best := store.BestScore("shooter"); best != 12 {
		t.Errorf("BestScore() = %d, expected 12", best)
	}

	store.Close()
	if best := store.BestScore("shooter"); best != 0 {
		t.Errorf("BestScore() on a closed store = %d, expected 0", best)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveRun(Run{GameID: "shooter", Score: 5, Kills: 6, Hits: 1, Duration: 60 * time.Second, Seed: 42})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if first == uuid.Nil {
		t.Fatal("SaveRun() returned a nil run ID")
	}

	fixed := uuid.New()
	second, err := store.SaveRun(Run{RunID: fixed, GameID: "shooter", Score: 9, Kills: 9})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if second != fixed {
		t.Errorf("SaveRun() = %v, expected the given ID %v", second, fixed)
	}
	store.SaveRun(Run{GameID: "shooter_bullets", Score: 1})

	runs, err := store.RecentRuns("shooter", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("RecentRuns() returned %d runs, expected 2", len(runs))
	}
	if runs[0].RunID != second {
		t.Errorf("newest run = %v, expected %v", runs[0].RunID, second)
	}

	all, _ := store.RecentRuns("", 10)
	if len(all) != 3 {
		t.Errorf("RecentRuns(\"\") returned %d runs, expected 3", len(all))
	}

	got, err := store.RunByID(first)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() = nil, expected the saved run")
	}
	if got.Kills != 6 || got.Hits != 1 || got.Duration != time.Minute || got.Seed != 42 {
		t.Errorf("RunByID() = %+v, fields do not match", *got)
	}

	missing, err := store.RunByID(uuid.New())
	if err != nil || missing != nil {
		t.Errorf("RunByID(unknown) = %v, %v, expected nil, nil", missing, err)
	}
}

func TestRunAccuracy(t *testing.T) {
	tests := []struct {
		run      Run
		expected float64
	}{
		{Run{}, 0},
		{Run{Kills: 3, Hits: 1}, 0.75},
		{Run{Kills: 0, Hits: 2}, 0},
	}

	for _, tc := range tests {
		if got := tc.run.Accuracy(); got != tc.expected {
			t.Errorf("Accuracy(%d kills, %d hits) = %v, expected %v", tc.run.Kills, tc.run.Hits, got, tc.expected)
		}
	}
}

func TestStoreClearAndStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("shooter", 10)
	store.SaveScore("shooter", 20)
	store.SaveRun(Run{GameID: "shooter", Kills: 4, Hits: 2})
	store.SaveRun(Run{GameID: "shooter", Kills: 1})
	store.SaveScore("shooter_bullets", 30)

	stats, err := store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 20 || stats.AvgScore != 15 {
		t.Errorf("GetGameStats() = %+v, expected 2 games, high 20, avg 15", *stats)
	}
	if stats.TotalKills != 5 || stats.TotalHits != 2 {
		t.Errorf("run totals = %d kills %d hits, expected 5 and 2", stats.TotalKills, stats.TotalHits)
	}

	if err := store.ClearScores("shooter"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("shooter", 10); len(scores) != 0 {
		t.Errorf("TopScores() after clear = %d entries, expected 0", len(scores))
	}
	if runs, _ := store.RecentRuns("shooter", 10); len(runs) != 0 {
		t.Errorf("RecentRuns() after clear = %d runs, expected 0", len(runs))
	}
	if scores, _ := store.TopScores("shooter_bullets", 10); len(scores) != 1 {
		t.Error("other builds should not be affected by ClearScores")
	}
}

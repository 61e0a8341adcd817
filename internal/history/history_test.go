package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func testRun(id string, startedAt time.Time) Run {
	return Run{
		ID:          id,
		Definition:  "2p30b5",
		Repetitions: 2,
		Work:        30 * time.Minute,
		Break:       5 * time.Minute,
		StartedAt:   startedAt,
		EndedAt:     startedAt.Add(65 * time.Minute),
		TotalPaused: 90 * time.Second,
		Completed:   true,
	}
}

func TestRecordAndRecent(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	base := time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"run-1", "run-2", "run-3"} {
		run := testRun(id, base.Add(time.Duration(i)*time.Hour))
		if i == 2 {
			run.Completed = false
		}
		if err := store.Record(ctx, run); err != nil {
			t.Fatalf("failed to record %s: %v", id, err)
		}
	}

	runs, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("failed to query recent runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != "run-3" || runs[1].ID != "run-2" {
		t.Errorf("expected newest first, got %s then %s", runs[0].ID, runs[1].ID)
	}
	if runs[0].Completed {
		t.Error("run-3 was recorded as interrupted")
	}

	got := runs[1]
	want := testRun("run-2", base.Add(time.Hour))
	if got.Definition != want.Definition || got.Repetitions != want.Repetitions {
		t.Errorf("schedule fields = %q/%d, want %q/%d", got.Definition, got.Repetitions, want.Definition, want.Repetitions)
	}
	if got.Work != want.Work || got.Break != want.Break || got.TotalPaused != want.TotalPaused {
		t.Errorf("durations = %s/%s/%s, want %s/%s/%s", got.Work, got.Break, got.TotalPaused, want.Work, want.Break, want.TotalPaused)
	}
	if !got.StartedAt.Equal(want.StartedAt) || !got.EndedAt.Equal(want.EndedAt) {
		t.Errorf("instants = %s/%s, want %s/%s", got.StartedAt, got.EndedAt, want.StartedAt, want.EndedAt)
	}
}

func TestRecentOnEmptyArchive(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer func() { _ = store.Close() }()

	runs, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("failed to query recent runs: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state", "history.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Record(context.Background(), testRun("run-1", time.Now())); err != nil {
		t.Fatalf("failed to record run: %v", err)
	}
}

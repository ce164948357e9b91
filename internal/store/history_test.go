package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestRecordRun(t *testing.T) {
	h := openTemp(t)
	ctx := context.Background()

	id, err := h.RecordRun(ctx, Run{Mode: "medium", Domain: "tech"}, []Document{
		{Source: "a.md", Output: "a.polished.md", Markers: 3, Occurrences: 4, Recommended: "medium"},
		{Source: "b.md", Err: "parse failed"},
	})
	if err != nil {
		t.Fatalf("record run: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated run id")
	}

	runs, err := h.CountRows(ctx, "runs")
	if err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if runs != 1 {
		t.Fatalf("expected 1 run, got %d", runs)
	}
	docs, err := h.CountRows(ctx, "documents")
	if err != nil {
		t.Fatalf("count documents: %v", err)
	}
	if docs != 2 {
		t.Fatalf("expected 2 documents, got %d", docs)
	}

	recent, err := h.RecentRuns(ctx, 5)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(recent) != 1 || recent[0].ID != id {
		t.Fatalf("unexpected recent runs %+v", recent)
	}
	if recent[0].Documents != 2 || recent[0].Failures != 1 {
		t.Fatalf("expected derived counts 2/1, got %d/%d", recent[0].Documents, recent[0].Failures)
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	h := openTemp(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		if _, err := h.RecordRun(ctx, Run{ID: id, StartedAt: base.Add(time.Duration(i) * time.Hour)}, nil); err != nil {
			t.Fatalf("record %s: %v", id, err)
		}
	}

	recent, err := h.RecentRuns(ctx, 2)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != "new" || recent[1].ID != "mid" {
		t.Fatalf("unexpected order %+v", recent)
	}
	if !recent[0].StartedAt.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("timestamp did not round-trip: %v", recent[0].StartedAt)
	}
}

func TestCountRowsRejectsUnknownTable(t *testing.T) {
	h := openTemp(t)
	if _, err := h.CountRows(context.Background(), "sqlite_master; DROP TABLE runs"); err == nil {
		t.Fatal("expected unknown table error")
	}
}

func TestRecentRunsOrdersWholeSecondsBeforeFractions(t *testing.T) {
	h := openTemp(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if _, err := h.RecordRun(ctx, Run{ID: "later", StartedAt: base.Add(100 * time.Millisecond)}, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := h.RecordRun(ctx, Run{ID: "earlier", StartedAt: base}, nil); err != nil {
		t.Fatal(err)
	}

	recent, err := h.RecentRuns(ctx, 2)
	if err != nil {
		t.Fatalf("recent runs: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != "later" || recent[1].ID != "earlier" {
		t.Fatalf("unexpected order %+v", recent)
	}
}

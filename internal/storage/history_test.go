package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/nholste/docdex/internal/storage"
)

func newTestHistory(t *testing.T) *storage.History {
	t.Helper()
	h, err := storage.NewHistory(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open history: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}

func TestHistory_RecordAndListSearches(t *testing.T) {
	h := newTestHistory(t)

	if err := h.RecordSearch("quick start", 3); err != nil {
		t.Fatalf("failed to record search: %v", err)
	}
	if err := h.RecordSearch("config", 5); err != nil {
		t.Fatalf("failed to record search: %v", err)
	}

	entries, err := h.RecentSearches(10)
	if err != nil {
		t.Fatalf("failed to list searches: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].Query != "config" {
		t.Errorf("expected config first, got %q", entries[0].Query)
	}
	if entries[0].Hits != 5 {
		t.Errorf("expected 5 hits, got %d", entries[0].Hits)
	}
	if entries[0].ID == "" {
		t.Error("expected non-empty entry ID")
	}
}

func TestHistory_RecordAndListVisits(t *testing.T) {
	h := newTestHistory(t)

	if err := h.RecordVisit("quick-start", "Quick Start Guide", "https://docdex.dev/quick-start"); err != nil {
		t.Fatalf("failed to record visit: %v", err)
	}

	entries, err := h.RecentVisits(10)
	if err != nil {
		t.Fatalf("failed to list visits: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].RecordID != "quick-start" {
		t.Errorf("expected quick-start, got %q", entries[0].RecordID)
	}
	if entries[0].URL != "https://docdex.dev/quick-start" {
		t.Errorf("unexpected URL %q", entries[0].URL)
	}
	if entries[0].VisitedAt.IsZero() {
		t.Error("expected visited timestamp to be set")
	}
}

func TestHistory_LimitApplies(t *testing.T) {
	h := newTestHistory(t)

	for i := 0; i < 5; i++ {
		if err := h.RecordSearch("query", i); err != nil {
			t.Fatalf("failed to record search: %v", err)
		}
	}

	entries, err := h.RecentSearches(3)
	if err != nil {
		t.Fatalf("failed to list searches: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(entries))
	}
}

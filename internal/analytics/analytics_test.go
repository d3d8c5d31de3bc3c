package analytics

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"shopwise/internal/storage"
)

func TestAnalyzeDailySearches(t *testing.T) {
	testDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	events := []storage.Event{
		{Timestamp: testDate.Add(2 * time.Hour), SessionID: "a", Query: "Best phone", Response: "Galaxy A15"},
		{Timestamp: testDate.Add(3 * time.Hour), SessionID: "a", Query: "best  phone", Response: "Galaxy A15"},
		{Timestamp: testDate.Add(4 * time.Hour), SessionID: "b", Query: "laptop", Response: "❌ Error: timeout", Failed: true},
		// next day, not counted
		{Timestamp: testDate.AddDate(0, 0, 1), SessionID: "c", Query: "earbuds"},
		// empty query, not counted
		{Timestamp: testDate.Add(5 * time.Hour), SessionID: "d", Query: "   "},
	}

	stats := AnalyzeDailySearches(events, testDate.Add(13*time.Hour))

	if stats.Date != "2024-01-15" {
		t.Errorf("Expected date '2024-01-15', got '%s'", stats.Date)
	}
	if stats.TotalSearches != 3 {
		t.Errorf("Expected 3 searches, got %d", stats.TotalSearches)
	}
	if stats.FailedSearches != 1 {
		t.Errorf("Expected 1 failed search, got %d", stats.FailedSearches)
	}
	if stats.UniqueSessions != 2 {
		t.Errorf("Expected 2 sessions, got %d", stats.UniqueSessions)
	}
	if stats.QueryCounts["best phone"] != 2 {
		t.Errorf("Expected normalised query count 2, got %d", stats.QueryCounts["best phone"])
	}
}

func TestTopQueries(t *testing.T) {
	stats := &DailyStats{QueryCounts: map[string]int{"tv": 1, "phone": 3, "laptop": 3, "mouse": 2}}

	top := stats.TopQueries(3)
	if len(top) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(top))
	}
	if top[0].Query != "laptop" || top[1].Query != "phone" || top[2].Query != "mouse" {
		t.Errorf("Unexpected order: %+v", top)
	}
}

func TestSummaryAndJSON(t *testing.T) {
	stats := &DailyStats{
		Date:           "2024-01-15",
		TotalSearches:  4,
		FailedSearches: 1,
		UniqueSessions: 2,
		QueryCounts:    map[string]int{"phone": 4},
	}

	summary := stats.Summary()
	for _, want := range []string{"2024-01-15", "total: 4", "failed: 1", "sessions: 2", "phone: 4"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}

	raw, err := stats.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	var back DailyStats
	if err := json.Unmarshal([]byte(raw), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.TotalSearches != 4 {
		t.Errorf("Expected 4 searches after decode, got %d", back.TotalSearches)
	}
}

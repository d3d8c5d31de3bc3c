package analytics

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"shopwise/internal/storage"
)

// DailyStats summarises one day of the search audit log.
type DailyStats struct {
	Date           string         `json:"date"`
	TotalSearches  int            `json:"total_searches"`
	FailedSearches int            `json:"failed_searches"`
	UniqueSessions int            `json:"unique_sessions"`
	QueryCounts    map[string]int `json:"query_counts"`
}

// QueryCount is a normalised query and how often it was searched.
type QueryCount struct {
	Query string
	Count int
}

// AnalyzeDailySearches counts the events that fall on targetDate's day.
func AnalyzeDailySearches(events []storage.Event, targetDate time.Time) *DailyStats {
	startOfDay := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, targetDate.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	stats := &DailyStats{
		Date:        startOfDay.Format("2006-01-02"),
		QueryCounts: make(map[string]int),
	}
	sessions := make(map[string]bool)

	for _, event := range events {
		if event.Timestamp.Before(startOfDay) || !event.Timestamp.Before(endOfDay) {
			continue
		}
		q := normalizeQuery(event.Query)
		if q == "" {
			continue
		}
		stats.TotalSearches++
		if event.Failed {
			stats.FailedSearches++
		}
		sessions[event.SessionID] = true
		stats.QueryCounts[q]++
	}

	stats.UniqueSessions = len(sessions)
	return stats
}

// TopQueries returns up to n queries, most frequent first, ties by name.
func (ds *DailyStats) TopQueries(n int) []QueryCount {
	out := make([]QueryCount, 0, len(ds.QueryCounts))
	for q, c := range ds.QueryCounts {
		out = append(out, QueryCount{Query: q, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Query < out[j].Query
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Summary renders a plain-text report for the log.
func (ds *DailyStats) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ShopWise searches for %s:\n", ds.Date)
	fmt.Fprintf(&b, "- total: %d\n", ds.TotalSearches)
	fmt.Fprintf(&b, "- failed: %d\n", ds.FailedSearches)
	fmt.Fprintf(&b, "- sessions: %d\n", ds.UniqueSessions)

	if top := ds.TopQueries(5); len(top) > 0 {
		b.WriteString("Top queries:\n")
		for _, qc := range top {
			fmt.Fprintf(&b, "- %s: %d\n", qc.Query, qc.Count)
		}
	}
	return b.String()
}

func (ds *DailyStats) ToJSON() (string, error) {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}

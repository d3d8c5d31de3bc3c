package analytics

import (
	"context"
	"fmt"
	"log"
	"time"

	"shopwise/internal/storage"
)

// DailyReporter returns a job that logs today's (UTC) search summary.
func DailyReporter(rec storage.Recorder, now func() time.Time) func(ctx context.Context) error {
	if now == nil {
		now = time.Now
	}
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		events, err := rec.LoadInteractions()
		if err != nil {
			return fmt.Errorf("load search log: %w", err)
		}
		stats := AnalyzeDailySearches(events, now().UTC())
		log.Printf("📊 %s", stats.Summary())
		return nil
	}
}

package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopwise/internal/storage"
)

type memRecorder struct {
	events []storage.Event
	err    error
}

func (m *memRecorder) AppendInteraction(ev storage.Event) error {
	m.events = append(m.events, ev)
	return nil
}

func (m *memRecorder) LoadInteractions() ([]storage.Event, error) {
	return m.events, m.err
}

func TestDailyReporter(t *testing.T) {
	now := time.Date(2024, 1, 15, 21, 0, 0, 0, time.UTC)
	rec := &memRecorder{events: []storage.Event{{Timestamp: now.Add(-time.Hour), SessionID: "a", Query: "phone"}}}

	if err := DailyReporter(rec, func() time.Time { return now })(context.Background()); err != nil {
		t.Fatalf("report: %v", err)
	}
}

func TestDailyReporterLoadError(t *testing.T) {
	rec := &memRecorder{err: errors.New("disk gone")}
	if err := DailyReporter(rec, nil)(context.Background()); err == nil {
		t.Fatalf("expected load error")
	}
}

func TestDailyReporterCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := DailyReporter(&memRecorder{}, nil)(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

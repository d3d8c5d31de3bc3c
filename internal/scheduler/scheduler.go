package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the daily search report.
type Scheduler struct {
	cron       *cron.Cron
	spec       string
	ctx        context.Context
	cancel     context.CancelFunc
	reportFunc func(ctx context.Context) error
}

// New creates a scheduler for the given cron spec, evaluated in UTC.
func New(spec string) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		spec:   spec,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Scheduler) SetReportFunction(f func(ctx context.Context) error) {
	s.reportFunc = f
}

// Start registers the report job. An empty spec or missing report
// function leaves the scheduler idle.
func (s *Scheduler) Start() error {
	if s.reportFunc == nil || s.spec == "" {
		log.Println("⚠️ Daily report disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		log.Println("🕘 Triggered daily search report")
		if err := s.reportFunc(s.ctx); err != nil {
			log.Printf("❌ Daily report failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid report schedule %q: %w", s.spec, err)
	}

	s.cron.Start()
	log.Printf("📅 Scheduler started, report schedule %q (UTC)", s.spec)
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Println("📅 Scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}

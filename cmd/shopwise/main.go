package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"shopwise/internal/advisor"
	"shopwise/internal/analytics"
	"shopwise/internal/config"
	"shopwise/internal/history"
	"shopwise/internal/llm"
	"shopwise/internal/scheduler"
	"shopwise/internal/storage"
	"shopwise/internal/web"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Fatal before anything is served if GEMINI_API_KEY is missing.
	cfg := config.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	llmClient, err := llm.NewFactory(cfg).CreateClient(ctx, cfg.LLMProvider, cfg.LLMModel)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}
	log.Printf("🤖 Using %s provider, model %s", cfg.LLMProvider, cfg.LLMModel)

	pool := advisor.NewPool(advisor.ShoppingAdvisor(llmClient), cfg.SuggestWorkers)

	var rec storage.Recorder
	if cfg.SearchLogPath != "" {
		fr, err := storage.NewFileRecorder(cfg.SearchLogPath)
		if err != nil {
			log.Printf("failed to init search log: %v", err)
		} else {
			rec = fr
		}
	}

	sched := scheduler.New(cfg.DailyReportSpec)
	if rec != nil {
		sched.SetReportFunction(analytics.DailyReporter(rec, time.Now))
	}
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	srv := web.NewServer(pool, history.NewManager(), rec, cfg.HTTPAddr)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			log.Printf("❌ web server stopped: %v", err)
		}
	case <-ctx.Done():
		// A second signal now kills the process immediately.
		stop()
		log.Println("🛑 Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Printf("⚠️ graceful shutdown failed: %v", err)
	}
	if err := pool.Close(shutdownCtx); err != nil {
		log.Printf("⚠️ abandoning in-flight completions: %v", err)
	}
}

// Package web serves the ShopWise page: a query form, the advisor's answer,
// a sidebar of past searches and a static product showcase.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"shopwise/internal/advisor"
	"shopwise/internal/history"
	"shopwise/internal/storage"
)

const emptyQueryWarning = "Please enter a product or category."

// Suggester dispatches a query and hands back a future answer.
type Suggester interface {
	Submit(ctx context.Context, query string) *advisor.Future
}

type Server struct {
	suggester Suggester
	history   *history.Manager
	recorder  storage.Recorder
	addr      string
	server    *http.Server
	startTime time.Time
	now       func() time.Time
}

// NewServer wires the page controller. recorder may be nil.
func NewServer(suggester Suggester, hist *history.Manager, recorder storage.Recorder, addr string) *Server {
	s := &Server{
		suggester: suggester,
		history:   hist,
		recorder:  recorder,
		addr:      addr,
		startTime: time.Now(),
		now:       time.Now,
	}
	// No write timeout: a search holds the response open until the
	// completion resolves.
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the routed and logged handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /search", s.handleSearch)
	mux.HandleFunc("GET /history/{pos}", s.handleView)
	mux.HandleFunc("POST /history/clear-view", s.handleClearView)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	return withLogging(mux)
}

// Start blocks serving HTTP until Stop is called.
func (s *Server) Start() error {
	log.Printf("🌐 Starting ShopWise on %s", s.addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)
	s.render(w, http.StatusOK, s.basePage(sid))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	query := r.PostFormValue("query")

	if strings.TrimSpace(query) == "" {
		page := s.basePage(sid)
		page.Warning = emptyQueryWarning
		s.render(w, http.StatusOK, page)
		return
	}

	// The answer is recorded even if the browser goes away mid-call.
	future := s.suggester.Submit(context.WithoutCancel(r.Context()), query)

	rec := history.SearchRecord{
		Query:     query,
		Response:  future.Wait(),
		Failed:    future.Failed(),
		CreatedAt: s.now(),
	}
	s.history.Append(sid, rec)
	s.recordEvent(sid, rec)

	page := s.basePage(sid)
	page.Query = query
	page.Result = newRecordView(rec)
	s.render(w, http.StatusOK, page)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)
	pos, err := strconv.Atoi(r.PathValue("pos"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if _, err := s.history.View(sid, pos); err != nil {
		http.NotFound(w, r)
		return
	}
	s.render(w, http.StatusOK, s.basePage(sid))
}

func (s *Server) handleClearView(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)
	s.history.ClearView(sid)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "shopwise",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.startTime).String(),
		"sessions":  s.history.Sessions(),
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) recordEvent(sid string, rec history.SearchRecord) {
	if s.recorder == nil {
		return
	}
	err := s.recorder.AppendInteraction(storage.Event{
		Timestamp: rec.CreatedAt.UTC(),
		SessionID: sid,
		Query:     rec.Query,
		Response:  rec.Response,
		Failed:    rec.Failed,
	})
	if err != nil {
		log.Printf("⚠️ failed to record search: %v", err)
	}
}

package storage

import "time"

// Event is one finished search as written to the audit log.
// Events are expected to be appended in chronological order.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
	Query     string    `json:"query"`
	Response  string    `json:"response"`
	Failed    bool      `json:"failed,omitempty"`
}

// Recorder abstracts persistence of search events.
// LoadInteractions should return events in chronological order.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendInteraction(event Event) error
	LoadInteractions() ([]Event, error)
}

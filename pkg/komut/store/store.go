// Package store persists assistant metric events. It sits outside the
// interpreter core, which never touches storage.
package store

import (
	"context"
	"time"
)

// EventStore is the interface for persisting and querying metric events.
type EventStore interface {
	Close() error

	// Append stores a new event. IDs are unique.
	Append(ctx context.Context, ev Event) error

	// List returns events recorded at or after since, oldest first.
	// A zero since means all events; limit <= 0 means no limit.
	List(ctx context.Context, since time.Time, limit int) ([]Event, error)

	// SetFeedback attaches user feedback to a stored event. It returns
	// internalerr.ErrNotFound when the ID is unknown.
	SetFeedback(ctx context.Context, id string, fb Feedback) error
}

// Feedback is the user's verdict on one interpretation.
type Feedback string

const (
	FeedbackNone     Feedback = ""
	FeedbackPositive Feedback = "positive"
	FeedbackNegative Feedback = "negative"
)

// Event is one interpretation outcome as seen by the metrics layer.
type Event struct {
	ID           string        `json:"id"` // ULID
	At           time.Time     `json:"at"`
	Intent       string        `json:"intent"`
	Confidence   float64       `json:"confidence"`
	Success      bool          `json:"success"`
	ResponseTime time.Duration `json:"responseTime"`
	Feedback     Feedback      `json:"feedback,omitempty"`
}

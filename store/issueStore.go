package store

import (
	"context"
	"errors"
)

// Error taxonomy for the remote store boundary. Handlers translate
// these with errors.Is; nothing below this package reaches a caller
// unwrapped.
var (
	// ErrStoreUnavailable means the store handle was never
	// initialized (missing configuration). Permanent for the session.
	ErrStoreUnavailable = errors.New("issue store unavailable")
	// ErrFetchFailed is a transient read failure (network, decode).
	ErrFetchFailed = errors.New("issue fetch failed")
	// ErrWriteFailed means a create or upvote write did not persist.
	ErrWriteFailed = errors.New("issue write failed")
	// ErrNotFound means no record exists for the given identifier.
	ErrNotFound = errors.New("issue not found")
)

// RawIssue is one record as the remote store holds it: an opaque
// identifier plus an untyped field map. Shapes vary across writers;
// models.Normalize is the sole translation to the canonical Issue.
type RawIssue struct {
	ID     string
	Fields map[string]any
}

// IssueDraft is the flat record shape the submission pipeline writes.
// Field names follow the store schema, which this service does not
// own.
type IssueDraft struct {
	Title       string `bson:"title"`
	Description string `bson:"description"`
	Category    string `bson:"category"`
	Location    string `bson:"location"`
	Duration    string `bson:"duration"`
	Image       string `bson:"image,omitempty"`
	Timestamp   string `bson:"timestamp"`
	Status      string `bson:"status"`
	Priority    string `bson:"priority"`
	Upvotes     int    `bson:"upvotes"`
}

// IssueStore bridges the canonical issue model and the remote store.
type IssueStore interface {
	// FetchAll is a one-shot read of the entire issues collection.
	FetchAll(ctx context.Context) ([]RawIssue, error)

	// Fetch reads one record by identifier.
	Fetch(ctx context.Context, id string) (RawIssue, error)

	// Create appends one record and returns the assigned identifier.
	Create(ctx context.Context, draft IssueDraft) (string, error)

	// IncrementUpvotes writes current+1 to the record's upvote field
	// and returns the value written. Last-writer-wins: two callers
	// holding the same stale current both write the same value, and
	// one increment is lost. That matches the store's observed
	// semantics and is deliberate.
	IncrementUpvotes(ctx context.Context, id string, current int) (int, error)

	// SubscribeUpvotes attaches a live listener for one record's
	// upvote count. onChange fires with the value at attach time and
	// then on every published change until the returned unsubscribe
	// runs or ctx is done. Callers own the unsubscribe; leaking it
	// leaks the listener.
	SubscribeUpvotes(ctx context.Context, id string, onChange func(int)) (func(), error)
}

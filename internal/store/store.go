// Package store persists job and candidate records behind a single interface
// with in-memory and PostgreSQL implementations.
package store

import (
	"context"
	"fmt"

	"github.com/jonathan/talent-matcher/internal/types"
)

// Store is the record collaborator the match engine reads from and writes to.
// Implementations assign integer record IDs that increase monotonically and
// are never reused within a store's lifetime.
type Store interface {
	// PutJob stores a job record. A zero ID means "assign the next ID"; the
	// assigned ID is returned.
	PutJob(ctx context.Context, job types.JobRecord) (int, error)

	// PutCandidate stores a candidate record, assigning an ID when zero.
	PutCandidate(ctx context.Context, candidate types.CandidateRecord) (int, error)

	GetJob(ctx context.Context, id int) (types.JobRecord, error)
	GetCandidate(ctx context.Context, id int) (types.CandidateRecord, error)

	// ListJobs returns all jobs ordered by ascending ID.
	ListJobs(ctx context.Context) ([]types.JobRecord, error)

	// ListCandidates returns all candidates ordered by ascending ID.
	ListCandidates(ctx context.Context) ([]types.CandidateRecord, error)

	Close()
}

// NotFoundError reports a lookup for a record that does not exist.
type NotFoundError struct {
	Kind string
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// UnavailableError reports that the backing store could not serve a request
// at all, as opposed to the record being absent.
type UnavailableError struct {
	Op    string
	Cause error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Cause)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

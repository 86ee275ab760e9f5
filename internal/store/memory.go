package store

import (
	"context"
	"sort"
	"sync"

	"github.com/jonathan/talent-matcher/internal/types"
)

// MemoryStore keeps records in process memory. It is the default backend for
// the CLI and for tests.
type MemoryStore struct {
	mu              sync.RWMutex
	jobs            map[int]types.JobRecord
	candidates      map[int]types.CandidateRecord
	nextJobID       int
	nextCandidateID int
}

// NewMemoryStore returns an empty in-memory store. IDs start at 1.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs:            make(map[int]types.JobRecord),
		candidates:      make(map[int]types.CandidateRecord),
		nextJobID:       1,
		nextCandidateID: 1,
	}
}

// PutJob stores a job, assigning the next ID when job.ID is zero. Explicit
// IDs advance the counter so later assignments stay monotonic.
func (s *MemoryStore) PutJob(_ context.Context, job types.JobRecord) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job.ID == 0 {
		job.ID = s.nextJobID
	}
	if job.ID >= s.nextJobID {
		s.nextJobID = job.ID + 1
	}
	s.jobs[job.ID] = job
	return job.ID, nil
}

// PutCandidate stores a candidate, assigning the next ID when zero.
func (s *MemoryStore) PutCandidate(_ context.Context, candidate types.CandidateRecord) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if candidate.ID == 0 {
		candidate.ID = s.nextCandidateID
	}
	if candidate.ID >= s.nextCandidateID {
		s.nextCandidateID = candidate.ID + 1
	}
	s.candidates[candidate.ID] = candidate
	return candidate.ID, nil
}

func (s *MemoryStore) GetJob(_ context.Context, id int) (types.JobRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return types.JobRecord{}, &NotFoundError{Kind: "job", ID: id}
	}
	return job, nil
}

func (s *MemoryStore) GetCandidate(_ context.Context, id int) (types.CandidateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	candidate, ok := s.candidates[id]
	if !ok {
		return types.CandidateRecord{}, &NotFoundError{Kind: "candidate", ID: id}
	}
	return candidate, nil
}

func (s *MemoryStore) ListJobs(_ context.Context) ([]types.JobRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.JobRecord, 0, len(s.jobs))
	for _, job := range s.jobs {
		out = append(out, job)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) ListCandidates(_ context.Context) ([]types.CandidateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.CandidateRecord, 0, len(s.candidates))
	for _, candidate := range s.candidates {
		out = append(out, candidate)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() {}

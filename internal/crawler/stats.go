package crawler

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Stats aggregates run counters mutated concurrently by all workers.
// Every update is a single guarded increment; reads outside the crawl
// must happen after the worker pool has joined.
type Stats struct {
	mu        sync.Mutex
	requests  int
	successes int
	failures  int
}

// NewStats returns zeroed counters for a fresh cycle.
func NewStats() *Stats {
	return &Stats{}
}

// AddRequest records one outbound HTTP request.
func (s *Stats) AddRequest() {
	s.mu.Lock()
	s.requests++
	s.mu.Unlock()
}

// AddSuccess records one fully processed article.
func (s *Stats) AddSuccess() {
	s.mu.Lock()
	s.successes++
	s.mu.Unlock()
}

// AddFailure records one failed page or article.
func (s *Stats) AddFailure() {
	s.mu.Lock()
	s.failures++
	s.mu.Unlock()
}

// Counts returns the current counter values.
func (s *Stats) Counts() (requests, successes, failures int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests, s.successes, s.failures
}

// Snapshot freezes the counters into an immutable per-cycle record.
func (s *Stats) Snapshot(elapsed time.Duration, now time.Time) (Snapshot, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Snapshot{}, fmt.Errorf("generate run id: %w", err)
	}
	requests, successes, failures := s.Counts()
	return Snapshot{
		RunID:          id.String(),
		RequestCount:   requests,
		SuccessCount:   successes,
		FailureCount:   failures,
		ElapsedSeconds: elapsed.Seconds(),
		Timestamp:      now,
	}, nil
}

package usecase

import (
	"sync"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
)

// SequenceTracker issues monotonically increasing sequence numbers per
// (session, search domain) and records the newest one whose result was
// applied. Concurrent searches for the same session race their responses;
// the tracker lets the slower, older response be discarded instead of
// overwriting fresher results.
type SequenceTracker struct {
	mu      sync.Mutex
	issued  map[sequenceKey]uint64
	applied map[sequenceKey]uint64
}

type sequenceKey struct {
	session string
	domain  domain.ItemType
}

// NewSequenceTracker creates an empty tracker.
func NewSequenceTracker() *SequenceTracker {
	return &SequenceTracker{
		issued:  make(map[sequenceKey]uint64),
		applied: make(map[sequenceKey]uint64),
	}
}

// Next issues the next sequence number for the session and search domain.
// The first number issued is 1.
func (t *SequenceTracker) Next(sessionID string, d domain.ItemType) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := sequenceKey{session: sessionID, domain: d}
	t.issued[k]++
	return t.issued[k]
}

// Apply records seq as delivered and reports whether it is still current.
// A sequence older than one already applied is stale and must be discarded
// by the caller.
func (t *SequenceTracker) Apply(sessionID string, d domain.ItemType, seq uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := sequenceKey{session: sessionID, domain: d}
	if seq < t.applied[k] {
		return false
	}
	t.applied[k] = seq
	return true
}

// Forget drops all state for the session.
func (t *SequenceTracker) Forget(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for k := range t.issued {
		if k.session == sessionID {
			delete(t.issued, k)
			delete(t.applied, k)
		}
	}
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
	"github.com/tripdeck/travel-itinerary-service/internal/infrastructure/timeutil"
)

// Memory is an in-process SnapshotStore for development and tests.
// Snapshots are stored as serialized JSON so the round-trip behavior matches
// the Redis store, including corrupt-snapshot handling, and mutations on a
// returned itinerary never leak back into the store.
type Memory struct {
	mu        sync.RWMutex
	snapshots map[string]memoryEntry
	ttl       time.Duration
	clock     timeutil.Clock
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemory creates a Memory store whose snapshots expire after ttl.
// A zero ttl means snapshots never expire.
func NewMemory(ttl time.Duration) *Memory {
	return NewMemoryWithClock(ttl, timeutil.NewRealClock())
}

// NewMemoryWithClock creates a Memory store with an injectable clock for
// expiry testing.
func NewMemoryWithClock(ttl time.Duration, clock timeutil.Clock) *Memory {
	return &Memory{
		snapshots: make(map[string]memoryEntry),
		ttl:       ttl,
		clock:     clock,
	}
}

// Load implements SnapshotStore.Load.
func (m *Memory) Load(_ context.Context, sessionID string) (*domain.Itinerary, error) {
	m.mu.RLock()
	entry, ok := m.snapshots[sessionID]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSnapshotNotFound
	}
	if !entry.expiresAt.IsZero() && m.clock.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.snapshots, sessionID)
		m.mu.Unlock()
		return nil, ErrSnapshotNotFound
	}

	return decodeSnapshot(entry.data)
}

// Save implements SnapshotStore.Save.
func (m *Memory) Save(_ context.Context, sessionID string, it *domain.Itinerary) error {
	data, err := encodeSnapshot(it)
	if err != nil {
		return err
	}

	var expiresAt time.Time
	if m.ttl > 0 {
		expiresAt = m.clock.Now().Add(m.ttl)
	}

	m.mu.Lock()
	m.snapshots[sessionID] = memoryEntry{data: data, expiresAt: expiresAt}
	m.mu.Unlock()
	return nil
}

// Delete implements SnapshotStore.Delete.
func (m *Memory) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.snapshots, sessionID)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored sessions, for tests.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.snapshots)
}

// encodeSnapshot serializes an itinerary, stamping the layout version.
func encodeSnapshot(it *domain.Itinerary) ([]byte, error) {
	it.Version = domain.SnapshotVersion
	data, err := json.Marshal(it)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// decodeSnapshot deserializes an itinerary, rejecting unknown layouts.
func decodeSnapshot(data []byte) (*domain.Itinerary, error) {
	var it domain.Itinerary
	if err := json.Unmarshal(data, &it); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
	}
	if it.Version != domain.SnapshotVersion {
		return nil, fmt.Errorf("%w: layout version %d", domain.ErrSnapshotCorrupt, it.Version)
	}
	if it.Flights == nil {
		it.Flights = []domain.Flight{}
	}
	if it.Hotels == nil {
		it.Hotels = []domain.Hotel{}
	}
	if it.Activities == nil {
		it.Activities = []domain.Activity{}
	}
	return &it, nil
}

// Ensure interface is implemented.
var _ SnapshotStore = (*Memory)(nil)

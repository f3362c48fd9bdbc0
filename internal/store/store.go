// Package store provides session-scoped persistence for itinerary snapshots.
// The itinerary use case owns mutation rules; stores only load and save
// whole snapshots keyed by session ID.
package store

import (
	"context"
	"errors"

	"github.com/tripdeck/travel-itinerary-service/internal/domain"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=store

// ErrSnapshotNotFound indicates no snapshot exists for the session.
var ErrSnapshotNotFound = errors.New("itinerary snapshot not found")

// SnapshotStore persists one itinerary snapshot per session. Implementations
// are safe for concurrent use.
type SnapshotStore interface {
	// Load returns the itinerary for the session, or ErrSnapshotNotFound
	// when none exists. A stored snapshot that cannot be decoded or whose
	// layout version does not match is reported as domain.ErrSnapshotCorrupt;
	// callers treat that the same as absent.
	Load(ctx context.Context, sessionID string) (*domain.Itinerary, error)

	// Save persists the itinerary for the session, refreshing its expiry.
	Save(ctx context.Context, sessionID string, it *domain.Itinerary) error

	// Delete removes the session's snapshot. Deleting an absent snapshot
	// is not an error.
	Delete(ctx context.Context, sessionID string) error
}

package summary

import (
	"context"
	"time"
)

// Repository defines the interface for summary snapshot persistence.
type Repository interface {
	// Get retrieves the snapshot for a user and day. Returns
	// ErrSnapshotNotFound if none has been computed yet.
	Get(ctx context.Context, userID string, day time.Time) (*Snapshot, error)

	// Upsert stores a snapshot, replacing any previous one for the same
	// user and day.
	Upsert(ctx context.Context, snapshot *Snapshot) error
}

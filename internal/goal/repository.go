package goal

import "context"

// Repository defines the interface for goal profile persistence.
type Repository interface {
	// Get retrieves the profile for a user.
	// Returns ErrProfileNotFound when the user has never saved one.
	Get(ctx context.Context, userID string) (*Profile, error)

	// Upsert creates or replaces the profile for a user.
	Upsert(ctx context.Context, profile *Profile) error

	// Delete removes the profile for a user.
	Delete(ctx context.Context, userID string) error
}

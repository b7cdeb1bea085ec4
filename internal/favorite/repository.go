package favorite

import "context"

// Repository defines the interface for favorite meal persistence.
type Repository interface {
	// GetByUserAndID retrieves a favorite by user ID and favorite ID.
	// Returns ErrFavoriteNotFound if it doesn't exist or doesn't belong to
	// the user.
	GetByUserAndID(ctx context.Context, userID, favoriteID string) (*Favorite, error)

	// ListByUser retrieves all favorites for a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]*Favorite, error)

	// Create creates a new favorite.
	Create(ctx context.Context, favorite *Favorite) error

	// Delete deletes a favorite by ID.
	Delete(ctx context.Context, id string) error
}

package meal

import (
	"context"
	"time"
)

// ListOptions contains options for listing meals.
type ListOptions struct {
	// From and Until bound EatenAt (inclusive / exclusive). Zero values
	// leave that side unbounded.
	From  time.Time
	Until time.Time

	Limit  int
	Cursor string
}

// ListResult contains the results of listing meals.
type ListResult struct {
	Items      []*Meal
	NextCursor string
}

// Repository defines the interface for meal record persistence.
type Repository interface {
	// GetByUserAndID retrieves a meal by user ID and meal ID.
	// Returns ErrMealNotFound if the meal doesn't exist or doesn't belong
	// to the user.
	GetByUserAndID(ctx context.Context, userID, mealID string) (*Meal, error)

	// List retrieves meals for a user, newest first, optionally bounded
	// by an EatenAt range.
	List(ctx context.Context, userID string, opts ListOptions) (*ListResult, error)

	// Create creates a new meal record.
	Create(ctx context.Context, meal *Meal) error

	// Update updates an existing meal record.
	Update(ctx context.Context, meal *Meal) error

	// Delete deletes a meal record by ID.
	Delete(ctx context.Context, id string) error
}

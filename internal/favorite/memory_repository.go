package favorite

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu        sync.RWMutex
	favorites map[string]*Favorite
}

// NewInMemoryRepository creates a new in-memory favorite repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		favorites: make(map[string]*Favorite),
	}
}

// GetByUserAndID retrieves a favorite by user ID and favorite ID.
func (r *InMemoryRepository) GetByUserAndID(_ context.Context, userID, favoriteID string) (*Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.favorites[favoriteID]
	if !ok || f.UserID != userID {
		return nil, ErrFavoriteNotFound
	}

	cpy := *f
	return &cpy, nil
}

// ListByUser retrieves all favorites for a user, newest first.
func (r *InMemoryRepository) ListByUser(_ context.Context, userID string) ([]*Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var favorites []*Favorite
	for _, f := range r.favorites {
		if f.UserID != userID {
			continue
		}
		cpy := *f
		favorites = append(favorites, &cpy)
	}

	sort.Slice(favorites, func(i, j int) bool {
		if favorites[i].CreatedAt.Equal(favorites[j].CreatedAt) {
			return favorites[i].ID > favorites[j].ID
		}
		return favorites[i].CreatedAt.After(favorites[j].CreatedAt)
	})

	return favorites, nil
}

// Create creates a new favorite.
func (r *InMemoryRepository) Create(_ context.Context, f *Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *f
	r.favorites[f.ID] = &cpy
	return nil
}

// Delete deletes a favorite by ID.
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.favorites, id)
	return nil
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)

package meal

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu    sync.RWMutex
	meals map[string]*Meal
}

// NewInMemoryRepository creates a new in-memory meal repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		meals: make(map[string]*Meal),
	}
}

// GetByUserAndID retrieves a meal by user ID and meal ID.
func (r *InMemoryRepository) GetByUserAndID(_ context.Context, userID, mealID string) (*Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.meals[mealID]
	if !ok || m.UserID != userID {
		return nil, ErrMealNotFound
	}

	cpy := *m
	return &cpy, nil
}

// List retrieves meals for a user, newest first.
func (r *InMemoryRepository) List(_ context.Context, userID string, opts ListOptions) (*ListResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var meals []*Meal
	for _, m := range r.meals {
		if m.UserID != userID {
			continue
		}
		if !opts.From.IsZero() && m.EatenAt.Before(opts.From) {
			continue
		}
		if !opts.Until.IsZero() && !m.EatenAt.Before(opts.Until) {
			continue
		}
		cpy := *m
		meals = append(meals, &cpy)
	}

	sort.Slice(meals, func(i, j int) bool {
		if meals[i].EatenAt.Equal(meals[j].EatenAt) {
			return meals[i].ID > meals[j].ID
		}
		return meals[i].EatenAt.After(meals[j].EatenAt)
	})

	if opts.Cursor != "" {
		cur, ok := r.meals[opts.Cursor]
		if !ok || cur.UserID != userID {
			// Unknown or foreign cursor matches no row, same as Postgres.
			meals = nil
		} else {
			after := meals[:0]
			for _, m := range meals {
				if m.EatenAt.Before(cur.EatenAt) ||
					(m.EatenAt.Equal(cur.EatenAt) && m.ID < cur.ID) {
					after = append(after, m)
				}
			}
			meals = after
		}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	result := &ListResult{Items: meals}
	if len(meals) > limit {
		result.Items = meals[:limit]
		result.NextCursor = meals[limit-1].ID
	}

	return result, nil
}

// Create creates a new meal record.
func (r *InMemoryRepository) Create(_ context.Context, m *Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *m
	r.meals[m.ID] = &cpy
	return nil
}

// Update updates an existing meal record.
func (r *InMemoryRepository) Update(_ context.Context, m *Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.meals[m.ID]; !ok {
		return ErrMealNotFound
	}

	cpy := *m
	r.meals[m.ID] = &cpy
	return nil
}

// Delete deletes a meal record by ID.
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.meals, id)
	return nil
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)

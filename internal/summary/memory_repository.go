package summary

import (
	"context"
	"sync"
	"time"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use PostgresRepository.
type InMemoryRepository struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
}

// NewInMemoryRepository creates a new in-memory summary repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		snapshots: make(map[string]*Snapshot),
	}
}

func snapshotKey(userID string, day time.Time) string {
	return userID + "|" + day.Format("2006-01-02")
}

// Get retrieves the snapshot for a user and day.
func (r *InMemoryRepository) Get(_ context.Context, userID string, day time.Time) (*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.snapshots[snapshotKey(userID, day)]
	if !ok {
		return nil, ErrSnapshotNotFound
	}

	return copySnapshot(s), nil
}

// Upsert stores a snapshot.
func (r *InMemoryRepository) Upsert(_ context.Context, s *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[snapshotKey(s.UserID, s.Day)] = copySnapshot(s)
	return nil
}

func copySnapshot(s *Snapshot) *Snapshot {
	cpy := *s
	cpy.CaloriesByMeal = copyMealMap(s.CaloriesByMeal)
	cpy.BudgetByMeal = copyMealMap(s.BudgetByMeal)
	return &cpy
}

func copyMealMap[K comparable](m map[K]int) map[K]int {
	if m == nil {
		return nil
	}
	out := make(map[K]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)

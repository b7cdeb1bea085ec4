// Package summary computes and caches per-day intake summaries.
package summary

import (
	"errors"
	"time"

	"github.com/plateful/plateful/internal/nutrition"
)

// Repository errors.
var (
	ErrSnapshotNotFound = errors.New("summary snapshot not found")
)

// Snapshot is a materialized daily summary, keyed by user and calendar day.
// Snapshots are recomputed out of band when a day's meals change; reads that
// need exact freshness compute the summary directly instead.
type Snapshot struct {
	UserID string

	// Day is the start of the summarized calendar day.
	Day time.Time

	CalorieGoal   int
	TotalCalories int
	TotalCarbs    int
	TotalProtein  int
	TotalFats     int

	Remaining int
	Progress  float64

	CaloriesByMeal map[nutrition.MealType]int
	BudgetByMeal   map[nutrition.MealType]int

	ComputedAt time.Time
}

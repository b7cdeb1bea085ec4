// Package meal provides meal record management.
package meal

import (
	"errors"
	"time"

	"github.com/plateful/plateful/internal/nutrition"
)

// Repository errors.
var (
	ErrMealNotFound = errors.New("meal not found")
)

// Meal is a single logged meal with its nutrient snapshot.
type Meal struct {
	ID     string
	UserID string

	// EatenAt is when the meal was consumed, not when it was logged.
	EatenAt time.Time

	FoodName string
	Calories int
	Carbs    int
	Protein  int
	Fats     int

	Type nutrition.MealType

	// ManualEntry is true when the user typed the values in rather than
	// instantiating a favorite or a food lookup.
	ManualEntry bool

	// PhotoURL is an opaque reference to an externally stored photo;
	// empty when there is none.
	PhotoURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Record returns the slice of the meal the aggregator consumes.
func (m *Meal) Record() nutrition.Record {
	return nutrition.Record{
		EatenAt:  m.EatenAt,
		Type:     m.Type,
		Calories: m.Calories,
		Carbs:    m.Carbs,
		Protein:  m.Protein,
		Fats:     m.Fats,
	}
}

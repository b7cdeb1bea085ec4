// Package favorite provides saved meal templates users can log again with
// one tap.
package favorite

import (
	"errors"
	"time"

	"github.com/plateful/plateful/internal/meal"
	"github.com/plateful/plateful/internal/nutrition"
)

// Repository errors.
var (
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// Favorite is a reusable meal template. Unlike a Meal it carries no date;
// instantiating it produces a dated meal record.
type Favorite struct {
	ID     string
	UserID string

	FoodName string
	Calories int
	Carbs    int
	Protein  int
	Fats     int

	Type nutrition.MealType

	PhotoURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Matches reports whether the favorite describes the same food as the meal.
// Used to suppress duplicate saves; the photo is cosmetic and ignored.
func (f *Favorite) Matches(m *meal.Meal) bool {
	return f.FoodName == m.FoodName &&
		f.Calories == m.Calories &&
		f.Carbs == m.Carbs &&
		f.Protein == m.Protein &&
		f.Fats == m.Fats &&
		f.Type == m.Type
}

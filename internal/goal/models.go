// Package goal provides nutrition goal profile management.
package goal

import (
	"errors"
	"time"

	"github.com/plateful/plateful/internal/nutrition"
)

// Repository errors.
var (
	ErrProfileNotFound = errors.New("goal profile not found")
)

// Profile is a user's configured daily calorie target plus macro and
// meal-distribution targets.
type Profile struct {
	// UserID owns the profile; one profile per user.
	UserID string

	// CalorieGoal is the daily kcal target.
	CalorieGoal int

	// Macros is the authoritative macro representation. When percentages
	// are authoritative, gram targets are re-derived from CalorieGoal on
	// every read; when grams are authoritative, CalorieGoal may be
	// back-derived from them.
	Macros nutrition.MacroTarget

	// Distribution assigns calorie shares to the four meal types.
	Distribution nutrition.Distribution

	// MacroPreset and MealPreset name the preset the current values came
	// from; nil once the user customizes away from any preset.
	MacroPreset *string
	MealPreset  *string

	// HasSetGoal is false until the user saves a goal for the first time.
	HasSetGoal bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AutoCalculateMacros reports whether gram targets are derived from the
// percentage triple rather than stored directly.
func (p *Profile) AutoCalculateMacros() bool {
	return p.Macros.IsPercentages()
}

// MacroGrams resolves the profile's concrete gram targets.
func (p *Profile) MacroGrams() (nutrition.MacroGrams, error) {
	return p.Macros.Resolve(p.CalorieGoal)
}

// NutritionGoal returns the slice of the profile the aggregator consumes.
func (p *Profile) NutritionGoal() nutrition.Goal {
	return nutrition.Goal{
		CalorieGoal:  p.CalorieGoal,
		Distribution: p.Distribution,
	}
}

// DefaultProfile returns the profile assigned at signup: the Balanced macro
// preset at 2000 kcal with the Standard meal distribution.
func DefaultProfile(userID string) *Profile {
	now := time.Now()
	macroPreset := nutrition.MacroPresetBalanced
	mealPreset := nutrition.MealPresetStandard

	standard, _ := nutrition.PresetDistribution(mealPreset)
	balanced, _ := nutrition.MacroPresetByName(macroPreset)

	return &Profile{
		UserID:       userID,
		CalorieGoal:  2000,
		Macros:       nutrition.PercentageTarget(balanced.Percentages),
		Distribution: standard,
		MacroPreset:  &macroPreset,
		MealPreset:   &mealPreset,
		HasSetGoal:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

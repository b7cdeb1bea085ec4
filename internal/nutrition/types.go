// Package nutrition provides the goal and meal-aggregation computation core:
// macro gram derivation, per-meal calorie budgets, and daily intake summaries.
// Everything in this package is pure and safe to call from any goroutine.
package nutrition

import "errors"

// Computation errors.
var (
	// ErrInvalidInput is returned when a calculator receives a negative or
	// otherwise unusable numeric input. Callers keep their prior value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPresetNotFound is returned when a preset name is not in the static
	// preset tables.
	ErrPresetNotFound = errors.New("preset not found")
)

// Calorie density per gram of each macronutrient.
const (
	CaloriesPerGramCarb    = 4
	CaloriesPerGramProtein = 4
	CaloriesPerGramFat     = 9
)

// MealType classifies a meal record into one of four fixed slots.
type MealType string

const (
	MealTypeBreakfast MealType = "Breakfast"
	MealTypeLunch     MealType = "Lunch"
	MealTypeDinner    MealType = "Dinner"
	MealTypeSnack     MealType = "Snack"
)

// MealTypes lists all meal types in display order.
var MealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}

// ParseMealType validates a raw meal type string.
func ParseMealType(s string) (MealType, error) {
	switch MealType(s) {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return MealType(s), nil
	}
	return "", ErrInvalidInput
}

// MacroGrams holds absolute gram targets for the three macronutrients.
type MacroGrams struct {
	Carbs   int
	Protein int
	Fat     int
}

// MacroPercentages holds percentage-of-calories targets for the three
// macronutrients. The three values conceptually sum to 100, but drift is
// tolerated (callers warn, they do not reject).
type MacroPercentages struct {
	Carbs   float64
	Protein float64
	Fat     float64
}

// MacroTarget is a tagged variant: exactly one representation of the macro
// goal is authoritative at a time. Use PercentageTarget or GramTarget to
// construct one.
type MacroTarget struct {
	percentages *MacroPercentages
	grams       *MacroGrams
}

// PercentageTarget returns a MacroTarget whose authoritative representation
// is a percentage triple.
func PercentageTarget(p MacroPercentages) MacroTarget {
	return MacroTarget{percentages: &p}
}

// GramTarget returns a MacroTarget whose authoritative representation is an
// absolute gram triple.
func GramTarget(g MacroGrams) MacroTarget {
	return MacroTarget{grams: &g}
}

// IsPercentages reports whether the percentage triple is authoritative.
func (t MacroTarget) IsPercentages() bool {
	return t.percentages != nil
}

// Percentages returns the percentage triple and whether it is authoritative.
func (t MacroTarget) Percentages() (MacroPercentages, bool) {
	if t.percentages == nil {
		return MacroPercentages{}, false
	}
	return *t.percentages, true
}

// Grams returns the gram triple and whether it is authoritative.
func (t MacroTarget) Grams() (MacroGrams, bool) {
	if t.grams == nil {
		return MacroGrams{}, false
	}
	return *t.grams, true
}

// Resolve returns concrete gram targets for the given calorie goal,
// deriving them from percentages when those are authoritative.
func (t MacroTarget) Resolve(calorieGoal int) (MacroGrams, error) {
	if t.grams != nil {
		return *t.grams, nil
	}
	if t.percentages != nil {
		return GramsFromPercentages(calorieGoal, t.percentages.Carbs, t.percentages.Protein, t.percentages.Fat)
	}
	return MacroGrams{}, ErrInvalidInput
}

// Distribution assigns a percentage of the daily calorie goal to each meal
// type. The four values should sum to 100; DistributionTotal lets callers
// check and warn.
type Distribution struct {
	Breakfast float64
	Lunch     float64
	Dinner    float64
	Snack     float64
}

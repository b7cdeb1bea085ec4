package nutrition

import "math"

// DistributionTolerance is how far a distribution total may drift from 100
// before callers should warn the user. The drift is a soft warning, never a
// blocking error.
const DistributionTolerance = 0.5

// MealBudgets splits a calorie goal into per-meal-type budgets. Each budget
// is truncated toward zero, so the four budgets can undershoot the goal by
// up to 4 kcal even when the distribution sums to exactly 100.
func MealBudgets(calorieGoal int, d Distribution) (map[MealType]int, error) {
	if calorieGoal < 0 || d.Breakfast < 0 || d.Lunch < 0 || d.Dinner < 0 || d.Snack < 0 {
		return nil, ErrInvalidInput
	}

	goal := float64(calorieGoal)
	return map[MealType]int{
		MealTypeBreakfast: int(goal * d.Breakfast / 100),
		MealTypeLunch:     int(goal * d.Lunch / 100),
		MealTypeDinner:    int(goal * d.Dinner / 100),
		MealTypeSnack:     int(goal * d.Snack / 100),
	}, nil
}

// DistributionTotal sums the four distribution percentages.
func DistributionTotal(d Distribution) float64 {
	return d.Breakfast + d.Lunch + d.Dinner + d.Snack
}

// DistributionBalanced reports whether the distribution total is within
// tolerance of 100.
func DistributionBalanced(d Distribution) bool {
	return math.Abs(DistributionTotal(d)-100) < DistributionTolerance
}

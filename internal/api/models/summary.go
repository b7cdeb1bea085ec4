package models

// MealTypeSummary compares one meal type's consumed calories to its budget.
type MealTypeSummary struct {
	MealType string `json:"mealType"`
	Calories int    `json:"calories"`
	Budget   int    `json:"budget"`
}

// DailySummary is the response body for a day's intake versus goals.
type DailySummary struct {
	Date Timestamp `json:"date"`

	CalorieGoal   int `json:"calorieGoal"`
	TotalCalories int `json:"totalCalories"`
	TotalCarbs    int `json:"totalCarbs"`
	TotalProtein  int `json:"totalProtein"`
	TotalFats     int `json:"totalFats"`

	// Remaining is signed: negative means the user ate over their goal.
	Remaining int `json:"remaining"`

	// Progress is clamped to [0, 1] for ring rendering; use Remaining or
	// OverGoal for over/under decisions.
	Progress float64 `json:"progress"`
	OverGoal bool    `json:"overGoal"`

	// Meals always contains all four meal types in display order.
	Meals []MealTypeSummary `json:"meals"`

	// Goal gram targets resolved at the current calorie goal.
	CarbGramsGoal    int `json:"carbGramsGoal"`
	ProteinGramsGoal int `json:"proteinGramsGoal"`
	FatGramsGoal     int `json:"fatGramsGoal"`
}

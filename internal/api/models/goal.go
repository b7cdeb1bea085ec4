package models

// GoalInput is the request body for saving a goal profile. Field names
// follow the persisted document schema the mobile clients already use.
//
// When AutoCalculateMacros is true the percentage triple is authoritative
// and gram targets are derived from it; when false the gram triple is
// authoritative and CalorieGoal may be omitted (it is back-derived from the
// grams).
type GoalInput struct {
	CalorieGoal         int  `json:"calorieGoal"`
	AutoCalculateMacros bool `json:"autoCalculateMacros"`

	CarbPercentage    float64 `json:"carbPercentage"`
	ProteinPercentage float64 `json:"proteinPercentage"`
	FatPercentage     float64 `json:"fatPercentage"`

	CarbGrams    int `json:"carbGrams"`
	ProteinGrams int `json:"proteinGrams"`
	FatGrams     int `json:"fatGrams"`

	// SelectedPreset applies a built-in macro split by name; when set it
	// overrides the percentage triple. Null means customized values.
	SelectedPreset *string `json:"selectedPreset"`

	// MealDistributionPreset applies a built-in meal split by name; when
	// set it overrides the four meal percentages. Null means customized.
	MealDistributionPreset *string `json:"mealDistributionPreset"`

	BreakfastPercentage float64 `json:"breakfastPercentage"`
	LunchPercentage     float64 `json:"lunchPercentage"`
	DinnerPercentage    float64 `json:"dinnerPercentage"`
	SnackPercentage     float64 `json:"snackPercentage"`
}

// Goal is the response body for a goal profile. It always carries both
// macro representations: the stored one plus the derived one.
type Goal struct {
	CalorieGoal         int  `json:"calorieGoal"`
	AutoCalculateMacros bool `json:"autoCalculateMacros"`

	CarbPercentage    float64 `json:"carbPercentage"`
	ProteinPercentage float64 `json:"proteinPercentage"`
	FatPercentage     float64 `json:"fatPercentage"`

	CarbGrams    int `json:"carbGrams"`
	ProteinGrams int `json:"proteinGrams"`
	FatGrams     int `json:"fatGrams"`

	SelectedPreset         *string `json:"selectedPreset"`
	MealDistributionPreset *string `json:"mealDistributionPreset"`

	BreakfastPercentage float64 `json:"breakfastPercentage"`
	LunchPercentage     float64 `json:"lunchPercentage"`
	DinnerPercentage    float64 `json:"dinnerPercentage"`
	SnackPercentage     float64 `json:"snackPercentage"`

	HasSetGoal bool `json:"hasSetGoal"`

	// Warnings carries soft, non-blocking issues such as a meal
	// distribution that does not sum to 100.
	Warnings []string `json:"warnings,omitempty"`

	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// MacroPresetGrams is one entry of the preset table resolved at a concrete
// calorie goal.
type MacroPresetGrams struct {
	Name              string  `json:"name"`
	CarbPercentage    float64 `json:"carbPercentage"`
	ProteinPercentage float64 `json:"proteinPercentage"`
	FatPercentage     float64 `json:"fatPercentage"`
	CarbGrams         int     `json:"carbGrams"`
	ProteinGrams      int     `json:"proteinGrams"`
	FatGrams          int     `json:"fatGrams"`
}

// MealDistributionPreset is one entry of the meal-distribution preset table.
type MealDistributionPreset struct {
	Name                string  `json:"name"`
	BreakfastPercentage float64 `json:"breakfastPercentage"`
	LunchPercentage     float64 `json:"lunchPercentage"`
	DinnerPercentage    float64 `json:"dinnerPercentage"`
	SnackPercentage     float64 `json:"snackPercentage"`
	BreakfastBudget     int     `json:"breakfastBudget"`
	LunchBudget         int     `json:"lunchBudget"`
	DinnerBudget        int     `json:"dinnerBudget"`
	SnackBudget         int     `json:"snackBudget"`
}

// GoalPresets is the response body for the preset tables resolved at a
// calorie goal. It is recomputed per request; clients must not cache it
// across calorie-goal edits.
type GoalPresets struct {
	CalorieGoal         int                      `json:"calorieGoal"`
	MacroPresets        []MacroPresetGrams       `json:"macroPresets"`
	DistributionPresets []MealDistributionPreset `json:"distributionPresets"`
}

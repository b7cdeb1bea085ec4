package nutrition

import "time"

// Record is the slice of a logged meal the aggregator needs. It is kept
// deliberately small so callers can aggregate records from any store.
type Record struct {
	EatenAt  time.Time
	Type     MealType
	Calories int
	Carbs    int
	Protein  int
	Fats     int
}

// Goal is the slice of a goal profile the aggregator needs.
type Goal struct {
	CalorieGoal  int
	Distribution Distribution
}

// DailySummary compares a day's logged intake against goal-derived budgets.
type DailySummary struct {
	// Day is the start of the aggregated calendar day, in the location the
	// aggregation ran with.
	Day time.Time

	TotalCalories int
	TotalCarbs    int
	TotalProtein  int
	TotalFats     int

	// CaloriesByMeal maps every meal type to its calorie sum; types with no
	// records map to 0, never absent.
	CaloriesByMeal map[MealType]int

	// BudgetByMeal is the per-meal budget derived from the goal.
	BudgetByMeal map[MealType]int

	// Remaining is CalorieGoal minus TotalCalories. Negative means over
	// budget; it is never clamped.
	Remaining int

	// Progress is TotalCalories/CalorieGoal clamped to [0, 1] for ring
	// rendering. Over/under decisions must use Remaining, not Progress.
	Progress float64
}

// OverGoal reports whether the day's intake exceeded the calorie goal.
func (s DailySummary) OverGoal() bool {
	return s.Remaining < 0
}

// Aggregate sums the records that fall on the same calendar day as day
// (start-of-day inclusive, start-of-next-day exclusive, in day's location)
// and compares the totals against the goal. It is pure: the goal and
// records must come from the same fetch cycle, and a fresh call is needed
// whenever either changes.
func Aggregate(day time.Time, goal Goal, records []Record) DailySummary {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	summary := DailySummary{
		Day:            start,
		CaloriesByMeal: make(map[MealType]int, len(MealTypes)),
	}
	for _, t := range MealTypes {
		summary.CaloriesByMeal[t] = 0
	}

	for _, r := range records {
		if r.EatenAt.Before(start) || !r.EatenAt.Before(end) {
			continue
		}
		summary.TotalCalories += r.Calories
		summary.TotalCarbs += r.Carbs
		summary.TotalProtein += r.Protein
		summary.TotalFats += r.Fats
		summary.CaloriesByMeal[r.Type] += r.Calories
	}

	// Budgets are recomputed per call; a stale goal must never be mixed
	// with a fresh record set.
	budgets, err := MealBudgets(goal.CalorieGoal, goal.Distribution)
	if err != nil {
		budgets = map[MealType]int{
			MealTypeBreakfast: 0,
			MealTypeLunch:     0,
			MealTypeDinner:    0,
			MealTypeSnack:     0,
		}
	}
	summary.BudgetByMeal = budgets

	summary.Remaining = goal.CalorieGoal - summary.TotalCalories

	if goal.CalorieGoal > 0 {
		p := float64(summary.TotalCalories) / float64(goal.CalorieGoal)
		if p > 1 {
			p = 1
		}
		if p < 0 {
			p = 0
		}
		summary.Progress = p
	}

	return summary
}

package nutrition

import "math"

// GramsFromPercentages derives gram targets from a calorie goal and a macro
// percentage triple. Grams are truncated toward zero (integer-division
// semantics); the percentages are not required to sum to 100.
func GramsFromPercentages(calorieGoal int, carbPct, proteinPct, fatPct float64) (MacroGrams, error) {
	if calorieGoal <= 0 || carbPct < 0 || proteinPct < 0 || fatPct < 0 {
		return MacroGrams{}, ErrInvalidInput
	}

	goal := float64(calorieGoal)
	return MacroGrams{
		Carbs:   int(goal * carbPct / 100 / CaloriesPerGramCarb),
		Protein: int(goal * proteinPct / 100 / CaloriesPerGramProtein),
		Fat:     int(goal * fatPct / 100 / CaloriesPerGramFat),
	}, nil
}

// PresetGrams derives gram targets for every built-in macro preset at the
// given calorie goal. The result is a pure function of calorieGoal and must
// be recomputed whenever the goal changes, never cached across edits.
func PresetGrams(calorieGoal int) (map[string]MacroGrams, error) {
	if calorieGoal <= 0 {
		return nil, ErrInvalidInput
	}

	out := make(map[string]MacroGrams, len(MacroPresets))
	for _, p := range MacroPresets {
		g, err := GramsFromPercentages(calorieGoal, p.Percentages.Carbs, p.Percentages.Protein, p.Percentages.Fat)
		if err != nil {
			return nil, err
		}
		out[p.Name] = g
	}
	return out, nil
}

// CaloriesFromGrams back-derives a calorie goal from gram targets, for when
// the user edits grams directly with auto-calculation off.
func CaloriesFromGrams(g MacroGrams) (int, error) {
	if g.Carbs < 0 || g.Protein < 0 || g.Fat < 0 {
		return 0, ErrInvalidInput
	}

	kcal := float64(g.Carbs)*CaloriesPerGramCarb +
		float64(g.Protein)*CaloriesPerGramProtein +
		float64(g.Fat)*CaloriesPerGramFat
	return int(math.Round(kcal)), nil
}

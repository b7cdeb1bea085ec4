package nutrition

// MacroPreset is a named, fixed percentage split of daily calories across
// the three macronutrients.
type MacroPreset struct {
	Name        string
	Percentages MacroPercentages
}

// DistributionPreset is a named, fixed percentage split of daily calories
// across the four meal types.
type DistributionPreset struct {
	Name         string
	Distribution Distribution
}

// Preset names.
const (
	MacroPresetBalanced    = "Balanced"
	MacroPresetHighProtein = "High-Protein"
	MacroPresetLowCarb     = "Low-Carb"
	MacroPresetKeto        = "Keto"

	MealPresetStandard     = "Standard"
	MealPresetEven         = "Even"
	MealPresetBigBreakfast = "Big-Breakfast"
	MealPresetBigDinner    = "Big-Dinner"
)

// MacroPresets lists the built-in macro splits in display order.
var MacroPresets = []MacroPreset{
	{Name: MacroPresetBalanced, Percentages: MacroPercentages{Carbs: 50, Protein: 25, Fat: 25}},
	{Name: MacroPresetHighProtein, Percentages: MacroPercentages{Carbs: 40, Protein: 35, Fat: 25}},
	{Name: MacroPresetLowCarb, Percentages: MacroPercentages{Carbs: 30, Protein: 35, Fat: 35}},
	{Name: MacroPresetKeto, Percentages: MacroPercentages{Carbs: 10, Protein: 30, Fat: 60}},
}

// DistributionPresets lists the built-in meal splits in display order.
var DistributionPresets = []DistributionPreset{
	{Name: MealPresetStandard, Distribution: Distribution{Breakfast: 25, Lunch: 35, Dinner: 30, Snack: 10}},
	{Name: MealPresetEven, Distribution: Distribution{Breakfast: 25, Lunch: 25, Dinner: 25, Snack: 25}},
	{Name: MealPresetBigBreakfast, Distribution: Distribution{Breakfast: 40, Lunch: 30, Dinner: 20, Snack: 10}},
	{Name: MealPresetBigDinner, Distribution: Distribution{Breakfast: 20, Lunch: 30, Dinner: 40, Snack: 10}},
}

// MacroPresetByName looks up a built-in macro preset.
func MacroPresetByName(name string) (MacroPreset, error) {
	for _, p := range MacroPresets {
		if p.Name == name {
			return p, nil
		}
	}
	return MacroPreset{}, ErrPresetNotFound
}

// PresetDistribution looks up a built-in meal-distribution preset. Unknown
// names yield ErrPresetNotFound; callers keep their prior distribution.
func PresetDistribution(name string) (Distribution, error) {
	for _, p := range DistributionPresets {
		if p.Name == name {
			return p.Distribution, nil
		}
	}
	return Distribution{}, ErrPresetNotFound
}

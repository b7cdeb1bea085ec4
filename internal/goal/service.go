package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/plateful/plateful/internal/api/models"
	"github.com/plateful/plateful/internal/nutrition"
)

// Service provides goal profile operations.
type Service struct {
	repo Repository
}

// NewService creates a new goal service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get retrieves the profile for a user, falling back to the signup default
// when none has been saved yet.
func (s *Service) Get(ctx context.Context, userID string) (*models.Goal, error) {
	profile, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			profile = DefaultProfile(userID)
		} else {
			return nil, err
		}
	}

	return s.toAPIGoal(profile)
}

// GetProfile retrieves the domain profile for a user, falling back to the
// signup default. Used by collaborators that need the domain type rather
// than the API shape.
func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	profile, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return DefaultProfile(userID), nil
		}
		return nil, err
	}
	return profile, nil
}

// Upsert saves the user's goal profile. Preset names, when present,
// override the corresponding raw values; distribution drift from 100 is a
// soft warning carried in the response, never an error.
func (s *Service) Upsert(ctx context.Context, userID string, input *models.GoalInput) (*models.Goal, error) {
	if fieldErrors := s.validateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	pct := nutrition.MacroPercentages{
		Carbs:   input.CarbPercentage,
		Protein: input.ProteinPercentage,
		Fat:     input.FatPercentage,
	}
	macroPreset := input.SelectedPreset
	if macroPreset != nil {
		preset, err := nutrition.MacroPresetByName(*macroPreset)
		if err != nil {
			return nil, err
		}
		pct = preset.Percentages
	}

	dist := nutrition.Distribution{
		Breakfast: input.BreakfastPercentage,
		Lunch:     input.LunchPercentage,
		Dinner:    input.DinnerPercentage,
		Snack:     input.SnackPercentage,
	}
	mealPreset := input.MealDistributionPreset
	if mealPreset != nil {
		d, err := nutrition.PresetDistribution(*mealPreset)
		if err != nil {
			return nil, err
		}
		dist = d
	}

	calorieGoal := input.CalorieGoal
	var macros nutrition.MacroTarget
	if input.AutoCalculateMacros {
		macros = nutrition.PercentageTarget(pct)
	} else {
		grams := nutrition.MacroGrams{
			Carbs:   input.CarbGrams,
			Protein: input.ProteinGrams,
			Fat:     input.FatGrams,
		}
		macros = nutrition.GramTarget(grams)

		// Grams are authoritative; keep the calorie goal consistent with
		// them when the client did not supply one.
		if calorieGoal <= 0 {
			derived, err := nutrition.CaloriesFromGrams(grams)
			if err != nil {
				return nil, err
			}
			calorieGoal = derived
		}
	}

	now := time.Now()
	profile := &Profile{
		UserID:       userID,
		CalorieGoal:  calorieGoal,
		Macros:       macros,
		Distribution: dist,
		MacroPreset:  macroPreset,
		MealPreset:   mealPreset,
		HasSetGoal:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if existing, err := s.repo.Get(ctx, userID); err == nil {
		profile.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	return s.toAPIGoal(profile)
}

// Presets resolves the built-in preset tables at a calorie goal. The
// result is a pure function of the goal and is recomputed on every call.
func (s *Service) Presets(calorieGoal int) (*models.GoalPresets, error) {
	presetGrams, err := nutrition.PresetGrams(calorieGoal)
	if err != nil {
		return nil, err
	}

	out := &models.GoalPresets{CalorieGoal: calorieGoal}

	for _, p := range nutrition.MacroPresets {
		g := presetGrams[p.Name]
		out.MacroPresets = append(out.MacroPresets, models.MacroPresetGrams{
			Name:              p.Name,
			CarbPercentage:    p.Percentages.Carbs,
			ProteinPercentage: p.Percentages.Protein,
			FatPercentage:     p.Percentages.Fat,
			CarbGrams:         g.Carbs,
			ProteinGrams:      g.Protein,
			FatGrams:          g.Fat,
		})
	}

	for _, p := range nutrition.DistributionPresets {
		budgets, err := nutrition.MealBudgets(calorieGoal, p.Distribution)
		if err != nil {
			return nil, err
		}
		out.DistributionPresets = append(out.DistributionPresets, models.MealDistributionPreset{
			Name:                p.Name,
			BreakfastPercentage: p.Distribution.Breakfast,
			LunchPercentage:     p.Distribution.Lunch,
			DinnerPercentage:    p.Distribution.Dinner,
			SnackPercentage:     p.Distribution.Snack,
			BreakfastBudget:     budgets[nutrition.MealTypeBreakfast],
			LunchBudget:         budgets[nutrition.MealTypeLunch],
			DinnerBudget:        budgets[nutrition.MealTypeDinner],
			SnackBudget:         budgets[nutrition.MealTypeSnack],
		})
	}

	return out, nil
}

// validateInput validates a goal input.
func (s *Service) validateInput(input *models.GoalInput) []models.FieldError {
	var errs []models.FieldError

	if input.AutoCalculateMacros && input.CalorieGoal <= 0 {
		errs = append(errs, models.FieldError{Field: "calorieGoal", Message: "must be positive when autoCalculateMacros is set"})
	}

	errs = appendNonNegative(errs, input.CarbPercentage, "carbPercentage")
	errs = appendNonNegative(errs, input.ProteinPercentage, "proteinPercentage")
	errs = appendNonNegative(errs, input.FatPercentage, "fatPercentage")
	errs = appendNonNegative(errs, float64(input.CarbGrams), "carbGrams")
	errs = appendNonNegative(errs, float64(input.ProteinGrams), "proteinGrams")
	errs = appendNonNegative(errs, float64(input.FatGrams), "fatGrams")
	errs = appendNonNegative(errs, input.BreakfastPercentage, "breakfastPercentage")
	errs = appendNonNegative(errs, input.LunchPercentage, "lunchPercentage")
	errs = appendNonNegative(errs, input.DinnerPercentage, "dinnerPercentage")
	errs = appendNonNegative(errs, input.SnackPercentage, "snackPercentage")

	return errs
}

func appendNonNegative(errs []models.FieldError, value float64, field string) []models.FieldError {
	if value < 0 {
		errs = append(errs, models.FieldError{Field: field, Message: "must not be negative"})
	}
	return errs
}

// toAPIGoal converts a domain Profile to an API Goal, resolving grams and
// collecting soft warnings.
func (s *Service) toAPIGoal(p *Profile) (*models.Goal, error) {
	grams, err := p.MacroGrams()
	if err != nil {
		return nil, err
	}
	pct, _ := p.Macros.Percentages()

	out := &models.Goal{
		CalorieGoal:            p.CalorieGoal,
		AutoCalculateMacros:    p.AutoCalculateMacros(),
		CarbPercentage:         pct.Carbs,
		ProteinPercentage:      pct.Protein,
		FatPercentage:          pct.Fat,
		CarbGrams:              grams.Carbs,
		ProteinGrams:           grams.Protein,
		FatGrams:               grams.Fat,
		SelectedPreset:         p.MacroPreset,
		MealDistributionPreset: p.MealPreset,
		BreakfastPercentage:    p.Distribution.Breakfast,
		LunchPercentage:        p.Distribution.Lunch,
		DinnerPercentage:       p.Distribution.Dinner,
		SnackPercentage:        p.Distribution.Snack,
		HasSetGoal:             p.HasSetGoal,
		CreatedAt:              models.Timestamp(p.CreatedAt),
		UpdatedAt:              models.Timestamp(p.UpdatedAt),
	}

	if !nutrition.DistributionBalanced(p.Distribution) {
		out.Warnings = append(out.Warnings, fmt.Sprintf(
			"meal distribution sums to %.1f%%, not 100%%", nutrition.DistributionTotal(p.Distribution)))
	}
	if p.AutoCalculateMacros() {
		if total := pct.Carbs + pct.Protein + pct.Fat; total < 99.5 || total > 100.5 {
			out.Warnings = append(out.Warnings, fmt.Sprintf(
				"macro percentages sum to %.1f%%, not 100%%", total))
		}
	}

	return out, nil
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

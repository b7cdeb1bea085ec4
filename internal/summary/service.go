package summary

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/plateful/plateful/internal/api/models"
	"github.com/plateful/plateful/internal/goal"
	"github.com/plateful/plateful/internal/meal"
	"github.com/plateful/plateful/internal/nutrition"
)

// Service computes daily intake summaries against the user's goal profile.
type Service struct {
	repo   Repository
	goals  *goal.Service
	meals  *meal.Service
	logger zerolog.Logger
}

// ServiceConfig holds configuration for creating a summary service.
type ServiceConfig struct {
	// Repository stores materialized snapshots. Optional; nil disables
	// snapshot writes.
	Repository Repository

	Goals *goal.Service
	Meals *meal.Service

	Logger zerolog.Logger
}

// NewService creates a new summary service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		repo:   cfg.Repository,
		goals:  cfg.Goals,
		meals:  cfg.Meals,
		logger: cfg.Logger,
	}
}

// ForDay computes the summary for the calendar day containing day, in day's
// location. The goal profile and the day's meals are fetched together so
// budgets and totals always come from the same cycle.
func (s *Service) ForDay(ctx context.Context, userID string, day time.Time) (*models.DailySummary, error) {
	agg, profile, err := s.compute(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	grams, err := profile.MacroGrams()
	if err != nil {
		// An unset or zero goal has no gram targets; the summary still
		// reports intake.
		grams = nutrition.MacroGrams{}
	}

	out := &models.DailySummary{
		Date:          models.Timestamp(agg.Day),
		CalorieGoal:   profile.CalorieGoal,
		TotalCalories: agg.TotalCalories,
		TotalCarbs:    agg.TotalCarbs,
		TotalProtein:  agg.TotalProtein,
		TotalFats:     agg.TotalFats,
		Remaining:     agg.Remaining,
		Progress:      agg.Progress,
		OverGoal:      agg.OverGoal(),

		CarbGramsGoal:    grams.Carbs,
		ProteinGramsGoal: grams.Protein,
		FatGramsGoal:     grams.Fat,
	}

	for _, t := range nutrition.MealTypes {
		out.Meals = append(out.Meals, models.MealTypeSummary{
			MealType: string(t),
			Calories: agg.CaloriesByMeal[t],
			Budget:   agg.BudgetByMeal[t],
		})
	}

	return out, nil
}

// Recompute recomputes the snapshot for a user and day and stores it.
// Called from the worker when a day's meals change.
func (s *Service) Recompute(ctx context.Context, userID string, day time.Time) (*Snapshot, error) {
	agg, profile, err := s.compute(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		UserID:         userID,
		Day:            agg.Day,
		CalorieGoal:    profile.CalorieGoal,
		TotalCalories:  agg.TotalCalories,
		TotalCarbs:     agg.TotalCarbs,
		TotalProtein:   agg.TotalProtein,
		TotalFats:      agg.TotalFats,
		Remaining:      agg.Remaining,
		Progress:       agg.Progress,
		CaloriesByMeal: agg.CaloriesByMeal,
		BudgetByMeal:   agg.BudgetByMeal,
		ComputedAt:     time.Now(),
	}

	if s.repo != nil {
		if err := s.repo.Upsert(ctx, snapshot); err != nil {
			return nil, err
		}
	}

	return snapshot, nil
}

// Cached retrieves the stored snapshot for a user and day, if one has been
// computed.
func (s *Service) Cached(ctx context.Context, userID string, day time.Time) (*Snapshot, error) {
	if s.repo == nil {
		return nil, ErrSnapshotNotFound
	}
	return s.repo.Get(ctx, userID, day)
}

func (s *Service) compute(ctx context.Context, userID string, day time.Time) (nutrition.DailySummary, *goal.Profile, error) {
	profile, err := s.goals.GetProfile(ctx, userID)
	if err != nil {
		return nutrition.DailySummary{}, nil, err
	}

	meals, err := s.meals.ListForDay(ctx, userID, day)
	if err != nil {
		return nutrition.DailySummary{}, nil, err
	}

	records := make([]nutrition.Record, 0, len(meals))
	for _, m := range meals {
		records = append(records, m.Record())
	}

	return nutrition.Aggregate(day, profile.NutritionGoal(), records), profile, nil
}

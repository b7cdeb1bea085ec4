package summary

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/plateful/internal/api/models"
	"github.com/plateful/plateful/internal/goal"
	"github.com/plateful/plateful/internal/meal"
	"github.com/plateful/plateful/internal/nutrition"
)

type testFixture struct {
	svc   *Service
	goals *goal.Service
	meals *meal.Service
	repo  *InMemoryRepository
}

func newFixture() *testFixture {
	goals := goal.NewService(goal.NewInMemoryRepository())
	meals := meal.NewService(meal.ServiceConfig{
		Repository: meal.NewInMemoryRepository(),
		Logger:     zerolog.Nop(),
	})
	repo := NewInMemoryRepository()

	return &testFixture{
		svc: NewService(ServiceConfig{
			Repository: repo,
			Goals:      goals,
			Meals:      meals,
			Logger:     zerolog.Nop(),
		}),
		goals: goals,
		meals: meals,
		repo:  repo,
	}
}

func (f *testFixture) setGoal(t *testing.T, userID string, calorieGoal int) {
	t.Helper()
	balanced := nutrition.MacroPresetBalanced
	standard := nutrition.MealPresetStandard

	_, err := f.goals.Upsert(context.Background(), userID, &models.GoalInput{
		CalorieGoal:            calorieGoal,
		AutoCalculateMacros:    true,
		SelectedPreset:         &balanced,
		MealDistributionPreset: &standard,
	})
	require.NoError(t, err)
}

func (f *testFixture) logMeal(t *testing.T, userID string, at time.Time, mealType string, calories int) {
	t.Helper()
	_, err := f.meals.Create(context.Background(), userID, &models.MealCreateRequest{
		Date:     models.Timestamp(at),
		FoodName: "test food",
		Calories: calories,
		Carbs:    calories / 8,
		Protein:  calories / 16,
		Fats:     calories / 36,
		MealType: mealType,
	})
	require.NoError(t, err)
}

func TestService_ForDay(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.setGoal(t, "user-1", 2000)

	day := time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC)
	f.logMeal(t, "user-1", day.Add(8*time.Hour), "Breakfast", 400)
	f.logMeal(t, "user-1", day.Add(13*time.Hour), "Lunch", 600)
	f.logMeal(t, "user-1", day.Add(19*time.Hour), "Dinner", 500)

	got, err := f.svc.ForDay(ctx, "user-1", day.Add(15*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, 2000, got.CalorieGoal)
	assert.Equal(t, 1500, got.TotalCalories)
	assert.Equal(t, 500, got.Remaining)
	assert.InDelta(t, 0.75, got.Progress, 1e-9)
	assert.False(t, got.OverGoal)

	// All four meal types are present, Snack with zero calories, budgets
	// from the Standard distribution of 2000 kcal.
	require.Len(t, got.Meals, 4)
	byType := map[string]models.MealTypeSummary{}
	for _, m := range got.Meals {
		byType[m.MealType] = m
	}
	assert.Equal(t, 400, byType["Breakfast"].Calories)
	assert.Equal(t, 500, byType["Breakfast"].Budget)
	assert.Equal(t, 700, byType["Lunch"].Budget)
	assert.Equal(t, 0, byType["Snack"].Calories)
	assert.Equal(t, 200, byType["Snack"].Budget)

	// Balanced preset gram targets at 2000 kcal.
	assert.Equal(t, 250, got.CarbGramsGoal)
	assert.Equal(t, 125, got.ProteinGramsGoal)
	assert.Equal(t, 55, got.FatGramsGoal)
}

func TestService_ForDay_DefaultGoalWhenUnset(t *testing.T) {
	f := newFixture()

	day := time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC)
	f.logMeal(t, "user-1", day.Add(9*time.Hour), "Breakfast", 300)

	got, err := f.svc.ForDay(context.Background(), "user-1", day)
	require.NoError(t, err)

	// Signup default applies until the user saves a goal.
	assert.Equal(t, 2000, got.CalorieGoal)
	assert.Equal(t, 1700, got.Remaining)
}

func TestService_ForDay_OverGoal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.setGoal(t, "user-1", 2000)

	day := time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC)
	f.logMeal(t, "user-1", day.Add(12*time.Hour), "Lunch", 2200)

	got, err := f.svc.ForDay(ctx, "user-1", day)
	require.NoError(t, err)

	assert.Equal(t, -200, got.Remaining)
	assert.Equal(t, 1.0, got.Progress)
	assert.True(t, got.OverGoal)
}

func TestService_ForDay_ExcludesOtherDays(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	loc, err := time.LoadLocation("America/Toronto")
	require.NoError(t, err)

	f.setGoal(t, "user-1", 2000)

	day := time.Date(2026, 5, 14, 0, 0, 0, 0, loc)
	f.logMeal(t, "user-1", day, "Breakfast", 300)                      // start of day
	f.logMeal(t, "user-1", day.Add(24*time.Hour-time.Second), "Dinner", 400) // last second
	f.logMeal(t, "user-1", day.Add(24*time.Hour), "Breakfast", 999)    // next day
	f.logMeal(t, "user-1", day.Add(-time.Second), "Dinner", 999)       // previous day

	got, err := f.svc.ForDay(ctx, "user-1", day.Add(10*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 700, got.TotalCalories)
}

func TestService_Recompute(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.setGoal(t, "user-1", 2000)

	day := time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC)
	f.logMeal(t, "user-1", day.Add(8*time.Hour), "Breakfast", 450)

	snapshot, err := f.svc.Recompute(ctx, "user-1", day)
	require.NoError(t, err)
	assert.Equal(t, 450, snapshot.TotalCalories)
	assert.Equal(t, 1550, snapshot.Remaining)

	// The snapshot is stored and retrievable by user and day.
	cached, err := f.svc.Cached(ctx, "user-1", day)
	require.NoError(t, err)
	assert.Equal(t, snapshot.TotalCalories, cached.TotalCalories)
	assert.Equal(t, 450, cached.CaloriesByMeal[nutrition.MealTypeBreakfast])
	assert.Equal(t, 500, cached.BudgetByMeal[nutrition.MealTypeBreakfast])

	// Recompute replaces, never appends.
	f.logMeal(t, "user-1", day.Add(12*time.Hour), "Lunch", 650)
	snapshot, err = f.svc.Recompute(ctx, "user-1", day)
	require.NoError(t, err)
	assert.Equal(t, 1100, snapshot.TotalCalories)

	cached, err = f.svc.Cached(ctx, "user-1", day)
	require.NoError(t, err)
	assert.Equal(t, 1100, cached.TotalCalories)
}

func TestService_Cached_NotComputed(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Cached(context.Background(), "user-1", time.Now())
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

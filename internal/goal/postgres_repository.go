package goal

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plateful/plateful/internal/nutrition"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL goal profile repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Get retrieves the profile for a user.
func (r *PostgresRepository) Get(ctx context.Context, userID string) (*Profile, error) {
	query := `
		SELECT
			user_id, calorie_goal, auto_calculate_macros,
			carb_percentage, protein_percentage, fat_percentage,
			carb_grams, protein_grams, fat_grams,
			selected_preset, meal_distribution_preset,
			breakfast_percentage, lunch_percentage, dinner_percentage, snack_percentage,
			has_set_goal, created_at, updated_at
		FROM goal_profiles
		WHERE user_id = $1
	`

	var (
		profile       Profile
		autoCalculate bool
		pct           nutrition.MacroPercentages
		grams         nutrition.MacroGrams
	)

	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.CalorieGoal,
		&autoCalculate,
		&pct.Carbs,
		&pct.Protein,
		&pct.Fat,
		&grams.Carbs,
		&grams.Protein,
		&grams.Fat,
		&profile.MacroPreset,
		&profile.MealPreset,
		&profile.Distribution.Breakfast,
		&profile.Distribution.Lunch,
		&profile.Distribution.Dinner,
		&profile.Distribution.Snack,
		&profile.HasSetGoal,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if autoCalculate {
		profile.Macros = nutrition.PercentageTarget(pct)
	} else {
		profile.Macros = nutrition.GramTarget(grams)
	}

	return &profile, nil
}

// Upsert creates or replaces the profile for a user. Both macro
// representations are written so the stored row is readable regardless of
// which one is authoritative; the auto_calculate_macros flag selects the
// authoritative one on load.
func (r *PostgresRepository) Upsert(ctx context.Context, profile *Profile) error {
	query := `
		INSERT INTO goal_profiles (
			user_id, calorie_goal, auto_calculate_macros,
			carb_percentage, protein_percentage, fat_percentage,
			carb_grams, protein_grams, fat_grams,
			selected_preset, meal_distribution_preset,
			breakfast_percentage, lunch_percentage, dinner_percentage, snack_percentage,
			has_set_goal, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (user_id) DO UPDATE SET
			calorie_goal = EXCLUDED.calorie_goal,
			auto_calculate_macros = EXCLUDED.auto_calculate_macros,
			carb_percentage = EXCLUDED.carb_percentage,
			protein_percentage = EXCLUDED.protein_percentage,
			fat_percentage = EXCLUDED.fat_percentage,
			carb_grams = EXCLUDED.carb_grams,
			protein_grams = EXCLUDED.protein_grams,
			fat_grams = EXCLUDED.fat_grams,
			selected_preset = EXCLUDED.selected_preset,
			meal_distribution_preset = EXCLUDED.meal_distribution_preset,
			breakfast_percentage = EXCLUDED.breakfast_percentage,
			lunch_percentage = EXCLUDED.lunch_percentage,
			dinner_percentage = EXCLUDED.dinner_percentage,
			snack_percentage = EXCLUDED.snack_percentage,
			has_set_goal = EXCLUDED.has_set_goal,
			updated_at = EXCLUDED.updated_at
	`

	pct, _ := profile.Macros.Percentages()
	grams, err := profile.MacroGrams()
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query,
		profile.UserID,
		profile.CalorieGoal,
		profile.AutoCalculateMacros(),
		pct.Carbs,
		pct.Protein,
		pct.Fat,
		grams.Carbs,
		grams.Protein,
		grams.Fat,
		profile.MacroPreset,
		profile.MealPreset,
		profile.Distribution.Breakfast,
		profile.Distribution.Lunch,
		profile.Distribution.Dinner,
		profile.Distribution.Snack,
		profile.HasSetGoal,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	return err
}

// Delete removes the profile for a user.
func (r *PostgresRepository) Delete(ctx context.Context, userID string) error {
	query := `DELETE FROM goal_profiles WHERE user_id = $1`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)

package summary

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plateful/plateful/internal/nutrition"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL summary repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Get retrieves the snapshot for a user and day.
func (r *PostgresRepository) Get(ctx context.Context, userID string, day time.Time) (*Snapshot, error) {
	query := `
		SELECT user_id, day, calorie_goal,
			total_calories, total_carbs, total_protein, total_fats,
			remaining, progress,
			calories_by_meal, budget_by_meal,
			computed_at
		FROM daily_summaries
		WHERE user_id = $1 AND day = $2::date
	`

	var (
		s            Snapshot
		caloriesJSON []byte
		budgetsJSON  []byte
	)
	err := r.pool.QueryRow(ctx, query, userID, day).Scan(
		&s.UserID,
		&s.Day,
		&s.CalorieGoal,
		&s.TotalCalories,
		&s.TotalCarbs,
		&s.TotalProtein,
		&s.TotalFats,
		&s.Remaining,
		&s.Progress,
		&caloriesJSON,
		&budgetsJSON,
		&s.ComputedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}

	if s.CaloriesByMeal, err = unmarshalMealMap(caloriesJSON); err != nil {
		return nil, err
	}
	if s.BudgetByMeal, err = unmarshalMealMap(budgetsJSON); err != nil {
		return nil, err
	}

	return &s, nil
}

// Upsert stores a snapshot, replacing any previous one for the same user
// and day.
func (r *PostgresRepository) Upsert(ctx context.Context, s *Snapshot) error {
	query := `
		INSERT INTO daily_summaries (
			user_id, day, calorie_goal,
			total_calories, total_carbs, total_protein, total_fats,
			remaining, progress,
			calories_by_meal, budget_by_meal,
			computed_at
		)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id, day) DO UPDATE SET
			calorie_goal = EXCLUDED.calorie_goal,
			total_calories = EXCLUDED.total_calories,
			total_carbs = EXCLUDED.total_carbs,
			total_protein = EXCLUDED.total_protein,
			total_fats = EXCLUDED.total_fats,
			remaining = EXCLUDED.remaining,
			progress = EXCLUDED.progress,
			calories_by_meal = EXCLUDED.calories_by_meal,
			budget_by_meal = EXCLUDED.budget_by_meal,
			computed_at = EXCLUDED.computed_at
	`

	caloriesJSON, err := json.Marshal(s.CaloriesByMeal)
	if err != nil {
		return err
	}
	budgetsJSON, err := json.Marshal(s.BudgetByMeal)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query,
		s.UserID,
		s.Day,
		s.CalorieGoal,
		s.TotalCalories,
		s.TotalCarbs,
		s.TotalProtein,
		s.TotalFats,
		s.Remaining,
		s.Progress,
		caloriesJSON,
		budgetsJSON,
		s.ComputedAt,
	)
	return err
}

func unmarshalMealMap(data []byte) (map[nutrition.MealType]int, error) {
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[nutrition.MealType]int, len(raw))
	for k, v := range raw {
		out[nutrition.MealType(k)] = v
	}
	return out, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)

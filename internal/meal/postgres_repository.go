package meal

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

// NewPostgresRepository creates a new PostgreSQL meal repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const mealColumns = `
	id, user_id, eaten_at, food_name,
	calories, carbs, protein, fats,
	meal_type, is_manual_entry, photo_url,
	created_at, updated_at
`

// GetByUserAndID retrieves a meal by user ID and meal ID.
func (r *PostgresRepository) GetByUserAndID(ctx context.Context, userID, mealID string) (*Meal, error) {
	query := `SELECT ` + mealColumns + ` FROM meals WHERE id = $1 AND user_id = $2`

	var (
		m       Meal
		rawType string
	)
	err := r.pool.QueryRow(ctx, query, mealID, userID).Scan(
		&m.ID,
		&m.UserID,
		&m.EatenAt,
		&m.FoodName,
		&m.Calories,
		&m.Carbs,
		&m.Protein,
		&m.Fats,
		&rawType,
		&m.ManualEntry,
		&m.PhotoURL,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}

	m.Type = nutrition.MealType(rawType)
	return &m, nil
}

// List retrieves meals for a user, newest first.
func (r *PostgresRepository) List(ctx context.Context, userID string, opts ListOptions) (*ListResult, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	// Fetch one extra to determine if there are more results
	fetchLimit := limit + 1

	// The cursor is the id of the last meal on the previous page; the keyset
	// predicate resumes strictly after its (eaten_at, id) position. An
	// unknown or foreign cursor matches no row and yields an empty page.
	query := `SELECT ` + mealColumns + `
		FROM meals
		WHERE user_id = $1
		AND ($2::timestamptz IS NULL OR eaten_at >= $2)
		AND ($3::timestamptz IS NULL OR eaten_at < $3)
		AND ($4::text IS NULL OR (eaten_at, id) < (
			SELECT eaten_at, id FROM meals WHERE id = $4 AND user_id = $1
		))
		ORDER BY eaten_at DESC, id DESC
		LIMIT $5
	`

	var from, until, cursor interface{}
	if !opts.From.IsZero() {
		from = opts.From
	}
	if !opts.Until.IsZero() {
		until = opts.Until
	}
	if opts.Cursor != "" {
		cursor = opts.Cursor
	}

	rows, err := r.pool.Query(ctx, query, userID, from, until, cursor, fetchLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []*Meal
	for rows.Next() {
		var (
			m       Meal
			rawType string
		)
		err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.EatenAt,
			&m.FoodName,
			&m.Calories,
			&m.Carbs,
			&m.Protein,
			&m.Fats,
			&rawType,
			&m.ManualEntry,
			&m.PhotoURL,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		m.Type = nutrition.MealType(rawType)
		meals = append(meals, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := &ListResult{Items: meals}
	if len(meals) > limit {
		result.Items = meals[:limit]
		result.NextCursor = meals[limit-1].ID
	}

	return result, nil
}

// Create creates a new meal record.
func (r *PostgresRepository) Create(ctx context.Context, m *Meal) error {
	query := `
		INSERT INTO meals (` + mealColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.pool.Exec(ctx, query,
		m.ID,
		m.UserID,
		m.EatenAt,
		m.FoodName,
		m.Calories,
		m.Carbs,
		m.Protein,
		m.Fats,
		string(m.Type),
		m.ManualEntry,
		m.PhotoURL,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

// Update updates an existing meal record.
func (r *PostgresRepository) Update(ctx context.Context, m *Meal) error {
	query := `
		UPDATE meals SET
			eaten_at = $2,
			food_name = $3,
			calories = $4,
			carbs = $5,
			protein = $6,
			fats = $7,
			meal_type = $8,
			is_manual_entry = $9,
			photo_url = $10,
			updated_at = $11
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		m.ID,
		m.EatenAt,
		m.FoodName,
		m.Calories,
		m.Carbs,
		m.Protein,
		m.Fats,
		string(m.Type),
		m.ManualEntry,
		m.PhotoURL,
		m.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrMealNotFound
	}

	return nil
}

// Delete deletes a meal record by ID.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM meals WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)

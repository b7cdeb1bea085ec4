package favorite

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

// NewPostgresRepository creates a new PostgreSQL favorite repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const favoriteColumns = `
	id, user_id, food_name,
	calories, carbs, protein, fats,
	meal_type, photo_url,
	created_at, updated_at
`

// GetByUserAndID retrieves a favorite by user ID and favorite ID.
func (r *PostgresRepository) GetByUserAndID(ctx context.Context, userID, favoriteID string) (*Favorite, error) {
	query := `SELECT ` + favoriteColumns + ` FROM favorite_meals WHERE id = $1 AND user_id = $2`

	f, err := scanFavorite(r.pool.QueryRow(ctx, query, favoriteID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFavoriteNotFound
		}
		return nil, err
	}
	return f, nil
}

// ListByUser retrieves all favorites for a user, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Favorite, error) {
	query := `SELECT ` + favoriteColumns + `
		FROM favorite_meals
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []*Favorite
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return favorites, nil
}

// Create creates a new favorite.
func (r *PostgresRepository) Create(ctx context.Context, f *Favorite) error {
	query := `
		INSERT INTO favorite_meals (` + favoriteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		f.ID,
		f.UserID,
		f.FoodName,
		f.Calories,
		f.Carbs,
		f.Protein,
		f.Fats,
		string(f.Type),
		f.PhotoURL,
		f.CreatedAt,
		f.UpdatedAt,
	)
	return err
}

// Delete deletes a favorite by ID.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM favorite_meals WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func scanFavorite(row pgx.Row) (*Favorite, error) {
	var (
		f       Favorite
		rawType string
	)
	err := row.Scan(
		&f.ID,
		&f.UserID,
		&f.FoodName,
		&f.Calories,
		&f.Carbs,
		&f.Protein,
		&f.Fats,
		&rawType,
		&f.PhotoURL,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	f.Type = nutrition.MealType(rawType)
	return &f, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)

package favorite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/plateful/plateful/internal/api/models"
	"github.com/plateful/plateful/internal/meal"
	"github.com/plateful/plateful/internal/nutrition"
)

// Service provides favorite meal template operations.
type Service struct {
	repo   Repository
	meals  *meal.Service
	logger zerolog.Logger
}

// ServiceConfig holds configuration for creating a favorite service.
type ServiceConfig struct {
	Repository Repository

	// Meals is used to instantiate favorites as dated meal records.
	Meals *meal.Service

	Logger zerolog.Logger
}

// NewService creates a new favorite service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		repo:   cfg.Repository,
		meals:  cfg.Meals,
		logger: cfg.Logger,
	}
}

// List retrieves all favorites for a user, newest first.
func (s *Service) List(ctx context.Context, userID string) (*models.FavoriteList, error) {
	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &models.FavoriteList{Items: make([]models.Favorite, 0, len(favorites))}
	for _, f := range favorites {
		out.Items = append(out.Items, toAPIFavorite(f))
	}
	return out, nil
}

// Create saves a favorite template. Saving a template identical to an
// existing one returns the existing favorite instead of a duplicate.
func (s *Service) Create(ctx context.Context, userID string, input *models.FavoriteCreateRequest) (*models.Favorite, error) {
	if fieldErrors := validateCreateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	mealType, err := nutrition.ParseMealType(input.MealType)
	if err != nil {
		return nil, &ValidationError{Errors: []models.FieldError{
			{Field: "mealType", Message: "must be one of Breakfast, Lunch, Dinner, Snack"},
		}}
	}

	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	candidate := meal.Meal{
		FoodName: input.FoodName,
		Calories: input.Calories,
		Carbs:    input.Carbs,
		Protein:  input.Protein,
		Fats:     input.Fats,
		Type:     mealType,
	}
	for _, f := range existing {
		if f.Matches(&candidate) {
			result := toAPIFavorite(f)
			return &result, nil
		}
	}

	now := time.Now()
	f := &Favorite{
		ID:        "fav_" + uuid.New().String()[:22],
		UserID:    userID,
		FoodName:  input.FoodName,
		Calories:  input.Calories,
		Carbs:     input.Carbs,
		Protein:   input.Protein,
		Fats:      input.Fats,
		Type:      mealType,
		PhotoURL:  input.PhotoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	result := toAPIFavorite(f)
	return &result, nil
}

// Delete removes a favorite for a user.
func (s *Service) Delete(ctx context.Context, userID, favoriteID string) error {
	if _, err := s.repo.GetByUserAndID(ctx, userID, favoriteID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, favoriteID)
}

// LogMeal instantiates a favorite as a dated meal record for the user.
func (s *Service) LogMeal(ctx context.Context, userID string, input *models.MealFromFavoriteRequest) (*models.Meal, error) {
	f, err := s.repo.GetByUserAndID(ctx, userID, input.FavoriteID)
	if err != nil {
		return nil, err
	}

	return s.meals.Create(ctx, userID, &models.MealCreateRequest{
		Date:          input.Date,
		FoodName:      f.FoodName,
		Calories:      f.Calories,
		Carbs:         f.Carbs,
		Protein:       f.Protein,
		Fats:          f.Fats,
		MealType:      string(f.Type),
		IsManualEntry: false,
		PhotoURL:      f.PhotoURL,
	})
}

// validateCreateInput validates the create favorite input.
func validateCreateInput(input *models.FavoriteCreateRequest) []models.FieldError {
	var errs []models.FieldError

	if input.FoodName == "" {
		errs = append(errs, models.FieldError{Field: "foodName", Message: "is required"})
	}
	if input.Calories <= 0 {
		errs = append(errs, models.FieldError{Field: "calories", Message: "must be positive"})
	}
	if input.Carbs < 0 {
		errs = append(errs, models.FieldError{Field: "carbs", Message: "must not be negative"})
	}
	if input.Protein < 0 {
		errs = append(errs, models.FieldError{Field: "protein", Message: "must not be negative"})
	}
	if input.Fats < 0 {
		errs = append(errs, models.FieldError{Field: "fats", Message: "must not be negative"})
	}

	return errs
}

// toAPIFavorite converts a domain Favorite to an API Favorite.
func toAPIFavorite(f *Favorite) models.Favorite {
	return models.Favorite{
		ID:       f.ID,
		UserID:   f.UserID,
		FoodName: f.FoodName,
		Calories: f.Calories,
		Carbs:    f.Carbs,
		Protein:  f.Protein,
		Fats:     f.Fats,
		MealType: string(f.Type),
		PhotoURL: f.PhotoURL,
	}
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

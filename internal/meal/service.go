package meal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/plateful/plateful/internal/api/models"
	"github.com/plateful/plateful/internal/nutrition"
)

// Validation constants.
const (
	MaxFoodNameLength = 120
)

// ChangeNotifier is told when a user's meals change for a day, so derived
// data (daily summary snapshots) can be recomputed out of band. Delivery is
// best-effort; a failed notification never fails the meal write.
type ChangeNotifier interface {
	MealChanged(ctx context.Context, userID string, day time.Time)
}

// Service provides meal record operations.
type Service struct {
	repo     Repository
	notifier ChangeNotifier
	logger   zerolog.Logger
}

// ServiceConfig holds configuration for creating a meal service.
type ServiceConfig struct {
	Repository Repository

	// Notifier is optional; nil disables change notifications.
	Notifier ChangeNotifier

	Logger zerolog.Logger
}

// NewService creates a new meal service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		repo:     cfg.Repository,
		notifier: cfg.Notifier,
		logger:   cfg.Logger,
	}
}

// List retrieves meals for a user, newest first, optionally bounded by an
// eaten-at range.
func (s *Service) List(ctx context.Context, userID string, opts ListOptions) (*models.PagedMeals, error) {
	result, err := s.repo.List(ctx, userID, opts)
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	items := make([]models.Meal, 0, len(result.Items))
	for _, m := range result.Items {
		items = append(items, s.toAPIMeal(m))
	}

	var nextCursor *string
	if result.NextCursor != "" {
		nextCursor = &result.NextCursor
	}

	return &models.PagedMeals{
		Items: items,
		Meta: models.PagedResponseMeta{
			Limit:      limit,
			NextCursor: nextCursor,
		},
	}, nil
}

// ListForDay retrieves the domain meals whose EatenAt falls on the same
// calendar day as day, in day's location.
func (s *Service) ListForDay(ctx context.Context, userID string, day time.Time) ([]*Meal, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	opts := ListOptions{
		From:  start,
		Until: start.Add(24 * time.Hour),
		Limit: 200,
	}

	// Page through the full day so aggregation sees every record.
	var meals []*Meal
	for {
		result, err := s.repo.List(ctx, userID, opts)
		if err != nil {
			return nil, err
		}
		meals = append(meals, result.Items...)
		if result.NextCursor == "" {
			return meals, nil
		}
		opts.Cursor = result.NextCursor
	}
}

// Get retrieves a meal by ID for a user.
func (s *Service) Get(ctx context.Context, userID, mealID string) (*models.Meal, error) {
	m, err := s.repo.GetByUserAndID(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}

	result := s.toAPIMeal(m)
	return &result, nil
}

// Create logs a new meal for a user.
func (s *Service) Create(ctx context.Context, userID string, input *models.MealCreateRequest) (*models.Meal, error) {
	if fieldErrors := s.validateCreateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	mealType, err := nutrition.ParseMealType(input.MealType)
	if err != nil {
		return nil, &ValidationError{Errors: []models.FieldError{
			{Field: "mealType", Message: "must be one of Breakfast, Lunch, Dinner, Snack"},
		}}
	}

	now := time.Now()
	m := &Meal{
		ID:          "meal_" + uuid.New().String()[:22],
		UserID:      userID,
		EatenAt:     input.Date.Time(),
		FoodName:    input.FoodName,
		Calories:    input.Calories,
		Carbs:       input.Carbs,
		Protein:     input.Protein,
		Fats:        input.Fats,
		Type:        mealType,
		ManualEntry: input.IsManualEntry,
		PhotoURL:    input.PhotoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.notifyChanged(ctx, userID, m.EatenAt)

	result := s.toAPIMeal(m)
	return &result, nil
}

// Update edits an existing meal for a user.
func (s *Service) Update(ctx context.Context, userID, mealID string, input *models.MealUpdateRequest) (*models.Meal, error) {
	m, err := s.repo.GetByUserAndID(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}

	previousDay := m.EatenAt

	if input.Date != nil {
		m.EatenAt = input.Date.Time()
	}
	if input.FoodName != nil {
		m.FoodName = *input.FoodName
	}
	if input.Calories != nil {
		m.Calories = *input.Calories
	}
	if input.Carbs != nil {
		m.Carbs = *input.Carbs
	}
	if input.Protein != nil {
		m.Protein = *input.Protein
	}
	if input.Fats != nil {
		m.Fats = *input.Fats
	}
	if input.MealType != nil {
		mealType, err := nutrition.ParseMealType(*input.MealType)
		if err != nil {
			return nil, &ValidationError{Errors: []models.FieldError{
				{Field: "mealType", Message: "must be one of Breakfast, Lunch, Dinner, Snack"},
			}}
		}
		m.Type = mealType
	}
	if input.PhotoURL != nil {
		m.PhotoURL = *input.PhotoURL
	}

	if fieldErrors := s.validateMeal(m); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	m.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	s.notifyChanged(ctx, userID, m.EatenAt)
	// A date edit moves calories between days; both need recomputing.
	if !sameDay(previousDay, m.EatenAt) {
		s.notifyChanged(ctx, userID, previousDay)
	}

	result := s.toAPIMeal(m)
	return &result, nil
}

// Delete removes a meal for a user.
func (s *Service) Delete(ctx context.Context, userID, mealID string) error {
	m, err := s.repo.GetByUserAndID(ctx, userID, mealID)
	if err != nil {
		if errors.Is(err, ErrMealNotFound) {
			return ErrMealNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, mealID); err != nil {
		return err
	}

	s.notifyChanged(ctx, userID, m.EatenAt)
	return nil
}

// notifyChanged tells the notifier a day's meals changed. Best-effort.
func (s *Service) notifyChanged(ctx context.Context, userID string, day time.Time) {
	if s.notifier == nil {
		return
	}
	s.notifier.MealChanged(ctx, userID, day)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// validateCreateInput validates the create meal input.
func (s *Service) validateCreateInput(input *models.MealCreateRequest) []models.FieldError {
	var errs []models.FieldError

	if input.FoodName == "" {
		errs = append(errs, models.FieldError{Field: "foodName", Message: "is required"})
	} else if len(input.FoodName) > MaxFoodNameLength {
		errs = append(errs, models.FieldError{Field: "foodName", Message: "must be at most 120 characters"})
	}

	// A zero-calorie record carries no information; the client blocks it
	// and the service enforces it.
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

	if input.Date.Time().IsZero() {
		errs = append(errs, models.FieldError{Field: "date", Message: "is required"})
	}

	return errs
}

// validateMeal validates a meal after updates have been applied.
func (s *Service) validateMeal(m *Meal) []models.FieldError {
	var errs []models.FieldError

	if m.FoodName == "" {
		errs = append(errs, models.FieldError{Field: "foodName", Message: "cannot be empty"})
	}
	if m.Calories <= 0 {
		errs = append(errs, models.FieldError{Field: "calories", Message: "must be positive"})
	}
	if m.Carbs < 0 || m.Protein < 0 || m.Fats < 0 {
		errs = append(errs, models.FieldError{Field: "nutrients", Message: "must not be negative"})
	}

	return errs
}

// toAPIMeal converts a domain Meal to an API Meal.
func (s *Service) toAPIMeal(m *Meal) models.Meal {
	return models.Meal{
		ID:            m.ID,
		UserID:        m.UserID,
		Date:          models.Timestamp(m.EatenAt),
		FoodName:      m.FoodName,
		Calories:      m.Calories,
		Carbs:         m.Carbs,
		Protein:       m.Protein,
		Fats:          m.Fats,
		MealType:      string(m.Type),
		IsManualEntry: m.ManualEntry,
		PhotoURL:      m.PhotoURL,
		CreatedAt:     models.Timestamp(m.CreatedAt),
		UpdatedAt:     models.Timestamp(m.UpdatedAt),
	}
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

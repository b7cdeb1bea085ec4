package user

import (
	"context"
	"errors"
	"time"

	"github.com/plateful/plateful/internal/api/models"
	"github.com/plateful/plateful/internal/validate"
)

// Service provides user profile operations.
type Service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get retrieves the profile for a user. First contact creates the default
// profile, so every authenticated user has one.
func (s *Service) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	u, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toAPIProfile(u), nil
}

// GetUser retrieves the domain user. Used by collaborators that need the
// timezone rather than the API shape.
func (s *Service) GetUser(ctx context.Context, userID string) (*User, error) {
	return s.getOrCreate(ctx, userID)
}

// Update applies a partial profile update.
func (s *Service) Update(ctx context.Context, userID string, input *models.UserProfileUpdateRequest) (*models.UserProfile, error) {
	u, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	var fieldErrors []models.FieldError

	if input.DisplayName != nil {
		if !validate.Name(*input.DisplayName) {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field: "displayName", Message: "must be letters separated by single spaces",
			})
		} else {
			u.DisplayName = *input.DisplayName
		}
	}

	if input.Email != nil {
		if !validate.Email(*input.Email) {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field: "email", Message: "must be a valid email address",
			})
		} else {
			u.Email = *input.Email
		}
	}

	if input.Timezone != nil {
		if _, err := time.LoadLocation(*input.Timezone); err != nil || *input.Timezone == "" {
			fieldErrors = append(fieldErrors, models.FieldError{
				Field: "timezone", Message: "must be a valid IANA timezone name",
			})
		} else {
			u.Timezone = *input.Timezone
		}
	}

	if input.Units != nil {
		switch *input.Units {
		case models.UnitsMetric, models.UnitsImperial:
			u.Units = *input.Units
		default:
			fieldErrors = append(fieldErrors, models.FieldError{
				Field: "units", Message: "must be METRIC or IMPERIAL",
			})
		}
	}

	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	u.UpdatedAt = time.Now()
	if err := s.repo.Upsert(ctx, u); err != nil {
		return nil, err
	}

	return toAPIProfile(u), nil
}

// Delete removes the user's profile.
func (s *Service) Delete(ctx context.Context, userID string) error {
	return s.repo.Delete(ctx, userID)
}

func (s *Service) getOrCreate(ctx context.Context, userID string) (*User, error) {
	u, err := s.repo.Get(ctx, userID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	u = NewUser(userID)
	if err := s.repo.Upsert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func toAPIProfile(u *User) *models.UserProfile {
	return &models.UserProfile{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Timezone:    u.Timezone,
		Units:       u.Units,
		CreatedAt:   models.Timestamp(u.CreatedAt),
		UpdatedAt:   models.Timestamp(u.UpdatedAt),
	}
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

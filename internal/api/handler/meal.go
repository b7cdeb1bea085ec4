package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/plateful/plateful/internal/api/models"
	"github.com/plateful/plateful/internal/api/response"
	"github.com/plateful/plateful/internal/meal"
)

// MealHandler handles meal record endpoints.
type MealHandler struct {
	meals *meal.Service
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(meals *meal.Service) *MealHandler {
	return &MealHandler{meals: meals}
}

// ListMeals handles GET /v1/me/meals - list meals, newest first.
// Optional query parameters: from, until (RFC3339), limit, cursor.
func (h *MealHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	opts := meal.ListOptions{}

	if raw := r.URL.Query().Get("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(w, r, "from must be an RFC3339 timestamp", nil)
			return
		}
		opts.From = t
	}
	if raw := r.URL.Query().Get("until"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(w, r, "until must be an RFC3339 timestamp", nil)
			return
		}
		opts.Until = t
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 200 {
			response.BadRequest(w, r, "limit must be an integer between 1 and 200", nil)
			return
		}
		opts.Limit = limit
	}
	opts.Cursor = r.URL.Query().Get("cursor")

	paged, err := h.meals.List(r.Context(), userID, opts)
	if err != nil {
		response.InternalError(w, r, "failed to list meals")
		return
	}

	response.JSON(w, r, http.StatusOK, paged)
}

// CreateMeal handles POST /v1/me/meals - log a meal.
func (h *MealHandler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	var input models.MealCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	created, err := h.meals.Create(r.Context(), userID, &input)
	if err != nil {
		var vErr *meal.ValidationError
		if errors.As(err, &vErr) {
			response.BadRequest(w, r, "invalid meal input", vErr.Errors)
			return
		}
		response.InternalError(w, r, "failed to create meal")
		return
	}

	location := fmt.Sprintf("/v1/me/meals/%s", created.ID)
	response.Created(w, r, location, created)
}

// GetMeal handles GET /v1/me/meals/{mealId} - get a single meal.
func (h *MealHandler) GetMeal(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	mealID := chi.URLParam(r, "mealId")

	m, err := h.meals.Get(r.Context(), userID, mealID)
	if err != nil {
		if errors.Is(err, meal.ErrMealNotFound) {
			response.NotFound(w, r, "meal not found")
			return
		}
		response.InternalError(w, r, "failed to load meal")
		return
	}

	response.JSON(w, r, http.StatusOK, m)
}

// UpdateMeal handles PUT /v1/me/meals/{mealId} - edit a meal.
func (h *MealHandler) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	mealID := chi.URLParam(r, "mealId")

	var input models.MealUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	updated, err := h.meals.Update(r.Context(), userID, mealID, &input)
	if err != nil {
		var vErr *meal.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.BadRequest(w, r, "invalid meal input", vErr.Errors)
		case errors.Is(err, meal.ErrMealNotFound):
			response.NotFound(w, r, "meal not found")
		default:
			response.InternalError(w, r, "failed to update meal")
		}
		return
	}

	response.JSON(w, r, http.StatusOK, updated)
}

// DeleteMeal handles DELETE /v1/me/meals/{mealId} - delete a meal.
func (h *MealHandler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	mealID := chi.URLParam(r, "mealId")

	if err := h.meals.Delete(r.Context(), userID, mealID); err != nil {
		if errors.Is(err, meal.ErrMealNotFound) {
			response.NotFound(w, r, "meal not found")
			return
		}
		response.InternalError(w, r, "failed to delete meal")
		return
	}

	response.NoContent(w, r)
}

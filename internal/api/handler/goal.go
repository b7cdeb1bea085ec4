package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/plateful/plateful/internal/api/models"
	"github.com/plateful/plateful/internal/api/response"
	"github.com/plateful/plateful/internal/goal"
	"github.com/plateful/plateful/internal/nutrition"
)

// GoalHandler handles goal profile endpoints.
type GoalHandler struct {
	goals *goal.Service
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goals *goal.Service) *GoalHandler {
	return &GoalHandler{goals: goals}
}

// GetGoal handles GET /v1/me/goal - get the current goal profile.
// Users who never saved one get the signup default with hasSetGoal false.
func (h *GoalHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	g, err := h.goals.Get(r.Context(), userID)
	if err != nil {
		response.InternalError(w, r, "failed to load goal profile")
		return
	}

	response.JSON(w, r, http.StatusOK, g)
}

// UpsertGoal handles PUT /v1/me/goal - create or replace the goal profile.
func (h *GoalHandler) UpsertGoal(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	var input models.GoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	g, err := h.goals.Upsert(r.Context(), userID, &input)
	if err != nil {
		var vErr *goal.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.BadRequest(w, r, "invalid goal input", vErr.Errors)
		case errors.Is(err, nutrition.ErrPresetNotFound):
			response.BadRequest(w, r, "unknown preset name", nil)
		case errors.Is(err, nutrition.ErrInvalidInput):
			response.BadRequest(w, r, "goal values out of range", nil)
		default:
			response.InternalError(w, r, "failed to save goal profile")
		}
		return
	}

	response.JSON(w, r, http.StatusOK, g)
}

// GetPresets handles GET /v1/me/goal/presets?calorieGoal= - preset tables
// resolved at a calorie goal.
func (h *GoalHandler) GetPresets(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("calorieGoal")
	if raw == "" {
		response.BadRequest(w, r, "calorieGoal query parameter is required", nil)
		return
	}

	calorieGoal, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(w, r, "calorieGoal must be an integer", nil)
		return
	}

	presets, err := h.goals.Presets(calorieGoal)
	if err != nil {
		if errors.Is(err, nutrition.ErrInvalidInput) {
			response.BadRequest(w, r, "calorieGoal must be positive", nil)
			return
		}
		response.InternalError(w, r, "failed to resolve presets")
		return
	}

	response.JSON(w, r, http.StatusOK, presets)
}

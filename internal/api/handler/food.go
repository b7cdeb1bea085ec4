package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plateful/plateful/internal/api/response"
	"github.com/plateful/plateful/internal/foodfacts"
	"github.com/plateful/plateful/internal/provider/resilience"
)

// FoodHandler handles packaged food lookup endpoints.
type FoodHandler struct {
	foods *foodfacts.Service
}

// NewFoodHandler creates a new FoodHandler.
func NewFoodHandler(foods *foodfacts.Service) *FoodHandler {
	return &FoodHandler{foods: foods}
}

// GetFoodFacts handles GET /v1/foods/{barcode} - nutrition facts for a
// packaged food.
func (h *FoodHandler) GetFoodFacts(w http.ResponseWriter, r *http.Request) {
	barcode := chi.URLParam(r, "barcode")

	facts, err := h.foods.Lookup(r.Context(), barcode)
	if err != nil {
		switch {
		case errors.Is(err, foodfacts.ErrInvalidBarcode):
			response.BadRequest(w, r, "barcode must be 8 to 14 digits", nil)
		case errors.Is(err, foodfacts.ErrProductNotFound):
			response.NotFound(w, r, "no nutrition data for this barcode")
		case errors.Is(err, resilience.ErrCircuitOpen):
			response.ServiceUnavailable(w, r, "food database temporarily unavailable")
		default:
			response.ServiceUnavailable(w, r, "food database lookup failed")
		}
		return
	}

	response.JSON(w, r, http.StatusOK, facts)
}

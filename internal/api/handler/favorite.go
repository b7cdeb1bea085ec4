package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plateful/plateful/internal/api/models"
	"github.com/plateful/plateful/internal/api/response"
	"github.com/plateful/plateful/internal/favorite"
	"github.com/plateful/plateful/internal/meal"
)

// FavoriteHandler handles favorite meal template endpoints.
type FavoriteHandler struct {
	favorites *favorite.Service
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(favorites *favorite.Service) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// ListFavorites handles GET /v1/me/favorites - list favorite templates.
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	list, err := h.favorites.List(r.Context(), userID)
	if err != nil {
		response.InternalError(w, r, "failed to list favorites")
		return
	}

	response.JSON(w, r, http.StatusOK, list)
}

// CreateFavorite handles POST /v1/me/favorites - save a favorite template.
// Saving an identical template returns the existing favorite.
func (h *FavoriteHandler) CreateFavorite(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	var input models.FavoriteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	created, err := h.favorites.Create(r.Context(), userID, &input)
	if err != nil {
		var vErr *favorite.ValidationError
		if errors.As(err, &vErr) {
			response.BadRequest(w, r, "invalid favorite input", vErr.Errors)
			return
		}
		response.InternalError(w, r, "failed to save favorite")
		return
	}

	location := fmt.Sprintf("/v1/me/favorites/%s", created.ID)
	response.Created(w, r, location, created)
}

// DeleteFavorite handles DELETE /v1/me/favorites/{favoriteId}.
func (h *FavoriteHandler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())
	favoriteID := chi.URLParam(r, "favoriteId")

	if err := h.favorites.Delete(r.Context(), userID, favoriteID); err != nil {
		if errors.Is(err, favorite.ErrFavoriteNotFound) {
			response.NotFound(w, r, "favorite not found")
			return
		}
		response.InternalError(w, r, "failed to delete favorite")
		return
	}

	response.NoContent(w, r)
}

// LogFromFavorite handles POST /v1/me/meals:fromFavorite - instantiate a
// favorite as a dated meal record.
func (h *FavoriteHandler) LogFromFavorite(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	var input models.MealFromFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}
	if input.FavoriteID == "" {
		response.BadRequest(w, r, "favoriteId is required", nil)
		return
	}

	logged, err := h.favorites.LogMeal(r.Context(), userID, &input)
	if err != nil {
		var vErr *meal.ValidationError
		switch {
		case errors.Is(err, favorite.ErrFavoriteNotFound):
			response.NotFound(w, r, "favorite not found")
		case errors.As(err, &vErr):
			response.BadRequest(w, r, "invalid meal input", vErr.Errors)
		default:
			response.InternalError(w, r, "failed to log meal")
		}
		return
	}

	location := fmt.Sprintf("/v1/me/meals/%s", logged.ID)
	response.Created(w, r, location, logged)
}

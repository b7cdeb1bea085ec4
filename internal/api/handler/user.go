package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/plateful/plateful/internal/api/models"
	"github.com/plateful/plateful/internal/api/response"
	"github.com/plateful/plateful/internal/user"
)

// UserHandler handles user profile endpoints.
type UserHandler struct {
	users *user.Service
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *user.Service) *UserHandler {
	return &UserHandler{users: users}
}

// GetProfile handles GET /v1/me/profile - get the user's profile.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	profile, err := h.users.Get(r.Context(), userID)
	if err != nil {
		response.InternalError(w, r, "failed to load profile")
		return
	}

	response.JSON(w, r, http.StatusOK, profile)
}

// UpdateProfile handles PUT /v1/me/profile - partial profile update.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	var input models.UserProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	profile, err := h.users.Update(r.Context(), userID, &input)
	if err != nil {
		var vErr *user.ValidationError
		if errors.As(err, &vErr) {
			response.BadRequest(w, r, "invalid profile input", vErr.Errors)
			return
		}
		response.InternalError(w, r, "failed to update profile")
		return
	}

	response.JSON(w, r, http.StatusOK, profile)
}

package handler

import (
	"net/http"
	"time"

	"github.com/plateful/plateful/internal/api/response"
	"github.com/plateful/plateful/internal/summary"
	"github.com/plateful/plateful/internal/user"
)

// SummaryHandler handles daily summary endpoints.
type SummaryHandler struct {
	summaries *summary.Service
	users     *user.Service
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaries *summary.Service, users *user.Service) *SummaryHandler {
	return &SummaryHandler{summaries: summaries, users: users}
}

// GetDailySummary handles GET /v1/me/summary?date=2006-01-02 - a day's
// intake versus goals. The date is interpreted in the user's profile
// timezone; omitting it means today.
func (h *SummaryHandler) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	u, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		response.InternalError(w, r, "failed to load user profile")
		return
	}
	loc := u.Location()

	day := time.Now().In(loc)
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			response.BadRequest(w, r, "date must be formatted as 2006-01-02", nil)
			return
		}
		day = parsed
	}

	s, err := h.summaries.ForDay(r.Context(), userID, day)
	if err != nil {
		response.InternalError(w, r, "failed to compute daily summary")
		return
	}

	response.JSON(w, r, http.StatusOK, s)
}

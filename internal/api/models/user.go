package models

// Units is the user's preferred unit system for body and food weights.
type Units string

const (
	UnitsMetric   Units = "METRIC"
	UnitsImperial Units = "IMPERIAL"
)

// UserProfileUpdateRequest is the request body for updating the user's
// profile. Nil fields are left unchanged.
type UserProfileUpdateRequest struct {
	DisplayName *string `json:"displayName,omitempty"`
	Email       *string `json:"email,omitempty"`

	// Timezone is an IANA zone name, e.g. "Europe/Amsterdam". It anchors
	// the user's calendar days for summaries.
	Timezone *string `json:"timezone,omitempty"`

	Units *Units `json:"units,omitempty"`
}

// UserProfile is the response body for the user's profile.
type UserProfile struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Timezone    string    `json:"timezone"`
	Units       Units     `json:"units"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
}

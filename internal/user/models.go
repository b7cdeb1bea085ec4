// Package user provides user profile and settings management.
//
// Only what the nutrition features need is stored: a display name, a contact
// email, the IANA timezone that anchors the user's calendar days, and a unit
// preference. Authentication identities live with the external identity
// provider, not here.
package user

import (
	"time"

	"github.com/plateful/plateful/internal/api/models"
)

// DefaultTimezone applies until the user picks one.
const DefaultTimezone = "UTC"

// User represents a user's profile and settings.
type User struct {
	// ID is the unique user identifier, matching the subject of the user's
	// access tokens.
	ID string

	// DisplayName is the name shown in the app.
	DisplayName string

	// Email is the user's contact address.
	Email string

	// Timezone is an IANA zone name. Daily summaries and meal-day grouping
	// are computed in this zone.
	Timezone string

	// Units is the preferred unit system for body and food weights.
	Units models.Units

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location resolves the user's timezone, falling back to UTC when the
// stored name is empty or invalid.
func (u *User) Location() *time.Location {
	if u.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// NewUser returns a user with default settings.
func NewUser(id string) *User {
	now := time.Now()
	return &User{
		ID:        id,
		Timezone:  DefaultTimezone,
		Units:     models.UnitsMetric,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

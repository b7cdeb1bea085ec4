package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/plateful/internal/api/models"
)

func strptr(s string) *string { return &s }

func TestService_Get_CreatesDefault(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	got, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", got.ID)
	assert.Equal(t, "UTC", got.Timezone)
	assert.Equal(t, models.UnitsMetric, got.Units)
	assert.Empty(t, got.DisplayName)
}

func TestService_Update(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	ctx := context.Background()

	units := models.UnitsImperial
	got, err := svc.Update(ctx, "user-1", &models.UserProfileUpdateRequest{
		DisplayName: strptr("Jane Doe"),
		Email:       strptr("jane@example.com"),
		Timezone:    strptr("Europe/Amsterdam"),
		Units:       &units,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", got.DisplayName)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.Equal(t, "Europe/Amsterdam", got.Timezone)
	assert.Equal(t, models.UnitsImperial, got.Units)

	// Partial update leaves the rest untouched.
	got, err = svc.Update(ctx, "user-1", &models.UserProfileUpdateRequest{
		DisplayName: strptr("Jane"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.DisplayName)
	assert.Equal(t, "jane@example.com", got.Email)
}

func TestService_Update_Validation(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	ctx := context.Background()

	tests := []struct {
		name  string
		input models.UserProfileUpdateRequest
		field string
	}{
		{
			name:  "bad name",
			input: models.UserProfileUpdateRequest{DisplayName: strptr("Jane42")},
			field: "displayName",
		},
		{
			name:  "bad email",
			input: models.UserProfileUpdateRequest{Email: strptr("not-an-email")},
			field: "email",
		},
		{
			name:  "bad timezone",
			input: models.UserProfileUpdateRequest{Timezone: strptr("Mars/Olympus")},
			field: "timezone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, "user-1", &tt.input)
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Errors[0].Field)
		})
	}

	// Nothing was persisted by the failed updates.
	got, err := svc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, got.Email)
}

func TestUser_Location(t *testing.T) {
	u := NewUser("user-1")
	assert.Equal(t, "UTC", u.Location().String())

	u.Timezone = "America/Toronto"
	assert.Equal(t, "America/Toronto", u.Location().String())

	u.Timezone = "Not/AZone"
	assert.Equal(t, "UTC", u.Location().String())
}

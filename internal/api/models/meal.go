package models

// MealCreateRequest is the request body for logging a meal.
type MealCreateRequest struct {
	Date          Timestamp `json:"date"`
	FoodName      string    `json:"foodName"`
	Calories      int       `json:"calories"`
	Carbs         int       `json:"carbs"`
	Protein       int       `json:"protein"`
	Fats          int       `json:"fats"`
	MealType      string    `json:"mealType"`
	IsManualEntry bool      `json:"isManualEntry"`
	PhotoURL      string    `json:"photoURL"`
}

// MealUpdateRequest is the request body for editing a meal. Nil fields are
// left unchanged.
type MealUpdateRequest struct {
	Date     *Timestamp `json:"date,omitempty"`
	FoodName *string    `json:"foodName,omitempty"`
	Calories *int       `json:"calories,omitempty"`
	Carbs    *int       `json:"carbs,omitempty"`
	Protein  *int       `json:"protein,omitempty"`
	Fats     *int       `json:"fats,omitempty"`
	MealType *string    `json:"mealType,omitempty"`
	PhotoURL *string    `json:"photoURL,omitempty"`
}

// MealFromFavoriteRequest instantiates a favorite template as a new meal.
type MealFromFavoriteRequest struct {
	FavoriteID string    `json:"favoriteId"`
	Date       Timestamp `json:"date"`
}

// Meal is the response body for a logged meal.
type Meal struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userID"`
	Date          Timestamp `json:"date"`
	FoodName      string    `json:"foodName"`
	Calories      int       `json:"calories"`
	Carbs         int       `json:"carbs"`
	Protein       int       `json:"protein"`
	Fats          int       `json:"fats"`
	MealType      string    `json:"mealType"`
	IsManualEntry bool      `json:"isManualEntry"`
	PhotoURL      string    `json:"photoURL"`
	CreatedAt     Timestamp `json:"createdAt"`
	UpdatedAt     Timestamp `json:"updatedAt"`
}

// PagedMeals is a paginated list of meals.
type PagedMeals struct {
	Items []Meal            `json:"items"`
	Meta  PagedResponseMeta `json:"meta"`
}

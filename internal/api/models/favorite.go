package models

// FavoriteCreateRequest is the request body for saving a favorite meal
// template.
type FavoriteCreateRequest struct {
	FoodName string `json:"foodName"`
	Calories int    `json:"calories"`
	Carbs    int    `json:"carbs"`
	Protein  int    `json:"protein"`
	Fats     int    `json:"fats"`
	MealType string `json:"mealType"`
	PhotoURL string `json:"photoURL"`
}

// Favorite is the response body for a favorite meal template.
type Favorite struct {
	ID       string `json:"id"`
	UserID   string `json:"userID"`
	FoodName string `json:"foodName"`
	Calories int    `json:"calories"`
	Carbs    int    `json:"carbs"`
	Protein  int    `json:"protein"`
	Fats     int    `json:"fats"`
	MealType string `json:"mealType"`
	PhotoURL string `json:"photoURL"`
}

// FavoriteList is the response body for a user's favorites.
type FavoriteList struct {
	Items []Favorite `json:"items"`
}

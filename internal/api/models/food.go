package models

// FoodFacts is the response body for a barcode lookup, normalized to the
// fields a meal entry needs.
type FoodFacts struct {
	Barcode         string  `json:"barcode"`
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"caloriesPer100g"`
	CarbsPer100g    float64 `json:"carbsPer100g"`
	ProteinPer100g  float64 `json:"proteinPer100g"`
	FatPer100g      float64 `json:"fatPer100g"`
	ServingGrams    float64 `json:"servingGrams,omitempty"`
}

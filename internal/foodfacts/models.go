// Package foodfacts provides nutrition lookups for packaged foods by
// barcode.
package foodfacts

import (
	"errors"
	"math"
)

// Lookup errors.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidBarcode  = errors.New("invalid barcode")
)

// Product is the nutrition facts of a packaged food, normalized per 100g.
type Product struct {
	Barcode string
	Name    string

	CaloriesPer100g float64
	CarbsPer100g    float64
	ProteinPer100g  float64
	FatPer100g      float64

	// ServingGrams is the labelled serving size; 0 when the label has none.
	ServingGrams float64
}

// Serving is a product's nutrients scaled to a concrete portion, rounded to
// whole units for meal logging.
type Serving struct {
	Grams    float64
	Calories int
	Carbs    int
	Protein  int
	Fats     int
}

// ScaleToGrams scales the per-100g nutrients to a portion of the given size.
func (p *Product) ScaleToGrams(grams float64) Serving {
	factor := grams / 100
	return Serving{
		Grams:    grams,
		Calories: int(math.Round(p.CaloriesPer100g * factor)),
		Carbs:    int(math.Round(p.CarbsPer100g * factor)),
		Protein:  int(math.Round(p.ProteinPer100g * factor)),
		Fats:     int(math.Round(p.FatPer100g * factor)),
	}
}

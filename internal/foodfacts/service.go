package foodfacts

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/plateful/plateful/internal/api/models"
)

// Provider fetches product nutrition facts from an external database.
type Provider interface {
	// Name returns the provider name for logging.
	Name() string

	// GetProduct fetches a product by barcode. Returns ErrProductNotFound
	// when the barcode is unknown to the provider.
	GetProduct(ctx context.Context, barcode string) (*Product, error)
}

// Service provides barcode nutrition lookups.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new food facts service.
func NewService(provider Provider, logger zerolog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Lookup fetches nutrition facts for a barcode.
func (s *Service) Lookup(ctx context.Context, barcode string) (*models.FoodFacts, error) {
	if !ValidBarcode(barcode) {
		return nil, ErrInvalidBarcode
	}

	p, err := s.provider.GetProduct(ctx, barcode)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("provider", s.provider.Name()).
		Str("barcode", barcode).
		Str("product", p.Name).
		Msg("product lookup")

	return &models.FoodFacts{
		Barcode:         p.Barcode,
		Name:            p.Name,
		CaloriesPer100g: p.CaloriesPer100g,
		CarbsPer100g:    p.CarbsPer100g,
		ProteinPer100g:  p.ProteinPer100g,
		FatPer100g:      p.FatPer100g,
		ServingGrams:    p.ServingGrams,
	}, nil
}

// ValidBarcode reports whether s looks like an EAN/UPC barcode: 8 to 14
// digits.
func ValidBarcode(s string) bool {
	if len(s) < 8 || len(s) > 14 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Package openfoodfacts implements a food facts provider backed by the
// Open Food Facts public database.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/plateful/plateful/internal/foodfacts"
	"github.com/plateful/plateful/internal/provider/resilience"
)

const (
	// ProviderName identifies this food facts provider.
	ProviderName = "openfoodfacts"

	// DefaultBaseURL is the Open Food Facts API base URL.
	DefaultBaseURL = "https://world.openfoodfacts.org/api/v2"
)

// ClientConfig holds configuration for the Open Food Facts client.
type ClientConfig struct {
	// BaseURL is the API base URL (optional, defaults to the public
	// instance).
	BaseURL string

	// UserAgent identifies the app to the API, which requires one for
	// production traffic.
	UserAgent string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an Open Food Facts API client.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *resilience.Client
	metrics    *resilience.ProviderMetrics
	logger     zerolog.Logger
}

// NewClient creates a new Open Food Facts client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "Plateful/1.0"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}
	resilience.GlobalRegistry.Register(ProviderName, httpClient)

	metrics, err := resilience.NewProviderMetrics()
	if err != nil {
		cfg.Logger.Warn().Err(err).Msg("provider metrics disabled")
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
		metrics:    metrics,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// GetProduct fetches a product by barcode.
func (c *Client) GetProduct(ctx context.Context, barcode string) (*foodfacts.Product, error) {
	url := fmt.Sprintf("%s/product/%s.json?fields=product_name,nutriments,serving_quantity",
		c.baseURL, barcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.RecordRequest(ProviderName, "get-product", time.Since(start), err)
	}
	if err != nil {
		resilience.GlobalRegistry.RecordFailure(ProviderName, err)
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()
	resilience.GlobalRegistry.RecordSuccess(ProviderName)

	if resp.StatusCode == http.StatusNotFound {
		return nil, foodfacts.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var offResp productResponse
	if err := json.NewDecoder(resp.Body).Decode(&offResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	// The API returns 200 with status 0 for barcodes it has no data for.
	if offResp.Status != 1 || offResp.Product == nil {
		return nil, foodfacts.ErrProductNotFound
	}

	return c.toProduct(barcode, offResp.Product), nil
}

func (c *Client) toProduct(barcode string, p *productPayload) *foodfacts.Product {
	return &foodfacts.Product{
		Barcode:         barcode,
		Name:            p.ProductName,
		CaloriesPer100g: p.Nutriments.EnergyKcal100g,
		CarbsPer100g:    p.Nutriments.Carbohydrates100g,
		ProteinPer100g:  p.Nutriments.Proteins100g,
		FatPer100g:      p.Nutriments.Fat100g,
		ServingGrams:    float64(p.ServingQuantity),
	}
}

// productResponse is the Open Food Facts product endpoint response.
type productResponse struct {
	Code    string          `json:"code"`
	Status  int             `json:"status"`
	Product *productPayload `json:"product"`
}

type productPayload struct {
	ProductName     string         `json:"product_name"`
	Nutriments      nutriments     `json:"nutriments"`
	ServingQuantity flexibleNumber `json:"serving_quantity"`
}

type nutriments struct {
	EnergyKcal100g    float64 `json:"energy-kcal_100g"`
	Carbohydrates100g float64 `json:"carbohydrates_100g"`
	Proteins100g      float64 `json:"proteins_100g"`
	Fat100g           float64 `json:"fat_100g"`
}

// flexibleNumber decodes a value the API serves as either a number or a
// numeric string, depending on the product's data source.
type flexibleNumber float64

func (n *flexibleNumber) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		var f float64
		if _, err := fmt.Sscanf(s, "%g", &f); err != nil {
			return nil
		}
		*n = flexibleNumber(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = flexibleNumber(f)
	return nil
}

// Ensure Client implements the Provider interface.
var _ foodfacts.Provider = (*Client)(nil)

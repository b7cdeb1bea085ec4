package openfoodfacts_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/plateful/internal/foodfacts"
	"github.com/plateful/plateful/internal/foodfacts/openfoodfacts"
	"github.com/plateful/plateful/internal/provider/resilience"
)

func newTestClient(serverURL string) *openfoodfacts.Client {
	return openfoodfacts.NewClient(openfoodfacts.ClientConfig{
		BaseURL:    serverURL,
		UserAgent:  "Plateful-Test/1.0",
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("test")),
	})
}

func TestClient_GetProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product/3017620422003.json", r.URL.Path)
		assert.Equal(t, "Plateful-Test/1.0", r.Header.Get("User-Agent"))

		response := map[string]interface{}{
			"code":   "3017620422003",
			"status": 1,
			"product": map[string]interface{}{
				"product_name": "Nutella",
				"nutriments": map[string]float64{
					"energy-kcal_100g":   539,
					"carbohydrates_100g": 57.5,
					"proteins_100g":      6.3,
					"fat_100g":           30.9,
				},
				"serving_quantity": "15",
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	p, err := client.GetProduct(context.Background(), "3017620422003")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "3017620422003", p.Barcode)
	assert.Equal(t, "Nutella", p.Name)
	assert.Equal(t, 539.0, p.CaloriesPer100g)
	assert.Equal(t, 57.5, p.CarbsPer100g)
	assert.Equal(t, 6.3, p.ProteinPer100g)
	assert.Equal(t, 30.9, p.FatPer100g)
	assert.Equal(t, 15.0, p.ServingGrams)
}

func TestClient_GetProduct_NumericServingQuantity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{
			"code":   "0012345678905",
			"status": 1,
			"product": map[string]interface{}{
				"product_name":     "Oat bar",
				"nutriments":       map[string]float64{"energy-kcal_100g": 400},
				"serving_quantity": 42.5,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	p, err := client.GetProduct(context.Background(), "0012345678905")
	require.NoError(t, err)
	assert.Equal(t, 42.5, p.ServingGrams)
}

func TestClient_GetProduct_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetProduct(context.Background(), "0000000000000")
	assert.ErrorIs(t, err, foodfacts.ErrProductNotFound)
}

func TestClient_GetProduct_StatusZero(t *testing.T) {
	// The public API answers 200 with status 0 for unknown barcodes.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{
			"code":   "0000000000000",
			"status": 0,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetProduct(context.Background(), "0000000000000")
	assert.ErrorIs(t, err, foodfacts.ErrProductNotFound)
}

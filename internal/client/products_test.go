package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/novitalabs/novita-go/internal/http"
	"github.com/novitalabs/novita-go/pkg/novita"
)

func TestProductsClient_ListGPU(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gpu-instance/openapi/v1/products", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		response := novita.GPUProductList{
			Data: []novita.GPUProduct{
				{
					ID:        "prod-4090",
					Name:      "RTX 4090 24GB",
					CPUPerGPU: 16,
					Price:     35000,
					SpotPrice: "17500",
					Regions:   []string{"eu-west-1"},
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	products := NewProductsClient(internalhttp.NewClient(server.URL, "test-key"))

	list, err := products.ListGPU(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "prod-4090", list[0].ID)
	assert.InEpsilon(t, 0.35, list[0].PriceUSD(), 1e-9)
	assert.InEpsilon(t, 0.175, list[0].SpotPriceUSD(), 1e-9)
}

func TestProductsClient_ListCPU(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gpu-instance/openapi/v1/cpu/products", r.URL.Path)

		response := novita.CPUProductList{
			Data: []novita.CPUProduct{
				{ID: "cpu-16", Name: "16 vCPU", CPUNum: 16, Memory: 64, Price: 8000},
			},
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	products := NewProductsClient(internalhttp.NewClient(server.URL, "test-key"))

	list, err := products.ListCPU(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 16, list[0].CPUNum)
	assert.InEpsilon(t, 0.08, list[0].PriceUSD(), 1e-9)
}

func TestProductsClient_ListGPU_MissingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]string{{"name": "nameless product"}},
		})
	}))
	defer server.Close()

	products := NewProductsClient(internalhttp.NewClient(server.URL, "test-key"))

	_, err := products.ListGPU(context.Background())
	require.Error(t, err)
	assert.True(t, novita.IsValidation(err))
}

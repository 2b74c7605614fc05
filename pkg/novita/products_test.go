package novita_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novitalabs/novita-go/pkg/novita"
)

func TestGPUProduct_PriceConversions(t *testing.T) {
	product := novita.GPUProduct{
		ID:        "prod-4090",
		Name:      "RTX 4090 24GB",
		Price:     35000,
		SpotPrice: "17500",
		MonthlyPrice: []novita.SubscriptionPrice{
			{Price: 20000000, Month: 1},
		},
	}

	// Prices are in 1/100000 USD on the wire.
	assert.InEpsilon(t, 0.35, product.PriceUSD(), 1e-9)
	assert.InEpsilon(t, 0.175, product.SpotPriceUSD(), 1e-9)
	assert.InEpsilon(t, 200.0, product.MonthlyPrice[0].USD(), 1e-9)
}

func TestGPUProduct_SpotPriceUnparseable(t *testing.T) {
	product := novita.GPUProduct{ID: "p", Name: "n", SpotPrice: "n/a"}
	assert.Zero(t, product.SpotPriceUSD())
}

func TestGPUProduct_RawPriceSurvivesDecode(t *testing.T) {
	payload := `{"id":"prod-1","name":"A100","price":250000,"spotPrice":"125000","cpuPerGpu":16}`

	var product novita.GPUProduct

	require.NoError(t, json.Unmarshal([]byte(payload), &product))
	require.NoError(t, product.Validate())
	assert.Equal(t, int64(250000), product.Price)
	assert.Equal(t, 16, product.CPUPerGPU)
	assert.InEpsilon(t, 2.5, product.PriceUSD(), 1e-9)
}

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

func TestMetricsClient_Instance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gpu-instance/openapi/v1/instance/metrics", r.URL.Path)
		assert.Equal(t, "inst-1", r.URL.Query().Get("instance_id"))

		_ = json.NewEncoder(w).Encode(novita.InstanceMetrics{
			InstanceID:  "inst-1",
			CPUUsage:    42.5,
			MemoryUsage: 60.1,
			GPUUsage:    97.3,
		})
	}))
	defer server.Close()

	metrics := NewMetricsClient(internalhttp.NewClient(server.URL, "test-key"))

	sample, err := metrics.Instance(context.Background(), "inst-1")
	require.NoError(t, err)
	assert.InEpsilon(t, 42.5, sample.CPUUsage, 1e-9)
	assert.InEpsilon(t, 97.3, sample.GPUUsage, 1e-9)
}

func TestMetricsClient_Instance_MissingID(t *testing.T) {
	metrics := NewMetricsClient(internalhttp.NewClient("https://api.example.com", "test-key"))

	_, err := metrics.Instance(context.Background(), "")
	require.Error(t, err)
	assert.True(t, novita.IsValidation(err))
}

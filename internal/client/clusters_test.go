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

func TestClustersClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gpu-instance/openapi/v1/clusters", r.URL.Path)

		response := novita.ClusterList{
			Data: []novita.Cluster{
				{ID: "cluster-eu", Name: "Europe West", AvailableGPUType: []string{"RTX 4090"}},
			},
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	clusters := NewClustersClient(internalhttp.NewClient(server.URL, "test-key"))

	list, err := clusters.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "cluster-eu", list[0].ID)
	assert.Equal(t, []string{"RTX 4090"}, list[0].AvailableGPUType)
}

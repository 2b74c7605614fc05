package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/novitalabs/novita-go/internal/http"
	"github.com/novitalabs/novita-go/pkg/novita"
)

// ClustersClient implements novita.ClustersClient.
type ClustersClient struct {
	httpClient *http.Client
}

// NewClustersClient creates a new clusters client.
func NewClustersClient(httpClient *http.Client) *ClustersClient {
	return &ClustersClient{
		httpClient: httpClient,
	}
}

// List implements novita.ClustersClient.List.
func (c *ClustersClient) List(ctx context.Context) ([]novita.Cluster, error) {
	resp, err := c.httpClient.Get(ctx, apiPrefix+"/clusters", nil)
	if err != nil {
		return nil, fmt.Errorf("listing clusters: %w", err)
	}

	var list novita.ClusterList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing clusters list: %w", err)
	}

	err = list.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating clusters list: %w", err)
	}

	return list.Data, nil
}

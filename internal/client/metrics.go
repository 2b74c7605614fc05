package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/novitalabs/novita-go/internal/http"
	"github.com/novitalabs/novita-go/pkg/novita"
)

// MetricsClient implements novita.MetricsClient.
type MetricsClient struct {
	httpClient *http.Client
}

// NewMetricsClient creates a new metrics client.
func NewMetricsClient(httpClient *http.Client) *MetricsClient {
	return &MetricsClient{
		httpClient: httpClient,
	}
}

// Instance implements novita.MetricsClient.Instance.
func (c *MetricsClient) Instance(ctx context.Context, instanceID string) (*novita.InstanceMetrics, error) {
	if instanceID == "" {
		return nil, &novita.ValidationError{Field: "instance_id", Message: "is required"}
	}

	query := url.Values{}
	query.Set("instance_id", instanceID)

	resp, err := c.httpClient.Get(ctx, apiPrefix+"/instance/metrics", query)
	if err != nil {
		return nil, fmt.Errorf("getting instance metrics: %w", err)
	}

	var metrics novita.InstanceMetrics

	err = json.Unmarshal(resp.Body, &metrics)
	if err != nil {
		return nil, fmt.Errorf("parsing instance metrics: %w", err)
	}

	err = metrics.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating instance metrics: %w", err)
	}

	return &metrics, nil
}

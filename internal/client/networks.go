package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/novitalabs/novita-go/internal/http"
	"github.com/novitalabs/novita-go/pkg/novita"
)

// NetworksClient implements novita.NetworksClient.
type NetworksClient struct {
	httpClient *http.Client
}

// NewNetworksClient creates a new networks client.
func NewNetworksClient(httpClient *http.Client) *NetworksClient {
	return &NetworksClient{
		httpClient: httpClient,
	}
}

// List implements novita.NetworksClient.List.
func (c *NetworksClient) List(ctx context.Context) ([]novita.Network, error) {
	resp, err := c.httpClient.Get(ctx, apiPrefix+"/networks", nil)
	if err != nil {
		return nil, fmt.Errorf("listing networks: %w", err)
	}

	var list novita.NetworkList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing networks list: %w", err)
	}

	err = list.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating networks list: %w", err)
	}

	return list.Networks, nil
}

// Get implements novita.NetworksClient.Get.
func (c *NetworksClient) Get(ctx context.Context, networkID string) (*novita.Network, error) {
	if networkID == "" {
		return nil, &novita.ValidationError{Field: "network_id", Message: "is required"}
	}

	query := url.Values{}
	query.Set("network_id", networkID)

	resp, err := c.httpClient.Get(ctx, apiPrefix+"/network", query)
	if err != nil {
		return nil, fmt.Errorf("getting network: %w", err)
	}

	return parseNetwork(resp.Body, "network")
}

// Create implements novita.NetworksClient.Create.
func (c *NetworksClient) Create(ctx context.Context, request *novita.CreateNetworkRequest) (*novita.Network, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating create network request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, apiPrefix+"/network/create", request)
	if err != nil {
		return nil, fmt.Errorf("creating network: %w", err)
	}

	return parseNetwork(resp.Body, "create network response")
}

// Update implements novita.NetworksClient.Update.
func (c *NetworksClient) Update(ctx context.Context, request *novita.UpdateNetworkRequest) (*novita.Network, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating update network request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, apiPrefix+"/network/update", request)
	if err != nil {
		return nil, fmt.Errorf("updating network: %w", err)
	}

	return parseNetwork(resp.Body, "update network response")
}

// Delete implements novita.NetworksClient.Delete.
func (c *NetworksClient) Delete(ctx context.Context, networkID string) error {
	if networkID == "" {
		return &novita.ValidationError{Field: "network_id", Message: "is required"}
	}

	body := map[string]string{"network_id": networkID}

	_, err := c.httpClient.Post(ctx, apiPrefix+"/network/delete", body)
	if err != nil {
		return fmt.Errorf("deleting network: %w", err)
	}

	return nil
}

// parseNetwork handles both the bare network payload and the variant
// wrapped in a "network" key, which the API uses inconsistently.
func parseNetwork(body []byte, what string) (*novita.Network, error) {
	var wrapped struct {
		Network *novita.Network `json:"network"`
	}

	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Network != nil {
		if err := wrapped.Network.Validate(); err != nil {
			return nil, fmt.Errorf("validating %s: %w", what, err)
		}

		return wrapped.Network, nil
	}

	var network novita.Network

	err := json.Unmarshal(body, &network)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	err = network.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", what, err)
	}

	return &network, nil
}

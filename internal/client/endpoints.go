package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/novitalabs/novita-go/internal/http"
	"github.com/novitalabs/novita-go/pkg/novita"
)

// EndpointsClient implements novita.EndpointsClient.
type EndpointsClient struct {
	httpClient *http.Client
}

// NewEndpointsClient creates a new endpoints client.
func NewEndpointsClient(httpClient *http.Client) *EndpointsClient {
	return &EndpointsClient{
		httpClient: httpClient,
	}
}

// List implements novita.EndpointsClient.List.
func (c *EndpointsClient) List(ctx context.Context) ([]novita.Endpoint, error) {
	resp, err := c.httpClient.Get(ctx, apiPrefix+"/endpoints", nil)
	if err != nil {
		return nil, fmt.Errorf("listing endpoints: %w", err)
	}

	var list novita.EndpointList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing endpoints list: %w", err)
	}

	err = list.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating endpoints list: %w", err)
	}

	return list.Endpoints, nil
}

// Get implements novita.EndpointsClient.Get.
func (c *EndpointsClient) Get(ctx context.Context, endpointID string) (*novita.Endpoint, error) {
	if endpointID == "" {
		return nil, &novita.ValidationError{Field: "endpoint_id", Message: "is required"}
	}

	query := url.Values{}
	query.Set("endpoint_id", endpointID)

	resp, err := c.httpClient.Get(ctx, apiPrefix+"/endpoint", query)
	if err != nil {
		return nil, fmt.Errorf("getting endpoint: %w", err)
	}

	return parseEndpoint(resp.Body, "endpoint")
}

// Create implements novita.EndpointsClient.Create.
func (c *EndpointsClient) Create(ctx context.Context, request *novita.CreateEndpointRequest) (*novita.Endpoint, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating create endpoint request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, apiPrefix+"/endpoint/create", request)
	if err != nil {
		return nil, fmt.Errorf("creating endpoint: %w", err)
	}

	return parseEndpoint(resp.Body, "create endpoint response")
}

// Update implements novita.EndpointsClient.Update.
func (c *EndpointsClient) Update(ctx context.Context, request *novita.UpdateEndpointRequest) (*novita.Endpoint, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating update endpoint request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, apiPrefix+"/endpoint/update", request)
	if err != nil {
		return nil, fmt.Errorf("updating endpoint: %w", err)
	}

	return parseEndpoint(resp.Body, "update endpoint response")
}

// Delete implements novita.EndpointsClient.Delete.
func (c *EndpointsClient) Delete(ctx context.Context, endpointID string) error {
	if endpointID == "" {
		return &novita.ValidationError{Field: "endpoint_id", Message: "is required"}
	}

	body := map[string]string{"endpoint_id": endpointID}

	_, err := c.httpClient.Post(ctx, apiPrefix+"/endpoint/delete", body)
	if err != nil {
		return fmt.Errorf("deleting endpoint: %w", err)
	}

	return nil
}

// Limits implements novita.EndpointsClient.Limits.
func (c *EndpointsClient) Limits(ctx context.Context) (*novita.EndpointLimits, error) {
	resp, err := c.httpClient.Get(ctx, apiPrefix+"/endpoint/limit", nil)
	if err != nil {
		return nil, fmt.Errorf("getting endpoint limits: %w", err)
	}

	var limits novita.EndpointLimits

	err = json.Unmarshal(resp.Body, &limits)
	if err != nil {
		return nil, fmt.Errorf("parsing endpoint limits: %w", err)
	}

	return &limits, nil
}

func parseEndpoint(body []byte, what string) (*novita.Endpoint, error) {
	var endpoint novita.Endpoint

	err := json.Unmarshal(body, &endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	err = endpoint.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", what, err)
	}

	return &endpoint, nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/novitalabs/novita-go/internal/http"
	"github.com/novitalabs/novita-go/pkg/novita"
)

// ProductsClient implements novita.ProductsClient.
type ProductsClient struct {
	httpClient *http.Client
}

// NewProductsClient creates a new products client.
func NewProductsClient(httpClient *http.Client) *ProductsClient {
	return &ProductsClient{
		httpClient: httpClient,
	}
}

// ListGPU implements novita.ProductsClient.ListGPU.
func (c *ProductsClient) ListGPU(ctx context.Context) ([]novita.GPUProduct, error) {
	resp, err := c.httpClient.Get(ctx, apiPrefix+"/products", nil)
	if err != nil {
		return nil, fmt.Errorf("listing gpu products: %w", err)
	}

	var list novita.GPUProductList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing gpu products list: %w", err)
	}

	err = list.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating gpu products list: %w", err)
	}

	return list.Data, nil
}

// ListCPU implements novita.ProductsClient.ListCPU.
func (c *ProductsClient) ListCPU(ctx context.Context) ([]novita.CPUProduct, error) {
	resp, err := c.httpClient.Get(ctx, apiPrefix+"/cpu/products", nil)
	if err != nil {
		return nil, fmt.Errorf("listing cpu products: %w", err)
	}

	var list novita.CPUProductList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing cpu products list: %w", err)
	}

	err = list.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating cpu products list: %w", err)
	}

	return list.Data, nil
}

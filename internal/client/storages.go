package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/novitalabs/novita-go/internal/http"
	"github.com/novitalabs/novita-go/pkg/novita"
)

// StoragesClient implements novita.StoragesClient.
type StoragesClient struct {
	httpClient *http.Client
}

// NewStoragesClient creates a new storages client.
func NewStoragesClient(httpClient *http.Client) *StoragesClient {
	return &StoragesClient{
		httpClient: httpClient,
	}
}

// List implements novita.StoragesClient.List.
func (c *StoragesClient) List(ctx context.Context) ([]novita.Storage, error) {
	resp, err := c.httpClient.Get(ctx, apiPrefix+"/networkstorages/list", nil)
	if err != nil {
		return nil, fmt.Errorf("listing storages: %w", err)
	}

	var list novita.StorageList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing storages list: %w", err)
	}

	err = list.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating storages list: %w", err)
	}

	return list.Storages, nil
}

// Create implements novita.StoragesClient.Create.
func (c *StoragesClient) Create(ctx context.Context, request *novita.CreateStorageRequest) (*novita.Storage, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating create storage request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, apiPrefix+"/networkstorage/create", request)
	if err != nil {
		return nil, fmt.Errorf("creating storage: %w", err)
	}

	return parseStorage(resp.Body, "create storage response")
}

// Update implements novita.StoragesClient.Update.
func (c *StoragesClient) Update(ctx context.Context, request *novita.UpdateStorageRequest) (*novita.Storage, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating update storage request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, apiPrefix+"/networkstorage/update", request)
	if err != nil {
		return nil, fmt.Errorf("updating storage: %w", err)
	}

	return parseStorage(resp.Body, "update storage response")
}

// Delete implements novita.StoragesClient.Delete.
func (c *StoragesClient) Delete(ctx context.Context, storageID string) error {
	if storageID == "" {
		return &novita.ValidationError{Field: "storage_id", Message: "is required"}
	}

	body := map[string]string{"storage_id": storageID}

	_, err := c.httpClient.Post(ctx, apiPrefix+"/networkstorage/delete", body)
	if err != nil {
		return fmt.Errorf("deleting storage: %w", err)
	}

	return nil
}

func parseStorage(body []byte, what string) (*novita.Storage, error) {
	var storage novita.Storage

	err := json.Unmarshal(body, &storage)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	err = storage.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", what, err)
	}

	return &storage, nil
}

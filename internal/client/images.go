package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/novitalabs/novita-go/internal/http"
	"github.com/novitalabs/novita-go/pkg/novita"
)

// ImagesClient implements novita.ImagesClient.
type ImagesClient struct {
	httpClient *http.Client
}

// NewImagesClient creates a new images client.
func NewImagesClient(httpClient *http.Client) *ImagesClient {
	return &ImagesClient{
		httpClient: httpClient,
	}
}

// List implements novita.ImagesClient.List.
func (c *ImagesClient) List(ctx context.Context) ([]novita.PrewarmTask, error) {
	resp, err := c.httpClient.Get(ctx, apiPrefix+"/image/prewarm", nil)
	if err != nil {
		return nil, fmt.Errorf("listing prewarm tasks: %w", err)
	}

	var list novita.PrewarmTaskList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing prewarm tasks list: %w", err)
	}

	err = list.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating prewarm tasks list: %w", err)
	}

	return list.Tasks, nil
}

// Create implements novita.ImagesClient.Create.
func (c *ImagesClient) Create(ctx context.Context, request *novita.CreatePrewarmRequest) (*novita.CreatePrewarmResponse, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating create prewarm request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, apiPrefix+"/image/prewarm", request)
	if err != nil {
		return nil, fmt.Errorf("creating prewarm task: %w", err)
	}

	var created novita.CreatePrewarmResponse

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing create prewarm response: %w", err)
	}

	err = created.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating create prewarm response: %w", err)
	}

	return &created, nil
}

// Update implements novita.ImagesClient.Update.
func (c *ImagesClient) Update(ctx context.Context, request *novita.UpdatePrewarmRequest) (*novita.PrewarmTask, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating update prewarm request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, apiPrefix+"/image/prewarm/edit", request)
	if err != nil {
		return nil, fmt.Errorf("updating prewarm task: %w", err)
	}

	var task novita.PrewarmTask

	err = json.Unmarshal(resp.Body, &task)
	if err != nil {
		return nil, fmt.Errorf("parsing update prewarm response: %w", err)
	}

	err = task.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating update prewarm response: %w", err)
	}

	return &task, nil
}

// Delete implements novita.ImagesClient.Delete.
func (c *ImagesClient) Delete(ctx context.Context, taskID string) error {
	if taskID == "" {
		return &novita.ValidationError{Field: "task_id", Message: "is required"}
	}

	body := map[string]string{"task_id": taskID}

	_, err := c.httpClient.Post(ctx, apiPrefix+"/image/prewarm/delete", body)
	if err != nil {
		return fmt.Errorf("deleting prewarm task: %w", err)
	}

	return nil
}

// Quota implements novita.ImagesClient.Quota.
func (c *ImagesClient) Quota(ctx context.Context) (*novita.PrewarmQuota, error) {
	resp, err := c.httpClient.Get(ctx, apiPrefix+"/image/prewarm/quota", nil)
	if err != nil {
		return nil, fmt.Errorf("getting prewarm quota: %w", err)
	}

	var quota novita.PrewarmQuota

	err = json.Unmarshal(resp.Body, &quota)
	if err != nil {
		return nil, fmt.Errorf("parsing prewarm quota: %w", err)
	}

	return &quota, nil
}

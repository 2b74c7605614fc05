package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/novitalabs/novita-go/internal/http"
	"github.com/novitalabs/novita-go/pkg/novita"
)

// JobsClient implements novita.JobsClient.
type JobsClient struct {
	httpClient *http.Client
}

// NewJobsClient creates a new jobs client.
func NewJobsClient(httpClient *http.Client) *JobsClient {
	return &JobsClient{
		httpClient: httpClient,
	}
}

// List implements novita.JobsClient.List.
func (c *JobsClient) List(ctx context.Context, params *novita.ListJobsParams) ([]novita.Job, error) {
	var query url.Values

	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, apiPrefix+"/jobs", query)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}

	var list novita.JobList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing jobs list: %w", err)
	}

	err = list.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating jobs list: %w", err)
	}

	return list.Jobs, nil
}

// Break implements novita.JobsClient.Break. It cancels a job that has not
// reached a terminal state.
func (c *JobsClient) Break(ctx context.Context, jobID string) error {
	if jobID == "" {
		return &novita.ValidationError{Field: "job_id", Message: "is required"}
	}

	body := map[string]string{"job_id": jobID}

	_, err := c.httpClient.Post(ctx, apiPrefix+"/job/break", body)
	if err != nil {
		return fmt.Errorf("breaking job: %w", err)
	}

	return nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/novitalabs/novita-go/internal/http"
	"github.com/novitalabs/novita-go/pkg/novita"
)

// InstancesClient implements novita.InstancesClient.
type InstancesClient struct {
	httpClient *http.Client
}

// NewInstancesClient creates a new instances client.
func NewInstancesClient(httpClient *http.Client) *InstancesClient {
	return &InstancesClient{
		httpClient: httpClient,
	}
}

// Create implements novita.InstancesClient.Create.
func (c *InstancesClient) Create(ctx context.Context, request *novita.CreateInstanceRequest) (*novita.CreateInstanceResponse, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating create instance request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, apiPrefix+"/gpu/instance/create", request)
	if err != nil {
		return nil, fmt.Errorf("creating instance: %w", err)
	}

	var created novita.CreateInstanceResponse

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing create instance response: %w", err)
	}

	err = created.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating create instance response: %w", err)
	}

	return &created, nil
}

// List implements novita.InstancesClient.List. Pagination is caller
// driven; each call fetches exactly one page.
func (c *InstancesClient) List(ctx context.Context, params *novita.ListInstancesParams) (*novita.InstanceList, error) {
	var query url.Values

	if params != nil {
		err := params.Validate()
		if err != nil {
			return nil, fmt.Errorf("validating list instances params: %w", err)
		}

		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, apiPrefix+"/gpu/instances", query)
	if err != nil {
		return nil, fmt.Errorf("listing instances: %w", err)
	}

	var list novita.InstanceList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing instances list: %w", err)
	}

	err = list.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating instances list: %w", err)
	}

	return &list, nil
}

// Get implements novita.InstancesClient.Get.
func (c *InstancesClient) Get(ctx context.Context, instanceID string) (*novita.Instance, error) {
	if instanceID == "" {
		return nil, &novita.ValidationError{Field: "instanceId", Message: "is required"}
	}

	query := url.Values{}
	query.Set("instanceId", instanceID)

	resp, err := c.httpClient.Get(ctx, apiPrefix+"/gpu/instance", query)
	if err != nil {
		return nil, fmt.Errorf("getting instance: %w", err)
	}

	var instance novita.Instance

	err = json.Unmarshal(resp.Body, &instance)
	if err != nil {
		return nil, fmt.Errorf("parsing instance: %w", err)
	}

	err = instance.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating instance: %w", err)
	}

	return &instance, nil
}

// Edit implements novita.InstancesClient.Edit.
func (c *InstancesClient) Edit(ctx context.Context, request *novita.EditInstanceRequest) error {
	err := request.Validate()
	if err != nil {
		return fmt.Errorf("validating edit instance request: %w", err)
	}

	_, err = c.httpClient.Post(ctx, apiPrefix+"/gpu/instance/edit", request)
	if err != nil {
		return fmt.Errorf("editing instance: %w", err)
	}

	return nil
}

// Start implements novita.InstancesClient.Start.
func (c *InstancesClient) Start(ctx context.Context, instanceID string) error {
	return c.action(ctx, "/gpu/instance/start", "starting instance", instanceID)
}

// Stop implements novita.InstancesClient.Stop.
func (c *InstancesClient) Stop(ctx context.Context, instanceID string) error {
	return c.action(ctx, "/gpu/instance/stop", "stopping instance", instanceID)
}

// Restart implements novita.InstancesClient.Restart.
func (c *InstancesClient) Restart(ctx context.Context, instanceID string) error {
	return c.action(ctx, "/gpu/instance/restart", "restarting instance", instanceID)
}

// Delete implements novita.InstancesClient.Delete.
func (c *InstancesClient) Delete(ctx context.Context, instanceID string) error {
	return c.action(ctx, "/gpu/instance/delete", "deleting instance", instanceID)
}

// Migrate implements novita.InstancesClient.Migrate.
func (c *InstancesClient) Migrate(ctx context.Context, instanceID string) error {
	return c.action(ctx, "/gpu/instance/migrate", "migrating instance", instanceID)
}

// action posts an instance lifecycle operation. The API returns an empty
// object on success, so only the error matters.
func (c *InstancesClient) action(ctx context.Context, path, verb, instanceID string) error {
	if instanceID == "" {
		return &novita.ValidationError{Field: "instanceId", Message: "is required"}
	}

	body := map[string]string{"instanceId": instanceID}

	_, err := c.httpClient.Post(ctx, apiPrefix+path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", verb, err)
	}

	return nil
}

// Upgrade implements novita.InstancesClient.Upgrade.
func (c *InstancesClient) Upgrade(ctx context.Context, request *novita.UpgradeInstanceRequest) error {
	err := request.Validate()
	if err != nil {
		return fmt.Errorf("validating upgrade instance request: %w", err)
	}

	_, err = c.httpClient.Post(ctx, apiPrefix+"/gpu/instance/upgrade", request)
	if err != nil {
		return fmt.Errorf("upgrading instance: %w", err)
	}

	return nil
}

// Renew implements novita.InstancesClient.Renew. Only monthly instances
// can be renewed.
func (c *InstancesClient) Renew(ctx context.Context, instanceID string, months int) error {
	if instanceID == "" {
		return &novita.ValidationError{Field: "instanceId", Message: "is required"}
	}

	if months < 1 {
		return &novita.ValidationError{Field: "month", Message: "must be at least 1"}
	}

	body := map[string]interface{}{"instanceId": instanceID, "month": months}

	_, err := c.httpClient.Post(ctx, apiPrefix+"/gpu/instance/renewInstance", body)
	if err != nil {
		return fmt.Errorf("renewing instance: %w", err)
	}

	return nil
}

// ConvertToMonthly implements novita.InstancesClient.ConvertToMonthly.
func (c *InstancesClient) ConvertToMonthly(ctx context.Context, instanceID string, months int) error {
	if instanceID == "" {
		return &novita.ValidationError{Field: "instanceId", Message: "is required"}
	}

	if months < 1 {
		return &novita.ValidationError{Field: "month", Message: "must be at least 1"}
	}

	body := map[string]interface{}{"instanceId": instanceID, "month": months}

	_, err := c.httpClient.Post(ctx, apiPrefix+"/gpu/instance/transToMonthlyInstance", body)
	if err != nil {
		return fmt.Errorf("converting instance to monthly: %w", err)
	}

	return nil
}

// SaveImage implements novita.InstancesClient.SaveImage. It returns the
// identifier of the background job performing the save.
func (c *InstancesClient) SaveImage(ctx context.Context, request *novita.SaveImageRequest) (string, error) {
	err := request.Validate()
	if err != nil {
		return "", fmt.Errorf("validating save image request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, apiPrefix+"/job/save/image", request)
	if err != nil {
		return "", fmt.Errorf("saving instance image: %w", err)
	}

	var saved novita.SaveImageResponse

	err = json.Unmarshal(resp.Body, &saved)
	if err != nil {
		return "", fmt.Errorf("parsing save image response: %w", err)
	}

	err = saved.Validate()
	if err != nil {
		return "", fmt.Errorf("validating save image response: %w", err)
	}

	return saved.JobID, nil
}

// SSHEndpoint implements novita.InstancesClient.SSHEndpoint. The endpoint
// is derived from the instance's SSH connect component, so this costs one
// Get call.
func (c *InstancesClient) SSHEndpoint(ctx context.Context, instanceID string) (*novita.SSHEndpoint, error) {
	instance, err := c.Get(ctx, instanceID)
	if err != nil {
		return nil, err
	}

	endpoint, err := novita.ParseSSHEndpoint(instance.ConnectSSH)
	if err != nil {
		return nil, fmt.Errorf("resolving ssh endpoint: %w", err)
	}

	return endpoint, nil
}

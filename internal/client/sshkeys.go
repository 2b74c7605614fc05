package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/novitalabs/novita-go/internal/http"
	"github.com/novitalabs/novita-go/pkg/novita"
)

// SSHKeysClient implements novita.SSHKeysClient.
type SSHKeysClient struct {
	httpClient *http.Client
}

// NewSSHKeysClient creates a new ssh keys client.
func NewSSHKeysClient(httpClient *http.Client) *SSHKeysClient {
	return &SSHKeysClient{
		httpClient: httpClient,
	}
}

// List implements novita.SSHKeysClient.List.
func (c *SSHKeysClient) List(ctx context.Context) ([]novita.SSHKey, error) {
	resp, err := c.httpClient.Get(ctx, apiPrefix+"/ssh-keys", nil)
	if err != nil {
		return nil, fmt.Errorf("listing ssh keys: %w", err)
	}

	var list novita.SSHKeyList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing ssh keys list: %w", err)
	}

	err = list.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating ssh keys list: %w", err)
	}

	return list.Data, nil
}

// Create implements novita.SSHKeysClient.Create.
func (c *SSHKeysClient) Create(ctx context.Context, request *novita.CreateSSHKeyRequest) (*novita.SSHKey, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating create ssh key request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, apiPrefix+"/ssh-key/create", request)
	if err != nil {
		return nil, fmt.Errorf("creating ssh key: %w", err)
	}

	var key novita.SSHKey

	err = json.Unmarshal(resp.Body, &key)
	if err != nil {
		return nil, fmt.Errorf("parsing create ssh key response: %w", err)
	}

	err = key.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating create ssh key response: %w", err)
	}

	return &key, nil
}

// Delete implements novita.SSHKeysClient.Delete.
func (c *SSHKeysClient) Delete(ctx context.Context, keyID string) error {
	if keyID == "" {
		return &novita.ValidationError{Field: "id", Message: "is required"}
	}

	body := map[string]string{"id": keyID}

	_, err := c.httpClient.Post(ctx, apiPrefix+"/ssh-key/delete", body)
	if err != nil {
		return fmt.Errorf("deleting ssh key: %w", err)
	}

	return nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/novitalabs/novita-go/internal/http"
	"github.com/novitalabs/novita-go/pkg/novita"
)

// RegistriesClient implements novita.RegistriesClient.
type RegistriesClient struct {
	httpClient *http.Client
}

// NewRegistriesClient creates a new registries client.
func NewRegistriesClient(httpClient *http.Client) *RegistriesClient {
	return &RegistriesClient{
		httpClient: httpClient,
	}
}

// List implements novita.RegistriesClient.List. The API never returns
// stored passwords, so RegistryAuth.Password is empty on listed entries.
func (c *RegistriesClient) List(ctx context.Context) ([]novita.RegistryAuth, error) {
	resp, err := c.httpClient.Get(ctx, apiPrefix+"/repository/auths", nil)
	if err != nil {
		return nil, fmt.Errorf("listing registry auths: %w", err)
	}

	var list novita.RegistryAuthList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing registry auths list: %w", err)
	}

	err = list.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating registry auths list: %w", err)
	}

	return list.Data, nil
}

// Save implements novita.RegistriesClient.Save.
func (c *RegistriesClient) Save(ctx context.Context, request *novita.SaveRegistryAuthRequest) error {
	err := request.Validate()
	if err != nil {
		return fmt.Errorf("validating save registry auth request: %w", err)
	}

	_, err = c.httpClient.Post(ctx, apiPrefix+"/repository/auth/save", request)
	if err != nil {
		return fmt.Errorf("saving registry auth: %w", err)
	}

	return nil
}

// Delete implements novita.RegistriesClient.Delete.
func (c *RegistriesClient) Delete(ctx context.Context, authID string) error {
	if authID == "" {
		return &novita.ValidationError{Field: "id", Message: "is required"}
	}

	body := map[string]string{"id": authID}

	_, err := c.httpClient.Post(ctx, apiPrefix+"/repository/auth/delete", body)
	if err != nil {
		return fmt.Errorf("deleting registry auth: %w", err)
	}

	return nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/novitalabs/novita-go/internal/http"
	"github.com/novitalabs/novita-go/pkg/novita"
)

// TemplatesClient implements novita.TemplatesClient.
type TemplatesClient struct {
	httpClient *http.Client
}

// NewTemplatesClient creates a new templates client.
func NewTemplatesClient(httpClient *http.Client) *TemplatesClient {
	return &TemplatesClient{
		httpClient: httpClient,
	}
}

// List implements novita.TemplatesClient.List.
func (c *TemplatesClient) List(ctx context.Context) ([]novita.Template, error) {
	resp, err := c.httpClient.Get(ctx, apiPrefix+"/templates", nil)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	var list novita.TemplateList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing templates list: %w", err)
	}

	err = list.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating templates list: %w", err)
	}

	return list.Templates, nil
}

// Get implements novita.TemplatesClient.Get.
func (c *TemplatesClient) Get(ctx context.Context, templateID string) (*novita.Template, error) {
	if templateID == "" {
		return nil, &novita.ValidationError{Field: "template_id", Message: "is required"}
	}

	query := url.Values{}
	query.Set("template_id", templateID)

	resp, err := c.httpClient.Get(ctx, apiPrefix+"/template", query)
	if err != nil {
		return nil, fmt.Errorf("getting template: %w", err)
	}

	return parseTemplate(resp.Body, "template")
}

// Create implements novita.TemplatesClient.Create.
func (c *TemplatesClient) Create(ctx context.Context, request *novita.CreateTemplateRequest) (*novita.Template, error) {
	err := request.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating create template request: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, apiPrefix+"/template/create", request)
	if err != nil {
		return nil, fmt.Errorf("creating template: %w", err)
	}

	return parseTemplate(resp.Body, "create template response")
}

// Delete implements novita.TemplatesClient.Delete.
func (c *TemplatesClient) Delete(ctx context.Context, templateID string) error {
	if templateID == "" {
		return &novita.ValidationError{Field: "template_id", Message: "is required"}
	}

	body := map[string]string{"template_id": templateID}

	_, err := c.httpClient.Post(ctx, apiPrefix+"/template/delete", body)
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}

	return nil
}

func parseTemplate(body []byte, what string) (*novita.Template, error) {
	var template novita.Template

	err := json.Unmarshal(body, &template)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	err = template.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", what, err)
	}

	return &template, nil
}

package client

import (
	internalhttp "github.com/novitalabs/novita-go/internal/http"
)

// NewTestClient creates a client against the given base URL, bypassing
// API key resolution.
func NewTestClient(baseURL string) *Client {
	client := &Client{
		httpClient: internalhttp.NewClient(baseURL, "test-key"),
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// Package novitaclient provides the main entry point for creating Novita API clients
package novitaclient

import (
	"os"
	"strings"

	"github.com/novitalabs/novita-go/internal/client"
	"github.com/novitalabs/novita-go/internal/constants"
	"github.com/novitalabs/novita-go/pkg/novita"
)

// New creates a new Novita API client. The API key is taken from the
// config, falling back to the NOVITA_API_KEY environment variable; the
// fallback is resolved once here, never on later calls.
func New(config *novita.Config) (novita.Client, error) {
	if config == nil {
		return nil, novita.ErrConfigRequired
	}

	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv(constants.EnvAPIKey)
	}

	if apiKey == "" {
		return nil, &novita.ConfigurationError{
			Message: "no API key provided and " + constants.EnvAPIKey + " is not set",
		}
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = os.Getenv(constants.EnvBaseURL)
	}

	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	baseURL = normalizeBaseURL(baseURL)

	return client.New(baseURL, apiKey, config), nil
}

// NewWithAPIKey creates a client with default configuration.
func NewWithAPIKey(apiKey string) (novita.Client, error) {
	return New(&novita.Config{APIKey: apiKey})
}

// normalizeBaseURL trims trailing slashes and defaults the scheme to https.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

package constants

import "time"

// API endpoints and paths.
const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.novita.ai"

	// APIPathPrefix is prepended to every GPU instance API path.
	APIPathPrefix = "/gpu-instance/openapi/v1"
)

// Environment variables.
const (
	// EnvAPIKey is consulted when no API key is passed explicitly.
	EnvAPIKey = "NOVITA_API_KEY"

	// EnvBaseURL overrides the API endpoint, mainly for testing.
	EnvBaseURL = "NOVITA_BASE_URL"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// User agent reported on every request.
const (
	// DefaultUserAgent identifies this client to the API.
	DefaultUserAgent = "novita-go"
)

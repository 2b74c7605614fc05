package novita

import (
	"context"
	"net/http"
	"time"
)

// Client is the top-level entry point. It owns exactly one transport and
// shares its connection pool across every resource client.
type Client interface {
	// GPU returns the GPU-instance product namespace.
	GPU() GPUClient

	// Close releases the transport's pooled connections. Any call made
	// through the client afterwards fails with ErrClientClosed.
	Close() error
}

// GPUClient groups the resource clients of the GPU-instance product.
type GPUClient interface {
	Instances() InstancesClient
	Products() ProductsClient
	Endpoints() EndpointsClient
	Networks() NetworksClient
	Storages() StoragesClient
	Templates() TemplatesClient
	Registries() RegistriesClient
	Images() ImagesClient
	Jobs() JobsClient
	Metrics() MetricsClient
	Clusters() ClustersClient
	SSHKeys() SSHKeysClient
}

// Logger is the structured logging interface used by the HTTP layer.
// Request and response bodies are never passed to it.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config holds client configuration for building a novita.Client.
//
// The API key is the only required value. If APIKey is empty, the
// novitaclient constructor falls back to the NOVITA_API_KEY environment
// variable, resolved once at construction; construction fails with a
// ConfigurationError when neither source yields a key.
type Config struct {
	// APIKey authenticates every request as a Bearer token.
	APIKey string

	// BaseURL overrides the production endpoint. A missing scheme defaults
	// to https, a trailing slash is trimmed.
	BaseURL string

	// HTTPTimeout is the per-call timeout, configured once at the adapter
	// level. Zero means the transport default. Deadlines can still be
	// tightened per call through the context.
	HTTPTimeout time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables request/response logging (metadata only, never bodies)
	// when a Logger is provided.
	Debug bool

	// Logger receives transport-level log events.
	Logger Logger

	// HTTPClient replaces the underlying *http.Client. Mainly for tests.
	HTTPClient *http.Client
}

// InstancesClient manages GPU and CPU compute instances.
type InstancesClient interface {
	Create(ctx context.Context, request *CreateInstanceRequest) (*CreateInstanceResponse, error)
	List(ctx context.Context, params *ListInstancesParams) (*InstanceList, error)
	Get(ctx context.Context, instanceID string) (*Instance, error)
	Edit(ctx context.Context, request *EditInstanceRequest) error
	Start(ctx context.Context, instanceID string) error
	Stop(ctx context.Context, instanceID string) error
	Restart(ctx context.Context, instanceID string) error
	Delete(ctx context.Context, instanceID string) error
	Upgrade(ctx context.Context, request *UpgradeInstanceRequest) error
	Migrate(ctx context.Context, instanceID string) error
	Renew(ctx context.Context, instanceID string, months int) error
	ConvertToMonthly(ctx context.Context, instanceID string, months int) error
	SaveImage(ctx context.Context, request *SaveImageRequest) (string, error)
	SSHEndpoint(ctx context.Context, instanceID string) (*SSHEndpoint, error)
}

// ProductsClient lists purchasable GPU and CPU products.
type ProductsClient interface {
	ListGPU(ctx context.Context) ([]GPUProduct, error)
	ListCPU(ctx context.Context) ([]CPUProduct, error)
}

// EndpointsClient manages serverless endpoints.
type EndpointsClient interface {
	List(ctx context.Context) ([]Endpoint, error)
	Get(ctx context.Context, endpointID string) (*Endpoint, error)
	Create(ctx context.Context, request *CreateEndpointRequest) (*Endpoint, error)
	Update(ctx context.Context, request *UpdateEndpointRequest) (*Endpoint, error)
	Delete(ctx context.Context, endpointID string) error
	Limits(ctx context.Context) (*EndpointLimits, error)
}

// NetworksClient manages VPC networks.
type NetworksClient interface {
	List(ctx context.Context) ([]Network, error)
	Get(ctx context.Context, networkID string) (*Network, error)
	Create(ctx context.Context, request *CreateNetworkRequest) (*Network, error)
	Update(ctx context.Context, request *UpdateNetworkRequest) (*Network, error)
	Delete(ctx context.Context, networkID string) error
}

// StoragesClient manages network storage volumes.
type StoragesClient interface {
	List(ctx context.Context) ([]Storage, error)
	Create(ctx context.Context, request *CreateStorageRequest) (*Storage, error)
	Update(ctx context.Context, request *UpdateStorageRequest) (*Storage, error)
	Delete(ctx context.Context, storageID string) error
}

// TemplatesClient manages instance templates.
type TemplatesClient interface {
	List(ctx context.Context) ([]Template, error)
	Get(ctx context.Context, templateID string) (*Template, error)
	Create(ctx context.Context, request *CreateTemplateRequest) (*Template, error)
	Delete(ctx context.Context, templateID string) error
}

// RegistriesClient manages container registry credentials.
type RegistriesClient interface {
	List(ctx context.Context) ([]RegistryAuth, error)
	Save(ctx context.Context, request *SaveRegistryAuthRequest) error
	Delete(ctx context.Context, authID string) error
}

// ImagesClient manages image prewarm tasks.
type ImagesClient interface {
	List(ctx context.Context) ([]PrewarmTask, error)
	Create(ctx context.Context, request *CreatePrewarmRequest) (*CreatePrewarmResponse, error)
	Update(ctx context.Context, request *UpdatePrewarmRequest) (*PrewarmTask, error)
	Delete(ctx context.Context, taskID string) error
	Quota(ctx context.Context) (*PrewarmQuota, error)
}

// JobsClient lists and cancels asynchronous jobs.
type JobsClient interface {
	List(ctx context.Context, params *ListJobsParams) ([]Job, error)
	Break(ctx context.Context, jobID string) error
}

// MetricsClient reads instance utilization metrics.
type MetricsClient interface {
	Instance(ctx context.Context, instanceID string) (*InstanceMetrics, error)
}

// ClustersClient lists the clusters instances can be deployed to.
type ClustersClient interface {
	List(ctx context.Context) ([]Cluster, error)
}

// SSHKeysClient manages account SSH public keys.
type SSHKeysClient interface {
	List(ctx context.Context) ([]SSHKey, error)
	Create(ctx context.Context, request *CreateSSHKeyRequest) (*SSHKey, error)
	Delete(ctx context.Context, keyID string) error
}

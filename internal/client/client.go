// Package client implements the novita.Client interface on top of the
// shared HTTP transport.
package client

import (
	"github.com/novitalabs/novita-go/internal/constants"
	"github.com/novitalabs/novita-go/internal/http"
	"github.com/novitalabs/novita-go/pkg/novita"
)

// apiPrefix is prepended to every resource path.
const apiPrefix = constants.APIPathPrefix

// Client implements the novita.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     novita.Logger

	gpu *gpuClient
}

// gpuClient implements novita.GPUClient. All resource clients share the
// parent's transport.
type gpuClient struct {
	instances  novita.InstancesClient
	products   novita.ProductsClient
	endpoints  novita.EndpointsClient
	networks   novita.NetworksClient
	storages   novita.StoragesClient
	templates  novita.TemplatesClient
	registries novita.RegistriesClient
	images     novita.ImagesClient
	jobs       novita.JobsClient
	metrics    novita.MetricsClient
	clusters   novita.ClustersClient
	sshKeys    novita.SSHKeysClient
}

// New creates a client from an already-resolved configuration. API key
// resolution and base URL normalization happen in pkg/novitaclient; this
// constructor trusts its inputs.
func New(baseURL, apiKey string, config *novita.Config) *Client {
	opts := []http.ClientOption{}

	// A custom client must be installed before the timeout so the timeout
	// applies to whichever client ends up carrying the requests.
	if config.HTTPClient != nil {
		opts = append(opts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	client := &Client{
		httpClient: http.NewClient(baseURL, apiKey, opts...),
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client
}

// GPU implements novita.Client.GPU.
func (c *Client) GPU() novita.GPUClient {
	return c.gpu
}

// Close implements novita.Client.Close.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.gpu = &gpuClient{
		instances:  NewInstancesClient(c.httpClient),
		products:   NewProductsClient(c.httpClient),
		endpoints:  NewEndpointsClient(c.httpClient),
		networks:   NewNetworksClient(c.httpClient),
		storages:   NewStoragesClient(c.httpClient),
		templates:  NewTemplatesClient(c.httpClient),
		registries: NewRegistriesClient(c.httpClient),
		images:     NewImagesClient(c.httpClient),
		jobs:       NewJobsClient(c.httpClient),
		metrics:    NewMetricsClient(c.httpClient),
		clusters:   NewClustersClient(c.httpClient),
		sshKeys:    NewSSHKeysClient(c.httpClient),
	}
}

func (g *gpuClient) Instances() novita.InstancesClient   { return g.instances }
func (g *gpuClient) Products() novita.ProductsClient     { return g.products }
func (g *gpuClient) Endpoints() novita.EndpointsClient   { return g.endpoints }
func (g *gpuClient) Networks() novita.NetworksClient     { return g.networks }
func (g *gpuClient) Storages() novita.StoragesClient     { return g.storages }
func (g *gpuClient) Templates() novita.TemplatesClient   { return g.templates }
func (g *gpuClient) Registries() novita.RegistriesClient { return g.registries }
func (g *gpuClient) Images() novita.ImagesClient         { return g.images }
func (g *gpuClient) Jobs() novita.JobsClient             { return g.jobs }
func (g *gpuClient) Metrics() novita.MetricsClient       { return g.metrics }
func (g *gpuClient) Clusters() novita.ClustersClient     { return g.clusters }
func (g *gpuClient) SSHKeys() novita.SSHKeysClient       { return g.sshKeys }

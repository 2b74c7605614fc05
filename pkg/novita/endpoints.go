package novita

import "strconv"

// Endpoint describes a serverless endpoint.
type Endpoint struct {
	ID          string         `json:"endpoint_id"`
	Name        string         `json:"name,omitempty"`
	Status      EndpointStatus `json:"status"`
	InstanceID  string         `json:"instance_id,omitempty"`
	URL         string         `json:"url,omitempty"`
	MinReplicas int            `json:"min_replicas,omitempty"`
	MaxReplicas int            `json:"max_replicas,omitempty"`
	CreatedAt   int64          `json:"created_at,omitempty"`
}

// Validate checks the response shape.
func (e *Endpoint) Validate() error {
	if e.ID == "" {
		return &ValidationError{Field: "endpoint_id", Message: "missing in endpoint payload"}
	}

	return nil
}

// EndpointList is the wire envelope of the endpoints listing.
type EndpointList struct {
	Endpoints []Endpoint `json:"endpoints"`
}

// Validate checks every element.
func (l *EndpointList) Validate() error {
	for idx := range l.Endpoints {
		err := l.Endpoints[idx].Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// CreateEndpointRequest creates a serverless endpoint.
type CreateEndpointRequest struct {
	Name        string `json:"name"`
	InstanceID  string `json:"instance_id,omitempty"`
	TemplateID  string `json:"template_id,omitempty"`
	MinReplicas int    `json:"min_replicas,omitempty"`
	MaxReplicas int    `json:"max_replicas,omitempty"`
}

// Validate rejects incomplete or inconsistent requests.
func (r *CreateEndpointRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}

	if r.MinReplicas < 0 || r.MaxReplicas < 0 {
		return &ValidationError{Field: "min_replicas", Message: "replica counts cannot be negative"}
	}

	if r.MaxReplicas > 0 && r.MinReplicas > r.MaxReplicas {
		return &ValidationError{
			Field:   "min_replicas",
			Message: "cannot exceed max_replicas (" + strconv.Itoa(r.MaxReplicas) + ")",
		}
	}

	return nil
}

// UpdateEndpointRequest changes mutable endpoint properties.
type UpdateEndpointRequest struct {
	EndpointID  string `json:"endpoint_id"`
	Name        string `json:"name,omitempty"`
	MinReplicas int    `json:"min_replicas,omitempty"`
	MaxReplicas int    `json:"max_replicas,omitempty"`
}

// Validate rejects requests without an endpoint ID.
func (r *UpdateEndpointRequest) Validate() error {
	if r.EndpointID == "" {
		return &ValidationError{Field: "endpoint_id", Message: "is required"}
	}

	return nil
}

// EndpointLimits reports the account's endpoint quota ranges.
type EndpointLimits struct {
	MaxEndpoints   int `json:"max_endpoints,omitempty"`
	MinReplicas    int `json:"min_replicas,omitempty"`
	MaxReplicas    int `json:"max_replicas,omitempty"`
	MaxGPUPerModel int `json:"max_gpu_per_model,omitempty"`
}

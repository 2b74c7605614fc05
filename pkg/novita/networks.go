package novita

// Network describes a VPC network.
type Network struct {
	ID        string `json:"network_id"`
	Name      string `json:"name,omitempty"`
	Status    string `json:"status,omitempty"`
	ClusterID string `json:"cluster_id,omitempty"`
	Subnet    string `json:"subnet,omitempty"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

// Validate checks the response shape.
func (n *Network) Validate() error {
	if n.ID == "" {
		return &ValidationError{Field: "network_id", Message: "missing in network payload"}
	}

	return nil
}

// NetworkList is the wire envelope of the networks listing.
type NetworkList struct {
	Networks []Network `json:"networks"`
}

// Validate checks every element.
func (l *NetworkList) Validate() error {
	for idx := range l.Networks {
		err := l.Networks[idx].Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// CreateNetworkRequest creates a VPC network.
type CreateNetworkRequest struct {
	Name      string `json:"name"`
	ClusterID string `json:"cluster_id,omitempty"`
}

// Validate rejects incomplete requests.
func (r *CreateNetworkRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}

	return nil
}

// UpdateNetworkRequest renames a VPC network.
type UpdateNetworkRequest struct {
	NetworkID string `json:"network_id"`
	Name      string `json:"name,omitempty"`
}

// Validate rejects requests without a network ID.
func (r *UpdateNetworkRequest) Validate() error {
	if r.NetworkID == "" {
		return &ValidationError{Field: "network_id", Message: "is required"}
	}

	return nil
}

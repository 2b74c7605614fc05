package novita

// Cluster is a datacenter region hosting GPU capacity.
type Cluster struct {
	ID               string   `json:"id"`
	Name             string   `json:"name,omitempty"`
	AvailableGPUType []string `json:"availableGpuType,omitempty"`
	SupportNetwork   bool     `json:"supportNetworkStorage,omitempty"`
}

// Validate checks the response shape.
func (c *Cluster) Validate() error {
	if c.ID == "" {
		return &ValidationError{Field: "id", Message: "missing in cluster payload"}
	}

	return nil
}

// ClusterList is the wire envelope of the clusters listing.
type ClusterList struct {
	Data []Cluster `json:"data"`
}

// Validate checks every element.
func (l *ClusterList) Validate() error {
	for idx := range l.Data {
		err := l.Data[idx].Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

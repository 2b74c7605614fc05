package novita

// InstanceMetrics is a point-in-time resource usage sample for a running
// instance. Usage values are percentages in the range 0-100.
type InstanceMetrics struct {
	InstanceID  string  `json:"instance_id"`
	CPUUsage    float64 `json:"cpu_usage"`
	MemoryUsage float64 `json:"memory_usage"`
	GPUUsage    float64 `json:"gpu_usage"`
	MemoryTotal int64   `json:"memory_total,omitempty"`
	MemoryUsed  int64   `json:"memory_used,omitempty"`
	Timestamp   int64   `json:"timestamp,omitempty"`
}

// Validate checks the response shape.
func (m *InstanceMetrics) Validate() error {
	if m.InstanceID == "" {
		return &ValidationError{Field: "instance_id", Message: "missing in metrics payload"}
	}

	return nil
}

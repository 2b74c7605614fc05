package novita

import (
	"net/url"
	"strconv"
	"strings"
)

// Root filesystem bounds enforced before any create call reaches the API.
const (
	MinRootfsSizeGB = 20
	MaxRootfsSizeGB = 1000
)

// CreateInstanceRequest creates a new compute instance. GPUNum, RootfsSize
// and ImageURL are required; everything else is sent only when set.
type CreateInstanceRequest struct {
	Name          string        `json:"name,omitempty"`
	ProductID     string        `json:"productId,omitempty"`
	GPUNum        int           `json:"gpuNum"`
	RootfsSize    int           `json:"rootfsSize"`
	ImageURL      string        `json:"imageUrl"`
	ImageAuthID   string        `json:"imageAuthId,omitempty"`
	Command       string        `json:"command,omitempty"`
	ClusterID     string        `json:"clusterId,omitempty"`
	Kind          InstanceKind  `json:"kind,omitempty"`
	BillingMethod BillingMethod `json:"billingMethod,omitempty"`
	Month         int           `json:"month,omitempty"`
	Ports         []PortMapping `json:"portMappings,omitempty"`
	Envs          []EnvVar      `json:"envs,omitempty"`
	VolumeMounts  []VolumeMount `json:"volumeMounts,omitempty"`
	NetworkID     string        `json:"networkId,omitempty"`
}

// Validate implements the validating-constructor contract: an invalid
// request never reaches the wire.
func (r *CreateInstanceRequest) Validate() error {
	if r.GPUNum < 1 {
		return &ValidationError{Field: "gpuNum", Message: "must be at least 1"}
	}

	if r.RootfsSize < MinRootfsSizeGB || r.RootfsSize > MaxRootfsSizeGB {
		return &ValidationError{
			Field:   "rootfsSize",
			Message: "must be between " + strconv.Itoa(MinRootfsSizeGB) + " and " + strconv.Itoa(MaxRootfsSizeGB) + " GB",
		}
	}

	if r.ImageURL == "" {
		return &ValidationError{Field: "imageUrl", Message: "is required"}
	}

	if r.Kind != "" && !r.Kind.Known() {
		return &ValidationError{Field: "kind", Message: "unknown instance kind " + strconv.Quote(string(r.Kind))}
	}

	if r.BillingMethod != "" && !r.BillingMethod.Known() {
		return &ValidationError{Field: "billingMethod", Message: "unknown billing method " + strconv.Quote(string(r.BillingMethod))}
	}

	if r.BillingMethod == BillingMethodMonthly && r.Month < 1 {
		return &ValidationError{Field: "month", Message: "must be at least 1 for monthly billing"}
	}

	return nil
}

// CreateInstanceResponse is the success payload of instance creation.
type CreateInstanceResponse struct {
	ID string `json:"id"`
}

// Validate checks the response shape.
func (r *CreateInstanceResponse) Validate() error {
	if r.ID == "" {
		return &ValidationError{Field: "id", Message: "missing in create response"}
	}

	return nil
}

// ListInstancesParams filters and pages a list call. List endpoints return a
// single page; the caller drives pagination.
type ListInstancesParams struct {
	PageSize int
	PageNum  int
	Name     string
	Status   InstanceStatus
}

// Validate rejects unknown status filters before any call is made.
func (p *ListInstancesParams) Validate() error {
	if p == nil {
		return nil
	}

	if p.Status != "" && !p.Status.Known() {
		return &ValidationError{Field: "status", Message: "unknown instance status " + strconv.Quote(string(p.Status))}
	}

	return nil
}

// ToValues converts the params to URL query values, omitting unset fields.
func (p *ListInstancesParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(p.PageSize))
	}

	if p.PageNum > 0 {
		values.Set("pageNum", strconv.Itoa(p.PageNum))
	}

	if p.Name != "" {
		values.Set("name", p.Name)
	}

	if p.Status != "" {
		values.Set("status", string(p.Status))
	}

	return values
}

// Instance describes a compute instance.
type Instance struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	ClusterID     string         `json:"clusterId"`
	ClusterName   string         `json:"clusterName,omitempty"`
	Status        InstanceStatus `json:"status"`
	ImageURL      string         `json:"imageUrl"`
	ImageAuthID   string         `json:"imageAuthId,omitempty"`
	Command       string         `json:"command,omitempty"`
	CPUNum        string         `json:"cpuNum,omitempty"`
	Memory        string         `json:"memory,omitempty"`
	GPUNum        string         `json:"gpuNum,omitempty"`
	PortMappings  []PortMapping  `json:"portMappings,omitempty"`
	ProductID     string         `json:"productId"`
	ProductName   string         `json:"productName,omitempty"`
	RootfsSize    int            `json:"rootfsSize"`
	VolumeMounts  []VolumeMount  `json:"volumeMounts,omitempty"`
	BillingMode   BillingMethod  `json:"billingMode,omitempty"`
	EndTime       string         `json:"endTime,omitempty"`
	CreatedAt     int64          `json:"createdAt,omitempty"`
	ConnectSSH    *ConnectSSH    `json:"connectComponentSSH,omitempty"`
	SpotStatus    string         `json:"spotStatus,omitempty"`
	SpotReclaimAt string         `json:"spotReclaimTime,omitempty"`
}

// Validate checks the response shape. A half-populated instance is never
// returned to the caller.
func (i *Instance) Validate() error {
	if i.ID == "" {
		return &ValidationError{Field: "id", Message: "missing in instance payload"}
	}

	if i.Status == "" {
		return &ValidationError{Field: "status", Message: "missing in instance payload"}
	}

	return nil
}

// ConnectSSH is the raw SSH connectivity block of an instance payload.
type ConnectSSH struct {
	User    string `json:"user"`
	Command string `json:"command"`
}

// InstanceList is one page of instances.
type InstanceList struct {
	Instances []Instance `json:"instances"`
	Total     int        `json:"total"`
}

// Validate checks every element of the page.
func (l *InstanceList) Validate() error {
	for idx := range l.Instances {
		err := l.Instances[idx].Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// EditInstanceRequest changes mutable properties of an instance.
type EditInstanceRequest struct {
	InstanceID     string        `json:"instanceId"`
	Name           string        `json:"name,omitempty"`
	Ports          []PortMapping `json:"ports,omitempty"`
	ExpandRootDisk int           `json:"expandRootDisk,omitempty"`
}

// Validate rejects requests without an instance ID.
func (r *EditInstanceRequest) Validate() error {
	if r.InstanceID == "" {
		return &ValidationError{Field: "instanceId", Message: "is required"}
	}

	if r.ExpandRootDisk != 0 && (r.ExpandRootDisk < MinRootfsSizeGB || r.ExpandRootDisk > MaxRootfsSizeGB) {
		return &ValidationError{
			Field:   "expandRootDisk",
			Message: "must be between " + strconv.Itoa(MinRootfsSizeGB) + " and " + strconv.Itoa(MaxRootfsSizeGB) + " GB",
		}
	}

	return nil
}

// NetworkVolume selects the volumes attached during an upgrade.
type NetworkVolume struct {
	VolumeMounts []VolumeMount `json:"volumeMounts"`
}

// UpgradeInstanceRequest replaces the image or runtime setup of an instance.
type UpgradeInstanceRequest struct {
	InstanceID    string         `json:"instanceId"`
	ImageURL      string         `json:"imageUrl,omitempty"`
	ImageAuthID   string         `json:"imageAuthId,omitempty"`
	Command       string         `json:"command,omitempty"`
	Envs          []EnvVar       `json:"envs,omitempty"`
	Save          bool           `json:"save,omitempty"`
	NetworkVolume *NetworkVolume `json:"networkVolume,omitempty"`
}

// Validate rejects requests without an instance ID.
func (r *UpgradeInstanceRequest) Validate() error {
	if r.InstanceID == "" {
		return &ValidationError{Field: "instanceId", Message: "is required"}
	}

	return nil
}

// SaveImageRequest snapshots an instance into a registry image. The save
// runs asynchronously; the response is a job ID to follow up on.
type SaveImageRequest struct {
	InstanceID string `json:"instanceId"`
	Image      string `json:"image"`
}

// Validate rejects incomplete save requests.
func (r *SaveImageRequest) Validate() error {
	if r.InstanceID == "" {
		return &ValidationError{Field: "instanceId", Message: "is required"}
	}

	if r.Image == "" {
		return &ValidationError{Field: "image", Message: "is required"}
	}

	return nil
}

// SaveImageResponse carries the ID of the save-image job.
type SaveImageResponse struct {
	JobID string `json:"jobId"`
}

// Validate checks the response shape.
func (r *SaveImageResponse) Validate() error {
	if r.JobID == "" {
		return &ValidationError{Field: "jobId", Message: "missing in save image response"}
	}

	return nil
}

// SSHEndpoint is the parsed SSH connectivity of a running instance. It is a
// convenience derived from the instance payload, not its own API call.
type SSHEndpoint struct {
	User    string
	Host    string
	Port    int
	Command string
}

// ParseSSHEndpoint derives host and port from the vendor's ssh command
// string, e.g. "ssh ubuntu@example.com -p 22345". The port defaults to 22.
func ParseSSHEndpoint(connect *ConnectSSH) (*SSHEndpoint, error) {
	if connect == nil || connect.Command == "" {
		return nil, &ValidationError{Field: "connectComponentSSH", Message: "instance has no SSH connectivity"}
	}

	endpoint := &SSHEndpoint{
		User:    connect.User,
		Port:    22,
		Command: connect.Command,
	}

	fields := strings.Fields(connect.Command)
	for idx, field := range fields {
		if at := strings.LastIndex(field, "@"); at >= 0 {
			endpoint.Host = field[at+1:]

			if endpoint.User == "" {
				endpoint.User = field[:at]
			}
		}

		if field == "-p" && idx+1 < len(fields) {
			port, err := strconv.Atoi(fields[idx+1])
			if err != nil {
				return nil, &ValidationError{Field: "connectComponentSSH", Message: "malformed port in ssh command"}
			}

			endpoint.Port = port
		}
	}

	if endpoint.Host == "" {
		return nil, &ValidationError{Field: "connectComponentSSH", Message: "no host in ssh command"}
	}

	return endpoint, nil
}

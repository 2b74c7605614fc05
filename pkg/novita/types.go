package novita

// InstanceStatus is the lifecycle state of an instance. The vendor adds
// states without versioning the API, so responses keep unknown values as-is;
// Known reports whether the value is a declared member.
type InstanceStatus string

const (
	InstanceStatusCreating    InstanceStatus = "creating"
	InstanceStatusPulling     InstanceStatus = "pulling"
	InstanceStatusRunning     InstanceStatus = "running"
	InstanceStatusStopping    InstanceStatus = "stopping"
	InstanceStatusStopped     InstanceStatus = "stopped"
	InstanceStatusRestarting  InstanceStatus = "restarting"
	InstanceStatusRemoved     InstanceStatus = "removed"
	InstanceStatusFailed      InstanceStatus = "failed"
	InstanceStatusMigrating   InstanceStatus = "migrating"
	InstanceStatusResetting   InstanceStatus = "resetting"
	InstanceStatusToCreate    InstanceStatus = "toCreate"
	InstanceStatusToStart     InstanceStatus = "toStart"
	InstanceStatusToStop      InstanceStatus = "toStop"
	InstanceStatusToRestart   InstanceStatus = "toRestart"
	InstanceStatusToRemove    InstanceStatus = "toRemove"
	InstanceStatusToReset     InstanceStatus = "toReset"
	InstanceStatusFreezing    InstanceStatus = "freezing"
	InstanceStatusExitedSaved InstanceStatus = "exitedSaved"
)

// Known reports whether the status is a declared member.
func (s InstanceStatus) Known() bool {
	switch s {
	case InstanceStatusCreating, InstanceStatusPulling, InstanceStatusRunning,
		InstanceStatusStopping, InstanceStatusStopped, InstanceStatusRestarting,
		InstanceStatusRemoved, InstanceStatusFailed, InstanceStatusMigrating,
		InstanceStatusResetting, InstanceStatusToCreate, InstanceStatusToStart,
		InstanceStatusToStop, InstanceStatusToRestart, InstanceStatusToRemove,
		InstanceStatusToReset, InstanceStatusFreezing, InstanceStatusExitedSaved:
		return true
	default:
		return false
	}
}

// EndpointStatus is the lifecycle state of a serverless endpoint.
type EndpointStatus string

const (
	EndpointStatusPending     EndpointStatus = "pending"
	EndpointStatusCreating    EndpointStatus = "creating"
	EndpointStatusActive      EndpointStatus = "active"
	EndpointStatusRunning     EndpointStatus = "running"
	EndpointStatusStopped     EndpointStatus = "stopped"
	EndpointStatusFailed      EndpointStatus = "failed"
	EndpointStatusTerminating EndpointStatus = "terminating"
)

// Known reports whether the status is a declared member.
func (s EndpointStatus) Known() bool {
	switch s {
	case EndpointStatusPending, EndpointStatusCreating, EndpointStatusActive,
		EndpointStatusRunning, EndpointStatusStopped, EndpointStatusFailed,
		EndpointStatusTerminating:
		return true
	default:
		return false
	}
}

// BillingMethod selects how an instance is billed.
type BillingMethod string

const (
	BillingMethodOnDemand BillingMethod = "onDemand"
	BillingMethodMonthly  BillingMethod = "monthly"
	BillingMethodSpot     BillingMethod = "spot"
)

// Known reports whether the billing method is a declared member.
func (b BillingMethod) Known() bool {
	switch b {
	case BillingMethodOnDemand, BillingMethodMonthly, BillingMethodSpot:
		return true
	default:
		return false
	}
}

// InstanceKind selects the compute family of an instance.
type InstanceKind string

const (
	InstanceKindGPU InstanceKind = "gpu"
	InstanceKindCPU InstanceKind = "cpu"
)

// Known reports whether the kind is a declared member.
func (k InstanceKind) Known() bool {
	return k == InstanceKindGPU || k == InstanceKindCPU
}

// PortMapping exposes one container port.
type PortMapping struct {
	Port int    `json:"port"`
	Type string `json:"type"`
}

// VolumeMount attaches a volume to an instance path.
type VolumeMount struct {
	Type      string `json:"type"`
	ID        string `json:"id,omitempty"`
	Size      string `json:"size,omitempty"`
	MountPath string `json:"mountPath"`
}

// EnvVar is a single environment variable passed to an instance.
type EnvVar struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

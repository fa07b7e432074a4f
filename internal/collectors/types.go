package collectors

import "encoding/json"

// SystemIdentity holds the uname-style identity strings of the host.
// Fields may be empty but are always present.
type SystemIdentity struct {
	SystemName  string `json:"system_name"`
	NodeName    string `json:"node_name"`
	OSRelease   string `json:"os_release"`
	OSVersion   string `json:"os_version"`
	MachineType string `json:"machine_type"`
	Processor   string `json:"processor"`
}

// CPUSnapshot holds core counts, instantaneous usage and, when the
// platform exposes them, the current clock frequency and brand string.
// Core counts and frequency are omitted from the JSON when undeterminable.
type CPUSnapshot struct {
	PhysicalCores *int     `json:"physical_cores,omitempty"`
	LogicalCores  *int     `json:"logical_cores,omitempty"`
	UsagePercent  float64  `json:"usage_percent"`
	FrequencyMHz  *float64 `json:"frequency_mhz,omitempty"`
	ProcessorName string   `json:"processor_name"`
}

// MemorySnapshot holds virtual memory counters in decimal gigabytes.
type MemorySnapshot struct {
	TotalGB            float64 `json:"total_gb"`
	AvailableGB        float64 `json:"available_gb"`
	UsedGB             float64 `json:"used_gb"`
	UtilizationPercent float64 `json:"utilization_percent"`
}

// DiskSnapshot holds usage of the root volume, or an error description
// when the volume query failed. A failed query serializes as
// {"error": "..."} with no numeric fields.
type DiskSnapshot struct {
	TotalGB            float64
	UsedGB             float64
	FreeGB             float64
	UtilizationPercent float64
	Err                string
}

func (d DiskSnapshot) MarshalJSON() ([]byte, error) {
	if d.Err != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{d.Err})
	}
	return json.Marshal(struct {
		TotalGB            float64 `json:"total_gb"`
		UsedGB             float64 `json:"used_gb"`
		FreeGB             float64 `json:"free_gb"`
		UtilizationPercent float64 `json:"utilization_percent"`
	}{d.TotalGB, d.UsedGB, d.FreeGB, d.UtilizationPercent})
}

// GPUEntry holds telemetry for one detected GPU.
type GPUEntry struct {
	ID                    int     `json:"id"`
	Name                  string  `json:"name"`
	MemoryTotalMB         float64 `json:"memory_total_mb"`
	MemoryUsedMB          float64 `json:"memory_used_mb"`
	MemoryFreeMB          float64 `json:"memory_free_mb"`
	GPUUtilizationPercent float64 `json:"gpu_utilization_percent"`
	TemperatureC          float64 `json:"temperature_c"`
}

// GPUResult is either a list of devices or a status string explaining
// why no device telemetry is available. Exactly one of the two is set;
// a status serializes as {"status": "..."} and a device list as a JSON
// array. Zero detected devices is reported as a status, never as [].
type GPUResult struct {
	Devices []GPUEntry
	Status  string
}

func (g GPUResult) MarshalJSON() ([]byte, error) {
	if g.Status != "" {
		return json.Marshal(struct {
			Status string `json:"status"`
		}{g.Status})
	}
	return json.Marshal(g.Devices)
}

// Snapshot is the complete point-in-time response assembled by
// GetSnapshot. It is built fresh on every call and carries no state.
type Snapshot struct {
	System SystemIdentity `json:"system"`
	CPU    CPUSnapshot    `json:"cpu"`
	Memory MemorySnapshot `json:"memory"`
	Disk   DiskSnapshot   `json:"disk"`
	GPU    GPUResult      `json:"gpu"`
}

package collectors

import (
	"fmt"
	"sync"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

const (
	gpuUnavailableStatus = "NVML not available or no NVIDIA GPU detected"
	gpuNoDeviceStatus    = "No NVIDIA GPU detected"
)

// gpuSource provides GPU telemetry. The concrete variant is selected once
// per process by DetectGPU: an NVML-backed source when the library
// initializes, otherwise a fixed unavailable source.
type gpuSource interface {
	Snapshot() GPUResult
}

var (
	gpuOnce   sync.Once
	activeGPU gpuSource
)

// DetectGPU probes NVML once and records the outcome for the life of the
// process. Safe to call from multiple goroutines; later calls are no-ops.
func DetectGPU() {
	gpuOnce.Do(func() {
		if ret := nvml.Init(); ret != nvml.SUCCESS {
			activeGPU = unavailableSource{reason: gpuUnavailableStatus}
			return
		}
		activeGPU = nvmlSource{}
	})
}

// GetGPUResult enumerates GPU telemetry through the source selected by
// DetectGPU. It never returns an error: unavailability and enumeration
// failures are reported as a status result.
func GetGPUResult() GPUResult {
	DetectGPU()
	return activeGPU.Snapshot()
}

// unavailableSource is the variant used when NVML could not be loaded or
// no compatible device exists. It always reports the same status.
type unavailableSource struct {
	reason string
}

func (s unavailableSource) Snapshot() GPUResult {
	return GPUResult{Status: s.reason}
}

// nvmlSource reads device telemetry through NVML.
type nvmlSource struct{}

func (nvmlSource) Snapshot() GPUResult {
	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return GPUResult{Status: gpuErrorStatus(ret)}
	}
	if count == 0 {
		return GPUResult{Status: gpuNoDeviceStatus}
	}

	entries := make([]GPUEntry, 0, count)
	for i := 0; i < count; i++ {
		device, ret := nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			return GPUResult{Status: gpuErrorStatus(ret)}
		}
		entries = append(entries, deviceEntry(device, i))
	}
	return GPUResult{Devices: entries}
}

// deviceEntry reads one device's telemetry. Individual field reads that
// fail leave the field at zero rather than degrading the whole result.
func deviceEntry(device nvml.Device, index int) GPUEntry {
	entry := GPUEntry{ID: index}

	if name, ret := device.GetName(); ret == nvml.SUCCESS {
		entry.Name = name
	}
	if memInfo, ret := device.GetMemoryInfo(); ret == nvml.SUCCESS {
		entry.MemoryTotalMB = BytesToMB(memInfo.Total)
		entry.MemoryUsedMB = BytesToMB(memInfo.Used)
		entry.MemoryFreeMB = BytesToMB(memInfo.Free)
	}
	if util, ret := device.GetUtilizationRates(); ret == nvml.SUCCESS {
		entry.GPUUtilizationPercent = float64(util.Gpu)
	}
	if temp, ret := device.GetTemperature(nvml.TEMPERATURE_GPU); ret == nvml.SUCCESS {
		entry.TemperatureC = float64(temp)
	}
	return entry
}

func gpuErrorStatus(ret nvml.Return) string {
	return fmt.Sprintf("Error getting GPU info: %s", nvml.ErrorString(ret))
}

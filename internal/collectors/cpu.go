package collectors

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
)

// cpuSampleInterval is the window over which instantaneous CPU usage is
// measured. Sampling for a short fixed interval gives a current reading
// instead of a since-boot average.
const cpuSampleInterval = 100 * time.Millisecond

// GetCPUSnapshot returns core counts, instantaneous usage, and, when the
// platform exposes them, the current clock frequency and processor brand.
// Core counts and frequency are left nil when the platform cannot report
// them; the brand string falls back to the generic architecture name and
// finally to "Unknown".
func GetCPUSnapshot() CPUSnapshot {
	snap := CPUSnapshot{}

	if physical, err := cpu.Counts(false); err == nil {
		snap.PhysicalCores = &physical
	}
	if logical, err := cpu.Counts(true); err == nil {
		snap.LogicalCores = &logical
	}

	if percents, err := cpu.Percent(cpuSampleInterval, false); err == nil && len(percents) > 0 {
		snap.UsagePercent = round2(percents[0])
	}

	var brand string
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		brand = infos[0].ModelName
		if infos[0].Mhz > 0 {
			freq := round2(infos[0].Mhz)
			snap.FrequencyMHz = &freq
		}
	}
	snap.ProcessorName = processorNameOr(brand, runtime.GOARCH)

	return snap
}

// processorNameOr resolves the processor name from the detailed brand
// string, falling back to the platform's generic name, then to "Unknown".
func processorNameOr(brand, generic string) string {
	if brand != "" {
		return brand
	}
	if generic != "" {
		return generic
	}
	return "Unknown"
}

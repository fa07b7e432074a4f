package collectors

import (
	"github.com/shirou/gopsutil/v3/mem"
)

// GetMemorySnapshot returns system virtual memory counters converted to
// gigabytes, with the OS-reported utilization percentage. On error it
// returns a zero snapshot rather than failing.
func GetMemorySnapshot() MemorySnapshot {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemorySnapshot{}
	}

	return MemorySnapshot{
		TotalGB:            BytesToGB(vm.Total),
		AvailableGB:        BytesToGB(vm.Available),
		UsedGB:             BytesToGB(vm.Used),
		UtilizationPercent: vm.UsedPercent,
	}
}

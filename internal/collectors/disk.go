package collectors

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/disk"
)

// rootVolumePath returns the conventional primary volume for the platform:
// C:\ on Windows, / everywhere else.
func rootVolumePath() string {
	if runtime.GOOS == "windows" {
		return `C:\`
	}
	return "/"
}

// GetDiskSnapshot returns usage of the primary volume. A failed query is
// reported in-band through the Err field and never as a returned error.
func GetDiskSnapshot() DiskSnapshot {
	return diskSnapshotFor(rootVolumePath())
}

func diskSnapshotFor(path string) DiskSnapshot {
	usage, err := disk.Usage(path)
	if err != nil {
		return DiskSnapshot{Err: err.Error()}
	}

	return DiskSnapshot{
		TotalGB:            BytesToGB(usage.Total),
		UsedGB:             BytesToGB(usage.Used),
		FreeGB:             BytesToGB(usage.Free),
		UtilizationPercent: usage.UsedPercent,
	}
}

package collectors

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
)

// GetSystemIdentity returns the host's identity strings. It never fails:
// if the host query errors out, whatever can still be determined locally
// (hostname, architecture) is filled in and the rest stays empty.
func GetSystemIdentity() SystemIdentity {
	id := SystemIdentity{
		SystemName:  runtime.GOOS,
		MachineType: runtime.GOARCH,
		Processor:   runtime.GOARCH,
	}

	hi, err := host.Info()
	if err != nil {
		if hn, herr := os.Hostname(); herr == nil {
			id.NodeName = hn
		}
		return id
	}

	id.SystemName = hi.OS
	id.NodeName = hi.Hostname
	id.OSRelease = hi.KernelVersion
	id.OSVersion = hi.Platform + " " + hi.PlatformVersion
	if hi.KernelArch != "" {
		id.MachineType = hi.KernelArch
		id.Processor = hi.KernelArch
	}
	return id
}

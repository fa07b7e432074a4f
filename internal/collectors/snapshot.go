package collectors

// GetSnapshot queries the five data sources and assembles the result.
// It never fails as a whole: each sub-query isolates its own failure and
// reports it in-band inside its own section. Every call re-queries all
// sources; nothing is cached between calls.
func GetSnapshot() Snapshot {
	return Snapshot{
		System: GetSystemIdentity(),
		CPU:    GetCPUSnapshot(),
		Memory: GetMemorySnapshot(),
		Disk:   GetDiskSnapshot(),
		GPU:    GetGPUResult(),
	}
}

package collectors

import "math"

// BytesToGB converts a byte count to gigabytes (1024^3 bytes per GB),
// rounded to 2 decimal places.
func BytesToGB(bytes uint64) float64 {
	return round2(float64(bytes) / (1 << 30))
}

// BytesToMB converts a byte count to megabytes (1024^2 bytes per MB),
// rounded to 2 decimal places.
func BytesToMB(bytes uint64) float64 {
	return round2(float64(bytes) / (1 << 20))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package collectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCPUSnapshot(t *testing.T) {
	snap := GetCPUSnapshot()

	assert.GreaterOrEqual(t, snap.UsagePercent, 0.0)
	assert.LessOrEqual(t, snap.UsagePercent, 100.0)
	assert.NotEmpty(t, snap.ProcessorName)

	if snap.PhysicalCores != nil {
		assert.Greater(t, *snap.PhysicalCores, 0)
	}
	if snap.LogicalCores != nil {
		assert.Greater(t, *snap.LogicalCores, 0)
	}
	if snap.FrequencyMHz != nil {
		assert.Greater(t, *snap.FrequencyMHz, 0.0)
	}
}

func TestProcessorNameOr(t *testing.T) {
	tests := []struct {
		name    string
		brand   string
		generic string
		want    string
	}{
		{"brand wins", "Intel(R) Xeon(R)", "amd64", "Intel(R) Xeon(R)"},
		{"generic fallback", "", "amd64", "amd64"},
		{"unknown when both empty", "", "", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, processorNameOr(tt.brand, tt.generic))
		})
	}
}

package collectors

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSnapshotSections(t *testing.T) {
	snap := GetSnapshot()

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &top))

	for _, key := range []string{"system", "cpu", "memory", "disk", "gpu"} {
		assert.Contains(t, top, key)
	}
	assert.Len(t, top, 5)

	var system map[string]string
	require.NoError(t, json.Unmarshal(top["system"], &system))
	for _, key := range []string{"system_name", "node_name", "os_release", "os_version", "machine_type", "processor"} {
		assert.Contains(t, system, key)
	}

	var memory map[string]float64
	require.NoError(t, json.Unmarshal(top["memory"], &memory))
	for _, key := range []string{"total_gb", "available_gb", "used_gb", "utilization_percent"} {
		assert.Contains(t, memory, key)
	}
}

func TestGetSnapshotRecomputesEachCall(t *testing.T) {
	first := GetSnapshot()
	second := GetSnapshot()

	// Both calls must independently produce complete snapshots; the
	// aggregate never fails even when individual sources degrade.
	assert.NotEmpty(t, first.CPU.ProcessorName)
	assert.NotEmpty(t, second.CPU.ProcessorName)
	assert.Greater(t, second.Memory.TotalGB, 0.0)
	assert.Equal(t, first.System.NodeName, second.System.NodeName)
}

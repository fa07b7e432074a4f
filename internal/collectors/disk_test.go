package collectors

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootVolumePath(t *testing.T) {
	if runtime.GOOS == "windows" {
		assert.Equal(t, `C:\`, rootVolumePath())
	} else {
		assert.Equal(t, "/", rootVolumePath())
	}
}

func TestDiskSnapshotForBadPath(t *testing.T) {
	snap := diskSnapshotFor("/this/path/does/not/exist/at/all")
	require.NotEmpty(t, snap.Err)

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Len(t, fields, 1, "degraded result carries only the error field")
	assert.NotEmpty(t, fields["error"])
}

func TestGetDiskSnapshot(t *testing.T) {
	snap := GetDiskSnapshot()
	if snap.Err != "" {
		t.Skipf("root volume not queryable here: %s", snap.Err)
	}

	assert.Greater(t, snap.TotalGB, 0.0)
	assert.GreaterOrEqual(t, snap.UsedGB, 0.0)
	assert.GreaterOrEqual(t, snap.FreeGB, 0.0)
	assert.GreaterOrEqual(t, snap.UtilizationPercent, 0.0)
	assert.LessOrEqual(t, snap.UtilizationPercent, 100.0)

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "error")
	for _, key := range []string{"total_gb", "used_gb", "free_gb", "utilization_percent"} {
		assert.Contains(t, fields, key)
	}
}

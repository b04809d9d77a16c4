package testenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanl/halo/pkg/types"
)

func TestResourceID(t *testing.T) {
	id, err := ResourceID("heartbeat/ZFS", types.Params{{Key: "pool", Value: "tank"}})
	require.NoError(t, err)
	assert.Equal(t, "zfs.tank", id)

	id, err = ResourceID("lustre/Lustre", types.Params{
		{Key: "mountpoint", Value: "/mnt/test/ost"},
	})
	require.NoError(t, err)
	assert.Equal(t, "lustre._mnt_test_ost", id)

	_, err = ResourceID("heartbeat/ZFS", nil)
	assert.Error(t, err)

	_, err = ResourceID("heartbeat/IPaddr2", nil)
	assert.Error(t, err)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/tmp/t/agent0.pid", PIDFile("/tmp/t", "agent0"))
	assert.Equal(t, "/tmp/t/agent0.lustre._mnt_test_ost",
		StateFile("/tmp/t", "agent0", "lustre._mnt_test_ost"))
}

package api

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanl/halo/api/proto"
	"github.com/lanl/halo/pkg/cluster"
	"github.com/lanl/halo/pkg/config"
	"github.com/lanl/halo/pkg/log"
	"github.com/lanl/halo/pkg/types"
)

func TestMain(m *testing.M) {
	log.Init(log.Config{Level: log.ErrorLevel})
	os.Exit(m.Run())
}

func testCluster(t *testing.T) *cluster.Cluster {
	t.Helper()
	cfg := &config.Config{
		FailoverPairs: [][]string{{"oss00", "oss01"}},
		Hosts: []config.Host{
			{
				Hostname: "oss00",
				Resources: map[string]config.Resource{
					"pool0": {
						Kind:       "heartbeat/ZFS",
						Parameters: map[string]string{"pool": "tank"},
					},
					"ost0": {
						Kind: "lustre/Lustre",
						Parameters: map[string]string{
							"mountpoint": "/mnt/ost0",
							"target":     "tank/ost0",
						},
						Requires: "pool0",
					},
				},
			},
			{Hostname: "oss01"},
		},
	}
	require.NoError(t, cfg.Validate())

	c, err := cluster.New(cfg, nil)
	require.NoError(t, err)
	return c
}

func TestMonitorSnapshot(t *testing.T) {
	c := testCluster(t)
	c.Groups[0].Root.SetStatus(types.StatusRunningOnHome)
	c.Groups[0].Root.SetCurrentHost("oss00")

	srv := NewServer(c)
	resp, err := srv.Monitor(context.Background(), &proto.MonitorRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Resources, 2)
	require.Len(t, resp.Hosts, 2)

	root := resp.Resources[0]
	assert.Equal(t, "pool0", root.Id)
	assert.Equal(t, "heartbeat/ZFS", root.Kind)
	assert.Equal(t, proto.ResourceState_RESOURCE_STATE_RUNNING_ON_HOME, root.Status)
	assert.Equal(t, "oss00", root.Host)
	require.Len(t, root.Parameters, 1)
	assert.Equal(t, "pool", root.Parameters[0].Key)
	assert.Equal(t, "tank", root.Parameters[0].Value)

	child := resp.Resources[1]
	assert.Equal(t, "ost0", child.Id)
	assert.Equal(t, proto.ResourceState_RESOURCE_STATE_UNKNOWN, child.Status)

	assert.Equal(t, "oss00", resp.Hosts[0].Id)
	assert.Equal(t, "unknown", resp.Hosts[0].State)
	assert.Equal(t, "unknown", resp.Hosts[0].Power)
}

func TestPowerWithoutFenceAgent(t *testing.T) {
	c := testCluster(t)
	srv := NewServer(c)

	// Hosts in this cluster carry no fence agent; power actions must come
	// back as diagnosed failures, not RPC errors.
	resp, err := srv.PowerStatus(context.Background(), &proto.PowerRequest{Host: "oss00"})
	require.NoError(t, err)
	assert.False(t, resp.Ok)
	assert.NotEmpty(t, resp.Detail)

	resp, err = srv.PowerOn(context.Background(), &proto.PowerRequest{Host: "oss00"})
	require.NoError(t, err)
	assert.False(t, resp.Ok)
}

func TestPowerUnknownHost(t *testing.T) {
	c := testCluster(t)
	srv := NewServer(c)

	resp, err := srv.PowerOff(context.Background(), &proto.PowerRequest{Host: "ghost"})
	require.NoError(t, err)
	assert.False(t, resp.Ok)
	assert.Contains(t, resp.Detail, "ghost")
}

func TestMethodName(t *testing.T) {
	assert.Equal(t, "Monitor", methodName("/halo.HaloMgmt/Monitor"))
	assert.Equal(t, "odd", methodName("odd"))
}

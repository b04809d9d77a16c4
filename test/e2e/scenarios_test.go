// Package e2e runs the end-to-end failover scenarios against real manager
// and agent processes. The tests need a compiled binary:
//
//	go build -o /tmp/halo ./cmd/halo
//	HALO_E2E_BIN=/tmp/halo go test ./test/e2e/
//
// Without HALO_E2E_BIN every test skips.
package e2e

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lanl/halo/pkg/client"
	"github.com/lanl/halo/pkg/types"
	"github.com/lanl/halo/test/framework"
)

const ostResource = "lustre._mnt_test_ost"

// singleHostConfig is scenario 1/2's cluster: one agent, one resource.
func singleHostConfig(testID string, port int) string {
	return fmt.Sprintf(`
[[hosts]]
hostname = "localhost:%d"
fence_agent = "fence_test"
fence_parameters = { test_id = %q, target = "test_agent" }

[hosts.resources.%s]
kind = "lustre/Lustre"
parameters = { mountpoint = "/mnt/test/ost", target = "tank/ost" }

[tuning]
tick_interval_seconds = 1
probe_interval_seconds = 1
`, port, testID, ostResource)
}

// pairConfig is the failover pair used by scenarios 3, 4 and 6.
func pairConfig(testID string, homePort, awayPort int) string {
	return fmt.Sprintf(`
failover_pairs = [["localhost:%[1]d", "localhost:%[2]d"]]

[[hosts]]
hostname = "localhost:%[1]d"
fence_agent = "fence_test"
fence_parameters = { test_id = %[3]q, target = "mds00" }

[hosts.resources.%[4]s]
kind = "lustre/Lustre"
parameters = { mountpoint = "/mnt/test/ost", target = "tank/ost" }

[[hosts]]
hostname = "localhost:%[2]d"
fence_agent = "fence_test"
fence_parameters = { test_id = %[3]q, target = "mds01" }

[tuning]
tick_interval_seconds = 1
probe_interval_seconds = 1
failure_threshold = 3
`, homePort, awayPort, testID, ostResource)
}

func startCluster(t *testing.T, env *framework.Env, config string, agents map[string]int) *client.Mgmt {
	t.Helper()

	for id, port := range agents {
		env.StartAgent(id, port)
	}
	env.StartManager(env.WriteConfig(config), true)

	mgmt, err := client.NewMgmt(env.SocketPath())
	require.NoError(t, err)
	t.Cleanup(func() { _ = mgmt.Close() })
	return mgmt
}

// Scenario 1: a stopped resource is started on its home host within two
// ticks.
func TestSimpleStart(t *testing.T) {
	env := framework.New(t, "simple_start")
	defer env.Cleanup()

	mgmt := startCluster(t, env, singleHostConfig(env.TestID, 4420),
		map[string]int{"test_agent": 4420})

	w := framework.DefaultWaiter()
	require.NoError(t, w.WaitForResourceStatus(context.Background(), mgmt,
		ostResource, types.StatusRunningOnHome))
	require.True(t, env.StateFileExists("test_agent", ostResource))
}

// Scenario 2: a resource dying behind the manager's back is observed
// stopped and restarted.
func TestRestartAfterExternalStop(t *testing.T) {
	env := framework.New(t, "restart")
	defer env.Cleanup()

	mgmt := startCluster(t, env, singleHostConfig(env.TestID, 4421),
		map[string]int{"test_agent": 4421})

	w := framework.DefaultWaiter()
	ctx := context.Background()
	require.NoError(t, w.WaitForResourceStatus(ctx, mgmt, ostResource, types.StatusRunningOnHome))

	env.RemoveStateFile("test_agent", ostResource)

	require.NoError(t, w.WaitForResourceStatus(ctx, mgmt, ostResource, types.StatusRunningOnHome))
	require.True(t, env.StateFileExists("test_agent", ostResource))
}

// Scenario 3: killing the home agent fails the resource over: the host is
// demoted, fenced, and the resource restarts on the away host.
func TestFailoverOnAgentLoss(t *testing.T) {
	env := framework.New(t, "failover")
	defer env.Cleanup()

	agents := map[string]int{"mds00": 4422, "mds01": 4423}
	mgmt := startCluster(t, env, pairConfig(env.TestID, 4422, 4423), agents)

	w := framework.DefaultWaiter()
	ctx := context.Background()
	require.NoError(t, w.WaitForResourceStatus(ctx, mgmt, ostResource, types.StatusRunningOnHome))

	// Crash the home agent. Its pid file stays behind, so the fence agent
	// can still "power it off".
	home := env.Process("mds00")
	home.Kill()

	require.NoError(t, w.WaitForHostState(ctx, mgmt, "mds00", types.HostFenced))
	require.NoError(t, w.WaitForResourceStatus(ctx, mgmt, ostResource, types.StatusRunningOnAway))
	require.True(t, env.StateFileExists("mds01", ostResource))
}

// Scenario 4: when fencing the dead home host fails, the resource becomes
// unrunnable and is not started anywhere.
func TestFenceFailureIsFatal(t *testing.T) {
	env := framework.New(t, "fence_fatal")
	defer env.Cleanup()

	agents := map[string]int{"mds00": 4424, "mds01": 4425}
	mgmt := startCluster(t, env, pairConfig(env.TestID, 4424, 4425), agents)

	w := framework.DefaultWaiter()
	ctx := context.Background()
	require.NoError(t, w.WaitForResourceStatus(ctx, mgmt, ostResource, types.StatusRunningOnHome))

	env.Process("mds00").Kill()
	// An unkillable pid makes every fence attempt fail.
	env.BreakFencing("mds00")

	require.NoError(t, w.WaitForResourceStatus(ctx, mgmt, ostResource, types.StatusUnrunnable))
	require.False(t, env.StateFileExists("mds01", ostResource),
		"resource must not start on the away host without fencing home")
}

// Scenario 5: a child resource starts only after its parent runs, and stops
// before it.
func TestDependencyOrdering(t *testing.T) {
	env := framework.New(t, "deps")
	defer env.Cleanup()

	config := fmt.Sprintf(`
[[hosts]]
hostname = "localhost:4426"
fence_agent = "fence_test"
fence_parameters = { test_id = %q, target = "test_agent" }

[hosts.resources."zfs.tank"]
kind = "heartbeat/ZFS"
parameters = { pool = "tank" }

[hosts.resources.%q]
kind = "lustre/Lustre"
parameters = { mountpoint = "/mnt/test/ost", target = "tank/ost" }
requires = "zfs.tank"

[tuning]
tick_interval_seconds = 1
`, env.TestID, ostResource)

	mgmt := startCluster(t, env, config, map[string]int{"test_agent": 4426})

	w := framework.DefaultWaiter()
	ctx := context.Background()
	require.NoError(t, w.WaitForResourceStatus(ctx, mgmt, ostResource, types.StatusRunningOnHome))

	// The action log orders operations: the pool must start before the
	// target.
	log := env.ActionLog()
	require.Less(t,
		indexOf(t, log, "zfs start pool=tank"),
		indexOf(t, log, "lustre start mountpoint=/mnt/test/ost target=tank/ost"),
		"parent must start before child")

	// Tear down: the manager goes away first so it cannot restart what the
	// stop command takes down, then the stop walks children before
	// parents.
	env.Process("manager").Stop()
	require.NoError(t, env.Run("stop", "--config", env.ConfigPath()))

	log = env.ActionLog()
	require.Less(t,
		indexOf(t, log, "lustre stop mountpoint=/mnt/test/ost target=tank/ost"),
		indexOf(t, log, "zfs stop pool=tank"),
		"child must stop before parent")
	require.False(t, env.StateFileExists("test_agent", "zfs.tank"))
	require.False(t, env.StateFileExists("test_agent", ostResource))
}

// Scenario 6: a resource running on both hosts is detected and resolved in
// favor of home.
func TestSplitBrainPrevention(t *testing.T) {
	env := framework.New(t, "split_brain")
	defer env.Cleanup()

	// Pre-create the resource on both agents before the manager starts.
	env.CreateStateFile("mds00", ostResource)
	env.CreateStateFile("mds01", ostResource)

	agents := map[string]int{"mds00": 4427, "mds01": 4428}
	mgmt := startCluster(t, env, pairConfig(env.TestID, 4427, 4428), agents)

	w := framework.DefaultWaiter()
	ctx := context.Background()
	require.NoError(t, w.WaitForResourceStatus(ctx, mgmt, ostResource, types.StatusRunningOnHome))

	require.NoError(t, w.WaitFor(ctx, func() bool {
		return env.StateFileExists("mds00", ostResource) &&
			!env.StateFileExists("mds01", ostResource)
	}, "exactly one copy to survive"))
}

func indexOf(t *testing.T, lines []string, want string) int {
	t.Helper()
	for i, line := range lines {
		if line == want {
			return i
		}
	}
	t.Fatalf("line %q not found in action log %v", want, lines)
	return -1
}

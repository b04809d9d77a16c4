/*
Package ocf executes OCF (Open Cluster Framework) resource agent scripts.

An OCF resource agent is a script installed under ${OCF_ROOT}/resource.d/
(for example lustre/Lustre or heartbeat/ZFS) that is invoked with a single
action argument (monitor, start, or stop) and receives its parameters as
OCF_RESKEY_<key> environment variables. The return code carries the result:
0 means success (for monitor: running), 7 means not running, and everything
else is a failure.

The invoker is the lowest layer of the control plane: it is stateless, never
retries, and maps exactly one call to one subprocess.

# Execution Contract

	inv := ocf.NewInvoker("", "")
	code, err := inv.Do(ctx, "lustre/Lustre", ocf.ActionMonitor, types.Params{
		{Key: "mountpoint", Value: "/mnt/ost0"},
		{Key: "target", Value: "tank/ost0"},
	})

  - The script runs with a minimal environment: PATH, OCF_ROOT,
    HALO_TEST_ID (the process ID when no test ID is set), the other HALO
    test variables when set, and one OCF_RESKEY_ variable per parameter, in
    parameter order.
  - monitor has a 10 second budget; start and stop have 30 seconds. On
    expiry the child is killed and reaped and ErrTimeout is returned with
    the captured stderr.
  - A script that cannot be spawned at all yields ErrUnavailable.
  - Non-zero exits are not errors: they come back as Codes so callers can
    distinguish NotRunning from real faults. Exit statuses outside the OCF
    table collapse to ErrUnimplemented with a warning.

# Integration Points

pkg/agent dispatches every remote operation through an Invoker; nothing else
in the control plane spawns resource agents.
*/
package ocf

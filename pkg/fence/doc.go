/*
Package fence forces a misbehaving host into a known power state.

Fencing is the safety mechanism that makes failover sound: before a resource
is started on its failover host, the previous owner must either confirm the
resource stopped or be powered off so it cannot keep serving. Each host is
configured with one fence agent (powerman, redfish, or the test-environment
fence_test) and this package runs that agent as a subprocess, feeding it
key=value arguments on stdin the way stonith-style agents expect.

# Operations

	Status(host)  →  on / off / unknown (parsed from "is ON" / "is OFF")
	On(host)      →  single power-on attempt
	Off(host)     →  single power-off attempt
	OffWithRetry  →  off with exponential backoff: 500ms base, ×2, 8s cap,
	                 4 attempts, then ErrFatal

ErrFatal is the point of no return: the host could not be confirmed off, so
any resource believed to live there becomes unrunnable rather than risk a
split-brain start elsewhere. Only an operator clears that condition.

# Test Environment

fence_test simulates power control for a remote agent process: "off" kills
the agent by the PID recorded in <test_dir>/<target>.pid and removes the pid
file, leaving the agent's resource state files in place; "status" reports
on/off from the pid file's existence. Its
target parameter doubles as the host's unique ID in tests, where every agent
shares the same hostname.

# Integration Points

Only pkg/host runs fence actions (pkg/cluster just constructs the agents);
serializing fence actions per host is the tracker's job, not the agent's.
*/
package fence

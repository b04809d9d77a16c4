/*
Package agent implements the remote agent that runs on every managed host.

The agent is deliberately thin: it exposes one RPC, Operation(resource, op,
args), and turns each call into one OCF resource agent subprocess via
pkg/ocf. All cluster intelligence stays on the manager; the agent's only
responsibilities are dispatch, per-resource ordering, and honest error
classification.

# Ordering

	                     ┌─ queue["ost0"] ─ worker ─▶ one script at a time
	Operation RPC ──────▶┤
	                     └─ queue["mdt0"] ─ worker ─▶ runs in parallel

Operations carrying the same resource identifier execute strictly
sequentially in arrival order; operations for different resources run
concurrently. Queues are created lazily on first reference and persist for
the process lifetime. The engine relies on this: a stop it issued cannot be
overtaken by an earlier slow monitor for the same resource.

# Error Classification

A subprocess that ran and exited reports its OCF code in the response, even
when non-zero: the manager needs to distinguish "script says not running"
(code 7) from "script failed" (other codes). A subprocess that could not run
(spawn failure, timeout) reports an error string in the response. Transport
and internal faults are the only things surfaced as RPC errors, because the
manager treats those as evidence about host liveness.

In-flight scripts are never cancelled when a caller gives up waiting:
interrupting a start midway could leave the resource half-configured, so the
operation always runs to completion or to its own timeout.

# Startup

The agent binds to the first interface address inside the management network
CIDR (HALO_NET / --network) and fails with a pointed error when no interface
matches. Under the test environment it first writes its pid to
<test_dir>/<agent_id>.pid. The test fence agent "powers hosts off" by that
file, so an agent that cannot write it refuses to serve. mTLS is enabled
when the HALO_SERVER_CERT / HALO_SERVER_KEY environment is present.
*/
package agent

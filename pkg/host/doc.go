/*
Package host tracks the manager's view of every managed host and owns all
fence actions against them.

For each host the tracker maintains reachability (derived from RPC round-trip
results), power state (as last reported by the fence agent), and a fatal flag
set when fencing itself fails. It is the single coordinator for host-state
mutation: engines and the prober report observations, the management API
reads snapshots, and nothing outside this package invokes a fence agent.

# State Machine

	Unknown ──── first successful RPC ────────────▶ Reachable
	Reachable ── consecutive RPC failures ≥ N ────▶ Unreachable
	Unreachable ─ fence off confirmed ────────────▶ Fenced
	Fenced ────── fence on ok ────────────────────▶ PoweringOn
	PoweringOn ── next successful RPC ────────────▶ Reachable
	Fenced ────── fence on fails persistently ────▶ Unknown (fatal)

Reachable→Unreachable and Unreachable→Fenced are the only transitions that
may relocate resources. The consecutive-failure threshold N (default 3) and
the probe interval (default 5s) are tunables; exactly N failures demote a
host, N−1 do not.

A host that answers an RPC while Fenced is an inconsistency, not a recovery:
the tracker keeps it Fenced and logs, and it stays Fenced until PowerOn.

# Fencing

EnsureFenced is the safety primitive the engine leans on before any failover
start: it is idempotent for already-Fenced hosts, serializes fence
subprocesses per host, retries power-off per the fence policy, and on
exhaustion marks the host fatal; from then on resources believed to live
there are unrunnable until an operator intervenes. PowerOn deliberately does
not hand resources back to a recovered host; the next engine tick decides
placement on its own schedule.

# Concurrency

The host table sits behind one coarse lock; reads copy fields out. Fence
subprocesses run outside the table lock, serialized by a per-host mutex, so
a slow fence agent never stalls unrelated status queries.
*/
package host

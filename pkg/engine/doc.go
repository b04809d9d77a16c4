/*
Package engine is the resource group state machine at the heart of HALO.

One engine owns one resource group, a dependency tree of OCF resources that
share a failover pair, and drives it with a periodic tick. Everything the
manager does to keep storage alive happens inside a tick; across ticks the
engine holds no hidden state beyond each resource's observed status.

# Tick Structure

	┌──────────────────────── TICK (every 2s) ───────────────────────┐
	│                                                                 │
	│  PROBE    monitor each resource on its assumed host; probe the  │
	│           peer too when reachable, so a split brain is seen     │
	│              OCF 0 → RunningOnHome / RunningOnAway              │
	│              OCF 7 → Stopped                                    │
	│              transport fault → Unknown, counted by the tracker  │
	│                                                                 │
	│  DECIDE   per resource:                                         │
	│              ancestor not running        → target Stopped       │
	│              home reachable & not fenced → target home          │
	│              else away, same condition   → target away          │
	│              neither                     → Unrunnable           │
	│           a resource already running on a trusted host stays    │
	│           put: there is no automatic failback                   │
	│                                                                 │
	│  ACT      stops post-order, starts pre-order:                   │
	│              stop → on success Stopped; on failure the host is  │
	│                     fenced; stop is never best effort           │
	│              start → peer must confirm OCF 7 first; an          │
	│                     unreachable peer is fenced BEFORE the       │
	│                     start RPC is issued                         │
	└─────────────────────────────────────────────────────────────────┘

# Invariants

At every tick boundary:

  - No resource is RunningOnHome and RunningOnAway at once. A violation is
    an anomaly event, and the away copy is stopped (home wins) or its host
    fenced.
  - A running resource has all ancestors running. Violations are logged and
    the stop pass corrects children before parents.
  - A resource (re)started on host H while its prior host P is not known
    stopped sees P fenced before the start RPC; the fence events precede the
    start event in the log.

# Failure Policy

Transport and timeout faults are absorbed locally: they feed the host
tracker's consecutive-failure count and leave the resource Unknown, keeping
its assumed host so a later relocation fences it first. A start that fails
with a non-zero OCF code is retried once on the peer, then the resource is
Unrunnable. A fatal fence failure makes every dependent resource Unrunnable
until an operator intervenes.

# Modes

With manage off (the default) the engine only observes: probes run and
status is recorded, but no start, stop, or fence is ever issued. StopAll
implements deliberate teardown, walking the tree post-order so children
reach Stopped before their parent's stop RPC goes out.

# Concurrency

A group's engine is the sole writer of its resources' observed state; ticks
are serialized on the engine goroutine. Engines of different groups run in
parallel and share only the host tracker (which serializes fencing) and the
agent client.
*/
package engine

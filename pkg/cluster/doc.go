/*
Package cluster builds and holds the in-memory model of the managed cluster.

The configuration file views a cluster as hosts that own resources; the
control plane is more comfortable with the inverse: resources that know which
hosts they may run on. This package performs that inversion once at startup,
producing two flat tables, hosts in the tracker and resources in dependency
trees, that reference each other only by stable identifier. Identifier
lookups instead of owning pointers is what keeps the Host↔Resource cycle out
of the object graph.

# Model

	Cluster
	├── Tracker            host table (pkg/host), keyed by host ID
	└── Groups             one per dependency-tree root
	    └── Resource       kind, ordered params, home/away hosts,
	        └── Children   observed status + epoch (engine-owned)

Each resource names its home host and, when the host belongs to a failover
pair, the partner as its away host. A host's unique ID is its hostname,
except in the test environment, where all agents share one hostname and the
fence target provides the identity instead.

Groups order their members: Resources() walks pre-order (start order),
ResourcesPostOrder() walks post-order (stop order), and OverallStatus() is
the worst member status, so one stopped member makes the whole group read
stopped.

Ownership after construction: identity fields are immutable; observed fields
of each resource are mutated only by the engine that drives its group, and
Snapshot() hands copies to the management API.
*/
package cluster

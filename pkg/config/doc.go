/*
Package config loads and validates the HALO cluster configuration.

The configuration is a TOML file describing the managed hosts, the resources
each host is home to, the failover pairing between hosts, and the fence agent
used to power-control each host. It is read exactly once at startup, validated
eagerly, and from then on treated as an immutable snapshot shared read-only by
every component; nothing in HALO mutates configuration at runtime, and the
running cluster state is rebuilt from probes rather than persisted.

# Configuration File

	failover_pairs = [["mds00", "mds01"]]

	[[hosts]]
	hostname = "mds00"
	fence_agent = "powerman"

	[hosts.resources.pool0]
	kind = "heartbeat/ZFS"
	parameters = { pool = "mdt0pool" }

	[hosts.resources.mdt0]
	kind = "lustre/Lustre"
	parameters = { mountpoint = "/mnt/mdt0", target = "mdt0pool/mdt0" }
	requires = "pool0"

	[[hosts]]
	hostname = "mds01"
	fence_agent = "powerman"

	[tuning]
	tick_interval_seconds = 2
	failure_threshold = 3

Each resource may declare a single "requires" dependency on another resource
of the same host; the chains form the dependency trees that pkg/cluster turns
into resource groups. Validation rejects dangling dependencies, dependency
cycles, malformed failover pairs, and fence agents missing their required
parameters; a ValidationError aborts the process before the main loop starts.

# Environment

Defaults come from the environment so test harnesses and packaging can
relocate everything without flags:

	HALO_CONFIG          config path         (/etc/halo/halo.conf)
	HALO_SOCKET          management socket   (/var/run/halo.socket)
	HALO_PORT            remote agent port   (8000)
	HALO_NET             management network  (192.168.1.0/24)
	HALO_{SERVER,CLIENT}_{CERT,KEY}, HALO_CA_CERT
	                     mTLS material; unset disables TLS
	HALO_TEST_DIRECTORY, HALO_TEST_LOG, HALO_TEST_ID, OCF_ROOT
	                     test environment only
*/
package config

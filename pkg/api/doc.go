/*
Package api implements the manager's local control surface.

The HaloMgmt gRPC service is served on a unix domain socket
(/var/run/halo.socket by default) for the CLI. It has exactly four methods
and none of them touch live engine state directly:

	Monitor      cluster snapshot: every resource with its ordered
	             parameters and status, every host with state and power
	PowerStatus  host power state via its fence agent
	PowerOff     fence a host (same EnsureFenced path the engines use)
	PowerOn      restore power; placement waits for the next engine tick

Status reads go through Cluster.Snapshot(), which copies resource and host
state out from behind their owners' locks, so the management server can never
block or race an engine mid-tick. Power writes relay into the host tracker,
which serializes fence actions per host.

The socket is local and guarded by filesystem permissions; unlike the
manager↔agent channel there is no TLS here. A unary interceptor counts
requests by method and status for the metrics endpoint.
*/
package api

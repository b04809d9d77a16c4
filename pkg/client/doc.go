/*
Package client implements the two gRPC client surfaces of HALO.

Agents is the manager→remote channel: it issues OCF resource operations
against the agents on managed hosts, caching one connection per address.
Transport security follows the environment: when HALO_CLIENT_CERT and
HALO_CLIENT_KEY are set the channel is mTLS (TLS 1.3, CA from HALO_CA_CERT),
otherwise plaintext for the test environment's loopback network.

The two failure classes a caller must tell apart are kept apart here:

  - A transport fault (dial, deadline, broken stream) returns a plain error.
    The engine counts those against the host's liveness.
  - An error string reported by a live agent (the resource script could not
    be spawned, or timed out) returns *ocf.RemoteError. The host answered,
    so its liveness is fine; the resource is what faulted.

Ping is the lighter liveness check used by the host prober: a TCP round trip
to the agent's listener, touching no resource.

Mgmt is the CLI→manager channel over the local unix socket: Monitor returns
the cluster snapshot, and the Power methods relay fence actions. The socket
is permission-guarded and local, so this channel carries no TLS.
*/
package client

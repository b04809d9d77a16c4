/*
Package metrics exposes Prometheus instrumentation for the HALO manager.

Collectors cover the four things an operator of an HA cluster watches:
where every resource is (halo_resource_status), how the hosts are doing
(halo_host_state, halo_rpc_failures_total), whether fencing is happening
(halo_fence_commands_total), and whether the control loop itself is healthy
(halo_tick_duration_seconds, halo_operations_total, halo_api_requests_total).

All collectors are registered in init(); components update them directly.
The manager serves Handler() when started with --metrics-addr.

	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.TickDuration.WithLabelValues(group))

State gauges are label-per-value: SetResourceStatus and SetHostState set the
active label to 1 and the rest to 0 so dashboards can group by status without
decoding enum numbers.
*/
package metrics

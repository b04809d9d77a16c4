package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Resource metrics
	ResourceStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "halo_resource_status",
			Help: "Current status of each managed resource (1 for the active status label)",
		},
		[]string{"resource", "status"},
	)

	ResourceTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "halo_resource_transitions_total",
			Help: "Total observed resource status transitions",
		},
		[]string{"resource"},
	)

	// Host metrics
	HostState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "halo_host_state",
			Help: "Current state of each managed host (1 for the active state label)",
		},
		[]string{"host", "state"},
	)

	RPCFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "halo_rpc_failures_total",
			Help: "Total remote agent RPC failures by host",
		},
		[]string{"host"},
	)

	// Fencing metrics
	FenceCommandsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "halo_fence_commands_total",
			Help: "Total fence agent invocations by command and result",
		},
		[]string{"command", "result"},
	)

	// Engine metrics
	TickDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "halo_tick_duration_seconds",
			Help:    "Resource group tick duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"group"},
	)

	OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "halo_operations_total",
			Help: "Total resource operations issued by the engine, by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// Management API metrics
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "halo_api_requests_total",
			Help: "Total management API requests by method and status",
		},
		[]string{"method", "status"},
	)
)

func init() {
	prometheus.MustRegister(ResourceStatus)
	prometheus.MustRegister(ResourceTransitionsTotal)
	prometheus.MustRegister(HostState)
	prometheus.MustRegister(RPCFailuresTotal)
	prometheus.MustRegister(FenceCommandsTotal)
	prometheus.MustRegister(TickDuration)
	prometheus.MustRegister(OperationsTotal)
	prometheus.MustRegister(APIRequestsTotal)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// SetResourceStatus points the per-resource status gauge at the named status,
// clearing the other status labels for that resource.
func SetResourceStatus(resource string, statuses []string, active string) {
	for _, s := range statuses {
		v := 0.0
		if s == active {
			v = 1.0
		}
		ResourceStatus.WithLabelValues(resource, s).Set(v)
	}
}

// SetHostState points the per-host state gauge at the named state, clearing
// the other state labels for that host.
func SetHostState(host string, states []string, active string) {
	for _, s := range states {
		v := 0.0
		if s == active {
			v = 1.0
		}
		HostState.WithLabelValues(host, s).Set(v)
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the cluster configuration, loaded once at startup and treated as
// an immutable snapshot from then on.
type Config struct {
	Hosts         []Host     `toml:"hosts"`
	FailoverPairs [][]string `toml:"failover_pairs"`
	Tuning        Tuning     `toml:"tuning"`
}

// Host describes one managed host and the resources it is home to.
type Host struct {
	// Hostname may carry an explicit port as "name:port"; otherwise the
	// port defaults to RemotePort().
	Hostname string `toml:"hostname"`

	// Resources is keyed by a unique resource identifier.
	Resources map[string]Resource `toml:"resources"`

	// FenceAgent names the fence agent used to fence this host
	// ("powerman", "redfish", or "fence_test"). Empty means the host
	// cannot be fenced.
	FenceAgent string `toml:"fence_agent"`

	// FenceParameters are agent-specific parameters.
	FenceParameters map[string]string `toml:"fence_parameters"`
}

// Resource describes one managed resource.
type Resource struct {
	// Kind is an OCF resource agent identifier such as "heartbeat/ZFS"
	// or "lustre/Lustre".
	Kind string `toml:"kind"`

	// Parameters are passed to the OCF resource agent.
	Parameters map[string]string `toml:"parameters"`

	// Requires names a resource that must be started before this one.
	// At most one dependency per resource.
	Requires string `toml:"requires"`
}

// Tuning holds the control-loop tunables. Zero values take the defaults.
type Tuning struct {
	TickIntervalSeconds  int `toml:"tick_interval_seconds"`
	ProbeIntervalSeconds int `toml:"probe_interval_seconds"`
	FailureThreshold     int `toml:"failure_threshold"`
	RPCTimeoutSeconds    int `toml:"rpc_timeout_seconds"`
}

const (
	DefaultTickInterval     = 2 * time.Second
	DefaultProbeInterval    = 5 * time.Second
	DefaultFailureThreshold = 3
	DefaultRPCTimeout       = 10 * time.Second
)

// TickInterval returns the engine tick interval.
func (t Tuning) TickInterval() time.Duration {
	if t.TickIntervalSeconds > 0 {
		return time.Duration(t.TickIntervalSeconds) * time.Second
	}
	return DefaultTickInterval
}

// ProbeInterval returns the host liveness probe interval.
func (t Tuning) ProbeInterval() time.Duration {
	if t.ProbeIntervalSeconds > 0 {
		return time.Duration(t.ProbeIntervalSeconds) * time.Second
	}
	return DefaultProbeInterval
}

// Threshold returns the consecutive RPC failure count that demotes a host.
func (t Tuning) Threshold() int {
	if t.FailureThreshold > 0 {
		return t.FailureThreshold
	}
	return DefaultFailureThreshold
}

// RPCTimeout returns the per-call RPC deadline.
func (t Tuning) RPCTimeout() time.Duration {
	if t.RPCTimeoutSeconds > 0 {
		return time.Duration(t.RPCTimeoutSeconds) * time.Second
	}
	return DefaultRPCTimeout
}

// ValidationError reports malformed or inconsistent configuration. It aborts
// startup before the main loop is entered.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Detail)
}

func invalid(format string, args ...any) error {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}

// Load reads, parses and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open config file %q: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if len(c.Hosts) == 0 {
		return invalid("no hosts defined")
	}

	// Hosts are identified by their full hostname string, port included:
	// in the test environment several hosts share one name and differ
	// only by port.
	hostnames := make(map[string]bool)
	for _, h := range c.Hosts {
		if _, _, err := SplitHostPort(h.Hostname); err != nil {
			return err
		}
		if hostnames[h.Hostname] {
			return invalid("duplicate host %q", h.Hostname)
		}
		hostnames[h.Hostname] = true

		if err := validateFence(h); err != nil {
			return err
		}
		if err := validateResources(h); err != nil {
			return err
		}
	}

	for _, pair := range c.FailoverPairs {
		if len(pair) != 2 {
			return invalid("failover pair %v must name exactly two hosts", pair)
		}
		for _, name := range pair {
			if !hostnames[name] {
				return invalid("failover pair names unknown host %q", name)
			}
		}
		if pair[0] == pair[1] {
			return invalid("host %q cannot be its own failover partner", pair[0])
		}
	}

	return nil
}

func validateFence(h Host) error {
	switch h.FenceAgent {
	case "", "powerman":
		return nil
	case "redfish":
		for _, key := range []string{"username", "password"} {
			if _, ok := h.FenceParameters[key]; !ok {
				return invalid("host %q: redfish fence agent needs parameter %q", h.Hostname, key)
			}
		}
		return nil
	case "fence_test":
		for _, key := range []string{"test_id", "target"} {
			if _, ok := h.FenceParameters[key]; !ok {
				return invalid("host %q: test fence agent needs parameter %q", h.Hostname, key)
			}
		}
		return nil
	default:
		return invalid("host %q: unknown fence agent %q", h.Hostname, h.FenceAgent)
	}
}

func validateResources(h Host) error {
	for id, res := range h.Resources {
		if res.Kind == "" {
			return invalid("resource %q on host %q has no kind", id, h.Hostname)
		}
		if res.Requires != "" {
			if _, ok := h.Resources[res.Requires]; !ok {
				return invalid("resource %q requires unknown resource %q", id, res.Requires)
			}
		}
	}

	// Reject dependency cycles by walking each requires chain. Chains are
	// single-parent, so a cycle shows up as a revisited node.
	for id := range h.Resources {
		seen := map[string]bool{id: true}
		cur := h.Resources[id].Requires
		for cur != "" {
			if seen[cur] {
				return invalid("resource %q is part of a dependency cycle", id)
			}
			seen[cur] = true
			cur = h.Resources[cur].Requires
		}
	}

	return nil
}

// SplitHostPort splits a "name:port" hostname into its parts. A missing port
// defaults to RemotePort().
func SplitHostPort(hostname string) (string, int, error) {
	if hostname == "" {
		return "", 0, invalid("empty hostname")
	}
	name, portStr, found := strings.Cut(hostname, ":")
	if !found {
		return name, RemotePort(), nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return "", 0, invalid("host %q: bad port %q", name, portStr)
	}
	return name, port, nil
}

package cluster

import (
	"fmt"
	"sort"

	"github.com/lanl/halo/pkg/config"
	"github.com/lanl/halo/pkg/events"
	"github.com/lanl/halo/pkg/fence"
	"github.com/lanl/halo/pkg/host"
	"github.com/lanl/halo/pkg/types"
)

// Cluster is the in-memory model of the managed cluster: the host table and
// the resource groups, both built once from configuration. Hosts and
// resources reference each other by identifier, never by pointer, so the two
// tables stay independently owned.
type Cluster struct {
	Groups  []*Group
	Tracker *host.Tracker
	Tuning  config.Tuning
}

// New builds the cluster model from a validated configuration.
func New(cfg *config.Config, broker *events.Broker) (*Cluster, error) {
	tracker := host.NewTracker(cfg.Tuning.Threshold(), broker)

	// First pass: resolve every host's identity so failover pairs can be
	// mapped to host IDs regardless of declaration order. The map key is
	// the full hostname string, port included, because test-environment
	// hosts share one name.
	ids := make(map[string]string) // config hostname -> host ID
	agents := make(map[string]*fence.Agent)
	addrs := make(map[string]string)
	for _, h := range cfg.Hosts {
		name, port, err := config.SplitHostPort(h.Hostname)
		if err != nil {
			return nil, err
		}

		var agent *fence.Agent
		if h.FenceAgent != "" {
			agent, err = fence.New(h.FenceAgent, h.FenceParameters)
			if err != nil {
				return nil, fmt.Errorf("host %q: %w", name, err)
			}
		}

		// In the test environment every agent shares one hostname, so the
		// fence target is the only unique identity a host has.
		id := name
		if agent != nil {
			if target, ok := agent.Target(); ok {
				id = target
			}
		}

		if _, dup := addrs[id]; dup {
			return nil, &config.ValidationError{Detail: fmt.Sprintf("duplicate host id %q", id)}
		}
		ids[h.Hostname] = id
		agents[id] = agent
		addrs[id] = fmt.Sprintf("%s:%d", name, port)
	}

	for id, addr := range addrs {
		// A typed nil must not reach the tracker's interface field.
		if agents[id] != nil {
			tracker.Add(id, addr, agents[id])
		} else {
			tracker.Add(id, addr, nil)
		}
	}

	c := &Cluster{Tracker: tracker, Tuning: cfg.Tuning}

	for _, h := range cfg.Hosts {
		home := ids[h.Hostname]
		away := ""
		if partner := failoverPartner(cfg.FailoverPairs, h.Hostname); partner != "" {
			away = ids[partner]
		}

		groups, err := buildGroups(h, home, away)
		if err != nil {
			return nil, err
		}
		c.Groups = append(c.Groups, groups...)
	}

	return c, nil
}

// failoverPartner returns the other member of name's failover pair, if any.
func failoverPartner(pairs [][]string, name string) string {
	for _, pair := range pairs {
		if name == pair[0] {
			return pair[1]
		}
		if name == pair[1] {
			return pair[0]
		}
	}
	return ""
}

// buildGroups turns one host's resource table into dependency trees, one
// group per root. Children are attached in sorted ID order so the walk
// order is stable across runs.
func buildGroups(h config.Host, home, away string) ([]*Group, error) {
	built := make(map[string]*Resource, len(h.Resources))
	for id, res := range h.Resources {
		built[id] = &Resource{
			ID:       id,
			Kind:     res.Kind,
			Params:   types.ParamsFromMap(res.Parameters),
			HomeHost: home,
			AwayHost: away,
		}
	}

	ids := make([]string, 0, len(built))
	for id := range built {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var roots []*Resource
	for _, id := range ids {
		res := built[id]
		requires := h.Resources[id].Requires
		if requires == "" {
			roots = append(roots, res)
			continue
		}
		parent := built[requires]
		res.parent = parent
		parent.Children = append(parent.Children, res)
	}

	groups := make([]*Group, 0, len(roots))
	for _, root := range roots {
		groups = append(groups, &Group{Name: root.ID, Root: root})
	}
	return groups, nil
}

// Resources returns every resource across all groups in group order.
func (c *Cluster) Resources() []*Resource {
	var out []*Resource
	for _, g := range c.Groups {
		out = append(out, g.Resources()...)
	}
	return out
}

// Snapshot copies the full cluster status for the management API.
func (c *Cluster) Snapshot() types.ClusterSnapshot {
	resources := c.Resources()
	snap := types.ClusterSnapshot{
		Resources: make([]types.ResourceSnapshot, 0, len(resources)),
		Hosts:     c.Tracker.Snapshot(),
	}
	for _, r := range resources {
		snap.Resources = append(snap.Resources, r.Snapshot())
	}
	return snap
}

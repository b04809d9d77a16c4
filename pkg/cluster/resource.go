package cluster

import (
	"sync"

	"github.com/lanl/halo/pkg/metrics"
	"github.com/lanl/halo/pkg/types"
)

var statusLabels = []string{
	types.StatusUnknown.String(),
	types.StatusUnrunnable.String(),
	types.StatusStopped.String(),
	types.StatusCheckingAway.String(),
	types.StatusCheckingHome.String(),
	types.StatusRunningOnAway.String(),
	types.StatusRunningOnHome.String(),
}

// Resource is one managed unit: an OCF resource agent instance with a
// placement policy and an observed status.
//
// The identity fields (ID, Kind, Params, placement, tree edges) are set at
// construction and never change. The observed fields (status, current host,
// epoch) are owned by the engine that drives the resource's group; the
// embedded mutex makes reads from the management snapshot path safe, it does
// not license other writers.
type Resource struct {
	ID     string
	Kind   string
	Params types.Params

	// HomeHost is where the resource prefers to run; AwayHost is its
	// failover target, "" when the resource is not highly available.
	HomeHost string
	AwayHost string

	Children []*Resource
	parent   *Resource

	mu      sync.Mutex
	status  types.ResourceStatus
	current string
	epoch   uint64
}

// Parent returns the resource this one depends on, or nil for a root.
func (r *Resource) Parent() *Resource {
	return r.parent
}

// Status returns the observed status.
func (r *Resource) Status() types.ResourceStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// SetStatus records an observed status transition. The epoch advances on
// every change. It returns the previous status and whether anything changed.
func (r *Resource) SetStatus(status types.ResourceStatus) (types.ResourceStatus, bool) {
	r.mu.Lock()
	old := r.status
	if old == status {
		r.mu.Unlock()
		return old, false
	}
	r.status = status
	r.epoch++
	r.mu.Unlock()

	metrics.SetResourceStatus(r.ID, statusLabels, status.String())
	metrics.ResourceTransitionsTotal.WithLabelValues(r.ID).Inc()
	return old, true
}

// CurrentHost returns the host the resource is believed to run on, "" when
// it is not believed to run anywhere.
func (r *Resource) CurrentHost() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// SetCurrentHost records where the resource is believed to run.
func (r *Resource) SetCurrentHost(host string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = host
}

// Running reports whether the resource is observed running on either host.
func (r *Resource) Running() bool {
	return r.Status().Running()
}

// HighAvailability reports whether the resource has a failover host.
func (r *Resource) HighAvailability() bool {
	return r.AwayHost != ""
}

// HostFor maps a location to the corresponding host ID.
func (r *Resource) HostFor(loc types.Location) string {
	if loc == types.LocationAway {
		return r.AwayHost
	}
	return r.HomeHost
}

// LocationOf maps a host ID back to a location. The second return is false
// when the host is neither home nor away for this resource.
func (r *Resource) LocationOf(hostID string) (types.Location, bool) {
	switch hostID {
	case r.HomeHost:
		return types.LocationHome, true
	case r.AwayHost:
		if r.AwayHost != "" {
			return types.LocationAway, true
		}
	}
	return types.LocationHome, false
}

// Peer returns the other member of the failover pair relative to hostID,
// or "" when there is none.
func (r *Resource) Peer(hostID string) string {
	if hostID == r.HomeHost {
		return r.AwayHost
	}
	if hostID == r.AwayHost {
		return r.HomeHost
	}
	return ""
}

// Snapshot copies the resource's observable state.
func (r *Resource) Snapshot() types.ResourceSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	params := make(types.Params, len(r.Params))
	copy(params, r.Params)
	return types.ResourceSnapshot{
		ID:     r.ID,
		Kind:   r.Kind,
		Params: params,
		Status: r.status,
		Host:   r.current,
		Epoch:  r.epoch,
	}
}

// Group is an ordered dependency tree of resources. A child may run only
// while its parent runs; starts walk the tree pre-order, stops post-order.
type Group struct {
	Name string
	Root *Resource
}

// Resources returns the group's resources in start (pre-) order.
func (g *Group) Resources() []*Resource {
	var out []*Resource
	var walk func(r *Resource)
	walk = func(r *Resource) {
		out = append(out, r)
		for _, c := range r.Children {
			walk(c)
		}
	}
	walk(g.Root)
	return out
}

// ResourcesPostOrder returns the group's resources in stop (post-) order.
func (g *Group) ResourcesPostOrder() []*Resource {
	var out []*Resource
	var walk func(r *Resource)
	walk = func(r *Resource) {
		for _, c := range r.Children {
			walk(c)
		}
		out = append(out, r)
	}
	walk(g.Root)
	return out
}

// OverallStatus is the worst status of any member, so a group with one
// stopped member reads as stopped even if the rest run.
func (g *Group) OverallStatus() types.ResourceStatus {
	resources := g.Resources()
	statuses := make([]types.ResourceStatus, 0, len(resources))
	for _, r := range resources {
		statuses = append(statuses, r.Status())
	}
	return types.WorstStatus(statuses)
}

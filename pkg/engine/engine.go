package engine

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/lanl/halo/pkg/cluster"
	"github.com/lanl/halo/pkg/config"
	"github.com/lanl/halo/pkg/events"
	"github.com/lanl/halo/pkg/host"
	"github.com/lanl/halo/pkg/log"
	"github.com/lanl/halo/pkg/metrics"
	"github.com/lanl/halo/pkg/ocf"
	"github.com/lanl/halo/pkg/types"
)

// AgentCaller issues one resource operation against the remote agent at
// addr. Implementations must be safe for concurrent use; pkg/client provides
// the gRPC one, tests substitute fakes.
type AgentCaller interface {
	Operation(ctx context.Context, addr, resourceID string, action ocf.Action, args types.Params) (ocf.Code, error)
}

// Engine drives one resource group through its state machine. Each tick it
// probes every resource on the host it is assumed to run on, decides a
// target placement from observed status and dependency constraints, and acts
// to close the gap. All work within a group is serialized on the tick loop;
// groups run their engines independently.
type Engine struct {
	group  *cluster.Group
	hosts  *host.Tracker
	agents AgentCaller
	broker *events.Broker

	tickInterval time.Duration
	rpcTimeout   time.Duration
	manage       bool

	logger zerolog.Logger
}

// New creates an engine for one group. With manage false the engine runs in
// observe mode: it probes and records status but never starts, stops, or
// fences anything.
func New(group *cluster.Group, hosts *host.Tracker, agents AgentCaller, broker *events.Broker, tuning config.Tuning, manage bool) *Engine {
	return &Engine{
		group:        group,
		hosts:        hosts,
		agents:       agents,
		broker:       broker,
		tickInterval: tuning.TickInterval(),
		rpcTimeout:   tuning.RPCTimeout(),
		manage:       manage,
		logger:       log.WithComponent("engine").With().Str("group", group.Name).Logger(),
	}
}

// Run ticks the engine until the context is cancelled. The current tick
// always completes: in-flight RPCs run out their timeout and subprocess
// operations on the remote are never cancelled midway, because interrupting
// a start can leave a resource in an indeterminate state.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.tickInterval)
	defer ticker.Stop()

	// Cancelling ctx stops the loop, never a tick in progress.
	tickCtx := context.WithoutCancel(ctx)

	e.Tick(tickCtx)
	for {
		select {
		case <-ticker.C:
			e.Tick(tickCtx)
		case <-ctx.Done():
			return
		}
	}
}

// Tick performs one probe / decide / act cycle over the group.
func (e *Engine) Tick(ctx context.Context) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.TickDuration.WithLabelValues(e.group.Name))

	for _, r := range e.group.Resources() {
		e.probe(ctx, r)
	}

	e.checkDependencies()

	if !e.manage {
		return
	}

	// Stops walk post-order so no parent is stopped while a child still
	// runs; starts walk pre-order so no child starts before its parent.
	for _, r := range e.group.ResourcesPostOrder() {
		if e.wantStopped(r) && (r.Running() || r.CurrentHost() != "") {
			e.stopResource(ctx, r)
		}
	}
	for _, r := range e.group.Resources() {
		if target, ok := e.startTarget(r); ok {
			e.startOn(ctx, r, target, true)
		}
	}
}

// StopAll stops every resource in the group in post-order: children reach
// Stopped before their parent's stop RPC is issued. It locates each
// resource first, so it works from a cold start where nothing has been
// probed yet.
func (e *Engine) StopAll(ctx context.Context) {
	for _, r := range e.group.ResourcesPostOrder() {
		hostID := r.CurrentHost()
		if hostID == "" {
			for _, h := range []string{r.HomeHost, r.AwayHost} {
				if h == "" || e.skipProbe(h) {
					continue
				}
				if code, err := e.op(ctx, h, r, ocf.ActionMonitor); err == nil && code == ocf.Success {
					hostID = h
					break
				}
			}
		}
		if hostID == "" {
			e.setStatus(r, types.StatusStopped)
			continue
		}
		r.SetCurrentHost(hostID)
		e.stopResource(ctx, r)
	}
}

// Snapshot copies the group's resource state for status queries.
func (e *Engine) Snapshot() []types.ResourceSnapshot {
	resources := e.group.Resources()
	out := make([]types.ResourceSnapshot, 0, len(resources))
	for _, r := range resources {
		out = append(out, r.Snapshot())
	}
	return out
}

// OverallStatus returns the group's worst member status.
func (e *Engine) OverallStatus() types.ResourceStatus {
	return e.group.OverallStatus()
}

// probe refreshes one resource's observed status by monitoring the host it
// is assumed to run on, and, for failover pairs, the peer as well when it
// is reachable, so a split brain cannot go unobserved.
func (e *Engine) probe(ctx context.Context, r *cluster.Resource) {
	before := r.Status()
	primary := r.CurrentHost()
	if primary == "" {
		primary = r.HomeHost
	}

	var running []string
	primaryStopped := false
	primaryFailed := false

	hosts := []string{primary}
	if peer := r.Peer(primary); peer != "" && e.hosts.Reachable(peer) {
		hosts = append(hosts, peer)
	}

	for _, h := range hosts {
		// Fenced or fatally-failed hosts are pointless to monitor; leave
		// the last observation in place.
		if e.skipProbe(h) {
			continue
		}

		code, err := e.monitor(ctx, r, h)
		switch {
		case err != nil:
			if h == primary {
				primaryFailed = true
			}
		case code == ocf.Success:
			running = append(running, h)
		case code == ocf.NotRunning:
			if h == primary {
				primaryStopped = true
			}
		default:
			// The host answered but the resource agent faulted. Treat as
			// an unknown observation; the host's liveness already counted.
			e.logger.Warn().
				Str("resource_id", r.ID).
				Str("host_id", h).
				Str("code", code.String()).
				Msg("monitor returned resource fault")
			if h == primary {
				primaryFailed = true
			}
		}
	}

	if len(running) > 1 {
		running = []string{e.resolveSplitBrain(ctx, r, running)}
	}

	switch {
	case len(running) == 1:
		h := running[0]
		loc, ok := r.LocationOf(h)
		if !ok {
			loc = types.LocationHome
		}
		r.SetCurrentHost(h)
		e.setStatus(r, loc.RunningStatus())
	case primaryStopped:
		r.SetCurrentHost("")
		e.setStatus(r, types.StatusStopped)
	case primaryFailed:
		// Keep the assumed current host: the resource may still be running
		// there, and forgetting that would skip the fence on restart.
		e.setStatus(r, types.StatusUnknown)
	default:
		// Nothing conclusive about the primary: drop the transient
		// Checking status and keep the last observation.
		e.setStatus(r, before)
	}
}

// skipProbe reports whether a host is pointless or unsafe to monitor.
func (e *Engine) skipProbe(h string) bool {
	state := e.hosts.State(h)
	return state == types.HostFenced || e.hosts.Fatal(h)
}

// monitor issues one monitor RPC, holding the transient Checking status
// while it is in flight.
func (e *Engine) monitor(ctx context.Context, r *cluster.Resource, hostID string) (ocf.Code, error) {
	if loc, ok := r.LocationOf(hostID); ok {
		e.setStatus(r, loc.CheckingStatus())
	}
	return e.op(ctx, hostID, r, ocf.ActionMonitor)
}

// op performs one operation RPC with the engine's timeout and feeds the
// outcome into the host tracker. A response from the agent, even an error
// response, proves the host alive; only transport faults count against it.
func (e *Engine) op(ctx context.Context, hostID string, r *cluster.Resource, action ocf.Action) (ocf.Code, error) {
	addr := e.hosts.Addr(hostID)

	args := make(types.Params, 0, len(r.Params)+1)
	args = append(args, types.Param{Key: "ocf_type", Value: r.Kind})
	args = append(args, r.Params...)

	opCtx, cancel := context.WithTimeout(ctx, e.rpcTimeout)
	defer cancel()

	code, err := e.agents.Operation(opCtx, addr, r.ID, action, args)

	var remote *ocf.RemoteError
	outcome := "ok"
	switch {
	case err == nil:
		e.hosts.ReportSuccess(hostID)
		if code != ocf.Success {
			outcome = code.String()
		}
	case errors.As(err, &remote):
		e.hosts.ReportSuccess(hostID)
		outcome = "agent_error"
	default:
		e.hosts.ReportFailure(hostID)
		outcome = "transport_error"
	}
	metrics.OperationsTotal.WithLabelValues(string(action), outcome).Inc()

	return code, err
}

// setStatus records a transition and publishes it.
func (e *Engine) setStatus(r *cluster.Resource, status types.ResourceStatus) {
	old, changed := r.SetStatus(status)
	if !changed {
		return
	}
	// The transient checking states flip on every probe; keep them out of
	// the default log level.
	line := e.logger.Info()
	if status == types.StatusCheckingHome || status == types.StatusCheckingAway ||
		old == types.StatusCheckingHome || old == types.StatusCheckingAway {
		line = e.logger.Debug()
	}
	line.
		Str("resource_id", r.ID).
		Str("from", old.String()).
		Str("to", status.String()).
		Msg("resource status changed")
	e.publish(&events.Event{
		Type:       events.EventResourceStatusChanged,
		ResourceID: r.ID,
		Data: map[string]string{
			"from": old.String(),
			"to":   status.String(),
		},
	})
}

func (e *Engine) publish(ev *events.Event) {
	if e.broker != nil {
		e.broker.Publish(ev)
	}
}

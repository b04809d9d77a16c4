package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/lanl/halo/pkg/cluster"
	"github.com/lanl/halo/pkg/events"
	"github.com/lanl/halo/pkg/ocf"
	"github.com/lanl/halo/pkg/types"
)

// wantStopped reports whether dependency constraints force the resource
// down: a resource may run only while every ancestor runs.
func (e *Engine) wantStopped(r *cluster.Resource) bool {
	for p := r.Parent(); p != nil; p = p.Parent() {
		if !p.Running() {
			return true
		}
	}
	return false
}

// startTarget decides where the resource should run, if anywhere. The
// second return is false when no start is wanted this tick.
//
// Placement policy: a resource already running on a usable host stays put
// (no automatic failback); otherwise home wins whenever it is reachable and
// not fenced, then away under the same condition; with neither usable the
// resource is unrunnable until a host recovers.
func (e *Engine) startTarget(r *cluster.Resource) (string, bool) {
	if e.wantStopped(r) {
		return "", false
	}

	if r.Running() {
		if e.placeable(r.CurrentHost()) {
			return "", false
		}
		// Running on a host we no longer trust; relocation goes through
		// the stop/fence path below via the chosen target.
	}

	switch {
	case e.placeable(r.HomeHost):
		if r.Status() == types.StatusRunningOnHome {
			return "", false
		}
		return r.HomeHost, true
	case r.HighAvailability() && e.placeable(r.AwayHost):
		if r.Status() == types.StatusRunningOnAway {
			return "", false
		}
		return r.AwayHost, true
	default:
		e.setStatus(r, types.StatusUnrunnable)
		return "", false
	}
}

func (e *Engine) placeable(hostID string) bool {
	return hostID != "" && e.hosts.Reachable(hostID) && !e.hosts.Fatal(hostID)
}

// stopResource stops the resource on the host it is believed to run on.
// Stop is never best effort: a host that fails to stop a resource, or
// cannot be asked, is fenced before the engine moves on.
func (e *Engine) stopResource(ctx context.Context, r *cluster.Resource) {
	hostID := r.CurrentHost()
	if hostID == "" {
		e.setStatus(r, types.StatusStopped)
		return
	}

	// A fenced host serves nothing; the resource is down by construction.
	if e.hosts.State(hostID) == types.HostFenced {
		r.SetCurrentHost("")
		e.setStatus(r, types.StatusStopped)
		return
	}

	e.publish(&events.Event{
		Type:       events.EventStopIssued,
		ResourceID: r.ID,
		HostID:     hostID,
	})

	code, err := e.op(ctx, hostID, r, ocf.ActionStop)
	if err == nil && code == ocf.Success {
		r.SetCurrentHost("")
		e.setStatus(r, types.StatusStopped)
		return
	}

	e.logger.Error().
		Str("resource_id", r.ID).
		Str("host_id", hostID).
		Err(err).
		Str("code", code.String()).
		Msg("stop failed, fencing host")

	if ferr := e.hosts.EnsureFenced(ctx, hostID); ferr != nil {
		e.setStatus(r, types.StatusUnrunnable)
		return
	}
	r.SetCurrentHost("")
	e.setStatus(r, types.StatusStopped)
}

// startOn starts the resource on the target host, after making certain no
// other host can be running it.
//
// The fence-before-start rule lives here: if the resource's previous host
// cannot positively confirm the resource stopped, because it is
// unreachable or its answer is untrustworthy, that host is fenced before
// the start RPC is issued. A fatal fence failure makes the resource
// unrunnable rather than risk two owners.
func (e *Engine) startOn(ctx context.Context, r *cluster.Resource, target string, failover bool) {
	if err := e.ensurePeerStopped(ctx, r, target); err != nil {
		e.logger.Error().
			Str("resource_id", r.ID).
			Str("host_id", target).
			Err(err).
			Msg("cannot confirm peer stopped, resource unrunnable")
		e.setStatus(r, types.StatusUnrunnable)
		return
	}

	e.publish(&events.Event{
		Type:       events.EventStartIssued,
		ResourceID: r.ID,
		HostID:     target,
	})

	code, err := e.op(ctx, target, r, ocf.ActionStart)
	switch {
	case err == nil && code == ocf.Success:
		loc, _ := r.LocationOf(target)
		r.SetCurrentHost(target)
		e.setStatus(r, loc.RunningStatus())
	case err != nil && !isRemoteError(err):
		// Transport fault mid-start: the start may or may not have
		// applied. Remember the attempted host so a later relocation
		// fences it first.
		r.SetCurrentHost(target)
		e.setStatus(r, types.StatusUnknown)
	default:
		// The agent ran the script and it failed (or could not run it at
		// all). Attempt the peer once, then give up.
		e.logger.Error().
			Str("resource_id", r.ID).
			Str("host_id", target).
			Err(err).
			Str("code", code.String()).
			Msg("start failed")
		peer := r.Peer(target)
		if failover && peer != "" && e.placeable(peer) {
			e.startOn(ctx, r, peer, false)
			return
		}
		e.setStatus(r, types.StatusUnrunnable)
	}
}

// ensurePeerStopped guarantees that no host other than target can be
// running the resource before a start is issued there.
func (e *Engine) ensurePeerStopped(ctx context.Context, r *cluster.Resource, target string) error {
	peer := r.Peer(target)
	if peer == "" {
		return nil
	}
	if e.hosts.State(peer) == types.HostFenced {
		return nil
	}

	if e.hosts.Reachable(peer) {
		code, err := e.op(ctx, peer, r, ocf.ActionMonitor)
		if err == nil && code == ocf.NotRunning {
			return nil
		}
		if err == nil && code == ocf.Success {
			// The peer still runs the resource. Starting would be a split
			// brain; stop it over there first.
			e.publish(&events.Event{
				Type:       events.EventAnomaly,
				ResourceID: r.ID,
				HostID:     peer,
				Message:    "peer still running resource before start",
			})
			if stopped := e.stopOnHost(ctx, r, peer); stopped {
				return nil
			}
		}
		// Fall through: the peer's answer cannot be trusted.
	}

	if err := e.hosts.EnsureFenced(ctx, peer); err != nil {
		return fmt.Errorf("peer %s not confirmed stopped: %w", peer, err)
	}
	if r.CurrentHost() == peer {
		r.SetCurrentHost("")
	}
	return nil
}

// stopOnHost issues a stop for the resource on a specific host and reports
// whether the stop confirmed.
func (e *Engine) stopOnHost(ctx context.Context, r *cluster.Resource, hostID string) bool {
	e.publish(&events.Event{
		Type:       events.EventStopIssued,
		ResourceID: r.ID,
		HostID:     hostID,
	})
	code, err := e.op(ctx, hostID, r, ocf.ActionStop)
	return err == nil && code == ocf.Success
}

// resolveSplitBrain handles a resource observed running on both members of
// its failover pair: home wins, the away copy is stopped, and the violation
// is logged as an anomaly. Returns the surviving host.
func (e *Engine) resolveSplitBrain(ctx context.Context, r *cluster.Resource, running []string) string {
	winner := r.HomeHost
	loser := r.AwayHost
	e.logger.Error().
		Str("resource_id", r.ID).
		Strs("hosts", running).
		Msg("resource running on both hosts")
	e.publish(&events.Event{
		Type:       events.EventAnomaly,
		ResourceID: r.ID,
		HostID:     loser,
		Message:    "split brain: resource running on home and away, stopping away copy",
	})

	if !e.manage {
		return winner
	}

	if !e.stopOnHost(ctx, r, loser) {
		// Stop is never best effort; an away host that cannot stop the
		// duplicate copy is fenced.
		if err := e.hosts.EnsureFenced(ctx, loser); err != nil {
			e.logger.Error().
				Str("resource_id", r.ID).
				Str("host_id", loser).
				Err(err).
				Msg("could not fence away host after split brain")
		}
	}
	return winner
}

// checkDependencies verifies the dependency invariant over the whole group
// after a probe pass and records violations. The stop pass that follows
// brings the tree back into line, children first.
func (e *Engine) checkDependencies() {
	for _, r := range e.group.Resources() {
		if r.Parent() != nil && r.Running() && !r.Parent().Running() {
			e.logger.Error().
				Str("resource_id", r.ID).
				Str("parent_id", r.Parent().ID).
				Msg("dependency violation: child running while parent is not")
			e.publish(&events.Event{
				Type:       events.EventAnomaly,
				ResourceID: r.ID,
				Message:    "child running while parent is not",
			})
		}
	}
}

func isRemoteError(err error) bool {
	var remote *ocf.RemoteError
	return errors.As(err, &remote)
}

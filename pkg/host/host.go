package host

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/lanl/halo/pkg/events"
	"github.com/lanl/halo/pkg/fence"
	"github.com/lanl/halo/pkg/log"
	"github.com/lanl/halo/pkg/metrics"
	"github.com/lanl/halo/pkg/types"
)

var stateLabels = []string{
	types.HostUnknown.String(),
	types.HostReachable.String(),
	types.HostUnreachable.String(),
	types.HostFenced.String(),
	types.HostPoweringOn.String(),
}

// FenceAgent is the power-control surface the tracker drives. *fence.Agent
// implements it; tests substitute fakes.
type FenceAgent interface {
	Status(ctx context.Context, hostID string) (types.PowerState, error)
	On(ctx context.Context, hostID string) error
	OffWithRetry(ctx context.Context, hostID string) error
}

// entry is one host's live view. The state fields are guarded by the
// tracker's table lock; fenceMu serializes fence subprocesses against this
// host so concurrent engines cannot race power control.
type entry struct {
	id    string
	addr  string
	agent FenceAgent // nil when the host has no fence agent configured

	state    types.HostState
	power    types.PowerState
	failures int
	fatal    bool

	fenceMu sync.Mutex
}

// Tracker owns the host table: per-host reachability, power state, and all
// fence actions. It is the single coordinator for host mutation; one coarse
// lock guards the table and snapshots copy fields out.
type Tracker struct {
	mu        sync.Mutex
	hosts     map[string]*entry
	threshold int
	broker    *events.Broker
	logger    zerolog.Logger
}

// NewTracker creates a tracker that demotes a host after threshold
// consecutive RPC failures.
func NewTracker(threshold int, broker *events.Broker) *Tracker {
	return &Tracker{
		hosts:     make(map[string]*entry),
		threshold: threshold,
		broker:    broker,
		logger:    log.WithComponent("host"),
	}
}

// Add registers a host. agent may be nil for hosts without power control.
func (t *Tracker) Add(id, addr string, agent FenceAgent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hosts[id] = &entry{
		id:    id,
		addr:  addr,
		agent: agent,
		state: types.HostUnknown,
		power: types.PowerUnknown,
	}
	metrics.SetHostState(id, stateLabels, types.HostUnknown.String())
}

// IDs returns the registered host IDs, sorted.
func (t *Tracker) IDs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]string, 0, len(t.hosts))
	for id := range t.hosts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Addr returns the RPC address for a host, or "" if unknown.
func (t *Tracker) Addr(id string) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.hosts[id]; ok {
		return e.addr
	}
	return ""
}

// State returns the current state of a host.
func (t *Tracker) State(id string) types.HostState {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.hosts[id]; ok {
		return e.state
	}
	return types.HostUnknown
}

// Reachable reports whether the host is currently trusted to serve RPCs.
func (t *Tracker) Reachable(id string) bool {
	return t.State(id) == types.HostReachable
}

// Fatal reports whether the host suffered a fatal fence failure and needs
// operator intervention.
func (t *Tracker) Fatal(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.hosts[id]; ok {
		return e.fatal
	}
	return false
}

// ReportSuccess records a successful RPC round trip to the host.
func (t *Tracker) ReportSuccess(id string) {
	t.mu.Lock()
	e, ok := t.hosts[id]
	if !ok {
		t.mu.Unlock()
		return
	}
	e.failures = 0
	var transition *events.Event
	switch e.state {
	case types.HostUnknown, types.HostUnreachable, types.HostPoweringOn:
		transition = t.setStateLocked(e, types.HostReachable, "rpc round trip succeeded")
	case types.HostFenced:
		// A fenced host must not be answering. Keep it fenced and log;
		// only PowerOn brings a fenced host back.
		t.logger.Warn().Str("host_id", id).Msg("fenced host answered an RPC")
	}
	t.mu.Unlock()
	t.publish(transition)
}

// ReportFailure records a failed RPC round trip to the host. After the
// configured number of consecutive failures a Reachable host is demoted to
// Unreachable; demotion is one of the two triggers that may relocate
// resources.
func (t *Tracker) ReportFailure(id string) {
	metrics.RPCFailuresTotal.WithLabelValues(id).Inc()

	t.mu.Lock()
	e, ok := t.hosts[id]
	if !ok {
		t.mu.Unlock()
		return
	}
	e.failures++
	var transition *events.Event
	if e.state == types.HostReachable && e.failures >= t.threshold {
		transition = t.setStateLocked(e, types.HostUnreachable,
			fmt.Sprintf("%d consecutive rpc failures", e.failures))
	}
	t.mu.Unlock()
	t.publish(transition)
}

// setStateLocked flips a host's state and returns the event to publish once
// the table lock is released. Callers hold t.mu.
func (t *Tracker) setStateLocked(e *entry, state types.HostState, reason string) *events.Event {
	if e.state == state {
		return nil
	}
	old := e.state
	e.state = state
	metrics.SetHostState(e.id, stateLabels, state.String())
	t.logger.Info().
		Str("host_id", e.id).
		Str("from", old.String()).
		Str("to", state.String()).
		Str("reason", reason).
		Msg("host state changed")
	return &events.Event{
		Type:    events.EventHostStateChanged,
		HostID:  e.id,
		Message: reason,
		Data: map[string]string{
			"from": old.String(),
			"to":   state.String(),
		},
	}
}

func (t *Tracker) publish(evs ...*events.Event) {
	if t.broker == nil {
		return
	}
	for _, ev := range evs {
		if ev != nil {
			t.broker.Publish(ev)
		}
	}
}

// EnsureFenced guarantees the host is powered off before returning nil.
//
// Already-Fenced hosts return immediately, so callers can invoke this on
// every start they are about to issue. The power-off is retried per the
// fence policy; exhaustion marks the host fatal and returns an error
// wrapping fence.ErrFatal, after which resources on the host are unrunnable
// until an operator steps in.
func (t *Tracker) EnsureFenced(ctx context.Context, id string) error {
	t.mu.Lock()
	e, ok := t.hosts[id]
	if !ok {
		t.mu.Unlock()
		return fmt.Errorf("unknown host %q", id)
	}
	if e.state == types.HostFenced {
		t.mu.Unlock()
		return nil
	}
	if e.fatal {
		t.mu.Unlock()
		return fmt.Errorf("%w: host %s already failed fencing", fence.ErrFatal, id)
	}
	agent := e.agent
	t.mu.Unlock()

	e.fenceMu.Lock()
	defer e.fenceMu.Unlock()

	// Re-check under the fence lock: another caller may have fenced the
	// host while we waited.
	if t.State(id) == types.HostFenced {
		return nil
	}

	if agent == nil {
		t.mu.Lock()
		e.fatal = true
		ev := t.setStateLocked(e, types.HostUnknown, "no fence agent configured")
		t.mu.Unlock()
		t.publish(ev)
		return fmt.Errorf("%w: host %s has no fence agent", fence.ErrFatal, id)
	}

	t.publish(&events.Event{
		Type:    events.EventFenceIssued,
		HostID:  id,
		Message: "powering host off",
	})

	if err := agent.OffWithRetry(ctx, id); err != nil {
		t.mu.Lock()
		e.fatal = true
		ev := t.setStateLocked(e, types.HostUnknown, "fence off failed")
		t.mu.Unlock()
		t.publish(ev, &events.Event{
			Type:    events.EventFenceFailed,
			HostID:  id,
			Message: err.Error(),
		})
		return err
	}

	t.mu.Lock()
	e.power = types.Unpowered
	e.failures = 0
	ev := t.setStateLocked(e, types.HostFenced, "fence off confirmed")
	t.mu.Unlock()
	t.publish(ev, &events.Event{
		Type:    events.EventFenceSucceeded,
		HostID:  id,
		Message: "host powered off",
	})
	return nil
}

// powerOnAttempts bounds how often PowerOn retries before declaring the
// failure persistent.
const powerOnAttempts = 2

// PowerOn attempts to restore power to a fenced host. Success moves the
// host to PoweringOn; the next successful RPC completes the recovery to
// Reachable. The recovered host is not handed resources here; the next
// natural engine tick decides placement.
func (t *Tracker) PowerOn(ctx context.Context, id string) error {
	t.mu.Lock()
	e, ok := t.hosts[id]
	if !ok {
		t.mu.Unlock()
		return fmt.Errorf("unknown host %q", id)
	}
	agent := e.agent
	t.mu.Unlock()

	if agent == nil {
		return fmt.Errorf("host %s has no fence agent", id)
	}

	e.fenceMu.Lock()
	defer e.fenceMu.Unlock()

	var lastErr error
	for attempt := 1; attempt <= powerOnAttempts; attempt++ {
		if lastErr = agent.On(ctx, id); lastErr == nil {
			break
		}
		t.logger.Warn().Str("host_id", id).Int("attempt", attempt).Err(lastErr).
			Msg("fence on attempt failed")
		if attempt < powerOnAttempts {
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	t.mu.Lock()
	var ev *events.Event
	if lastErr != nil {
		e.fatal = true
		ev = t.setStateLocked(e, types.HostUnknown, "fence on failed persistently")
		t.mu.Unlock()
		t.publish(ev)
		return fmt.Errorf("could not power on host %s: %w", id, lastErr)
	}
	e.power = types.Powered
	if e.state == types.HostFenced {
		ev = t.setStateLocked(e, types.HostPoweringOn, "fence on confirmed")
	}
	t.mu.Unlock()
	t.publish(ev)
	return nil
}

// PowerStatus queries the host's power state through its fence agent.
func (t *Tracker) PowerStatus(ctx context.Context, id string) (types.PowerState, error) {
	t.mu.Lock()
	e, ok := t.hosts[id]
	if !ok {
		t.mu.Unlock()
		return types.PowerUnknown, fmt.Errorf("unknown host %q", id)
	}
	agent := e.agent
	t.mu.Unlock()

	if agent == nil {
		return types.PowerUnknown, fmt.Errorf("host %s has no fence agent", id)
	}

	power, err := agent.Status(ctx, id)
	t.mu.Lock()
	e.power = power
	t.mu.Unlock()
	return power, err
}

// Snapshot returns a copy of every host's view, sorted by ID.
func (t *Tracker) Snapshot() []types.HostSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]types.HostSnapshot, 0, len(t.hosts))
	for _, e := range t.hosts {
		out = append(out, types.HostSnapshot{
			ID:      e.id,
			Address: e.addr,
			State:   e.state,
			Power:   e.power,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

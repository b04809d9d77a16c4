package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanl/halo/pkg/cluster"
	"github.com/lanl/halo/pkg/config"
	"github.com/lanl/halo/pkg/events"
	"github.com/lanl/halo/pkg/fence"
	"github.com/lanl/halo/pkg/host"
	"github.com/lanl/halo/pkg/log"
	"github.com/lanl/halo/pkg/ocf"
	"github.com/lanl/halo/pkg/types"
)

func TestMain(m *testing.M) {
	log.Init(log.Config{Level: log.ErrorLevel})
	os.Exit(m.Run())
}

// opCall records one operation the engine issued.
type opCall struct {
	addr     string
	resource string
	action   ocf.Action
}

// fakeAgents simulates the remote agents of a small cluster in memory.
type fakeAgents struct {
	mu      sync.Mutex
	running map[string]map[string]bool // addr -> resource -> running
	down    map[string]bool            // addr -> transport failures
	failOps map[string]bool            // addr -> start/stop return OCF failure
	calls   []opCall
}

func newFakeAgents(addrs ...string) *fakeAgents {
	f := &fakeAgents{
		running: make(map[string]map[string]bool),
		down:    make(map[string]bool),
		failOps: make(map[string]bool),
	}
	for _, a := range addrs {
		f.running[a] = make(map[string]bool)
	}
	return f
}

func (f *fakeAgents) Operation(ctx context.Context, addr, resourceID string, action ocf.Action, args types.Params) (ocf.Code, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, opCall{addr: addr, resource: resourceID, action: action})

	if f.down[addr] {
		return ocf.ErrGeneric, fmt.Errorf("connection refused")
	}
	state, ok := f.running[addr]
	if !ok {
		return ocf.ErrGeneric, fmt.Errorf("no such agent %q", addr)
	}

	switch action {
	case ocf.ActionMonitor:
		if state[resourceID] {
			return ocf.Success, nil
		}
		return ocf.NotRunning, nil
	case ocf.ActionStart:
		if f.failOps[addr] {
			return ocf.ErrGeneric, nil
		}
		state[resourceID] = true
		return ocf.Success, nil
	case ocf.ActionStop:
		if f.failOps[addr] {
			return ocf.ErrGeneric, nil
		}
		delete(state, resourceID)
		return ocf.Success, nil
	}
	return ocf.ErrUnimplemented, nil
}

func (f *fakeAgents) setRunning(addr, resource string, running bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if running {
		f.running[addr][resource] = true
	} else {
		delete(f.running[addr], resource)
	}
}

func (f *fakeAgents) isRunning(addr, resource string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running[addr][resource]
}

func (f *fakeAgents) setDown(addr string, down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down[addr] = down
}

func (f *fakeAgents) callsFor(action ocf.Action) []opCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []opCall
	for _, c := range f.calls {
		if c.action == action {
			out = append(out, c)
		}
	}
	return out
}

// fakeFence is a scriptable host.FenceAgent.
type fakeFence struct {
	mu     sync.Mutex
	offErr error
}

func (f *fakeFence) Status(ctx context.Context, hostID string) (types.PowerState, error) {
	return types.Powered, nil
}

func (f *fakeFence) On(ctx context.Context, hostID string) error { return nil }

func (f *fakeFence) OffWithRetry(ctx context.Context, hostID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.offErr != nil {
		return fmt.Errorf("%w: %v", fence.ErrFatal, f.offErr)
	}
	return nil
}

// rig is one single-group test cluster: two hosts in a failover pair.
type rig struct {
	engine *Engine
	group  *cluster.Group
	hosts  *host.Tracker
	agents *fakeAgents
	fences map[string]*fakeFence
	broker *events.Broker
	sub    events.Subscriber
}

// newRig builds a rig from the given resource layout (resource id ->
// requires edge) on the oss00/oss01 pair, with both hosts already probed
// reachable.
func newRig(t *testing.T, manage bool, resources map[string]string) *rig {
	t.Helper()

	cfgResources := make(map[string]config.Resource, len(resources))
	for id, requires := range resources {
		cfgResources[id] = config.Resource{
			Kind:       "lustre/Lustre",
			Parameters: map[string]string{"mountpoint": "/mnt/" + id},
			Requires:   requires,
		}
	}
	cfg := &config.Config{
		FailoverPairs: [][]string{{"oss00", "oss01"}},
		Hosts: []config.Host{
			{Hostname: "oss00", Resources: cfgResources},
			{Hostname: "oss01"},
		},
	}
	require.NoError(t, cfg.Validate())

	broker := events.NewBroker()
	broker.Start()
	t.Cleanup(broker.Stop)

	c, err := cluster.New(cfg, broker)
	require.NoError(t, err)
	require.Len(t, c.Groups, 1)

	// The cluster's own tracker carries real fence agents; tests need
	// scriptable ones, so the engine gets a tracker of its own.
	fences := map[string]*fakeFence{
		"oss00": {},
		"oss01": {},
	}
	tracker := host.NewTracker(3, broker)
	tracker.Add("oss00", "oss00", fences["oss00"])
	tracker.Add("oss01", "oss01", fences["oss01"])
	tracker.ReportSuccess("oss00")
	tracker.ReportSuccess("oss01")

	agents := newFakeAgents("oss00", "oss01")

	eng := New(c.Groups[0], tracker, agents, broker, config.Tuning{}, manage)
	return &rig{
		engine: eng,
		group:  c.Groups[0],
		hosts:  tracker,
		agents: agents,
		fences: fences,
		broker: broker,
		sub:    broker.Subscribe(),
	}
}

func (r *rig) resource(id string) *cluster.Resource {
	for _, res := range r.group.Resources() {
		if res.ID == id {
			return res
		}
	}
	return nil
}

// drain collects events until the broker goes quiet.
func (r *rig) drain() []*events.Event {
	var out []*events.Event
	for {
		select {
		case ev := <-r.sub:
			out = append(out, ev)
		case <-time.After(200 * time.Millisecond):
			return out
		}
	}
}

func TestSimpleStart(t *testing.T) {
	r := newRig(t, true, map[string]string{"ost0": ""})

	r.engine.Tick(context.Background())

	assert.True(t, r.agents.isRunning("oss00", "ost0"))
	assert.Equal(t, types.StatusRunningOnHome, r.resource("ost0").Status())
	assert.Equal(t, "oss00", r.resource("ost0").CurrentHost())
}

func TestStartIsIdempotentAcrossTicks(t *testing.T) {
	r := newRig(t, true, map[string]string{"ost0": ""})

	r.engine.Tick(context.Background())
	r.engine.Tick(context.Background())
	r.engine.Tick(context.Background())

	// One start; later ticks only monitor.
	assert.Len(t, r.agents.callsFor(ocf.ActionStart), 1)
	assert.Equal(t, types.StatusRunningOnHome, r.resource("ost0").Status())
}

func TestRestartAfterExternalStop(t *testing.T) {
	r := newRig(t, true, map[string]string{"ost0": ""})

	r.engine.Tick(context.Background())
	require.Equal(t, types.StatusRunningOnHome, r.resource("ost0").Status())

	// The resource dies behind the manager's back.
	r.agents.setRunning("oss00", "ost0", false)

	r.engine.Tick(context.Background())
	assert.True(t, r.agents.isRunning("oss00", "ost0"))
	assert.Equal(t, types.StatusRunningOnHome, r.resource("ost0").Status())
	assert.Len(t, r.agents.callsFor(ocf.ActionStart), 2)
}

func TestFailoverOnRPCLoss(t *testing.T) {
	r := newRig(t, true, map[string]string{"ost0": ""})

	r.engine.Tick(context.Background())
	require.Equal(t, types.StatusRunningOnHome, r.resource("ost0").Status())

	// The home host drops off the network with the resource running.
	r.agents.setDown("oss00", true)

	for i := 0; i < 4 && r.resource("ost0").Status() != types.StatusRunningOnAway; i++ {
		r.engine.Tick(context.Background())
	}

	assert.Equal(t, types.StatusRunningOnAway, r.resource("ost0").Status())
	assert.Equal(t, "oss01", r.resource("ost0").CurrentHost())
	assert.Equal(t, types.HostFenced, r.hosts.State("oss00"))
	assert.True(t, r.agents.isRunning("oss01", "ost0"))
}

func TestFenceRecordedBeforeFailoverStart(t *testing.T) {
	r := newRig(t, true, map[string]string{"ost0": ""})

	r.engine.Tick(context.Background())
	r.agents.setDown("oss00", true)
	for i := 0; i < 4 && r.resource("ost0").Status() != types.StatusRunningOnAway; i++ {
		r.engine.Tick(context.Background())
	}
	require.Equal(t, types.StatusRunningOnAway, r.resource("ost0").Status())

	evs := r.drain()
	fenceIdx, startIdx := -1, -1
	for i, ev := range evs {
		if ev.Type == events.EventFenceSucceeded && ev.HostID == "oss00" && fenceIdx < 0 {
			fenceIdx = i
		}
		if ev.Type == events.EventStartIssued && ev.HostID == "oss01" && startIdx < 0 {
			startIdx = i
		}
	}
	require.GreaterOrEqual(t, fenceIdx, 0, "expected a fence event for oss00")
	require.GreaterOrEqual(t, startIdx, 0, "expected a start event on oss01")
	assert.Less(t, fenceIdx, startIdx, "fence must be recorded before the failover start")
}

func TestFatalFenceMakesResourceUnrunnable(t *testing.T) {
	r := newRig(t, true, map[string]string{"ost0": ""})

	r.engine.Tick(context.Background())
	require.Equal(t, types.StatusRunningOnHome, r.resource("ost0").Status())

	// Home dies and its fence agent is broken.
	r.agents.setDown("oss00", true)
	r.fences["oss00"].offErr = errors.New("plug missing")

	for i := 0; i < 5; i++ {
		r.engine.Tick(context.Background())
	}

	assert.Equal(t, types.StatusUnrunnable, r.resource("ost0").Status())
	// The away host never sees a start: its peer could not be fenced.
	for _, c := range r.agents.callsFor(ocf.ActionStart) {
		assert.NotEqual(t, "oss01", c.addr, "start issued on away host despite fatal fence failure")
	}
	assert.False(t, r.agents.isRunning("oss01", "ost0"))
}

func TestDependencyStartOrder(t *testing.T) {
	r := newRig(t, true, map[string]string{"pool0": "", "ost0": "pool0"})

	r.engine.Tick(context.Background())

	starts := r.agents.callsFor(ocf.ActionStart)
	require.Len(t, starts, 2)
	assert.Equal(t, "pool0", starts[0].resource)
	assert.Equal(t, "ost0", starts[1].resource)
	assert.Equal(t, types.StatusRunningOnHome, r.group.OverallStatus())
}

func TestChildWaitsForFailedParent(t *testing.T) {
	r := newRig(t, true, map[string]string{"pool0": "", "ost0": "pool0"})

	// The parent cannot start anywhere.
	r.agents.failOps["oss00"] = true
	r.agents.failOps["oss01"] = true

	r.engine.Tick(context.Background())

	for _, c := range r.agents.callsFor(ocf.ActionStart) {
		assert.Equal(t, "pool0", c.resource, "child must not start while parent is down")
	}
	assert.NotEqual(t, types.StatusRunningOnHome, r.resource("ost0").Status())
}

func TestStopAllOrder(t *testing.T) {
	r := newRig(t, true, map[string]string{"pool0": "", "ost0": "pool0"})

	r.engine.Tick(context.Background())
	require.Equal(t, types.StatusRunningOnHome, r.group.OverallStatus())

	r.engine.StopAll(context.Background())

	stops := r.agents.callsFor(ocf.ActionStop)
	require.Len(t, stops, 2)
	assert.Equal(t, "ost0", stops[0].resource)
	assert.Equal(t, "pool0", stops[1].resource)
	assert.Equal(t, types.StatusStopped, r.group.OverallStatus())
	assert.False(t, r.agents.isRunning("oss00", "pool0"))
}

func TestStopTwiceIsIdempotent(t *testing.T) {
	r := newRig(t, true, map[string]string{"ost0": ""})

	r.engine.Tick(context.Background())
	r.engine.StopAll(context.Background())
	first := r.resource("ost0").Snapshot()

	r.engine.StopAll(context.Background())
	second := r.resource("ost0").Snapshot()

	assert.Equal(t, types.StatusStopped, first.Status)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Host, second.Host)
}

func TestSplitBrainResolution(t *testing.T) {
	r := newRig(t, true, map[string]string{"ost0": ""})

	// Both hosts believe they own the resource.
	r.agents.setRunning("oss00", "ost0", true)
	r.agents.setRunning("oss01", "ost0", true)

	r.engine.Tick(context.Background())

	assert.Equal(t, types.StatusRunningOnHome, r.resource("ost0").Status())
	assert.True(t, r.agents.isRunning("oss00", "ost0"), "home copy survives")
	assert.False(t, r.agents.isRunning("oss01", "ost0"), "away copy is stopped")

	var sawAnomaly bool
	for _, ev := range r.drain() {
		if ev.Type == events.EventAnomaly {
			sawAnomaly = true
		}
	}
	assert.True(t, sawAnomaly, "split brain must be reported as an anomaly")
}

func TestStartFailureFailsOverThenUnrunnable(t *testing.T) {
	r := newRig(t, true, map[string]string{"ost0": ""})

	// Home rejects starts; away works.
	r.agents.failOps["oss00"] = true

	r.engine.Tick(context.Background())
	assert.Equal(t, types.StatusRunningOnAway, r.resource("ost0").Status())
	assert.True(t, r.agents.isRunning("oss01", "ost0"))

	// Now both reject: the resource becomes unrunnable.
	r2 := newRig(t, true, map[string]string{"ost1": ""})
	r2.agents.failOps["oss00"] = true
	r2.agents.failOps["oss01"] = true

	r2.engine.Tick(context.Background())
	assert.Equal(t, types.StatusUnrunnable, r2.resource("ost1").Status())
}

func TestNoAutomaticFailback(t *testing.T) {
	r := newRig(t, true, map[string]string{"ost0": ""})

	// Already running on away with both hosts healthy.
	r.agents.setRunning("oss01", "ost0", true)
	r.resource("ost0").SetCurrentHost("oss01")

	r.engine.Tick(context.Background())
	r.engine.Tick(context.Background())

	assert.Equal(t, types.StatusRunningOnAway, r.resource("ost0").Status())
	assert.Empty(t, r.agents.callsFor(ocf.ActionStart), "no failback start may be issued")
}

func TestObserveModeNeverActs(t *testing.T) {
	r := newRig(t, false, map[string]string{"ost0": ""})

	r.engine.Tick(context.Background())
	r.engine.Tick(context.Background())

	assert.Empty(t, r.agents.callsFor(ocf.ActionStart))
	assert.Empty(t, r.agents.callsFor(ocf.ActionStop))
	assert.Equal(t, types.StatusStopped, r.resource("ost0").Status())
}

func TestUnrunnableWhenNoHostAvailable(t *testing.T) {
	r := newRig(t, true, map[string]string{"ost0": ""})

	r.agents.setDown("oss00", true)
	r.agents.setDown("oss01", true)

	// Run the home host down to Unreachable; the away host fails its
	// monitor during the pre-start peer check and is fenced, so neither
	// is ever placeable.
	for i := 0; i < 4; i++ {
		r.engine.Tick(context.Background())
	}

	assert.Equal(t, types.StatusUnrunnable, r.resource("ost0").Status())
	assert.False(t, r.agents.isRunning("oss00", "ost0"))
	assert.False(t, r.agents.isRunning("oss01", "ost0"))
}

func TestSnapshotReflectsState(t *testing.T) {
	r := newRig(t, true, map[string]string{"ost0": ""})

	r.engine.Tick(context.Background())

	snap := r.engine.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "ost0", snap[0].ID)
	assert.Equal(t, types.StatusRunningOnHome, snap[0].Status)
	assert.Equal(t, "oss00", snap[0].Host)
	assert.Equal(t, types.StatusRunningOnHome, r.engine.OverallStatus())
}

func TestRunStopsOnCancel(t *testing.T) {
	r := newRig(t, true, map[string]string{"ost0": ""})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.engine.Run(ctx)
		close(done)
	}()

	// The first tick runs immediately; the resource comes up.
	require.Eventually(t, func() bool {
		return r.resource("ost0").Status() == types.StatusRunningOnHome
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not stop on cancellation")
	}
}

package host

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanl/halo/pkg/events"
	"github.com/lanl/halo/pkg/fence"
	"github.com/lanl/halo/pkg/log"
	"github.com/lanl/halo/pkg/types"
)

func TestMain(m *testing.M) {
	log.Init(log.Config{Level: log.ErrorLevel})
	os.Exit(m.Run())
}

// fakeFence is a scriptable FenceAgent.
type fakeFence struct {
	mu       sync.Mutex
	offErr   error
	onErr    error
	power    types.PowerState
	offCalls int
	onCalls  int
}

func (f *fakeFence) Status(ctx context.Context, hostID string) (types.PowerState, error) {
	return f.power, nil
}

func (f *fakeFence) On(ctx context.Context, hostID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onCalls++
	return f.onErr
}

func (f *fakeFence) OffWithRetry(ctx context.Context, hostID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.offCalls++
	if f.offErr != nil {
		return fmt.Errorf("%w: %v", fence.ErrFatal, f.offErr)
	}
	return nil
}

func newTestTracker(threshold int) (*Tracker, *fakeFence) {
	tracker := NewTracker(threshold, nil)
	agent := &fakeFence{power: types.Powered}
	tracker.Add("oss00", "127.0.0.1:4410", agent)
	tracker.Add("oss01", "127.0.0.1:4411", &fakeFence{power: types.Powered})
	return tracker, agent
}

func TestFirstSuccessMakesReachable(t *testing.T) {
	tracker, _ := newTestTracker(3)
	assert.Equal(t, types.HostUnknown, tracker.State("oss00"))

	tracker.ReportSuccess("oss00")
	assert.Equal(t, types.HostReachable, tracker.State("oss00"))
	assert.True(t, tracker.Reachable("oss00"))
}

func TestDemotionThresholdIsExact(t *testing.T) {
	tracker, _ := newTestTracker(3)
	tracker.ReportSuccess("oss00")

	// N-1 failures do not demote.
	tracker.ReportFailure("oss00")
	tracker.ReportFailure("oss00")
	assert.Equal(t, types.HostReachable, tracker.State("oss00"))

	// The Nth does.
	tracker.ReportFailure("oss00")
	assert.Equal(t, types.HostUnreachable, tracker.State("oss00"))
}

func TestSuccessResetsFailureCount(t *testing.T) {
	tracker, _ := newTestTracker(3)
	tracker.ReportSuccess("oss00")

	tracker.ReportFailure("oss00")
	tracker.ReportFailure("oss00")
	tracker.ReportSuccess("oss00")
	tracker.ReportFailure("oss00")
	tracker.ReportFailure("oss00")
	assert.Equal(t, types.HostReachable, tracker.State("oss00"))
}

func TestEnsureFenced(t *testing.T) {
	tracker, agent := newTestTracker(3)
	tracker.ReportSuccess("oss00")
	tracker.ReportFailure("oss00")
	tracker.ReportFailure("oss00")
	tracker.ReportFailure("oss00")
	require.Equal(t, types.HostUnreachable, tracker.State("oss00"))

	require.NoError(t, tracker.EnsureFenced(context.Background(), "oss00"))
	assert.Equal(t, types.HostFenced, tracker.State("oss00"))
	assert.Equal(t, 1, agent.offCalls)

	// Idempotent: a second call does not re-fence.
	require.NoError(t, tracker.EnsureFenced(context.Background(), "oss00"))
	assert.Equal(t, 1, agent.offCalls)
}

func TestEnsureFencedFatal(t *testing.T) {
	tracker, agent := newTestTracker(3)
	agent.offErr = errors.New("plug missing")

	err := tracker.EnsureFenced(context.Background(), "oss00")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fence.ErrFatal))
	assert.Equal(t, types.HostUnknown, tracker.State("oss00"))
	assert.True(t, tracker.Fatal("oss00"))

	// A fatal host is not retried.
	err = tracker.EnsureFenced(context.Background(), "oss00")
	require.Error(t, err)
	assert.Equal(t, 1, agent.offCalls)
}

func TestEnsureFencedWithoutAgentIsFatal(t *testing.T) {
	tracker := NewTracker(3, nil)
	tracker.Add("bare", "127.0.0.1:4412", nil)

	err := tracker.EnsureFenced(context.Background(), "bare")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fence.ErrFatal))
	assert.True(t, tracker.Fatal("bare"))
}

func TestPowerOnRecovery(t *testing.T) {
	tracker, agent := newTestTracker(3)
	require.NoError(t, tracker.EnsureFenced(context.Background(), "oss00"))

	require.NoError(t, tracker.PowerOn(context.Background(), "oss00"))
	assert.Equal(t, types.HostPoweringOn, tracker.State("oss00"))
	assert.GreaterOrEqual(t, agent.onCalls, 1)

	// The next successful RPC completes the recovery.
	tracker.ReportSuccess("oss00")
	assert.Equal(t, types.HostReachable, tracker.State("oss00"))
}

func TestPowerOnPersistentFailureIsFatal(t *testing.T) {
	tracker, agent := newTestTracker(3)
	require.NoError(t, tracker.EnsureFenced(context.Background(), "oss00"))
	agent.onErr = errors.New("bmc unreachable")

	err := tracker.PowerOn(context.Background(), "oss00")
	require.Error(t, err)
	assert.Equal(t, types.HostUnknown, tracker.State("oss00"))
	assert.True(t, tracker.Fatal("oss00"))
}

func TestFencedHostAnsweringStaysFenced(t *testing.T) {
	tracker, _ := newTestTracker(3)
	require.NoError(t, tracker.EnsureFenced(context.Background(), "oss00"))

	tracker.ReportSuccess("oss00")
	assert.Equal(t, types.HostFenced, tracker.State("oss00"))
}

func TestSnapshot(t *testing.T) {
	tracker, _ := newTestTracker(3)
	tracker.ReportSuccess("oss01")

	snap := tracker.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "oss00", snap[0].ID)
	assert.Equal(t, types.HostUnknown, snap[0].State)
	assert.Equal(t, "oss01", snap[1].ID)
	assert.Equal(t, types.HostReachable, snap[1].State)
	assert.Equal(t, "127.0.0.1:4411", snap[1].Address)
}

func TestStateChangeEvents(t *testing.T) {
	broker := events.NewBroker()
	broker.Start()
	defer broker.Stop()
	sub := broker.Subscribe()

	tracker := NewTracker(1, broker)
	tracker.Add("oss00", "127.0.0.1:4410", &fakeFence{})

	tracker.ReportSuccess("oss00")
	tracker.ReportFailure("oss00")

	var got []*events.Event
	for len(got) < 2 {
		got = append(got, <-sub)
	}
	assert.Equal(t, events.EventHostStateChanged, got[0].Type)
	assert.Equal(t, "reachable", got[0].Data["to"])
	assert.Equal(t, "unreachable", got[1].Data["to"])
}

func TestUnknownHost(t *testing.T) {
	tracker, _ := newTestTracker(3)
	assert.Equal(t, types.HostUnknown, tracker.State("ghost"))
	assert.Equal(t, "", tracker.Addr("ghost"))
	assert.Error(t, tracker.EnsureFenced(context.Background(), "ghost"))
	assert.Error(t, tracker.PowerOn(context.Background(), "ghost"))
}

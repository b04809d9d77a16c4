package framework

import (
	"context"
	"fmt"
	"time"

	"github.com/lanl/halo/pkg/client"
	"github.com/lanl/halo/pkg/types"
)

// Waiter polls a condition with a timeout and interval.
type Waiter struct {
	timeout  time.Duration
	interval time.Duration
}

// NewWaiter creates a new Waiter with the given timeout and polling interval
func NewWaiter(timeout, interval time.Duration) *Waiter {
	return &Waiter{timeout: timeout, interval: interval}
}

// DefaultWaiter returns a waiter with defaults sized to the engine tick
// (30s timeout, 250ms interval).
func DefaultWaiter() *Waiter {
	return NewWaiter(30*time.Second, 250*time.Millisecond)
}

// WaitFor waits for a condition to become true
func (w *Waiter) WaitFor(ctx context.Context, condition func() bool, description string) error {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	if condition() {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for: %s (timeout: %v)", description, w.timeout)
		case <-ticker.C:
			if condition() {
				return nil
			}
		}
	}
}

// WaitForResourceStatus waits until the manager reports the resource with
// the given status.
func (w *Waiter) WaitForResourceStatus(ctx context.Context, mgmt *client.Mgmt, resourceID string, status types.ResourceStatus) error {
	return w.WaitFor(ctx, func() bool {
		snap, err := mgmt.Monitor(ctx)
		if err != nil {
			return false
		}
		for _, res := range snap.Resources {
			if res.ID == resourceID && res.Status == status {
				return true
			}
		}
		return false
	}, fmt.Sprintf("resource %s to reach %s", resourceID, status))
}

// WaitForHostState waits until the manager reports the host in the given
// state.
func (w *Waiter) WaitForHostState(ctx context.Context, mgmt *client.Mgmt, hostID string, state types.HostState) error {
	return w.WaitFor(ctx, func() bool {
		snap, err := mgmt.Monitor(ctx)
		if err != nil {
			return false
		}
		for _, h := range snap.Hosts {
			if h.ID == hostID && h.State == state {
				return true
			}
		}
		return false
	}, fmt.Sprintf("host %s to reach %s", hostID, state))
}

package host

import (
	"context"
	"time"

	"github.com/lanl/halo/pkg/types"
)

// Pinger checks whether a host's RPC endpoint answers at the given address.
// The transport layer provides the implementation; the tracker only cares
// about success or failure.
type Pinger func(ctx context.Context, addr string) error

// RunProber probes every registered host at the given interval until the
// context is cancelled, feeding the results into the reachability state
// machine. The prober is what keeps an idle failover host's liveness fresh:
// without it, a host that currently serves nothing would never be probed and
// could not be chosen as a failover target.
func (t *Tracker) RunProber(ctx context.Context, interval time.Duration, ping Pinger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	t.probeAll(ctx, ping)
	for {
		select {
		case <-ticker.C:
			t.probeAll(ctx, ping)
		case <-ctx.Done():
			return
		}
	}
}

func (t *Tracker) probeAll(ctx context.Context, ping Pinger) {
	for _, id := range t.IDs() {
		// A fenced host is off; probing it would only log noise.
		if t.State(id) == types.HostFenced {
			continue
		}
		addr := t.Addr(id)
		if err := ping(ctx, addr); err != nil {
			t.logger.Debug().Str("host_id", id).Err(err).Msg("probe failed")
			t.ReportFailure(id)
		} else {
			t.ReportSuccess(id)
		}
	}
}

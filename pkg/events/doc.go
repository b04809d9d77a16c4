/*
Package events is the in-process event log for the HALO control plane.

The engine and the host tracker publish an event for every transition they
make: resource status changes, start/stop operations issued, host state
changes, fence attempts and their outcomes, and detected anomalies such as a
resource observed running on both hosts. The broker fans events out to any
number of subscribers.

Two things depend on this ordering being faithful:

  - The fence-before-start guarantee. When a resource is restarted on a new
    host while its previous host is unreachable, EventFenceSucceeded for the
    previous host must appear in the log before EventStartIssued for the new
    one. The property tests assert exactly that.
  - Anomaly visibility. Invariant violations are never repaired silently; an
    EventAnomaly always precedes the corrective stop/fence.

# Usage

	broker := events.NewBroker()
	broker.Start()
	defer broker.Stop()

	sub := broker.Subscribe()
	go func() {
		for ev := range sub {
			fmt.Println(ev.Type, ev.ResourceID, ev.Message)
		}
	}()

	broker.Publish(&events.Event{
		Type:       events.EventFenceIssued,
		HostID:     "mds00",
		Message:    "fencing before failover start",
	})

Delivery is best effort per subscriber: a subscriber that stops draining its
buffered channel misses events rather than stalling the publishers.
*/
package events

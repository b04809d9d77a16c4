/*
Package types defines the shared data model for the HALO control plane.

The types here are deliberately dumb: statuses, ordered OCF parameters, and
read-only snapshots. Behavior lives in the packages that own the data
(pkg/engine for resources, pkg/host for hosts); types exists so that the
engine, the remote agent, the management API, and the CLI can exchange values
without importing each other.

# Core Components

ResourceStatus:
  - The seven observed resource statuses: unknown, unrunnable, stopped,
    checkingAway, checkingHome, runningOnAway, runningOnHome
  - Ordered worst-first so a group's overall status is the minimum of its
    members' statuses (WorstStatus)

Location:
  - Home or Away, the two members of a failover pair
  - Maps to the corresponding Running/Checking statuses

HostState / PowerState:
  - The host state machine vocabulary: unknown, reachable, unreachable,
    fenced, poweringOn
  - Power as last reported by a fence agent: on, off, unknown

Params:
  - An ordered key/value list for OCF resource-agent parameters
  - Order is preserved end to end; some OCF scripts depend on it

Snapshots:
  - ResourceSnapshot, HostSnapshot, ClusterSnapshot: deep copies handed to
    the management server so status queries never touch live engine state

# Usage

	params := types.Params{
		{Key: "mountpoint", Value: "/mnt/ost1"},
		{Key: "target", Value: "tank/ost1"},
	}
	mp, _ := params.Get("mountpoint")

	overall := types.WorstStatus([]types.ResourceStatus{
		types.StatusRunningOnHome,
		types.StatusStopped,
	})
	// overall == types.StatusStopped
*/
package types

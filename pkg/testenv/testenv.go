package testenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lanl/halo/pkg/config"
	"github.com/lanl/halo/pkg/types"
)

// PIDFile returns the path of the pid file a remote agent writes so the test
// fence agent can find (and kill) it.
func PIDFile(dir, agentID string) string {
	return filepath.Join(dir, agentID+".pid")
}

// AdvertisePID writes the current process ID to <test_dir>/<agent_id>.pid.
//
// The test fence agent uses the presence or absence of this file as the
// host's "power" state, so an agent that cannot write it must not serve:
// callers treat an error as fatal. Outside the test environment (no test
// directory or no agent ID) this is a no-op.
func AdvertisePID(agentID string) error {
	dir, ok := config.TestDirectory()
	if !ok || agentID == "" {
		return nil
	}

	path := PIDFile(dir, agentID)
	pid := fmt.Sprintf("%d", os.Getpid())
	if err := os.WriteFile(path, []byte(pid), 0644); err != nil {
		return fmt.Errorf("could not advertise agent pid to %q: %w", path, err)
	}
	return nil
}

// StateFile returns the path of the file whose existence means "this
// resource is running on this agent" in the test environment.
func StateFile(dir, agentID, resourceID string) string {
	return filepath.Join(dir, agentID+"."+resourceID)
}

// ResourceID derives the state-file resource identifier the test OCF scripts
// use for a resource of the given kind, e.g. "zfs.tank" for a pool or
// "lustre._mnt_test_ost" for a target mounted at /mnt/test/ost.
func ResourceID(kind string, params types.Params) (string, error) {
	switch kind {
	case "heartbeat/ZFS":
		pool, ok := params.Get("pool")
		if !ok {
			return "", fmt.Errorf("ZFS resource has no pool parameter")
		}
		return "zfs." + pool, nil
	case "lustre/Lustre":
		mountpoint, ok := params.Get("mountpoint")
		if !ok {
			return "", fmt.Errorf("Lustre resource has no mountpoint parameter")
		}
		return "lustre." + strings.ReplaceAll(mountpoint, "/", "_"), nil
	default:
		return "", fmt.Errorf("no test state file convention for kind %q", kind)
	}
}

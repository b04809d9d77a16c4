package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/lanl/halo/pkg/config"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Generate a config stanza for this host from its pools and mounts",
	Long: `Inspect the local zpools and mounted Lustre targets and print a TOML
host stanza describing them: one ZFS resource per pool and one Lustre
resource per target, depending on its containing pool. The output is a
starting point for the cluster configuration, not a finished one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hostname, err := os.Hostname()
		if err != nil {
			return err
		}

		pools, err := listZpools()
		if err != nil {
			return err
		}

		mounts, err := lustreMounts()
		if err != nil {
			return err
		}

		host := config.Host{
			Hostname:  hostname,
			Resources: make(map[string]config.Resource),
		}
		for _, pool := range pools {
			host.Resources[pool] = config.Resource{
				Kind:       "heartbeat/ZFS",
				Parameters: map[string]string{"pool": pool},
			}
		}
		for _, line := range mounts {
			id, res, err := lustreResource(line)
			if err != nil {
				return err
			}
			host.Resources[id] = res
		}

		out, err := toml.Marshal(config.Config{Hosts: []config.Host{host}})
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

func listZpools() ([]string, error) {
	out, err := exec.Command("zpool", "list", "-H", "-o", "name").Output()
	if err != nil {
		return nil, fmt.Errorf("could not list zpools: %w", err)
	}
	var pools []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line != "" {
			pools = append(pools, line)
		}
	}
	return pools, nil
}

func lustreMounts() ([]string, error) {
	out, err := exec.Command("mount", "-t", "lustre").Output()
	if err != nil {
		return nil, fmt.Errorf("could not list lustre mounts: %w", err)
	}
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// lustreResource parses one mount line, e.g.
//
//	tank/ost1 on /mnt/ost1 type lustre (ro,svname=lustre-OST0001,...)
//
// into a Lustre resource depending on its containing pool.
func lustreResource(mountLine string) (string, config.Resource, error) {
	fields := strings.Fields(mountLine)
	if len(fields) < 6 {
		return "", config.Resource{}, fmt.Errorf("unparseable mount line %q", mountLine)
	}
	device := fields[0]
	mountpoint := fields[2]
	opts := strings.Trim(fields[5], "()")

	pool := strings.SplitN(device, "/", 2)[0]

	kind := ""
	for _, opt := range strings.Split(opts, ",") {
		if !strings.HasPrefix(opt, "svname=") {
			continue
		}
		switch {
		case strings.Contains(opt, "MDT"):
			kind = "mdt"
		case strings.Contains(opt, "MGS"):
			kind = "mgs"
		case strings.Contains(opt, "OST"):
			kind = "ost"
		}
	}
	if kind == "" {
		return "", config.Resource{}, fmt.Errorf("could not determine target kind from %q", mountLine)
	}

	id := "lustre." + strings.ReplaceAll(mountpoint, "/", "_")
	return id, config.Resource{
		Kind: "lustre/Lustre",
		Parameters: map[string]string{
			"mountpoint": mountpoint,
			"target":     device,
			"kind":       kind,
		},
		Requires: pool,
	}, nil
}

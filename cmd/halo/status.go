package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lanl/halo/pkg/client"
	"github.com/lanl/halo/pkg/types"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of every managed resource",
	RunE: func(cmd *cobra.Command, args []string) error {
		excludeNormal, _ := cmd.Flags().GetBool("exclude-normal")

		mgmt, err := client.NewMgmt(socketPath())
		if err != nil {
			return &exitError{code: exitUnreachable, err: err}
		}
		defer mgmt.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		snap, err := mgmt.Monitor(ctx)
		if err != nil {
			return &exitError{code: exitUnreachable, err: err}
		}

		for _, res := range snap.Resources {
			if excludeNormal && res.Status == types.StatusRunningOnHome {
				continue
			}
			fmt.Printf("%s: [%s]\n", renderStatus(res.Status), renderParams(res.Params))
		}
		return nil
	},
}

// renderStatus spells statuses for operators; a resource at home is simply
// OK.
func renderStatus(s types.ResourceStatus) string {
	switch s {
	case types.StatusRunningOnHome:
		return "OK"
	case types.StatusRunningOnAway:
		return "Failed over"
	case types.StatusCheckingHome:
		return "Checking on home"
	case types.StatusCheckingAway:
		return "Checking on failover"
	case types.StatusStopped:
		return "Stopped"
	case types.StatusUnrunnable:
		return "Can't run anywhere"
	default:
		return "Unknown"
	}
}

func renderParams(params types.Params) string {
	parts := make([]string, 0, len(params))
	for _, kv := range params {
		parts = append(parts, fmt.Sprintf("%s: %s", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func init() {
	statusCmd.Flags().BoolP("exclude-normal", "x", false, "hide resources that are running on their home host")
}

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lanl/halo/pkg/client"
)

var powerCmd = &cobra.Command{
	Use:   "power",
	Short: "Query or force host power state through the manager",
}

var powerStatusCmd = &cobra.Command{
	Use:   "status [host...]",
	Short: "Report host power state; all hosts when none are named",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgmt, err := client.NewMgmt(socketPath())
		if err != nil {
			return &exitError{code: exitUnreachable, err: err}
		}
		defer mgmt.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		hosts := args
		if len(hosts) == 0 {
			snap, err := mgmt.Monitor(ctx)
			if err != nil {
				return &exitError{code: exitUnreachable, err: err}
			}
			for _, h := range snap.Hosts {
				hosts = append(hosts, h.ID)
			}
		}

		failed := false
		for _, h := range hosts {
			ok, detail, err := mgmt.PowerStatus(ctx, h)
			switch {
			case err != nil:
				return &exitError{code: exitUnreachable, err: err}
			case !ok:
				fmt.Printf("%s: could not determine power status: %s\n", h, detail)
				failed = true
			default:
				fmt.Printf("%s is %s\n", h, detail)
			}
		}
		if failed {
			return &exitError{code: exitFence, err: fmt.Errorf("power status failed")}
		}
		return nil
	},
}

var powerOffCmd = &cobra.Command{
	Use:   "off <host>",
	Short: "Fence a host off",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return powerAction(cmd, args, "off")
	},
}

var powerOnCmd = &cobra.Command{
	Use:   "on <host>",
	Short: "Restore power to a host",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return powerAction(cmd, args, "on")
	},
}

func powerAction(cmd *cobra.Command, hosts []string, action string) error {
	mgmt, err := client.NewMgmt(socketPath())
	if err != nil {
		return &exitError{code: exitUnreachable, err: err}
	}
	defer mgmt.Close()

	// Fencing retries with backoff; give the whole batch room to finish.
	ctx, cancel := context.WithTimeout(cmd.Context(), 120*time.Second)
	defer cancel()

	call := mgmt.PowerOff
	if action == "on" {
		call = mgmt.PowerOn
	}

	failed := false
	for _, h := range hosts {
		ok, detail, err := call(ctx, h)
		switch {
		case err != nil:
			return &exitError{code: exitUnreachable, err: err}
		case !ok:
			fmt.Printf("%s power %s: failure: %s\n", h, action, detail)
			failed = true
		default:
			fmt.Printf("%s power %s: success\n", h, action)
		}
	}
	if failed {
		return &exitError{code: exitFence, err: fmt.Errorf("power %s failed", action)}
	}
	return nil
}

func init() {
	powerCmd.AddCommand(powerStatusCmd)
	powerCmd.AddCommand(powerOffCmd)
	powerCmd.AddCommand(powerOnCmd)
}

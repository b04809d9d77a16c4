package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lanl/halo/pkg/cluster"
	"github.com/lanl/halo/pkg/config"
	"github.com/lanl/halo/pkg/events"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the cluster configuration and print a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath())
		if err != nil {
			return err
		}

		// Construction catches what static validation cannot, e.g. fence
		// agents with unusable parameters.
		c, err := cluster.New(cfg, events.NewBroker())
		if err != nil {
			return err
		}

		fmt.Println("=== Resource Groups ===")
		for _, group := range c.Groups {
			for _, res := range group.Resources() {
				fmt.Printf("%s %s\n", res.Kind, res.Params)
				fmt.Printf("\thome host: %s\n", res.HomeHost)
				if res.AwayHost != "" {
					fmt.Printf("\taway host: %s\n", res.AwayHost)
				}
			}
		}

		fmt.Println()
		fmt.Println("=== Hosts ===")
		for _, h := range c.Tracker.Snapshot() {
			fmt.Printf("%s (%s)\n", h.ID, h.Address)
		}

		fmt.Printf("\nconfiguration valid: %d hosts, %d resource groups\n",
			len(c.Tracker.Snapshot()), len(c.Groups))
		return nil
	},
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lanl/halo/pkg/agent"
	"github.com/lanl/halo/pkg/api"
	"github.com/lanl/halo/pkg/client"
	"github.com/lanl/halo/pkg/cluster"
	"github.com/lanl/halo/pkg/config"
	"github.com/lanl/halo/pkg/engine"
	"github.com/lanl/halo/pkg/events"
	"github.com/lanl/halo/pkg/log"
	"github.com/lanl/halo/pkg/metrics"
)

var (
	// Version information (set via ldflags during build)
	Version = "dev"
)

// Exit codes for the CLI surface.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUnreachable = 2
	exitFence       = 3
)

// exitError carries a specific process exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(exitFailure)
	}
}

var (
	flagConfig  string
	flagSocket  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "halo",
	Short: "HALO - high availability cluster manager for storage services",
	Long: `HALO keeps long-lived storage resources (Lustre targets and the
zpools under them) alive across a cluster of hosts. A single manager
monitors every resource through remote agents, fails resources over
between their home and away hosts, and fences misbehaving hosts before
any restart so that a resource can never run in two places at once.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.InfoLevel
		if flagVerbose {
			level = log.DebugLevel
		}
		log.Init(log.Config{Level: level})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to the cluster config (default $HALO_CONFIG or /etc/halo/halo.conf)")
	rootCmd.PersistentFlags().StringVar(&flagSocket, "socket", "", "path to the management socket (default $HALO_SOCKET or /var/run/halo.socket)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(managerCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(powerCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(discoverCmd)
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.DefaultConfigPath()
}

func socketPath() string {
	if flagSocket != "" {
		return flagSocket
	}
	return config.DefaultSocket()
}

var managerCmd = &cobra.Command{
	Use:   "manager",
	Short: "Run the cluster manager",
	Long: `Run the cluster manager: one engine per resource group driving its
monitor/decide/act loop, the host liveness prober, and the management
API on the local socket.

Without --manage-resources the manager observes only: it probes and
reports resource status but never starts, stops, or fences anything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manage, _ := cmd.Flags().GetBool("manage-resources")
		metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

		cfg, err := config.Load(configPath())
		if err != nil {
			return err
		}

		broker := events.NewBroker()
		broker.Start()
		defer broker.Stop()

		c, err := cluster.New(cfg, broker)
		if err != nil {
			return err
		}

		agents := client.NewAgents()
		defer agents.Close()

		engines := make([]*engine.Engine, 0, len(c.Groups))
		for _, group := range c.Groups {
			engines = append(engines, engine.New(group, c.Tracker, agents, broker, cfg.Tuning, manage))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			return api.NewServer(c).Run(ctx, socketPath())
		})
		g.Go(func() error {
			c.Tracker.RunProber(ctx, cfg.Tuning.ProbeInterval(), client.Ping)
			return nil
		})
		for _, e := range engines {
			e := e
			g.Go(func() error {
				e.Run(ctx)
				return nil
			})
		}
		if metricsAddr != "" {
			g.Go(func() error {
				return serveMetrics(ctx, metricsAddr)
			})
		}

		mgrLog := log.WithComponent("manager")
		mgrLog.Info().
			Int("groups", len(engines)).
			Bool("manage_resources", manage).
			Msg("manager running")

		err = g.Wait()
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Run the remote agent",
	Long: `Run the remote agent that executes OCF resource operations on this
host on behalf of the manager. The agent listens on the first local
address inside the management network.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		network, _ := cmd.Flags().GetString("network")
		port, _ := cmd.Flags().GetInt("port")
		testID, _ := cmd.Flags().GetString("test-id")
		ocfRoot, _ := cmd.Flags().GetString("ocf-root")

		if network == "" {
			network = config.DefaultNetwork()
		}
		if port == 0 {
			port = config.RemotePort()
		}

		cfg := agent.Config{
			Network: network,
			Port:    port,
			OCFRoot: ocfRoot,
			TestID:  testID,
		}

		srv, err := agent.NewServer(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return srv.Run(ctx, cfg)
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop every resource in the cluster",
	Long: `Stop all resources described by the configuration, children before
parents, by issuing stop operations directly to the remote agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath())
		if err != nil {
			return err
		}

		broker := events.NewBroker()
		broker.Start()
		defer broker.Stop()

		c, err := cluster.New(cfg, broker)
		if err != nil {
			return err
		}

		agents := client.NewAgents()
		defer agents.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		for _, group := range c.Groups {
			e := engine.New(group, c.Tracker, agents, broker, cfg.Tuning, true)
			e.StopAll(ctx)
		}
		return nil
	},
}

func serveMetrics(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: metrics.Handler()}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	return srv.ListenAndServe()
}

func init() {
	managerCmd.Flags().Bool("manage-resources", false, "actively manage resources instead of only observing")
	managerCmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address (empty disables)")

	agentCmd.Flags().String("network", "", "management network CIDR to listen inside (default $HALO_NET)")
	agentCmd.Flags().Int("port", 0, "port to listen on (default $HALO_PORT or 8000)")
	agentCmd.Flags().String("test-id", "", "agent identity in the test environment")
	agentCmd.Flags().String("ocf-root", "", "directory holding OCF resource agent scripts (default $OCF_ROOT)")
}

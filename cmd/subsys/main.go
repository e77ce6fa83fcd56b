// cmd/subsys/main.go
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tamzrod/subsys-registry/internal/config"
	"github.com/tamzrod/subsys-registry/internal/poller"
	"github.com/tamzrod/subsys-registry/internal/registry"
	"github.com/tamzrod/subsys-registry/internal/status"
	"github.com/tamzrod/subsys-registry/internal/writer"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	// publish flags
	interval time.Duration

	// list/inspect flags
	filterPattern string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subsys",
	Short: "Subsystem registry with status-word filtering",
	Long: `subsys keeps a fixed-capacity registry of named subsystems.

Each subsystem carries a packed status word (power, data, activity, error,
performance, resource) and an optional one-shot data payload. When a publish
section is configured, every change is mirrored into Modbus holding registers.

Run without a subcommand to start the interactive menu.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runMenuCmd,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the seeded registry, optionally filtered by an 8-character pattern",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the seeded registry to its status memory",
	Long: `Writes the configured registry into the publish endpoint once, or every
--interval until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runPublish,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Read the published status memory back and print it",
	Long: `Reads the status memory from the modbus publish endpoint, rebuilds the
registry it describes and prints it, optionally filtered with --filter.`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML config with seed subsystems and publish target")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	for _, c := range []*cobra.Command{listCmd, inspectCmd} {
		c.Flags().StringVarP(&filterPattern, "filter", "f", "", "8-character pattern over 0, 1 and *")
	}
	publishCmd.Flags().DurationVar(&interval, "interval", 0, "re-assert period (0 publishes once)")

	rootCmd.AddCommand(listCmd, publishCmd, inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------
// Commands
// --------------------

func runMenuCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	reg, err := seedRegistry(cfg)
	if err != nil {
		return err
	}

	s := newSession(reg, cmd.InOrStdin(), cmd.OutOrStdout(), logger)

	if cfg.Publish != nil {
		pub, closeFn, err := buildPublisher(cfg.Publish)
		if err != nil {
			return err
		}
		defer closeFn()
		s.publish = func() error { return pub.Publish(status.Encode(reg.Snapshot())) }
	}

	return s.run()
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	reg, err := seedRegistry(cfg)
	if err != nil {
		return err
	}

	return printRegistry(cmd, reg)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	if cfg.Publish == nil {
		return fmt.Errorf("inspect: config has no publish section")
	}

	p, closePoller, err := poller.Build(cfg.Publish)
	if err != nil {
		return fmt.Errorf("poller build failed: %w", err)
	}
	defer closePoller()

	res := p.PollOnce()
	if res.Err != nil {
		return fmt.Errorf("inspect: %w", res.Err)
	}
	logger.Debug("status memory read back",
		zap.String("endpoint", cfg.Publish.Endpoint),
		zap.Int("registers", len(res.Raw)),
	)

	reg, err := registry.Restore(res.Snapshot)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	return printRegistry(cmd, reg)
}

// printRegistry prints reg, filtered when --filter is set.
func printRegistry(cmd *cobra.Command, reg *registry.Registry) error {
	if filterPattern == "" {
		return reg.PrintAll(cmd.OutOrStdout())
	}

	subs, err := reg.Filter(filterPattern)
	if err != nil {
		return err
	}
	return registry.PrintList(cmd.OutOrStdout(), subs)
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	if cfg.Publish == nil {
		return fmt.Errorf("publish: config has no publish section")
	}

	reg, err := seedRegistry(cfg)
	if err != nil {
		return err
	}

	pub, closeFn, err := buildPublisher(cfg.Publish)
	if err != nil {
		return err
	}
	defer closeFn()

	source := func() []uint16 { return status.Encode(reg.Snapshot()) }

	if err := pub.Publish(source()); err != nil {
		return err
	}
	logger.Info("status memory published",
		zap.String("endpoint", cfg.Publish.Endpoint),
		zap.Int("subsystems", reg.Len()),
	)

	if interval <= 0 {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pub.Run(ctx, interval, source)
	return nil
}

// --------------------
// Wiring
// --------------------

// loadConfig runs Load -> ApplyEnv -> Validate -> Normalize.
// An empty path starts from an empty config, still subject to env overrides.
func loadConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("config load failed: %w", err)
		}
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, fmt.Errorf("config env failed: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)

	return cfg, nil
}

func buildPublisher(p *config.PublishConfig) (*writer.Publisher, func() error, error) {
	plan, err := writer.BuildPlan(p)
	if err != nil {
		return nil, nil, fmt.Errorf("writer plan failed: %w", err)
	}

	cli, closeFn, err := writer.BuildEndpointClient(plan)
	if err != nil {
		return nil, nil, fmt.Errorf("writer client failed: %w", err)
	}

	return writer.New(plan, cli, logger), closeFn, nil
}

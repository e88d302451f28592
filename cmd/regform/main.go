package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-regform/pkg/config"
	"github.com/goliatone/go-regform/pkg/submit"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath      string
	endpoint        string
	verbose         bool
	metricsTextfile string

	cfg      config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *submit.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "regform",
		Short: "Fill in and submit the registration form from a terminal",
		Long: `regform validates and submits registration details to a hosted form
endpoint. CNIC and mobile numbers are formatted as they are entered, the
password strength is shown live, and a failed submission is retried once
through a plain form post (or a self-submitting page).

Settings come from defaults, an optional YAML file (--config), REGFORM_*
environment variables and flags, in that order.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.endpoint, "endpoint", "", "form endpoint URL (overrides config)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	flags.StringVar(&a.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(
		newRegisterCmd(a),
		newSubmitCmd(a),
		newValidateCmd(a),
		newStrengthCmd(),
		newFormatCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.endpoint != "" {
		cfg.Endpoint = a.endpoint
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.Named("regform")

	a.registry = prometheus.NewRegistry()
	a.metrics, err = submit.NewMetrics(a.registry, "regform")
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	return nil
}

func (a *app) teardown() error {
	if a.metricsTextfile != "" && a.registry != nil {
		if err := prometheus.WriteToTextfile(a.metricsTextfile, a.registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	_ = a.logger.Sync()
	return nil
}

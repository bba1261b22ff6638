package stream

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"connectrpc.com/otelconnect"
	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1-telemetry-producer/log"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/cmd/util"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/config"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/producer"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/session"
	seq "github.com/mpapenbr/f1-telemetry-producer/pkg/stream"
)

//nolint:funlen // flags
func NewStreamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "streams the telemetry of one lap to the ingestion service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runStream(cmd.Context(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&config.Target,
		"target",
		session.DefaultTarget,
		"address of the ingestion service (host:port or http(s) url)")
	cmd.Flags().StringVar(&config.DriverID,
		"driver-id",
		"",
		"driver id sent with each message (default: driver of selector)")
	cmd.Flags().StringVar(&config.Pacing,
		"pacing",
		"0",
		"fixed delay between two messages (0 sends as fast as possible)")
	cmd.Flags().IntVar(&config.Speed,
		"speed",
		0,
		"replay with recorded timing divided by this factor (0: disabled)")
	cmd.Flags().StringVar(&config.Deadline,
		"deadline",
		"0",
		"time limit for a run (0: no limit)")
	cmd.Flags().StringVarP(&config.Token,
		"token", "t", "", "api token for the ingestion service")
	cmd.Flags().BoolVar(&config.TLS,
		"tls",
		false,
		"connect with TLS")
	cmd.Flags().StringVar(&config.TLSCAFile,
		"tls-ca",
		"",
		"path to CA certificate for TLS")
	cmd.Flags().BoolVar(&config.TLSSkipVerify,
		"tls-skip-verify",
		false,
		"do not verify the server certificate")
	cmd.Flags().BoolVar(&config.StrictCount,
		"strict-count",
		false,
		"fail if the server processed a different number of messages")
	cmd.Flags().StringVar(&config.WaitForTarget,
		"wait-for-target",
		"0",
		"duration to wait for the ingestion service to become reachable")
	cmd.Flags().IntVar(&config.Repeat,
		"repeat",
		1,
		"number of runs")
	cmd.Flags().BoolVar(&config.EnableTelemetry,
		"enable-telemetry",
		false,
		"enables telemetry")
	cmd.Flags().StringVar(&config.TelemetryEndpoint,
		"telemetry-endpoint",
		"localhost:4317",
		"Endpoint that receives open telemetry data (stdout for console output)")
	return cmd
}

//nolint:funlen // ok
func runStream(ctx context.Context, out io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := producerConfig()
	if err != nil {
		return err
	}
	if config.EnableTelemetry {
		log.Info("Enabling telemetry")
		if telemetry, err := config.SetupTelemetry(ctx); err == nil {
			defer telemetry.Shutdown()
			if otel, err := otelconnect.NewInterceptor(); err == nil {
				cfg.Interceptors = append(cfg.Interceptors, otel)
			}
		} else {
			log.Warn("Could not setup telemetry", log.ErrorField(err))
		}
	}
	src, closer, err := util.NewSource(ctx)
	if err != nil {
		return session.NewDataSourceError(err)
	}
	defer closer()

	for i := range max(config.Repeat, 1) {
		outcome, err := producer.Run(ctx, cfg, src)
		if err != nil {
			log.Error("run failed", log.Int("run", i+1), log.ErrorField(err))
			return err
		}
		printOutcome(out, outcome)
	}
	return nil
}

func producerConfig() (producer.Config, error) {
	sel, err := model.ParseSelector(config.Selector)
	if err != nil {
		return producer.Config{}, session.NewDataSourceError(err)
	}
	cfg := producer.Config{
		Target:   config.Target,
		Selector: sel,
		DriverID: config.DriverID,
		Token:    config.Token,

		StrictCount: config.StrictCount,
		Pacing:      seq.Pacing{Speed: config.Speed},
	}
	if cfg.Pacing.Delay, err = util.ParseDuration("pacing", config.Pacing); err != nil {
		return cfg, err
	}
	if cfg.Deadline, err = util.ParseDuration("deadline", config.Deadline); err != nil {
		return cfg, err
	}
	if cfg.WaitForTarget, err = util.ParseDuration("wait-for-target",
		config.WaitForTarget); err != nil {
		return cfg, err
	}
	if cfg.TLS, err = util.TLSConfig(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func printOutcome(out io.Writer, outcome *model.StreamOutcome) {
	fmt.Fprintf(out, "status: %s\n", outcome.Status)
	fmt.Fprintf(out, "total_packets: %d\n", outcome.TotalPackets)
}

package mockingest

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"connectrpc.com/otelconnect"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mpapenbr/f1-telemetry-producer/log"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/cmd/util"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/config"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/ingest"
)

var (
	severAfter    int32
	responseDelay string
)

func NewMockIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock-ingest",
		Short: "starts a deterministic ingestion service (development only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return startServer(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&config.ListenAddr,
		"listen-addr",
		"a",
		"localhost:50051",
		"listen address (h2c)")
	cmd.Flags().StringVar(&config.ServerStatus,
		"status",
		ingest.DefaultStatus,
		"status reported after each run")
	cmd.Flags().StringVar(&config.MinClientVersion,
		"min-client-version",
		"",
		"reject producers older than this version")
	cmd.Flags().StringVarP(&config.Token,
		"token", "t", "", "api token required from producers")
	cmd.Flags().BoolVar(&config.PrintMessage,
		"print-message",
		false,
		"if true and log level is debug, each received message is logged")
	cmd.Flags().Int32Var(&severAfter,
		"sever-after",
		0,
		"abort each stream after this number of messages (0: never)")
	cmd.Flags().StringVar(&responseDelay,
		"response-delay",
		"0",
		"wait this duration before replying")
	cmd.Flags().BoolVar(&config.EnableTelemetry,
		"enable-telemetry",
		false,
		"enables telemetry")
	cmd.Flags().StringVar(&config.TelemetryEndpoint,
		"telemetry-endpoint",
		"localhost:4317",
		"Endpoint that receives open telemetry data")
	return cmd
}

//nolint:funlen // ok
func startServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	delay, err := util.ParseDuration("response-delay", responseDelay)
	if err != nil {
		return err
	}
	opts := []ingest.Option{
		ingest.WithStatus(config.ServerStatus),
		ingest.WithSeverAfter(severAfter),
		ingest.WithResponseDelay(delay),
		ingest.WithMinClientVersion(config.MinClientVersion),
		ingest.WithToken(config.Token),
		ingest.WithDebugWire(config.PrintMessage),
	}
	var handlerOpts []connect.HandlerOption
	if config.EnableTelemetry {
		log.Info("Enabling telemetry")
		if telemetry, err := config.SetupTelemetry(ctx); err == nil {
			defer telemetry.Shutdown()
			if myOtel, err := otelconnect.NewInterceptor(); err == nil {
				handlerOpts = append(handlerOpts, connect.WithInterceptors(myOtel))
			}
		} else {
			log.Warn("Could not setup telemetry", log.ErrorField(err))
		}
	}

	mux := ingest.NewMux(ingest.NewServer(opts...), handlerOpts...)
	//nolint:gosec // development server
	server := &http.Server{
		Addr:    config.ListenAddr,
		Handler: h2c.NewHandler(mux, &http2.Server{}),
	}
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting mock ingestion service", log.String("addr", config.ListenAddr))
		errChan <- server.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		log.Error("server could not be started", log.ErrorField(err))
		return err
	case <-ctx.Done():
		log.Debug("Got signal")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info("Server terminated")
	return nil
}

// Package producer runs one streaming run: load the dataset, build the
// message sequence and drive the session.
package producer

import (
	"context"
	"crypto/tls"
	"time"

	"connectrpc.com/connect"

	"github.com/mpapenbr/f1-telemetry-producer/log"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/session"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/source"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/stream"
)

type Config struct {
	Target   string
	Selector model.Selector
	// DriverID is sent with each message, defaults to Selector.Driver
	DriverID      string
	Pacing        stream.Pacing
	Deadline      time.Duration
	TLS           *tls.Config
	Token         string
	StrictCount   bool
	WaitForTarget time.Duration
	Interceptors  []connect.Interceptor
	Logger        *log.Logger
}

// Run streams the dataset of cfg.Selector to cfg.Target.
// Data source failures are reported as session.ErrDataSource before any
// connection attempt, all other errors come unmodified from the session driver.
func Run(ctx context.Context, cfg Config, src source.Source) (*model.StreamOutcome, error) {
	l := cfg.Logger
	if l == nil {
		l = log.Default().Named("producer")
	}
	if err := cfg.Selector.Validate(); err != nil {
		return nil, session.NewDataSourceError(err)
	}
	samples, err := src.Load(ctx, cfg.Selector)
	if err != nil {
		return nil, session.NewDataSourceError(err)
	}
	driverID := cfg.DriverID
	if driverID == "" {
		driverID = cfg.Selector.Driver
	}
	l.Info("dataset loaded",
		log.String("selector", cfg.Selector.String()),
		log.String("driverId", driverID),
		log.Int("samples", len(samples)),
		log.Bool("paced", cfg.Pacing.Enabled()))

	seq := stream.New(samples, driverID, stream.WithPacing(cfg.Pacing))
	opts := []session.Option{
		session.WithDeadline(cfg.Deadline),
		session.WithToken(cfg.Token),
		session.WithStrictCount(cfg.StrictCount),
		session.WithWaitForTarget(cfg.WaitForTarget),
		session.WithInterceptors(cfg.Interceptors...),
		session.WithLogger(l.Named("session")),
	}
	if cfg.Target != "" {
		opts = append(opts, session.WithTarget(cfg.Target))
	}
	if cfg.TLS != nil {
		opts = append(opts, session.WithTLS(cfg.TLS))
	}
	return session.NewDriver(opts...).Run(ctx, seq)
}

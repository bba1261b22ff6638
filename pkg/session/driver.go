// Package session drives a single client-streaming StreamTelemetry call.
package session

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/mpapenbr/f1-telemetry-producer/gen/f1"
	"github.com/mpapenbr/f1-telemetry-producer/gen/f1/f1connect"
	"github.com/mpapenbr/f1-telemetry-producer/log"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/utils"
	"github.com/mpapenbr/f1-telemetry-producer/version"
)

const DefaultTarget = "localhost:50051"

// MessageSource provides the messages to send.
// Next returns io.EOF after the last message.
type MessageSource interface {
	Next(ctx context.Context) (*f1.TelemetryData, error)
}

type Option func(*Driver)

func WithTarget(target string) Option {
	return func(d *Driver) {
		d.target = target
	}
}

// WithDeadline bounds the whole run (connect, stream, response). 0 means no deadline.
func WithDeadline(deadline time.Duration) Option {
	return func(d *Driver) {
		d.deadline = deadline
	}
}

// WithTLS switches from h2c to TLS
func WithTLS(cfg *tls.Config) Option {
	return func(d *Driver) {
		d.tlsConfig = cfg
	}
}

func WithToken(token string) Option {
	return func(d *Driver) {
		d.token = token
	}
}

func WithInterceptors(interceptors ...connect.Interceptor) Option {
	return func(d *Driver) {
		d.interceptors = append(d.interceptors, interceptors...)
	}
}

// WithStrictCount fails the run with ErrProtocol if the server reports
// a different number of processed messages than were sent.
func WithStrictCount(strict bool) Option {
	return func(d *Driver) {
		d.strictCount = strict
	}
}

// WithWaitForTarget waits up to this duration for the target to accept connections
func WithWaitForTarget(wait time.Duration) Option {
	return func(d *Driver) {
		d.waitForTarget = wait
	}
}

func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		d.l = l
	}
}

// WithStateObserver registers a callback which is called on each state transition
func WithStateObserver(observer func(State)) Option {
	return func(d *Driver) {
		d.observer = observer
	}
}

// Driver executes exactly one streaming run.
type Driver struct {
	target        string
	deadline      time.Duration
	tlsConfig     *tls.Config
	token         string
	interceptors  []connect.Interceptor
	strictCount   bool
	waitForTarget time.Duration
	observer      func(State)
	tracer        trace.Tracer
	l             *log.Logger
	metrics       *driverMetrics

	mu    sync.Mutex
	state State
}

func NewDriver(opts ...Option) *Driver {
	ret := &Driver{
		target: DefaultTarget,
		l:      log.Default().Named("session"),
		state:  StateIdle,
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.metrics = newDriverMetrics(ret.l)
	return ret
}

func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Run streams all messages of src to the target and returns the server's summary.
// Either the whole sequence was accepted and the outcome is returned, or an *Error
// describing the failure. A Driver can be used for one run only.
//
//nolint:funlen,cyclop // keeping the state machine in one place
func (d *Driver) Run(ctx context.Context, src MessageSource) (*model.StreamOutcome, error) {
	if !d.transition(StateConnecting) {
		return nil, ErrAlreadyRun
	}
	start := time.Now()
	runID := uuid.New().String()
	ctx, span := d.startRunSpan(ctx, runID)
	l := d.l.With(log.String("runId", runID), log.String("target", d.target)).
		With(traceField(span)...)

	if d.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.deadline)
		defer cancel()
	}
	var sent int64
	// cancelling callCtx releases the stream and its connection on every exit path
	callCtx, cancelCall := context.WithCancel(ctx)
	defer cancelCall()

	fail := func(err error) (*model.StreamOutcome, error) {
		state := d.State()
		runErr := classify(ctx, state, err)
		d.transition(StateFailed)
		d.metrics.runFinished(ctx, "failed")
		endRunSpan(span, sent, 0, runErr)
		l.Error("run failed",
			log.String("state", state.String()),
			log.String("kind", runErr.Kind.Error()),
			log.ErrorField(err))
		return nil, runErr
	}

	// Connecting
	l.Debug("connecting")
	addr, baseURL, err := resolveTarget(d.target, d.tlsConfig != nil)
	if err != nil {
		return fail(err)
	}
	if err = utils.WaitForTCP(ctx, addr, d.waitForTarget); err != nil {
		return fail(err)
	}
	tlsConfig := d.tlsConfig
	if tlsConfig == nil && strings.HasPrefix(baseURL, "https://") {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	conn, err := dialHTTP2(ctx, addr, tlsConfig)
	if err != nil {
		return fail(err)
	}
	defer func() {
		cancelCall()
		conn.Close()
	}()
	headers := map[string]string{
		HeaderRunID:   runID,
		HeaderVersion: version.Version,
	}
	if d.token != "" {
		headers[HeaderAPIToken] = d.token
	}
	client := f1connect.NewF1TelemetryServiceClient(
		&http.Client{Transport: conn}, baseURL,
		connect.WithGRPC(),
		connect.WithInterceptors(
			append([]connect.Interceptor{newHeaderInterceptor(headers)}, d.interceptors...)...),
	)
	stream := client.StreamTelemetry(callCtx)

	// Streaming
	d.transition(StateStreaming)
	l.Debug("streaming")
	for {
		msg, err := src.Next(callCtx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if callCtx.Err() == nil {
				err = fmt.Errorf("%w: %w", errSourceFailed, err)
			}
			return fail(err)
		}
		if err := stream.Send(msg); err != nil {
			if errors.Is(err, io.EOF) {
				// the server ended the call, the actual error is delivered by CloseAndReceive
				if _, rcvErr := stream.CloseAndReceive(); rcvErr != nil {
					err = rcvErr
				} else {
					err = fmt.Errorf("stream closed by server after %d messages", sent)
				}
			}
			return fail(err)
		}
		sent++
		d.metrics.messageSent(ctx)
		if sent%100 == 0 {
			l.Debug("progress", log.Int64("sent", sent))
		}
	}

	// AwaitingResponse
	d.transition(StateAwaitingResponse)
	l.Debug("awaiting response", log.Int64("sent", sent))
	resp, err := stream.CloseAndReceive()
	if err != nil {
		return fail(err)
	}
	if err := d.validate(resp.Msg, sent); err != nil {
		return fail(err)
	}
	if int64(resp.Msg.GetTotalPackets()) != sent {
		l.Warn("server processed a different number of messages",
			log.Int64("sent", sent),
			log.Int32("processed", resp.Msg.GetTotalPackets()))
	}

	d.transition(StateCompleted)
	d.metrics.runFinished(ctx, "completed")
	endRunSpan(span, sent, int64(resp.Msg.GetTotalPackets()), nil)
	outcome := &model.StreamOutcome{
		Status:       resp.Msg.GetStatus(),
		TotalPackets: int64(resp.Msg.GetTotalPackets()),
		Sent:         sent,
		RunID:        runID,
		Duration:     time.Since(start),
	}
	l.Info("run completed",
		log.String("status", outcome.Status),
		log.Int64("totalPackets", outcome.TotalPackets),
		log.Duration("duration", outcome.Duration))
	return outcome, nil
}

func (d *Driver) validate(msg *f1.TransferSummary, sent int64) error {
	if msg == nil {
		return fmt.Errorf("%w: empty summary", errInvalidResponse)
	}
	if msg.GetTotalPackets() < 0 {
		return fmt.Errorf("%w: negative packet count %d",
			errInvalidResponse, msg.GetTotalPackets())
	}
	if d.strictCount && int64(msg.GetTotalPackets()) != sent {
		return fmt.Errorf("%w: server processed %d of %d messages",
			errInvalidResponse, msg.GetTotalPackets(), sent)
	}
	return nil
}

// transition moves to next if allowed and notifies the observer
func (d *Driver) transition(next State) bool {
	d.mu.Lock()
	if !d.state.validTransition(next) {
		d.mu.Unlock()
		return false
	}
	d.state = next
	d.mu.Unlock()

	if d.observer != nil {
		d.observer(next)
	}
	return true
}

// Package ingest contains a deterministic implementation of the telemetry
// ingestion service. It is used by the mock-ingest command and in tests.
package ingest

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"connectrpc.com/connect"
	"connectrpc.com/grpchealth"
	"connectrpc.com/grpcreflect"

	"github.com/mpapenbr/f1-telemetry-producer/gen/f1"
	"github.com/mpapenbr/f1-telemetry-producer/gen/f1/f1connect"
	"github.com/mpapenbr/f1-telemetry-producer/log"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/utils"
)

const (
	DefaultStatus = "Stream Ended"
	headerVersion = "x-producer-version"
	headerRunID   = "x-run-id"
	headerToken   = "api-token"
)

func NewServer(opts ...Option) *Server {
	ret := &Server{
		status: DefaultStatus,
		l:      log.Default().Named("ingest"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

type Option func(*Server)

// WithStatus sets the status reported in each summary
func WithStatus(status string) Option {
	return func(srv *Server) {
		srv.status = status
	}
}

// WithSeverAfter aborts the call after n messages were received
func WithSeverAfter(n int32) Option {
	return func(srv *Server) {
		srv.severAfter = n
	}
}

// WithResponseDelay waits before sending the summary
func WithResponseDelay(d time.Duration) Option {
	return func(srv *Server) {
		srv.responseDelay = d
	}
}

// WithMinClientVersion rejects producers older than version
func WithMinClientVersion(version string) Option {
	return func(srv *Server) {
		srv.minClientVersion = version
	}
}

// WithRecorder keeps all received messages, see Received
func WithRecorder() Option {
	return func(srv *Server) {
		srv.record = true
	}
}

// WithToken requires producers to send this api token
func WithToken(token string) Option {
	return func(srv *Server) {
		srv.token = token
	}
}

func WithDebugWire(arg bool) Option {
	return func(srv *Server) {
		srv.debugWire = arg
	}
}

func WithLogger(l *log.Logger) Option {
	return func(srv *Server) {
		srv.l = l
	}
}

type Server struct {
	f1connect.UnimplementedF1TelemetryServiceHandler

	status           string
	severAfter       int32
	responseDelay    time.Duration
	minClientVersion string
	token            string
	record           bool
	debugWire        bool // if true, log each received message
	l                *log.Logger

	calls    atomic.Int64
	mu       sync.Mutex
	received []*f1.TelemetryData
}

//nolint:whitespace // can't make both editor and linter happy
func (s *Server) StreamTelemetry(
	ctx context.Context,
	stream *connect.ClientStream[f1.TelemetryData],
) (*connect.Response[f1.TransferSummary], error) {
	s.calls.Add(1)
	l := s.l.With(log.String("runId", stream.RequestHeader().Get(headerRunID)))
	if s.token != "" && stream.RequestHeader().Get(headerToken) != s.token {
		l.Warn("rejecting producer with invalid token")
		return nil, connect.NewError(connect.CodeUnauthenticated, errInvalidToken)
	}
	if s.minClientVersion != "" {
		v := stream.RequestHeader().Get(headerVersion)
		if !utils.CheckMinVersion(v, s.minClientVersion) {
			l.Warn("rejecting producer", log.String("version", v))
			return nil, connect.NewError(connect.CodeFailedPrecondition,
				errVersion(v, s.minClientVersion))
		}
	}
	l.Info("producer connected", log.String("peer", stream.Peer().Addr))

	var count int32
	for stream.Receive() {
		msg := stream.Msg()
		count++
		if s.debugWire {
			l.Debug("received",
				log.String("driver", msg.GetDriverId()),
				log.Int64("ts", msg.GetTimestampMs()))
		}
		if count%100 == 0 {
			l.Debug("progress", log.Int32("received", count))
		}
		if s.record {
			s.mu.Lock()
			s.received = append(s.received, msg)
			s.mu.Unlock()
		}
		if s.severAfter > 0 && count >= s.severAfter {
			l.Warn("severing stream", log.Int32("received", count))
			// resets the HTTP/2 stream without a response
			panic(http.ErrAbortHandler)
		}
	}
	if err := stream.Err(); err != nil {
		l.Error("receive failed", log.ErrorField(err))
		return nil, err
	}
	if s.responseDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.responseDelay):
		}
	}
	l.Info("stream ended", log.Int32("total", count))
	return connect.NewResponse(&f1.TransferSummary{
		Status:       s.status,
		TotalPackets: count,
	}), nil
}

// Received returns a copy of the recorded messages
func (s *Server) Received() []*f1.TelemetryData {
	s.mu.Lock()
	defer s.mu.Unlock()
	ret := make([]*f1.TelemetryData, len(s.received))
	copy(ret, s.received)
	return ret
}

// Calls returns the number of StreamTelemetry calls handled so far
func (s *Server) Calls() int64 {
	return s.calls.Load()
}

// NewMux registers the service together with health and reflection handlers
func NewMux(srv f1connect.F1TelemetryServiceHandler, opts ...connect.HandlerOption) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(f1connect.NewF1TelemetryServiceHandler(srv, opts...))

	checker := grpchealth.NewStaticChecker(f1connect.F1TelemetryServiceName)
	mux.Handle(grpchealth.NewHandler(checker))

	reflector := grpcreflect.NewStaticReflector(f1connect.F1TelemetryServiceName)
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))
	return mux
}

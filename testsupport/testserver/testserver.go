// Package testserver starts an h2c ingest server for tests.
package testserver

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mpapenbr/f1-telemetry-producer/gen/f1/f1connect"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/ingest"
)

// Start serves svc on a local port and returns the host:port to connect to.
// The server is closed when the test ends.
func Start(t testing.TB, svc f1connect.F1TelemetryServiceHandler) string {
	t.Helper()
	mux := ingest.NewMux(svc)
	srv := httptest.NewUnstartedServer(h2c.NewHandler(mux, &http2.Server{}))
	srv.Start()
	t.Cleanup(srv.Close)
	return srv.Listener.Addr().String()
}

// StartEmpty serves HTTP/2 without the telemetry service registered
func StartEmpty(t testing.TB) string {
	t.Helper()
	srv := httptest.NewUnstartedServer(h2c.NewHandler(http.NewServeMux(), &http2.Server{}))
	srv.Start()
	t.Cleanup(srv.Close)
	return srv.Listener.Addr().String()
}

// DialH2C is used as http2.Transport.DialTLSContext for plain text connections
func DialH2C(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, network, addr)
}

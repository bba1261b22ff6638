package session

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/http2"
)

// resolveTarget returns the host:port to dial and the base url for the client.
// target is either host:port or a http(s) url.
func resolveTarget(target string, secure bool) (addr, baseURL string, err error) {
	if target == "" {
		return "", "", fmt.Errorf("empty target")
	}
	scheme := "http"
	if secure {
		scheme = "https"
	}
	if strings.Contains(target, "://") {
		u, err := url.Parse(target)
		if err != nil {
			return "", "", fmt.Errorf("invalid target %q: %w", target, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return "", "", fmt.Errorf("unsupported scheme %q", u.Scheme)
		}
		scheme = u.Scheme
		target = u.Host
	}
	host, port, err := net.SplitHostPort(target)
	if err != nil {
		return "", "", fmt.Errorf("invalid target %q: %w", target, err)
	}
	if port == "" {
		return "", "", fmt.Errorf("invalid target %q: missing port", target)
	}
	addr = net.JoinHostPort(host, port)
	return addr, fmt.Sprintf("%s://%s", scheme, addr), nil
}

// handshakeTimeout bounds the setup of the HTTP/2 connection
const handshakeTimeout = 10 * time.Second

// dialHTTP2 opens the HTTP/2 connection to addr and waits until the server
// answered a PING, so a peer which does not speak HTTP/2 is detected before
// any message is sent. Without tls config the connection uses h2c (prior knowledge).
//
//nolint:cyclop // linear setup
func dialHTTP2(ctx context.Context, addr string, tlsConfig *tls.Config) (*http2.ClientConn, error) {
	hctx, cancel := context.WithTimeout(ctx, handshakeTimeout)
	defer cancel()
	handshakeErr := func(err error) error {
		if ctx.Err() == nil && hctx.Err() != nil {
			return fmt.Errorf("no HTTP/2 handshake with %s within %v", addr, handshakeTimeout)
		}
		return err
	}

	var d net.Dialer
	conn, err := d.DialContext(hctx, "tcp", addr)
	if err != nil {
		return nil, handshakeErr(err)
	}
	if tlsConfig != nil {
		cfg := tlsConfig.Clone()
		if cfg.ServerName == "" {
			cfg.ServerName, _, _ = net.SplitHostPort(addr)
		}
		cfg.NextProtos = []string{http2.NextProtoTLS}
		tlsConn := tls.Client(conn, cfg)
		if err := tlsConn.HandshakeContext(hctx); err != nil {
			conn.Close()
			return nil, handshakeErr(err)
		}
		if p := tlsConn.ConnectionState().NegotiatedProtocol; p != http2.NextProtoTLS {
			tlsConn.Close()
			return nil, fmt.Errorf("%s did not negotiate %s (got %q)", addr, http2.NextProtoTLS, p)
		}
		conn = tlsConn
	}
	t := &http2.Transport{AllowHTTP: true}
	cc, err := t.NewClientConn(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := cc.Ping(hctx); err != nil {
		cc.Close()
		return nil, handshakeErr(err)
	}
	return cc, nil
}

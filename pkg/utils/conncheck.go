package utils

import (
	"context"
	"fmt"
	"net"
	"regexp"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/mpapenbr/f1-telemetry-producer/log"
)

// WaitForTCP checks if addr accepts tcp connections.
// With timeout <= 0 exactly one attempt is made, otherwise the check is repeated
// with exponential backoff until it succeeds, the timeout elapses or ctx is done.
func WaitForTCP(ctx context.Context, addr string, timeout time.Duration) error {
	start := time.Now()
	log.Debug("wait for tcp connection",
		log.String("addr", addr),
		log.String("timeout", timeout.String()))

	var d net.Dialer
	probe := func() error {
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return err
		}
		return conn.Close()
	}
	var err error
	if timeout <= 0 {
		err = probe()
	} else {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = 200 * time.Millisecond
		b.MaxInterval = 2 * time.Second
		b.MaxElapsedTime = timeout
		err = backoff.Retry(probe, backoff.WithContext(b, ctx))
	}
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s could not be reached: %w", addr, ctx.Err())
		}
		return fmt.Errorf("%s could not be reached after %v: %w", addr, timeout, err)
	}
	log.Debug("tcp connection successful",
		log.String("addr", addr),
		log.String("duration", time.Since(start).String()))
	return nil
}

// ExtractFromDBURL returns host:port of a postgresql connection string
func ExtractFromDBURL(url string) string {
	param := resolveRegex(
		"^postgres(ql)?://(.*@)?(?P<addr>(?P<host>[^/:]*?)(:(?P<port>\\d+))?)(/.*)?$", url)
	if len(param) == 0 || param["host"] == "" {
		return ""
	}
	if port, ok := param["port"]; ok && port != "" {
		return param["addr"] // if port is found, the addr contains our wanted value
	}
	return fmt.Sprintf("%s:5432", param["addr"])
}

func resolveRegex(regEx, url string) (paramsMap map[string]string) {
	compRegEx := regexp.MustCompile(regEx)
	match := compRegEx.FindStringSubmatch(url)

	paramsMap = make(map[string]string)
	if match == nil {
		return paramsMap
	}
	for i, name := range compRegEx.SubexpNames() {
		if i > 0 && i < len(match) && name != "" {
			paramsMap[name] = match[i]
		}
	}
	return paramsMap
}

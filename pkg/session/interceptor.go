package session

import (
	"context"

	"connectrpc.com/connect"
)

const (
	HeaderRunID    = "x-run-id"
	HeaderVersion  = "x-producer-version"
	HeaderAPIToken = "api-token"
)

// headerInjector adds the producer headers to each outgoing call
type headerInjector struct {
	headers map[string]string
}

func newHeaderInterceptor(headers map[string]string) connect.Interceptor {
	return &headerInjector{headers: headers}
}

//nolint:whitespace // better readability
func (i *headerInjector) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return connect.UnaryFunc(func(
		ctx context.Context,
		req connect.AnyRequest,
	) (connect.AnyResponse, error) {
		for k, v := range i.headers {
			req.Header().Set(k, v)
		}
		return next(ctx, req)
	})
}

//nolint:whitespace // editor/linter
func (i *headerInjector) WrapStreamingClient(
	next connect.StreamingClientFunc,
) connect.StreamingClientFunc {
	return connect.StreamingClientFunc(func(
		ctx context.Context,
		spec connect.Spec,
	) connect.StreamingClientConn {
		conn := next(ctx, spec)
		for k, v := range i.headers {
			conn.RequestHeader().Set(k, v)
		}
		return conn
	})
}

//nolint:whitespace // editor/linter
func (i *headerInjector) WrapStreamingHandler(
	next connect.StreamingHandlerFunc,
) connect.StreamingHandlerFunc {
	return next
}

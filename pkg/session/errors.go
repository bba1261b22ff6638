package session

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"
)

// error kinds, use errors.Is to test for them
var (
	ErrDataSource = errors.New("data source error")
	ErrConnection = errors.New("connection error")
	ErrTransport  = errors.New("transport error")
	ErrTimeout    = errors.New("timeout error")
	ErrProtocol   = errors.New("protocol error")
)

var (
	ErrAlreadyRun      = errors.New("driver was already used for a run")
	errInvalidResponse = errors.New("invalid response")
	errSourceFailed    = errors.New("message source failed")
)

// Error describes a failed run. Kind is one of the Err* kinds above,
// State is the state in which the run failed.
type Error struct {
	Kind  error
	State State
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v while %s: %v", e.Kind, e.State, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// NewDataSourceError wraps an error of the data source collaborator
func NewDataSourceError(err error) error {
	return &Error{Kind: ErrDataSource, State: StateIdle, Err: err}
}

// codes by which the server tells us it does not accept the stream
var protocolCodes = map[connect.Code]bool{
	connect.CodeUnimplemented:      true,
	connect.CodeInvalidArgument:    true,
	connect.CodeFailedPrecondition: true,
	connect.CodeOutOfRange:         true,
	connect.CodeDataLoss:           true,
	connect.CodeUnauthenticated:    true,
	connect.CodePermissionDenied:   true,
}

// classify maps an error which occurred in state to one of the error kinds.
// ctx is the context bounding the whole run.
// A cancelled ctx has no kind of its own: it is reported with the kind of
// the state in which the run was interrupted, and the error matches context.Canceled.
func classify(ctx context.Context, state State, err error) *Error {
	if errors.Is(ctx.Err(), context.Canceled) && !errors.Is(err, context.Canceled) {
		err = fmt.Errorf("%w: %w", context.Canceled, err)
	}
	var kind error
	switch {
	case isTimeout(ctx, err):
		kind = ErrTimeout
	case errors.Is(err, errSourceFailed):
		kind = ErrDataSource
	case state == StateConnecting:
		kind = ErrConnection
	case errors.Is(err, errInvalidResponse):
		kind = ErrProtocol
	case protocolCodes[connect.CodeOf(err)]:
		kind = ErrProtocol
	default:
		kind = ErrTransport
	}
	return &Error{Kind: kind, State: state, Err: err}
}

func isTimeout(ctx context.Context, err error) bool {
	return errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		errors.Is(err, context.DeadlineExceeded) ||
		connect.CodeOf(err) == connect.CodeDeadlineExceeded
}

package log

import (
	"go.uber.org/zap"
)

type Field = zap.Field

// field constructors, use these instead of importing zap directly
var (
	Skip       = zap.Skip
	Binary     = zap.Binary
	Bool       = zap.Bool
	ByteString = zap.ByteString
	Float64    = zap.Float64
	Float32    = zap.Float32
	Float      = zap.Float64
	Int        = zap.Int
	Int64      = zap.Int64
	Int32      = zap.Int32
	Uint       = zap.Uint
	Uint64     = zap.Uint64
	Uint32     = zap.Uint32
	String     = zap.String
	Stringer   = zap.Stringer
	Strings    = zap.Strings
	Time       = zap.Time
	Duration   = zap.Duration
	Any        = zap.Any
	NamedError = zap.NamedError
	ErrorField = zap.Error
	Namespace  = zap.Namespace
	Stack      = zap.Stack
	Object     = zap.Object
)

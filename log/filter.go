package log

import (
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

// WithFilter restricts the logger output by zapfilter rules.
// Example: "*:session.* info+:*" logs the session loggers on all levels and
// everything else on level info and above. The logger level still applies.
// See https://github.com/moul/zapfilter for the rule syntax.
func WithFilter(rules string) (Option, error) {
	filter, err := zapfilter.ParseRules(rules)
	if err != nil {
		return nil, err
	}
	return WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapfilter.NewFilteringCore(c, filter)
	}), nil
}

package source

import (
	"context"
	"time"

	"github.com/mpapenbr/f1-telemetry-producer/log"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/model"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/utils/cache"
	"github.com/mpapenbr/f1-telemetry-producer/pkg/utils/cache/loadercache"
)

type cachedSource struct {
	c cache.Cache[model.Selector, []model.TelemetrySample]
}

// NewCached keeps loaded datasets for ttl. Repeated runs for the same selector
// reuse the samples instead of loading them again.
func NewCached(src Source, ttl time.Duration) Source {
	return &cachedSource{
		c: loadercache.New(
			loadercache.WithLoader(
				func(ctx context.Context, sel model.Selector) (*[]model.TelemetrySample, error) {
					samples, err := src.Load(ctx, sel)
					if err != nil {
						return nil, err
					}
					return &samples, nil
				}),
			loadercache.WithExpiration[model.Selector, []model.TelemetrySample](ttl),
			loadercache.WithLogger[model.Selector, []model.TelemetrySample](
				log.Default().Named("source.cache")),
		),
	}
}

//nolint:whitespace // can't make both editor and linter happy
func (s *cachedSource) Load(
	ctx context.Context,
	sel model.Selector,
) ([]model.TelemetrySample, error) {
	samples, err := s.c.Get(ctx, sel)
	if err != nil {
		return nil, err
	}
	return *samples, nil
}

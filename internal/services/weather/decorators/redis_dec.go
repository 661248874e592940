package decorators

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/skyweather/internal/models"
	"github.com/Nazarious-ucu/skyweather/internal/validator"
)

type weatherFetcher interface {
	Fetch(ctx context.Context, city string) (models.Report, error)
}

type cacheClient[T any] interface {
	Set(ctx context.Context, key string, value T) error
	Get(ctx context.Context, key string) (T, error)
}

// CachedClient serves recent provider reports from the cache. A miss or a
// cache error falls through to the inner client; failures are never cached.
type CachedClient struct {
	inner  weatherFetcher
	cache  cacheClient[models.Report]
	logger zerolog.Logger
}

func NewCachedClient(
	inner weatherFetcher,
	cache cacheClient[models.Report],
	logger zerolog.Logger,
) *CachedClient {
	return &CachedClient{inner: inner, cache: cache, logger: logger}
}

func Key(city string) string {
	return fmt.Sprintf("weather:%s", validator.Normalize(city))
}

func (s *CachedClient) Fetch(ctx context.Context, city string) (models.Report, error) {
	key := Key(city)

	report, err := s.cache.Get(ctx, key)
	if err == nil {
		s.logger.Info().
			Ctx(ctx).
			Str("city", city).
			Str("key", key).
			Msg("cache hit")
		return report, nil
	}
	s.logger.Debug().
		Ctx(ctx).
		Str("city", city).
		Str("key", key).
		Err(err).
		Msg("cache miss")

	report, err = s.inner.Fetch(ctx, city)
	if err != nil {
		return models.Report{}, err
	}

	if err := s.cache.Set(ctx, key, report); err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("city", city).
			Str("key", key).
			Err(err).
			Msg("cache set failed")
	}

	return report, nil
}

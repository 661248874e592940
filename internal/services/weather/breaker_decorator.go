package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Nazarious-ucu/skyweather/internal/models"
)

type client interface {
	Fetch(ctx context.Context, city string) (models.Report, error)
}

type BreakerConfig struct {
	TimeInterval time.Duration
	TimeTimeOut  time.Duration
	RepeatNumber uint32
}

// BreakerClient fails fast while the provider keeps failing. A city that does
// not exist is an answer, not a failure, and never trips the breaker.
type BreakerClient struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped client
}

func NewBreakerClient(name string, cfg BreakerConfig, wrapped client) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.TimeInterval,
		Timeout:     cfg.TimeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
		IsSuccessful: func(err error) bool {
			return err == nil || IsKind(err, KindNotFound)
		},
	}
	return &BreakerClient{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerClient) Fetch(ctx context.Context, city string) (models.Report, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.wrapped.Fetch(ctx, city)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return models.Report{}, &FetchError{
				Kind: KindUnavailable,
				Op:   b.name,
				Err:  err,
			}
		}
		return models.Report{}, err
	}
	res, ok := result.(models.Report)
	if !ok {
		return models.Report{},
			fmt.Errorf("%s returned unexpected result", b.name)
	}
	return res, nil
}

// State exposes the breaker state for logs and tests.
func (b *BreakerClient) State() gobreaker.State {
	return b.cb.State()
}

package retry

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	"github.com/fintechlabs/go-wallet-gate/internal/config"
)

const DefaultMaxRetries uint64 = 3

// Retryer wraps flaky outbound calls, market data fetches mostly, in an
// exponential backoff loop.
type Retryer interface {
	Retry(ctx context.Context, operation func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg *config.ExponentialBackOffConfig
}

// NewExponentialBackOff will init the Retryer interface.
//
// Example:
//
//	Retry(ctx, func() error { return someOperation() })
func NewExponentialBackOff(ebCfg *config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime < 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.MaxRetries <= 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	if ebCfg.InitialInterval <= 0 {
		ebCfg.InitialInterval = backoff.DefaultInitialInterval
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

// Retry keeps running operation until it succeeds, is stopped with
// StopRetryWithErr, the retry budget is exhausted, or ctx is done. The last
// operation error is returned.
func (r *exponentialBackoff) Retry(ctx context.Context, operation func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.ebCfg.InitialInterval
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx))
}

// StopRetryWithErr marks err permanent so the loop stops immediately.
// This function should be called inside the "operation" func.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}

package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
)

// RetryConfig is an exponential backoff policy read from the environment.
// A zero Timeout leaves the caller's context as the only bound.
type RetryConfig struct {
	Attempts uint          `env:"ATTEMPTS" envDefault:"5"`
	Delay    time.Duration `env:"DELAY" envDefault:"200ms"`
	MaxDelay time.Duration `env:"MAX_DELAY" envDefault:"5s"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

func (rc *RetryConfig) Validate() error {
	if rc.Attempts < 1 {
		return fmt.Errorf("attempts must be at least 1, got %d", rc.Attempts)
	}
	if rc.Delay <= 0 || rc.MaxDelay < rc.Delay {
		return fmt.Errorf("delay must be positive and not above max delay, got %s/%s", rc.Delay, rc.MaxDelay)
	}
	if rc.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", rc.Timeout)
	}
	return nil
}

func (rc *RetryConfig) ToRetryOptions() []retry.Option {
	return []retry.Option{
		retry.Attempts(rc.Attempts),
		retry.MaxDelay(rc.MaxDelay),
		retry.Delay(rc.Delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	}
}

// Do calls fn until it succeeds, the attempts run out or the deadline passes.
// onRetry, when set, runs only if another attempt follows the failed one.
func (rc *RetryConfig) Do(ctx context.Context, fn func(context.Context) error, onRetry func(attempt uint, err error)) error {
	if rc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rc.Timeout)
		defer cancel()
	}

	opts := append(rc.ToRetryOptions(), retry.Context(ctx))
	if onRetry != nil {
		opts = append(opts, retry.OnRetry(func(n uint, err error) {
			// retry-go also reports the final failure
			if rc.Attempts > 0 && n+1 >= rc.Attempts {
				return
			}
			onRetry(n+1, err)
		}))
	}

	return retry.Do(func() error { return fn(ctx) }, opts...)
}

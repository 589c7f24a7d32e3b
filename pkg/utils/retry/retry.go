package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sujeethshingade/docster/pkg/utils/logging"
)

const (
	DefaultMaxRetries   = 3
	DefaultInitialDelay = time.Second
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Policy controls exponential backoff. The delay before retry k (1-origin) is
// InitialDelay * 2^(k-1), and at most MaxRetries+1 attempts are made.
type Policy struct {
	MaxRetries   int
	InitialDelay time.Duration
	Sleep        SleepFunc
}

func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:   DefaultMaxRetries,
		InitialDelay: DefaultInitialDelay,
	}
}

// Delay returns the wait before the given retry (1-origin).
func (x Policy) Delay(retry int) time.Duration {
	if retry < 1 {
		return 0
	}
	return x.InitialDelay * time.Duration(1<<(retry-1))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Do runs op until it succeeds or the policy is exhausted. The error of the
// final attempt is returned wrapped, so errors.Is keeps working on it.
func Do[T any](ctx context.Context, policy Policy, op func(ctx context.Context) (T, error)) (T, error) {
	sleep := policy.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var zero T
	for retries := 0; ; retries++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		if retries >= policy.MaxRetries {
			return zero, goerr.Wrap(err, "operation failed after retries", goerr.V("retries", retries))
		}

		delay := policy.Delay(retries + 1)
		logging.From(ctx).Warn("operation failed, retrying",
			slog.Any("error", err),
			slog.Duration("delay", delay),
			slog.Int("retry", retries+1),
		)

		if err := sleep(ctx, delay); err != nil {
			return zero, goerr.Wrap(err, "retry interrupted", goerr.V("retries", retries))
		}
	}
}

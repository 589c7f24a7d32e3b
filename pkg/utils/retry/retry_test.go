package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/sujeethshingade/docster/pkg/utils/retry"
)

type sleepRecorder struct {
	delays []time.Duration
}

func (x *sleepRecorder) Sleep(ctx context.Context, d time.Duration) error {
	x.delays = append(x.delays, d)
	return nil
}

func TestDo(t *testing.T) {
	errBoom := errors.New("boom")

	t.Run("first attempt succeeds without sleeping", func(t *testing.T) {
		rec := &sleepRecorder{}
		policy := retry.DefaultPolicy()
		policy.Sleep = rec.Sleep

		calls := 0
		v, err := retry.Do(context.Background(), policy, func(ctx context.Context) (string, error) {
			calls++
			return "ok", nil
		})
		gt.NoError(t, err)
		gt.V(t, v).Equal("ok")
		gt.V(t, calls).Equal(1)
		gt.V(t, len(rec.delays)).Equal(0)
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		rec := &sleepRecorder{}
		policy := retry.DefaultPolicy()
		policy.Sleep = rec.Sleep

		calls := 0
		v, err := retry.Do(context.Background(), policy, func(ctx context.Context) (int, error) {
			calls++
			if calls < 3 {
				return 0, errBoom
			}
			return 42, nil
		})
		gt.NoError(t, err)
		gt.V(t, v).Equal(42)
		gt.V(t, calls).Equal(3)
		gt.V(t, rec.delays).Equal([]time.Duration{time.Second, 2 * time.Second})
	})

	t.Run("always failing op makes four attempts and waits 7s in total", func(t *testing.T) {
		rec := &sleepRecorder{}
		policy := retry.DefaultPolicy()
		policy.Sleep = rec.Sleep

		calls := 0
		_, err := retry.Do(context.Background(), policy, func(ctx context.Context) (string, error) {
			calls++
			return "", errBoom
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, errBoom))
		gt.S(t, err.Error()).Contains("boom")
		gt.V(t, calls).Equal(4)
		gt.V(t, rec.delays).Equal([]time.Duration{time.Second, 2 * time.Second, 4 * time.Second})

		var total time.Duration
		for _, d := range rec.delays {
			total += d
		}
		gt.V(t, total).Equal(7 * time.Second)
	})

	t.Run("zero retries makes a single attempt", func(t *testing.T) {
		rec := &sleepRecorder{}
		policy := retry.Policy{MaxRetries: 0, InitialDelay: time.Second, Sleep: rec.Sleep}

		calls := 0
		_, err := retry.Do(context.Background(), policy, func(ctx context.Context) (string, error) {
			calls++
			return "", errBoom
		})
		gt.Error(t, err)
		gt.V(t, calls).Equal(1)
		gt.V(t, len(rec.delays)).Equal(0)
	})

	t.Run("cancelled context stops waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		policy := retry.Policy{MaxRetries: 3, InitialDelay: time.Hour}
		calls := 0
		_, err := retry.Do(ctx, policy, func(ctx context.Context) (string, error) {
			calls++
			return "", errBoom
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, context.Canceled))
		gt.V(t, calls).Equal(1)
	})
}

func TestPolicyDelay(t *testing.T) {
	policy := retry.Policy{InitialDelay: 100 * time.Millisecond}
	gt.V(t, policy.Delay(0)).Equal(time.Duration(0))
	gt.V(t, policy.Delay(1)).Equal(100 * time.Millisecond)
	gt.V(t, policy.Delay(2)).Equal(200 * time.Millisecond)
	gt.V(t, policy.Delay(3)).Equal(400 * time.Millisecond)
}

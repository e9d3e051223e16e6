package retry_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavadevv/timeable-api/pkg/logger"
	"github.com/lavadevv/timeable-api/pkg/retry"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Level: "error", Environment: "development"}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize test logger: %v\n", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func fastConfig() retry.Config {
	return retry.Config{
		MaxRetries:   3,
		InitialDelay: time.Millisecond,
		MaxDelay:     10 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestLoginConfigSchedule(t *testing.T) {
	cfg := retry.LoginConfig()

	assert.Equal(t, 3, cfg.MaxRetries)
	assert.False(t, cfg.Jitter)
	assert.Equal(t, 1*time.Second, retry.Delay(0, cfg))
	assert.Equal(t, 2*time.Second, retry.Delay(1, cfg))
	assert.Equal(t, 4*time.Second, retry.Delay(2, cfg))
}

func TestDelayCappedAtMax(t *testing.T) {
	cfg := retry.LoginConfig()
	assert.Equal(t, cfg.MaxDelay, retry.Delay(10, cfg))
}

func TestDoWithResult_SucceedsFirstTry(t *testing.T) {
	calls := 0
	got, err := retry.DoWithResult(context.Background(), fastConfig(), "op", func() (string, error) {
		calls++
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 1, calls)
}

func TestDoWithResult_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	got, err := retry.DoWithResult(context.Background(), fastConfig(), "op", func() (int, error) {
		calls++
		if calls < 3 {
			return 0, fmt.Errorf("attempt %d failed", calls)
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 3, calls)
}

func TestDoWithResult_ExhaustsAllAttempts(t *testing.T) {
	calls := 0
	_, err := retry.DoWithResult(context.Background(), fastConfig(), "op", func() (int, error) {
		calls++
		return 0, fmt.Errorf("always failing")
	})

	require.Error(t, err)
	assert.Equal(t, 4, calls) // initial attempt + 3 retries
	assert.ErrorContains(t, err, "always failing")
	assert.ErrorContains(t, err, "after 3 retries")
}

func TestDoWithResult_NonRetryableStopsImmediately(t *testing.T) {
	sentinel := fmt.Errorf("bad credentials")
	cfg := fastConfig()
	cfg.RetryableErrors = func(err error) bool { return err != sentinel }

	calls := 0
	_, err := retry.DoWithResult(context.Background(), cfg, "op", func() (int, error) {
		calls++
		return 0, sentinel
	})

	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
}

func TestDoWithResult_ContextCancelledDuringBackoff(t *testing.T) {
	cfg := fastConfig()
	cfg.InitialDelay = time.Minute // backoff long enough that cancellation wins

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	done := make(chan error, 1)
	go func() {
		_, err := retry.DoWithResult(ctx, cfg, "op", func() (int, error) {
			calls++
			return 0, fmt.Errorf("failing")
		})
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	case <-time.After(2 * time.Second):
		t.Fatal("retry did not abort after context cancellation")
	}
}

func TestDo_WrapsDoWithResult(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fastConfig(), "op", func() error {
		calls++
		if calls == 1 {
			return fmt.Errorf("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

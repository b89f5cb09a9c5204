package poll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUntil_SatisfiedImmediately(t *testing.T) {
	calls := 0
	outcome := Until(time.Second, time.Millisecond, func() (bool, error) {
		calls++
		return true, nil
	})
	require.Equal(t, OutcomeSatisfied, outcome)
	require.True(t, outcome.Satisfied())
	require.Equal(t, 1, calls, "predicate should not be re-evaluated after success")
}

func TestUntil_SatisfiedAfterRetries(t *testing.T) {
	calls := 0
	outcome := Until(time.Second, time.Millisecond, func() (bool, error) {
		calls++
		return calls >= 4, nil
	})
	require.Equal(t, OutcomeSatisfied, outcome)
	require.Equal(t, 4, calls)
}

func TestUntil_TimeoutIsExplicit(t *testing.T) {
	outcome := Until(30*time.Millisecond, 5*time.Millisecond, func() (bool, error) {
		return false, nil
	})
	require.Equal(t, OutcomeTimedOut, outcome)
	require.False(t, outcome.Satisfied())
}

func TestUntil_SwallowsPredicateErrors(t *testing.T) {
	calls := 0
	outcome := Until(time.Second, time.Millisecond, func() (bool, error) {
		calls++
		if calls < 3 {
			return true, errors.New("stale element") // true with error must not count
		}
		return true, nil
	})
	require.Equal(t, OutcomeSatisfied, outcome)
	require.Equal(t, 3, calls)
}

func TestUntilContext_CancellationMapsToTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	outcome := UntilContext(ctx, time.Millisecond, func() (bool, error) {
		return false, nil
	})
	require.Equal(t, OutcomeTimedOut, outcome)
}

func TestOutcome_String(t *testing.T) {
	require.Equal(t, "satisfied", OutcomeSatisfied.String())
	require.Equal(t, "timed out", OutcomeTimedOut.String())
	require.Equal(t, "unknown", Outcome(42).String())
}

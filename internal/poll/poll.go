// Package poll implements a bounded retry loop for DOM-state predicates.
// Predicate evaluation errors are treated as "not yet true" and swallowed;
// the outcome of the loop itself is always explicit.
package poll

import (
	"context"
	"time"
)

// Outcome reports how a polling loop ended.
type Outcome int

const (
	// OutcomeSatisfied means the predicate returned true before the deadline.
	OutcomeSatisfied Outcome = iota
	// OutcomeTimedOut means the deadline elapsed without the predicate
	// ever returning true.
	OutcomeTimedOut
)

// Satisfied reports whether the predicate was observed true.
func (o Outcome) Satisfied() bool {
	return o == OutcomeSatisfied
}

func (o Outcome) String() string {
	switch o {
	case OutcomeSatisfied:
		return "satisfied"
	case OutcomeTimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// Until evaluates cond every interval until it returns true or timeout
// elapses. Errors from cond are swallowed: an erroring predicate counts
// as false for that round. The predicate is evaluated once immediately
// before the first tick.
func Until(timeout, interval time.Duration, cond func() (bool, error)) Outcome {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return UntilContext(ctx, interval, cond)
}

// UntilContext is Until for callers that already hold a deadline or
// cancellation. Context expiry maps to OutcomeTimedOut.
func UntilContext(ctx context.Context, interval time.Duration, cond func() (bool, error)) Outcome {
	if ok, err := cond(); err == nil && ok {
		return OutcomeSatisfied
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if ok, err := cond(); err == nil && ok {
				return OutcomeSatisfied
			}
		case <-ctx.Done():
			return OutcomeTimedOut
		}
	}
}

package search

import "sync/atomic"

// CancellationToken is consulted at recursion entry by the negamax core
// and set by the iterative-deepening driver when it abandons an
// in-flight search. It is the search package's realization of spec §9's
// "actor-based cancellation... replaced with a cancellation token
// consulted at recursion entry."
type CancellationToken struct {
	cancelled atomic.Bool
}

// Cancel requests that any in-flight search using this token stop at its
// next check.
func (ct *CancellationToken) Cancel() {
	ct.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (ct *CancellationToken) Cancelled() bool {
	return ct != nil && ct.cancelled.Load()
}

// cancelledScore is a sentinel value outside any legitimate evaluation
// range; the driver recognizes and discards it rather than treating it
// as a real result (spec §4.5).
const cancelledScore = -1_234_567

package search

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/silverrook/chessgo/game"
)

// stopAfterFraction is the §4.6 "≥85% of budget elapsed" threshold past
// which a just-completed depth is accepted as final rather than starting
// another.
const stopAfterFraction = 0.85

// SearchBest runs a single, non-iterative negamax search to depth and
// returns the chosen successor. This is spec §6's search_best.
func SearchBest[S comparable](g game.Game[S], root S, depth int) S {
	var _, best = Negamax(g, root, depth, -valueInfinity, valueInfinity, nil, nil)
	return best
}

// SearchWithin runs iterative deepening under a wall-clock budget,
// returning the deepest fully-completed result (spec §4.6, §6's
// search_within). A zero or negative budget returns the depth-1 result
// without starting any cancellable worker (spec §7).
func SearchWithin[S comparable](g game.Game[S], root S, budgetMs int) S {
	var currentBest = SearchBest(g, root, 1)
	if budgetMs <= 0 {
		return currentBest
	}

	var start = time.Now()
	var budget = time.Duration(budgetMs) * time.Millisecond

	for depth := 2; ; depth++ {
		var best, completed = runDepth(g, root, depth, currentBest, start.Add(budget))
		if !completed {
			return currentBest
		}
		currentBest = best
		if time.Since(start) >= time.Duration(float64(budget)*stopAfterFraction) {
			return currentBest
		}
	}
}

// runDepth launches one depth's search in a cancellable worker (an
// errgroup goroutine bound to a deadline context) and reports whether it
// completed before the deadline. This is the single "concurrency
// boundary for cancellation, not parallelism" spec §5 describes: the
// worker itself never suspends mid-tree, only runDepth waits on it.
func runDepth[S comparable](g game.Game[S], root S, depth int, hint S, deadline time.Time) (result S, completed bool) {
	var ctx, cancel = context.WithDeadline(context.Background(), deadline)
	defer cancel()

	var ct = &CancellationToken{}
	var group, groupCtx = errgroup.WithContext(ctx)
	go func() {
		<-groupCtx.Done()
		ct.Cancel()
	}()

	var resultCh = make(chan S, 1)
	group.Go(func() error {
		var _, best = Negamax(g, root, depth, -valueInfinity, valueInfinity, &hint, ct)
		resultCh <- best
		return nil
	})

	select {
	case best := <-resultCh:
		// The token is read before cancel(): cancel() closes groupCtx, and
		// the watcher goroutine above then sets ct even for a search that
		// finished in time. A token already set here means the deadline
		// fired while the worker was running, so what resultCh carries may
		// be Negamax's cancelled-sentinel return rather than a completed
		// search; it never overwrites currentBest.
		var aborted = ct.Cancelled()
		cancel()
		_ = group.Wait()
		if aborted {
			return result, false
		}
		return best, true
	case <-ctx.Done():
		ct.Cancel()
		_ = group.Wait()
		return result, false
	}
}

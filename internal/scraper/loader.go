package scraper

import (
	"context"
	"log/slog"
	"time"
)

// ClickFunc attempts to click a visible load-more control, reporting
// whether a click happened.
type ClickFunc func(ctx context.Context) (bool, error)

// LoadConfig bounds the incremental-load loop.
type LoadConfig struct {
	MaxAttempts int
	MinAttempts int
	// ClickSettleDelay allows asynchronous content insertion between a
	// click and the recount.
	ClickSettleDelay time.Duration
}

// LoadState carries the counters of one completed loop iteration.
type LoadState struct {
	Attempts      int
	PreviousCount int
	Count         int
	Clicked       bool
}

// LoadDecision is the outcome of a loop iteration.
type LoadDecision int

const (
	LoadContinue LoadDecision = iota
	// LoadComplete: no load control was present and content exists, so
	// everything is already loaded.
	LoadComplete
	// LoadBudgetExhausted: the attempt budget ran out. A normal
	// termination, not a failure.
	LoadBudgetExhausted
	// LoadStalled: a click no longer grows the count.
	LoadStalled
)

func (d LoadDecision) String() string {
	switch d {
	case LoadContinue:
		return "continue"
	case LoadComplete:
		return "complete"
	case LoadBudgetExhausted:
		return "budget exhausted"
	case LoadStalled:
		return "stalled"
	}
	return "unknown"
}

// DecideNext returns what the load loop should do after an iteration. An
// absent control with content present means everything is loaded. The
// minimum-attempt floor gives transient loading delay a chance to catch up
// before stagnation ends the loop, which can cost one extra iteration after
// the count has stabilized; callers depend on that attempt count.
func DecideNext(s LoadState, cfg LoadConfig) LoadDecision {
	if !s.Clicked && s.Count > 0 {
		return LoadComplete
	}
	if s.Attempts >= cfg.MaxAttempts {
		return LoadBudgetExhausted
	}
	if s.Attempts < cfg.MinAttempts {
		return LoadContinue
	}
	if s.Clicked && s.Count > s.PreviousCount {
		return LoadContinue
	}
	return LoadStalled
}

// LoadAll drives the bounded load loop: click a load control if one is
// visible, wait for content to settle, re-count the detected selector, and
// decide whether to keep going. Every termination except context
// cancellation is normal; extraction proceeds with whatever is present.
func LoadAll(ctx context.Context, click ClickFunc, count CountFunc, selector string, initialCount int, cfg LoadConfig, logger *slog.Logger) (int, error) {
	state := LoadState{Count: initialCount}

	for {
		clicked, err := click(ctx)
		if err != nil {
			logger.Warn("load control click failed", "attempt", state.Attempts+1, "err", err)
			clicked = false
		}
		if !clicked {
			if state.Attempts == 0 {
				logger.Debug("no load control found on first attempt")
			} else {
				logger.Debug("no further load controls available", "attempt", state.Attempts+1)
			}
		}

		if err := sleepCtx(ctx, cfg.ClickSettleDelay); err != nil {
			return state.Count, err
		}

		n, err := count(ctx, selector)
		if err != nil {
			logger.Warn("recount failed, keeping previous count", "err", err)
			n = state.Count
		}

		state = LoadState{
			Attempts:      state.Attempts + 1,
			PreviousCount: state.Count,
			Count:         n,
			Clicked:       clicked,
		}

		decision := DecideNext(state, cfg)
		logger.Debug("load iteration",
			"attempt", state.Attempts,
			"clicked", state.Clicked,
			"count", state.Count,
			"previous", state.PreviousCount,
			"decision", decision.String(),
		)
		if decision != LoadContinue {
			return state.Count, nil
		}
		if ctx.Err() != nil {
			return state.Count, ctx.Err()
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

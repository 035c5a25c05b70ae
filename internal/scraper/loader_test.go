package scraper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLoadConfig() LoadConfig {
	return LoadConfig{
		MaxAttempts:      20,
		MinAttempts:      3,
		ClickSettleDelay: time.Millisecond,
	}
}

func TestDecideNext(t *testing.T) {
	cfg := testLoadConfig()

	cases := []struct {
		name  string
		state LoadState
		want  LoadDecision
	}{
		{
			name:  "absent control with content means complete",
			state: LoadState{Attempts: 1, Count: 12, Clicked: false},
			want:  LoadComplete,
		},
		{
			name:  "absent control without content keeps trying under the floor",
			state: LoadState{Attempts: 1, Count: 0, Clicked: false},
			want:  LoadContinue,
		},
		{
			name:  "absent control without content stalls past the floor",
			state: LoadState{Attempts: 3, Count: 0, Clicked: false},
			want:  LoadStalled,
		},
		{
			name:  "budget exhaustion beats a growing count",
			state: LoadState{Attempts: 20, PreviousCount: 10, Count: 30, Clicked: true},
			want:  LoadBudgetExhausted,
		},
		{
			name:  "click that grew the count continues",
			state: LoadState{Attempts: 5, PreviousCount: 10, Count: 22, Clicked: true},
			want:  LoadContinue,
		},
		{
			name:  "click without growth stalls past the floor",
			state: LoadState{Attempts: 5, PreviousCount: 22, Count: 22, Clicked: true},
			want:  LoadStalled,
		},
		{
			name:  "click without growth survives under the floor",
			state: LoadState{Attempts: 2, PreviousCount: 22, Count: 22, Clicked: true},
			want:  LoadContinue,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecideNext(tc.state, cfg))
		})
	}
}

func TestLoadAllStopsWhenControlDisappears(t *testing.T) {
	clicks := 0
	click := func(ctx context.Context) (bool, error) {
		clicks++
		return clicks <= 2, nil
	}
	counts := []int{12, 24, 24}
	iteration := 0
	count := func(ctx context.Context, selector string) (int, error) {
		n := counts[iteration]
		iteration++
		return n, nil
	}

	total, err := LoadAll(context.Background(), click, count, "[class*='shot']", 6, testLoadConfig(), testLogger())
	require.NoError(t, err)
	// Third iteration finds no control but content is present.
	assert.Equal(t, 24, total)
	assert.Equal(t, 3, clicks)
}

func TestLoadAllStopsOnStagnation(t *testing.T) {
	click := func(ctx context.Context) (bool, error) { return true, nil }
	count := func(ctx context.Context, selector string) (int, error) { return 5, nil }

	total, err := LoadAll(context.Background(), click, count, "video", 5, testLoadConfig(), testLogger())
	require.NoError(t, err)
	assert.Equal(t, 5, total)
}

func TestLoadAllExhaustsBudget(t *testing.T) {
	cfg := testLoadConfig()
	cfg.MaxAttempts = 5

	attempts := 0
	click := func(ctx context.Context) (bool, error) { return true, nil }
	count := func(ctx context.Context, selector string) (int, error) {
		attempts++
		return attempts * 10, nil
	}

	total, err := LoadAll(context.Background(), click, count, "video", 0, cfg, testLogger())
	require.NoError(t, err)
	// The count kept growing; the budget ends the loop anyway.
	assert.Equal(t, 5, attempts)
	assert.Equal(t, 50, total)
}

func TestLoadAllHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	click := func(ctx context.Context) (bool, error) { return true, nil }
	count := func(ctx context.Context, selector string) (int, error) { return 1, nil }

	_, err := LoadAll(ctx, click, count, "video", 0, testLoadConfig(), testLogger())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadAllToleratesClickAndCountErrors(t *testing.T) {
	click := func(ctx context.Context) (bool, error) { return false, assert.AnError }
	count := func(ctx context.Context, selector string) (int, error) { return 0, assert.AnError }

	// Errors degrade to "no click" and "count unchanged"; with an initial
	// count present, the first iteration completes normally.
	total, err := LoadAll(context.Background(), click, count, "video", 9, testLoadConfig(), testLogger())
	require.NoError(t, err)
	assert.Equal(t, 9, total)
}

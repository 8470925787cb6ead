package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
)

func expectedOnboardingCalls(n int) []gameCall {
	calls := make([]gameCall, 0, n)
	for _, tr := range domain.OnboardingSequence[:n] {
		switch tr.Action {
		case domain.OnboardingUpdateStep:
			calls = append(calls, gameCall{Method: "UpdateOnboardingStep", Args: []any{tr.Step}})
		case domain.OnboardingSelectStarter:
			calls = append(calls, gameCall{Method: "SelectStarter", Args: []any{tr.Starter}})
		case domain.OnboardingComplete:
			calls = append(calls, gameCall{Method: "CompleteOnboarding"})
		}
	}
	return calls
}

func TestOnboardingRunsAllTwentyStepsInOrder(t *testing.T) {
	t.Parallel()

	game := newFakeGame()
	clock := newFakeClock()
	onboarding := NewOnboarding(game, clock, testRand(), nil)

	require.NoError(t, onboarding.Run(context.Background()))

	assert.Len(t, game.calls, 20)
	assert.Equal(t, expectedOnboardingCalls(20), game.calls)
	assert.Equal(t, gameCall{Method: "SelectStarter", Args: []any{"Digby"}}, game.calls[2])

	sleeps := clock.Sleeps()
	assert.Len(t, sleeps, 19)
	for _, d := range sleeps {
		assert.GreaterOrEqual(t, d, time.Second)
		assert.LessOrEqual(t, d, 3*time.Second)
	}
}

func TestOnboardingStopsAtFirstNonEmptyBody(t *testing.T) {
	t.Parallel()

	for _, k := range []int{0, 1, 5, 17} {
		game := newFakeGame()
		game.onboardingBody[domain.OnboardingSequence[k].Step] = `{"error":"bad step"}`
		onboarding := NewOnboarding(game, newFakeClock(), testRand(), nil)

		err := onboarding.Run(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOnboardingHalted)
		assert.Equal(t, expectedOnboardingCalls(k+1), game.calls, "halt after step %d", k+1)
	}
}

func TestOnboardingHaltsOnStarterSelection(t *testing.T) {
	t.Parallel()

	game := newFakeGame()
	game.starterBody = "starter already chosen"
	onboarding := NewOnboarding(game, newFakeClock(), testRand(), nil)

	err := onboarding.Run(context.Background())
	assert.ErrorIs(t, err, ErrOnboardingHalted)
	assert.Len(t, game.calls, 3)
}

func TestOnboardingNonEmptyCompletionIsFailure(t *testing.T) {
	t.Parallel()

	game := newFakeGame()
	game.completeBody = "nope"
	onboarding := NewOnboarding(game, newFakeClock(), testRand(), nil)

	err := onboarding.Run(context.Background())
	assert.ErrorIs(t, err, ErrOnboardingHalted)
	assert.Len(t, game.calls, 20)
}

func TestOnboardingStopsWhenContextCancelled(t *testing.T) {
	t.Parallel()

	game := newFakeGame()
	clock := newFakeClock()
	ctx, cancel := context.WithCancel(context.Background())
	clock.onSleep = func(count int) {
		if count == 2 {
			cancel()
		}
	}

	err := NewOnboarding(game, clock, testRand(), nil).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, game.calls, 2)
}

package application

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
	"github.com/ranchfarm/ranch-farmer/internal/ports"
)

var ErrOnboardingHalted = errors.New("onboarding halted")

var onboardingPause = domain.IntRange{Min: 1, Max: 3}

// Onboarding walks a new account through the setup chain. An empty
// response body acknowledges a step; anything else halts the chain.
type Onboarding struct {
	api   ports.GameAPI
	clock ports.Clock
	rnd   *rand.Rand
	log   *zap.Logger
	steps []domain.OnboardingTransition
}

func NewOnboarding(api ports.GameAPI, clock ports.Clock, rnd *rand.Rand, log *zap.Logger) *Onboarding {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Onboarding{api: api, clock: clock, rnd: orDefaultRand(rnd), log: log, steps: domain.OnboardingSequence}
}

// Run executes the chain once from the first step. It returns nil only when
// every step was acknowledged.
func (o *Onboarding) Run(ctx context.Context) error {
	for i, transition := range o.steps {
		body, err := o.call(ctx, transition)
		if err != nil {
			return fmt.Errorf("onboarding step %s: %w", transition.Step, err)
		}
		if body != "" {
			return fmt.Errorf("%w at step %s: %s", ErrOnboardingHalted, transition.Step, abbreviate(body))
		}

		o.log.Debug("onboarding step acknowledged", zap.String("step", string(transition.Step)))
		if i == len(o.steps)-1 {
			break
		}
		if err := o.clock.Sleep(ctx, onboardingPause.PickSeconds(o.rnd)); err != nil {
			return err
		}
	}

	o.log.Info("onboarding completed")

	return nil
}

func (o *Onboarding) call(ctx context.Context, transition domain.OnboardingTransition) (string, error) {
	switch transition.Action {
	case domain.OnboardingUpdateStep:
		return o.api.UpdateOnboardingStep(ctx, transition.Step)
	case domain.OnboardingSelectStarter:
		return o.api.SelectStarter(ctx, transition.Starter)
	case domain.OnboardingComplete:
		return o.api.CompleteOnboarding(ctx)
	default:
		return "", fmt.Errorf("unknown onboarding action %q", transition.Action)
	}
}

func abbreviate(body string) string {
	const limit = 120
	if len(body) <= limit {
		return body
	}

	return body[:limit] + "..."
}

package domain

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialStaleExactlyAtTTL(t *testing.T) {
	issued := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	for ttl := MinCredentialTTL; ttl <= MaxCredentialTTL; ttl += 50 * time.Second {
		c := NewCredential("token", issued, ttl)

		assert.False(t, c.IsStale(issued), "ttl %s", ttl)
		assert.False(t, c.IsStale(issued.Add(ttl-time.Nanosecond)), "ttl %s", ttl)
		assert.True(t, c.IsStale(issued.Add(ttl)), "ttl %s", ttl)
		assert.True(t, c.IsStale(issued.Add(ttl+time.Second)), "ttl %s", ttl)
	}
}

func TestCredentialZeroValueIsStale(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	assert.True(t, Credential{}.IsStale(now))
	assert.True(t, Credential{IssuedAt: now, TTL: time.Hour}.IsStale(now))
}

func TestCredentialExpiresAt(t *testing.T) {
	issued := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	c := NewCredential("token", issued, 3400*time.Second)

	assert.Equal(t, issued.Add(3400*time.Second), c.ExpiresAt())
}

func TestIntRangeValidate(t *testing.T) {
	tests := []struct {
		name    string
		r       IntRange
		wantErr string
	}{
		{name: "valid", r: IntRange{Min: 10, Max: 20}},
		{name: "single value", r: IntRange{Min: 5, Max: 5}},
		{name: "inverted", r: IntRange{Min: 20, Max: 10}, wantErr: "min greater than max"},
		{name: "negative", r: IntRange{Min: -1, Max: 10}, wantErr: "negative bound"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestIntRangePickStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	r := IntRange{Min: 3300, Max: 3600}

	seenMin, seenMax := false, false
	for i := 0; i < 5000; i++ {
		v := r.Pick(rng)
		require.GreaterOrEqual(t, v, r.Min)
		require.LessOrEqual(t, v, r.Max)
		seenMin = seenMin || v == r.Min
		seenMax = seenMax || v == r.Max
	}

	assert.True(t, seenMin, "lower bound is reachable")
	assert.True(t, seenMax, "upper bound is reachable")
}

func TestIntRangePickDegenerate(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	assert.Equal(t, 7, IntRange{Min: 7, Max: 7}.Pick(rng))
	assert.Equal(t, 7, IntRange{Min: 7, Max: 3}.Pick(rng))
}

func TestInventoryQuantity(t *testing.T) {
	inv := Inventory{
		{ID: ItemShards, Quantity: 2},
		{ID: ItemEnergyDrink, Quantity: 1},
		{ID: ItemShards, Quantity: 1},
	}

	assert.Equal(t, 3, inv.Quantity(ItemShards))
	assert.Equal(t, 1, inv.Quantity(ItemEnergyDrink))
	assert.Equal(t, 0, inv.Quantity("golden-egg"))
}

func TestOnboardingSequenceOrder(t *testing.T) {
	require.Len(t, OnboardingSequence, 20)

	assert.Equal(t, StepPreStarterSelection, OnboardingSequence[0].Step)
	assert.Equal(t, OnboardingSelectStarter, OnboardingSequence[2].Action)
	assert.Equal(t, DefaultStarter, OnboardingSequence[2].Starter)
	assert.Equal(t, StepThatsAll, OnboardingSequence[18].Step)

	last := OnboardingSequence[len(OnboardingSequence)-1]
	assert.Equal(t, StepCompleteOnboarding, last.Step)
	assert.Equal(t, OnboardingComplete, last.Action)

	seen := map[OnboardingStep]struct{}{}
	for _, tr := range OnboardingSequence {
		_, dup := seen[tr.Step]
		assert.False(t, dup, "step %s repeated", tr.Step)
		seen[tr.Step] = struct{}{}
	}
}

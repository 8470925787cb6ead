package application

import (
	"context"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
	"github.com/ranchfarm/ranch-farmer/internal/ports"
)

// paddingSlack is how far below the real amount the padding count may go.
const paddingSlack = 5

// Actions wraps every real click with a padding save of synthetic pointer
// positions.
type Actions struct {
	api ports.GameAPI
	rnd *rand.Rand
	log *zap.Logger
}

func NewActions(api ports.GameAPI, rnd *rand.Rand, log *zap.Logger) *Actions {
	if log == nil {
		log = zap.NewNop()
	}

	return &Actions{api: api, rnd: orDefaultRand(rnd), log: log}
}

func (a *Actions) PerformFarming(ctx context.Context, amount int) error {
	a.pad(ctx, domain.MiningArea, a.paddingCount(amount))
	return a.api.MineAndFeed(ctx, amount, 0)
}

func (a *Actions) PerformFeeding(ctx context.Context, amount int) error {
	a.pad(ctx, domain.FeedingArea, a.paddingCount(amount))
	return a.api.MineAndFeed(ctx, 0, amount)
}

func (a *Actions) HitBall(ctx context.Context, userID int64, hits int) error {
	a.pad(ctx, domain.BallArea, a.paddingCount(hits))
	return a.api.TakeHits(ctx, userID, hits)
}

// FarmUpTo farms min(desired, energy) and returns the amount sent.
func (a *Actions) FarmUpTo(ctx context.Context, desired, energy int) (int, error) {
	amount := capAmount(desired, energy)
	if amount <= 0 {
		return 0, nil
	}

	return amount, a.PerformFarming(ctx, amount)
}

// FeedUpTo feeds min(desired, shards) and returns the amount sent.
func (a *Actions) FeedUpTo(ctx context.Context, desired, shards int) (int, error) {
	amount := capAmount(desired, shards)
	if amount <= 0 {
		return 0, nil
	}

	return amount, a.PerformFeeding(ctx, amount)
}

// HitUpTo hits min(desired, health) times and returns the hits sent.
func (a *Actions) HitUpTo(ctx context.Context, userID int64, desired, health int) (int, error) {
	hits := capAmount(desired, health)
	if hits <= 0 {
		return 0, nil
	}

	return hits, a.HitBall(ctx, userID, hits)
}

// Land sends the single padding point the web app posts on open.
func (a *Actions) Land(ctx context.Context) {
	a.pad(ctx, domain.LandingArea, 1)
}

// pad submits n copies of one random point in area. Its failure is logged
// by the client and otherwise ignored.
func (a *Actions) pad(ctx context.Context, area domain.PointerArea, n int) {
	point := domain.Point{X: area.X.Pick(a.rnd), Y: area.Y.Pick(a.rnd)}
	points := make([]domain.Point, n)
	for i := range points {
		points[i] = point
	}

	if err := a.api.Save(ctx, points); err != nil {
		a.log.Debug("padding save failed", zap.Error(err))
	}
}

func (a *Actions) paddingCount(amount int) int {
	return domain.IntRange{Min: max(amount-paddingSlack, 0), Max: max(amount, 0)}.Pick(a.rnd)
}

func capAmount(desired, remaining int) int {
	return max(min(desired, remaining), 0)
}

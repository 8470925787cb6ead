package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
)

func assertPointsWithin(t *testing.T, area domain.PointerArea, points []domain.Point) {
	t.Helper()

	for _, p := range points {
		assert.GreaterOrEqual(t, p.X, area.X.Min)
		assert.LessOrEqual(t, p.X, area.X.Max)
		assert.GreaterOrEqual(t, p.Y, area.Y.Min)
		assert.LessOrEqual(t, p.Y, area.Y.Max)
	}
}

func TestPerformFarmingPadsThenMines(t *testing.T) {
	t.Parallel()

	game := newFakeGame()
	actions := NewActions(game, testRand(), nil)

	require.NoError(t, actions.PerformFarming(context.Background(), 20))

	assert.Equal(t, []string{"Save", "MineAndFeed"}, game.methods())
	points := game.callsTo("Save")[0].Args[0].([]domain.Point)
	assert.GreaterOrEqual(t, len(points), 15)
	assert.LessOrEqual(t, len(points), 20)
	assertPointsWithin(t, domain.MiningArea, points)
	assert.Equal(t, []any{20, 0}, game.callsTo("MineAndFeed")[0].Args)
}

func TestPerformFeedingUsesFeedingArea(t *testing.T) {
	t.Parallel()

	game := newFakeGame()
	actions := NewActions(game, testRand(), nil)

	require.NoError(t, actions.PerformFeeding(context.Background(), 12))

	points := game.callsTo("Save")[0].Args[0].([]domain.Point)
	assert.GreaterOrEqual(t, len(points), 7)
	assert.LessOrEqual(t, len(points), 12)
	assertPointsWithin(t, domain.FeedingArea, points)
	assert.Equal(t, []any{0, 12}, game.callsTo("MineAndFeed")[0].Args)
}

func TestHitBallUsesBallAreaAndUserID(t *testing.T) {
	t.Parallel()

	game := newFakeGame()
	actions := NewActions(game, testRand(), nil)

	require.NoError(t, actions.HitBall(context.Background(), 777, 8))

	assertPointsWithin(t, domain.BallArea, game.callsTo("Save")[0].Args[0].([]domain.Point))
	assert.Equal(t, []any{int64(777), 8}, game.callsTo("TakeHits")[0].Args)
}

func TestPaddingCountIsClampedAtZero(t *testing.T) {
	t.Parallel()

	game := newFakeGame()
	actions := NewActions(game, testRand(), nil)

	for range 20 {
		n := actions.paddingCount(3)
		assert.GreaterOrEqual(t, n, 0)
		assert.LessOrEqual(t, n, 3)
	}
	assert.Equal(t, 0, actions.paddingCount(0))
}

func TestFailedPaddingDoesNotBlockRealCall(t *testing.T) {
	t.Parallel()

	game := newFakeGame()
	game.saveErr = errBackend
	actions := NewActions(game, testRand(), nil)

	require.NoError(t, actions.PerformFarming(context.Background(), 10))
	assert.Len(t, game.callsTo("MineAndFeed"), 1)
}

func TestFarmUpToCapsAtRemainingEnergy(t *testing.T) {
	t.Parallel()

	game := newFakeGame()
	actions := NewActions(game, testRand(), nil)

	sent, err := actions.FarmUpTo(context.Background(), 50, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, sent)
	assert.Equal(t, []any{12, 0}, game.callsTo("MineAndFeed")[0].Args)
}

func TestUpToHelpersSkipWhenNothingRemains(t *testing.T) {
	t.Parallel()

	game := newFakeGame()
	actions := NewActions(game, testRand(), nil)

	sent, err := actions.FeedUpTo(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Zero(t, sent)

	hits, err := actions.HitUpTo(context.Background(), 1, 10, -2)
	require.NoError(t, err)
	assert.Zero(t, hits)

	assert.Empty(t, game.methods())
}

func TestLandSendsSinglePoint(t *testing.T) {
	t.Parallel()

	game := newFakeGame()
	NewActions(game, testRand(), nil).Land(context.Background())

	points := game.callsTo("Save")[0].Args[0].([]domain.Point)
	require.Len(t, points, 1)
	assertPointsWithin(t, domain.LandingArea, points)
}

package application

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
	"github.com/ranchfarm/ranch-farmer/internal/ports"
	"github.com/ranchfarm/ranch-farmer/internal/ports/mocks"
)

var errBackend = fmt.Errorf("%w: status 500", domain.ErrCallFailed)

type gameCall struct {
	Method string
	Args   []any
}

// fakeGame is a scripted backend. Unset responses succeed with zero values.
type fakeGame struct {
	mu    sync.Mutex
	calls []gameCall
	token string

	onboardingStep  domain.OnboardingStep
	onboardingErr   error
	onboardingBody  map[domain.OnboardingStep]string
	starterBody     string
	completeBody    string
	state           domain.PlayerState
	stateErr        error
	earned          string
	earnedErr       error
	snapshotErr     error
	raffleTickets   int
	raffleErrs      map[int]error
	listings        []domain.ShopItem
	buyItemMessage  string
	streak          domain.DailyStreak
	claimMessage    string
	mineErrAfter    int
	feedErrAfter    int
	upgrades        []domain.Upgrade
	upgradeErrs     map[string]error
	inventory       domain.Inventory
	ball            domain.EnergyBall
	ballErr         error
	hitErrAfter     int
	outboundIP      string
	saveErr         error
	mineCalls       int
	feedCalls       int
	hitCalls        int
	raffleCallCount int
}

func newFakeGame() *fakeGame {
	return &fakeGame{
		onboardingStep: domain.StepThatsAll,
		onboardingBody: map[domain.OnboardingStep]string{},
		ball:           domain.EnergyBall{Destroyed: true},
		earned:         "0",
		mineErrAfter:   -1,
		feedErrAfter:   -1,
		hitErrAfter:    -1,
	}
}

func (f *fakeGame) record(method string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, gameCall{Method: method, Args: args})
}

func (f *fakeGame) methods() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.Method)
	}
	return out
}

func (f *fakeGame) callsTo(method string) []gameCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []gameCall
	for _, c := range f.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeGame) SetToken(token string) {
	f.record("SetToken", token)
	f.token = token
}

func (f *fakeGame) OnboardingState(context.Context) (domain.OnboardingStep, error) {
	f.record("OnboardingState")
	return f.onboardingStep, f.onboardingErr
}

func (f *fakeGame) UpdateOnboardingStep(_ context.Context, step domain.OnboardingStep) (string, error) {
	f.record("UpdateOnboardingStep", step)
	return f.onboardingBody[step], nil
}

func (f *fakeGame) SelectStarter(_ context.Context, starter string) (string, error) {
	f.record("SelectStarter", starter)
	return f.starterBody, nil
}

func (f *fakeGame) CompleteOnboarding(context.Context) (string, error) {
	f.record("CompleteOnboarding")
	return f.completeBody, nil
}

func (f *fakeGame) PlayerState(context.Context) (domain.PlayerState, error) {
	f.record("PlayerState")
	return f.state, f.stateErr
}

func (f *fakeGame) UpdateCoinsSnapshot(context.Context) error {
	f.record("UpdateCoinsSnapshot")
	return f.snapshotErr
}

func (f *fakeGame) CoinsEarnedAway(context.Context) (string, error) {
	f.record("CoinsEarnedAway")
	return f.earned, f.earnedErr
}

func (f *fakeGame) ActiveQuests(context.Context) (int, error) {
	f.record("ActiveQuests")
	return 0, nil
}

func (f *fakeGame) Listings(context.Context) ([]domain.ShopItem, error) {
	f.record("Listings")
	return f.listings, nil
}

func (f *fakeGame) BuyItem(_ context.Context, itemID string) (string, error) {
	f.record("BuyItem", itemID)
	return f.buyItemMessage, nil
}

func (f *fakeGame) DailyStreak(context.Context) (domain.DailyStreak, error) {
	f.record("DailyStreak")
	return f.streak, nil
}

func (f *fakeGame) ClaimDailyBonus(context.Context) (string, error) {
	f.record("ClaimDailyBonus")
	return f.claimMessage, nil
}

func (f *fakeGame) MineAndFeed(_ context.Context, mineAmount, feedAmount int) error {
	f.record("MineAndFeed", mineAmount, feedAmount)
	f.mu.Lock()
	defer f.mu.Unlock()
	if mineAmount > 0 {
		f.mineCalls++
		if f.mineErrAfter >= 0 && f.mineCalls > f.mineErrAfter {
			return errBackend
		}
	}
	if feedAmount > 0 {
		f.feedCalls++
		if f.feedErrAfter >= 0 && f.feedCalls > f.feedErrAfter {
			return errBackend
		}
	}
	return nil
}

func (f *fakeGame) Save(_ context.Context, points []domain.Point) error {
	f.record("Save", points)
	return f.saveErr
}

func (f *fakeGame) PurchasableUpgrades(context.Context) ([]domain.Upgrade, error) {
	f.record("PurchasableUpgrades")
	return f.upgrades, nil
}

func (f *fakeGame) BuyUpgrade(_ context.Context, upgradeID string) error {
	f.record("BuyUpgrade", upgradeID)
	return f.upgradeErrs[upgradeID]
}

func (f *fakeGame) Inventory(context.Context) (domain.Inventory, error) {
	f.record("Inventory")
	return f.inventory, nil
}

func (f *fakeGame) UseItem(_ context.Context, itemID string) (string, error) {
	f.record("UseItem", itemID)
	return "", nil
}

func (f *fakeGame) RaffleTickets(context.Context) (int, error) {
	f.record("RaffleTickets")
	return f.raffleTickets, nil
}

func (f *fakeGame) UseRaffleTicket(context.Context) (string, error) {
	f.record("UseRaffleTicket")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.raffleCallCount++
	if err, ok := f.raffleErrs[f.raffleCallCount]; ok {
		return "", err
	}
	return "coins", nil
}

func (f *fakeGame) EnergyBall(context.Context) (domain.EnergyBall, error) {
	f.record("EnergyBall")
	return f.ball, f.ballErr
}

func (f *fakeGame) TakeHits(_ context.Context, userID int64, hits int) error {
	f.record("TakeHits", userID, hits)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hitCalls++
	if f.hitErrAfter >= 0 && f.hitCalls > f.hitErrAfter {
		return errBackend
	}
	return nil
}

func (f *fakeGame) Reincarnate(context.Context) error {
	f.record("Reincarnate")
	return nil
}

func (f *fakeGame) OutboundIP(context.Context) (string, error) {
	f.record("OutboundIP")
	return f.outboundIP, nil
}

var _ ports.GameAPI = (*fakeGame)(nil)

// fakeClock advances on Sleep instead of blocking.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	sleeps  []time.Duration
	onSleep func(count int)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	c.now = c.now.Add(d)
	c.sleeps = append(c.sleeps, d)
	count := len(c.sleeps)
	hook := c.onSleep
	c.mu.Unlock()

	if hook != nil {
		hook(count)
	}

	return ctx.Err()
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

// fakeCredentials counts refreshes and issues a fixed TTL.
type fakeCredentials struct {
	clock   *fakeClock
	ttl     time.Duration
	userID  int64
	err     error
	refresh int
}

func (c *fakeCredentials) Refresh(context.Context) (domain.Credential, error) {
	c.refresh++
	if c.err != nil {
		return domain.Credential{}, c.err
	}
	return domain.NewCredential(fmt.Sprintf("token-%d", c.refresh), c.clock.Now(), c.ttl), nil
}

func (c *fakeCredentials) UserID() int64 {
	return c.userID
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1024))
}

// authorizedMessenger runs fn against session as if the account were
// logged in.
func authorizedMessenger(t *testing.T, session ports.MessengerSession) *mocks.MockMessenger {
	t.Helper()

	messenger := mocks.NewMockMessenger(t)
	messenger.EXPECT().WithSession(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, ports.MessengerSession) error) error {
			return fn(ctx, session)
		})

	return messenger
}

func mockAnyContext() interface{} {
	return mock.Anything
}

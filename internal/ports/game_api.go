package ports

import (
	"context"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
)

// GameAPI is the game backend. Every method either succeeds or returns an
// error wrapping domain.ErrCallFailed; callers treat such an error as "the
// operation did not happen this iteration".
type GameAPI interface {
	SetToken(token string)

	OnboardingState(ctx context.Context) (domain.OnboardingStep, error)
	UpdateOnboardingStep(ctx context.Context, step domain.OnboardingStep) (string, error)
	SelectStarter(ctx context.Context, starter string) (string, error)
	CompleteOnboarding(ctx context.Context) (string, error)

	PlayerState(ctx context.Context) (domain.PlayerState, error)
	UpdateCoinsSnapshot(ctx context.Context) error
	CoinsEarnedAway(ctx context.Context) (string, error)
	ActiveQuests(ctx context.Context) (int, error)

	Listings(ctx context.Context) ([]domain.ShopItem, error)
	BuyItem(ctx context.Context, itemID string) (string, error)

	DailyStreak(ctx context.Context) (domain.DailyStreak, error)
	ClaimDailyBonus(ctx context.Context) (string, error)

	MineAndFeed(ctx context.Context, mineAmount, feedAmount int) error
	Save(ctx context.Context, points []domain.Point) error

	PurchasableUpgrades(ctx context.Context) ([]domain.Upgrade, error)
	BuyUpgrade(ctx context.Context, upgradeID string) error

	Inventory(ctx context.Context) (domain.Inventory, error)
	UseItem(ctx context.Context, itemID string) (string, error)

	RaffleTickets(ctx context.Context) (int, error)
	UseRaffleTicket(ctx context.Context) (string, error)

	EnergyBall(ctx context.Context) (domain.EnergyBall, error)
	TakeHits(ctx context.Context, userID int64, hits int) error

	Reincarnate(ctx context.Context) error

	// OutboundIP reports the address the backend sees, through the proxy
	// when one is configured.
	OutboundIP(ctx context.Context) (string, error)
}

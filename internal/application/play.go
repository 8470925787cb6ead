package application

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
)

const (
	energyBallHealthBonus = 3
	windfallWindow        = 15 * time.Second
	purchaseSuccessMarker = "successfully"
)

var (
	hitBursts     = domain.IntRange{Min: 10, Max: 20}
	hitsPerBurst  = domain.IntRange{Min: 5, Max: 10}
	windfallBatch = domain.IntRange{Min: 80, Max: 100}
)

// play runs the steady-state actions of one iteration. Failed game calls
// only skip the step they belong to; the returned error is always a
// context error.
func (s *Session) play(ctx context.Context) (time.Duration, error) {
	state, stateErr := s.api.PlayerState(ctx)
	s.actions.Land(ctx)
	earned, earnedErr := s.api.CoinsEarnedAway(ctx)
	if err := s.api.UpdateCoinsSnapshot(ctx); err == nil {
		s.log.Debug("coins snapshot updated")
	}
	tickets, ticketsErr := s.api.RaffleTickets(ctx)

	if stateErr != nil || earnedErr != nil {
		wait := unavailableBackoff.PickSeconds(s.rnd)
		s.log.Warn("player state unavailable, backing off", zap.Duration("sleep", wait))
		return wait, nil
	}
	if ticketsErr != nil {
		tickets = 0
	}

	s.log.Info("player state",
		zap.String("earned_away", earned),
		zap.Int64("balance", state.Balance),
		zap.Int("shards", state.Shards),
		zap.Int("raffle_tickets", tickets),
		zap.Int("beast_level", state.BeastLevel),
	)
	if quests, err := s.api.ActiveQuests(ctx); err == nil {
		s.log.Debug("active quests", zap.Int("count", quests))
	}

	s.reincarnate(ctx, state.BeastLevel)
	s.claimDailyBonus(ctx)
	s.redeemRaffleTickets(ctx, tickets)

	if err := s.hitEnergyBall(ctx); err != nil {
		return 0, err
	}

	energy, err := s.farm(ctx, state.Energy)
	if err != nil {
		return 0, err
	}
	if err := s.feed(ctx, state.Shards); err != nil {
		return 0, err
	}

	disposable := state.Balance - s.settings.SaveCoin
	s.shop(ctx, disposable)

	if err := s.useInventory(ctx, energy); err != nil {
		return 0, err
	}
	if err := s.upgrade(ctx, disposable); err != nil {
		return 0, err
	}

	return s.nextSleep(), nil
}

func (s *Session) reincarnate(ctx context.Context, level int) {
	if !s.settings.AutoReincarnate || level <= s.settings.ReincarnateLevel {
		return
	}
	if err := s.api.Reincarnate(ctx); err != nil {
		return
	}
	s.log.Info("reincarnated", zap.Int("beast_level", level))
}

func (s *Session) claimDailyBonus(ctx context.Context) {
	streak, err := s.api.DailyStreak(ctx)
	if err != nil {
		return
	}
	if streak.TodayClaimed {
		s.log.Info("daily bonus already received today")
		return
	}

	message, err := s.api.ClaimDailyBonus(ctx)
	if err != nil {
		s.log.Info("daily bonus not claimable today")
		return
	}
	s.log.Info("daily bonus claimed", zap.String("message", message))
}

func (s *Session) redeemRaffleTickets(ctx context.Context, tickets int) {
	for range tickets {
		reward, err := s.api.UseRaffleTicket(ctx)
		if err != nil {
			continue
		}
		s.log.Info("raffle ticket used", zap.String("reward", reward))
	}
}

func (s *Session) hitEnergyBall(ctx context.Context) error {
	ball, err := s.api.EnergyBall(ctx)
	if err != nil || ball.Destroyed {
		return nil
	}

	health := ball.CurrentHealth + energyBallHealthBonus
	userID := s.credentials.UserID()
	for range hitBursts.Pick(s.rnd) {
		if health <= 0 {
			break
		}

		hits, err := s.actions.HitUpTo(ctx, userID, hitsPerBurst.Pick(s.rnd), health)
		if err != nil || hits == 0 {
			break
		}
		health -= hits
		s.log.Info("energy ball hit", zap.Int("hits", hits))

		if err := s.pause(ctx, actionPause); err != nil {
			return err
		}
	}

	return nil
}

// farm spends energy in configured batches and returns what is left.
func (s *Session) farm(ctx context.Context, energy int) (int, error) {
	for energy > 0 {
		mined, err := s.actions.FarmUpTo(ctx, s.settings.MineAmount.Pick(s.rnd), energy)
		if err != nil || mined == 0 {
			break
		}
		energy -= mined
		s.log.Info("farming succeeded", zap.Int("mined", mined))

		if err := s.pause(ctx, actionPause); err != nil {
			return energy, err
		}
	}

	return energy, nil
}

func (s *Session) feed(ctx context.Context, shards int) error {
	for shards > 0 {
		fed, err := s.actions.FeedUpTo(ctx, s.settings.FeedAmount.Pick(s.rnd), shards)
		if err != nil || fed == 0 {
			break
		}
		shards -= fed
		s.log.Info("feeding succeeded", zap.Int("fed", fed))

		if err := s.pause(ctx, actionPause); err != nil {
			return err
		}
	}

	return nil
}

// shop buys every in-stock listing cheaper than the disposable balance. The
// balance is not re-read between purchases.
func (s *Session) shop(ctx context.Context, disposable int64) {
	items, err := s.api.Listings(ctx)
	if err != nil {
		return
	}

	for _, item := range items {
		if !item.InStock || disposable <= item.Cost {
			continue
		}

		message, err := s.api.BuyItem(ctx, item.ID)
		if err != nil {
			continue
		}
		if strings.Contains(message, purchaseSuccessMarker) {
			s.log.Info("item bought", zap.String("item", item.Name))
		}
	}
}

func (s *Session) useInventory(ctx context.Context, energy int) error {
	inventory, err := s.api.Inventory(ctx)
	if err != nil {
		return nil
	}
	s.log.Info("inventory", zap.String("items", inventorySummary(inventory)))

	if inventory.Quantity(domain.ItemShards) >= 1 {
		if _, err := s.api.UseItem(ctx, domain.ItemShards); err == nil {
			s.log.Info("shards used")
		}
	}

	if inventory.Quantity(domain.ItemEnergyDrink) < 1 || energy > 0 {
		return nil
	}
	if _, err := s.api.UseItem(ctx, domain.ItemEnergyDrink); err != nil {
		return nil
	}
	s.log.Info("energy drink used")

	return s.farmWindfall(ctx)
}

// farmWindfall farms large batches for a bounded window after an energy
// drink.
func (s *Session) farmWindfall(ctx context.Context) error {
	deadline := s.clock.Now().Add(windfallWindow)
	for s.clock.Now().Before(deadline) {
		amount := windfallBatch.Pick(s.rnd)
		if err := s.actions.PerformFarming(ctx, amount); err != nil {
			break
		}
		s.log.Info("farming succeeded", zap.Int("mined", amount))

		if err := s.pause(ctx, actionPause); err != nil {
			return err
		}
	}

	return nil
}

// upgrade buys affordable upgrades in listing order, tracking the spent
// balance locally.
func (s *Session) upgrade(ctx context.Context, disposable int64) error {
	if !s.settings.AutoUpgrade {
		return nil
	}

	upgrades, err := s.api.PurchasableUpgrades(ctx)
	if err != nil {
		return nil
	}

	for _, upgrade := range upgrades {
		if !upgrade.CanBePurchased || upgrade.Cost >= disposable {
			continue
		}

		if err := s.api.BuyUpgrade(ctx, upgrade.ID); err != nil {
			s.log.Error("upgrade purchase failed", zap.String("upgrade", upgrade.Name))
			continue
		}
		disposable -= upgrade.Cost
		s.log.Info("upgrade bought",
			zap.String("upgrade", upgrade.Name),
			zap.Int64("cost", upgrade.Cost),
			zap.Int64("earn_per_hour", upgrade.EarnIncrement),
		)

		if err := s.pause(ctx, upgradePause); err != nil {
			return err
		}
	}

	return nil
}

func inventorySummary(inventory domain.Inventory) string {
	title := cases.Title(language.English)
	parts := make([]string, 0, len(inventory))
	for _, item := range inventory {
		name := title.String(strings.ReplaceAll(item.ID, "-", " "))
		parts = append(parts, name+": "+strconv.Itoa(item.Quantity))
	}

	return strings.Join(parts, " - ")
}

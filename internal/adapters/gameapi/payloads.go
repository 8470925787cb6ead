package gameapi

import "github.com/ranchfarm/ranch-farmer/internal/domain"

type valueSnapshot struct {
	Value float64 `json:"value"`
}

type playerStatePayload struct {
	CoinsSnapshot  valueSnapshot `json:"coinsSnapshot"`
	EnergySnapshot valueSnapshot `json:"energySnapshot"`
	Shards         float64       `json:"shards"`
	Beast          struct {
		Level int `json:"level"`
	} `json:"beast"`
}

func (p playerStatePayload) toDomain() domain.PlayerState {
	return domain.PlayerState{
		Balance:    int64(p.CoinsSnapshot.Value),
		Shards:     int(p.Shards),
		BeastLevel: p.Beast.Level,
		Energy:     int(p.EnergySnapshot.Value),
	}
}

type onboardingPayload struct {
	CurrentStep string `json:"currentStep"`
}

type messagePayload struct {
	Message string `json:"message"`
}

type listingPayload struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	CoinCost float64 `json:"coinCost"`
	InStock  bool    `json:"inStock"`
}

type upgradePayload struct {
	UpgradeID      string  `json:"upgradeId"`
	Name           string  `json:"name"`
	Cost           float64 `json:"cost"`
	CanBePurchased bool    `json:"canBePurchased"`
	EarnIncrement  float64 `json:"earnIncrement"`
}

type inventoryPayload struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type dailyStreakPayload struct {
	IsTodayClaimed bool `json:"isTodayClaimed"`
}

type raffleTicketsPayload struct {
	Count int `json:"count"`
}

type energyBallPayload struct {
	CurrentHealth float64 `json:"currentHealth"`
	IsDestroyed   *bool   `json:"isDestroyed"`
}

func (p energyBallPayload) toDomain() domain.EnergyBall {
	// A missing flag is treated as destroyed so no hits are sent.
	destroyed := true
	if p.IsDestroyed != nil {
		destroyed = *p.IsDestroyed
	}

	return domain.EnergyBall{CurrentHealth: int(p.CurrentHealth), Destroyed: destroyed}
}

type miningRequest struct {
	MineAmount int `json:"mineAmount"`
	FeedAmount int `json:"feedAmount"`
}

type pointRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type hitsRequest struct {
	Hits int `json:"hits"`
}

type itemRequest struct {
	ItemID string `json:"itemId"`
}

type upgradeRequest struct {
	UpgradeID string `json:"upgradeId"`
}

type stepRequest struct {
	NewStep string `json:"newStep"`
}

type starterRequest struct {
	StarterOption string `json:"starterOption"`
}

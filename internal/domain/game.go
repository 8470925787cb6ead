package domain

// Item identifiers the steady-state loop consumes from the inventory.
const (
	ItemShards      = "shards"
	ItemEnergyDrink = "energy-drink"
)

// PlayerState is re-read every iteration and never cached beyond it.
type PlayerState struct {
	Balance    int64
	Shards     int
	BeastLevel int
	Energy     int
}

type ShopItem struct {
	ID      string
	Name    string
	Cost    int64
	InStock bool
}

type Upgrade struct {
	ID             string
	Name           string
	Cost           int64
	CanBePurchased bool
	EarnIncrement  int64
}

type InventoryItem struct {
	ID       string
	Quantity int
}

type Inventory []InventoryItem

func (inv Inventory) Quantity(itemID string) int {
	total := 0
	for _, item := range inv {
		if item.ID == itemID {
			total += item.Quantity
		}
	}

	return total
}

type EnergyBall struct {
	CurrentHealth int
	Destroyed     bool
}

type DailyStreak struct {
	TodayClaimed bool
}

// Point is one synthetic pointer position submitted by the padding call.
type Point struct {
	X int
	Y int
}

// PointerArea bounds the synthetic pointer positions for one kind of action.
type PointerArea struct {
	X IntRange
	Y IntRange
}

var (
	MiningArea  = PointerArea{X: IntRange{Min: 100, Max: 200}, Y: IntRange{Min: 228, Max: 385}}
	FeedingArea = PointerArea{X: IntRange{Min: 3, Max: 85}, Y: IntRange{Min: 200, Max: 357}}
	BallArea    = PointerArea{X: IntRange{Min: 50, Max: 300}, Y: IntRange{Min: 50, Max: 300}}
	LandingArea = PointerArea{X: IntRange{Min: 10, Max: 450}, Y: IntRange{Min: 10, Max: 600}}
)

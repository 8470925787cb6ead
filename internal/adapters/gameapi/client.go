package gameapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/ranchfarm/ranch-farmer/internal/domain"
	"github.com/ranchfarm/ranch-farmer/internal/ports"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://ranch-api.kuroro.com/api"
	webAppOrigin   = "https://ranch.kuroro.com"
	ipCheckURL     = "https://httpbin.org/ip"
	ipCheckTimeout = 5 * time.Second
	jsonMediaType  = "application/json"
)

var errEmptyJSON = errors.New("empty json body")

type Options struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Logger     *zap.Logger
	// IPCheckURL overrides the outbound address echo service.
	IPCheckURL string
	// IPCheckTimeout bounds the outbound address check, the only call with
	// a deadline of its own. Zero means five seconds.
	IPCheckTimeout time.Duration
}

// Client talks to the game backend on behalf of one account. It keeps no
// game state; only the bearer token installed with SetToken.
type Client struct {
	http           *resty.Client
	log            *zap.Logger
	ipCheckURL     string
	ipCheckTimeout time.Duration
}

var _ ports.GameAPI = (*Client)(nil)

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Transport: &decodingTransport{base: http.DefaultTransport}}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.IPCheckURL == "" {
		opts.IPCheckURL = ipCheckURL
	}
	if opts.IPCheckTimeout <= 0 {
		opts.IPCheckTimeout = ipCheckTimeout
	}

	rc := resty.NewWithClient(opts.HTTPClient).
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetHeader("Accept", "application/json, text/plain, */*").
		SetHeader("Accept-Language", "en-US,en;q=0.9").
		SetHeader("Accept-Encoding", "gzip, deflate, br").
		SetHeader("Origin", webAppOrigin).
		SetHeader("Referer", webAppOrigin+"/").
		SetHeader("Sec-Fetch-Dest", "empty").
		SetHeader("Sec-Fetch-Mode", "cors").
		SetHeader("Sec-Fetch-Site", "same-site").
		SetHeader("X-Requested-With", "org.telegram.messenger")
	if opts.UserAgent != "" {
		rc.SetHeader("User-Agent", opts.UserAgent)
	}

	return &Client{
		http:           rc,
		log:            opts.Logger,
		ipCheckURL:     opts.IPCheckURL,
		ipCheckTimeout: opts.IPCheckTimeout,
	}
}

// SetToken installs the bearer token sent with every later call.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

type response struct {
	body        []byte
	contentType string
}

func (r response) isJSON() bool {
	return strings.Contains(strings.ToLower(r.contentType), jsonMediaType)
}

func (r response) text() string {
	return string(r.body)
}

func (r response) decode(out any) error {
	if !r.isJSON() {
		return fmt.Errorf("unexpected content type %q", r.contentType)
	}
	if len(strings.TrimSpace(string(r.body))) == 0 {
		return errEmptyJSON
	}
	if err := json.Unmarshal(r.body, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	return nil
}

// request sends one call. endpoint is either a path below the base URL or
// an absolute URL.
func (c *Client) request(ctx context.Context, method, endpoint string, body any) (response, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", jsonMediaType).SetBody(body)
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		return response{}, fmt.Errorf("perform request: %w", err)
	}
	if !resp.IsSuccess() {
		return response{}, fmt.Errorf("status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	return response{body: resp.Body(), contentType: resp.Header().Get("Content-Type")}, nil
}

// call is the method boundary: it logs the failure with the account's
// logger and marks it with domain.ErrCallFailed.
func (c *Client) call(ctx context.Context, op, method, endpoint string, body any, out any) (response, error) {
	resp, err := c.request(ctx, method, endpoint, body)
	if err == nil && out != nil {
		err = resp.decode(out)
	}
	if err != nil {
		if ctx.Err() == nil {
			c.log.Error("game call failed", zap.String("call", op), zap.Error(err))
		}
		return response{}, fmt.Errorf("%w: %s: %w", domain.ErrCallFailed, op, err)
	}

	return resp, nil
}

func (c *Client) OnboardingState(ctx context.Context) (domain.OnboardingStep, error) {
	var payload onboardingPayload
	if _, err := c.call(ctx, "get onboarding state", http.MethodGet, "/Onboarding/GetOnboardingState", nil, &payload); err != nil {
		return "", err
	}

	return domain.OnboardingStep(payload.CurrentStep), nil
}

func (c *Client) UpdateOnboardingStep(ctx context.Context, step domain.OnboardingStep) (string, error) {
	resp, err := c.call(ctx, "update onboarding step", http.MethodPost, "/Onboarding/UpdateStep", stepRequest{NewStep: string(step)}, nil)
	if err != nil {
		return "", err
	}

	return resp.text(), nil
}

func (c *Client) SelectStarter(ctx context.Context, starter string) (string, error) {
	resp, err := c.call(ctx, "select starter", http.MethodPost, "/Onboarding/SelectStarter", starterRequest{StarterOption: starter}, nil)
	if err != nil {
		return "", err
	}

	return resp.text(), nil
}

func (c *Client) CompleteOnboarding(ctx context.Context) (string, error) {
	resp, err := c.call(ctx, "complete onboarding", http.MethodPost, "/Onboarding/CompleteOnboarding", map[string]any{}, nil)
	if err != nil {
		return "", err
	}

	return resp.text(), nil
}

func (c *Client) PlayerState(ctx context.Context) (domain.PlayerState, error) {
	var payload playerStatePayload
	if _, err := c.call(ctx, "get player state", http.MethodGet, "/Game/GetPlayerState", nil, &payload); err != nil {
		return domain.PlayerState{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) UpdateCoinsSnapshot(ctx context.Context) error {
	_, err := c.call(ctx, "update coins snapshot", http.MethodPost, "/Game/UpdateCoinsSnapshot", nil, nil)
	return err
}

// CoinsEarnedAway returns the amount earned while offline as printed by
// the backend.
func (c *Client) CoinsEarnedAway(ctx context.Context) (string, error) {
	resp, err := c.call(ctx, "get coins earned away", http.MethodGet, "/Game/CoinsEarnedAway", nil, nil)
	if err != nil {
		return "", err
	}
	if resp.isJSON() {
		return gjson.ParseBytes(resp.body).String(), nil
	}

	return strings.TrimSpace(resp.text()), nil
}

func (c *Client) ActiveQuests(ctx context.Context) (int, error) {
	resp, err := c.call(ctx, "get active quests", http.MethodGet, "/Quests/GetActiveQuests", nil, nil)
	if err != nil {
		return 0, err
	}

	parsed := gjson.ParseBytes(resp.body)
	if !parsed.IsArray() {
		return 0, nil
	}

	return len(parsed.Array()), nil
}

func (c *Client) Listings(ctx context.Context) ([]domain.ShopItem, error) {
	var payload []listingPayload
	if _, err := c.call(ctx, "get shop listings", http.MethodGet, "/CoinsShop/GetListings", nil, &payload); err != nil {
		return nil, err
	}

	items := make([]domain.ShopItem, 0, len(payload))
	for _, entry := range payload {
		items = append(items, domain.ShopItem{
			ID:      entry.ItemID,
			Name:    entry.Name,
			Cost:    int64(entry.CoinCost),
			InStock: entry.InStock,
		})
	}

	return items, nil
}

func (c *Client) BuyItem(ctx context.Context, itemID string) (string, error) {
	var payload messagePayload
	if _, err := c.call(ctx, "buy shop item", http.MethodPost, "/CoinsShop/BuyItem", itemRequest{ItemID: itemID}, &payload); err != nil {
		return "", err
	}

	return payload.Message, nil
}

func (c *Client) DailyStreak(ctx context.Context) (domain.DailyStreak, error) {
	var payload dailyStreakPayload
	if _, err := c.call(ctx, "get daily streak", http.MethodGet, "/DailyStreak/GetState", nil, &payload); err != nil {
		return domain.DailyStreak{}, err
	}

	return domain.DailyStreak{TodayClaimed: payload.IsTodayClaimed}, nil
}

func (c *Client) ClaimDailyBonus(ctx context.Context) (string, error) {
	var payload messagePayload
	if _, err := c.call(ctx, "claim daily bonus", http.MethodPost, "/DailyStreak/ClaimDailyBonus", map[string]any{}, &payload); err != nil {
		return "", err
	}

	return payload.Message, nil
}

func (c *Client) MineAndFeed(ctx context.Context, mineAmount, feedAmount int) error {
	_, err := c.call(ctx, "mining and feeding", http.MethodPost, "/Clicks/MiningAndFeeding", miningRequest{MineAmount: mineAmount, FeedAmount: feedAmount}, nil)
	return err
}

func (c *Client) Save(ctx context.Context, points []domain.Point) error {
	body := make([]pointRequest, 0, len(points))
	for _, p := range points {
		body = append(body, pointRequest{X: p.X, Y: p.Y})
	}

	_, err := c.call(ctx, "save pointer trail", http.MethodPost, "/Bf/Save", body, nil)
	return err
}

func (c *Client) PurchasableUpgrades(ctx context.Context) ([]domain.Upgrade, error) {
	var payload []upgradePayload
	if _, err := c.call(ctx, "get purchasable upgrades", http.MethodGet, "/Upgrades/GetPurchasableUpgrades", nil, &payload); err != nil {
		return nil, err
	}

	upgrades := make([]domain.Upgrade, 0, len(payload))
	for _, entry := range payload {
		upgrades = append(upgrades, domain.Upgrade{
			ID:             entry.UpgradeID,
			Name:           entry.Name,
			Cost:           int64(entry.Cost),
			CanBePurchased: entry.CanBePurchased,
			EarnIncrement:  int64(entry.EarnIncrement),
		})
	}

	return upgrades, nil
}

func (c *Client) BuyUpgrade(ctx context.Context, upgradeID string) error {
	_, err := c.call(ctx, "buy upgrade", http.MethodPost, "/Upgrades/BuyUpgrade", upgradeRequest{UpgradeID: upgradeID}, nil)
	return err
}

func (c *Client) Inventory(ctx context.Context) (domain.Inventory, error) {
	var payload []inventoryPayload
	if _, err := c.call(ctx, "get inventory", http.MethodGet, "/Inventory/GetInventory", nil, &payload); err != nil {
		return nil, err
	}

	inventory := make(domain.Inventory, 0, len(payload))
	for _, entry := range payload {
		inventory = append(inventory, domain.InventoryItem{ID: entry.ItemID, Quantity: entry.Quantity})
	}

	return inventory, nil
}

func (c *Client) UseItem(ctx context.Context, itemID string) (string, error) {
	resp, err := c.call(ctx, "use inventory item", http.MethodPost, "/Inventory/UseItem", itemRequest{ItemID: itemID}, nil)
	if err != nil {
		return "", err
	}

	return resp.text(), nil
}

func (c *Client) RaffleTickets(ctx context.Context) (int, error) {
	var payload raffleTicketsPayload
	if _, err := c.call(ctx, "get raffle tickets", http.MethodGet, "/RaffleTickets/GetRaffleTickets", nil, &payload); err != nil {
		return 0, err
	}

	return payload.Count, nil
}

func (c *Client) UseRaffleTicket(ctx context.Context) (string, error) {
	resp, err := c.call(ctx, "use raffle ticket", http.MethodPost, "/RaffleTickets/UseRaffleTicket", map[string]any{}, nil)
	if err != nil {
		return "", err
	}
	if resp.isJSON() {
		return gjson.ParseBytes(resp.body).Get("@ugly").String(), nil
	}

	return resp.text(), nil
}

func (c *Client) EnergyBall(ctx context.Context) (domain.EnergyBall, error) {
	var payload energyBallPayload
	if _, err := c.call(ctx, "get energy ball state", http.MethodGet, "/EnergyBalls/GetEnergyBallState", nil, &payload); err != nil {
		return domain.EnergyBall{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) TakeHits(ctx context.Context, userID int64, hits int) error {
	endpoint := fmt.Sprintf("/EnergyBalls/TakeHitsCombo/tg-%d:main", userID)
	_, err := c.call(ctx, "take energy ball hits", http.MethodPost, endpoint, hitsRequest{Hits: hits}, nil)
	return err
}

func (c *Client) Reincarnate(ctx context.Context) error {
	_, err := c.call(ctx, "reincarnate", http.MethodPost, "/Reincarnate/Reincarnate", map[string]any{}, nil)
	return err
}

func (c *Client) OutboundIP(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.ipCheckTimeout)
	defer cancel()

	resp, err := c.call(ctx, "check outbound ip", http.MethodGet, c.ipCheckURL, nil, nil)
	if err != nil {
		return "", err
	}

	return gjson.GetBytes(resp.body, "origin").String(), nil
}

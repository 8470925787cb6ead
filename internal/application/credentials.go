package application

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
	"github.com/ranchfarm/ranch-farmer/internal/ports"
)

const (
	BotUsername         = "KuroroRanchBot"
	AppShortName        = "ranch"
	WebViewPlatform     = "android"
	DefaultReferralCode = "ref-C6E90E2D"

	// referralPercent is the share of handshakes that carry the configured
	// referral code, drawn from [0, 100].
	referralPercent = 85
	floodWaitMargin = 3 * time.Second

	webAppDataPrefix  = "tgWebAppData="
	webAppVersionMark = "&tgWebAppVersion"
)

var credentialTTL = domain.IntRange{
	Min: int(domain.MinCredentialTTL / time.Second),
	Max: int(domain.MaxCredentialTTL / time.Second),
}

// CredentialProvider exchanges the messenger session for a game bearer
// token through the bot's web app.
type CredentialProvider struct {
	messenger ports.Messenger
	referral  string
	clock     ports.Clock
	rnd       *rand.Rand
	log       *zap.Logger

	userID int64
}

func NewCredentialProvider(messenger ports.Messenger, referral string, clock ports.Clock, rnd *rand.Rand, log *zap.Logger) *CredentialProvider {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &CredentialProvider{
		messenger: messenger,
		referral:  strings.TrimSpace(referral),
		clock:     clock,
		rnd:       orDefaultRand(rnd),
		log:       log,
	}
}

// UserID is the messenger id of the account, known after the first
// successful Refresh.
func (p *CredentialProvider) UserID() int64 {
	return p.userID
}

func (p *CredentialProvider) Refresh(ctx context.Context) (domain.Credential, error) {
	var token string
	startParam := p.startParam()

	err := p.messenger.WithSession(ctx, func(ctx context.Context, session ports.MessengerSession) error {
		var bot domain.Peer
		err := p.retryFloodWait(ctx, "resolve bot", func() error {
			var err error
			bot, err = session.ResolvePeer(ctx, BotUsername)
			return err
		})
		if err != nil {
			return classifyHandshakeError(fmt.Errorf("resolve %s: %w", BotUsername, err))
		}

		var webViewURL string
		err = p.retryFloodWait(ctx, "request web view", func() error {
			var err error
			webViewURL, err = session.RequestAppWebView(ctx, domain.WebViewRequest{
				Peer:         bot,
				AppShortName: AppShortName,
				Platform:     WebViewPlatform,
				StartParam:   startParam,
			})
			return err
		})
		if err != nil {
			return classifyHandshakeError(fmt.Errorf("request web view: %w", err))
		}

		token, err = ExtractWebAppData(webViewURL)
		if err != nil {
			return err
		}

		self, err := session.Self(ctx)
		if err != nil {
			return fmt.Errorf("get self: %w", err)
		}
		p.userID = self.ID

		return nil
	})
	if err != nil {
		return domain.Credential{}, err
	}

	credential := domain.NewCredential(token, p.clock.Now(), credentialTTL.PickSeconds(p.rnd))
	p.log.Info("credential refreshed", zap.Time("expires_at", credential.ExpiresAt()))

	return credential, nil
}

func (p *CredentialProvider) startParam() string {
	if p.referral != "" && p.rnd.IntN(101) <= referralPercent {
		return p.referral
	}

	return DefaultReferralCode
}

func (p *CredentialProvider) retryFloodWait(ctx context.Context, op string, fn func() error) error {
	for {
		err := fn()

		var flood *domain.FloodWaitError
		if !errors.As(err, &flood) {
			return err
		}

		wait := flood.Wait + floodWaitMargin
		p.log.Warn("flood wait", zap.String("op", op), zap.Duration("sleep", wait))
		if err := p.clock.Sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func classifyHandshakeError(err error) error {
	if errors.Is(err, domain.ErrInvalidSession) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return fmt.Errorf("%w: %w", domain.ErrAuth, err)
}

// ExtractWebAppData returns the unescaped init data carried by a web view
// URL between tgWebAppData= and &tgWebAppVersion.
func ExtractWebAppData(webViewURL string) (string, error) {
	_, rest, ok := strings.Cut(webViewURL, webAppDataPrefix)
	if !ok {
		return "", fmt.Errorf("%w: malformed web view url: missing %s", domain.ErrAuth, strings.TrimSuffix(webAppDataPrefix, "="))
	}

	data, _, ok := strings.Cut(rest, webAppVersionMark)
	if !ok || data == "" {
		return "", fmt.Errorf("%w: malformed web view url: unterminated web app data", domain.ErrAuth)
	}

	unescaped, err := url.PathUnescape(data)
	if err != nil {
		return "", fmt.Errorf("%w: malformed web view url: %w", domain.ErrAuth, err)
	}

	return unescaped, nil
}

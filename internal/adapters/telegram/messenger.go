package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/dcs"
	"github.com/gotd/td/telegram/message/peer"
	"github.com/gotd/td/tg"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
	"github.com/ranchfarm/ranch-farmer/internal/ports"
)

// SessionSource hands out the persisted MTProto state of a named session.
type SessionSource interface {
	ForSession(name string) session.Storage
}

type Options struct {
	AppID    int
	AppHash  string
	Sessions SessionSource
	Logger   *zap.Logger
}

// Messenger drives one account's messenger session.
type Messenger struct {
	account domain.Account
	opts    Options
	dial    dcs.DialFunc
	log     *zap.Logger
}

var _ ports.Messenger = (*Messenger)(nil)

func New(account domain.Account, opts Options) (*Messenger, error) {
	if opts.AppID <= 0 || strings.TrimSpace(opts.AppHash) == "" {
		return nil, errors.New("messenger api id and hash are required")
	}
	if opts.Sessions == nil {
		return nil, errors.New("messenger session source is nil")
	}
	if strings.TrimSpace(account.SessionName) == "" {
		return nil, errors.New("session name is empty")
	}

	dial, err := dialerFor(account.Proxy)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Messenger{account: account, opts: opts, dial: dial, log: log}, nil
}

func (m *Messenger) newClient() *telegram.Client {
	return telegram.NewClient(m.opts.AppID, m.opts.AppHash, telegram.Options{
		SessionStorage: m.opts.Sessions.ForSession(m.account.SessionName),
		Resolver:       dcs.Plain(dcs.PlainOptions{Dial: m.dial}),
		Logger:         m.log.WithOptions(zap.IncreaseLevel(zapcore.WarnLevel)).Named("mtproto"),
		NoUpdates:      true,
	})
}

func (m *Messenger) WithSession(ctx context.Context, fn func(ctx context.Context, session ports.MessengerSession) error) error {
	client := m.newClient()

	err := client.Run(ctx, func(ctx context.Context) error {
		status, err := client.Auth().Status(ctx)
		if err != nil {
			return mapError(fmt.Errorf("auth status: %w", err))
		}
		if !status.Authorized {
			return fmt.Errorf("%w: %w", domain.ErrInvalidSession, errUnauthorized)
		}

		api := client.API()
		return fn(ctx, &connected{client: client, api: api, resolver: peer.DefaultResolver(api)})
	})

	return mapError(err)
}

type connected struct {
	client   *telegram.Client
	api      *tg.Client
	resolver peer.Resolver
}

func (c *connected) ResolvePeer(ctx context.Context, username string) (domain.Peer, error) {
	resolved, err := c.resolver.ResolveDomain(ctx, username)
	if err != nil {
		return domain.Peer{}, mapError(fmt.Errorf("resolve %q: %w", username, err))
	}

	user, ok := resolved.(*tg.InputPeerUser)
	if !ok {
		return domain.Peer{}, fmt.Errorf("resolve %q: peer is not a user", username)
	}

	return domain.Peer{ID: user.UserID, AccessHash: user.AccessHash}, nil
}

func (c *connected) RequestAppWebView(ctx context.Context, req domain.WebViewRequest) (string, error) {
	res, err := c.api.MessagesRequestAppWebView(ctx, &tg.MessagesRequestAppWebViewRequest{
		WriteAllowed: true,
		Peer:         &tg.InputPeerUser{UserID: req.Peer.ID, AccessHash: req.Peer.AccessHash},
		App: &tg.InputBotAppShortName{
			BotID:     &tg.InputUser{UserID: req.Peer.ID, AccessHash: req.Peer.AccessHash},
			ShortName: req.AppShortName,
		},
		StartParam: req.StartParam,
		Platform:   req.Platform,
	})
	if err != nil {
		return "", mapError(fmt.Errorf("request app web view: %w", err))
	}

	return res.URL, nil
}

func (c *connected) Self(ctx context.Context) (domain.MessengerUser, error) {
	self, err := c.client.Self(ctx)
	if err != nil {
		return domain.MessengerUser{}, mapError(fmt.Errorf("get self: %w", err))
	}

	return domain.MessengerUser{ID: self.ID, Username: self.Username}, nil
}

// Authorized reports whether the stored session is still logged in.
func (m *Messenger) Authorized(ctx context.Context) (bool, error) {
	err := m.WithSession(ctx, func(context.Context, ports.MessengerSession) error { return nil })
	if errors.Is(err, domain.ErrInvalidSession) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ranchfarm/ranch-farmer/internal/adapters/gameapi"
	"github.com/ranchfarm/ranch-farmer/internal/adapters/proxies"
	statusadapter "github.com/ranchfarm/ranch-farmer/internal/adapters/render/status"
	tomlrepo "github.com/ranchfarm/ranch-farmer/internal/adapters/repo/toml"
	sessionfile "github.com/ranchfarm/ranch-farmer/internal/adapters/sessions/file"
	"github.com/ranchfarm/ranch-farmer/internal/adapters/telegram"
	"github.com/ranchfarm/ranch-farmer/internal/adapters/useragent"
	"github.com/ranchfarm/ranch-farmer/internal/application"
	"github.com/ranchfarm/ranch-farmer/internal/config"
	"github.com/ranchfarm/ranch-farmer/internal/domain"
	"github.com/ranchfarm/ranch-farmer/internal/logging"
	"github.com/ranchfarm/ranch-farmer/internal/ports"
)

type globalFlags struct {
	configDir string
	logLevel  string
}

type app struct {
	settings       config.Settings
	log            *zap.Logger
	sessions       *sessionfile.Store
	fingerprints   *application.FingerprintService
	statusRenderer func([]application.SessionStatus, statusadapter.RenderOptions) (string, error)
	clock          ports.Clock
}

func wireApp(flags *globalFlags, logOut io.Writer) (*app, error) {
	settings, err := config.Load(viper.New(), flags.configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.logLevel != "" {
		settings.LogLevel = flags.logLevel
	}
	settings.SessionsDir = resolvePath(flags.configDir, settings.SessionsDir)
	settings.UserAgentsFile = resolvePath(flags.configDir, settings.UserAgentsFile)
	settings.ProxiesFile = resolvePath(flags.configDir, settings.ProxiesFile)

	log, err := newLogger(settings.LogLevel, logOut)
	if err != nil {
		return nil, err
	}

	repo, err := tomlrepo.NewFingerprintRepository(settings.UserAgentsFile)
	if err != nil {
		return nil, fmt.Errorf("wire fingerprint repository: %w", err)
	}

	return &app{
		settings:       settings,
		log:            log,
		sessions:       sessionfile.NewStore(settings.SessionsDir),
		fingerprints:   application.NewFingerprintService(repo, useragent.NewGenerator(nil)),
		statusRenderer: statusadapter.Render,
		clock:          ports.SystemClock{},
	}, nil
}

func newLogger(level string, out io.Writer) (*zap.Logger, error) {
	if out == os.Stdout {
		return logging.New(level)
	}

	return logging.NewWithWriter(level, out, false)
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(dir, path)
}

// accounts lists stored sessions, narrowed to only when it is not empty,
// with proxies assigned when the proxy file is enabled.
func (a *app) accounts(ctx context.Context, only []string) ([]domain.Account, error) {
	names, err := a.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	if len(only) > 0 {
		for _, name := range only {
			if !slices.Contains(names, name) {
				return nil, fmt.Errorf("%w: %q", domain.ErrSessionNotFound, name)
			}
		}
		names = slices.DeleteFunc(names, func(name string) bool {
			return !slices.Contains(only, name)
		})
	}

	assigned, err := a.proxyAssignments(names)
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(names))
	for _, name := range names {
		accounts = append(accounts, domain.Account{SessionName: name, Proxy: assigned[name]})
	}

	return accounts, nil
}

func (a *app) proxyAssignments(names []string) (map[string]string, error) {
	if !a.settings.UseProxyFromFile {
		return proxies.Assign(names, nil), nil
	}

	list, err := proxies.Load(a.settings.ProxiesFile)
	if err != nil {
		return nil, fmt.Errorf("load proxies: %w", err)
	}
	if len(list) == 0 {
		a.log.Warn("proxy file has no entries, connecting directly", zap.String("path", a.settings.ProxiesFile))
	}

	return proxies.Assign(names, list), nil
}

func (a *app) messenger(account domain.Account, log *zap.Logger) (*telegram.Messenger, error) {
	return telegram.New(account, telegram.Options{
		AppID:    a.settings.APIID,
		AppHash:  a.settings.APIHash,
		Sessions: a.sessions,
		Logger:   log,
	})
}

func (a *app) checkAuthorization(ctx context.Context, account domain.Account) (bool, error) {
	messenger, err := a.messenger(account, logging.ForSession(a.log, account.SessionName))
	if err != nil {
		return false, err
	}

	return messenger.Authorized(ctx)
}

// newSession assembles the control loop of one account.
func (a *app) newSession(ctx context.Context, account domain.Account) (*application.Session, error) {
	log := logging.ForSession(a.log, account.SessionName)
	rnd := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	userAgent, err := a.fingerprints.UserAgent(ctx, account.SessionName)
	if err != nil {
		return nil, fmt.Errorf("user agent: %w", err)
	}

	httpClient, err := gameapi.NewHTTPClient(account.Proxy)
	if err != nil {
		return nil, err
	}

	messenger, err := a.messenger(account, log)
	if err != nil {
		return nil, err
	}

	api := gameapi.NewClient(gameapi.Options{
		BaseURL:    a.settings.APIBaseURL,
		UserAgent:  userAgent,
		HTTPClient: httpClient,
		Logger:     log,
	})

	return application.NewSession(application.SessionOptions{
		Name:        account.SessionName,
		Proxy:       account.Proxy,
		API:         api,
		Credentials: application.NewCredentialProvider(messenger, a.settings.RefID, a.clock, rnd, log),
		Settings:    playSettings(a.settings),
		Clock:       a.clock,
		Rand:        rnd,
		Logger:      log,
	}), nil
}

func playSettings(settings config.Settings) application.PlaySettings {
	return application.PlaySettings{
		FeedAmount:       settings.FeedAmount,
		MineAmount:       settings.MineAmount,
		SleepTime:        settings.SleepTime,
		AutoUpgrade:      settings.AutoUpgrade,
		SaveCoin:         settings.SaveCoin,
		AutoReincarnate:  settings.AutoReincarnate,
		ReincarnateLevel: settings.ReincarnateLevel,
	}
}

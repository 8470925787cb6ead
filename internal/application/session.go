package application

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
	"github.com/ranchfarm/ranch-farmer/internal/ports"
)

const iterationErrorBackoff = 3 * time.Second

var (
	unavailableBackoff = domain.IntRange{Min: 300, Max: 800}
	actionPause        = domain.IntRange{Min: 2, Max: 5}
	upgradePause       = domain.IntRange{Min: 2, Max: 10}
)

// Credentials issues bearer tokens for one account.
type Credentials interface {
	Refresh(ctx context.Context) (domain.Credential, error)
	UserID() int64
}

// PlaySettings are the tunables of steady-state play.
type PlaySettings struct {
	FeedAmount       domain.IntRange
	MineAmount       domain.IntRange
	SleepTime        domain.IntRange
	AutoUpgrade      bool
	SaveCoin         int64
	AutoReincarnate  bool
	ReincarnateLevel int
}

type SessionOptions struct {
	Name        string
	Proxy       string
	API         ports.GameAPI
	Credentials Credentials
	Settings    PlaySettings
	Clock       ports.Clock
	Rand        *rand.Rand
	Logger      *zap.Logger
}

// Session is the control loop of one account. It is not safe for
// concurrent use; run one Session per goroutine.
type Session struct {
	name        string
	proxy       string
	api         ports.GameAPI
	credentials Credentials
	actions     *Actions
	onboarding  *Onboarding
	settings    PlaySettings
	clock       ports.Clock
	rnd         *rand.Rand
	log         *zap.Logger

	credential domain.Credential
}

func NewSession(opts SessionOptions) *Session {
	clock := opts.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}
	rnd := orDefaultRand(opts.Rand)
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Session{
		name:        opts.Name,
		proxy:       opts.Proxy,
		api:         opts.API,
		credentials: opts.Credentials,
		actions:     NewActions(opts.API, rnd, log),
		onboarding:  NewOnboarding(opts.API, clock, rnd, log),
		settings:    opts.Settings,
		clock:       clock,
		rnd:         rnd,
		log:         log,
	}
}

// Run loops until ctx is done or the messenger session turns out to be
// invalid. Every other failure is logged and retried.
func (s *Session) Run(ctx context.Context) error {
	if s.proxy != "" {
		s.reportOutboundIP(ctx)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		wait, err := s.Iterate(ctx)
		switch {
		case errors.Is(err, domain.ErrInvalidSession):
			s.log.Error("invalid session, stopping", zap.Error(err))
			return err
		case ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			s.log.Error("iteration failed", zap.Error(err))
			wait = iterationErrorBackoff
		default:
			s.log.Info("sleeping", zap.Duration("sleep", wait))
		}

		if err := s.clock.Sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// Iterate performs one pass of the loop and returns how long to sleep
// before the next one.
func (s *Session) Iterate(ctx context.Context) (time.Duration, error) {
	if err := s.ensureCredential(ctx); err != nil {
		return 0, err
	}

	step, err := s.api.OnboardingState(ctx)
	if err != nil {
		return s.nextSleep(), nil
	}

	switch step {
	case domain.StepWelcomeMessage:
		if err := s.onboarding.Run(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return 0, ctxErr
			}
			s.log.Warn("registration failed, will try again", zap.Error(err))
		}
		return s.nextSleep(), nil
	case domain.StepThatsAll:
		return s.play(ctx)
	default:
		s.log.Info("onboarding in progress", zap.String("step", string(step)))
		return s.nextSleep(), nil
	}
}

// Credential returns the credential currently installed on the client.
func (s *Session) Credential() domain.Credential {
	return s.credential
}

func (s *Session) ensureCredential(ctx context.Context) error {
	if !s.credential.IsStale(s.clock.Now()) {
		return nil
	}

	credential, err := s.credentials.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refresh credential: %w", err)
	}
	s.credential = credential
	s.api.SetToken(credential.Token)

	return nil
}

func (s *Session) reportOutboundIP(ctx context.Context) {
	ip, err := s.api.OutboundIP(ctx)
	if err != nil {
		return
	}
	s.log.Info("proxy in use", zap.String("ip", ip))
}

func (s *Session) nextSleep() time.Duration {
	return s.settings.SleepTime.PickSeconds(s.rnd)
}

func (s *Session) pause(ctx context.Context, r domain.IntRange) error {
	return s.clock.Sleep(ctx, r.PickSeconds(s.rnd))
}

func orDefaultRand(rnd *rand.Rand) *rand.Rand {
	if rnd != nil {
		return rnd
	}

	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
	"github.com/ranchfarm/ranch-farmer/internal/version"
)

func newRunCmd(flags *globalFlags) *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play the ranch for every stored session until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(flags, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer func() { _ = app.log.Sync() }()

			if err := app.settings.RequireMessenger(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			accounts, err := app.accounts(ctx, only)
			if err != nil {
				return err
			}
			if len(accounts) == 0 {
				return fmt.Errorf("no sessions found in %s; create one with `ranch session create <name>`", app.settings.SessionsDir)
			}

			app.log.Info("starting", zap.String("version", version.Version), zap.Int("sessions", len(accounts)))

			return runAccounts(ctx, app, accounts)
		},
	}

	cmd.Flags().StringArrayVar(&only, "session", nil, "Only run this session (repeatable)")

	return cmd
}

var errNoSessionStarted = errors.New("no session could be started; see the log for each session")

// runAccounts drives every account concurrently. An account that fails
// to start or whose session is invalid stops alone; it is an error only
// when none of them started.
func runAccounts(ctx context.Context, app *app, accounts []domain.Account) error {
	var started atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	for _, account := range accounts {
		g.Go(func() error {
			log := app.log.With(zap.String("session", account.SessionName))

			session, err := app.newSession(gctx, account)
			if err != nil {
				log.Error("session not started", zap.Error(err))
				return nil
			}
			started.Add(1)

			err = session.Run(gctx)
			switch {
			case err == nil, errors.Is(err, context.Canceled):
				return nil
			case errors.Is(err, domain.ErrInvalidSession):
				log.Error("session stopped", zap.Error(err))
				return nil
			default:
				return fmt.Errorf("session %s: %w", account.SessionName, err)
			}
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if started.Load() == 0 {
		return errNoSessionStarted
	}

	app.log.Info("stopped")

	return nil
}

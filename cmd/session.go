package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	statusadapter "github.com/ranchfarm/ranch-farmer/internal/adapters/render/status"
	"github.com/ranchfarm/ranch-farmer/internal/adapters/telegram"
	"github.com/ranchfarm/ranch-farmer/internal/application"
	"github.com/ranchfarm/ranch-farmer/internal/domain"
	"github.com/ranchfarm/ranch-farmer/internal/logging"
)

func newSessionCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage Telegram sessions",
	}

	cmd.AddCommand(
		newSessionCreateCmd(flags),
		newSessionListCmd(flags),
	)

	return cmd
}

func newSessionCreateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Log a Telegram account in and store it as a new session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := wireApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := app.settings.RequireMessenger(); err != nil {
				return err
			}

			name := args[0]
			if _, err := app.sessions.Get(cmd.Context(), name); err == nil {
				return fmt.Errorf("session %q already exists", name)
			} else if !errors.Is(err, domain.ErrSessionNotFound) {
				return err
			}

			assigned, err := app.proxyAssignments([]string{name})
			if err != nil {
				return err
			}
			account := domain.Account{SessionName: name, Proxy: assigned[name]}

			messenger, err := app.messenger(account, logging.ForSession(app.log, name))
			if err != nil {
				return err
			}

			user, err := messenger.Login(cmd.Context(), telegram.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
			if err != nil {
				return err
			}

			if _, err := app.fingerprints.UserAgent(cmd.Context(), name); err != nil {
				return fmt.Errorf("assign user agent: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Session %s created for @%s (id %d)\n", name, user.Username, user.ID)
			return err
		},
	}
}

func newSessionListCmd(flags *globalFlags) *cobra.Command {
	var (
		check  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show stored sessions with their user agent, proxy and login state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			accounts, err := app.accounts(cmd.Context(), nil)
			if err != nil {
				return err
			}

			var checker application.AuthorizationChecker
			if check {
				if err := app.settings.RequireMessenger(); err != nil {
					return err
				}
				checker = app.checkAuthorization
			}

			var statuses []application.SessionStatus
			describe := func(ctx context.Context) error {
				statuses, err = application.DescribeSessions(ctx, accounts, app.fingerprints, checker)
				return err
			}
			if check && !asJSON {
				err = runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Checking sessions...", describe)
			} else {
				err = describe(cmd.Context())
			}
			if err != nil {
				return err
			}

			return writeSessionsOutput(cmd, app, statuses, asJSON)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Connect to Telegram and verify each session is still authorized")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print sessions as JSON")

	return cmd
}

func writeSessionsOutput(cmd *cobra.Command, app *app, statuses []application.SessionStatus, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	rendered, err := app.statusRenderer(statuses, statusadapter.RenderOptions{})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

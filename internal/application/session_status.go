package application

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
)

const maxConcurrentChecks = 4

type AuthState string

const (
	AuthUnchecked  AuthState = "unchecked"
	AuthAuthorized AuthState = "authorized"
	AuthInvalid    AuthState = "invalid"
	AuthCheckError AuthState = "error"
)

type SessionStatus struct {
	Account   domain.Account
	UserAgent string
	Auth      AuthState
	CheckErr  string
}

// AuthorizationChecker reports whether an account's messenger session is
// still logged in.
type AuthorizationChecker func(ctx context.Context, account domain.Account) (bool, error)

// DescribeSessions builds one status line per account. When check is nil
// authorization is not probed.
func DescribeSessions(ctx context.Context, accounts []domain.Account, fingerprints *FingerprintService, check AuthorizationChecker) ([]SessionStatus, error) {
	statuses := make([]SessionStatus, len(accounts))
	for i, account := range accounts {
		ua, err := fingerprints.Lookup(ctx, account.SessionName)
		if err != nil && !errors.Is(err, domain.ErrFingerprintNotFound) {
			return nil, fmt.Errorf("look up user agent for %q: %w", account.SessionName, err)
		}
		statuses[i] = SessionStatus{Account: account, UserAgent: ua, Auth: AuthUnchecked}
	}

	if check == nil {
		return statuses, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChecks)
	for i := range statuses {
		g.Go(func() error {
			authorized, err := check(gctx, statuses[i].Account)
			switch {
			case err != nil:
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				statuses[i].Auth = AuthCheckError
				statuses[i].CheckErr = err.Error()
			case authorized:
				statuses[i].Auth = AuthAuthorized
			default:
				statuses[i].Auth = AuthInvalid
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return statuses, nil
}

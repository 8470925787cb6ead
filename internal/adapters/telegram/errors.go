package telegram

import (
	"errors"
	"fmt"

	"github.com/gotd/td/tgerr"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
)

var invalidSessionTypes = []string{
	"AUTH_KEY_UNREGISTERED",
	"AUTH_KEY_INVALID",
	"AUTH_KEY_DUPLICATED",
	"SESSION_REVOKED",
	"SESSION_EXPIRED",
	"USER_DEACTIVATED",
	"USER_DEACTIVATED_BAN",
}

var errUnauthorized = errors.New("session is not authorized")

// mapError translates RPC errors into the domain's error vocabulary.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidSession) {
		return err
	}
	if wait, ok := tgerr.AsFloodWait(err); ok {
		return &domain.FloodWaitError{Wait: wait}
	}
	if tgerr.Is(err, invalidSessionTypes...) {
		return fmt.Errorf("%w: %w", domain.ErrInvalidSession, err)
	}

	return err
}

package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidSession marks a messenger session that is dead, banned or
	// unauthorized. It stops the account's loop for good.
	ErrInvalidSession = errors.New("invalid session")
	// ErrAuth is returned when the web-app handshake cannot produce a token.
	ErrAuth = errors.New("authentication failed")
	// ErrCallFailed wraps every failed game backend call.
	ErrCallFailed = errors.New("game call failed")

	ErrFingerprintNotFound = errors.New("fingerprint not found")
	ErrSessionNotFound     = errors.New("session not found")
)

// FloodWaitError is the messenger's rate-limit signal.
type FloodWaitError struct {
	Wait time.Duration
}

func (e *FloodWaitError) Error() string {
	return fmt.Sprintf("flood wait %s", e.Wait)
}

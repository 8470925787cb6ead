package ports

import (
	"context"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
)

type FingerprintRepository interface {
	List(ctx context.Context) ([]domain.Fingerprint, error)
	// Append adds a record for a session that has none yet and returns the
	// record the store holds afterwards, which is the existing one when
	// the session was already present.
	Append(ctx context.Context, fingerprint domain.Fingerprint) (domain.Fingerprint, error)
}

type UserAgentGenerator interface {
	Generate() string
}

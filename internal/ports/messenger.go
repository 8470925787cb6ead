package ports

import (
	"context"

	"github.com/ranchfarm/ranch-farmer/internal/domain"
)

// MessengerSession is a connected, authorized messenger client. It is only
// valid inside Messenger.WithSession.
type MessengerSession interface {
	ResolvePeer(ctx context.Context, username string) (domain.Peer, error)
	RequestAppWebView(ctx context.Context, req domain.WebViewRequest) (string, error)
	Self(ctx context.Context) (domain.MessengerUser, error)
}

// Messenger connects, runs fn and disconnects. It returns an error wrapping
// domain.ErrInvalidSession when the stored session is no longer authorized.
type Messenger interface {
	WithSession(ctx context.Context, fn func(ctx context.Context, session MessengerSession) error) error
}

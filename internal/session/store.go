// Package session keeps server-side admin sessions and threads the
// authenticated identity through request contexts.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/jwalitptl/hospital-admin/internal/model"
)

var ErrNotFound = errors.New("session not found")

// Store persists sessions by id. Implementations must be safe for concurrent use
// and must not retain the *model.Session passed to Save. A ttl <= 0 means the
// store's default lifetime.
type Store interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, s *model.Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

type identityKey struct{}

// WithIdentity returns a context carrying the authenticated admin username.
func WithIdentity(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, identityKey{}, username)
}

// IdentityFromContext reports the authenticated username, if any.
func IdentityFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(identityKey{}).(string)
	return username, ok && username != ""
}

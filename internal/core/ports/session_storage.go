package ports

import (
	"context"

	"github.com/gadgetstore/storefront/internal/core/domain"
)

// SessionStorage persists the session record between process restarts. It
// stands in for the device's local storage: a single record under a fixed key.
type SessionStorage interface {
	// Load returns the persisted session and true, or ok=false when nothing
	// is stored. A corrupt record is an error, not an empty result.
	Load(ctx context.Context) (s domain.Session, ok bool, err error)
	Save(ctx context.Context, s domain.Session) error
	// Clear removes the record. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

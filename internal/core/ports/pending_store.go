package ports

import (
	"context"
	"time"

	"github.com/personal-cabinet/account-api/internal/core/domain"
)

// PendingStore holds registrations between step 1 and step 2, keyed by the
// serialized intermediate token. Entries carry the token's own TTL so an
// entry never outlives the token that references it.
//
// Implementations: Redis (multi-instance deployments) and an in-process map
// (single instance, the default).
type PendingStore interface {
	Set(ctx context.Context, token string, reg domain.PendingRegistration, ttl time.Duration) error
	// Get returns the entry for token, or nil when absent or expired.
	Get(ctx context.Context, token string) (*domain.PendingRegistration, error)
	Delete(ctx context.Context, token string) error
}

package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/personal-cabinet/account-api/internal/core/domain"
)

const keyPrefix = "pendingreg:"

// PendingStore keeps mid-flight registrations in Redis so step 2 can land on
// any instance. Entries expire with the intermediate token's TTL; Redis does
// the eviction, no sweep is needed.
// Key format: pendingreg:<sha256(token)> — tokens are long and the hash keeps
// the raw credential material out of the keyspace.
type PendingStore struct {
	client *redis.Client
}

// NewPendingStore creates a PendingStore wrapping the given Redis client.
func NewPendingStore(client *redis.Client) *PendingStore {
	return &PendingStore{client: client}
}

func (s *PendingStore) Set(ctx context.Context, token string, reg domain.PendingRegistration, ttl time.Duration) error {
	b, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("pending set: encode: %w", err)
	}
	if err := s.client.Set(ctx, s.key(token), b, ttl).Err(); err != nil {
		return fmt.Errorf("pending set: %w", err)
	}
	return nil
}

func (s *PendingStore) Get(ctx context.Context, token string) (*domain.PendingRegistration, error) {
	b, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pending get: %w", err)
	}

	var reg domain.PendingRegistration
	if err := json.Unmarshal(b, &reg); err != nil {
		return nil, fmt.Errorf("pending get: decode: %w", err)
	}
	return &reg, nil
}

func (s *PendingStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("pending delete: %w", err)
	}
	return nil
}

func (s *PendingStore) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return keyPrefix + hex.EncodeToString(sum[:])
}

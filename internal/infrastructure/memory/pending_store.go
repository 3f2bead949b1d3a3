// Package memory provides the in-process pending-registration store, the
// default backend for single-instance deployments. Mid-flight registrations
// do not survive a restart and are invisible to other instances; use the
// Redis store when either matters.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/personal-cabinet/account-api/internal/core/domain"
)

const sweepInterval = time.Minute

type entry struct {
	reg       domain.PendingRegistration
	expiresAt time.Time
}

// PendingStore is a mutex-guarded map with per-entry deadlines. Expired
// entries are harmless — token verification rejects them first — but the
// janitor sweeps them anyway so abandoned registrations do not accumulate.
type PendingStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	onEvict func(n int) // optional, receives the count of swept entries
}

// NewPendingStore creates an empty store. onEvict may be nil; when set it is
// called after each sweep that removed at least one entry.
func NewPendingStore(onEvict func(n int)) *PendingStore {
	return &PendingStore{
		entries: make(map[string]entry),
		onEvict: onEvict,
	}
}

func (s *PendingStore) Set(_ context.Context, token string, reg domain.PendingRegistration, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = entry{reg: reg, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *PendingStore) Get(_ context.Context, token string) (*domain.PendingRegistration, error) {
	s.mu.RLock()
	e, ok := s.entries[token]
	s.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return nil, nil
	}
	reg := e.reg
	return &reg, nil
}

func (s *PendingStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}

// StartJanitor launches the background sweep. It stops when ctx is cancelled.
func (s *PendingStore) StartJanitor(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				s.sweep(now)
			}
		}
	}()
}

func (s *PendingStore) sweep(now time.Time) int {
	s.mu.Lock()
	var evicted int
	for token, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, token)
			evicted++
		}
	}
	s.mu.Unlock()

	if evicted > 0 && s.onEvict != nil {
		s.onEvict(evicted)
	}
	return evicted
}

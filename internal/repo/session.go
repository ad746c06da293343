// Package repo contains the storage layer for the CommutePro server.
// Wizard state lives only in process memory: nothing is written to disk, and
// a restart loses every session. No business logic lives here.
package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maypok86/otter/v2"

	"github.com/pkordes/commutepro/internal/domain"
)

// SessionRepo defines the storage operations for wizard sessions.
// The service layer depends on this interface, not the otter implementation,
// which allows the service to be unit-tested with a mock.
type SessionRepo interface {
	// Create stores an empty Setup under a freshly generated id.
	Create(ctx context.Context) (uuid.UUID, error)

	// Get returns the Setup stored under id and restarts its idle timer.
	// Returns domain.ErrNotFound if the id is unknown or has expired.
	Get(ctx context.Context, id uuid.UUID) (domain.Setup, error)

	// Save overwrites the Setup stored under id.
	// Returns domain.ErrNotFound if the id is unknown or has expired.
	Save(ctx context.Context, id uuid.UUID, setup domain.Setup) error
}

// SessionOptions bounds the in-memory store.
type SessionOptions struct {
	// MaxSessions caps how many sessions are kept; the least valuable are
	// evicted first once the cap is reached.
	MaxSessions int
	// TTL is how long a session survives after it was last read or written.
	TTL time.Duration
}

// otterSessionRepo is the in-memory implementation of SessionRepo.
type otterSessionRepo struct {
	cache *otter.Cache[uuid.UUID, domain.Setup]
}

// NewSessionRepo constructs a SessionRepo backed by an otter cache.
func NewSessionRepo(opts SessionOptions) (SessionRepo, error) {
	if opts.MaxSessions < 1 {
		return nil, fmt.Errorf("repo.NewSessionRepo: max sessions must be positive, got %d", opts.MaxSessions)
	}
	if opts.TTL <= 0 {
		return nil, fmt.Errorf("repo.NewSessionRepo: ttl must be positive, got %s", opts.TTL)
	}
	cache, err := otter.New(&otter.Options[uuid.UUID, domain.Setup]{
		MaximumSize:      opts.MaxSessions,
		ExpiryCalculator: otter.ExpiryAccessing[uuid.UUID, domain.Setup](opts.TTL),
	})
	if err != nil {
		return nil, fmt.Errorf("repo.NewSessionRepo: %w", err)
	}
	return &otterSessionRepo{cache: cache}, nil
}

// Create stores an empty Setup under a new random id.
func (r *otterSessionRepo) Create(_ context.Context) (uuid.UUID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, fmt.Errorf("repo.SessionRepo.Create: %w", err)
	}
	r.cache.Set(id, domain.Setup{})
	return id, nil
}

// Get returns a copy of the stored Setup so callers cannot alias the cache.
func (r *otterSessionRepo) Get(_ context.Context, id uuid.UUID) (domain.Setup, error) {
	setup, ok := r.cache.GetIfPresent(id)
	if !ok {
		return domain.Setup{}, fmt.Errorf("repo.SessionRepo.Get: %w", domain.ErrNotFound)
	}
	return setup.Clone(), nil
}

// Save replaces the Setup for an existing session and restarts its TTL.
func (r *otterSessionRepo) Save(_ context.Context, id uuid.UUID, setup domain.Setup) error {
	if _, ok := r.cache.GetIfPresent(id); !ok {
		return fmt.Errorf("repo.SessionRepo.Save: %w", domain.ErrNotFound)
	}
	r.cache.Set(id, setup.Clone())
	return nil
}

package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// EnrichmentTokenRepository tracks the most recent enrichment request per
// target. A worker holding a stale token discards its result instead of
// writing it, so rapid re-requests resolve last-requested-wins.
type EnrichmentTokenRepository struct {
	cache *cache.Cache
}

func NewEnrichmentTokenRepository() *EnrichmentTokenRepository {
	// Tokens outlive any sane enrichment call; expiry is a safety valve for
	// workers that died mid-flight.
	c := cache.New(30*time.Minute, 5*time.Minute)
	return &EnrichmentTokenRepository{
		cache: c,
	}
}

// Issue registers a fresh token for the key and returns it, superseding any
// in-flight request for the same key.
func (r *EnrichmentTokenRepository) Issue(key string) uuid.UUID {
	token := uuid.New()
	r.cache.Set(key, token, cache.DefaultExpiration)
	return token
}

// IsCurrent reports whether the token is still the latest issued for the key.
func (r *EnrichmentTokenRepository) IsCurrent(key string, token uuid.UUID) bool {
	x, found := r.cache.Get(key)
	if !found {
		return false
	}
	return x.(uuid.UUID) == token
}

// Clear drops the token once its request has been fully applied.
func (r *EnrichmentTokenRepository) Clear(key string, token uuid.UUID) {
	if r.IsCurrent(key, token) {
		r.cache.Delete(key)
	}
}

package memory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenLastRequestedWins(t *testing.T) {
	repo := NewEnrichmentTokenRepository()

	first := repo.Issue("prd:abc")
	assert.True(t, repo.IsCurrent("prd:abc", first))

	// A second request for the same target invalidates the first in-flight one.
	second := repo.Issue("prd:abc")
	assert.False(t, repo.IsCurrent("prd:abc", first))
	assert.True(t, repo.IsCurrent("prd:abc", second))
}

func TestTokenKeysAreIndependent(t *testing.T) {
	repo := NewEnrichmentTokenRepository()

	prd := repo.Issue("prd:abc")
	seg := repo.Issue("segment:abc")

	assert.True(t, repo.IsCurrent("prd:abc", prd))
	assert.True(t, repo.IsCurrent("segment:abc", seg))
}

func TestTokenClear(t *testing.T) {
	repo := NewEnrichmentTokenRepository()

	tok := repo.Issue("organisation:xyz")
	repo.Clear("organisation:xyz", tok)
	assert.False(t, repo.IsCurrent("organisation:xyz", tok))

	// Clearing with a superseded token must not drop the newer one.
	stale := repo.Issue("organisation:xyz")
	fresh := repo.Issue("organisation:xyz")
	repo.Clear("organisation:xyz", stale)
	assert.True(t, repo.IsCurrent("organisation:xyz", fresh))
}

func TestUnknownKeyIsNeverCurrent(t *testing.T) {
	repo := NewEnrichmentTokenRepository()
	assert.False(t, repo.IsCurrent("prd:missing", uuid.New()))
}

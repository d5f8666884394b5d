package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "verifying", PhaseVerifying.String())
	assert.Equal(t, "ready", PhaseReady.String())
	assert.Equal(t, "empty", PhaseEmpty.String())
	assert.Equal(t, "error", PhaseError.String())
	assert.Equal(t, "unknown", Phase(99).String())
}

func TestEmptyReason_String(t *testing.T) {
	assert.Equal(t, "no catalog data", EmptyNoCatalog.String())
	assert.Equal(t, "no results for query", EmptyNoMatches.String())
	assert.Equal(t, "no displayable covers for this page", EmptyNoAssets.String())
}

package fleetapp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMatchesPerCollection(t *testing.T) {
	ctx := context.Background()
	svc := NewSearchService(seedStore(t))

	// Case-insensitive serial match
	results, err := svc.Search(ctx, "ep2250u")
	require.NoError(t, err)
	require.Len(t, results.Projectors, 1)
	assert.Equal(t, "EP2250U240101", results.Projectors[0].SerialNumber)
	// Services and RMAs match on projector_serial too
	assert.Len(t, results.Services, 1)
	assert.Empty(t, results.RMAs)
	// Spare parts only match on part_number, part_name, brand
	assert.Empty(t, results.SpareParts)
}

func TestSearchByTechnician(t *testing.T) {
	ctx := context.Background()
	svc := NewSearchService(seedStore(t))

	results, err := svc.Search(ctx, "vikram")
	require.NoError(t, err)
	// Technician is a search field for services, not projectors
	assert.Empty(t, results.Projectors)
	assert.Len(t, results.Services, 1)
}

func TestSearchByPartName(t *testing.T) {
	ctx := context.Background()
	svc := NewSearchService(seedStore(t))

	results, err := svc.Search(ctx, "lamp")
	require.NoError(t, err)
	assert.Len(t, results.SpareParts, 1)
}

func TestSearchByRMAStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewSearchService(seedStore(t))

	results, err := svc.Search(ctx, "under review")
	require.NoError(t, err)
	require.Len(t, results.RMAs, 1)
	assert.Equal(t, "RMA-001", results.RMAs[0].ID)
}

func TestSearchNoMatchesReturnsEmptyArrays(t *testing.T) {
	ctx := context.Background()
	svc := NewSearchService(seedStore(t))

	results, err := svc.Search(ctx, "zzzzzz")
	require.NoError(t, err)
	assert.NotNil(t, results.Projectors)
	assert.NotNil(t, results.Services)
	assert.NotNil(t, results.RMAs)
	assert.NotNil(t, results.SpareParts)
	assert.Empty(t, results.Projectors)
	assert.Empty(t, results.Services)
	assert.Empty(t, results.RMAs)
	assert.Empty(t, results.SpareParts)
}

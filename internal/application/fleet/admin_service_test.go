package fleetapp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/infrastructure/kvstore"
)

var testNow = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

func newTestAdmin(store kvstore.Store) *AdminService {
	analytics := NewAnalyticsService(store)
	analytics.now = func() time.Time { return testNow }
	admin := NewAdminService(store, analytics)
	admin.now = func() time.Time { return testNow }
	return admin
}

func TestSeedSchema(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	admin := newTestAdmin(store)

	result, err := admin.SeedSchema(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.ProjectorsCreated)
	assert.Equal(t, 3, result.ServicesCreated)
	assert.Equal(t, 2, result.RMAsCreated)
	assert.Equal(t, 3, result.SparePartsCreated)

	// Records landed under their keys
	raw, err := store.Get(ctx, fleet.ProjectorKey("EP2250U240101"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Epson EB-2250U")

	// Indexes point at the seeded records
	ids, err := store.GetList(ctx, fleet.ProjectorServicesKey("EP2250U240101"))
	require.NoError(t, err)
	assert.Equal(t, []string{"SRV-001"}, ids)

	ids, err = store.GetList(ctx, fleet.ProjectorRMAsKey("PTR120240202"))
	require.NoError(t, err)
	assert.Equal(t, []string{"RMA-001"}, ids)

	// The analytics snapshot was refreshed
	_, err = store.Get(ctx, fleet.AnalyticsKey)
	assert.NoError(t, err)
}

func TestSeedSchemaIdempotent(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	admin := newTestAdmin(store)

	_, err := admin.SeedSchema(ctx)
	require.NoError(t, err)
	_, err = admin.SeedSchema(ctx)
	require.NoError(t, err)

	// Re-running must not duplicate index entries
	ids, err := store.GetList(ctx, fleet.ProjectorServicesKey("EP2250U240101"))
	require.NoError(t, err)
	assert.Equal(t, []string{"SRV-001"}, ids)

	projectors, err := scanAll[fleet.Projector](ctx, store, fleet.ProjectorPrefix)
	require.NoError(t, err)
	assert.Len(t, projectors, 3)
}

func TestReindex(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	admin := newTestAdmin(store)

	_, err := admin.SeedSchema(ctx)
	require.NoError(t, err)

	// Corrupt the indexes: a dangling id, a duplicate, and a stale key for
	// a projector with no records.
	require.NoError(t, store.AppendList(ctx, fleet.ProjectorServicesKey("EP2250U240101"), "SRV-GONE", "SRV-001"))
	require.NoError(t, store.AppendList(ctx, fleet.ProjectorServicesKey("GHOST"), "SRV-404"))

	result, err := admin.Reindex(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.ServicesIndexed)
	assert.Equal(t, 2, result.RMAsIndexed)

	ids, err := store.GetList(ctx, fleet.ProjectorServicesKey("EP2250U240101"))
	require.NoError(t, err)
	assert.Equal(t, []string{"SRV-001"}, ids)

	// The stale key is gone
	ids, err = store.GetList(ctx, fleet.ProjectorServicesKey("GHOST"))
	require.NoError(t, err)
	assert.Empty(t, ids)
}

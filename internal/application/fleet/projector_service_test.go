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

// seedStore writes the fixture dataset and returns the store
func seedStore(t *testing.T) *kvstore.MemoryStore {
	t.Helper()
	store := kvstore.NewMemoryStore()
	_, err := newTestAdmin(store).SeedSchema(context.Background())
	require.NoError(t, err)
	return store
}

func TestProjectorList(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectorService(seedStore(t))

	projectors, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, projectors, 3)
}

func TestProjectorGetDetail(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	svc := NewProjectorService(store)

	detail, err := svc.GetDetail(ctx, "EP2250U240101")
	require.NoError(t, err)

	assert.Equal(t, "Epson EB-2250U", detail.Model)
	require.Len(t, detail.ServiceHistory, 1)
	assert.Equal(t, "SRV-001", detail.ServiceHistory[0].ID)
	assert.Empty(t, detail.RMAHistory)
	// The only compatible part in the fixtures is the Epson lamp
	require.Len(t, detail.SpareParts, 1)
	assert.Equal(t, "ELPLP96", detail.SpareParts[0].PartNumber)
}

func TestProjectorGetDetailSortsHistoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)

	maintenance := NewMaintenanceService(store)
	maintenance.now = func() time.Time { return testNow }
	_, err := maintenance.Create(ctx, CreateServiceRequest{
		ProjectorSerial: "EP2250U240101",
		Date:            "2024-03-01",
		Type:            "Filter Cleaning",
	})
	require.NoError(t, err)

	detail, err := NewProjectorService(store).GetDetail(ctx, "EP2250U240101")
	require.NoError(t, err)
	require.Len(t, detail.ServiceHistory, 2)
	assert.Equal(t, "2024-03-01", detail.ServiceHistory[0].Date)
	assert.Equal(t, "2024-01-15", detail.ServiceHistory[1].Date)
}

func TestProjectorGetDetailSkipsDanglingIndexIDs(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	require.NoError(t, store.AppendList(ctx, fleet.ProjectorServicesKey("EP2250U240101"), "SRV-GONE"))

	detail, err := NewProjectorService(store).GetDetail(ctx, "EP2250U240101")
	require.NoError(t, err)
	assert.Len(t, detail.ServiceHistory, 1)
}

func TestProjectorGetDetailNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectorService(seedStore(t))

	_, err := svc.GetDetail(ctx, "NOPE")
	assert.ErrorIs(t, err, fleet.ErrProjectorNotFound)
}

func TestProjectorUpdate(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	svc := NewProjectorService(store)
	svc.now = func() time.Time { return testNow }

	status := fleet.ProjectorStatusInactive
	hours := 2500
	updated, err := svc.Update(ctx, "EP2250U240101", ProjectorPatch{
		Status:    &status,
		HoursUsed: &hours,
	})
	require.NoError(t, err)
	assert.Equal(t, fleet.ProjectorStatusInactive, updated.Status)
	assert.Equal(t, 2500, updated.HoursUsed)
	// Untouched fields survive the patch
	assert.Equal(t, "Epson EB-2250U", updated.Model)
	assert.Equal(t, "2024-02-01T10:00:00Z", updated.UpdatedAt)

	// The change was persisted
	stored, err := getRecord[fleet.Projector](ctx, store, fleet.ProjectorKey("EP2250U240101"), fleet.ErrProjectorNotFound)
	require.NoError(t, err)
	assert.Equal(t, fleet.ProjectorStatusInactive, stored.Status)
}

func TestProjectorUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectorService(seedStore(t))

	_, err := svc.Update(ctx, "NOPE", ProjectorPatch{})
	assert.ErrorIs(t, err, fleet.ErrProjectorNotFound)
}

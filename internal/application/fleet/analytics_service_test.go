package fleetapp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetcare/backend/internal/domain/fleet"
)

func TestAnalyticsOverview(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	svc := NewAnalyticsService(store)
	svc.now = func() time.Time { return testNow }

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, overview.TotalProjectors)
	assert.Equal(t, 2, overview.ActiveProjectors)
	assert.Equal(t, 1, overview.UnderService)
	assert.Equal(t, 3, overview.TotalServices)
	assert.Equal(t, 2, overview.TotalRMAs)
	assert.Equal(t, 3, overview.TotalSpareParts)
	// SP-002 (2<=3) and SP-003 (1<=2) are at or below threshold
	assert.Equal(t, 2, overview.LowStockParts)
	assert.Equal(t, 1, overview.CriticalStockParts)
	assert.Equal(t, 8500.0+45000.0+3000.0, overview.MonthlyRevenue)
	assert.Equal(t, 1, overview.PendingServices)
	assert.Equal(t, "2024-02-01T10:00:00Z", overview.LastUpdated)

	// The snapshot was overwritten in the store
	stored, err := getRecord[fleet.AnalyticsOverview](ctx, store, fleet.AnalyticsKey, fleet.ErrInvalidInput)
	require.NoError(t, err)
	assert.Equal(t, overview.TotalProjectors, stored.TotalProjectors)
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	svc := NewAnalyticsService(seedStore(t))
	svc.now = func() time.Time { return testNow }

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalProjectors)
	assert.Equal(t, 2, stats.CompletedServices)
	assert.Equal(t, 1, stats.PendingServices)
	assert.Equal(t, 1, stats.PendingRMAs)
	assert.Equal(t, 1, stats.ApprovedRMAs)
	assert.Equal(t, 56500.0, stats.MonthlyRevenue)
	// Seed warranties end in 2025, far outside the 30-day window
	assert.Equal(t, 0, stats.WarrantyAlerts)
}

func TestWarrantyAlertsWindow(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	svc := NewAnalyticsService(store)
	now := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// VPL120240303 expires 2025-05-09 (already past), EP2250U240101 expires
	// 2025-06-14 (25 days out), PTR120240202 expires 2025-08-21 (too far).
	alerts, err := svc.WarrantyAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "EP2250U240101", alerts[0].SerialNumber)
}

func TestWarrantyAlertsBoundary(t *testing.T) {
	ctx := context.Background()
	store := seedStore(t)
	projectors := NewProjectorService(store)
	projectors.now = func() time.Time { return testNow }

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	cases := map[string]string{
		"EP2250U240101": "2024-07-01", // exactly 30 days: in
		"PTR120240202":  "2024-07-02", // 31 days: out
		"VPL120240303":  "2024-05-01", // expired: out
	}
	for serial, end := range cases {
		e := end
		_, err := projectors.Update(ctx, serial, ProjectorPatch{WarrantyEnd: &e})
		require.NoError(t, err)
	}

	svc := NewAnalyticsService(store)
	svc.now = func() time.Time { return now }
	alerts, err := svc.WarrantyAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "EP2250U240101", alerts[0].SerialNumber)

	stats, err := svc.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.WarrantyAlerts)
}

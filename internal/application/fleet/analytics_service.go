package fleetapp

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/infrastructure/kvstore"
)

// AnalyticsService computes fleet-wide aggregates. Every read recomputes
// from full collection scans; the stored snapshot under AnalyticsKey is only
// a last-known cache, never the source of truth.
type AnalyticsService struct {
	store kvstore.Store
	now   func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(store kvstore.Store) *AnalyticsService {
	return &AnalyticsService{store: store, now: time.Now}
}

type collections struct {
	projectors []fleet.Projector
	services   []fleet.ServiceRecord
	rmas       []fleet.RMA
	parts      []fleet.SparePart
}

func (s *AnalyticsService) scanCollections(ctx context.Context) (*collections, error) {
	projectors, err := scanAll[fleet.Projector](ctx, s.store, fleet.ProjectorPrefix)
	if err != nil {
		return nil, err
	}
	services, err := scanAll[fleet.ServiceRecord](ctx, s.store, fleet.ServicePrefix)
	if err != nil {
		return nil, err
	}
	rmas, err := scanAll[fleet.RMA](ctx, s.store, fleet.RMAPrefix)
	if err != nil {
		return nil, err
	}
	parts, err := scanAll[fleet.SparePart](ctx, s.store, fleet.SparePartPrefix)
	if err != nil {
		return nil, err
	}
	return &collections{projectors: projectors, services: services, rmas: rmas, parts: parts}, nil
}

// Overview recomputes the analytics snapshot, overwrites the stored copy and
// returns the fresh object
func (s *AnalyticsService) Overview(ctx context.Context) (*fleet.AnalyticsOverview, error) {
	cols, err := s.scanCollections(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()

	overview := fleet.AnalyticsOverview{
		TotalProjectors:    len(cols.projectors),
		ActiveProjectors:   countProjectorsByStatus(cols.projectors, fleet.ProjectorStatusActive),
		UnderService:       countProjectorsByStatus(cols.projectors, fleet.ProjectorStatusUnderService),
		TotalServices:      len(cols.services),
		TotalRMAs:          len(cols.rmas),
		TotalSpareParts:    len(cols.parts),
		LowStockParts:      countLowStock(cols.parts),
		CriticalStockParts: countPartsByStatus(cols.parts, fleet.PartStatusCriticalStock),
		MonthlyRevenue:     sumServiceCosts(cols.services),
		PendingServices:    countServicesByStatus(cols.services, fleet.ServiceStatusInProgress),
		WarrantyAlerts:     len(s.warrantyAlerts(cols.projectors, now)),
		LastUpdated:        nowRFC3339(now),
	}

	if err := putRecord(ctx, s.store, fleet.AnalyticsKey, overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// DashboardStats recomputes the dashboard aggregate from full scans
func (s *AnalyticsService) DashboardStats(ctx context.Context) (*fleet.DashboardStats, error) {
	cols, err := s.scanCollections(ctx)
	if err != nil {
		return nil, err
	}

	stats := fleet.DashboardStats{
		TotalProjectors:    len(cols.projectors),
		ActiveProjectors:   countProjectorsByStatus(cols.projectors, fleet.ProjectorStatusActive),
		UnderService:       countProjectorsByStatus(cols.projectors, fleet.ProjectorStatusUnderService),
		TotalServices:      len(cols.services),
		CompletedServices:  countServicesByStatus(cols.services, fleet.ServiceStatusCompleted),
		PendingServices:    countServicesByStatus(cols.services, fleet.ServiceStatusInProgress),
		TotalRMAs:          len(cols.rmas),
		PendingRMAs:        countRMAsByStatus(cols.rmas, fleet.RMAStatusUnderReview),
		ApprovedRMAs:       countRMAsByStatus(cols.rmas, fleet.RMAStatusReplacementApproved),
		TotalSpareParts:    len(cols.parts),
		LowStockParts:      countLowStock(cols.parts),
		CriticalStockParts: countPartsByStatus(cols.parts, fleet.PartStatusCriticalStock),
		MonthlyRevenue:     sumServiceCosts(cols.services),
		WarrantyAlerts:     len(s.warrantyAlerts(cols.projectors, s.now())),
	}
	return &stats, nil
}

// WarrantyAlerts returns the projectors whose warranty ends within the alert
// window. This is the only place the window policy is evaluated; clients
// consume the result instead of recomputing it.
func (s *AnalyticsService) WarrantyAlerts(ctx context.Context) ([]fleet.Projector, error) {
	projectors, err := scanAll[fleet.Projector](ctx, s.store, fleet.ProjectorPrefix)
	if err != nil {
		return nil, err
	}
	return s.warrantyAlerts(projectors, s.now()), nil
}

func (s *AnalyticsService) warrantyAlerts(projectors []fleet.Projector, now time.Time) []fleet.Projector {
	return lo.Filter(projectors, func(p fleet.Projector, _ int) bool {
		return fleet.WarrantyExpiringSoon(&p, now)
	})
}

func countProjectorsByStatus(projectors []fleet.Projector, status string) int {
	return lo.CountBy(projectors, func(p fleet.Projector) bool { return p.Status == status })
}

func countServicesByStatus(services []fleet.ServiceRecord, status string) int {
	return lo.CountBy(services, func(r fleet.ServiceRecord) bool { return r.Status == status })
}

func countRMAsByStatus(rmas []fleet.RMA, status string) int {
	return lo.CountBy(rmas, func(r fleet.RMA) bool { return r.Status == status })
}

func countPartsByStatus(parts []fleet.SparePart, status string) int {
	return lo.CountBy(parts, func(p fleet.SparePart) bool { return p.Status == status })
}

func countLowStock(parts []fleet.SparePart) int {
	return lo.CountBy(parts, func(p fleet.SparePart) bool { return p.IsLowStock() })
}

// sumServiceCosts totals service costs with decimal arithmetic so repeated
// float addition cannot drift the reported revenue
func sumServiceCosts(services []fleet.ServiceRecord) float64 {
	total := decimal.Zero
	for _, svc := range services {
		total = total.Add(decimal.NewFromFloat(svc.Cost))
	}
	f, _ := total.Float64()
	return f
}

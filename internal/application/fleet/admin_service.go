package fleetapp

import (
	"context"
	"sort"
	"time"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/infrastructure/kvstore"
)

// AdminService owns the schema seed and the index rebuild
type AdminService struct {
	store     kvstore.Store
	analytics *AnalyticsService
	now       func() time.Time
}

// NewAdminService creates a new AdminService
func NewAdminService(store kvstore.Store, analytics *AnalyticsService) *AdminService {
	return &AdminService{store: store, analytics: analytics, now: time.Now}
}

// SeedSchema writes the fixture dataset and refreshes the analytics
// snapshot. Indexes are written with SetList, so re-running the seed
// overwrites rather than appends and the operation stays idempotent.
func (s *AdminService) SeedSchema(ctx context.Context) (*SeedResult, error) {
	data := fleet.Seed(s.now())

	for _, p := range data.Projectors {
		if err := putRecord(ctx, s.store, fleet.ProjectorKey(p.SerialNumber), p); err != nil {
			return nil, err
		}
	}

	serviceIdx := map[string][]string{}
	for _, svc := range data.Services {
		if err := putRecord(ctx, s.store, fleet.ServiceKey(svc.ID), svc); err != nil {
			return nil, err
		}
		serviceIdx[svc.ProjectorSerial] = append(serviceIdx[svc.ProjectorSerial], svc.ID)
	}

	rmaIdx := map[string][]string{}
	for _, rma := range data.RMAs {
		if err := putRecord(ctx, s.store, fleet.RMAKey(rma.ID), rma); err != nil {
			return nil, err
		}
		rmaIdx[rma.ProjectorSerial] = append(rmaIdx[rma.ProjectorSerial], rma.ID)
	}

	for _, part := range data.SpareParts {
		if err := putRecord(ctx, s.store, fleet.SparePartKey(part.ID), part); err != nil {
			return nil, err
		}
	}

	if err := writeIndexes(ctx, s.store, fleet.ProjectorServicesPrefix, serviceIdx); err != nil {
		return nil, err
	}
	if err := writeIndexes(ctx, s.store, fleet.ProjectorRMAsPrefix, rmaIdx); err != nil {
		return nil, err
	}

	if _, err := s.analytics.Overview(ctx); err != nil {
		return nil, err
	}

	return &SeedResult{
		Message:           "Schema initialized successfully",
		ProjectorsCreated: len(data.Projectors),
		ServicesCreated:   len(data.Services),
		RMAsCreated:       len(data.RMAs),
		SparePartsCreated: len(data.SpareParts),
	}, nil
}

// Reindex rebuilds both reverse indexes from full record scans. After it
// returns, each projector's index lists exactly the ids of the records that
// reference it, so dangling ids left by interrupted creates are gone.
func (s *AdminService) Reindex(ctx context.Context) (*ReindexResult, error) {
	services, err := scanAll[fleet.ServiceRecord](ctx, s.store, fleet.ServicePrefix)
	if err != nil {
		return nil, err
	}
	rmas, err := scanAll[fleet.RMA](ctx, s.store, fleet.RMAPrefix)
	if err != nil {
		return nil, err
	}

	serviceIdx := map[string][]string{}
	for _, svc := range services {
		serviceIdx[svc.ProjectorSerial] = append(serviceIdx[svc.ProjectorSerial], svc.ID)
	}
	rmaIdx := map[string][]string{}
	for _, rma := range rmas {
		rmaIdx[rma.ProjectorSerial] = append(rmaIdx[rma.ProjectorSerial], rma.ID)
	}

	// Stale index keys for projectors with no remaining records must go too,
	// so the old index entries are cleared before the rebuilt ones land.
	if err := clearIndexes(ctx, s.store, fleet.ProjectorServicesPrefix, serviceIdx); err != nil {
		return nil, err
	}
	if err := clearIndexes(ctx, s.store, fleet.ProjectorRMAsPrefix, rmaIdx); err != nil {
		return nil, err
	}

	if err := writeIndexes(ctx, s.store, fleet.ProjectorServicesPrefix, serviceIdx); err != nil {
		return nil, err
	}
	if err := writeIndexes(ctx, s.store, fleet.ProjectorRMAsPrefix, rmaIdx); err != nil {
		return nil, err
	}

	return &ReindexResult{
		Message:         "Indexes rebuilt successfully",
		IndexesRebuilt:  len(serviceIdx) + len(rmaIdx),
		ServicesIndexed: len(services),
		RMAsIndexed:     len(rmas),
	}, nil
}

// writeIndexes overwrites one index list per projector serial, ids sorted
// for a deterministic result
func writeIndexes(ctx context.Context, store kvstore.Store, prefix string, idx map[string][]string) error {
	for serial, ids := range idx {
		sort.Strings(ids)
		if err := store.SetList(ctx, prefix+serial, ids); err != nil {
			return err
		}
	}
	return nil
}

// clearIndexes deletes existing index keys under prefix that the rebuilt
// index no longer covers
func clearIndexes(ctx context.Context, store kvstore.Store, prefix string, keep map[string][]string) error {
	existing, err := store.Keys(ctx, prefix)
	if err != nil {
		return err
	}
	for _, key := range existing {
		serial := key[len(prefix):]
		if _, ok := keep[serial]; ok {
			continue
		}
		if err := store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

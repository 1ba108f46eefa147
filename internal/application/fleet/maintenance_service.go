package fleetapp

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/infrastructure/kvstore"
)

// MaintenanceService exposes service-record operations
type MaintenanceService struct {
	store kvstore.Store
	now   func() time.Time
}

// NewMaintenanceService creates a new MaintenanceService
func NewMaintenanceService(store kvstore.Store) *MaintenanceService {
	return &MaintenanceService{store: store, now: time.Now}
}

// List returns every service record
func (s *MaintenanceService) List(ctx context.Context) ([]fleet.ServiceRecord, error) {
	return scanAll[fleet.ServiceRecord](ctx, s.store, fleet.ServicePrefix)
}

// Create stores a new service record, appends its id to the projector's
// service index atomically, and bumps the parent projector's last_service
// and total_services. A missing parent projector is tolerated: the record
// is kept and only the projector update is skipped. The record write and
// the index append are separate store operations, so a crash in between can
// still leave the index behind the record; the reindex operation repairs
// that.
func (s *MaintenanceService) Create(ctx context.Context, req CreateServiceRequest) (*fleet.ServiceRecord, error) {
	now := s.now()

	record := fleet.ServiceRecord{
		ID:              fmt.Sprintf("SRV-%d", now.UnixMilli()),
		ProjectorSerial: req.ProjectorSerial,
		Date:            req.Date,
		Type:            req.Type,
		Technician:      req.Technician,
		Status:          req.Status,
		Notes:           req.Notes,
		SpareParts:      req.SpareParts,
		Cost:            req.Cost,
		Hours:           req.Hours,
		CreatedAt:       nowRFC3339(now),
	}
	if record.Status == "" {
		record.Status = fleet.ServiceStatusScheduled
	}
	if record.SpareParts == nil {
		record.SpareParts = []string{}
	}

	if err := putRecord(ctx, s.store, fleet.ServiceKey(record.ID), record); err != nil {
		return nil, err
	}
	if err := s.store.AppendList(ctx, fleet.ProjectorServicesKey(req.ProjectorSerial), record.ID); err != nil {
		return nil, err
	}

	if err := s.touchProjector(ctx, req.ProjectorSerial, record.Date, now); err != nil {
		return nil, err
	}

	return &record, nil
}

// Update applies a typed patch to an existing service record
func (s *MaintenanceService) Update(ctx context.Context, id string, patch ServicePatch) (*fleet.ServiceRecord, error) {
	record, err := getRecord[fleet.ServiceRecord](ctx, s.store, fleet.ServiceKey(id), fleet.ErrServiceNotFound)
	if err != nil {
		return nil, err
	}

	if patch.Date != nil {
		record.Date = *patch.Date
	}
	if patch.Type != nil {
		record.Type = *patch.Type
	}
	if patch.Technician != nil {
		record.Technician = *patch.Technician
	}
	if patch.Status != nil {
		record.Status = *patch.Status
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}
	if patch.SpareParts != nil {
		record.SpareParts = *patch.SpareParts
	}
	if patch.Cost != nil {
		record.Cost = *patch.Cost
	}
	if patch.Hours != nil {
		record.Hours = *patch.Hours
	}
	record.UpdatedAt = nowRFC3339(s.now())

	if err := putRecord(ctx, s.store, fleet.ServiceKey(id), record); err != nil {
		return nil, err
	}
	return &record, nil
}

// touchProjector records the service side effects on the parent projector
func (s *MaintenanceService) touchProjector(ctx context.Context, serial, serviceDate string, now time.Time) error {
	projector, err := getRecord[fleet.Projector](ctx, s.store, fleet.ProjectorKey(serial), fleet.ErrProjectorNotFound)
	if err == fleet.ErrProjectorNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	projector.LastService = serviceDate
	projector.TotalServices++
	projector.UpdatedAt = nowRFC3339(now)

	return putRecord(ctx, s.store, fleet.ProjectorKey(serial), projector)
}

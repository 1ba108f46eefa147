package fleetapp

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/infrastructure/kvstore"
)

// RMAService exposes RMA-record operations
type RMAService struct {
	store kvstore.Store
	now   func() time.Time
}

// NewRMAService creates a new RMAService
func NewRMAService(store kvstore.Store) *RMAService {
	return &RMAService{store: store, now: time.Now}
}

// List returns every RMA record
func (s *RMAService) List(ctx context.Context) ([]fleet.RMA, error) {
	return scanAll[fleet.RMA](ctx, s.store, fleet.RMAPrefix)
}

// Create stores a new RMA record and appends its id to the projector's RMA
// index atomically. The rma_number is a human-readable tag, not a unique
// key; the record id is the identity.
func (s *RMAService) Create(ctx context.Context, req CreateRMARequest) (*fleet.RMA, error) {
	now := s.now()
	millis := now.UnixMilli()

	record := fleet.RMA{
		ID:                fmt.Sprintf("RMA-%d", millis),
		RMANumber:         rmaNumber(now),
		ProjectorSerial:   req.ProjectorSerial,
		PartNumber:        req.PartNumber,
		PartName:          req.PartName,
		IssueDate:         req.IssueDate,
		Status:            req.Status,
		Reason:            req.Reason,
		EstimatedCost:     req.EstimatedCost,
		WarrantyStatus:    req.WarrantyStatus,
		Technician:        req.Technician,
		PhysicalCondition: req.PhysicalCondition,
		LogicalCondition:  req.LogicalCondition,
		CreatedAt:         nowRFC3339(now),
	}
	if record.Status == "" {
		record.Status = fleet.RMAStatusUnderReview
	}

	if err := putRecord(ctx, s.store, fleet.RMAKey(record.ID), record); err != nil {
		return nil, err
	}
	if err := s.store.AppendList(ctx, fleet.ProjectorRMAsKey(req.ProjectorSerial), record.ID); err != nil {
		return nil, err
	}

	return &record, nil
}

// Update applies a typed patch to an existing RMA record
func (s *RMAService) Update(ctx context.Context, id string, patch RMAPatch) (*fleet.RMA, error) {
	record, err := getRecord[fleet.RMA](ctx, s.store, fleet.RMAKey(id), fleet.ErrRMANotFound)
	if err != nil {
		return nil, err
	}

	if patch.PartNumber != nil {
		record.PartNumber = *patch.PartNumber
	}
	if patch.PartName != nil {
		record.PartName = *patch.PartName
	}
	if patch.IssueDate != nil {
		record.IssueDate = *patch.IssueDate
	}
	if patch.Status != nil {
		record.Status = *patch.Status
	}
	if patch.Reason != nil {
		record.Reason = *patch.Reason
	}
	if patch.EstimatedCost != nil {
		record.EstimatedCost = *patch.EstimatedCost
	}
	if patch.WarrantyStatus != nil {
		record.WarrantyStatus = *patch.WarrantyStatus
	}
	if patch.Technician != nil {
		record.Technician = *patch.Technician
	}
	if patch.PhysicalCondition != nil {
		record.PhysicalCondition = *patch.PhysicalCondition
	}
	if patch.LogicalCondition != nil {
		record.LogicalCondition = *patch.LogicalCondition
	}
	record.UpdatedAt = nowRFC3339(s.now())

	if err := putRecord(ctx, s.store, fleet.RMAKey(id), record); err != nil {
		return nil, err
	}
	return &record, nil
}

// rmaNumber builds the human-readable RMA tag: the current year plus the
// last three digits of the epoch-millisecond clock
func rmaNumber(now time.Time) string {
	millis := fmt.Sprintf("%d", now.UnixMilli())
	return fmt.Sprintf("RMA-%d-%s", now.Year(), millis[len(millis)-3:])
}

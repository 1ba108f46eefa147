package fleetapp

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/infrastructure/kvstore"
)

// SparePartService exposes spare-part inventory operations
type SparePartService struct {
	store kvstore.Store
	now   func() time.Time
}

// NewSparePartService creates a new SparePartService
func NewSparePartService(store kvstore.Store) *SparePartService {
	return &SparePartService{store: store, now: time.Now}
}

// List returns every spare part
func (s *SparePartService) List(ctx context.Context) ([]fleet.SparePart, error) {
	return scanAll[fleet.SparePart](ctx, s.store, fleet.SparePartPrefix)
}

// LowStock returns parts at or below their reorder threshold
func (s *SparePartService) LowStock(ctx context.Context) ([]fleet.SparePart, error) {
	parts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(parts, func(p fleet.SparePart, _ int) bool {
		return p.IsLowStock()
	}), nil
}

// Create stores a new spare part. Status defaults to In Stock when absent;
// it is a workflow field and is never derived from the quantities.
func (s *SparePartService) Create(ctx context.Context, req CreateSparePartRequest) (*fleet.SparePart, error) {
	now := s.now()

	part := fleet.SparePart{
		ID:               fmt.Sprintf("SP-%d", now.UnixMilli()),
		PartNumber:       req.PartNumber,
		PartName:         req.PartName,
		Category:         req.Category,
		Brand:            req.Brand,
		CompatibleModels: req.CompatibleModels,
		StockQuantity:    req.StockQuantity,
		MinStock:         req.MinStock,
		UnitCost:         req.UnitCost,
		Supplier:         req.Supplier,
		LastRestocked:    req.LastRestocked,
		Location:         req.Location,
		Status:           req.Status,
		CreatedAt:        nowRFC3339(now),
	}
	if part.Status == "" {
		part.Status = fleet.PartStatusInStock
	}
	if part.CompatibleModels == nil {
		part.CompatibleModels = []string{}
	}

	if err := putRecord(ctx, s.store, fleet.SparePartKey(part.ID), part); err != nil {
		return nil, err
	}
	return &part, nil
}

// Update applies a typed patch to an existing spare part
func (s *SparePartService) Update(ctx context.Context, id string, patch SparePartPatch) (*fleet.SparePart, error) {
	part, err := getRecord[fleet.SparePart](ctx, s.store, fleet.SparePartKey(id), fleet.ErrSparePartNotFound)
	if err != nil {
		return nil, err
	}

	if patch.PartNumber != nil {
		part.PartNumber = *patch.PartNumber
	}
	if patch.PartName != nil {
		part.PartName = *patch.PartName
	}
	if patch.Category != nil {
		part.Category = *patch.Category
	}
	if patch.Brand != nil {
		part.Brand = *patch.Brand
	}
	if patch.CompatibleModels != nil {
		part.CompatibleModels = *patch.CompatibleModels
	}
	if patch.StockQuantity != nil {
		part.StockQuantity = *patch.StockQuantity
	}
	if patch.MinStock != nil {
		part.MinStock = *patch.MinStock
	}
	if patch.UnitCost != nil {
		part.UnitCost = *patch.UnitCost
	}
	if patch.Supplier != nil {
		part.Supplier = *patch.Supplier
	}
	if patch.LastRestocked != nil {
		part.LastRestocked = *patch.LastRestocked
	}
	if patch.Location != nil {
		part.Location = *patch.Location
	}
	if patch.Status != nil {
		part.Status = *patch.Status
	}
	part.UpdatedAt = nowRFC3339(s.now())

	if err := putRecord(ctx, s.store, fleet.SparePartKey(id), part); err != nil {
		return nil, err
	}
	return &part, nil
}

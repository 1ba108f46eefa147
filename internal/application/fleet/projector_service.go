package fleetapp

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/infrastructure/kvstore"
)

// ProjectorService exposes projector operations over the key-value store
type ProjectorService struct {
	store kvstore.Store
	now   func() time.Time
}

// NewProjectorService creates a new ProjectorService
func NewProjectorService(store kvstore.Store) *ProjectorService {
	return &ProjectorService{store: store, now: time.Now}
}

// List returns every projector record
func (s *ProjectorService) List(ctx context.Context) ([]fleet.Projector, error) {
	return scanAll[fleet.Projector](ctx, s.store, fleet.ProjectorPrefix)
}

// GetDetail returns a projector joined with its service history (newest
// first), RMA history (newest first by issue date) and compatible spare
// parts. Index ids whose backing record is gone are skipped silently.
func (s *ProjectorService) GetDetail(ctx context.Context, serial string) (*fleet.ProjectorDetail, error) {
	projector, err := getRecord[fleet.Projector](ctx, s.store, fleet.ProjectorKey(serial), fleet.ErrProjectorNotFound)
	if err != nil {
		return nil, err
	}

	services, err := s.resolveServices(ctx, serial)
	if err != nil {
		return nil, err
	}
	sortByDateDesc(services, func(r fleet.ServiceRecord) string { return r.Date })

	rmas, err := s.resolveRMAs(ctx, serial)
	if err != nil {
		return nil, err
	}
	sortByDateDesc(rmas, func(r fleet.RMA) string { return r.IssueDate })

	// Compatible parts come from a full spare-parts scan; there is no
	// model index.
	allParts, err := scanAll[fleet.SparePart](ctx, s.store, fleet.SparePartPrefix)
	if err != nil {
		return nil, err
	}
	compatible := lo.Filter(allParts, func(part fleet.SparePart, _ int) bool {
		return projector.CompatibleWith(&part)
	})

	return &fleet.ProjectorDetail{
		Projector:      projector,
		ServiceHistory: services,
		RMAHistory:     rmas,
		SpareParts:     compatible,
	}, nil
}

// Update applies a typed patch to an existing projector and stamps
// updated_at. Returns ErrProjectorNotFound when the serial is unknown.
func (s *ProjectorService) Update(ctx context.Context, serial string, patch ProjectorPatch) (*fleet.Projector, error) {
	projector, err := getRecord[fleet.Projector](ctx, s.store, fleet.ProjectorKey(serial), fleet.ErrProjectorNotFound)
	if err != nil {
		return nil, err
	}

	applyProjectorPatch(&projector, patch)
	projector.UpdatedAt = nowRFC3339(s.now())

	if err := putRecord(ctx, s.store, fleet.ProjectorKey(serial), projector); err != nil {
		return nil, err
	}
	return &projector, nil
}

func (s *ProjectorService) resolveServices(ctx context.Context, serial string) ([]fleet.ServiceRecord, error) {
	ids, err := s.store.GetList(ctx, fleet.ProjectorServicesKey(serial))
	if err != nil {
		return nil, err
	}
	records := make([]fleet.ServiceRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := getRecord[fleet.ServiceRecord](ctx, s.store, fleet.ServiceKey(id), fleet.ErrServiceNotFound)
		if err == fleet.ErrServiceNotFound {
			continue // dangling index id
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *ProjectorService) resolveRMAs(ctx context.Context, serial string) ([]fleet.RMA, error) {
	ids, err := s.store.GetList(ctx, fleet.ProjectorRMAsKey(serial))
	if err != nil {
		return nil, err
	}
	records := make([]fleet.RMA, 0, len(ids))
	for _, id := range ids {
		rec, err := getRecord[fleet.RMA](ctx, s.store, fleet.RMAKey(id), fleet.ErrRMANotFound)
		if err == fleet.ErrRMANotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func applyProjectorPatch(p *fleet.Projector, patch ProjectorPatch) {
	if patch.Model != nil {
		p.Model = *patch.Model
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Site != nil {
		p.Site = *patch.Site
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.InstallDate != nil {
		p.InstallDate = *patch.InstallDate
	}
	if patch.WarrantyEnd != nil {
		p.WarrantyEnd = *patch.WarrantyEnd
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Condition != nil {
		p.Condition = *patch.Condition
	}
	if patch.LastService != nil {
		p.LastService = *patch.LastService
	}
	if patch.NextService != nil {
		p.NextService = *patch.NextService
	}
	if patch.TotalServices != nil {
		p.TotalServices = *patch.TotalServices
	}
	if patch.HoursUsed != nil {
		p.HoursUsed = *patch.HoursUsed
	}
	if patch.ExpectedLife != nil {
		p.ExpectedLife = *patch.ExpectedLife
	}
	if patch.Customer != nil {
		p.Customer = *patch.Customer
	}
	if patch.Technician != nil {
		p.Technician = *patch.Technician
	}
}

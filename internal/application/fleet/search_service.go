package fleetapp

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/infrastructure/kvstore"
)

// SearchService runs case-insensitive substring searches over a fixed set of
// fields per collection. Each collection is scanned fully and filtered
// independently; there is no index.
type SearchService struct {
	store kvstore.Store
}

// NewSearchService creates a new SearchService
func NewSearchService(store kvstore.Store) *SearchService {
	return &SearchService{store: store}
}

// Search returns the matches from all four collections for query. Empty
// queries are rejected by the HTTP layer before reaching here.
func (s *SearchService) Search(ctx context.Context, query string) (*fleet.SearchResults, error) {
	q := strings.ToLower(query)

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

	return &fleet.SearchResults{
		Projectors: lo.Filter(projectors, func(p fleet.Projector, _ int) bool {
			return matchesAny(q, p.SerialNumber, p.Model, p.Site)
		}),
		Services: lo.Filter(services, func(r fleet.ServiceRecord, _ int) bool {
			return matchesAny(q, r.ProjectorSerial, r.Type, r.Technician)
		}),
		RMAs: lo.Filter(rmas, func(r fleet.RMA, _ int) bool {
			return matchesAny(q, r.ProjectorSerial, r.PartName, r.Status)
		}),
		SpareParts: lo.Filter(parts, func(p fleet.SparePart, _ int) bool {
			return matchesAny(q, p.PartNumber, p.PartName, p.Brand)
		}),
	}, nil
}

func matchesAny(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

package client

import (
	"context"
	"fmt"
	"time"
)

// AlertGroup is one entry of the notifications feed
type AlertGroup struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Count   int    `json:"count"`
	Items   any    `json:"items"`
}

// Export wraps a collection with export metadata
type Export[T any] struct {
	Data       []T    `json:"data"`
	ExportedAt string `json:"exported_at"`
	Format     string `json:"format"`
}

// ProjectorUpdate pairs one projector serial with the patch to apply
type ProjectorUpdate struct {
	SerialNumber string
	Patch        Patch
}

// BulkUpdateResult reports one projector update of a bulk run
type BulkUpdateResult struct {
	SerialNumber string
	Projector    *Projector
	Err          error
}

// LowStockParts returns the spare parts at or below their reorder threshold
func (c *Client) LowStockParts(ctx context.Context) ([]SparePart, error) {
	parts, err := c.SpareParts(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]SparePart, 0, len(parts))
	for _, p := range parts {
		if p.StockQuantity <= p.MinStock {
			low = append(low, p)
		}
	}
	return low, nil
}

// WarrantyAlerts returns the projectors with expiring warranties. The window
// policy lives on the server; this is a plain fetch.
func (c *Client) WarrantyAlerts(ctx context.Context) ([]Projector, error) {
	return doGet[[]Projector](ctx, c, "/warranty-alerts", nil)
}

// Notifications composes the alert feed from low-stock parts, warranty
// alerts and in-progress services. Groups with zero items are omitted.
func (c *Client) Notifications(ctx context.Context) ([]AlertGroup, error) {
	var alerts []AlertGroup

	lowStock, err := c.LowStockParts(ctx)
	if err != nil {
		return nil, err
	}
	if len(lowStock) > 0 {
		alerts = append(alerts, AlertGroup{
			Type:    "low_stock",
			Message: fmt.Sprintf("%d parts are running low on stock", len(lowStock)),
			Count:   len(lowStock),
			Items:   lowStock,
		})
	}

	warranty, err := c.WarrantyAlerts(ctx)
	if err != nil {
		return nil, err
	}
	if len(warranty) > 0 {
		alerts = append(alerts, AlertGroup{
			Type:    "warranty",
			Message: fmt.Sprintf("%d projectors have warranties expiring soon", len(warranty)),
			Count:   len(warranty),
			Items:   warranty,
		})
	}

	services, err := c.Services(ctx)
	if err != nil {
		return nil, err
	}
	var inProgress []ServiceRecord
	for _, svc := range services {
		if svc.Status == "In Progress" {
			inProgress = append(inProgress, svc)
		}
	}
	if len(inProgress) > 0 {
		alerts = append(alerts, AlertGroup{
			Type:    "service",
			Message: fmt.Sprintf("%d services are in progress", len(inProgress)),
			Count:   len(inProgress),
			Items:   inProgress,
		})
	}

	return alerts, nil
}

// BulkUpdateProjectors applies patches sequentially in input order, one
// result per update. A failed update is recorded and does not stop the
// remaining ones.
func (c *Client) BulkUpdateProjectors(ctx context.Context, updates []ProjectorUpdate) []BulkUpdateResult {
	results := make([]BulkUpdateResult, 0, len(updates))
	for _, update := range updates {
		projector, err := c.UpdateProjector(ctx, update.SerialNumber, update.Patch)
		results = append(results, BulkUpdateResult{
			SerialNumber: update.SerialNumber,
			Projector:    projector,
			Err:          err,
		})
	}
	return results
}

// ExportProjectors fetches all projectors wrapped with export metadata
func (c *Client) ExportProjectors(ctx context.Context) (*Export[Projector], error) {
	projectors, err := c.Projectors(ctx)
	if err != nil {
		return nil, err
	}
	return &Export[Projector]{
		Data:       projectors,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Format:     "json",
	}, nil
}

// ExportServices fetches all service records wrapped with export metadata
func (c *Client) ExportServices(ctx context.Context) (*Export[ServiceRecord], error) {
	services, err := c.Services(ctx)
	if err != nil {
		return nil, err
	}
	return &Export[ServiceRecord]{
		Data:       services,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Format:     "json",
	}, nil
}

// ProjectorsByStatus returns the projectors with the given status
func (c *Client) ProjectorsByStatus(ctx context.Context, status string) ([]Projector, error) {
	projectors, err := c.Projectors(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]Projector, 0, len(projectors))
	for _, p := range projectors {
		if p.Status == status {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// ServicesByDateRange returns service records whose date falls in
// [start, end]. Dates are "2006-01-02"; records with unparseable dates are
// skipped.
func (c *Client) ServicesByDateRange(ctx context.Context, start, end string) ([]ServiceRecord, error) {
	from, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, fmt.Errorf("client: invalid start date %q: %w", start, err)
	}
	to, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, fmt.Errorf("client: invalid end date %q: %w", end, err)
	}

	services, err := c.Services(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]ServiceRecord, 0, len(services))
	for _, svc := range services {
		date, err := time.Parse("2006-01-02", svc.Date)
		if err != nil {
			continue
		}
		if !date.Before(from) && !date.After(to) {
			filtered = append(filtered, svc)
		}
	}
	return filtered, nil
}

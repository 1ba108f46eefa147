package fleet

// AnalyticsOverview is the singleton snapshot stored under AnalyticsKey.
// It is overwritten with fresh aggregates on every analytics read, so the
// persisted copy is only a last-known cache between calls.
type AnalyticsOverview struct {
	TotalProjectors    int     `json:"total_projectors"`
	ActiveProjectors   int     `json:"active_projectors"`
	UnderService       int     `json:"under_service"`
	TotalServices      int     `json:"total_services"`
	TotalRMAs          int     `json:"total_rmas"`
	TotalSpareParts    int     `json:"total_spare_parts"`
	LowStockParts      int     `json:"low_stock_parts"`
	CriticalStockParts int     `json:"critical_stock_parts"`
	MonthlyRevenue     float64 `json:"monthly_revenue"`
	PendingServices    int     `json:"pending_services"`
	WarrantyAlerts     int     `json:"warranty_alerts"`
	LastUpdated        string  `json:"last_updated"`
}

// DashboardStats is the aggregate object served to the dashboard landing
// page, recomputed from full scans on every call
type DashboardStats struct {
	TotalProjectors    int     `json:"total_projectors"`
	ActiveProjectors   int     `json:"active_projectors"`
	UnderService       int     `json:"under_service"`
	TotalServices      int     `json:"total_services"`
	CompletedServices  int     `json:"completed_services"`
	PendingServices    int     `json:"pending_services"`
	TotalRMAs          int     `json:"total_rmas"`
	PendingRMAs        int     `json:"pending_rmas"`
	ApprovedRMAs       int     `json:"approved_rmas"`
	TotalSpareParts    int     `json:"total_spare_parts"`
	LowStockParts      int     `json:"low_stock_parts"`
	CriticalStockParts int     `json:"critical_stock_parts"`
	MonthlyRevenue     float64 `json:"monthly_revenue"`
	WarrantyAlerts     int     `json:"warranty_alerts"`
}

// SearchResults groups per-collection matches for a search query
type SearchResults struct {
	Projectors []Projector     `json:"projectors"`
	Services   []ServiceRecord `json:"services"`
	RMAs       []RMA           `json:"rmas"`
	SpareParts []SparePart     `json:"spareParts"`
}

package client

// Wire types of the fleet API. Field names mirror the server's JSON exactly;
// the package keeps its own copies so importing it pulls in nothing beyond
// the standard library.

// Projector is an installed projector unit
type Projector struct {
	SerialNumber  string `json:"serial_number"`
	Model         string `json:"model"`
	Brand         string `json:"brand"`
	Site          string `json:"site"`
	Location      string `json:"location"`
	InstallDate   string `json:"install_date"`
	WarrantyEnd   string `json:"warranty_end"`
	Status        string `json:"status"`
	Condition     string `json:"condition"`
	LastService   string `json:"last_service,omitempty"`
	NextService   string `json:"next_service,omitempty"`
	TotalServices int    `json:"total_services"`
	HoursUsed     int    `json:"hours_used"`
	ExpectedLife  int    `json:"expected_life"`
	Customer      string `json:"customer,omitempty"`
	Technician    string `json:"technician,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// ProjectorDetail is a projector joined with its related collections
type ProjectorDetail struct {
	Projector
	ServiceHistory []ServiceRecord `json:"serviceHistory"`
	RMAHistory     []RMA           `json:"rmaHistory"`
	SpareParts     []SparePart     `json:"spareParts"`
}

// ServiceRecord is a maintenance visit record
type ServiceRecord struct {
	ID              string   `json:"id"`
	ProjectorSerial string   `json:"projector_serial"`
	Date            string   `json:"date"`
	Type            string   `json:"type"`
	Technician      string   `json:"technician,omitempty"`
	Status          string   `json:"status"`
	Notes           string   `json:"notes,omitempty"`
	SpareParts      []string `json:"spare_parts"`
	Cost            float64  `json:"cost"`
	Hours           float64  `json:"hours"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at,omitempty"`
}

// RMA is a return-merchandise-authorization record
type RMA struct {
	ID                string  `json:"id"`
	RMANumber         string  `json:"rma_number"`
	ProjectorSerial   string  `json:"projector_serial"`
	PartNumber        string  `json:"part_number"`
	PartName          string  `json:"part_name"`
	IssueDate         string  `json:"issue_date"`
	Status            string  `json:"status"`
	Reason            string  `json:"reason,omitempty"`
	EstimatedCost     float64 `json:"estimated_cost"`
	WarrantyStatus    string  `json:"warranty_status,omitempty"`
	Technician        string  `json:"technician,omitempty"`
	PhysicalCondition string  `json:"physical_condition,omitempty"`
	LogicalCondition  string  `json:"logical_condition,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at,omitempty"`
}

// SparePart is an inventory item
type SparePart struct {
	ID               string   `json:"id"`
	PartNumber       string   `json:"part_number"`
	PartName         string   `json:"part_name"`
	Category         string   `json:"category,omitempty"`
	Brand            string   `json:"brand"`
	CompatibleModels []string `json:"compatible_models"`
	StockQuantity    int      `json:"stock_quantity"`
	MinStock         int      `json:"min_stock"`
	UnitCost         float64  `json:"unit_cost"`
	Supplier         string   `json:"supplier,omitempty"`
	LastRestocked    string   `json:"last_restocked,omitempty"`
	Location         string   `json:"location,omitempty"`
	Status           string   `json:"status"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at,omitempty"`
}

// AnalyticsOverview is the analytics snapshot
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

// DashboardStats is the dashboard aggregate
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

// Health is the health endpoint body
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// SeedResult reports how many records the schema seed wrote
type SeedResult struct {
	Message           string `json:"message"`
	ProjectorsCreated int    `json:"projectors_created"`
	ServicesCreated   int    `json:"services_created"`
	RMAsCreated       int    `json:"rmas_created"`
	SparePartsCreated int    `json:"spare_parts_created"`
}

// ReindexResult reports the outcome of an index rebuild
type ReindexResult struct {
	Message         string `json:"message"`
	IndexesRebuilt  int    `json:"indexes_rebuilt"`
	ServicesIndexed int    `json:"services_indexed"`
	RMAsIndexed     int    `json:"rmas_indexed"`
}

// CreateServiceInput is the payload for creating a service record
type CreateServiceInput struct {
	ProjectorSerial string   `json:"projector_serial"`
	Date            string   `json:"date"`
	Type            string   `json:"type"`
	Technician      string   `json:"technician,omitempty"`
	Status          string   `json:"status,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	SpareParts      []string `json:"spare_parts,omitempty"`
	Cost            float64  `json:"cost,omitempty"`
	Hours           float64  `json:"hours,omitempty"`
}

// CreateRMAInput is the payload for creating an RMA record
type CreateRMAInput struct {
	ProjectorSerial   string  `json:"projector_serial"`
	PartNumber        string  `json:"part_number,omitempty"`
	PartName          string  `json:"part_name,omitempty"`
	IssueDate         string  `json:"issue_date"`
	Status            string  `json:"status,omitempty"`
	Reason            string  `json:"reason,omitempty"`
	EstimatedCost     float64 `json:"estimated_cost,omitempty"`
	WarrantyStatus    string  `json:"warranty_status,omitempty"`
	Technician        string  `json:"technician,omitempty"`
	PhysicalCondition string  `json:"physical_condition,omitempty"`
	LogicalCondition  string  `json:"logical_condition,omitempty"`
}

// CreateSparePartInput is the payload for creating a spare part
type CreateSparePartInput struct {
	PartNumber       string   `json:"part_number"`
	PartName         string   `json:"part_name"`
	Category         string   `json:"category,omitempty"`
	Brand            string   `json:"brand,omitempty"`
	CompatibleModels []string `json:"compatible_models,omitempty"`
	StockQuantity    int      `json:"stock_quantity,omitempty"`
	MinStock         int      `json:"min_stock,omitempty"`
	UnitCost         float64  `json:"unit_cost,omitempty"`
	Supplier         string   `json:"supplier,omitempty"`
	LastRestocked    string   `json:"last_restocked,omitempty"`
	Location         string   `json:"location,omitempty"`
	Status           string   `json:"status,omitempty"`
}

// Patch is a partial-update payload. Only the keys present are applied, so
// callers build it with just the fields they mean to change.
type Patch map[string]any

package fleetapp

// Request payloads for the fleet API. Create requests carry required fields
// with binding tags; patch types use pointer fields so absent JSON keys are
// distinguishable from zero values and updates stay field-by-field instead
// of merge-anything.

// CreateServiceRequest is the payload for creating a service record
type CreateServiceRequest struct {
	ProjectorSerial string   `json:"projector_serial" binding:"required"`
	Date            string   `json:"date" binding:"required,calendardate"`
	Type            string   `json:"type" binding:"required"`
	Technician      string   `json:"technician"`
	Status          string   `json:"status" binding:"omitempty,oneof=Scheduled 'In Progress' Completed"`
	Notes           string   `json:"notes"`
	SpareParts      []string `json:"spare_parts"`
	Cost            float64  `json:"cost" binding:"gte=0"`
	Hours           float64  `json:"hours" binding:"gte=0"`
}

// ServicePatch is the payload for updating a service record
type ServicePatch struct {
	Date       *string   `json:"date" binding:"omitempty,calendardate"`
	Type       *string   `json:"type"`
	Technician *string   `json:"technician"`
	Status     *string   `json:"status" binding:"omitempty,oneof=Scheduled 'In Progress' Completed"`
	Notes      *string   `json:"notes"`
	SpareParts *[]string `json:"spare_parts"`
	Cost       *float64  `json:"cost" binding:"omitempty,gte=0"`
	Hours      *float64  `json:"hours" binding:"omitempty,gte=0"`
}

// ProjectorPatch is the payload for updating a projector record.
// The serial number is immutable and therefore not patchable.
type ProjectorPatch struct {
	Model         *string `json:"model"`
	Brand         *string `json:"brand"`
	Site          *string `json:"site"`
	Location      *string `json:"location"`
	InstallDate   *string `json:"install_date"`
	WarrantyEnd   *string `json:"warranty_end"`
	Status        *string `json:"status" binding:"omitempty,oneof=Active 'Under Service' Inactive 'Needs Repair'"`
	Condition     *string `json:"condition" binding:"omitempty,oneof=Excellent Good Fair 'Needs Repair'"`
	LastService   *string `json:"last_service"`
	NextService   *string `json:"next_service"`
	TotalServices *int    `json:"total_services" binding:"omitempty,gte=0"`
	HoursUsed     *int    `json:"hours_used" binding:"omitempty,gte=0"`
	ExpectedLife  *int    `json:"expected_life" binding:"omitempty,gte=0"`
	Customer      *string `json:"customer"`
	Technician    *string `json:"technician"`
}

// CreateRMARequest is the payload for creating an RMA record
type CreateRMARequest struct {
	ProjectorSerial   string  `json:"projector_serial" binding:"required"`
	PartNumber        string  `json:"part_number"`
	PartName          string  `json:"part_name"`
	IssueDate         string  `json:"issue_date" binding:"required,calendardate"`
	Status            string  `json:"status" binding:"omitempty,oneof='Under Review' 'Replacement Approved' 'Repair In Progress' Completed Rejected"`
	Reason            string  `json:"reason"`
	EstimatedCost     float64 `json:"estimated_cost" binding:"gte=0"`
	WarrantyStatus    string  `json:"warranty_status"`
	Technician        string  `json:"technician"`
	PhysicalCondition string  `json:"physical_condition"`
	LogicalCondition  string  `json:"logical_condition"`
}

// RMAPatch is the payload for updating an RMA record
type RMAPatch struct {
	PartNumber        *string  `json:"part_number"`
	PartName          *string  `json:"part_name"`
	IssueDate         *string  `json:"issue_date" binding:"omitempty,calendardate"`
	Status            *string  `json:"status" binding:"omitempty,oneof='Under Review' 'Replacement Approved' 'Repair In Progress' Completed Rejected"`
	Reason            *string  `json:"reason"`
	EstimatedCost     *float64 `json:"estimated_cost" binding:"omitempty,gte=0"`
	WarrantyStatus    *string  `json:"warranty_status"`
	Technician        *string  `json:"technician"`
	PhysicalCondition *string  `json:"physical_condition"`
	LogicalCondition  *string  `json:"logical_condition"`
}

// CreateSparePartRequest is the payload for creating a spare part
type CreateSparePartRequest struct {
	PartNumber       string   `json:"part_number" binding:"required"`
	PartName         string   `json:"part_name" binding:"required"`
	Category         string   `json:"category"`
	Brand            string   `json:"brand"`
	CompatibleModels []string `json:"compatible_models"`
	StockQuantity    int      `json:"stock_quantity" binding:"gte=0"`
	MinStock         int      `json:"min_stock" binding:"gte=0"`
	UnitCost         float64  `json:"unit_cost" binding:"gte=0"`
	Supplier         string   `json:"supplier"`
	LastRestocked    string   `json:"last_restocked"`
	Location         string   `json:"location"`
	Status           string   `json:"status" binding:"omitempty,oneof='In Stock' 'Low Stock' 'Out of Stock' 'Critical Stock' 'RMA Pending' 'RMA Approved'"`
}

// SparePartPatch is the payload for updating a spare part.
// StockQuantity and Status are intentionally independent; callers own
// keeping workflow status in step with stock.
type SparePartPatch struct {
	PartNumber       *string   `json:"part_number"`
	PartName         *string   `json:"part_name"`
	Category         *string   `json:"category"`
	Brand            *string   `json:"brand"`
	CompatibleModels *[]string `json:"compatible_models"`
	StockQuantity    *int      `json:"stock_quantity" binding:"omitempty,gte=0"`
	MinStock         *int      `json:"min_stock" binding:"omitempty,gte=0"`
	UnitCost         *float64  `json:"unit_cost" binding:"omitempty,gte=0"`
	Supplier         *string   `json:"supplier"`
	LastRestocked    *string   `json:"last_restocked"`
	Location         *string   `json:"location"`
	Status           *string   `json:"status" binding:"omitempty,oneof='In Stock' 'Low Stock' 'Out of Stock' 'Critical Stock' 'RMA Pending' 'RMA Approved'"`
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

package fleet

// Spare part status values. Status is a workflow field set by operators
// ("RMA Pending" etc.), not derived from stock_quantity; the two can
// legitimately disagree.
const (
	PartStatusInStock       = "In Stock"
	PartStatusLowStock      = "Low Stock"
	PartStatusOutOfStock    = "Out of Stock"
	PartStatusCriticalStock = "Critical Stock"
	PartStatusRMAPending    = "RMA Pending"
	PartStatusRMAApproved   = "RMA Approved"
)

// SparePart is an inventory item, keyed by a generated id (SP-<epoch
// millis> for API-created parts). MinStock is the canonical reorder
// threshold field.
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

// IsLowStock reports whether the part is at or below its reorder threshold
func (p *SparePart) IsLowStock() bool {
	return p.StockQuantity <= p.MinStock
}

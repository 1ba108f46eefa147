package fleet

// RMA status values
const (
	RMAStatusUnderReview         = "Under Review"
	RMAStatusReplacementApproved = "Replacement Approved"
	RMAStatusRepairInProgress    = "Repair In Progress"
	RMAStatusCompleted           = "Completed"
	RMAStatusRejected            = "Rejected"
)

// RMA is a return-merchandise-authorization record, keyed by a time-based id
// (RMA-<epoch millis>) with a separate human-readable RMANumber
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

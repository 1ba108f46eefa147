package fleet

// Projector status values
const (
	ProjectorStatusActive       = "Active"
	ProjectorStatusUnderService = "Under Service"
	ProjectorStatusInactive     = "Inactive"
	ProjectorStatusNeedsRepair  = "Needs Repair"
)

// Projector condition values
const (
	ConditionExcellent   = "Excellent"
	ConditionGood        = "Good"
	ConditionFair        = "Fair"
	ConditionNeedsRepair = "Needs Repair"
)

// Projector is the installed-unit record, keyed by serial number.
// Dates are stored as strings ("2006-01-02" for calendar dates, RFC3339 for
// timestamps) to match the wire format the dashboard consumes.
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

// ProjectorDetail is a projector joined with its related collections,
// returned by the single-projector lookup
type ProjectorDetail struct {
	Projector
	ServiceHistory []ServiceRecord `json:"serviceHistory"`
	RMAHistory     []RMA           `json:"rmaHistory"`
	SpareParts     []SparePart     `json:"spareParts"`
}

// CompatibleWith reports whether part lists the projector's model among its
// compatible models
func (p *Projector) CompatibleWith(part *SparePart) bool {
	for _, m := range part.CompatibleModels {
		if m == p.Model {
			return true
		}
	}
	return false
}

package fleet

// Service record status values
const (
	ServiceStatusScheduled  = "Scheduled"
	ServiceStatusInProgress = "In Progress"
	ServiceStatusCompleted  = "Completed"
)

// ServiceRecord is a maintenance visit, keyed by a time-based id
// (SRV-<epoch millis>). ProjectorSerial is a soft reference; the backing
// projector may be gone.
type ServiceRecord struct {
	ID              string   `json:"id"`
	ProjectorSerial string   `json:"projector_serial"`
	Date            string   `json:"date"`
	Type            string   `json:"type"`
	Technician      string   `json:"technician"`
	Status          string   `json:"status"`
	Notes           string   `json:"notes,omitempty"`
	SpareParts      []string `json:"spare_parts"`
	Cost            float64  `json:"cost"`
	Hours           float64  `json:"hours"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at,omitempty"`
}

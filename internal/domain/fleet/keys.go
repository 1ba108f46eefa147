package fleet

// Key prefixes of the flat key-value namespace. Entity records live under
// the first four prefixes; the two index prefixes hold ordered id lists per
// projector serial; AnalyticsKey is a singleton snapshot.
const (
	ProjectorPrefix         = "projector:"
	ServicePrefix           = "service:"
	RMAPrefix               = "rma:"
	SparePartPrefix         = "spare_part:"
	ProjectorServicesPrefix = "projector_services:"
	ProjectorRMAsPrefix     = "projector_rmas:"

	AnalyticsKey = "analytics:overview"
)

// ProjectorKey returns the record key for a projector serial number
func ProjectorKey(serial string) string { return ProjectorPrefix + serial }

// ServiceKey returns the record key for a service record id
func ServiceKey(id string) string { return ServicePrefix + id }

// RMAKey returns the record key for an RMA record id
func RMAKey(id string) string { return RMAPrefix + id }

// SparePartKey returns the record key for a spare part id
func SparePartKey(id string) string { return SparePartPrefix + id }

// ProjectorServicesKey returns the service-index key for a projector
func ProjectorServicesKey(serial string) string { return ProjectorServicesPrefix + serial }

// ProjectorRMAsKey returns the RMA-index key for a projector
func ProjectorRMAsKey(serial string) string { return ProjectorRMAsPrefix + serial }

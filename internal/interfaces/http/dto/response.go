// Package dto defines the wire shapes of the fleet API. Success responses
// carry entities and collections directly, without an envelope; only errors
// and system endpoints have dedicated shapes.
package dto

// ErrorResponse is the body of 400 and 404 responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorDetailResponse is the body of 500 responses; Details carries the
// underlying error text
type ErrorDetailResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

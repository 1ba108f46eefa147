package fleet

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProjectorNotFound = NewDomainError("NOT_FOUND", "Projector not found")
	ErrServiceNotFound   = NewDomainError("NOT_FOUND", "Service record not found")
	ErrRMANotFound       = NewDomainError("NOT_FOUND", "RMA record not found")
	ErrSparePartNotFound = NewDomainError("NOT_FOUND", "Spare part not found")
	ErrInvalidInput      = NewDomainError("INVALID_INPUT", "Invalid input provided")
)

package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeInvalidPrice    = "INVALID_PRICE"
	ErrCodeOrderNotFound   = "ORDER_NOT_FOUND"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// DomainError is an error carrying a stable code for business-rule failures.
type DomainError struct {
	Code    string
	Message string
}

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
	ErrOrderNotFound       = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrCustomerNameMissing = NewDomainError(ErrCodeMissingField, "Customer name is required")
	ErrItemNameMissing     = NewDomainError(ErrCodeMissingField, "Item name is required")
	ErrInvalidQuantity     = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be at least 1")
	ErrInvalidPrice        = NewDomainError(ErrCodeInvalidPrice, "Price must not be negative")
)

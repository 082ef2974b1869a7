package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeGatewayError    = "GATEWAY_ERROR"
	ErrCodeUnauthorised    = "UNAUTHORIZED"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
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
	ErrInvalidQuantity  = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrNotAuthenticated = NewDomainError(ErrCodeUnauthorised, "No active session")
	ErrIncompleteLine   = NewDomainError("INCOMPLETE_LINE", "Product line is missing its product snapshot")
)

// IncompleteLineError reports a product line whose denormalised product
// snapshot was absent in the gateway response. The line still contributes
// to the aggregation with fallback fields; callers decide whether to log
// or drop the diagnostic.
type IncompleteLineError struct {
	OrderID   string
	ProductID string
}

func (e *IncompleteLineError) Error() string {
	return fmt.Sprintf("order %s: line for product %q is missing its product snapshot", e.OrderID, e.ProductID)
}

// Unwrap lets errors.Is match against ErrIncompleteLine.
func (e *IncompleteLineError) Unwrap() error {
	return ErrIncompleteLine
}

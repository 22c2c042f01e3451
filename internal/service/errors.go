package service

import (
	"errors"
	"fmt"
)

// Not-found sentinels. Only operations that check existence (update, stage
// transition, targeted reads of other entities) return these; delete is
// deliberately tolerant and never does.
var (
	ErrDealNotFound     = errors.New("deal not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrShipmentNotFound = errors.New("shipment not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrClientNotFound   = errors.New("client not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrTemplateNotFound = errors.New("email template not found")
)

// ValidationError rejects bad input at the service boundary. The HTTP layer
// maps it to 422; everything else that is not a not-found sentinel propagates
// to the caller unmodified as a dependency failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a rejected-input error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fleetcore/payments/internal/domain/model"
)

var (
	// ErrPaymentNotFound indicates the payment does not exist for the company
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrCustomerNotFound indicates the referenced customer is unknown
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrContractNotFound indicates the referenced contract is unknown
	ErrContractNotFound = errors.New("contract not found")

	// ErrInvoiceNotFound indicates the referenced invoice is unknown
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrDuplicateIdempotencyKey indicates a second creation attempt reused a
	// (company, idempotency key) pair. The creation is rejected, never
	// silently deduplicated.
	ErrDuplicateIdempotencyKey = errors.New("duplicate idempotency key")

	// ErrPaymentAlreadyAllocated indicates the payment is already linked to a
	// contract. A payment is allocated exactly once; the allocation status
	// never moves backwards.
	ErrPaymentAlreadyAllocated = errors.New("payment already allocated to a contract")
)

// ValidationError carries every rule violation found in a payment input.
// Violations accumulate; validation never stops at the first failure.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "payment validation failed: " + strings.Join(e.Violations, "; ")
}

// NewValidationError creates a ValidationError from the accumulated violations
func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// InvalidTransitionError is returned when a requested status change is not
// present in the allowed-transition table. The stored status is left
// unchanged.
type InvalidTransitionError struct {
	Field string
	From  string
	To    string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("Invalid state transition: %s %s -> %s", e.Field, e.From, e.To)
}

// NewInvalidPaymentStatusTransition builds the transition error for a
// PaymentStatus change.
func NewInvalidPaymentStatusTransition(from, to model.PaymentStatus) *InvalidTransitionError {
	return &InvalidTransitionError{Field: "payment_status", From: string(from), To: string(to)}
}

// NewInvalidProcessingStatusTransition builds the transition error for a
// ProcessingStatus change.
func NewInvalidProcessingStatusTransition(from, to model.ProcessingStatus) *InvalidTransitionError {
	return &InvalidTransitionError{Field: "processing_status", From: string(from), To: string(to)}
}

// AllocationRegressionError is returned when an allocation would move the
// allocation status backwards.
type AllocationRegressionError struct {
	From model.AllocationStatus
	To   model.AllocationStatus
}

func (e *AllocationRegressionError) Error() string {
	return fmt.Sprintf("allocation status may only advance: %s -> %s rejected", e.From, e.To)
}

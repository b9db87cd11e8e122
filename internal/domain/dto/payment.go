package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fleetcore/payments/internal/domain/model"
)

// CreatePaymentRequest carries the caller-supplied fields for a new payment.
// Amount arrives as a string so callers never lose precision to float JSON.
type CreatePaymentRequest struct {
	CustomerID      int64   `json:"customer_id" validate:"required"`
	ContractID      *int64  `json:"contract_id,omitempty"`
	InvoiceID       *int64  `json:"invoice_id,omitempty"`
	Amount          string  `json:"amount" validate:"required"`
	Currency        string  `json:"currency,omitempty"`
	PaymentDate     string  `json:"payment_date" validate:"required"`
	PaymentMethod   string  `json:"payment_method" validate:"required"`
	PaymentType     string  `json:"payment_type,omitempty"`
	TransactionType string  `json:"transaction_type,omitempty"`
	Channel         string  `json:"channel,omitempty"`
	IdempotencyKey  *string `json:"idempotency_key,omitempty"`
	Notes           string  `json:"notes,omitempty"`
}

// UpdatePaymentStatusRequest requests a direct status change with optional
// appended note. Nil status fields are left untouched.
type UpdatePaymentStatusRequest struct {
	PaymentStatus    *string `json:"payment_status,omitempty"`
	ProcessingStatus *string `json:"processing_status,omitempty"`
	Notes            string  `json:"notes,omitempty"`
}

// AllocatePaymentRequest links a payment to a contract balance.
type AllocatePaymentRequest struct {
	ContractID int64 `json:"contract_id" validate:"required"`
}

// ValidationResult is the outcome of a dry-run validation. Every failed
// check contributes one entry to Errors.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// PaymentFilters contains query filters for payment listing
type PaymentFilters struct {
	Status    *model.PaymentStatus
	Method    *model.PaymentMethod
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// SetDefaults sets default values for pagination
func (f *PaymentFilters) SetDefaults() {
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// PaymentListResponse represents the paginated payment list response
type PaymentListResponse struct {
	Payments   []*model.Payment `json:"payments"`
	Pagination PaginationInfo   `json:"pagination"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"has_more"`
}

// AllocationOutcome summarizes what an allocation did to the payment and
// the contract balance.
type AllocationOutcome struct {
	Payment          *model.Payment         `json:"payment"`
	AllocationStatus model.AllocationStatus `json:"allocation_status"`
	AppliedAmount    decimal.Decimal        `json:"applied_amount"`
	UnappliedAmount  decimal.Decimal        `json:"unapplied_amount"`
	ContractPaid     decimal.Decimal        `json:"contract_total_paid"`
}

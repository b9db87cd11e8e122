package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleetcore/payments/internal/domain/dto"
	"github.com/fleetcore/payments/internal/domain/model"
)

// PaymentRepository is the storage boundary for payments. All reads and
// writes are company scoped.
type PaymentRepository interface {
	// Create inserts the payment inside one transaction: it rejects a reused
	// (company, idempotency key) pair, draws the next payment number from the
	// locked per-company counter, and persists the row.
	Create(ctx context.Context, payment *model.Payment) error

	GetByID(ctx context.Context, companyID uuid.UUID, id int64) (*model.Payment, error)

	// Update persists the payment's current field values.
	Update(ctx context.Context, payment *model.Payment) error

	List(ctx context.Context, companyID uuid.UUID, filters dto.PaymentFilters) ([]*model.Payment, error)
	Count(ctx context.Context, companyID uuid.UUID, filters dto.PaymentFilters) (int64, error)
	ListByContract(ctx context.Context, companyID uuid.UUID, contractID int64) ([]*model.Payment, error)

	// AllocateToContract applies the payment to the contract balance. Both
	// the payment row and the contract row are written in one database
	// transaction with the contract row locked, so the contract's total_paid
	// counter never loses an update under concurrent allocations.
	AllocateToContract(ctx context.Context, companyID uuid.UUID, paymentID, contractID int64) (*dto.AllocationOutcome, error)
}

// CustomerRepository resolves customers for validation and relations.
type CustomerRepository interface {
	GetByID(ctx context.Context, companyID uuid.UUID, id int64) (*model.Customer, error)
	Exists(ctx context.Context, companyID uuid.UUID, id int64) (bool, error)
}

// ContractRepository is the storage boundary for contracts.
type ContractRepository interface {
	GetByID(ctx context.Context, companyID uuid.UUID, id int64) (*model.Contract, error)
}

// InvoiceRepository is the storage boundary for invoices.
type InvoiceRepository interface {
	GetByID(ctx context.Context, companyID uuid.UUID, id int64) (*model.Invoice, error)
}

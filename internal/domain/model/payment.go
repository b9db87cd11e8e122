package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment represents one money movement tied to a company, a customer, and
// optionally a contract or invoice. Payments are never deleted through the
// normal flow; cancellation is a status value, not a row removal.
type Payment struct {
	ID               int64                `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID        uuid.UUID            `gorm:"column:company_id;type:uuid;not null;index:idx_payments_company_created" json:"company_id"`
	CustomerID       int64                `gorm:"not null;index" json:"customer_id"`
	ContractID       *int64               `gorm:"index" json:"contract_id,omitempty"`
	InvoiceID        *int64               `gorm:"index" json:"invoice_id,omitempty"`
	PaymentNumber    string               `gorm:"not null;size:30" json:"payment_number"`
	Amount           decimal.Decimal      `gorm:"type:decimal(15,2);not null" json:"amount"`
	AppliedAmount    decimal.Decimal      `gorm:"type:decimal(15,2);not null;default:0" json:"applied_amount"`
	UnappliedAmount  decimal.Decimal      `gorm:"type:decimal(15,2);not null;default:0" json:"unapplied_amount"`
	Currency         Currency             `gorm:"size:3;default:'KWD'" json:"currency"`
	PaymentDate      time.Time            `gorm:"not null;index" json:"payment_date"`
	Method           PaymentMethod        `gorm:"column:payment_method;type:payment_method;not null" json:"payment_method"`
	Type             PaymentType          `gorm:"column:payment_type;type:payment_type;not null" json:"payment_type"`
	Status           PaymentStatus        `gorm:"column:payment_status;type:payment_status;not null;default:'pending';index" json:"payment_status"`
	ProcessingStatus ProcessingStatus     `gorm:"type:processing_status;not null;default:'new'" json:"processing_status"`
	TransactionType  TransactionType      `gorm:"type:payment_transaction_type;not null;default:'receipt'" json:"transaction_type"`
	AllocationStatus AllocationStatus     `gorm:"type:allocation_status;not null;default:'unallocated'" json:"allocation_status"`
	Reconciliation   ReconciliationStatus `gorm:"column:reconciliation_status;type:reconciliation_status;not null;default:'unreconciled'" json:"reconciliation_status"`
	LateFine         LateFineStatus       `gorm:"column:late_fine_status;type:late_fine_status;not null;default:'none'" json:"late_fine_status"`
	Channel          PaymentChannel       `gorm:"size:20;default:'api'" json:"channel"`
	IdempotencyKey   *string              `gorm:"size:100" json:"idempotency_key,omitempty"`
	ProcessingNotes  string               `gorm:"type:text" json:"processing_notes"`
	Metadata         JSONB                `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	CreatedAt        time.Time            `gorm:"default:now();index:idx_payments_company_created" json:"created_at"`
	UpdatedAt        time.Time            `gorm:"default:now()" json:"updated_at"`

	// Relations
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Contract *Contract `gorm:"foreignKey:ContractID" json:"contract,omitempty"`
	Invoice  *Invoice  `gorm:"foreignKey:InvoiceID" json:"invoice,omitempty"`
}

// TableName specifies the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// AppendProcessingNote appends a timestamped line to the processing-notes
// log. Notes are only ever appended, never overwritten.
func (p *Payment) AppendProcessingNote(note string, at time.Time) {
	if strings.TrimSpace(note) == "" {
		return
	}
	line := fmt.Sprintf("[%s] %s", at.UTC().Format(time.RFC3339), note)
	if p.ProcessingNotes == "" {
		p.ProcessingNotes = line
		return
	}
	p.ProcessingNotes = p.ProcessingNotes + "\n" + line
}

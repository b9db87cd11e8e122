package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice represents a billed amount a payment may be recorded against.
type Invoice struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID     uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index" json:"company_id"`
	CustomerID    int64           `gorm:"not null;index" json:"customer_id"`
	ContractID    *int64          `gorm:"index" json:"contract_id,omitempty"`
	InvoiceNumber string          `gorm:"not null;size:30" json:"invoice_number"`
	Type          InvoiceType     `gorm:"column:invoice_type;type:invoice_type;not null;default:'rental'" json:"invoice_type"`
	Status        InvoiceStatus   `gorm:"column:invoice_status;type:invoice_status;not null;default:'draft';index" json:"invoice_status"`
	Priority      Priority        `gorm:"size:10;not null;default:'normal'" json:"priority"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	PaidAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"paid_amount"`
	Currency      Currency        `gorm:"size:3;default:'KWD'" json:"currency"`
	IssueDate     time.Time       `gorm:"not null" json:"issue_date"`
	DueDate       time.Time       `gorm:"not null;index" json:"due_date"`
	CreatedAt     time.Time       `gorm:"default:now()" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"default:now()" json:"updated_at"`

	// Relations
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Contract *Contract `gorm:"foreignKey:ContractID" json:"contract,omitempty"`
}

// TableName specifies the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

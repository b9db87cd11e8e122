package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractStatus represents the lifecycle status of a rental contract
type ContractStatus string

const (
	ContractStatusDraft      ContractStatus = "draft"
	ContractStatusActive     ContractStatus = "active"
	ContractStatusExpired    ContractStatus = "expired"
	ContractStatusTerminated ContractStatus = "terminated"
)

// Contract represents a rental contract whose balance payments are
// allocated against. TotalPaid is a shared counter; every update to it goes
// through a locked row inside a database transaction.
type Contract struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID      uuid.UUID       `gorm:"column:company_id;type:uuid;not null;index" json:"company_id"`
	CustomerID     int64           `gorm:"not null;index" json:"customer_id"`
	ContractNumber string          `gorm:"not null;size:30" json:"contract_number"`
	AssetRef       string          `gorm:"size:50" json:"asset_ref"`
	Status         ContractStatus  `gorm:"size:20;not null;default:'active';index" json:"status"`
	StartDate      time.Time       `gorm:"not null" json:"start_date"`
	EndDate        time.Time       `gorm:"not null" json:"end_date"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	TotalPaid      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_paid"`
	Currency       Currency        `gorm:"size:3;default:'KWD'" json:"currency"`
	CreatedAt      time.Time       `gorm:"default:now()" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"default:now()" json:"updated_at"`

	// Relations
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// TableName specifies the table name for GORM
func (Contract) TableName() string {
	return "contracts"
}

// RemainingBalance returns how much of the contract total is still unpaid.
// Never negative; over-collection shows up as unapplied amount on payments.
func (c *Contract) RemainingBalance() decimal.Decimal {
	remaining := c.TotalAmount.Sub(c.TotalPaid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

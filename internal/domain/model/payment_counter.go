package model

import (
	"fmt"

	"github.com/google/uuid"
)

// PaymentCounter holds the per-company, per-year sequence used to issue
// human-readable payment numbers. The row is locked FOR UPDATE inside the
// payment-creation transaction so concurrent creates never share a number.
type PaymentCounter struct {
	CompanyID uuid.UUID `gorm:"column:company_id;type:uuid;primaryKey" json:"company_id"`
	Year      int       `gorm:"primaryKey" json:"year"`
	LastSeq   int64     `gorm:"not null;default:0" json:"last_seq"`
}

// TableName specifies the table name for GORM
func (PaymentCounter) TableName() string {
	return "payment_counters"
}

// FormatPaymentNumber renders the display number for a sequence value,
// e.g. PAY-2026-000042.
func FormatPaymentNumber(year int, seq int64) string {
	return fmt.Sprintf("PAY-%d-%06d", year, seq)
}

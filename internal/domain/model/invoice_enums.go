package model

import "database/sql/driver"

// InvoiceType classifies what an invoice bills for
type InvoiceType string

const (
	InvoiceTypeRental      InvoiceType = "rental"
	InvoiceTypeSales       InvoiceType = "sales"
	InvoiceTypeService     InvoiceType = "service"
	InvoiceTypeMaintenance InvoiceType = "maintenance"
)

var invoiceTypeNames = map[InvoiceType]string{
	InvoiceTypeRental:      "فاتورة إيجار",
	InvoiceTypeSales:       "فاتورة مبيعات",
	InvoiceTypeService:     "فاتورة خدمات",
	InvoiceTypeMaintenance: "فاتورة صيانة",
}

// Valid reports whether t is one of the known invoice types
func (t InvoiceType) Valid() bool {
	_, ok := invoiceTypeNames[t]
	return ok
}

// DisplayName returns the Arabic display name for the invoice type
func (t InvoiceType) DisplayName() string {
	if name, ok := invoiceTypeNames[t]; ok {
		return name
	}
	return string(t)
}

// Scan implements sql.Scanner interface
func (t *InvoiceType) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = InvoiceType(v)
	case []byte:
		*t = InvoiceType(v)
	default:
		return nil
	}
	return nil
}

// Value implements driver.Valuer interface
func (t InvoiceType) Value() (driver.Value, error) {
	return string(t), nil
}

// InvoiceStatus is the billing lifecycle status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusSent          InvoiceStatus = "sent"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
)

var invoiceStatusNames = map[InvoiceStatus]string{
	InvoiceStatusDraft:         "مسودة",
	InvoiceStatusSent:          "مرسلة",
	InvoiceStatusPartiallyPaid: "مدفوعة جزئياً",
	InvoiceStatusPaid:          "مدفوعة",
	InvoiceStatusOverdue:       "متأخرة",
	InvoiceStatusCancelled:     "ملغاة",
}

// Valid reports whether s is one of the known invoice statuses
func (s InvoiceStatus) Valid() bool {
	_, ok := invoiceStatusNames[s]
	return ok
}

// DisplayName returns the Arabic display name for the invoice status
func (s InvoiceStatus) DisplayName() string {
	if name, ok := invoiceStatusNames[s]; ok {
		return name
	}
	return string(s)
}

// Scan implements sql.Scanner interface
func (s *InvoiceStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = InvoiceStatus(v)
	case []byte:
		*s = InvoiceStatus(v)
	default:
		return nil
	}
	return nil
}

// Value implements driver.Valuer interface
func (s InvoiceStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// Priority orders invoices and reminders for follow-up
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var priorityNames = map[Priority]string{
	PriorityLow:    "منخفضة",
	PriorityNormal: "عادية",
	PriorityHigh:   "مرتفعة",
	PriorityUrgent: "عاجلة",
}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	_, ok := priorityNames[p]
	return ok
}

// DisplayName returns the Arabic display name for the priority
func (p Priority) DisplayName() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return string(p)
}

// Scan implements sql.Scanner interface
func (p *Priority) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*p = Priority(v)
	case []byte:
		*p = Priority(v)
	default:
		return nil
	}
	return nil
}

// Value implements driver.Valuer interface
func (p Priority) Value() (driver.Value, error) {
	return string(p), nil
}

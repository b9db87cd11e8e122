package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a customer the company collects payments from.
// Customer management itself lives outside this service; this model exists
// for existence checks and relations.
type Customer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CompanyID uuid.UUID `gorm:"column:company_id;type:uuid;not null;index" json:"company_id"`
	Name      string    `gorm:"not null;size:200" json:"name"`
	NameAr    string    `gorm:"column:name_ar;size:200" json:"name_ar"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Email     string    `gorm:"size:200" json:"email"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

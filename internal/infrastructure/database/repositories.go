package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	adapterrepo "github.com/fleetcore/payments/internal/adapter/repository"
	"github.com/fleetcore/payments/internal/domain/repository"
)

// Repositories holds all repository instances
type Repositories struct {
	Payment  repository.PaymentRepository
	Customer repository.CustomerRepository
	Contract repository.ContractRepository
	Invoice  repository.InvoiceRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Payment:  adapterrepo.NewPaymentRepository(db, logger),
		Customer: adapterrepo.NewCustomerRepository(db, logger),
		Contract: adapterrepo.NewContractRepository(db, logger),
		Invoice:  adapterrepo.NewInvoiceRepository(db, logger),
	}
}

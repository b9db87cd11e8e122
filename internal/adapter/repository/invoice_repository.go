package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domainErrors "github.com/fleetcore/payments/internal/domain/errors"
	"github.com/fleetcore/payments/internal/domain/model"
	domainRepo "github.com/fleetcore/payments/internal/domain/repository"
)

// invoiceRepository implements the InvoiceRepository interface
type invoiceRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewInvoiceRepository creates a new invoice repository instance
func NewInvoiceRepository(db *gorm.DB, logger *zap.Logger) domainRepo.InvoiceRepository {
	return &invoiceRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves an invoice scoped to the company
func (r *invoiceRepository) GetByID(ctx context.Context, companyID uuid.UUID, id int64) (*model.Invoice, error) {
	var invoice model.Invoice

	err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrInvoiceNotFound
		}
		r.logger.Error("failed to get invoice",
			zap.String("company_id", companyID.String()),
			zap.Int64("invoice_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return &invoice, nil
}

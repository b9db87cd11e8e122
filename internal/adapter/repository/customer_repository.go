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

// customerRepository implements the CustomerRepository interface
type customerRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCustomerRepository creates a new customer repository instance
func NewCustomerRepository(db *gorm.DB, logger *zap.Logger) domainRepo.CustomerRepository {
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a customer scoped to the company
func (r *customerRepository) GetByID(ctx context.Context, companyID uuid.UUID, id int64) (*model.Customer, error) {
	var customer model.Customer

	err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrCustomerNotFound
		}
		r.logger.Error("failed to get customer",
			zap.String("company_id", companyID.String()),
			zap.Int64("customer_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &customer, nil
}

// Exists reports whether an active customer with the given id exists for
// the company
func (r *customerRepository) Exists(ctx context.Context, companyID uuid.UUID, id int64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("company_id = ? AND id = ? AND active = true", companyID, id).
		Count(&count).Error
	if err != nil {
		r.logger.Error("failed to check customer existence",
			zap.String("company_id", companyID.String()),
			zap.Int64("customer_id", id),
			zap.Error(err))
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}

	return count > 0, nil
}

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

// contractRepository implements the ContractRepository interface
type contractRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewContractRepository creates a new contract repository instance
func NewContractRepository(db *gorm.DB, logger *zap.Logger) domainRepo.ContractRepository {
	return &contractRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a contract scoped to the company
func (r *contractRepository) GetByID(ctx context.Context, companyID uuid.UUID, id int64) (*model.Contract, error) {
	var contract model.Contract

	err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrContractNotFound
		}
		r.logger.Error("failed to get contract",
			zap.String("company_id", companyID.String()),
			zap.Int64("contract_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}

	return &contract, nil
}

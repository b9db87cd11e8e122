package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fleetcore/payments/internal/domain/dto"
	domainErrors "github.com/fleetcore/payments/internal/domain/errors"
	"github.com/fleetcore/payments/internal/domain/model"
	domainRepo "github.com/fleetcore/payments/internal/domain/repository"
)

// paymentRepository implements the PaymentRepository interface
type paymentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPaymentRepository creates a new payment repository instance
func NewPaymentRepository(db *gorm.DB, logger *zap.Logger) domainRepo.PaymentRepository {
	return &paymentRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new payment atomically: the idempotency check, the
// payment-number sequence draw and the insert all happen in one database
// transaction. The partial unique index on (company_id, idempotency_key)
// backstops the application check against concurrent creates.
func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if payment.IdempotencyKey != nil && *payment.IdempotencyKey != "" {
			var existing model.Payment
			err := tx.Where("company_id = ? AND idempotency_key = ?", payment.CompanyID, *payment.IdempotencyKey).
				First(&existing).Error
			if err == nil {
				r.logger.Warn("rejected payment create with reused idempotency key",
					zap.String("company_id", payment.CompanyID.String()),
					zap.String("idempotency_key", *payment.IdempotencyKey),
					zap.Int64("existing_payment_id", existing.ID))
				return domainErrors.ErrDuplicateIdempotencyKey
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check idempotency key: %w", err)
			}
		}

		// Lock the company's counter row for this year (or create it) and
		// draw the next sequence value.
		year := payment.PaymentDate.Year()
		var counter model.PaymentCounter
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("company_id = ? AND year = ?", payment.CompanyID, year).
			FirstOrCreate(&counter, model.PaymentCounter{
				CompanyID: payment.CompanyID,
				Year:      year,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to lock payment counter: %w", err)
		}

		counter.LastSeq++
		if err := tx.Save(&counter).Error; err != nil {
			return fmt.Errorf("failed to advance payment counter: %w", err)
		}
		payment.PaymentNumber = model.FormatPaymentNumber(year, counter.LastSeq)

		if err := tx.Create(payment).Error; err != nil {
			// A concurrent create with the same key slips past the read
			// check and trips the unique index instead.
			if strings.Contains(err.Error(), "duplicate key") {
				return domainErrors.ErrDuplicateIdempotencyKey
			}
			return fmt.Errorf("failed to insert payment: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domainErrors.ErrDuplicateIdempotencyKey) {
			return err
		}
		r.logger.Error("failed to create payment",
			zap.String("company_id", payment.CompanyID.String()),
			zap.Error(err))
		return err
	}

	r.logger.Info("payment created",
		zap.String("company_id", payment.CompanyID.String()),
		zap.Int64("payment_id", payment.ID),
		zap.String("payment_number", payment.PaymentNumber),
		zap.String("amount", payment.Amount.String()))
	return nil
}

// GetByID retrieves a payment scoped to the company
func (r *paymentRepository) GetByID(ctx context.Context, companyID uuid.UUID, id int64) (*model.Payment, error) {
	var payment model.Payment

	err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrPaymentNotFound
		}
		r.logger.Error("failed to get payment",
			zap.String("company_id", companyID.String()),
			zap.Int64("payment_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &payment, nil
}

// Update persists the payment's current field values
func (r *paymentRepository) Update(ctx context.Context, payment *model.Payment) error {
	if err := r.db.WithContext(ctx).Save(payment).Error; err != nil {
		r.logger.Error("failed to update payment",
			zap.Int64("payment_id", payment.ID),
			zap.Error(err))
		return fmt.Errorf("failed to update payment: %w", err)
	}
	return nil
}

// List retrieves a company's payments with filters applied
func (r *paymentRepository) List(ctx context.Context, companyID uuid.UUID, filters dto.PaymentFilters) ([]*model.Payment, error) {
	var payments []*model.Payment

	query := r.applyFilters(r.db.WithContext(ctx), companyID, filters).
		Order("created_at DESC").
		Limit(filters.Limit).
		Offset(filters.Offset)

	if err := query.Find(&payments).Error; err != nil {
		r.logger.Error("failed to list payments",
			zap.String("company_id", companyID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return payments, nil
}

// Count counts the payments matching the filters
func (r *paymentRepository) Count(ctx context.Context, companyID uuid.UUID, filters dto.PaymentFilters) (int64, error) {
	var count int64

	query := r.applyFilters(r.db.WithContext(ctx).Model(&model.Payment{}), companyID, filters)
	if err := query.Count(&count).Error; err != nil {
		r.logger.Error("failed to count payments",
			zap.String("company_id", companyID.String()),
			zap.Error(err))
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}

	return count, nil
}

func (r *paymentRepository) applyFilters(query *gorm.DB, companyID uuid.UUID, filters dto.PaymentFilters) *gorm.DB {
	query = query.Where("company_id = ?", companyID)

	if filters.Status != nil {
		query = query.Where("payment_status = ?", *filters.Status)
	}
	if filters.Method != nil {
		query = query.Where("payment_method = ?", *filters.Method)
	}
	if filters.StartDate != nil {
		query = query.Where("payment_date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("payment_date <= ?", *filters.EndDate)
	}

	return query
}

// ListByContract retrieves every payment allocated to a contract
func (r *paymentRepository) ListByContract(ctx context.Context, companyID uuid.UUID, contractID int64) ([]*model.Payment, error) {
	var payments []*model.Payment

	err := r.db.WithContext(ctx).
		Where("company_id = ? AND contract_id = ?", companyID, contractID).
		Order("payment_date DESC").
		Find(&payments).Error
	if err != nil {
		r.logger.Error("failed to list contract payments",
			zap.String("company_id", companyID.String()),
			zap.Int64("contract_id", contractID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list contract payments: %w", err)
	}

	return payments, nil
}

// AllocateToContract applies a payment to a contract balance atomically.
// The contract row is locked FOR UPDATE so concurrent allocations against
// the same contract serialize instead of losing updates to total_paid.
func (r *paymentRepository) AllocateToContract(ctx context.Context, companyID uuid.UUID, paymentID, contractID int64) (*dto.AllocationOutcome, error) {
	var outcome *dto.AllocationOutcome

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var contract model.Contract
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("company_id = ? AND id = ?", companyID, contractID).
			First(&contract).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainErrors.ErrContractNotFound
			}
			return fmt.Errorf("failed to lock contract: %w", err)
		}

		var payment model.Payment
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("company_id = ? AND id = ?", companyID, paymentID).
			First(&payment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainErrors.ErrPaymentNotFound
			}
			return fmt.Errorf("failed to lock payment: %w", err)
		}

		// A payment is allocated exactly once.
		if payment.ContractID != nil {
			return domainErrors.ErrPaymentAlreadyAllocated
		}

		remaining := contract.RemainingBalance()
		status, applied, unapplied := model.DecideAllocation(payment.Amount, remaining)
		if !payment.AllocationStatus.CanAdvanceTo(status) {
			return &domainErrors.AllocationRegressionError{
				From: payment.AllocationStatus,
				To:   status,
			}
		}

		payment.ContractID = &contractID
		payment.AllocationStatus = status
		payment.AppliedAmount = applied
		payment.UnappliedAmount = unapplied
		if err := tx.Save(&payment).Error; err != nil {
			return fmt.Errorf("failed to update payment allocation: %w", err)
		}

		// total_paid grows by the full payment amount even when the payment
		// overshoots the remaining balance; excess is never auto-refunded.
		contract.TotalPaid = contract.TotalPaid.Add(payment.Amount)
		if err := tx.Save(&contract).Error; err != nil {
			return fmt.Errorf("failed to update contract balance: %w", err)
		}

		outcome = &dto.AllocationOutcome{
			Payment:          &payment,
			AllocationStatus: status,
			AppliedAmount:    applied,
			UnappliedAmount:  unapplied,
			ContractPaid:     contract.TotalPaid,
		}
		return nil
	})

	if err != nil {
		r.logger.Error("failed to allocate payment",
			zap.String("company_id", companyID.String()),
			zap.Int64("payment_id", paymentID),
			zap.Int64("contract_id", contractID),
			zap.Error(err))
		return nil, err
	}

	r.logger.Info("payment allocated",
		zap.String("company_id", companyID.String()),
		zap.Int64("payment_id", paymentID),
		zap.Int64("contract_id", contractID),
		zap.String("allocation_status", string(outcome.AllocationStatus)),
		zap.String("applied", outcome.AppliedAmount.String()),
		zap.String("unapplied", outcome.UnappliedAmount.String()),
		zap.String("contract_total_paid", outcome.ContractPaid.String()))
	return outcome, nil
}

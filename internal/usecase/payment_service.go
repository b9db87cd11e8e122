package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fleetcore/payments/internal/domain/dto"
	domainErrors "github.com/fleetcore/payments/internal/domain/errors"
	"github.com/fleetcore/payments/internal/domain/model"
	"github.com/fleetcore/payments/internal/domain/repository"
	"github.com/fleetcore/payments/internal/messaging"
)

// PaymentService handles the payment lifecycle business logic: validation,
// creation, processing, allocation and direct status updates. Retry policy
// is the caller's responsibility; a failed payment is re-armed on the next
// ProcessPayment call.
type PaymentService struct {
	paymentRepo  repository.PaymentRepository
	customerRepo repository.CustomerRepository
	contractRepo repository.ContractRepository
	invoiceRepo  repository.InvoiceRepository
	publisher    messaging.EventPublisher // optional, nil disables events
	logger       *zap.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	customerRepo repository.CustomerRepository,
	contractRepo repository.ContractRepository,
	invoiceRepo repository.InvoiceRepository,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
		contractRepo: contractRepo,
		invoiceRepo:  invoiceRepo,
		logger:       logger,
	}
}

// WithEventPublisher enables lifecycle event publishing. Delivery is best
// effort and never fails the payment operation.
func (s *PaymentService) WithEventPublisher(publisher messaging.EventPublisher) *PaymentService {
	s.publisher = publisher
	return s
}

func (s *PaymentService) publishEvent(ctx context.Context, eventType model.NotificationType, payment *model.Payment) {
	if s.publisher == nil {
		return
	}
	event := messaging.PaymentEvent{
		Type:          eventType,
		CompanyID:     payment.CompanyID.String(),
		PaymentID:     payment.ID,
		PaymentNumber: payment.PaymentNumber,
		Amount:        payment.Amount.String(),
		Currency:      string(payment.Currency),
		OccurredAt:    time.Now(),
	}
	if err := s.publisher.PublishPaymentEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish payment event",
			zap.String("type", string(eventType)),
			zap.Int64("payment_id", payment.ID),
			zap.Error(err))
	}
}

// ValidatePayment runs every validation rule against the request and
// accumulates all failures. It has no side effects.
func (s *PaymentService) ValidatePayment(ctx context.Context, companyID uuid.UUID, req dto.CreatePaymentRequest) (*dto.ValidationResult, error) {
	draft := parseDraft(companyID, req)

	result, err := s.runValidation(ctx, draft)
	if err != nil {
		s.logger.Error("payment validation aborted",
			zap.String("company_id", companyID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to validate payment: %w", err)
	}

	return result, nil
}

// CreatePayment validates the request and inserts a new pending payment.
// A reused (company, idempotency key) pair is rejected with
// ErrDuplicateIdempotencyKey rather than silently deduplicated.
func (s *PaymentService) CreatePayment(ctx context.Context, companyID uuid.UUID, req dto.CreatePaymentRequest) (*model.Payment, error) {
	draft := parseDraft(companyID, req)

	result, err := s.runValidation(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to validate payment: %w", err)
	}
	if !result.Valid {
		s.logger.Warn("payment creation rejected by validation",
			zap.String("company_id", companyID.String()),
			zap.Strings("violations", result.Errors))
		return nil, domainErrors.NewValidationError(result.Errors)
	}

	payment := &model.Payment{
		CompanyID:        companyID,
		CustomerID:       draft.customerID,
		InvoiceID:        req.InvoiceID,
		Amount:           draft.amount,
		Currency:         draft.currency,
		PaymentDate:      draft.paymentDate,
		Method:           draft.method,
		Type:             draft.paymentType,
		Status:           model.PaymentStatusPending,
		ProcessingStatus: model.ProcessingStatusNew,
		TransactionType:  draft.transactionType,
		AllocationStatus: model.AllocationStatusUnallocated,
		Reconciliation:   model.ReconciliationStatusUnreconciled,
		LateFine:         model.LateFineStatusNone,
		Channel:          draft.channel,
		IdempotencyKey:   req.IdempotencyKey,
		Metadata:         model.JSONB{},
	}
	payment.AppendProcessingNote(req.Notes, time.Now())

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	// Allocation at creation time is optional; the contract link is applied
	// through the same atomic path as a standalone allocation.
	if req.ContractID != nil {
		outcome, err := s.paymentRepo.AllocateToContract(ctx, companyID, payment.ID, *req.ContractID)
		if err != nil {
			return nil, fmt.Errorf("payment %s created but allocation failed: %w", payment.PaymentNumber, err)
		}
		payment = outcome.Payment
	}

	return payment, nil
}

// GetPayment retrieves a payment by id
func (s *PaymentService) GetPayment(ctx context.Context, companyID uuid.UUID, id int64) (*model.Payment, error) {
	return s.paymentRepo.GetByID(ctx, companyID, id)
}

// ListPayments retrieves a company's payments with pagination and filters
func (s *PaymentService) ListPayments(ctx context.Context, companyID uuid.UUID, filters dto.PaymentFilters) (*dto.PaymentListResponse, error) {
	filters.SetDefaults()

	payments, err := s.paymentRepo.List(ctx, companyID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	total, err := s.paymentRepo.Count(ctx, companyID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to count payments: %w", err)
	}

	return &dto.PaymentListResponse{
		Payments: payments,
		Pagination: dto.PaginationInfo{
			Total:   total,
			Limit:   filters.Limit,
			Offset:  filters.Offset,
			HasMore: int64(filters.Offset+filters.Limit) < total,
		},
	}, nil
}

// ListContractPayments retrieves every payment allocated to a contract
func (s *PaymentService) ListContractPayments(ctx context.Context, companyID uuid.UUID, contractID int64) ([]*model.Payment, error) {
	if _, err := s.contractRepo.GetByID(ctx, companyID, contractID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByContract(ctx, companyID, contractID)
}

// ProcessPayment drives a payment from pending/new through to completed,
// advancing the processing status at each step. There is no built-in
// backoff or retry counter; on failure the caller retries and a failed
// payment is re-armed to pending first. A payment left in processing by an
// interrupted run resumes at the completion step.
func (s *PaymentService) ProcessPayment(ctx context.Context, companyID uuid.UUID, id int64) (*model.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	switch payment.Status {
	case model.PaymentStatusCompleted:
		// Nothing left to drive.
		return payment, nil
	case model.PaymentStatusFailed:
		if err := s.applyStatusChange(payment, statusPtr(model.PaymentStatusPending), processingPtr(model.ProcessingStatusNew), "re-armed for retry", now); err != nil {
			return nil, err
		}
		if err := s.paymentRepo.Update(ctx, payment); err != nil {
			return nil, err
		}
	case model.PaymentStatusPending:
		// Normal entry point.
	case model.PaymentStatusProcessing:
		// An earlier run committed the processing step but never reached
		// completion; resume there instead of rejecting the retry.
	default:
		return nil, domainErrors.NewInvalidPaymentStatusTransition(payment.Status, model.PaymentStatusProcessing)
	}

	s.logger.Info("processing payment",
		zap.String("company_id", companyID.String()),
		zap.Int64("payment_id", payment.ID),
		zap.String("payment_number", payment.PaymentNumber))

	if payment.Status == model.PaymentStatusPending {
		// Step 1: validation pass.
		if err := s.applyStatusChange(payment, nil, processingPtr(model.ProcessingStatusValidating), "validation started", now); err != nil {
			return nil, err
		}
		if err := s.paymentRepo.Update(ctx, payment); err != nil {
			return nil, s.markProcessingFailed(ctx, payment, err)
		}
		var violations []string
		if !payment.Amount.IsPositive() {
			violations = append(violations, "Payment amount must be positive")
		}
		if !payment.Method.Valid() {
			violations = append(violations, "Payment method is not recognized")
		}
		if len(violations) > 0 {
			return nil, s.markProcessingFailed(ctx, payment, domainErrors.NewValidationError(violations))
		}

		// Step 2: move both statuses into processing.
		if err := s.applyStatusChange(payment, statusPtr(model.PaymentStatusProcessing), processingPtr(model.ProcessingStatusProcessing), "", now); err != nil {
			return nil, err
		}
		if err := s.paymentRepo.Update(ctx, payment); err != nil {
			return nil, s.markProcessingFailed(ctx, payment, err)
		}
	}

	// Step 3: complete.
	if err := s.applyStatusChange(payment, statusPtr(model.PaymentStatusCompleted), processingPtr(model.ProcessingStatusCompleted), "payment completed", now); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, s.markProcessingFailed(ctx, payment, err)
	}

	s.logger.Info("payment completed",
		zap.String("company_id", companyID.String()),
		zap.Int64("payment_id", payment.ID),
		zap.String("payment_number", payment.PaymentNumber),
		zap.String("amount", payment.Amount.String()))
	s.publishEvent(ctx, model.NotificationTypePaymentReceived, payment)
	return payment, nil
}

// markProcessingFailed records the failure on the payment (best effort) and
// returns the original cause for the caller to retry on.
func (s *PaymentService) markProcessingFailed(ctx context.Context, payment *model.Payment, cause error) error {
	now := time.Now()

	if payment.Status.CanTransitionTo(model.PaymentStatusFailed) {
		payment.Status = model.PaymentStatusFailed
	}
	if payment.ProcessingStatus.CanTransitionTo(model.ProcessingStatusFailed) {
		payment.ProcessingStatus = model.ProcessingStatusFailed
	}
	payment.AppendProcessingNote(fmt.Sprintf("processing failed: %v", cause), now)

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		s.logger.Error("failed to record payment failure",
			zap.Int64("payment_id", payment.ID),
			zap.Error(err))
	}

	s.logger.Error("payment processing failed",
		zap.Int64("payment_id", payment.ID),
		zap.String("payment_number", payment.PaymentNumber),
		zap.Error(cause))
	s.publishEvent(ctx, model.NotificationTypePaymentFailed, payment)
	return fmt.Errorf("failed to process payment %s: %w", payment.PaymentNumber, cause)
}

// UpdatePaymentStatus applies a direct status change after validating it
// against the transition tables. Notes are appended to the processing log,
// never overwritten. An illegal transition leaves the stored status
// untouched.
func (s *PaymentService) UpdatePaymentStatus(ctx context.Context, companyID uuid.UUID, id int64, req dto.UpdatePaymentStatusRequest) (*model.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	var newStatus *model.PaymentStatus
	if req.PaymentStatus != nil {
		status := model.PaymentStatus(*req.PaymentStatus)
		if !status.Valid() {
			return nil, fmt.Errorf("unknown payment status: %q", *req.PaymentStatus)
		}
		newStatus = &status
	}

	var newProcessing *model.ProcessingStatus
	if req.ProcessingStatus != nil {
		status := model.ProcessingStatus(*req.ProcessingStatus)
		if !status.Valid() {
			return nil, fmt.Errorf("unknown processing status: %q", *req.ProcessingStatus)
		}
		newProcessing = &status
	}

	if err := s.applyStatusChange(payment, newStatus, newProcessing, req.Notes, time.Now()); err != nil {
		s.logger.Warn("rejected payment status update",
			zap.String("company_id", companyID.String()),
			zap.Int64("payment_id", id),
			zap.Error(err))
		return nil, err
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// AllocatePayment links a payment to a contract and applies it against the
// contract's remaining balance. Both writes commit in one transaction.
func (s *PaymentService) AllocatePayment(ctx context.Context, companyID uuid.UUID, paymentID, contractID int64) (*dto.AllocationOutcome, error) {
	outcome, err := s.paymentRepo.AllocateToContract(ctx, companyID, paymentID, contractID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment allocated to contract",
		zap.String("company_id", companyID.String()),
		zap.Int64("payment_id", paymentID),
		zap.Int64("contract_id", contractID),
		zap.String("allocation_status", string(outcome.AllocationStatus)))
	return outcome, nil
}

// applyStatusChange validates the requested transitions against the allowed
// tables and mutates the payment in memory. Nothing is persisted here; on
// error the payment's stored state is untouched.
func (s *PaymentService) applyStatusChange(payment *model.Payment, newStatus *model.PaymentStatus, newProcessing *model.ProcessingStatus, notes string, now time.Time) error {
	if newStatus != nil && *newStatus != payment.Status {
		if !payment.Status.CanTransitionTo(*newStatus) {
			return domainErrors.NewInvalidPaymentStatusTransition(payment.Status, *newStatus)
		}
	}
	if newProcessing != nil && *newProcessing != payment.ProcessingStatus {
		if !payment.ProcessingStatus.CanTransitionTo(*newProcessing) {
			return domainErrors.NewInvalidProcessingStatusTransition(payment.ProcessingStatus, *newProcessing)
		}
	}

	if newStatus != nil {
		payment.Status = *newStatus
	}
	if newProcessing != nil {
		payment.ProcessingStatus = *newProcessing
	}
	payment.AppendProcessingNote(notes, now)
	return nil
}

func statusPtr(s model.PaymentStatus) *model.PaymentStatus { return &s }

func processingPtr(s model.ProcessingStatus) *model.ProcessingStatus { return &s }

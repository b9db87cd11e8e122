package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleetcore/payments/internal/domain/dto"
	domainErrors "github.com/fleetcore/payments/internal/domain/errors"
	"github.com/fleetcore/payments/internal/domain/model"
)

// paymentDraft holds the parsed form of a creation request so validation
// rules can test values instead of re-parsing strings.
type paymentDraft struct {
	companyID       uuid.UUID
	customerID      int64
	invoiceID       *int64
	amount          decimal.Decimal
	amountParsed    bool
	paymentDate     time.Time
	dateParsed      bool
	method          model.PaymentMethod
	paymentType     model.PaymentType
	transactionType model.TransactionType
	currency        model.Currency
	channel         model.PaymentChannel
}

// acceptedDateLayouts are the payment_date formats callers may send.
var acceptedDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDraft(companyID uuid.UUID, req dto.CreatePaymentRequest) *paymentDraft {
	draft := &paymentDraft{
		companyID:       companyID,
		customerID:      req.CustomerID,
		invoiceID:       req.InvoiceID,
		method:          model.PaymentMethod(req.PaymentMethod),
		paymentType:     model.PaymentType(req.PaymentType),
		transactionType: model.TransactionType(req.TransactionType),
		currency:        model.Currency(req.Currency),
		channel:         model.PaymentChannel(req.Channel),
	}

	if amount, err := decimal.NewFromString(req.Amount); err == nil {
		draft.amount = amount
		draft.amountParsed = true
	}
	for _, layout := range acceptedDateLayouts {
		if date, err := time.Parse(layout, req.PaymentDate); err == nil {
			draft.paymentDate = date
			draft.dateParsed = true
			break
		}
	}

	// Optional fields fall back to their defaults before the enum rules run.
	if req.PaymentType == "" {
		draft.paymentType = model.PaymentTypeOther
	}
	if req.TransactionType == "" {
		draft.transactionType = model.TransactionTypeReceipt
	}
	if req.Currency == "" {
		draft.currency = model.CurrencyKWD
	}
	if req.Channel == "" {
		draft.channel = model.PaymentChannelAPI
	}

	return draft
}

// validationRule pairs a predicate with the human-readable message appended
// when it fails. Rules are evaluated in order and all failures accumulate;
// validation never short-circuits on the first violation.
type validationRule struct {
	check   func(ctx context.Context, s *PaymentService, d *paymentDraft) (bool, error)
	message string
}

var paymentValidationRules = []validationRule{
	{
		check: func(_ context.Context, _ *PaymentService, d *paymentDraft) (bool, error) {
			return d.amountParsed && d.amount.IsPositive(), nil
		},
		message: "Payment amount must be positive",
	},
	{
		check: func(ctx context.Context, s *PaymentService, d *paymentDraft) (bool, error) {
			if d.customerID == 0 {
				return false, nil
			}
			return s.customerRepo.Exists(ctx, d.companyID, d.customerID)
		},
		message: "Customer not found",
	},
	{
		// The invoice reference is optional, but a present one must exist.
		check: func(ctx context.Context, s *PaymentService, d *paymentDraft) (bool, error) {
			if d.invoiceID == nil {
				return true, nil
			}
			if _, err := s.invoiceRepo.GetByID(ctx, d.companyID, *d.invoiceID); err != nil {
				if errors.Is(err, domainErrors.ErrInvoiceNotFound) {
					return false, nil
				}
				return false, err
			}
			return true, nil
		},
		message: "Invoice not found",
	},
	{
		check: func(_ context.Context, _ *PaymentService, d *paymentDraft) (bool, error) {
			return d.dateParsed, nil
		},
		message: "Payment date is not a valid date",
	},
	{
		check: func(_ context.Context, _ *PaymentService, d *paymentDraft) (bool, error) {
			return d.method.Valid(), nil
		},
		message: "Payment method is not recognized",
	},
	{
		check: func(_ context.Context, _ *PaymentService, d *paymentDraft) (bool, error) {
			return d.paymentType.Valid(), nil
		},
		message: "Payment type is not recognized",
	},
	{
		check: func(_ context.Context, _ *PaymentService, d *paymentDraft) (bool, error) {
			return d.transactionType.Valid(), nil
		},
		message: "Transaction type is not recognized",
	},
	{
		check: func(_ context.Context, _ *PaymentService, d *paymentDraft) (bool, error) {
			return d.currency.Valid(), nil
		},
		message: "Currency is not supported",
	},
	{
		check: func(_ context.Context, _ *PaymentService, d *paymentDraft) (bool, error) {
			return d.channel.Valid(), nil
		},
		message: "Payment channel is not recognized",
	},
}

// runValidation evaluates every rule against the draft and accumulates the
// failures. A storage error from a predicate aborts validation entirely;
// it is a backend failure, not a rule violation.
func (s *PaymentService) runValidation(ctx context.Context, draft *paymentDraft) (*dto.ValidationResult, error) {
	var violations []string
	for _, rule := range paymentValidationRules {
		ok, err := rule.check(ctx, s, draft)
		if err != nil {
			return nil, err
		}
		if !ok {
			violations = append(violations, rule.message)
		}
	}

	return &dto.ValidationResult{
		Valid:  len(violations) == 0,
		Errors: violations,
	}, nil
}

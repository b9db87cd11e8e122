package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetcore/payments/internal/domain/model"
)

func TestPaymentMethodValid(t *testing.T) {
	for _, method := range []model.PaymentMethod{
		model.PaymentMethodCash,
		model.PaymentMethodCheck,
		model.PaymentMethodBankTransfer,
		model.PaymentMethodCreditCard,
		model.PaymentMethodDebitCard,
		model.PaymentMethodDigitalWallet,
	} {
		assert.True(t, method.Valid(), string(method))
	}

	assert.False(t, model.PaymentMethod("barter").Valid())
	assert.False(t, model.PaymentMethod("").Valid())
	assert.False(t, model.PaymentMethod("CASH").Valid())
}

func TestPaymentTypeValid(t *testing.T) {
	assert.True(t, model.PaymentTypeRentalPayment.Valid())
	assert.True(t, model.PaymentTypeSecurityDeposit.Valid())
	assert.True(t, model.PaymentTypeOther.Valid())
	assert.False(t, model.PaymentType("subscription").Valid())
}

func TestDisplayNames(t *testing.T) {
	assert.Equal(t, "نقداً", model.PaymentMethodCash.DisplayName())
	assert.Equal(t, "دفعة إيجار", model.PaymentTypeRentalPayment.DisplayName())

	// Unknown values fall back to the raw string.
	assert.Equal(t, "barter", model.PaymentMethod("barter").DisplayName())
}

func TestEnumScanAndValue(t *testing.T) {
	var method model.PaymentMethod
	assert.NoError(t, method.Scan("bank_transfer"))
	assert.Equal(t, model.PaymentMethodBankTransfer, method)

	assert.NoError(t, method.Scan([]byte("cash")))
	assert.Equal(t, model.PaymentMethodCash, method)

	value, err := model.PaymentStatusPending.Value()
	assert.NoError(t, err)
	assert.Equal(t, "pending", value)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, model.PaymentStatusPending.Valid())
	assert.True(t, model.PaymentStatusReversed.Valid())
	assert.False(t, model.PaymentStatus("settled").Valid())

	assert.True(t, model.ProcessingStatusValidating.Valid())
	assert.False(t, model.ProcessingStatus("queued").Valid())

	assert.True(t, model.TransactionTypeReceipt.Valid())
	assert.True(t, model.TransactionTypeDisbursement.Valid())
	assert.False(t, model.TransactionType("transfer").Valid())
}

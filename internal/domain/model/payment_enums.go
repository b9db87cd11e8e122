package model

import "database/sql/driver"

// PaymentMethod represents how the money was received
type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "cash"
	PaymentMethodCheck         PaymentMethod = "check"
	PaymentMethodBankTransfer  PaymentMethod = "bank_transfer"
	PaymentMethodCreditCard    PaymentMethod = "credit_card"
	PaymentMethodDebitCard     PaymentMethod = "debit_card"
	PaymentMethodDigitalWallet PaymentMethod = "digital_wallet"
)

var paymentMethodNames = map[PaymentMethod]string{
	PaymentMethodCash:          "نقداً",
	PaymentMethodCheck:         "شيك",
	PaymentMethodBankTransfer:  "حوالة بنكية",
	PaymentMethodCreditCard:    "بطاقة ائتمان",
	PaymentMethodDebitCard:     "بطاقة سحب",
	PaymentMethodDigitalWallet: "محفظة إلكترونية",
}

// Valid reports whether m is one of the known payment methods
func (m PaymentMethod) Valid() bool {
	_, ok := paymentMethodNames[m]
	return ok
}

// DisplayName returns the Arabic display name for the payment method
func (m PaymentMethod) DisplayName() string {
	if name, ok := paymentMethodNames[m]; ok {
		return name
	}
	return string(m)
}

// Scan implements sql.Scanner interface
func (m *PaymentMethod) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*m = PaymentMethod(v)
	case []byte:
		*m = PaymentMethod(v)
	default:
		return nil
	}
	return nil
}

// Value implements driver.Valuer interface
func (m PaymentMethod) Value() (driver.Value, error) {
	return string(m), nil
}

// PaymentType classifies what the payment is for
type PaymentType string

const (
	PaymentTypeRentalPayment   PaymentType = "rental_payment"
	PaymentTypeSecurityDeposit PaymentType = "security_deposit"
	PaymentTypeViolationFine   PaymentType = "violation_fine"
	PaymentTypeMaintenanceFee  PaymentType = "maintenance_fee"
	PaymentTypeInsuranceFee    PaymentType = "insurance_fee"
	PaymentTypeLateFine        PaymentType = "late_fine"
	PaymentTypeOther           PaymentType = "other"
)

var paymentTypeNames = map[PaymentType]string{
	PaymentTypeRentalPayment:   "دفعة إيجار",
	PaymentTypeSecurityDeposit: "تأمين",
	PaymentTypeViolationFine:   "غرامة مخالفة",
	PaymentTypeMaintenanceFee:  "رسوم صيانة",
	PaymentTypeInsuranceFee:    "رسوم تأمين",
	PaymentTypeLateFine:        "غرامة تأخير",
	PaymentTypeOther:           "أخرى",
}

// Valid reports whether t is one of the known payment types
func (t PaymentType) Valid() bool {
	_, ok := paymentTypeNames[t]
	return ok
}

// DisplayName returns the Arabic display name for the payment type
func (t PaymentType) DisplayName() string {
	if name, ok := paymentTypeNames[t]; ok {
		return name
	}
	return string(t)
}

// Scan implements sql.Scanner interface
func (t *PaymentType) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = PaymentType(v)
	case []byte:
		*t = PaymentType(v)
	default:
		return nil
	}
	return nil
}

// Value implements driver.Valuer interface
func (t PaymentType) Value() (driver.Value, error) {
	return string(t), nil
}

// PaymentStatus is the coarse, customer-facing lifecycle status of a payment
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
	PaymentStatusVoided     PaymentStatus = "voided"
	PaymentStatusReversed   PaymentStatus = "reversed"
)

var paymentStatusNames = map[PaymentStatus]string{
	PaymentStatusPending:    "قيد الانتظار",
	PaymentStatusProcessing: "قيد المعالجة",
	PaymentStatusCompleted:  "مكتملة",
	PaymentStatusFailed:     "فاشلة",
	PaymentStatusCancelled:  "ملغاة",
	PaymentStatusVoided:     "مبطلة",
	PaymentStatusReversed:   "معكوسة",
}

// Valid reports whether s is one of the known payment statuses
func (s PaymentStatus) Valid() bool {
	_, ok := paymentStatusNames[s]
	return ok
}

// DisplayName returns the Arabic display name for the payment status
func (s PaymentStatus) DisplayName() string {
	if name, ok := paymentStatusNames[s]; ok {
		return name
	}
	return string(s)
}

// Scan implements sql.Scanner interface
func (s *PaymentStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(v)
	default:
		return nil
	}
	return nil
}

// Value implements driver.Valuer interface
func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// ProcessingStatus is the fine-grained internal progress marker, distinct
// from the coarser PaymentStatus
type ProcessingStatus string

const (
	ProcessingStatusNew        ProcessingStatus = "new"
	ProcessingStatusValidating ProcessingStatus = "validating"
	ProcessingStatusProcessing ProcessingStatus = "processing"
	ProcessingStatusCompleted  ProcessingStatus = "completed"
	ProcessingStatusFailed     ProcessingStatus = "failed"
)

var processingStatusNames = map[ProcessingStatus]string{
	ProcessingStatusNew:        "جديدة",
	ProcessingStatusValidating: "قيد التحقق",
	ProcessingStatusProcessing: "قيد المعالجة",
	ProcessingStatusCompleted:  "مكتملة",
	ProcessingStatusFailed:     "فاشلة",
}

// Valid reports whether s is one of the known processing statuses
func (s ProcessingStatus) Valid() bool {
	_, ok := processingStatusNames[s]
	return ok
}

// DisplayName returns the Arabic display name for the processing status
func (s ProcessingStatus) DisplayName() string {
	if name, ok := processingStatusNames[s]; ok {
		return name
	}
	return string(s)
}

// Scan implements sql.Scanner interface
func (s *ProcessingStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = ProcessingStatus(v)
	case []byte:
		*s = ProcessingStatus(v)
	default:
		return nil
	}
	return nil
}

// Value implements driver.Valuer interface
func (s ProcessingStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// TransactionType represents the direction of the money movement
type TransactionType string

const (
	TransactionTypeReceipt      TransactionType = "receipt"
	TransactionTypeDisbursement TransactionType = "disbursement"
	TransactionTypeRefund       TransactionType = "refund"
	TransactionTypeAdjustment   TransactionType = "adjustment"
)

var transactionTypeNames = map[TransactionType]string{
	TransactionTypeReceipt:      "قبض",
	TransactionTypeDisbursement: "صرف",
	TransactionTypeRefund:       "استرداد",
	TransactionTypeAdjustment:   "تسوية",
}

// Valid reports whether t is one of the known transaction types
func (t TransactionType) Valid() bool {
	_, ok := transactionTypeNames[t]
	return ok
}

// DisplayName returns the Arabic display name for the transaction type
func (t TransactionType) DisplayName() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return string(t)
}

// Scan implements sql.Scanner interface
func (t *TransactionType) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TransactionType(v)
	case []byte:
		*t = TransactionType(v)
	default:
		return nil
	}
	return nil
}

// Value implements driver.Valuer interface
func (t TransactionType) Value() (driver.Value, error) {
	return string(t), nil
}

// AllocationStatus tracks how much of a payment has been applied to a
// contract balance. It only ever moves forward:
// unallocated -> partially_allocated -> fully_allocated.
type AllocationStatus string

const (
	AllocationStatusUnallocated        AllocationStatus = "unallocated"
	AllocationStatusPartiallyAllocated AllocationStatus = "partially_allocated"
	AllocationStatusFullyAllocated     AllocationStatus = "fully_allocated"
)

var allocationStatusNames = map[AllocationStatus]string{
	AllocationStatusUnallocated:        "غير مخصصة",
	AllocationStatusPartiallyAllocated: "مخصصة جزئياً",
	AllocationStatusFullyAllocated:     "مخصصة بالكامل",
}

var allocationStatusRank = map[AllocationStatus]int{
	AllocationStatusUnallocated:        0,
	AllocationStatusPartiallyAllocated: 1,
	AllocationStatusFullyAllocated:     2,
}

// Valid reports whether s is one of the known allocation statuses
func (s AllocationStatus) Valid() bool {
	_, ok := allocationStatusNames[s]
	return ok
}

// DisplayName returns the Arabic display name for the allocation status
func (s AllocationStatus) DisplayName() string {
	if name, ok := allocationStatusNames[s]; ok {
		return name
	}
	return string(s)
}

// CanAdvanceTo reports whether moving from s to next respects the
// monotonic allocation ordering.
func (s AllocationStatus) CanAdvanceTo(next AllocationStatus) bool {
	from, ok := allocationStatusRank[s]
	if !ok {
		return false
	}
	to, ok := allocationStatusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// Scan implements sql.Scanner interface
func (s *AllocationStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = AllocationStatus(v)
	case []byte:
		*s = AllocationStatus(v)
	default:
		return nil
	}
	return nil
}

// Value implements driver.Valuer interface
func (s AllocationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// ReconciliationStatus tracks matching against bank statements
type ReconciliationStatus string

const (
	ReconciliationStatusUnreconciled ReconciliationStatus = "unreconciled"
	ReconciliationStatusMatched      ReconciliationStatus = "matched"
	ReconciliationStatusReconciled   ReconciliationStatus = "reconciled"
	ReconciliationStatusDiscrepancy  ReconciliationStatus = "discrepancy"
)

var reconciliationStatusNames = map[ReconciliationStatus]string{
	ReconciliationStatusUnreconciled: "غير مطابقة",
	ReconciliationStatusMatched:      "مطابقة مبدئياً",
	ReconciliationStatusReconciled:   "مطابقة",
	ReconciliationStatusDiscrepancy:  "يوجد فرق",
}

// Valid reports whether s is one of the known reconciliation statuses
func (s ReconciliationStatus) Valid() bool {
	_, ok := reconciliationStatusNames[s]
	return ok
}

// DisplayName returns the Arabic display name for the reconciliation status
func (s ReconciliationStatus) DisplayName() string {
	if name, ok := reconciliationStatusNames[s]; ok {
		return name
	}
	return string(s)
}

// Scan implements sql.Scanner interface
func (s *ReconciliationStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = ReconciliationStatus(v)
	case []byte:
		*s = ReconciliationStatus(v)
	default:
		return nil
	}
	return nil
}

// Value implements driver.Valuer interface
func (s ReconciliationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// LateFineStatus tracks the late-fine handling for a payment
type LateFineStatus string

const (
	LateFineStatusNone    LateFineStatus = "none"
	LateFineStatusPending LateFineStatus = "pending"
	LateFineStatusApplied LateFineStatus = "applied"
	LateFineStatusWaived  LateFineStatus = "waived"
	LateFineStatusPaid    LateFineStatus = "paid"
)

var lateFineStatusNames = map[LateFineStatus]string{
	LateFineStatusNone:    "لا يوجد",
	LateFineStatusPending: "قيد الانتظار",
	LateFineStatusApplied: "مطبقة",
	LateFineStatusWaived:  "معفاة",
	LateFineStatusPaid:    "مدفوعة",
}

// Valid reports whether s is one of the known late-fine statuses
func (s LateFineStatus) Valid() bool {
	_, ok := lateFineStatusNames[s]
	return ok
}

// DisplayName returns the Arabic display name for the late-fine status
func (s LateFineStatus) DisplayName() string {
	if name, ok := lateFineStatusNames[s]; ok {
		return name
	}
	return string(s)
}

// Scan implements sql.Scanner interface
func (s *LateFineStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = LateFineStatus(v)
	case []byte:
		*s = LateFineStatus(v)
	default:
		return nil
	}
	return nil
}

// Value implements driver.Valuer interface
func (s LateFineStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// PaymentChannel records where the payment was captured
type PaymentChannel string

const (
	PaymentChannelBranch PaymentChannel = "branch"
	PaymentChannelWeb    PaymentChannel = "web"
	PaymentChannelMobile PaymentChannel = "mobile"
	PaymentChannelAPI    PaymentChannel = "api"
)

var paymentChannelNames = map[PaymentChannel]string{
	PaymentChannelBranch: "الفرع",
	PaymentChannelWeb:    "الموقع الإلكتروني",
	PaymentChannelMobile: "تطبيق الجوال",
	PaymentChannelAPI:    "واجهة برمجية",
}

// Valid reports whether c is one of the known payment channels
func (c PaymentChannel) Valid() bool {
	_, ok := paymentChannelNames[c]
	return ok
}

// DisplayName returns the Arabic display name for the payment channel
func (c PaymentChannel) DisplayName() string {
	if name, ok := paymentChannelNames[c]; ok {
		return name
	}
	return string(c)
}

// Scan implements sql.Scanner interface
func (c *PaymentChannel) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*c = PaymentChannel(v)
	case []byte:
		*c = PaymentChannel(v)
	default:
		return nil
	}
	return nil
}

// Value implements driver.Valuer interface
func (c PaymentChannel) Value() (driver.Value, error) {
	return string(c), nil
}

// Currency is the ISO 4217 currency of a money amount
type Currency string

const (
	CurrencyKWD Currency = "KWD"
	CurrencySAR Currency = "SAR"
	CurrencyAED Currency = "AED"
	CurrencyQAR Currency = "QAR"
	CurrencyUSD Currency = "USD"
)

var currencyNames = map[Currency]string{
	CurrencyKWD: "دينار كويتي",
	CurrencySAR: "ريال سعودي",
	CurrencyAED: "درهم إماراتي",
	CurrencyQAR: "ريال قطري",
	CurrencyUSD: "دولار أمريكي",
}

// Valid reports whether c is one of the supported currencies
func (c Currency) Valid() bool {
	_, ok := currencyNames[c]
	return ok
}

// DisplayName returns the Arabic display name for the currency
func (c Currency) DisplayName() string {
	if name, ok := currencyNames[c]; ok {
		return name
	}
	return string(c)
}

// Scan implements sql.Scanner interface
func (c *Currency) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*c = Currency(v)
	case []byte:
		*c = Currency(v)
	default:
		return nil
	}
	return nil
}

// Value implements driver.Valuer interface
func (c Currency) Value() (driver.Value, error) {
	return string(c), nil
}

// NotificationType classifies outbound payment notifications. The
// notification delivery itself lives outside this service.
type NotificationType string

const (
	NotificationTypePaymentReceived NotificationType = "payment_received"
	NotificationTypePaymentDue      NotificationType = "payment_due"
	NotificationTypePaymentOverdue  NotificationType = "payment_overdue"
	NotificationTypePaymentFailed   NotificationType = "payment_failed"
)

var notificationTypeNames = map[NotificationType]string{
	NotificationTypePaymentReceived: "تم استلام الدفعة",
	NotificationTypePaymentDue:      "دفعة مستحقة",
	NotificationTypePaymentOverdue:  "دفعة متأخرة",
	NotificationTypePaymentFailed:   "فشل الدفعة",
}

// Valid reports whether n is one of the known notification types
func (n NotificationType) Valid() bool {
	_, ok := notificationTypeNames[n]
	return ok
}

// DisplayName returns the Arabic display name for the notification type
func (n NotificationType) DisplayName() string {
	if name, ok := notificationTypeNames[n]; ok {
		return name
	}
	return string(n)
}

// PaymentErrorCode classifies payment operation failures for API consumers
type PaymentErrorCode string

const (
	PaymentErrorValidationFailed  PaymentErrorCode = "validation_failed"
	PaymentErrorDuplicatePayment  PaymentErrorCode = "duplicate_payment"
	PaymentErrorInvalidTransition PaymentErrorCode = "invalid_transition"
	PaymentErrorCustomerNotFound  PaymentErrorCode = "customer_not_found"
	PaymentErrorContractNotFound  PaymentErrorCode = "contract_not_found"
	PaymentErrorPaymentNotFound   PaymentErrorCode = "payment_not_found"
	PaymentErrorStorageFailure    PaymentErrorCode = "storage_failure"
)

var paymentErrorNames = map[PaymentErrorCode]string{
	PaymentErrorValidationFailed:  "فشل التحقق من البيانات",
	PaymentErrorDuplicatePayment:  "دفعة مكررة",
	PaymentErrorInvalidTransition: "انتقال حالة غير صالح",
	PaymentErrorCustomerNotFound:  "العميل غير موجود",
	PaymentErrorContractNotFound:  "العقد غير موجود",
	PaymentErrorPaymentNotFound:   "الدفعة غير موجودة",
	PaymentErrorStorageFailure:    "خطأ في قاعدة البيانات",
}

// Valid reports whether e is one of the known payment error codes
func (e PaymentErrorCode) Valid() bool {
	_, ok := paymentErrorNames[e]
	return ok
}

// DisplayName returns the Arabic display name for the payment error code
func (e PaymentErrorCode) DisplayName() string {
	if name, ok := paymentErrorNames[e]; ok {
		return name
	}
	return string(e)
}

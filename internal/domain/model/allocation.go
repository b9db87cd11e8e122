package model

import "github.com/shopspring/decimal"

// DecideAllocation resolves how a payment amount applies against a
// contract's remaining balance. When the amount covers the remaining
// balance the payment is fully allocated and the excess stays on the
// payment as unapplied; it is never refunded automatically. The contract's
// total_paid always grows by the full payment amount.
func DecideAllocation(amount, remaining decimal.Decimal) (status AllocationStatus, applied, unapplied decimal.Decimal) {
	if amount.GreaterThanOrEqual(remaining) {
		return AllocationStatusFullyAllocated, remaining, amount.Sub(remaining)
	}
	return AllocationStatusPartiallyAllocated, amount, decimal.Zero
}

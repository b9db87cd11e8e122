package model

// paymentStatusTransitions is the allowed-transition table for PaymentStatus.
// A payment only reaches completed through processing; cancelled, voided and
// reversed are administrative actions on a completed payment, except that a
// pending payment may still be cancelled before processing starts. A failed
// payment can be re-armed to pending so the caller can retry.
var paymentStatusTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:    {PaymentStatusProcessing, PaymentStatusFailed, PaymentStatusCancelled},
	PaymentStatusProcessing: {PaymentStatusCompleted, PaymentStatusFailed},
	PaymentStatusCompleted:  {PaymentStatusCancelled, PaymentStatusVoided, PaymentStatusReversed},
	PaymentStatusFailed:     {PaymentStatusPending},
	PaymentStatusCancelled:  {},
	PaymentStatusVoided:     {},
	PaymentStatusReversed:   {},
}

// CanTransitionTo reports whether the transition from s to next is allowed.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range paymentStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s PaymentStatus) IsTerminal() bool {
	return len(paymentStatusTransitions[s]) == 0
}

// processingStatusTransitions is the allowed-transition table for the
// fine-grained ProcessingStatus. failed -> new re-arms a retry.
var processingStatusTransitions = map[ProcessingStatus][]ProcessingStatus{
	ProcessingStatusNew:        {ProcessingStatusValidating, ProcessingStatusFailed},
	ProcessingStatusValidating: {ProcessingStatusProcessing, ProcessingStatusFailed},
	ProcessingStatusProcessing: {ProcessingStatusCompleted, ProcessingStatusFailed},
	ProcessingStatusCompleted:  {},
	ProcessingStatusFailed:     {ProcessingStatusNew},
}

// CanTransitionTo reports whether the transition from s to next is allowed.
func (s ProcessingStatus) CanTransitionTo(next ProcessingStatus) bool {
	for _, allowed := range processingStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s ProcessingStatus) IsTerminal() bool {
	return len(processingStatusTransitions[s]) == 0
}

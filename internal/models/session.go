package models

import (
	"time"
)

// SessionState is the lifecycle position of a confirmation session.
type SessionState string

const (
	SessionAwaitingPin SessionState = "AWAITING_PIN"
	SessionCommitting  SessionState = "COMMITTING"
	SessionSucceeded   SessionState = "SUCCEEDED"
	SessionFailed      SessionState = "FAILED"
	SessionCancelled   SessionState = "CANCELLED"
)

// ConfirmationSession is one in-flight transaction attempt. The pin buffer is
// transient: it is cleared on every exit from AWAITING_PIN regardless of
// outcome and is never part of any response or log line.
type ConfirmationSession struct {
	ID        string
	Intent    TransactionIntent
	State     SessionState
	PinBuffer string
	CreatedAt time.Time
}

// Terminal reports whether the session reached a final state, freeing the
// gate for a new intent.
func (s ConfirmationSession) Terminal() bool {
	switch s.State {
	case SessionSucceeded, SessionFailed, SessionCancelled:
		return true
	default:
		return false
	}
}

type (
	SessionResponse struct {
		Kind      string        `json:"kind"`
		ID        string        `json:"id"`
		State     SessionState  `json:"state"`
		Intent    IntentSummary `json:"intent"`
		PinLength int           `json:"pinLength"`
	}

	IntentSummary struct {
		Kind         TransactionKind `json:"kind"`
		Amount       Decimal         `json:"amount"`
		Counterparty string          `json:"counterparty"`
	}

	EnterPinRequest struct {
		Digits string `json:"digits"`
	}
)

func (s ConfirmationSession) ToResponse() SessionResponse {
	return SessionResponse{
		Kind:  "confirmationSession",
		ID:    s.ID,
		State: s.State,
		Intent: IntentSummary{
			Kind:         s.Intent.Kind,
			Amount:       s.Intent.Amount,
			Counterparty: s.Intent.Counterparty,
		},
		PinLength: len(s.PinBuffer),
	}
}

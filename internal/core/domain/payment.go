package domain

import (
	"errors"
	"fmt"
	"time"
)

// Simulation constants. They are part of the observable behaviour and are not
// exposed as configuration.
const (
	// PaymentSubmitDelay is the simulated push-notification round trip.
	PaymentSubmitDelay = 3000 * time.Millisecond
	// PaymentFailureThreshold: a uniform draw strictly above it succeeds (90%).
	PaymentFailureThreshold = 0.1
	// TransactionIDPrefix precedes the millisecond timestamp in transaction ids.
	TransactionIDPrefix = "MPESA"
	// ReceiptTimeLayout renders receipt timestamps in a fixed-width sortable form.
	ReceiptTimeLayout = "2006-01-02T15:04:05.000Z07:00"
	// PaymentDeclinedMessage is shown on the failed step of the dialog.
	PaymentDeclinedMessage = "Payment failed. Please try again."
)

var (
	ErrPaymentDeclined   = errors.New("payment failed. please try again")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrPaymentInProgress = errors.New("payment is being processed")
	ErrInvalidPhone      = errors.New("phone number is required")
	ErrInvalidTransition = errors.New("invalid payment transition")
)

// PaymentState is a node of the payment dialog state machine.
type PaymentState string

const (
	PaymentCollectingPhone PaymentState = "collecting_phone"
	PaymentSubmitting      PaymentState = "submitting"
	PaymentSucceeded       PaymentState = "succeeded"
	PaymentFailed          PaymentState = "failed"
)

// PaymentEvent drives a PaymentState transition.
type PaymentEvent string

const (
	EventConfirm PaymentEvent = "confirm"
	EventSucceed PaymentEvent = "succeed"
	EventDecline PaymentEvent = "decline"
	EventRetry   PaymentEvent = "retry"
)

// PaymentOutcome is the coarse result reported on a receipt or attempt.
type PaymentOutcome string

const (
	OutcomePending   PaymentOutcome = "pending"
	OutcomeSucceeded PaymentOutcome = "succeeded"
	OutcomeFailed    PaymentOutcome = "failed"
)

type paymentTransition struct {
	From  PaymentState
	Event PaymentEvent
	To    PaymentState
}

var paymentTransitions = []paymentTransition{
	{From: PaymentCollectingPhone, Event: EventConfirm, To: PaymentSubmitting},
	{From: PaymentSubmitting, Event: EventSucceed, To: PaymentSucceeded},
	{From: PaymentSubmitting, Event: EventDecline, To: PaymentFailed},
	{From: PaymentFailed, Event: EventRetry, To: PaymentCollectingPhone},
}

// Next returns the state reached from s on ev, or ErrInvalidTransition.
func (s PaymentState) Next(ev PaymentEvent) (PaymentState, error) {
	for _, tr := range paymentTransitions {
		if tr.From == s && tr.Event == ev {
			return tr.To, nil
		}
	}
	return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, ev, s)
}

// Closable reports whether the dialog may be dismissed in this state.
// A submission always runs to completion once started.
func (s PaymentState) Closable() bool {
	return s != PaymentSubmitting
}

// Outcome maps the dialog state onto the attempt outcome.
func (s PaymentState) Outcome() PaymentOutcome {
	switch s {
	case PaymentSucceeded:
		return OutcomeSucceeded
	case PaymentFailed:
		return OutcomeFailed
	default:
		return OutcomePending
	}
}

// PaymentReceipt is handed to the success callback.
type PaymentReceipt struct {
	BookingID     string `json:"booking_id"`
	Amount        int64  `json:"amount"`
	PhoneNumber   string `json:"phone_number"`
	TransactionID string `json:"transaction_id"`
	Timestamp     string `json:"timestamp"`
}

// PaymentAttempt is the in-memory state of one payment dialog.
type PaymentAttempt struct {
	ID          string          `json:"id"`
	SessionID   string          `json:"-"`
	BookingID   string          `json:"booking_id"`
	Amount      int64           `json:"amount"`
	PhoneNumber string          `json:"phone_number,omitempty"`
	Pin         string          `json:"-"`
	State       PaymentState    `json:"state"`
	Outcome     PaymentOutcome  `json:"outcome"`
	Error       string          `json:"error,omitempty"`
	Receipt     *PaymentReceipt `json:"receipt,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Apply moves the attempt along the state machine.
func (a *PaymentAttempt) Apply(ev PaymentEvent, now time.Time) error {
	next, err := a.State.Next(ev)
	if err != nil {
		return err
	}
	a.State = next
	a.Outcome = next.Outcome()
	a.UpdatedAt = now
	return nil
}

// Reset returns a failed attempt to phone collection, dropping everything the
// user entered.
func (a *PaymentAttempt) Reset(now time.Time) error {
	if err := a.Apply(EventRetry, now); err != nil {
		return err
	}
	a.PhoneNumber = ""
	a.Pin = ""
	a.Error = ""
	a.Receipt = nil
	return nil
}

// Err is ErrPaymentDeclined for a failed attempt and nil otherwise.
func (a *PaymentAttempt) Err() error {
	if a.State == PaymentFailed {
		return ErrPaymentDeclined
	}
	return nil
}

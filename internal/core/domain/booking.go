package domain

import (
	"errors"
	"time"
)

// PaymentMethod selects how a booking is paid for.
type PaymentMethod string

const (
	PaymentMoney  PaymentMethod = "money"
	PaymentPoints PaymentMethod = "points"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMoney || m == PaymentPoints
}

var (
	ErrRoleMismatch      = errors.New("only clients can book services")
	ErrInvalidSlot       = errors.New("time slot is not offered")
	ErrInvalidDate       = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidPayment    = errors.New("unsupported payment method")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingNotPayable = errors.New("booking is not awaiting payment")
	ErrIncompleteBooking = errors.New("service, date and time are required")
)

// DateLayout is the wire format of booking dates.
const DateLayout = "2006-01-02"

// TimeSlots are the start times offered on every provider page.
var TimeSlots = []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}

// IsOfferedSlot reports whether t is one of TimeSlots.
func IsOfferedSlot(t string) bool {
	for _, s := range TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}

// BookingDraft is the selection a visitor made before being asked to authenticate.
// A session holds at most one; a newer capture replaces it.
type BookingDraft struct {
	ProviderID    int           `json:"provider_id"`
	ServiceID     int           `json:"service_id"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// BookingStatus tracks a finalized booking.
type BookingStatus string

const (
	BookingAwaitingPayment BookingStatus = "awaiting_payment"
	BookingConfirmed       BookingStatus = "confirmed"
)

// Booking is a client's confirmed selection. It lives in the client's session only.
type Booking struct {
	ID            string        `json:"id"`
	ClientID      int           `json:"client_id"`
	ProviderID    int           `json:"provider_id"`
	ProviderName  string        `json:"provider_name"`
	ServiceID     int           `json:"service_id"`
	ServiceName   string        `json:"service_name"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Amount        int64         `json:"amount"`
	Status        BookingStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	ConfirmedAt   *time.Time    `json:"confirmed_at,omitempty"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ValidBookingStatus reports whether s is a known booking status value
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether the status blocks self-service cancellation
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// ValidPaymentStatus reports whether s is a known payment status value
func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid:
		return true
	}
	return false
}

type Booking struct {
	Base
	HallID             uuid.UUID     `db:"hall_id"`
	UserID             uuid.UUID     `db:"user_id"`
	EventType          string        `db:"event_type"`
	EventDate          time.Time     `db:"event_date"`
	StartTime          string        `db:"start_time"`
	EndTime            string        `db:"end_time"`
	GuestCount         int           `db:"guest_count"`
	TotalAmount        float64       `db:"total_amount"`
	AdvanceAmount      float64       `db:"advance_amount"`
	BalanceAmount      float64       `db:"balance_amount"`
	PaymentStatus      PaymentStatus `db:"payment_status"`
	BookingStatus      BookingStatus `db:"booking_status"`
	SpecialRequests    *string       `db:"special_requests"`
	CancellationReason *string       `db:"cancellation_reason"`
}

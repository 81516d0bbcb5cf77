package response

import (
	"time"

	"hall-booking/internal/data/entity"
)

type BookingResponse struct {
	ID                 string               `json:"id"`
	Hall               *HallSummary         `json:"hall,omitempty"`
	User               *UserSummary         `json:"user,omitempty"`
	EventType          string               `json:"eventType"`
	EventDate          string               `json:"eventDate"`
	StartTime          string               `json:"startTime"`
	EndTime            string               `json:"endTime"`
	GuestCount         int                  `json:"guestCount"`
	TotalAmount        float64              `json:"totalAmount"`
	AdvanceAmount      float64              `json:"advanceAmount"`
	BalanceAmount      float64              `json:"balanceAmount"`
	PaymentStatus      entity.PaymentStatus `json:"paymentStatus"`
	BookingStatus      entity.BookingStatus `json:"bookingStatus"`
	SpecialRequests    *string              `json:"specialRequests,omitempty"`
	CancellationReason *string              `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`
}

type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	Pagination PaginationMeta    `json:"pagination"`
}

func BookingToResponse(booking *entity.Booking, hall *entity.Hall, user *entity.User) BookingResponse {
	return BookingResponse{
		ID:                 booking.ID.String(),
		Hall:               HallToSummary(hall),
		User:               UserToSummary(user),
		EventType:          booking.EventType,
		EventDate:          booking.EventDate.Format("2006-01-02"),
		StartTime:          booking.StartTime,
		EndTime:            booking.EndTime,
		GuestCount:         booking.GuestCount,
		TotalAmount:        booking.TotalAmount,
		AdvanceAmount:      booking.AdvanceAmount,
		BalanceAmount:      booking.BalanceAmount,
		PaymentStatus:      booking.PaymentStatus,
		BookingStatus:      booking.BookingStatus,
		SpecialRequests:    booking.SpecialRequests,
		CancellationReason: booking.CancellationReason,
		CreatedAt:          booking.CreatedAt,
	}
}

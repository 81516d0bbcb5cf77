package request

type CreateBookingRequest struct {
	HallID          string  `json:"hallId" validate:"required,uuid4"`
	EventType       string  `json:"eventType" validate:"required"`
	EventDate       string  `json:"eventDate" validate:"required,datetime=2006-01-02"`
	StartTime       string  `json:"startTime" validate:"required"`
	EndTime         string  `json:"endTime" validate:"required"`
	GuestCount      int     `json:"guestCount" validate:"required,gt=0"`
	TotalAmount     float64 `json:"totalAmount" validate:"required,gt=0"`
	AdvanceAmount   float64 `json:"advanceAmount" validate:"omitempty,gte=0"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status             string  `json:"status" validate:"required"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string   `json:"paymentStatus" validate:"required"`
	AdvanceAmount *float64 `json:"advanceAmount,omitempty" validate:"omitempty,gte=0"`
	BalanceAmount *float64 `json:"balanceAmount,omitempty" validate:"omitempty,gte=0"`
}

// ListBookingsRequest is built by the handler from query parameters
type ListBookingsRequest struct {
	Status string
	Sort   string
	Page   int
	Limit  int
}

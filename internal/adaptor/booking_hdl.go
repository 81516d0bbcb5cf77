package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"hall-booking/internal/dto/request"
	"hall-booking/internal/usecase"
	"hall-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.Create(r.Context(), actor, req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created successfully", booking)
}

// GetBooking handles GET /api/bookings/{id} (protected)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	booking, err := h.service.Get(r.Context(), actor, id)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// MyBookings handles GET /api/bookings/my-bookings (protected)
func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	bookings, err := h.service.MyBookings(r.Context(), actor, listBookingsRequest(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list own bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// HallBookings handles GET /api/bookings/hall-bookings (hall-owner and up)
func (h *BookingHandler) HallBookings(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	bookings, err := h.service.HallBookings(r.Context(), actor, listBookingsRequest(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list hall bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// UpdateStatus handles PUT /api/bookings/{id}/status (protected)
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), actor, id, req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking status updated", booking)
}

// CancelBooking handles PUT /api/bookings/{id}/cancel (protected)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	// Body is optional here; an empty body means the default reason
	var req request.CancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.Cancel(r.Context(), actor, id, req)
	if err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", booking)
}

// UpdatePayment handles PUT /api/bookings/{id}/payment (admin and up)
func (h *BookingHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.UpdatePayment(r.Context(), actor, id, req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking payment")
		return
	}

	utils.ResponseSuccess(w, "Booking payment updated", booking)
}

func listBookingsRequest(r *http.Request) request.ListBookingsRequest {
	query := r.URL.Query()

	// "all" means no status filter
	status := query.Get("status")
	if status == "all" {
		status = ""
	}

	return request.ListBookingsRequest{
		Status: status,
		Sort:   query.Get("sort"),
		Page:   utils.ParseInt(query.Get("page"), 1),
		Limit:  utils.ParseInt(query.Get("limit"), 10),
	}
}

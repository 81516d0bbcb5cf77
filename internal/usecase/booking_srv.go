package usecase

import (
	"context"
	"fmt"
	"time"

	"hall-booking/internal/data/entity"
	"hall-booking/internal/data/repository"
	"hall-booking/internal/dto/request"
	"hall-booking/internal/dto/response"
	"hall-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const eventDateLayout = "2006-01-02"

const (
	cancelledByOwnerReason = "Cancelled by hall owner"
	cancelledByUserReason  = "Cancelled by user"
)

type BookingService interface {
	Create(ctx context.Context, actor utils.Actor, req request.CreateBookingRequest) (*response.BookingResponse, error)
	Get(ctx context.Context, actor utils.Actor, id uuid.UUID) (*response.BookingResponse, error)
	MyBookings(ctx context.Context, actor utils.Actor, req request.ListBookingsRequest) (*response.BookingListResponse, error)
	HallBookings(ctx context.Context, actor utils.Actor, req request.ListBookingsRequest) (*response.BookingListResponse, error)
	UpdateStatus(ctx context.Context, actor utils.Actor, id uuid.UUID, req request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	Cancel(ctx context.Context, actor utils.Actor, id uuid.UUID, req request.CancelBookingRequest) (*response.BookingResponse, error)
	UpdatePayment(ctx context.Context, actor utils.Actor, id uuid.UUID, req request.UpdatePaymentRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// Create places a pending booking after the date-conflict check. The check
// and the insert are separate statements, so two simultaneous requests for
// the same date can both pass; the hall owner resolves such duplicates when
// confirming.
func (s *bookingService) Create(ctx context.Context, actor utils.Actor, req request.CreateBookingRequest) (*response.BookingResponse, error) {
	eventDate, err := time.Parse(eventDateLayout, req.EventDate)
	if err != nil {
		return nil, ErrInvalidEventDate
	}

	hallID, err := uuid.Parse(req.HallID)
	if err != nil {
		return nil, ErrHallNotFound
	}

	hall, err := s.repo.Hall.FindByID(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("finding hall: %w", err)
	}
	if hall == nil {
		return nil, ErrHallNotFound
	}
	if hall.Status != entity.HallStatusActive {
		return nil, ErrHallNotBookable
	}

	taken, err := s.repo.Booking.ExistsActiveForDate(ctx, hallID, eventDate)
	if err != nil {
		return nil, fmt.Errorf("checking date availability: %w", err)
	}
	if taken {
		return nil, ErrDateAlreadyBooked
	}

	paymentStatus := entity.PaymentStatusPending
	if req.AdvanceAmount > 0 {
		paymentStatus = entity.PaymentStatusPartial
	}

	booking := &entity.Booking{
		HallID:          hallID,
		UserID:          actor.UserID,
		EventType:       req.EventType,
		EventDate:       eventDate,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		GuestCount:      req.GuestCount,
		TotalAmount:     req.TotalAmount,
		AdvanceAmount:   req.AdvanceAmount,
		BalanceAmount:   req.TotalAmount - req.AdvanceAmount,
		PaymentStatus:   paymentStatus,
		BookingStatus:   entity.BookingStatusPending,
		SpecialRequests: req.SpecialRequests,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("creating booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("bookingId", booking.ID.String()),
		zap.String("hallId", hallID.String()),
		zap.String("eventDate", req.EventDate))

	user, _ := s.repo.User.FindByID(ctx, actor.UserID)

	resp := response.BookingToResponse(booking, hall, user)
	return &resp, nil
}

func (s *bookingService) Get(ctx context.Context, actor utils.Actor, id uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	hall, _ := s.repo.Hall.FindByID(ctx, booking.HallID)

	if !s.canView(actor, booking, hall) {
		return nil, fmt.Errorf("%w to view this booking", ErrForbidden)
	}

	user, _ := s.repo.User.FindByID(ctx, booking.UserID)

	resp := response.BookingToResponse(booking, hall, user)
	return &resp, nil
}

func (s *bookingService) MyBookings(ctx context.Context, actor utils.Actor, req request.ListBookingsRequest) (*response.BookingListResponse, error) {
	filter := repository.BookingFilter{
		UserID: &actor.UserID,
		Status: entity.BookingStatus(req.Status),
	}
	return s.list(ctx, filter, req)
}

// HallBookings lists bookings across every hall the caller owns
func (s *bookingService) HallBookings(ctx context.Context, actor utils.Actor, req request.ListBookingsRequest) (*response.BookingListResponse, error) {
	hallIDs, err := s.repo.Hall.FindIDsByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing owned halls: %w", err)
	}

	page, limit := normalizePage(req.Page, req.Limit)
	if len(hallIDs) == 0 {
		return &response.BookingListResponse{
			Bookings:   []response.BookingResponse{},
			Pagination: response.NewPaginationMeta(page, limit, 0),
		}, nil
	}

	filter := repository.BookingFilter{
		HallIDs: hallIDs,
		Status:  entity.BookingStatus(req.Status),
	}
	return s.list(ctx, filter, req)
}

// UpdateStatus is the hall-owner/admin transition endpoint. The status value
// is validated before any authorization check so a bad payload reports the
// same way regardless of who sends it.
func (s *bookingService) UpdateStatus(ctx context.Context, actor utils.Actor, id uuid.UUID, req request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if !entity.ValidBookingStatus(req.Status) {
		return nil, ErrInvalidBookingStatus
	}

	hall, _ := s.repo.Hall.FindByID(ctx, booking.HallID)

	role := entity.UserRole(actor.Role)
	ownsHall := hall != nil && hall.OwnerID == actor.UserID
	if !ownsHall && !role.IsPrivileged() {
		return nil, fmt.Errorf("%w to update this booking", ErrForbidden)
	}

	booking.BookingStatus = entity.BookingStatus(req.Status)
	if booking.BookingStatus == entity.BookingStatusCancelled {
		reason := cancelledByOwnerReason
		if req.CancellationReason != nil && *req.CancellationReason != "" {
			reason = *req.CancellationReason
		}
		booking.CancellationReason = &reason
	}

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("updating booking: %w", err)
	}

	s.log.Info("Booking status updated",
		zap.String("bookingId", id.String()),
		zap.String("status", req.Status),
		zap.String("actorId", actor.UserID.String()))

	user, _ := s.repo.User.FindByID(ctx, booking.UserID)

	resp := response.BookingToResponse(booking, hall, user)
	return &resp, nil
}

// Cancel is the customer's self-service path; terminal bookings stay put
func (s *bookingService) Cancel(ctx context.Context, actor utils.Actor, id uuid.UUID, req request.CancelBookingRequest) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if booking.UserID != actor.UserID {
		return nil, fmt.Errorf("%w to cancel this booking", ErrForbidden)
	}

	if booking.BookingStatus.IsTerminal() {
		if booking.BookingStatus == entity.BookingStatusCancelled {
			return nil, ErrBookingAlreadyCancelled
		}
		return nil, ErrBookingAlreadyCompleted
	}

	booking.BookingStatus = entity.BookingStatusCancelled
	reason := cancelledByUserReason
	if req.CancellationReason != nil && *req.CancellationReason != "" {
		reason = *req.CancellationReason
	}
	booking.CancellationReason = &reason

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("updating booking: %w", err)
	}

	s.log.Info("Booking cancelled",
		zap.String("bookingId", id.String()),
		zap.String("userId", actor.UserID.String()))

	hall, _ := s.repo.Hall.FindByID(ctx, booking.HallID)
	user, _ := s.repo.User.FindByID(ctx, booking.UserID)

	resp := response.BookingToResponse(booking, hall, user)
	return &resp, nil
}

// UpdatePayment records payment fields exactly as supplied; it never
// recomputes the balance from the advance
func (s *bookingService) UpdatePayment(ctx context.Context, actor utils.Actor, id uuid.UUID, req request.UpdatePaymentRequest) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if !entity.ValidPaymentStatus(req.PaymentStatus) {
		return nil, ErrInvalidPaymentStatus
	}

	booking.PaymentStatus = entity.PaymentStatus(req.PaymentStatus)
	if req.AdvanceAmount != nil {
		booking.AdvanceAmount = *req.AdvanceAmount
	}
	if req.BalanceAmount != nil {
		booking.BalanceAmount = *req.BalanceAmount
	}

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("updating booking: %w", err)
	}

	s.log.Info("Booking payment updated",
		zap.String("bookingId", id.String()),
		zap.String("paymentStatus", req.PaymentStatus))

	hall, _ := s.repo.Hall.FindByID(ctx, booking.HallID)
	user, _ := s.repo.User.FindByID(ctx, booking.UserID)

	resp := response.BookingToResponse(booking, hall, user)
	return &resp, nil
}

func (s *bookingService) list(ctx context.Context, filter repository.BookingFilter, req request.ListBookingsRequest) (*response.BookingListResponse, error) {
	page, limit := normalizePage(req.Page, req.Limit)

	bookings, err := s.repo.Booking.List(ctx, filter, req.Sort, limit, utils.CalculateOffset(page, limit))
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("counting bookings: %w", err)
	}

	items := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		hall, _ := s.repo.Hall.FindByID(ctx, booking.HallID)
		user, _ := s.repo.User.FindByID(ctx, booking.UserID)
		items = append(items, response.BookingToResponse(booking, hall, user))
	}

	return &response.BookingListResponse{
		Bookings:   items,
		Pagination: response.NewPaginationMeta(page, limit, total),
	}, nil
}

func (s *bookingService) canView(actor utils.Actor, booking *entity.Booking, hall *entity.Hall) bool {
	if booking.UserID == actor.UserID {
		return true
	}
	if hall != nil && hall.OwnerID == actor.UserID {
		return true
	}
	return entity.UserRole(actor.Role).IsPrivileged()
}

package usecase

import (
	"context"
	"testing"

	"hall-booking/internal/data/entity"
	"hall-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createBookingReq(hallID uuid.UUID) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		HallID:        hallID.String(),
		EventType:     "wedding",
		EventDate:     "2026-10-20",
		StartTime:     "10:00",
		EndTime:       "22:00",
		GuestCount:    250,
		TotalAmount:   50000,
		AdvanceAmount: 10000,
	}
}

func TestCreateBookingComputesBalanceAndStatuses(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(entity.RoleHallOwner)
	customer := env.addUser(entity.RoleUser)
	hall := env.addHall(owner.ID, entity.HallStatusActive)

	booking, err := env.service.Booking.Create(context.Background(), actorFor(customer), createBookingReq(hall.ID))
	require.NoError(t, err)

	assert.Equal(t, float64(40000), booking.BalanceAmount)
	assert.Equal(t, entity.PaymentStatusPartial, booking.PaymentStatus)
	assert.Equal(t, entity.BookingStatusPending, booking.BookingStatus)
	assert.Equal(t, "2026-10-20", booking.EventDate)
	require.NotNil(t, booking.Hall)
	assert.Equal(t, hall.Name, booking.Hall.Name)
}

func TestCreateBookingWithoutAdvanceIsPaymentPending(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(entity.RoleHallOwner)
	customer := env.addUser(entity.RoleUser)
	hall := env.addHall(owner.ID, entity.HallStatusActive)

	req := createBookingReq(hall.ID)
	req.AdvanceAmount = 0

	booking, err := env.service.Booking.Create(context.Background(), actorFor(customer), req)
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, float64(50000), booking.BalanceAmount)
}

func TestCreateBookingRejectsInactiveHall(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(entity.RoleHallOwner)
	customer := env.addUser(entity.RoleUser)

	for _, status := range []entity.HallStatus{entity.HallStatusPending, entity.HallStatusInactive, entity.HallStatusRejected} {
		hall := env.addHall(owner.ID, status)

		_, err := env.service.Booking.Create(context.Background(), actorFor(customer), createBookingReq(hall.ID))
		assert.ErrorIs(t, err, ErrHallNotBookable, "status %s", status)
	}
}

func TestCreateBookingUnknownHall(t *testing.T) {
	env := newTestEnv()
	customer := env.addUser(entity.RoleUser)

	_, err := env.service.Booking.Create(context.Background(), actorFor(customer), createBookingReq(uuid.New()))
	assert.ErrorIs(t, err, ErrHallNotFound)
}

func TestCreateBookingRejectsBadDate(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(entity.RoleHallOwner)
	customer := env.addUser(entity.RoleUser)
	hall := env.addHall(owner.ID, entity.HallStatusActive)

	req := createBookingReq(hall.ID)
	req.EventDate = "20-10-2026"

	_, err := env.service.Booking.Create(context.Background(), actorFor(customer), req)
	assert.ErrorIs(t, err, ErrInvalidEventDate)
}

func TestCreateBookingDateConflict(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(entity.RoleHallOwner)
	first := env.addUser(entity.RoleUser)
	second := env.addUser(entity.RoleUser)
	hall := env.addHall(owner.ID, entity.HallStatusActive)

	_, err := env.service.Booking.Create(context.Background(), actorFor(first), createBookingReq(hall.ID))
	require.NoError(t, err)

	// Same hall, same date
	_, err = env.service.Booking.Create(context.Background(), actorFor(second), createBookingReq(hall.ID))
	assert.ErrorIs(t, err, ErrDateAlreadyBooked)

	// Same hall, different date
	req := createBookingReq(hall.ID)
	req.EventDate = "2026-10-21"
	_, err = env.service.Booking.Create(context.Background(), actorFor(second), req)
	assert.NoError(t, err)

	// Same date on another hall
	other := env.addHall(owner.ID, entity.HallStatusActive)
	_, err = env.service.Booking.Create(context.Background(), actorFor(second), createBookingReq(other.ID))
	assert.NoError(t, err)
}

func TestCancelledBookingFreesTheDate(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(entity.RoleHallOwner)
	customer := env.addUser(entity.RoleUser)
	hall := env.addHall(owner.ID, entity.HallStatusActive)

	booking, err := env.service.Booking.Create(context.Background(), actorFor(customer), createBookingReq(hall.ID))
	require.NoError(t, err)

	id := uuid.MustParse(booking.ID)
	_, err = env.service.Booking.Cancel(context.Background(), actorFor(customer), id, request.CancelBookingRequest{})
	require.NoError(t, err)

	_, err = env.service.Booking.Create(context.Background(), actorFor(customer), createBookingReq(hall.ID))
	assert.NoError(t, err)
}

func TestUpdateStatusValidatesStatusBeforeAuthorization(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(entity.RoleHallOwner)
	customer := env.addUser(entity.RoleUser)
	stranger := env.addUser(entity.RoleUser)
	hall := env.addHall(owner.ID, entity.HallStatusActive)

	booking, err := env.service.Booking.Create(context.Background(), actorFor(customer), createBookingReq(hall.ID))
	require.NoError(t, err)
	id := uuid.MustParse(booking.ID)

	// Unknown status reports as invalid input even for an unauthorized caller
	_, err = env.service.Booking.UpdateStatus(context.Background(), actorFor(stranger), id,
		request.UpdateBookingStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, ErrInvalidBookingStatus)

	// Valid status from an unauthorized caller is forbidden
	_, err = env.service.Booking.UpdateStatus(context.Background(), actorFor(stranger), id,
		request.UpdateBookingStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateStatusByHallOwnerAndAdmin(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(entity.RoleHallOwner)
	customer := env.addUser(entity.RoleUser)
	admin := env.addUser(entity.RoleAdmin)
	hall := env.addHall(owner.ID, entity.HallStatusActive)

	booking, err := env.service.Booking.Create(context.Background(), actorFor(customer), createBookingReq(hall.ID))
	require.NoError(t, err)
	id := uuid.MustParse(booking.ID)

	updated, err := env.service.Booking.UpdateStatus(context.Background(), actorFor(owner), id,
		request.UpdateBookingStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, updated.BookingStatus)

	updated, err = env.service.Booking.UpdateStatus(context.Background(), actorFor(admin), id,
		request.UpdateBookingStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCompleted, updated.BookingStatus)
}

func TestUpdateStatusCancelSetsDefaultReason(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(entity.RoleHallOwner)
	customer := env.addUser(entity.RoleUser)
	hall := env.addHall(owner.ID, entity.HallStatusActive)

	booking, err := env.service.Booking.Create(context.Background(), actorFor(customer), createBookingReq(hall.ID))
	require.NoError(t, err)
	id := uuid.MustParse(booking.ID)

	updated, err := env.service.Booking.UpdateStatus(context.Background(), actorFor(owner), id,
		request.UpdateBookingStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	require.NotNil(t, updated.CancellationReason)
	assert.Equal(t, "Cancelled by hall owner", *updated.CancellationReason)
}

func TestCancelOwnBooking(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(entity.RoleHallOwner)
	customer := env.addUser(entity.RoleUser)
	stranger := env.addUser(entity.RoleUser)
	hall := env.addHall(owner.ID, entity.HallStatusActive)

	booking, err := env.service.Booking.Create(context.Background(), actorFor(customer), createBookingReq(hall.ID))
	require.NoError(t, err)
	id := uuid.MustParse(booking.ID)

	_, err = env.service.Booking.Cancel(context.Background(), actorFor(stranger), id, request.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrForbidden)

	cancelled, err := env.service.Booking.Cancel(context.Background(), actorFor(customer), id, request.CancelBookingRequest{})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.BookingStatus)
	require.NotNil(t, cancelled.CancellationReason)
	assert.Equal(t, "Cancelled by user", *cancelled.CancellationReason)
}

func TestCancelTerminalBooking(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(entity.RoleHallOwner)
	customer := env.addUser(entity.RoleUser)
	hall := env.addHall(owner.ID, entity.HallStatusActive)

	booking, err := env.service.Booking.Create(context.Background(), actorFor(customer), createBookingReq(hall.ID))
	require.NoError(t, err)
	id := uuid.MustParse(booking.ID)

	_, err = env.service.Booking.Cancel(context.Background(), actorFor(customer), id, request.CancelBookingRequest{})
	require.NoError(t, err)

	_, err = env.service.Booking.Cancel(context.Background(), actorFor(customer), id, request.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingAlreadyCancelled)

	_, err = env.service.Booking.UpdateStatus(context.Background(), actorFor(owner), id,
		request.UpdateBookingStatusRequest{Status: "completed"})
	require.NoError(t, err)

	_, err = env.service.Booking.Cancel(context.Background(), actorFor(customer), id, request.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingAlreadyCompleted)
}

func TestUpdatePaymentDoesNotRecomputeBalance(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(entity.RoleHallOwner)
	customer := env.addUser(entity.RoleUser)
	admin := env.addUser(entity.RoleAdmin)
	hall := env.addHall(owner.ID, entity.HallStatusActive)

	booking, err := env.service.Booking.Create(context.Background(), actorFor(customer), createBookingReq(hall.ID))
	require.NoError(t, err)
	id := uuid.MustParse(booking.ID)

	advance := float64(30000)
	updated, err := env.service.Booking.UpdatePayment(context.Background(), actorFor(admin), id,
		request.UpdatePaymentRequest{PaymentStatus: "partial", AdvanceAmount: &advance})
	require.NoError(t, err)

	// Balance stays as stored; only supplied fields change
	assert.Equal(t, float64(30000), updated.AdvanceAmount)
	assert.Equal(t, float64(40000), updated.BalanceAmount)

	_, err = env.service.Booking.UpdatePayment(context.Background(), actorFor(admin), id,
		request.UpdatePaymentRequest{PaymentStatus: "refunded"})
	assert.ErrorIs(t, err, ErrInvalidPaymentStatus)
}

func TestMyBookingsFiltersByCaller(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(entity.RoleHallOwner)
	first := env.addUser(entity.RoleUser)
	second := env.addUser(entity.RoleUser)
	hall := env.addHall(owner.ID, entity.HallStatusActive)

	_, err := env.service.Booking.Create(context.Background(), actorFor(first), createBookingReq(hall.ID))
	require.NoError(t, err)

	req := createBookingReq(hall.ID)
	req.EventDate = "2026-11-05"
	_, err = env.service.Booking.Create(context.Background(), actorFor(second), req)
	require.NoError(t, err)

	list, err := env.service.Booking.MyBookings(context.Background(), actorFor(first), request.ListBookingsRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Bookings, 1)
	assert.Equal(t, int64(1), list.Pagination.Total)
}

func TestHallBookingsCoversOwnedHallsOnly(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(entity.RoleHallOwner)
	other := env.addUser(entity.RoleHallOwner)
	customer := env.addUser(entity.RoleUser)
	mine := env.addHall(owner.ID, entity.HallStatusActive)
	theirs := env.addHall(other.ID, entity.HallStatusActive)

	_, err := env.service.Booking.Create(context.Background(), actorFor(customer), createBookingReq(mine.ID))
	require.NoError(t, err)
	_, err = env.service.Booking.Create(context.Background(), actorFor(customer), createBookingReq(theirs.ID))
	require.NoError(t, err)

	list, err := env.service.Booking.HallBookings(context.Background(), actorFor(owner), request.ListBookingsRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Bookings, 1)

	// An owner with no halls gets an empty page, not an error
	empty, err := env.service.Booking.HallBookings(context.Background(), actorFor(env.addUser(entity.RoleHallOwner)), request.ListBookingsRequest{})
	require.NoError(t, err)
	assert.Empty(t, empty.Bookings)
	assert.Equal(t, int64(0), empty.Pagination.Total)
}

func TestGetBookingVisibility(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(entity.RoleHallOwner)
	customer := env.addUser(entity.RoleUser)
	stranger := env.addUser(entity.RoleUser)
	admin := env.addUser(entity.RoleAdmin)
	hall := env.addHall(owner.ID, entity.HallStatusActive)

	booking, err := env.service.Booking.Create(context.Background(), actorFor(customer), createBookingReq(hall.ID))
	require.NoError(t, err)
	id := uuid.MustParse(booking.ID)

	for _, viewer := range []*entity.User{customer, owner, admin} {
		_, err := env.service.Booking.Get(context.Background(), actorFor(viewer), id)
		assert.NoError(t, err, "viewer %s", viewer.Role)
	}

	_, err = env.service.Booking.Get(context.Background(), actorFor(stranger), id)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = env.service.Booking.Get(context.Background(), actorFor(admin), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

package wire

import (
	"hall-booking/internal/adaptor"
	"hall-booking/internal/data/entity"
	"hall-booking/internal/data/repository"
	"hall-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Every booking route requires authentication
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/bookings - Place a booking
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings/my-bookings - Caller's booking history
		r.Get("/my-bookings", bookingHandler.MyBookings)

		// GET /api/bookings/hall-bookings - Bookings across the caller's halls
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(log, string(entity.RoleHallOwner)))

			r.Get("/hall-bookings", bookingHandler.HallBookings)
		})

		// GET /api/bookings/{id} - Booking details (party, hall owner or admin)
		r.Get("/{id}", bookingHandler.GetBooking)

		// PUT /api/bookings/{id}/status - Owner/admin lifecycle transition
		r.Put("/{id}/status", bookingHandler.UpdateStatus)

		// PUT /api/bookings/{id}/cancel - Customer self-service cancel
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)

		// PUT /api/bookings/{id}/payment - Payment bookkeeping (admins)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(log,
				string(entity.RoleAdmin),
				string(entity.RoleSuperAdmin)))

			r.Put("/{id}/payment", bookingHandler.UpdatePayment)
		})
	})
}

package wire

import (
	"hall-booking/internal/adaptor"
	"hall-booking/internal/data/entity"
	"hall-booking/internal/data/repository"
	"hall-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHall(
	r chi.Router,
	hallHandler *adaptor.HallHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/halls - Browse active halls with filters
	r.Get("/api/halls", hallHandler.ListHalls)

	// GET /api/halls/{id} - Hall details with owner contact
	r.Get("/api/halls/{id}", hallHandler.GetHall)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/halls - Create listing (hall owners and admins)
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(log,
				string(entity.RoleHallOwner),
				string(entity.RoleAdmin),
				string(entity.RoleSuperAdmin)))

			r.Post("/api/halls", hallHandler.CreateHall)
		})

		// GET /api/halls/owner/my-halls - Caller's own listings
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(log, string(entity.RoleHallOwner)))

			r.Get("/api/halls/owner/my-halls", hallHandler.MyHalls)
		})

		// Ownership checks for update/delete live in the service
		r.Put("/api/halls/{id}", hallHandler.UpdateHall)
		r.Delete("/api/halls/{id}", hallHandler.DeleteHall)
	})
}

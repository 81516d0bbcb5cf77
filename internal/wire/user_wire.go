package wire

import (
	"hall-booking/internal/adaptor"
	"hall-booking/internal/data/entity"
	"hall-booking/internal/data/repository"
	"hall-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// ==================== FAVORITES (any authenticated user) ====================
		// GET /api/users/favorites - Caller's favorite halls
		r.Get("/favorites", userHandler.ListFavorites)

		// POST /api/users/favorites/{hallId} - Add hall to favorites
		r.Post("/favorites/{hallId}", userHandler.AddFavorite)

		// DELETE /api/users/favorites/{hallId} - Remove hall from favorites
		r.Delete("/favorites/{hallId}", userHandler.RemoveFavorite)

		// PUT /api/users/{id} - Profile update; the service allows self or admin
		r.Put("/{id}", userHandler.UpdateUser)

		// ==================== ADMIN ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(log,
				string(entity.RoleAdmin),
				string(entity.RoleSuperAdmin)))

			// GET /api/users - List accounts with role/search filters
			r.Get("/", userHandler.ListUsers)

			// GET /api/users/{id} - Account details
			r.Get("/{id}", userHandler.GetUser)

			// DELETE /api/users/{id} - Remove account and revoke its sessions
			r.Delete("/{id}", userHandler.DeleteUser)
		})
	})
}

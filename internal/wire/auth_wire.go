package wire

import (
	"hall-booking/internal/adaptor"
	"hall-booking/internal/data/repository"
	"hall-booking/pkg/middleware"
	"hall-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Credential endpoints are rate limited to slow down guessing
	r.Group(func(r chi.Router) {
		if config.RateLimit.Enabled {
			r.Use(middleware.RateLimit(config.RateLimit.Rate, log))
		}

		// POST /api/auth/register - Create account and open a session
		r.Post("/api/auth/register", authHandler.Register)

		// POST /api/auth/login - Open a session
		r.Post("/api/auth/login", authHandler.Login)
	})

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/auth/logout - Revoke the current session
		r.Post("/api/auth/logout", authHandler.Logout)

		// GET /api/auth/me - Current user's profile
		r.Get("/api/auth/me", authHandler.Me)
	})
}

package wire

import (
	"net/http"

	"hall-booking/internal/adaptor"
	"hall-booking/internal/data/repository"
	"hall-booking/internal/usecase"
	"hall-booking/pkg/cache"
	"hall-booking/pkg/middleware"
	"hall-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, cache *cache.Cache, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, cache, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	if config.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}

	// Routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, logger)
	wireHall(r, handler.Hall, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)

	if config.Metrics.Enabled {
		r.Method(http.MethodGet, config.Metrics.Path, promhttp.Handler())
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

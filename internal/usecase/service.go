package usecase

import (
	"hall-booking/internal/data/repository"
	"hall-booking/pkg/cache"
	"hall-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Service bundles the application services behind one constructor
type Service struct {
	Auth    AuthService
	User    UserService
	Hall    HallService
	Booking BookingService
}

func NewService(repo *repository.Repository, cache *cache.Cache, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo, log),
		Hall:    NewHallService(repo, cache, log),
		Booking: NewBookingService(repo, log),
	}
}

// normalizePage clamps pagination inputs to sane bounds
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

package adaptor

import (
	"errors"
	"net/http"

	"hall-booking/internal/usecase"
	"hall-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Hall    *HallHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Hall:    NewHallHandler(service.Hall, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError maps service sentinels onto HTTP statuses. Anything not
// classified is a 500 with a generic body so internals never leak.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrHallNotFound),
		errors.Is(err, usecase.ErrBookingNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrDateAlreadyBooked):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials")
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrHallNotBookable),
		errors.Is(err, usecase.ErrBookingAlreadyCancelled),
		errors.Is(err, usecase.ErrBookingAlreadyCompleted),
		errors.Is(err, usecase.ErrAlreadyFavorite),
		errors.Is(err, usecase.ErrNotFavorite),
		errors.Is(err, usecase.ErrInvalidBookingStatus),
		errors.Is(err, usecase.ErrInvalidPaymentStatus),
		errors.Is(err, usecase.ErrInvalidEventDate):
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parseIDParam reads a uuid path parameter, writing a 400 itself on failure
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+name+" parameter", nil)
		return uuid.Nil, false
	}
	return id, true
}

// requireActor pulls the authenticated actor, writing a 401 itself if absent
func requireActor(w http.ResponseWriter, r *http.Request) (utils.Actor, bool) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return utils.Actor{}, false
	}
	return actor, true
}

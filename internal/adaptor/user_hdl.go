package adaptor

import (
	"encoding/json"
	"net/http"

	"hall-booking/internal/dto/request"
	"hall-booking/internal/usecase"
	"hall-booking/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// ListUsers handles GET /api/users (admin and up)
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// "all" means no role filter
	role := query.Get("role")
	if role == "all" {
		role = ""
	}

	req := request.ListUsersRequest{
		Role:   role,
		Search: query.Get("search"),
		Sort:   query.Get("sort"),
		Page:   utils.ParseInt(query.Get("page"), 1),
		Limit:  utils.ParseInt(query.Get("limit"), 10),
	}

	users, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// GetUser handles GET /api/users/{id} (admin and up)
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	user, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// UpdateUser handles PUT /api/users/{id} (self or admin)
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.Update(r.Context(), actor, id, req)
	if err != nil {
		handleServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", user)
}

// DeleteUser handles DELETE /api/users/{id} (admin and up)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", nil)
}

// AddFavorite handles POST /api/users/favorites/{hallId} (protected)
func (h *UserHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	hallID, ok := parseIDParam(w, r, "hallId")
	if !ok {
		return
	}

	if err := h.service.AddFavorite(r.Context(), actor, hallID); err != nil {
		handleServiceError(w, h.log, err, "add favorite")
		return
	}

	utils.ResponseSuccess(w, "Hall added to favorites", nil)
}

// RemoveFavorite handles DELETE /api/users/favorites/{hallId} (protected)
func (h *UserHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	hallID, ok := parseIDParam(w, r, "hallId")
	if !ok {
		return
	}

	if err := h.service.RemoveFavorite(r.Context(), actor, hallID); err != nil {
		handleServiceError(w, h.log, err, "remove favorite")
		return
	}

	utils.ResponseSuccess(w, "Hall removed from favorites", nil)
}

// ListFavorites handles GET /api/users/favorites (protected)
func (h *UserHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	halls, err := h.service.ListFavorites(r.Context(), actor)
	if err != nil {
		handleServiceError(w, h.log, err, "list favorites")
		return
	}

	utils.ResponseSuccess(w, "success", halls)
}

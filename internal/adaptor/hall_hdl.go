package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"hall-booking/internal/dto/request"
	"hall-booking/internal/usecase"
	"hall-booking/pkg/utils"

	"go.uber.org/zap"
)

type HallHandler struct {
	service usecase.HallService
	log     *zap.Logger
}

func NewHallHandler(service usecase.HallService, log *zap.Logger) *HallHandler {
	return &HallHandler{
		service: service,
		log:     log.With(zap.String("handler", "hall")),
	}
}

// ListHalls handles GET /api/halls (public)
func (h *HallHandler) ListHalls(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := request.ListHallsRequest{
		Search:      query.Get("search"),
		City:        query.Get("city"),
		MinCapacity: utils.ParseInt(query.Get("minCapacity"), 0),
		Sort:        query.Get("sort"),
		Page:        utils.ParseInt(query.Get("page"), 1),
		Limit:       utils.ParseInt(query.Get("limit"), 10),
	}

	if v, ok := utils.ParseFloat(query.Get("minPrice")); ok {
		req.MinPrice = &v
	}
	if v, ok := utils.ParseFloat(query.Get("maxPrice")); ok {
		req.MaxPrice = &v
	}
	if amenities := query.Get("amenities"); amenities != "" {
		for _, a := range strings.Split(amenities, ",") {
			if a = strings.TrimSpace(a); a != "" {
				req.Amenities = append(req.Amenities, a)
			}
		}
	}

	halls, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list halls")
		return
	}

	utils.ResponseSuccess(w, "success", halls)
}

// GetHall handles GET /api/halls/{id} (public)
func (h *HallHandler) GetHall(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	hall, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get hall")
		return
	}

	utils.ResponseSuccess(w, "success", hall)
}

// CreateHall handles POST /api/halls (hall-owner and up)
func (h *HallHandler) CreateHall(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	var req request.CreateHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hall, err := h.service.Create(r.Context(), actor, req)
	if err != nil {
		handleServiceError(w, h.log, err, "create hall")
		return
	}

	utils.ResponseCreated(w, "Hall created successfully", hall)
}

// UpdateHall handles PUT /api/halls/{id} (protected)
func (h *HallHandler) UpdateHall(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hall, err := h.service.Update(r.Context(), actor, id, req)
	if err != nil {
		handleServiceError(w, h.log, err, "update hall")
		return
	}

	utils.ResponseSuccess(w, "Hall updated successfully", hall)
}

// DeleteHall handles DELETE /api/halls/{id} (protected)
func (h *HallHandler) DeleteHall(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		handleServiceError(w, h.log, err, "delete hall")
		return
	}

	utils.ResponseSuccess(w, "Hall deleted successfully", nil)
}

// MyHalls handles GET /api/halls/owner/my-halls (hall-owner and up)
func (h *HallHandler) MyHalls(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	halls, err := h.service.MyHalls(r.Context(), actor)
	if err != nil {
		handleServiceError(w, h.log, err, "list owned halls")
		return
	}

	utils.ResponseSuccess(w, "success", halls)
}

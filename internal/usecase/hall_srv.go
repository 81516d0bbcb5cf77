package usecase

import (
	"context"
	"fmt"
	"strings"

	"hall-booking/internal/data/entity"
	"hall-booking/internal/data/repository"
	"hall-booking/internal/dto/request"
	"hall-booking/internal/dto/response"
	"hall-booking/pkg/cache"
	"hall-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const hallListCachePrefix = "halls:list:"

type HallService interface {
	List(ctx context.Context, req request.ListHallsRequest) (*response.HallListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*response.HallResponse, error)
	Create(ctx context.Context, actor utils.Actor, req request.CreateHallRequest) (*response.HallResponse, error)
	Update(ctx context.Context, actor utils.Actor, id uuid.UUID, req request.UpdateHallRequest) (*response.HallResponse, error)
	Delete(ctx context.Context, actor utils.Actor, id uuid.UUID) error
	MyHalls(ctx context.Context, actor utils.Actor) ([]response.HallResponse, error)
}

type hallService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewHallService(repo *repository.Repository, cache *cache.Cache, log *zap.Logger) HallService {
	return &hallService{
		repo:  repo,
		cache: cache,
		log:   log.With(zap.String("service", "hall")),
	}
}

// List returns active halls only, whatever the caller's role
func (s *hallService) List(ctx context.Context, req request.ListHallsRequest) (*response.HallListResponse, error) {
	page, limit := normalizePage(req.Page, req.Limit)

	key := hallListCacheKey(req, page, limit)
	var cached response.HallListResponse
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	filter := repository.HallFilter{
		Search:      req.Search,
		City:        req.City,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		MinCapacity: req.MinCapacity,
		Amenities:   req.Amenities,
		Status:      entity.HallStatusActive,
	}

	halls, err := s.repo.Hall.List(ctx, filter, req.Sort, limit, utils.CalculateOffset(page, limit))
	if err != nil {
		return nil, fmt.Errorf("listing halls: %w", err)
	}

	total, err := s.repo.Hall.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("counting halls: %w", err)
	}

	items := make([]response.HallResponse, 0, len(halls))
	for _, hall := range halls {
		items = append(items, response.HallToResponse(hall))
	}

	resp := &response.HallListResponse{
		Halls:      items,
		Pagination: response.NewPaginationMeta(page, limit, total),
	}
	s.cache.SetJSON(ctx, key, resp)

	return resp, nil
}

// Get returns the hall regardless of status so owners can inspect pending
// listings, with the owner's contact attached
func (s *hallService) Get(ctx context.Context, id uuid.UUID) (*response.HallResponse, error) {
	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding hall: %w", err)
	}
	if hall == nil {
		return nil, ErrHallNotFound
	}

	resp := response.HallToResponse(hall)

	owner, _ := s.repo.User.FindByID(ctx, hall.OwnerID)
	resp.Owner = response.UserToSummary(owner)

	return &resp, nil
}

// Create registers a new listing in pending status awaiting admin approval
func (s *hallService) Create(ctx context.Context, actor utils.Actor, req request.CreateHallRequest) (*response.HallResponse, error) {
	priceType := entity.PricePerDay
	if req.PriceType != "" {
		priceType = entity.PriceType(req.PriceType)
	}

	hall := &entity.Hall{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     actor.UserID,
		Location: entity.Location{
			Address: req.Location.Address,
			City:    req.Location.City,
			State:   req.Location.State,
			Pincode: req.Location.Pincode,
			Lat:     req.Location.Lat,
			Lng:     req.Location.Lng,
		},
		Capacity:     req.Capacity,
		Price:        req.Price,
		PriceType:    priceType,
		Amenities:    req.Amenities,
		Images:       hallImagesFromRequest(req.Images),
		Availability: availabilityFromRequest(req.Availability),
		Status:       entity.HallStatusPending,
	}

	if err := s.repo.Hall.Create(ctx, hall); err != nil {
		return nil, fmt.Errorf("creating hall: %w", err)
	}

	s.log.Info("Hall created",
		zap.String("hallId", hall.ID.String()),
		zap.String("ownerId", actor.UserID.String()))
	s.cache.DeletePrefix(ctx, hallListCachePrefix)

	resp := response.HallToResponse(hall)
	return &resp, nil
}

func (s *hallService) Update(ctx context.Context, actor utils.Actor, id uuid.UUID, req request.UpdateHallRequest) (*response.HallResponse, error) {
	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding hall: %w", err)
	}
	if hall == nil {
		return nil, ErrHallNotFound
	}

	role := entity.UserRole(actor.Role)
	if hall.OwnerID != actor.UserID && !role.IsPrivileged() {
		return nil, fmt.Errorf("%w to update this hall", ErrForbidden)
	}

	if req.Name != nil {
		hall.Name = *req.Name
	}
	if req.Description != nil {
		hall.Description = *req.Description
	}
	if req.Location != nil {
		hall.Location = entity.Location{
			Address: req.Location.Address,
			City:    req.Location.City,
			State:   req.Location.State,
			Pincode: req.Location.Pincode,
			Lat:     req.Location.Lat,
			Lng:     req.Location.Lng,
		}
	}
	if req.Capacity != nil {
		hall.Capacity = *req.Capacity
	}
	if req.Price != nil {
		hall.Price = *req.Price
	}
	if req.PriceType != nil {
		hall.PriceType = entity.PriceType(*req.PriceType)
	}
	if req.Amenities != nil {
		hall.Amenities = req.Amenities
	}
	if req.Images != nil {
		hall.Images = hallImagesFromRequest(req.Images)
	}
	if req.Availability != nil {
		hall.Availability = availabilityFromRequest(req.Availability)
	}
	// Owners cannot move their own listing out of moderation
	if req.Status != nil && role.IsPrivileged() {
		hall.Status = entity.HallStatus(*req.Status)
	}

	if err := s.repo.Hall.Update(ctx, hall); err != nil {
		return nil, fmt.Errorf("updating hall: %w", err)
	}

	s.cache.DeletePrefix(ctx, hallListCachePrefix)

	resp := response.HallToResponse(hall)
	return &resp, nil
}

func (s *hallService) Delete(ctx context.Context, actor utils.Actor, id uuid.UUID) error {
	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("finding hall: %w", err)
	}
	if hall == nil {
		return ErrHallNotFound
	}

	if hall.OwnerID != actor.UserID && !entity.UserRole(actor.Role).IsPrivileged() {
		return fmt.Errorf("%w to delete this hall", ErrForbidden)
	}

	if err := s.repo.Hall.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting hall: %w", err)
	}

	s.log.Info("Hall deleted",
		zap.String("hallId", id.String()),
		zap.String("actorId", actor.UserID.String()))
	s.cache.DeletePrefix(ctx, hallListCachePrefix)

	return nil
}

func (s *hallService) MyHalls(ctx context.Context, actor utils.Actor) ([]response.HallResponse, error) {
	halls, err := s.repo.Hall.FindByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing owned halls: %w", err)
	}

	items := make([]response.HallResponse, 0, len(halls))
	for _, hall := range halls {
		items = append(items, response.HallToResponse(hall))
	}
	return items, nil
}

func hallImagesFromRequest(images []request.HallImageRequest) []entity.HallImage {
	if images == nil {
		return nil
	}
	out := make([]entity.HallImage, 0, len(images))
	for _, img := range images {
		out = append(out, entity.HallImage{URL: img.URL, Caption: img.Caption})
	}
	return out
}

func availabilityFromRequest(availability map[string]request.DayAvailabilityRequest) entity.Availability {
	if availability == nil {
		return nil
	}
	out := make(entity.Availability, len(availability))
	for day, slot := range availability {
		out[strings.ToLower(day)] = entity.DayAvailability{
			IsAvailable: slot.IsAvailable,
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
		}
	}
	return out
}

func hallListCacheKey(req request.ListHallsRequest, page, limit int) string {
	minPrice, maxPrice := "", ""
	if req.MinPrice != nil {
		minPrice = fmt.Sprintf("%g", *req.MinPrice)
	}
	if req.MaxPrice != nil {
		maxPrice = fmt.Sprintf("%g", *req.MaxPrice)
	}
	return fmt.Sprintf("%s%s|%s|%s|%s|%d|%s|%s|%d|%d",
		hallListCachePrefix,
		req.Search, req.City, minPrice, maxPrice, req.MinCapacity,
		strings.Join(req.Amenities, ","), req.Sort, page, limit)
}

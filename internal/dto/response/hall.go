package response

import (
	"time"

	"hall-booking/internal/data/entity"
)

type HallResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	OwnerID      string              `json:"ownerId"`
	Owner        *UserSummary        `json:"owner,omitempty"`
	Location     entity.Location     `json:"location"`
	Capacity     int                 `json:"capacity"`
	Price        float64             `json:"price"`
	PriceType    entity.PriceType    `json:"priceType"`
	Amenities    []string            `json:"amenities"`
	Images       []entity.HallImage  `json:"images"`
	Availability entity.Availability `json:"availability,omitempty"`
	Rating       float64             `json:"rating"`
	ReviewCount  int                 `json:"reviewCount"`
	Status       entity.HallStatus   `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// HallSummary is the hall slice attached to bookings
type HallSummary struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Location entity.Location    `json:"location"`
	Images   []entity.HallImage `json:"images,omitempty"`
	Price    float64            `json:"price"`
}

type HallListResponse struct {
	Halls      []HallResponse `json:"halls"`
	Pagination PaginationMeta `json:"pagination"`
}

func HallToResponse(hall *entity.Hall) HallResponse {
	return HallResponse{
		ID:           hall.ID.String(),
		Name:         hall.Name,
		Description:  hall.Description,
		OwnerID:      hall.OwnerID.String(),
		Location:     hall.Location,
		Capacity:     hall.Capacity,
		Price:        hall.Price,
		PriceType:    hall.PriceType,
		Amenities:    hall.Amenities,
		Images:       hall.Images,
		Availability: hall.Availability,
		Rating:       hall.Rating,
		ReviewCount:  hall.ReviewCount,
		Status:       hall.Status,
		CreatedAt:    hall.CreatedAt,
	}
}

func HallToSummary(hall *entity.Hall) *HallSummary {
	if hall == nil {
		return nil
	}
	return &HallSummary{
		ID:       hall.ID.String(),
		Name:     hall.Name,
		Location: hall.Location,
		Images:   hall.Images,
		Price:    hall.Price,
	}
}

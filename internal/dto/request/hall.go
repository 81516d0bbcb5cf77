package request

type LocationRequest struct {
	Address string   `json:"address" validate:"required"`
	City    string   `json:"city" validate:"required"`
	State   string   `json:"state" validate:"required"`
	Pincode string   `json:"pincode" validate:"required"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type HallImageRequest struct {
	URL     string `json:"url" validate:"required,url"`
	Caption string `json:"caption,omitempty"`
}

type DayAvailabilityRequest struct {
	IsAvailable bool   `json:"isAvailable"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
}

type CreateHallRequest struct {
	Name         string                            `json:"name" validate:"required,min=3,max=200"`
	Description  string                            `json:"description" validate:"required"`
	Location     LocationRequest                   `json:"location" validate:"required"`
	Capacity     int                               `json:"capacity" validate:"required,gt=0"`
	Price        float64                           `json:"price" validate:"required,gt=0"`
	PriceType    string                            `json:"priceType" validate:"omitempty,oneof=per_day per_hour fixed"`
	Amenities    []string                          `json:"amenities,omitempty"`
	Images       []HallImageRequest                `json:"images,omitempty" validate:"omitempty,dive"`
	Availability map[string]DayAvailabilityRequest `json:"availability,omitempty"`
}

// UpdateHallRequest uses pointers so only supplied fields are overwritten
type UpdateHallRequest struct {
	Name         *string                           `json:"name,omitempty" validate:"omitempty,min=3,max=200"`
	Description  *string                           `json:"description,omitempty"`
	Location     *LocationRequest                  `json:"location,omitempty"`
	Capacity     *int                              `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	Price        *float64                          `json:"price,omitempty" validate:"omitempty,gt=0"`
	PriceType    *string                           `json:"priceType,omitempty" validate:"omitempty,oneof=per_day per_hour fixed"`
	Amenities    []string                          `json:"amenities,omitempty"`
	Images       []HallImageRequest                `json:"images,omitempty" validate:"omitempty,dive"`
	Availability map[string]DayAvailabilityRequest `json:"availability,omitempty"`
	// Honored only when the caller is admin or super-admin
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=pending active inactive rejected"`
}

// ListHallsRequest is built by the handler from query parameters
type ListHallsRequest struct {
	Search      string
	City        string
	MinPrice    *float64
	MaxPrice    *float64
	MinCapacity int
	Amenities   []string
	Sort        string
	Page        int
	Limit       int
}

package entity

import "github.com/google/uuid"

type HallStatus string

const (
	HallStatusPending  HallStatus = "pending"
	HallStatusActive   HallStatus = "active"
	HallStatusInactive HallStatus = "inactive"
	HallStatusRejected HallStatus = "rejected"
)

type PriceType string

const (
	PricePerDay  PriceType = "per_day"
	PricePerHour PriceType = "per_hour"
	PriceFixed   PriceType = "fixed"
)

// Location is stored inline on the halls row
type Location struct {
	Address string   `json:"address"`
	City    string   `json:"city"`
	State   string   `json:"state"`
	Pincode string   `json:"pincode"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type HallImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// DayAvailability is informational only; the booking flow does not enforce it
type DayAvailability struct {
	IsAvailable bool   `json:"isAvailable"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
}

// Availability maps lowercase weekday names to open/close info
type Availability map[string]DayAvailability

type Hall struct {
	Base
	Name         string       `db:"name"`
	Description  string       `db:"description"`
	OwnerID      uuid.UUID    `db:"owner_id"`
	Location     Location     `db:"location"`
	Capacity     int          `db:"capacity"`
	Price        float64      `db:"price"`
	PriceType    PriceType    `db:"price_type"`
	Amenities    []string     `db:"amenities"`
	Images       []HallImage  `db:"images"`
	Availability Availability `db:"availability"`
	Rating       float64      `db:"rating"`
	ReviewCount  int          `db:"review_count"`
	Status       HallStatus   `db:"status"`
}

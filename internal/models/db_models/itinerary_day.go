package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ItineraryDayItem stores one generated day verbatim as a jsonb blob,
// keyed by (trip_id, day). Content is the canonical ItineraryDay shape the
// recovery pipeline guarantees, so readers can trust every field is set.
type ItineraryDayItem struct {
	BaseModel
	TripID uuid.UUID `gorm:"index:idx_itinerary_trip_day,unique"`
	Day    int       `gorm:"index:idx_itinerary_trip_day,unique"`

	Content      datatypes.JSON `gorm:"type:jsonb"`
	CostEstimate float64
}

package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"index"`
	Title       string
	Destination string
	StartDate   time.Time `gorm:"type:date"`
	EndDate     time.Time `gorm:"type:date"`
	Budget      float64
	Persona     string

	// Public read-only link; generated at creation time.
	ShareID string `gorm:"uniqueIndex"`

	// Cached alternative-destination suggestions for the trip wizard.
	Suggestions pq.StringArray `gorm:"type:text[]"`

	Preferences   TripPreference     `gorm:"foreignKey:TripID"`
	ItineraryDays []ItineraryDayItem `gorm:"foreignKey:TripID"`
}

// TripPreference stores the interest toggles chosen in the wizard,
// one row per trip.
type TripPreference struct {
	BaseModel
	TripID uuid.UUID `gorm:"uniqueIndex"`

	InterestCulture   bool
	InterestFood      bool
	InterestNature    bool
	InterestShopping  bool
	InterestNightlife bool
}

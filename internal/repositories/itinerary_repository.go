package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "wanderplan/internal/models/db_models"
)

// ItineraryRepository persists generated itineraries. Reads go through
// TripRepository, which preloads the stored days with the trip.
type ItineraryRepository interface {
	ReplaceItinerary(ctx context.Context, tripId string, days []dbm.ItineraryDayItem) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// ReplaceItinerary swaps out the trip's stored days atomically so a
// regeneration never leaves a mix of old and new days.
func (r *itineraryRepository) ReplaceItinerary(ctx context.Context, tripId string, days []dbm.ItineraryDayItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", tripId).Delete(&dbm.ItineraryDayItem{}).Error; err != nil {
			return err
		}
		if len(days) == 0 {
			return nil
		}
		return tx.Create(&days).Error
	})
}

package repositories

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	dbm "wanderplan/internal/models/db_models"
	"wanderplan/pkg/utils"
)

type TripRepository interface {
	CreateTrip(ctx context.Context, trip *dbm.Trip) error
	GetTripsByUserId(ctx context.Context, userId string, page int, pageSize int) ([]dbm.Trip, error)
	GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error)
	GetTripByShareId(ctx context.Context, shareId string) (*dbm.Trip, error)
	UpdateSuggestions(ctx context.Context, tripId string, suggestions []string) error
	DeleteTrip(ctx context.Context, tripId string, userId string) error
	CountTripsCreatedSince(ctx context.Context, userId string, since int64) (int64, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

// CreateTrip persists the trip together with its preference row in one
// transaction so a half-created trip never becomes visible.
func (r *tripRepository) CreateTrip(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(trip).Error
	})
}

func (r *tripRepository) GetTripsByUserId(ctx context.Context, userId string, page int, pageSize int) ([]dbm.Trip, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripId).
		Preload("Preferences").
		Preload("ItineraryDays", func(db *gorm.DB) *gorm.DB {
			return db.Order("day ASC")
		}).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrTripNotFound
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) GetTripByShareId(ctx context.Context, shareId string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("share_id = ?", shareId).
		Preload("Preferences").
		Preload("ItineraryDays", func(db *gorm.DB) *gorm.DB {
			return db.Order("day ASC")
		}).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrTripNotFound
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) UpdateSuggestions(ctx context.Context, tripId string, suggestions []string) error {
	res := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ?", tripId).
		Update("suggestions", pq.StringArray(suggestions))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrTripNotFound
	}
	return nil
}

// DeleteTrip removes the trip and its dependent rows. The user filter
// keeps one user from deleting another user's trip by id.
func (r *tripRepository) DeleteTrip(ctx context.Context, tripId string, userId string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trip dbm.Trip
		if err := tx.Where("id = ? AND user_id = ?", tripId, userId).First(&trip).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrTripNotFound
			}
			return err
		}
		if err := tx.Where("trip_id = ?", trip.ID).Delete(&dbm.ItineraryDayItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", trip.ID).Delete(&dbm.TripPreference{}).Error; err != nil {
			return err
		}
		return tx.Delete(&trip).Error
	})
}

func (r *tripRepository) CountTripsCreatedSince(ctx context.Context, userId string, since int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("user_id = ? AND created_at >= ?", userId, since).
		Count(&count).Error
	return count, err
}

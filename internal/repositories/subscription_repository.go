package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "wanderplan/internal/models/db_models"
)

type SubscriptionRepository interface {
	// GetActiveSubscription returns nil when the user has no active
	// subscription; callers treat that as the free plan.
	GetActiveSubscription(ctx context.Context, userId string) (*dbm.Subscription, error)
	UpsertSubscription(ctx context.Context, sub *dbm.Subscription) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetActiveSubscription(ctx context.Context, userId string) (*dbm.Subscription, error) {
	var sub dbm.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userId, dbm.SubStatusActive).
		Order("current_period_end DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) UpsertSubscription(ctx context.Context, sub *dbm.Subscription) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing dbm.Subscription
		err := tx.Where("user_id = ?", sub.UserID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(sub).Error
		case err != nil:
			return err
		default:
			sub.ID = existing.ID
			return tx.Save(sub).Error
		}
	})
}

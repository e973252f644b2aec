package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"wanderplan/internal/repositories"
	"wanderplan/pkg/utils"
)

// PlanLimits describes what one subscription tier allows. -1 means
// unlimited.
type PlanLimits struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	TripsPerMonth   int    `json:"trips_per_month"`
	MaxTripDuration int    `json:"max_trip_duration"`
	Regenerations   int    `json:"regenerations"`
}

var planCatalog = map[string]PlanLimits{
	"free": {
		Code:            "free",
		Name:            "Free",
		TripsPerMonth:   1,
		MaxTripDuration: 3,
		Regenerations:   1,
	},
	"explorer": {
		Code:            "explorer",
		Name:            "Explorer",
		TripsPerMonth:   5,
		MaxTripDuration: 30,
		Regenerations:   -1,
	},
	"adventurer": {
		Code:            "adventurer",
		Name:            "Adventurer",
		TripsPerMonth:   -1,
		MaxTripDuration: -1,
		Regenerations:   -1,
	},
}

type PlanServiceInterface interface {
	GetPlanForUser(ctx context.Context, userId string) (PlanLimits, error)
	CheckTripDuration(ctx context.Context, userId string, totalDays int) error
	CheckTripQuota(ctx context.Context, userId string) error
	ListPlans() []PlanLimits
}

type planService struct {
	subscriptionRepo repositories.SubscriptionRepository
	tripRepo         repositories.TripRepository
	logger           *zap.Logger
}

func NewPlanService(
	subscriptionRepo repositories.SubscriptionRepository,
	tripRepo repositories.TripRepository,
	logger *zap.Logger,
) PlanServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &planService{
		subscriptionRepo: subscriptionRepo,
		tripRepo:         tripRepo,
		logger:           logger,
	}
}

// GetPlanForUser resolves the user's tier. No subscription, an expired
// period, or an unknown plan code all resolve to the free tier.
func (s *planService) GetPlanForUser(ctx context.Context, userId string) (PlanLimits, error) {
	sub, err := s.subscriptionRepo.GetActiveSubscription(ctx, userId)
	if err != nil {
		return PlanLimits{}, utils.ErrDatabaseError
	}
	if sub == nil || sub.CurrentPeriodEnd < time.Now().Unix() {
		return planCatalog["free"], nil
	}
	plan, ok := planCatalog[sub.PlanCode]
	if !ok {
		s.logger.Warn("unknown plan code on subscription, treating as free",
			zap.String("plan_code", sub.PlanCode),
			zap.String("user_id", userId))
		return planCatalog["free"], nil
	}
	return plan, nil
}

func (s *planService) CheckTripDuration(ctx context.Context, userId string, totalDays int) error {
	plan, err := s.GetPlanForUser(ctx, userId)
	if err != nil {
		return err
	}
	if plan.MaxTripDuration >= 0 && totalDays > plan.MaxTripDuration {
		return utils.ErrPlanLimitExceeded
	}
	return nil
}

func (s *planService) CheckTripQuota(ctx context.Context, userId string) error {
	plan, err := s.GetPlanForUser(ctx, userId)
	if err != nil {
		return err
	}
	if plan.TripsPerMonth < 0 {
		return nil
	}
	monthStart := time.Now().AddDate(0, -1, 0).Unix()
	count, err := s.tripRepo.CountTripsCreatedSince(ctx, userId, monthStart)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if count >= int64(plan.TripsPerMonth) {
		return utils.ErrPlanLimitExceeded
	}
	return nil
}

func (s *planService) ListPlans() []PlanLimits {
	return []PlanLimits{planCatalog["free"], planCatalog["explorer"], planCatalog["adventurer"]}
}

package trip_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wanderplan/internal/repositories"
	"wanderplan/internal/services"
)

var Module = fx.Provide(
	provideTripRepo,
	provideSubscriptionRepo,
	providePlanService,
	provideTripService,
)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func providePlanService(
	subscriptionRepo repositories.SubscriptionRepository,
	tripRepo repositories.TripRepository,
	logger *zap.Logger,
) services.PlanServiceInterface {
	return services.NewPlanService(subscriptionRepo, tripRepo, logger)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	planService services.PlanServiceInterface,
	logger *zap.Logger,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, planService, logger)
}

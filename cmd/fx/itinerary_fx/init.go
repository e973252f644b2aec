package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wanderplan/internal/recovery"
	"wanderplan/internal/repositories"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideItineraryService,
	provideSuggestionService,
)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	llm utils.CompletionClientInterface,
	engine *recovery.Engine,
	planService services.PlanServiceInterface,
	itineraryRepo repositories.ItineraryRepository,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(llm, engine, planService, itineraryRepo, logger)
}

func provideSuggestionService(
	llm utils.CompletionClientInterface,
	tripRepo repositories.TripRepository,
	logger *zap.Logger,
) services.SuggestionServiceInterface {
	return services.NewSuggestionService(llm, tripRepo, logger)
}

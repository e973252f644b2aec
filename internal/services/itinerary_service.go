package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"wanderplan/internal/models/db_models"
	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/internal/recovery"
	"wanderplan/internal/repositories"
	"wanderplan/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, userId string, req request_models.TripRequest) (*response_models.GenerateItineraryResponse, error)
}

type itineraryService struct {
	llm           utils.CompletionClientInterface
	engine        *recovery.Engine
	planService   PlanServiceInterface
	itineraryRepo repositories.ItineraryRepository
	logger        *zap.Logger
}

func NewItineraryService(
	llm utils.CompletionClientInterface,
	engine *recovery.Engine,
	planService PlanServiceInterface,
	itineraryRepo repositories.ItineraryRepository,
	logger *zap.Logger,
) ItineraryServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &itineraryService{
		llm:           llm,
		engine:        engine,
		planService:   planService,
		itineraryRepo: itineraryRepo,
		logger:        logger,
	}
}

// GenerateItinerary validates the request, asks the model for an
// itinerary and runs the recovery pipeline over whatever comes back.
// Validation, plan-limit and transport errors are returned; once a
// response is in hand the result is always a complete itinerary.
func (s *itineraryService) GenerateItinerary(ctx context.Context, userId string, req request_models.TripRequest) (*response_models.GenerateItineraryResponse, error) {
	start, err := utils.ParseISODate(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseISODate(req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, utils.ErrInvalidDateRange
	}
	if req.Destination == "" {
		return nil, utils.ErrInvalidInput
	}

	totalDays := utils.DayCountInclusive(start, end)
	if err := s.planService.CheckTripDuration(ctx, userId, totalDays); err != nil {
		return nil, err
	}

	raw, err := s.llm.Complete(ctx, recovery.BuildItineraryPrompt(req))
	if err != nil {
		// Recovery only covers malformed responses. A transport failure
		// means there is no response to recover.
		s.logger.Error("completion request failed",
			zap.String("destination", req.Destination),
			zap.Error(err))
		return nil, utils.ErrAIProviderUnavailable
	}

	result := s.engine.Recover(raw, req)

	if req.TripID != "" {
		if err := s.persistItinerary(ctx, req.TripID, result.Days); err != nil {
			s.logger.Error("failed to persist itinerary",
				zap.String("trip_id", req.TripID),
				zap.Error(err))
		}
	}

	return &response_models.GenerateItineraryResponse{
		Itinerary:     result.Days,
		TotalDays:     result.TotalDays,
		GeneratedDays: result.GeneratedDays,
		IsComplete:    result.IsComplete,
		IsAIGenerated: result.IsAIGenerated,
	}, nil
}

func (s *itineraryService) persistItinerary(ctx context.Context, tripId string, days []response_models.ItineraryDay) error {
	tripUUID, err := parseTripUUID(tripId)
	if err != nil {
		return err
	}

	items := make([]db_models.ItineraryDayItem, 0, len(days))
	for _, day := range days {
		content, err := json.Marshal(day)
		if err != nil {
			return err
		}
		items = append(items, db_models.ItineraryDayItem{
			TripID:       tripUUID,
			Day:          day.Day,
			Content:      datatypes.JSON(content),
			CostEstimate: day.EstimatedCost,
		})
	}
	return s.itineraryRepo.ReplaceItinerary(ctx, tripId, items)
}

var errBadTripID = errors.New("trip id is not a uuid")

func parseTripUUID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errBadTripID
	}
	return u, nil
}

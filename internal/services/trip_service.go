package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wanderplan/internal/models/db_models"
	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/internal/repositories"
	"wanderplan/pkg/utils"
)

var personaOptions = []response_models.PersonaOption{
	{Value: "budget", Label: "Budget Backpacker", Description: "Hostels, street food and free attractions"},
	{Value: "comfort", Label: "Comfort Seeker", Description: "Mid-range hotels with a relaxed pace"},
	{Value: "luxury", Label: "Luxury Traveler", Description: "High-end stays, fine dining and private tours"},
	{Value: "family", Label: "Family Explorer", Description: "Kid-friendly activities and manageable days"},
	{Value: "foodie", Label: "Food Enthusiast", Description: "Markets, food tours and local specialties first"},
	{Value: "culture", Label: "Culture Buff", Description: "Museums, heritage sites and local traditions"},
	{Value: "adventure", Label: "Adventure Seeker", Description: "Hikes, water sports and adrenaline activities"},
	{Value: "slow", Label: "Slow Traveler", Description: "Fewer stops, longer stays, neighborhood life"},
}

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userId string, req request_models.CreateTripRequest) (*response_models.TripResponse, error)
	GetTripsByUserId(ctx context.Context, userId string, page int, pageSize int) ([]response_models.TripResponse, error)
	GetTripDetail(ctx context.Context, userId string, tripId string) (*response_models.TripDetailResponse, error)
	GetSharedTrip(ctx context.Context, shareId string) (*response_models.TripDetailResponse, error)
	DeleteTrip(ctx context.Context, userId string, tripId string) error
	ListPersonas() []response_models.PersonaOption
}

type tripService struct {
	tripRepo    repositories.TripRepository
	planService PlanServiceInterface
	logger      *zap.Logger
}

func NewTripService(
	tripRepo repositories.TripRepository,
	planService PlanServiceInterface,
	logger *zap.Logger,
) TripServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &tripService{tripRepo: tripRepo, planService: planService, logger: logger}
}

func (s *tripService) CreateTrip(ctx context.Context, userId string, req request_models.CreateTripRequest) (*response_models.TripResponse, error) {
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
	if strings.TrimSpace(req.Destination) == "" {
		return nil, utils.ErrInvalidInput
	}

	userUUID, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	if err := s.planService.CheckTripQuota(ctx, userId); err != nil {
		return nil, err
	}
	totalDays := utils.DayCountInclusive(start, end)
	if err := s.planService.CheckTripDuration(ctx, userId, totalDays); err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = "Trip to " + req.Destination
	}

	trip := db_models.Trip{
		UserID:      userUUID,
		Title:       title,
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		Budget:      req.Budget,
		Persona:     req.Persona,
		ShareID:     uuid.NewString(),
		Preferences: db_models.TripPreference{
			InterestCulture:   req.Interests.Culture,
			InterestFood:      req.Interests.Food,
			InterestNature:    req.Interests.Nature,
			InterestShopping:  req.Interests.Shopping,
			InterestNightlife: req.Interests.Nightlife,
		},
	}
	if err := s.tripRepo.CreateTrip(ctx, &trip); err != nil {
		s.logger.Error("failed to create trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp := toTripResponse(&trip)
	return &resp, nil
}

func (s *tripService) GetTripsByUserId(ctx context.Context, userId string, page int, pageSize int) ([]response_models.TripResponse, error) {
	trips, err := s.tripRepo.GetTripsByUserId(ctx, userId, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, toTripResponse(&trips[i]))
	}
	return out, nil
}

func (s *tripService) GetTripDetail(ctx context.Context, userId string, tripId string) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, err
	}
	if trip.UserID.String() != userId {
		return nil, utils.ErrTripNotFound
	}
	return s.toTripDetail(trip), nil
}

// GetSharedTrip serves the public share link. No ownership check: a
// share id is itself the capability.
func (s *tripService) GetSharedTrip(ctx context.Context, shareId string) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetTripByShareId(ctx, shareId)
	if err != nil {
		return nil, err
	}
	return s.toTripDetail(trip), nil
}

func (s *tripService) DeleteTrip(ctx context.Context, userId string, tripId string) error {
	return s.tripRepo.DeleteTrip(ctx, tripId, userId)
}

func (s *tripService) ListPersonas() []response_models.PersonaOption {
	return personaOptions
}

func toTripResponse(trip *db_models.Trip) response_models.TripResponse {
	return response_models.TripResponse{
		ID:          trip.ID.String(),
		Title:       trip.Title,
		Destination: trip.Destination,
		StartDate:   utils.FormatISODate(trip.StartDate),
		EndDate:     utils.FormatISODate(trip.EndDate),
		Budget:      trip.Budget,
		Persona:     trip.Persona,
		ShareID:     trip.ShareID,
		TotalDays:   utils.DayCountInclusive(trip.StartDate, trip.EndDate),
		CreatedAt:   trip.CreatedAt,
	}
}

func (s *tripService) toTripDetail(trip *db_models.Trip) *response_models.TripDetailResponse {
	detail := response_models.TripDetailResponse{
		TripResponse: toTripResponse(trip),
		Interests: map[string]bool{
			"culture":   trip.Preferences.InterestCulture,
			"food":      trip.Preferences.InterestFood,
			"nature":    trip.Preferences.InterestNature,
			"shopping":  trip.Preferences.InterestShopping,
			"nightlife": trip.Preferences.InterestNightlife,
		},
		Suggestions: trip.Suggestions,
	}

	for _, item := range trip.ItineraryDays {
		var day response_models.ItineraryDay
		if err := json.Unmarshal(item.Content, &day); err != nil {
			s.logger.Warn("skipping unreadable stored itinerary day",
				zap.String("trip_id", trip.ID.String()),
				zap.Int("day", item.Day),
				zap.Error(err))
			continue
		}
		detail.Itinerary = append(detail.Itinerary, day)
	}
	return &detail
}

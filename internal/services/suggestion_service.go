package services

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/internal/recovery"
	"wanderplan/internal/repositories"
	"wanderplan/pkg/utils"
)

type SuggestionServiceInterface interface {
	EstimateTripCost(ctx context.Context, req request_models.TripRequest) (*response_models.CostEstimateResponse, error)
	SuggestDestinations(ctx context.Context, req request_models.SuggestionRequest) (*response_models.SuggestionResponse, error)
}

type suggestionService struct {
	llm      utils.CompletionClientInterface
	tripRepo repositories.TripRepository
	logger   *zap.Logger
}

func NewSuggestionService(
	llm utils.CompletionClientInterface,
	tripRepo repositories.TripRepository,
	logger *zap.Logger,
) SuggestionServiceInterface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &suggestionService{llm: llm, tripRepo: tripRepo, logger: logger}
}

var firstIntegerRe = regexp.MustCompile(`\d[\d,]*`)

// EstimateTripCost asks the model for a single number and falls back to
// the traveler's own budget when the reply has no usable figure.
func (s *suggestionService) EstimateTripCost(ctx context.Context, req request_models.TripRequest) (*response_models.CostEstimateResponse, error) {
	if req.Destination == "" {
		return nil, utils.ErrInvalidInput
	}

	estimate := req.Budget
	fromModel := false

	raw, err := s.llm.Complete(ctx, recovery.BuildCostEstimatePrompt(req))
	if err != nil {
		s.logger.Warn("cost estimate request failed, using traveler budget",
			zap.String("destination", req.Destination),
			zap.Error(err))
	} else if match := firstIntegerRe.FindString(raw); match != "" {
		cleaned := strings.ReplaceAll(match, ",", "")
		if parsed, perr := strconv.ParseFloat(cleaned, 64); perr == nil && parsed > 0 {
			estimate = parsed
			fromModel = true
		}
	}

	return &response_models.CostEstimateResponse{
		EstimatedCost: estimate,
		Currency:      "USD",
		IsAIGenerated: fromModel,
	}, nil
}

// SuggestDestinations returns up to five alternative destinations
// similar to the requested one. A reply that cannot be parsed as a JSON
// string array yields an empty list, not an error. When the request
// names a stored trip the result is cached on it.
func (s *suggestionService) SuggestDestinations(ctx context.Context, req request_models.SuggestionRequest) (*response_models.SuggestionResponse, error) {
	if req.Destination == "" {
		return nil, utils.ErrInvalidInput
	}

	trip := request_models.TripRequest{
		Destination: req.Destination,
		Interests:   req.Interests,
	}

	suggestions := []string{}
	raw, err := s.llm.Complete(ctx, recovery.BuildSuggestionPrompt(trip))
	if err != nil {
		s.logger.Warn("suggestion request failed",
			zap.String("destination", req.Destination),
			zap.Error(err))
	} else {
		suggestions = parseSuggestionArray(raw)
	}

	if req.TripID != "" && len(suggestions) > 0 {
		if err := s.tripRepo.UpdateSuggestions(ctx, req.TripID, suggestions); err != nil {
			s.logger.Warn("failed to cache suggestions on trip",
				zap.String("trip_id", req.TripID),
				zap.Error(err))
		}
	}

	return &response_models.SuggestionResponse{Suggestions: suggestions}, nil
}

// parseSuggestionArray extracts a JSON string array from a model reply,
// tolerating markdown fences and surrounding prose.
func parseSuggestionArray(raw string) []string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	open := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if open < 0 || end <= open {
		return []string{}
	}

	var out []string
	if err := json.Unmarshal([]byte(cleaned[open:end+1]), &out); err != nil {
		return []string{}
	}

	cleanedOut := make([]string, 0, len(out))
	for _, s := range out {
		s = strings.TrimSpace(s)
		if s != "" {
			cleanedOut = append(cleanedOut, s)
		}
	}
	if len(cleanedOut) > 5 {
		cleanedOut = cleanedOut[:5]
	}
	return cleanedOut
}

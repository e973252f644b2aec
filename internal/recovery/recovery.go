package recovery

import (
	"time"

	"go.uber.org/zap"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/pkg/utils"
)

// Result is the outcome of recovering an itinerary from model output.
// Days always has exactly the requested length with contiguous day
// numbers and fully populated activities.
type Result struct {
	Days          []response_models.ItineraryDay
	TotalDays     int
	GeneratedDays int
	IsAIGenerated bool
	IsComplete    bool
}

// Engine turns raw model output into a guaranteed-complete itinerary.
// It never returns an error: when nothing structured can be salvaged it
// falls back to a synthesized itinerary built from the trip parameters.
type Engine struct {
	logger *zap.Logger
}

func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// tripSpan resolves the trip's start date and inclusive day count from
// the request. An unparseable start date falls back to today so that
// recovery still produces dated days.
func tripSpan(trip request_models.TripRequest) (time.Time, int) {
	start, err := utils.ParseISODate(trip.StartDate)
	if err != nil {
		start = time.Now().UTC().Truncate(24 * time.Hour)
	}
	end, err := utils.ParseISODate(trip.EndDate)
	if err != nil {
		end = start
	}
	return start, utils.DayCountInclusive(start, end)
}

// Recover runs the full pipeline: bracket extraction, the repair
// strategy ladder, itinerary location, normalization, and completeness
// padding, falling back to a fully synthesized itinerary when no
// strategy yields day data.
func (e *Engine) Recover(raw string, trip request_models.TripRequest) Result {
	start, totalDays := tripSpan(trip)

	rawDays, strategy := e.recoverRawDays(raw)
	if len(rawDays) == 0 {
		e.logger.Warn("no itinerary data recovered, synthesizing fallback",
			zap.String("destination", trip.Destination),
			zap.Int("total_days", totalDays))
		return Result{
			Days:          buildFallbackItinerary(trip, start, totalDays),
			TotalDays:     totalDays,
			GeneratedDays: totalDays,
			IsAIGenerated: false,
			IsComplete:    true,
		}
	}

	days := normalizeDays(rawDays, trip, start)
	generated := len(days)
	complete := generated >= totalDays
	if !complete {
		e.logger.Info("padding short itinerary",
			zap.String("strategy", strategy),
			zap.Int("generated_days", generated),
			zap.Int("total_days", totalDays))
		days = fillShortfall(days, trip, start, totalDays)
	} else {
		e.logger.Info("itinerary recovered",
			zap.String("strategy", strategy),
			zap.Int("generated_days", generated))
	}

	return Result{
		Days:          days,
		TotalDays:     totalDays,
		GeneratedDays: generated,
		IsAIGenerated: true,
		IsComplete:    complete,
	}
}

// recoverRawDays walks the strategy ladder until one parse succeeds.
// The first parseable value is final: if it holds no day array the
// remaining strategies are not tried, since they would only reparse a
// more mangled form of the same text. Returns the raw day values plus
// the name of the strategy that produced them.
func (e *Engine) recoverRawDays(raw string) ([]any, string) {
	extracted, ok := extractBracketed(raw)
	if !ok {
		return nil, ""
	}

	for _, s := range repairStrategies(extracted) {
		parsed, err := s.parse()
		if err != nil {
			continue
		}
		days, err := locateDaysArray(parsed)
		if err != nil || len(days) == 0 {
			return nil, ""
		}
		return days, s.name
	}
	return nil, ""
}

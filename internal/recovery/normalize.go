package recovery

import (
	"fmt"
	"time"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/pkg/utils"
)

// Activity field defaults. The booking link mirrors the one the procedural
// template uses for generic sightseeing.
const (
	defaultTime        = "12:00"
	defaultDescription = "Local experience"
	defaultCurrency    = "USD"
	defaultCategory    = "sightseeing"
	defaultCost        = 50
	defaultLink        = "https://www.getyourguide.com"
)

// normalizeDays maps raw day entries onto the canonical schema. It never
// fails: missing, null or wrong-typed fields all collapse to the same
// deterministic defaults.
func normalizeDays(raw []any, trip request_models.TripRequest, start time.Time) []response_models.ItineraryDay {
	days := make([]response_models.ItineraryDay, 0, len(raw))

	for i, entry := range raw {
		m, _ := entry.(map[string]any)

		day := response_models.ItineraryDay{
			Day:           i + 1,
			Date:          utils.FormatISODate(utils.DateForDay(start, i)),
			Activities:    []response_models.Activity{},
			EstimatedCost: 0,
		}

		if n, ok := numField(m, "day"); ok {
			day.Day = int(n)
		}
		if s, ok := strField(m, "date"); ok {
			day.Date = s
		}
		if n, ok := numField(m, "estimatedCost"); ok {
			day.EstimatedCost = n
		}

		if rawActivities, ok := m["activities"].([]any); ok {
			for j, rawActivity := range rawActivities {
				day.Activities = append(day.Activities, normalizeActivity(rawActivity, j, trip.Destination))
			}
		}

		days = append(days, day)
	}

	return days
}

func normalizeActivity(raw any, index int, destination string) response_models.Activity {
	m, _ := raw.(map[string]any)

	activity := response_models.Activity{
		Time:           defaultTime,
		Title:          fmt.Sprintf("Activity %d", index+1),
		Description:    defaultDescription,
		Location:       destination,
		Cost:           defaultCost,
		PricePerPerson: defaultCost,
		Currency:       defaultCurrency,
		Category:       defaultCategory,
		Link:           defaultLink,
	}

	if s, ok := strField(m, "time"); ok {
		activity.Time = s
	}
	if s, ok := strField(m, "title"); ok {
		activity.Title = s
	}
	if s, ok := strField(m, "description"); ok {
		activity.Description = s
	}
	if s, ok := strField(m, "location"); ok {
		activity.Location = s
	}
	if s, ok := strField(m, "currency"); ok {
		activity.Currency = s
	}
	if s, ok := strField(m, "category"); ok {
		activity.Category = s
	}
	if s, ok := strField(m, "link"); ok {
		activity.Link = s
	}

	// cost and pricePerPerson default from each other before falling back
	// to the flat default, so the two stay mutually consistent.
	cost, hasCost := numField(m, "cost")
	price, hasPrice := numField(m, "pricePerPerson")
	switch {
	case hasCost && hasPrice:
		activity.Cost, activity.PricePerPerson = cost, price
	case hasCost:
		activity.Cost, activity.PricePerPerson = cost, cost
	case hasPrice:
		activity.Cost, activity.PricePerPerson = price, price
	}

	return activity
}

// strField reads a string value, treating absent, null, wrong-typed and
// empty values uniformly as not present.
func strField(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	s, ok := m[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// numField reads a numeric value. Zero counts as absent, mirroring the
// truthiness the defaulting rules were specified with.
func numField(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	n, ok := m[key].(float64)
	if !ok || n == 0 {
		return 0, false
	}
	return n, true
}

package recovery

import (
	"fmt"
	"math"
	"strings"
	"time"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/pkg/utils"
)

// Fixed per-slot budget shares of one day.
const (
	morningShare   = 0.25
	lunchShare     = 0.20
	afternoonShare = 0.35
	eveningShare   = 0.20
)

// Stable placeholder booking links, one per booking-site brand.
const (
	linkGetYourGuide = "https://www.getyourguide.com"
	linkTripAdvisor  = "https://www.tripadvisor.com"
	linkViator       = "https://www.viator.com"
	linkOpenTable    = "https://www.opentable.com"
)

// slotTheme describes one synthesized activity slot.
type slotTheme struct {
	title       string
	description string
	area        string
	category    string
	link        string
}

// morningThemes maps an interest keyword to the themed morning slot it
// selects. Checked in order; the first interest present in the joined
// interest string wins.
var morningThemes = []struct {
	keyword string
	theme   slotTheme
}{
	{"culture", slotTheme{
		title:       "Cultural Discovery",
		description: "Explore cultural heritage and local traditions in %s",
		area:        "Cultural area",
		category:    "culture",
		link:        linkGetYourGuide,
	}},
	{"nature", slotTheme{
		title:       "Natural Wonders",
		description: "Experience the natural beauty and outdoor activities in %s",
		area:        "Nature area",
		category:    "nature",
		link:        linkGetYourGuide,
	}},
}

// genericMornings is the day-indexed rotation used when no interest
// keyword selects a theme.
var genericMornings = [4]slotTheme{
	{"Historical Sites", "Explore %s highlights tailored for your travel style", "Historical district", "sightseeing", linkGetYourGuide},
	{"Local Markets", "Explore %s highlights tailored for your travel style", "Local market area", "sightseeing", linkGetYourGuide},
	{"Scenic Views", "Explore %s highlights tailored for your travel style", "Scenic viewpoint", "sightseeing", linkGetYourGuide},
	{"City Walking Tour", "Explore %s highlights tailored for your travel style", "City center", "sightseeing", linkGetYourGuide},
}

// dailyBudget is each day's share of the total trip budget.
func dailyBudget(budget float64, totalDays int) float64 {
	if totalDays < 1 {
		totalDays = 1
	}
	return math.Floor(budget / float64(totalDays))
}

func slotCost(daily, share float64) float64 {
	return math.Floor(daily * share)
}

// buildFallbackDay synthesizes one complete day from trip parameters
// alone. Purely a function of (dayIndex, trip): no randomness, no model
// output. Every field is constructed valid, so no defaulting pass runs
// afterwards.
func buildFallbackDay(dayIndex int, trip request_models.TripRequest, start time.Time, totalDays int) response_models.ItineraryDay {
	interests := strings.ToLower(strings.Join(trip.Interests.Selected(), ", "))
	daily := dailyBudget(trip.Budget, totalDays)
	dayLabel := fmt.Sprintf("Day %d", dayIndex+1)

	morning := genericMornings[dayIndex%4]
	for _, entry := range morningThemes {
		if strings.Contains(interests, entry.keyword) {
			morning = entry.theme
			break
		}
	}

	lunch := slotTheme{
		title:       "Local Restaurant",
		description: "Authentic local dining experience",
		area:        "Local restaurant area",
		category:    "food",
		link:        linkTripAdvisor,
	}
	if strings.Contains(interests, "food") {
		lunch = slotTheme{
			title:       "Food Tour",
			description: "Guided food tour experiencing local specialties",
			area:        "Food district",
			category:    "food",
			link:        linkTripAdvisor,
		}
	}

	afternoon := slotTheme{
		title:       "Cultural Experience",
		description: "Immersive cultural experience",
		area:        "Cultural venue",
		category:    "culture",
		link:        linkViator,
	}
	switch {
	case strings.Contains(interests, "shopping"):
		afternoon = slotTheme{
			title:       "Shopping District",
			description: "Explore local shops and boutiques",
			area:        "Shopping area",
			category:    "shopping",
			link:        linkViator,
		}
	case strings.Contains(interests, "adventure"):
		afternoon = slotTheme{
			title:       "Adventure Activity",
			description: "Exciting adventure activities",
			area:        "Adventure center",
			category:    "adventure",
			link:        linkViator,
		}
	}

	evening := slotTheme{
		title:       "Evening Dinner",
		description: "End the day with a relaxed dinner",
		area:        "Fine dining area",
		category:    "food",
		link:        linkOpenTable,
	}
	if strings.Contains(interests, "nightlife") {
		evening = slotTheme{
			title:       "Nightlife Experience",
			description: "Experience local nightlife and entertainment",
			area:        "Entertainment district",
			category:    "nightlife",
			link:        linkOpenTable,
		}
	}

	makeActivity := func(at string, theme slotTheme, share float64) response_models.Activity {
		description := theme.description
		if strings.Contains(description, "%s") {
			description = fmt.Sprintf(description, trip.Destination)
		}
		return response_models.Activity{
			Time:           at,
			Title:          fmt.Sprintf("%s - %s", theme.title, dayLabel),
			Description:    description,
			Location:       fmt.Sprintf("%s, %s", theme.area, trip.Destination),
			Cost:           slotCost(daily, share),
			PricePerPerson: slotCost(daily, share),
			Currency:       defaultCurrency,
			Category:       theme.category,
			Link:           theme.link,
		}
	}

	activities := []response_models.Activity{
		makeActivity("09:00", morning, morningShare),
		makeActivity("12:30", lunch, lunchShare),
		makeActivity("15:00", afternoon, afternoonShare),
		makeActivity("19:30", evening, eveningShare),
	}

	return response_models.ItineraryDay{
		Day:           dayIndex + 1,
		Date:          utils.FormatISODate(utils.DateForDay(start, dayIndex)),
		Activities:    activities,
		EstimatedCost: daily,
	}
}

// buildFallbackItinerary synthesizes the complete itinerary when no
// structured data could be recovered at all.
func buildFallbackItinerary(trip request_models.TripRequest, start time.Time, totalDays int) []response_models.ItineraryDay {
	days := make([]response_models.ItineraryDay, 0, totalDays)
	for i := 0; i < totalDays; i++ {
		days = append(days, buildFallbackDay(i, trip, start, totalDays))
	}
	return days
}

// fillShortfall appends synthesized days until the itinerary reaches the
// requested length, continuing day numbering and dates from where the
// model-authored days stopped.
func fillShortfall(days []response_models.ItineraryDay, trip request_models.TripRequest, start time.Time, totalDays int) []response_models.ItineraryDay {
	for i := len(days); i < totalDays; i++ {
		days = append(days, buildFallbackDay(i, trip, start, totalDays))
	}
	return days
}

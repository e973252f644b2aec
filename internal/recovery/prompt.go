package recovery

import (
	"fmt"
	"strings"

	"wanderplan/internal/models/request_models"
	"wanderplan/pkg/utils"
)

// BuildItineraryPrompt renders the generation prompt for one trip. Every
// structural requirement the recovery pipeline relies on is restated in
// the prompt: exact day count, strict JSON, real dates, and the full
// activity field set.
func BuildItineraryPrompt(trip request_models.TripRequest) string {
	start, totalDays := tripSpan(trip)
	daily := dailyBudget(trip.Budget, totalDays)

	interests := strings.Join(trip.Interests.Selected(), ", ")
	if interests == "" {
		interests = "general sightseeing"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed %d-day travel itinerary for %s.\n\n", totalDays, trip.Destination)
	fmt.Fprintf(&b, "Trip details:\n")
	fmt.Fprintf(&b, "- Dates: %s to %s (%d days total)\n", trip.StartDate, trip.EndDate, totalDays)
	fmt.Fprintf(&b, "- Total budget: %.0f (about %.0f per day)\n", trip.Budget, daily)
	fmt.Fprintf(&b, "- Traveler style: %s\n", personaOrDefault(trip.Persona))
	fmt.Fprintf(&b, "- Interests: %s\n\n", interests)

	if totalDays > 14 {
		b.WriteString("This is a long multi-city trip: group consecutive days into 2-4 day stays per city or region, with realistic travel days between them.\n\n")
	} else if totalDays > 7 {
		b.WriteString("This is an extended stay: balance headline attractions with slower neighborhood days so the pace stays sustainable.\n\n")
	}

	b.WriteString("Respond with ONLY valid JSON, no markdown fences and no commentary, in exactly this shape:\n\n")
	fmt.Fprintf(&b, `{
  "days": [
    {
      "day": 1,
      "date": "%s",
      "estimatedCost": %.0f,
      "activities": [
        {
          "time": "09:00",
          "title": "Activity name",
          "description": "One or two sentences",
          "location": "Specific place, %s",
          "cost": 25,
          "pricePerPerson": 25,
          "currency": "USD",
          "category": "sightseeing",
          "link": "https://www.getyourguide.com"
        }
      ]
    }
  ]
}`, utils.FormatISODate(start), daily, trip.Destination)
	b.WriteString("\n\nRules:\n")
	fmt.Fprintf(&b, "- The days array MUST contain exactly %d entries, numbered 1 through %d.\n", totalDays, totalDays)
	fmt.Fprintf(&b, "- Use the real calendar dates starting from %s.\n", utils.FormatISODate(start))
	b.WriteString("- Give every activity all nine fields. 3-5 activities per day.\n")
	fmt.Fprintf(&b, "- Keep each day's combined cost near %.0f.\n", daily)
	b.WriteString("- category is one of: sightseeing, food, culture, nature, adventure, shopping, nightlife.\n")
	return b.String()
}

// BuildCostEstimatePrompt asks for a single total-cost figure.
func BuildCostEstimatePrompt(trip request_models.TripRequest) string {
	_, totalDays := tripSpan(trip)
	return fmt.Sprintf(
		"Estimate the total cost of a %d-day trip to %s for one person, including accommodation, food, local transport and activities. Traveler style: %s. Respond with a single number only, no currency symbol, no explanation.",
		totalDays, trip.Destination, personaOrDefault(trip.Persona))
}

// BuildSuggestionPrompt asks for five alternative destinations similar
// to the requested one, as a bare JSON string array.
func BuildSuggestionPrompt(trip request_models.TripRequest) string {
	interests := strings.Join(trip.Interests.Selected(), ", ")
	if interests == "" {
		interests = "general sightseeing"
	}
	return fmt.Sprintf(
		`Suggest 5 alternative travel destinations similar to %s for a traveler interested in %s. Respond with ONLY a JSON array of 5 destination names, for example ["City, Country", "City, Country", "City, Country", "City, Country", "City, Country"].`,
		trip.Destination, interests)
}

func personaOrDefault(persona string) string {
	if persona == "" {
		return "balanced traveler"
	}
	return persona
}

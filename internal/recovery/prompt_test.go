package recovery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wanderplan/internal/models/request_models"
)

func TestBuildItineraryPrompt(t *testing.T) {
	trip := parisTrip()
	trip.Persona = "Culture Buff"
	trip.Interests = request_models.InterestFlags{Culture: true, Food: true}

	prompt := BuildItineraryPrompt(trip)

	assert.Contains(t, prompt, "3-day travel itinerary for Paris")
	assert.Contains(t, prompt, "2025-06-01 to 2025-06-03")
	assert.Contains(t, prompt, "exactly 3 entries")
	assert.Contains(t, prompt, "about 300 per day")
	assert.Contains(t, prompt, "Culture Buff")
	assert.Contains(t, prompt, "culture, food")
	assert.Contains(t, prompt, `"days"`)
	assert.NotContains(t, prompt, "multi-city")
}

func TestBuildItineraryPromptLongTripGuidance(t *testing.T) {
	trip := parisTrip()
	trip.EndDate = "2025-06-20" // 20 days

	prompt := BuildItineraryPrompt(trip)
	assert.Contains(t, prompt, "multi-city")

	trip.EndDate = "2025-06-10" // 10 days
	prompt = BuildItineraryPrompt(trip)
	assert.Contains(t, prompt, "extended stay")
	assert.NotContains(t, prompt, "multi-city")
}

func TestBuildItineraryPromptDefaultsInterestsAndPersona(t *testing.T) {
	prompt := BuildItineraryPrompt(parisTrip())

	assert.Contains(t, prompt, "general sightseeing")
	assert.Contains(t, prompt, "balanced traveler")
}

func TestBuildCostEstimatePrompt(t *testing.T) {
	prompt := BuildCostEstimatePrompt(parisTrip())

	assert.Contains(t, prompt, "3-day trip to Paris")
	assert.Contains(t, prompt, "single number")
}

func TestBuildSuggestionPrompt(t *testing.T) {
	trip := parisTrip()
	trip.Interests = request_models.InterestFlags{Nature: true}

	prompt := BuildSuggestionPrompt(trip)

	assert.Contains(t, prompt, "alternative travel destinations similar to Paris")
	assert.Contains(t, prompt, "nature")
	assert.Contains(t, prompt, "JSON array")
}

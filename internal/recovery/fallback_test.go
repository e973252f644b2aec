package recovery

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderplan/internal/models/request_models"
)

func TestBuildFallbackItineraryShape(t *testing.T) {
	trip := parisTrip()
	days := buildFallbackItinerary(trip, mustDate(t, "2025-06-01"), 3)
	require.Len(t, days, 3)

	for i, day := range days {
		assert.Equal(t, i+1, day.Day)
		require.Len(t, day.Activities, 4)
		assert.Equal(t, float64(300), day.EstimatedCost)

		assert.Equal(t, "09:00", day.Activities[0].Time)
		assert.Equal(t, "12:30", day.Activities[1].Time)
		assert.Equal(t, "15:00", day.Activities[2].Time)
		assert.Equal(t, "19:30", day.Activities[3].Time)

		for _, a := range day.Activities {
			assert.NotEmpty(t, a.Title)
			assert.NotEmpty(t, a.Description)
			assert.NotEmpty(t, a.Location)
			assert.NotEmpty(t, a.Link)
			assert.Equal(t, "USD", a.Currency)
		}
	}

	assert.Equal(t, "2025-06-01", days[0].Date)
	assert.Equal(t, "2025-06-02", days[1].Date)
	assert.Equal(t, "2025-06-03", days[2].Date)
}

func TestBuildFallbackDayBudgetSplit(t *testing.T) {
	trip := parisTrip() // 900 over 3 days -> 300 per day

	day := buildFallbackDay(0, trip, mustDate(t, "2025-06-01"), 3)

	assert.Equal(t, float64(75), day.Activities[0].Cost)  // 25%
	assert.Equal(t, float64(60), day.Activities[1].Cost)  // 20%
	assert.Equal(t, float64(105), day.Activities[2].Cost) // 35%
	assert.Equal(t, float64(60), day.Activities[3].Cost)  // 20%

	for _, a := range day.Activities {
		assert.Equal(t, a.Cost, a.PricePerPerson)
	}
}

func TestBuildFallbackDayGenericRotation(t *testing.T) {
	trip := parisTrip()
	start := mustDate(t, "2025-06-01")

	wantMornings := []string{"Historical Sites", "Local Markets", "Scenic Views", "City Walking Tour", "Historical Sites"}
	for i, want := range wantMornings {
		day := buildFallbackDay(i, trip, start, 5)
		assert.Equal(t, fmt.Sprintf("%s - Day %d", want, i+1), day.Activities[0].Title)
	}
}

func TestBuildFallbackDayInterestThemes(t *testing.T) {
	start := mustDate(t, "2025-06-01")

	trip := parisTrip()
	trip.Interests = request_models.InterestFlags{
		Culture:   true,
		Food:      true,
		Shopping:  true,
		Nightlife: true,
	}

	day := buildFallbackDay(0, trip, start, 3)

	assert.Equal(t, "Cultural Discovery - Day 1", day.Activities[0].Title)
	assert.Equal(t, "Food Tour - Day 1", day.Activities[1].Title)
	assert.Equal(t, "Shopping District - Day 1", day.Activities[2].Title)
	assert.Equal(t, "Nightlife Experience - Day 1", day.Activities[3].Title)

	assert.Equal(t, "culture", day.Activities[0].Category)
	assert.Equal(t, "food", day.Activities[1].Category)
	assert.Equal(t, "shopping", day.Activities[2].Category)
	assert.Equal(t, "nightlife", day.Activities[3].Category)
}

func TestBuildFallbackDayNatureTheme(t *testing.T) {
	trip := parisTrip()
	trip.Interests = request_models.InterestFlags{Nature: true}

	day := buildFallbackDay(2, trip, mustDate(t, "2025-06-01"), 3)
	assert.Equal(t, "Natural Wonders - Day 3", day.Activities[0].Title)
	assert.Equal(t, "nature", day.Activities[0].Category)
}

func TestBuildFallbackDayLocationsNameDestination(t *testing.T) {
	trip := parisTrip()
	day := buildFallbackDay(0, trip, mustDate(t, "2025-06-01"), 3)

	for _, a := range day.Activities {
		assert.Contains(t, a.Location, "Paris")
	}
}

func TestBuildFallbackDayBookingLinks(t *testing.T) {
	trip := parisTrip()
	day := buildFallbackDay(0, trip, mustDate(t, "2025-06-01"), 3)

	assert.Equal(t, linkGetYourGuide, day.Activities[0].Link)
	assert.Equal(t, linkTripAdvisor, day.Activities[1].Link)
	assert.Equal(t, linkViator, day.Activities[2].Link)
	assert.Equal(t, linkOpenTable, day.Activities[3].Link)
}

func TestFillShortfallContinuesNumbering(t *testing.T) {
	trip := parisTrip()
	start := mustDate(t, "2025-06-01")

	days := normalizeDays([]any{map[string]any{}}, trip, start)
	days = fillShortfall(days, trip, start, 3)

	require.Len(t, days, 3)
	assert.Equal(t, 1, days[0].Day)
	assert.Equal(t, 2, days[1].Day)
	assert.Equal(t, 3, days[2].Day)
	assert.Equal(t, "2025-06-03", days[2].Date)
}

func TestDailyBudgetFloorsAndGuards(t *testing.T) {
	assert.Equal(t, float64(300), dailyBudget(900, 3))
	assert.Equal(t, float64(333), dailyBudget(1000, 3))
	assert.Equal(t, float64(500), dailyBudget(500, 0))
}

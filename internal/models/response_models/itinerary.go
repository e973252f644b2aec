package response_models

// Activity is one scheduled entry inside an itinerary day. Every field is
// always populated; the recovery pipeline fills absent values with
// deterministic defaults before anything reaches a caller.
type Activity struct {
	Time           string  `json:"time"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Location       string  `json:"location"`
	Cost           float64 `json:"cost"`
	PricePerPerson float64 `json:"pricePerPerson"`
	Currency       string  `json:"currency"`
	Category       string  `json:"category"`
	Link           string  `json:"link"`
}

// ItineraryDay is one calendar day of a trip. Day numbers are 1-based and
// contiguous; Date is the ISO date derived from the trip start.
type ItineraryDay struct {
	Day           int        `json:"day"`
	Date          string     `json:"date"`
	Activities    []Activity `json:"activities"`
	EstimatedCost float64    `json:"estimatedCost"`
}

// GenerateItineraryResponse is the payload of the generation endpoint.
type GenerateItineraryResponse struct {
	Itinerary     []ItineraryDay `json:"itinerary"`
	TotalDays     int            `json:"totalDays"`
	GeneratedDays int            `json:"generatedDays"`
	IsComplete    bool           `json:"isComplete"`
	IsAIGenerated bool           `json:"isAIGenerated"`
}

type CostEstimateResponse struct {
	EstimatedCost float64 `json:"estimatedCost"`
	Currency      string  `json:"currency"`
	IsAIGenerated bool    `json:"isAIGenerated"`
}

type SuggestionResponse struct {
	Suggestions []string `json:"suggestions"`
}

package response_models

type TripResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	Persona     string  `json:"persona"`
	ShareID     string  `json:"share_id,omitempty"`
	TotalDays   int     `json:"total_days"`
	CreatedAt   int64   `json:"created_at"`
}

type TripDetailResponse struct {
	TripResponse
	Interests   map[string]bool `json:"interests"`
	Suggestions []string        `json:"suggestions,omitempty"`
	Itinerary   []ItineraryDay  `json:"itinerary"`
}

// PersonaOption is one entry of the travel-style catalog the trip wizard
// renders.
type PersonaOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

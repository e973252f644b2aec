package request_models

// InterestFlags mirrors the trip wizard's preference toggles.
type InterestFlags struct {
	Culture   bool `json:"culture"`
	Food      bool `json:"food"`
	Nature    bool `json:"nature"`
	Shopping  bool `json:"shopping"`
	Nightlife bool `json:"nightlife"`
}

// Selected returns the enabled interest names in a fixed order,
// matching the order the wizard renders them.
func (f InterestFlags) Selected() []string {
	var out []string
	if f.Culture {
		out = append(out, "culture")
	}
	if f.Food {
		out = append(out, "food")
	}
	if f.Nature {
		out = append(out, "nature")
	}
	if f.Shopping {
		out = append(out, "shopping")
	}
	if f.Nightlife {
		out = append(out, "nightlife")
	}
	return out
}

// TripRequest is the immutable input of one itinerary generation call.
// Dates are ISO calendar dates (YYYY-MM-DD); EndDate >= StartDate.
type TripRequest struct {
	Destination string        `json:"destination" binding:"required"`
	StartDate   string        `json:"start_date" binding:"required"`
	EndDate     string        `json:"end_date" binding:"required"`
	Budget      float64       `json:"budget" binding:"required,gt=0"`
	Persona     string        `json:"persona"`
	Interests   InterestFlags `json:"interests"`

	// Optional: persist the generated itinerary under an existing trip.
	TripID string `json:"trip_id,omitempty"`
}

type CreateTripRequest struct {
	Title       string        `json:"title" binding:"required"`
	Destination string        `json:"destination" binding:"required"`
	StartDate   string        `json:"start_date" binding:"required"`
	EndDate     string        `json:"end_date" binding:"required"`
	Budget      float64       `json:"budget" binding:"required,gt=0"`
	Persona     string        `json:"persona"`
	Interests   InterestFlags `json:"interests"`
}

type SuggestionRequest struct {
	Destination string        `json:"destination" binding:"required"`
	Interests   InterestFlags `json:"interests"`
	TripID      string        `json:"trip_id,omitempty"`
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

type ItineraryController struct {
	itineraryService  services.ItineraryServiceInterface
	suggestionService services.SuggestionServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	suggestionService services.SuggestionServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService:  itineraryService,
		suggestionService: suggestionService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a day-by-day itinerary
// @Description Generate a complete itinerary for the given destination, dates and budget. Always returns a full itinerary: days the model failed to produce are synthesized from the trip parameters.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip parameters"
// @Success 200 {object} response_models.GenerateItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/generate [post]
func (ic *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination, dates and a positive budget are required")
		return
	}

	userId := c.GetString("user_id")

	resp, err := ic.itineraryService.GenerateItinerary(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary generated successfully")
}

// EstimateCost godoc
// @Summary Estimate total trip cost
// @Description Estimate the total cost of a trip for one person. Falls back to the submitted budget when no estimate is available.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip parameters"
// @Success 200 {object} response_models.CostEstimateResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/estimate-cost [post]
func (ic *ItineraryController) EstimateCost(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination, dates and a positive budget are required")
		return
	}

	resp, err := ic.suggestionService.EstimateTripCost(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Cost estimated successfully")
}

// SuggestDestinations godoc
// @Summary Suggest alternative destinations
// @Description Return up to five alternative destinations similar to the requested one. An unusable model reply yields an empty list.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.SuggestionRequest true "Destination and interests"
// @Success 200 {object} response_models.SuggestionResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/suggestions [post]
func (ic *ItineraryController) SuggestDestinations(c *gin.Context) {
	var req request_models.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	resp, err := ic.suggestionService.SuggestDestinations(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Suggestions fetched successfully")
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wanderplan/internal/models/request_models"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
	planService services.PlanServiceInterface
}

func NewTripController(tripService services.TripServiceInterface, planService services.PlanServiceInterface) *TripController {
	return &TripController{tripService: tripService, planService: planService}
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a trip with destination, dates, budget and interest preferences
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip details"
// @Success 200 {object} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (tc *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title, destination, dates and a positive budget are required")
		return
	}

	userId := c.GetString("user_id")

	trip, err := tc.tripService.CreateTrip(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip created successfully")
}

// GetTrips godoc
// @Summary List the authenticated user's trips
// @Tags Trip
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} response_models.TripResponse
// @Security BearerAuth
// @Router /trips [get]
func (tc *TripController) GetTrips(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	userId := c.GetString("user_id")

	trips, err := tc.tripService.GetTripsByUserId(c.Request.Context(), userId, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTripDetail godoc
// @Summary Get one trip with its stored itinerary
// @Tags Trip
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.TripDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [get]
func (tc *TripController) GetTripDetail(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	userId := c.GetString("user_id")

	trip, err := tc.tripService.GetTripDetail(c.Request.Context(), userId, tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// GetSharedTrip godoc
// @Summary View a shared trip
// @Description Public read-only view of a trip by its share link. No authentication required.
// @Tags Trip
// @Produce json
// @Param shareId path string true "Share ID"
// @Success 200 {object} response_models.TripDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/shared/{shareId} [get]
func (tc *TripController) GetSharedTrip(c *gin.Context) {
	shareId := c.Param("shareId")
	if shareId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Share ID is required")
		return
	}

	trip, err := tc.tripService.GetSharedTrip(c.Request.Context(), shareId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Tags Trip
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [delete]
func (tc *TripController) DeleteTrip(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	userId := c.GetString("user_id")

	if err := tc.tripService.DeleteTrip(c.Request.Context(), userId, tripId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// GetPersonas godoc
// @Summary List travel-style personas
// @Description Static catalog of personas the trip wizard offers. Public.
// @Tags Trip
// @Produce json
// @Success 200 {array} response_models.PersonaOption
// @Router /personas [get]
func (tc *TripController) GetPersonas(c *gin.Context) {
	utils.RespondSuccess(c, tc.tripService.ListPersonas(), "Personas fetched successfully")
}

// GetPlans godoc
// @Summary List subscription plans and their limits
// @Tags Trip
// @Produce json
// @Success 200 {array} services.PlanLimits
// @Router /plans [get]
func (tc *TripController) GetPlans(c *gin.Context) {
	utils.RespondSuccess(c, tc.planService.ListPlans(), "Plans fetched successfully")
}

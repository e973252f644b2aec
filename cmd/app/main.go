package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderplan/cmd/fx/controllers_fx"
	"wanderplan/cmd/fx/db_fx"
	"wanderplan/cmd/fx/itinerary_fx"
	"wanderplan/cmd/fx/llm_fx"
	"wanderplan/cmd/fx/trip_fx"
	"wanderplan/internal/api/controllers"
	"wanderplan/internal/infra"
	"wanderplan/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		llm_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	tripController *controllers.TripController,
) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRoutes(r, itineraryController, tripController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	tripController *controllers.TripController,
) {
	// Public routes.
	r.GET("/personas", tripController.GetPersonas)
	r.GET("/plans", tripController.GetPlans)
	r.GET("/trips/shared/:shareId", tripController.GetSharedTrip)

	itineraries := r.Group("/itineraries")
	itineraries.Use(middleware.JWTAuthMiddleware())
	itineraries.POST("/generate", itineraryController.GenerateItinerary)
	itineraries.POST("/estimate-cost", itineraryController.EstimateCost)
	itineraries.POST("/suggestions", itineraryController.SuggestDestinations)

	trips := r.Group("/trips")
	trips.Use(middleware.JWTAuthMiddleware())
	trips.POST("", tripController.CreateTrip)
	trips.GET("", tripController.GetTrips)
	trips.GET("/:tripId", tripController.GetTripDetail)
	trips.DELETE("/:tripId", tripController.DeleteTrip)
}

package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/walkwithme/backend-go/internal/api"
	"github.com/walkwithme/backend-go/internal/config"
	"github.com/walkwithme/backend-go/internal/daylight"
	"github.com/walkwithme/backend-go/internal/elevation"
	"github.com/walkwithme/backend-go/internal/geocode"
	"github.com/walkwithme/backend-go/internal/handler"
	"github.com/walkwithme/backend-go/internal/overpass"
	"github.com/walkwithme/backend-go/internal/routing"
	"github.com/walkwithme/backend-go/internal/trails"
	"github.com/walkwithme/backend-go/internal/weather"
)

func main() {
	// .env is optional; the environment wins either way
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	cfg := config.Load()

	// External clients
	overpassClient := overpass.NewClient(cfg.OverpassURL, cfg.OverpassTimeout)
	graphLoader := overpass.NewCachingLoader(overpassClient, cfg.GraphCacheSize)
	elevationClient := elevation.NewClient(cfg.ElevationURL, cfg.ElevationTimeout)
	weatherClient := weather.NewClient(cfg.WeatherURL, cfg.WeatherTimeout)
	daylightClient := daylight.NewClient(cfg.DaylightURL, cfg.DaylightTimeout)
	geocodeClient := geocode.NewClient(cfg.PhotonURL, cfg.NominatimURL, cfg.GeocodeTimeout)

	// Core services
	planner := routing.NewPlanner(graphLoader, elevationClient, weatherClient, daylightClient)
	trailService := trails.NewService(overpassClient, elevationClient)

	router := api.SetupRouter(cfg, api.Handlers{
		Route:   handler.NewRouteHandler(planner),
		Geocode: handler.NewGeocodeHandler(geocodeClient),
		Trails:  handler.NewTrailsHandler(trailService),
		Export:  handler.NewExportHandler(planner),
	})

	log.Printf("Server starting on %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

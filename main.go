package main

import (
	"fmt"
	"log"
	"os"

	"go-beacon/coordinator"
	"go-beacon/cronjobs"
	"go-beacon/db"
	"go-beacon/geocode"
	"go-beacon/routes"
	"go-beacon/traffic"
	"go-beacon/weather"

	"github.com/joho/godotenv"
)

// Coordinates kept warm by the weather refresh cron.
var monitoredCoordinates = [][2]float64{
	{40.71, -74.01},  // New York
	{29.76, -95.37},  // Houston
	{34.05, -118.24}, // Los Angeles
}

func main() {
	// Load .env file; mock fallbacks cover a bare environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	clientURL := os.Getenv("CLIENT_URL")
	fmt.Println("CLIENT_URL: ", clientURL)

	// Weather provider: real when keyed, mock otherwise.
	var weatherProvider weather.Provider
	if apiKey := os.Getenv("OPENWEATHER_API_KEY"); apiKey != "" {
		// Free tier allows 60 calls/minute.
		weatherProvider = weather.NewRateLimitedProvider(weather.NewOpenWeatherMapProvider(apiKey), 1, 5)
		log.Println("Weather provider: OpenWeatherMap")
	} else {
		weatherProvider = weather.NewMockProvider()
		log.Println("Weather provider: mock (no OPENWEATHER_API_KEY)")
	}

	// Traffic provider: Google Maps when keyed, mock otherwise.
	var trafficProvider traffic.Provider
	if mapsClient, err := geocode.InitMapsClient(); err == nil {
		trafficProvider = traffic.NewMapsProvider(mapsClient)
		log.Println("Traffic provider: Google Maps")
	} else {
		trafficProvider = traffic.NewMockProvider()
		log.Printf("Traffic provider: mock (%v)", err)
	}

	// Historical store: Firestore when credentialed, seeded memory otherwise.
	var store db.HistoricalStore
	firestoreClient, err := db.InitFirestore()
	if err == nil {
		store = db.NewFirestoreStore(firestoreClient)
		defer db.CloseFirestore()
		log.Println("Historical store: Firestore")
	} else {
		store = db.NewMemoryStore()
		log.Println("Historical store: in-memory with seed incidents")
	}

	coord := coordinator.New(weatherProvider, trafficProvider, store)

	// Feed watch + weather refresh jobs.
	cronjobs.InitCronJobs(firestoreClient, weatherProvider, monitoredCoordinates)

	r := routes.SetupRouter(coord, weatherProvider)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

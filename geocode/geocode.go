package geocode

import (
	"context"
	"fmt"
	"os"
	"sync"

	"googlemaps.github.io/maps"
)

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
)

// InitMapsClient initializes and returns a singleton Google Maps client.
func InitMapsClient() (*maps.Client, error) {
	var err error
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			err = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, err = maps.NewClient(maps.WithAPIKey(apiKey))
	})
	if mapsClient == nil && err == nil {
		err = fmt.Errorf("maps client unavailable")
	}
	return mapsClient, err
}

// GeocodeAddress takes an address string and returns geocoding results.
func GeocodeAddress(ctx context.Context, address string) ([]maps.GeocodingResult, error) {
	client, err := InitMapsClient()
	if err != nil {
		return nil, err
	}

	req := &maps.GeocodingRequest{
		Address: address,
	}
	return client.Geocode(ctx, req)
}

// Coordinates resolves a free-text location label to a lat/long pair.
// Used for scenarios that carry a location label but no coordinates.
func Coordinates(ctx context.Context, location string) (lat, lng float64, err error) {
	results, err := GeocodeAddress(ctx, location)
	if err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocode results for %q", location)
	}
	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}

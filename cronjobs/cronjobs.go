package cronjobs

import (
	"context"
	"log"
	"net/http"
	"time"

	"go-beacon/db"
	"go-beacon/geocode"
	"go-beacon/nlp"
	"go-beacon/types"
	"go-beacon/weather"

	"cloud.google.com/go/firestore"
	"github.com/bluesky-social/indigo/xrpc"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const feedMethod = "app.bsky.feed.getFeed"

// Hazard feed generators watched for situational awareness.
const (
	fireURI       = "at://did:plc:qiknc4t5rq7yngvz7g4aezq7/app.bsky.feed.generator/aaaejsyozb6iq"
	earthquakeURI = "at://did:plc:qiknc4t5rq7yngvz7g4aezq7/app.bsky.feed.generator/aaaejxlobe474"
	hurricaneURI  = "at://did:plc:qiknc4t5rq7yngvz7g4aezq7/app.bsky.feed.generator/aaaejwgffwqky"
)

// feedResponse is the slice of the getFeed payload the watcher reads.
type feedResponse struct {
	Cursor string `json:"cursor"`
	Feed   []struct {
		Post struct {
			URI    string `json:"uri"`
			Record struct {
				CreatedAt string `json:"createdAt"`
				Text      string `json:"text"`
			} `json:"record"`
		} `json:"post"`
	} `json:"feed"`
}

type feedCallParameters struct {
	uri    string
	hazard string
	limit  int
}

// watchFeed pulls recent posts from a hazard feed and stores them as
// situation reports, geotagged when the language and maps clients are up.
func watchFeed(p feedCallParameters, firestoreClient *firestore.Client) {
	client := &xrpc.Client{
		Client: &http.Client{Timeout: 10 * time.Second},
		Host:   "https://public.api.bsky.app", // public endpoint for unauthenticated requests
	}

	limit := 10
	if p.limit != 0 {
		limit = p.limit
	}
	params := map[string]interface{}{
		"feed":  p.uri,
		"limit": limit,
	}

	var out feedResponse
	ctx := context.Background()
	if err := client.Do(ctx, xrpc.Query, "json", feedMethod, params, nil, &out); err != nil {
		log.Printf("Error fetching %s feed via xrpc: %v", p.hazard, err)
		return
	}

	reports := make([]types.SituationReport, 0, len(out.Feed))
	for _, entry := range out.Feed {
		report := types.SituationReport{
			ID:         uuid.NewString(),
			Source:     entry.Post.URI,
			Content:    entry.Post.Record.Text,
			Hazard:     p.hazard,
			ObservedAt: entry.Post.Record.CreatedAt,
		}
		geotag(ctx, &report)
		reports = append(reports, report)
	}

	if firestoreClient == nil {
		log.Printf("Fetched %d %s reports (no store configured, dropping)", len(reports), p.hazard)
		return
	}
	if err := db.SaveSituationReports(firestoreClient, reports); err != nil {
		log.Printf("Error saving %s reports: %v", p.hazard, err)
	}
}

// geotag extracts location entities from the report text and geocodes the
// first one. Best effort; a missing language or maps client leaves the
// report untagged.
func geotag(ctx context.Context, report *types.SituationReport) {
	langClient, err := nlp.InitLanguageClient()
	if err != nil {
		return
	}
	locations, err := nlp.ExtractLocations(ctx, langClient, report.Content)
	if err != nil || len(locations) == 0 {
		return
	}
	report.Locations = locations

	lat, lng, err := geocode.Coordinates(ctx, locations[0])
	if err != nil {
		return
	}
	report.Lat = lat
	report.Long = lng
}

// InitCronJobs schedules the hazard feed watchers and the weather snapshot
// refresh. monitored lists the lat/long pairs the refresh keeps warm.
func InitCronJobs(firestoreClient *firestore.Client, weatherProvider weather.Provider, monitored [][2]float64) {
	log.Println("Starting cron jobs")
	c := cron.New()

	// Fire feed: every 10 minutes at the 0 minute mark
	_, err := c.AddFunc("*/10 * * * *", func() {
		log.Println("CronJob: fire feed watch running")
		watchFeed(feedCallParameters{uri: fireURI, hazard: "fire", limit: 10}, firestoreClient)
	})
	if err != nil {
		log.Println("Error scheduling fire feed watch:", err)
	}

	// Earthquake feed: every 10 minutes at the 2 minute mark
	_, err = c.AddFunc("2-59/10 * * * *", func() {
		log.Println("CronJob: earthquake feed watch running")
		watchFeed(feedCallParameters{uri: earthquakeURI, hazard: "earthquake", limit: 10}, firestoreClient)
	})
	if err != nil {
		log.Println("Error scheduling earthquake feed watch:", err)
	}

	// Hurricane feed: every 10 minutes at the 4 minute mark
	_, err = c.AddFunc("4-59/10 * * * *", func() {
		log.Println("CronJob: hurricane feed watch running")
		watchFeed(feedCallParameters{uri: hurricaneURI, hazard: "hurricane", limit: 10}, firestoreClient)
	})
	if err != nil {
		log.Println("Error scheduling hurricane feed watch:", err)
	}

	// Weather snapshot refresh: every 15 minutes
	_, err = c.AddFunc("*/15 * * * *", func() {
		refreshWeatherSnapshots(weatherProvider, monitored)
	})
	if err != nil {
		log.Println("Error scheduling weather refresh:", err)
	}

	c.Start()
}

func refreshWeatherSnapshots(provider weather.Provider, monitored [][2]float64) {
	if provider == nil || len(monitored) == 0 {
		return
	}
	log.Println("CronJob: weather snapshot refresh running")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, coord := range monitored {
		cond, err := provider.GetCurrent(ctx, coord[0], coord[1])
		if err != nil {
			log.Printf("Weather refresh for (%.2f, %.2f) failed: %v", coord[0], coord[1], err)
			continue
		}
		log.Printf("Weather at (%.2f, %.2f): %.0f°F wind %.0f mph, %s",
			coord[0], coord[1], cond.Temperature, cond.WindSpeed, cond.Conditions)
	}
}

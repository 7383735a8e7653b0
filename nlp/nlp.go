package nlp

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"sync"

	language "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"google.golang.org/api/option"
)

// languageClient is a singleton language client instance.
var (
	languageClient *language.Client
	clientOnce     sync.Once
)

// InitLanguageClient initializes the Cloud Natural Language client from the
// base64 encoded NATURAL_LANGUAGE_CREDENTIALS env var. Feed ingestion runs
// without geotagging when this fails.
func InitLanguageClient() (*language.Client, error) {
	var initErr error

	clientOnce.Do(func() {
		encodedCreds := os.Getenv("NATURAL_LANGUAGE_CREDENTIALS")
		creds, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil || len(creds) == 0 {
			initErr = fmt.Errorf("NATURAL_LANGUAGE_CREDENTIALS not usable: %v", err)
			return
		}

		opt := option.WithCredentialsJSON(creds)
		languageClient, initErr = language.NewClient(context.Background(), opt)
	})

	if languageClient == nil && initErr == nil {
		initErr = fmt.Errorf("language client unavailable")
	}
	return languageClient, initErr
}

// CloseLanguageClient closes the language client.
func CloseLanguageClient() {
	if languageClient != nil {
		languageClient.Close()
	}
}

// ExtractLocations sends text to the Cloud Natural Language API and returns
// the names of LOCATION and ADDRESS entities found in it.
func ExtractLocations(ctx context.Context, client *language.Client, text string) ([]string, error) {
	req := &languagepb.AnalyzeEntitiesRequest{
		Document: &languagepb.Document{
			Source: &languagepb.Document_Content{
				Content: text,
			},
			Type: languagepb.Document_PLAIN_TEXT,
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := client.AnalyzeEntities(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("AnalyzeEntities error: %w", err)
	}

	var locations []string
	seen := map[string]bool{}
	for _, e := range resp.Entities {
		entityType := e.Type.String()
		if entityType != "LOCATION" && entityType != "ADDRESS" {
			continue
		}
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		locations = append(locations, e.Name)
	}
	return locations, nil
}

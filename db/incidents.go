package db

import (
	"context"
	"fmt"
	"strings"

	"go-beacon/types"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const incidentsCollection = "incidents"

// HistoricalStore is the read-mostly repository of past incidents the
// coordinator enriches suggestions from.
type HistoricalStore interface {
	Search(ctx context.Context, query types.HistoricalQuery) ([]types.HistoricalIncident, error)
	GetByID(ctx context.Context, id string) (types.HistoricalIncident, error)
	Add(ctx context.Context, incident types.HistoricalIncident) error
}

// FirestoreStore keeps historical incidents in the 'incidents' collection.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps an initialized Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Search filters by incident type and minimum severity server-side, then
// applies the keyword filter client-side (Firestore has no full-text search).
func (s *FirestoreStore) Search(ctx context.Context, query types.HistoricalQuery) ([]types.HistoricalIncident, error) {
	q := s.client.Collection(incidentsCollection).Query
	if query.IncidentType != "" {
		q = q.Where("incidentType", "==", string(query.IncidentType))
	}
	if query.MinSeverity > 0 {
		q = q.Where("severityLevel", ">=", query.MinSeverity)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var matches []types.HistoricalIncident
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating incidents collection: %w", err)
		}

		var incident types.HistoricalIncident
		if err := doc.DataTo(&incident); err != nil {
			// Skip malformed documents rather than failing the search.
			continue
		}
		incident.ID = doc.Ref.ID

		if !matchesKeywords(incident, query.Keywords) {
			continue
		}
		matches = append(matches, incident)
		if query.Limit > 0 && len(matches) >= query.Limit {
			break
		}
	}
	return matches, nil
}

// GetByID retrieves a single incident document.
func (s *FirestoreStore) GetByID(ctx context.Context, id string) (types.HistoricalIncident, error) {
	var incident types.HistoricalIncident
	docSnap, err := s.client.Collection(incidentsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return incident, fmt.Errorf("incident %s not found", id)
		}
		return incident, fmt.Errorf("error getting incident %s: %w", id, err)
	}
	if err := docSnap.DataTo(&incident); err != nil {
		return incident, fmt.Errorf("error converting document %s: %w", id, err)
	}
	incident.ID = docSnap.Ref.ID
	return incident, nil
}

// Add stores a new incident using its ID as the document ID.
func (s *FirestoreStore) Add(ctx context.Context, incident types.HistoricalIncident) error {
	if incident.ID == "" {
		return fmt.Errorf("cannot save incident with empty ID")
	}
	_, err := s.client.Collection(incidentsCollection).Doc(incident.ID).Set(ctx, incident)
	if err != nil {
		return fmt.Errorf("failed to save incident %s: %w", incident.ID, err)
	}
	return nil
}

// matchesKeywords reports whether every whitespace-separated keyword appears
// in the incident's title, description or location, case-insensitively.
func matchesKeywords(incident types.HistoricalIncident, keywords string) bool {
	if strings.TrimSpace(keywords) == "" {
		return true
	}
	haystack := strings.ToLower(incident.Title + " " + incident.Description + " " + incident.Location)
	for _, word := range strings.Fields(strings.ToLower(keywords)) {
		if !strings.Contains(haystack, word) {
			return false
		}
	}
	return true
}

var _ HistoricalStore = (*FirestoreStore)(nil)

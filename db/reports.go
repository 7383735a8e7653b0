package db

import (
	"context"
	"log"

	"go-beacon/types"

	"cloud.google.com/go/firestore"
)

const reportsCollection = "situation_reports"

// SaveSituationReports saves a batch of feed-watch reports using BulkWriter
// for efficient non-transactional writes. Report IDs become document IDs.
func SaveSituationReports(client *firestore.Client, reports []types.SituationReport) error {
	if len(reports) == 0 {
		return nil
	}

	ctx := context.Background()
	bw := client.BulkWriter(ctx)
	collectionRef := client.Collection(reportsCollection)

	savedCount := 0
	for i := range reports {
		report := reports[i]
		if report.ID == "" {
			log.Printf("Warning: skipping situation report with empty ID from %s", report.Source)
			continue
		}
		docRef := collectionRef.Doc(report.ID)
		if _, err := bw.Set(docRef, report); err != nil {
			log.Printf("Error enqueueing report %s for save: %v", report.ID, err)
		} else {
			savedCount++
		}
	}

	if savedCount == 0 {
		return nil
	}

	// Flush sends any remaining writes and waits for them to complete.
	bw.Flush()
	log.Printf("Saved %d situation reports.", savedCount)
	return nil
}

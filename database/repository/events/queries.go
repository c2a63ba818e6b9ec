package eventsRepo

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"beacon/models"
)

// ListStartingBetween fetches events with startTime in [from, to] inclusive.
func (r *firestoreEventRepo) ListStartingBetween(ctx context.Context, from, to time.Time) ([]models.Event, error) {
	iter := r.client.Collection(models.EventsCollection).
		Where("startTime", ">=", from).
		Where("startTime", "<=", to).
		Documents(ctx)
	defer iter.Stop()

	var events []models.Event
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var ev models.Event
		if err := doc.DataTo(&ev); err != nil {
			return nil, err
		}
		if ev.ID == "" {
			ev.ID = doc.Ref.ID
		}
		events = append(events, ev)
	}
	return events, nil
}

// MarkReminded flips reminderSent for all given events in a single
// WriteBatch, so either every event in the run is flagged or none is.
func (r *firestoreEventRepo) MarkReminded(ctx context.Context, eventIDs []string) error {
	if len(eventIDs) == 0 {
		return nil
	}

	batch := r.client.Batch()
	coll := r.client.Collection(models.EventsCollection)
	for _, id := range eventIDs {
		batch.Update(coll.Doc(id), []firestore.Update{
			{Path: "reminderSent", Value: true},
		})
	}
	_, err := batch.Commit(ctx)
	return err
}

package eventsRepo

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"beacon/models"
)

type EventRepository interface {
	// ListStartingBetween returns events whose startTime falls in the
	// closed window [from, to], whether or not they are already flagged.
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]models.Event, error)
	// MarkReminded sets reminderSent on every given event in one
	// all-or-nothing batch.
	MarkReminded(ctx context.Context, eventIDs []string) error
}

type firestoreEventRepo struct {
	client *firestore.Client
}

// NewFirestoreEventRepo returns an EventRepository backed by Firestore.
func NewFirestoreEventRepo(client *firestore.Client) EventRepository {
	return &firestoreEventRepo{client: client}
}

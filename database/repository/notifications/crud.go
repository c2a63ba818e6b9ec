package notificationsRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"beacon/models"
)

// Create inserts a new notification record and returns its ID.
func (r *firestoreNotificationRepo) Create(ctx context.Context, collection string, n models.Notification) (string, error) {
	if !models.IsNotificationCollection(collection) {
		return "", fmt.Errorf("notifications: unknown collection %q", collection)
	}
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(collection).Doc(n.ID).Create(ctx, n)
	if err != nil {
		return "", err
	}
	return n.ID, nil
}

// CountUnread returns the live number of unread records for a recipient
// in the given collection. Counted from scratch on every call so the
// badge value never drifts from missed events.
func (r *firestoreNotificationRepo) CountUnread(ctx context.Context, collection, recipientID string) (int, error) {
	if !models.IsNotificationCollection(collection) {
		return 0, fmt.Errorf("notifications: unknown collection %q", collection)
	}

	iter := r.client.Collection(collection).
		Where("recipientId", "==", recipientID).
		Where("status", "==", models.StatusUnread).
		Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, err
		}
		count++
	}
	return count, nil
}

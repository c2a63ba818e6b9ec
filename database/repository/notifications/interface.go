package notificationsRepo

import (
	"context"

	"cloud.google.com/go/firestore"

	"beacon/models"
)

// NotificationRepository covers the writes the reminder generator issues
// and the unread recount the badge synchronizer needs. Status updates
// come from the client app, not from this service.
type NotificationRepository interface {
	Create(ctx context.Context, collection string, n models.Notification) (string, error)
	CountUnread(ctx context.Context, collection, recipientID string) (int, error)
}

type firestoreNotificationRepo struct {
	client *firestore.Client
}

// NewFirestoreNotificationRepo returns a NotificationRepository backed by Firestore.
func NewFirestoreNotificationRepo(client *firestore.Client) NotificationRepository {
	return &firestoreNotificationRepo{client: client}
}

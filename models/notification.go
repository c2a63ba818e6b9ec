package models

import "time"

// Notification status values. Records start unread and only ever move
// forward via status updates; nothing in this service deletes them.
const (
	StatusUnread = "unread"
	StatusRead   = "read"
)

// Names of the two notification collections. Dispatch and badge sync
// react to these and ignore writes anywhere else.
const (
	UserNotifications    = "userNotifications"
	CreatorNotifications = "creatorNotifications"
)

type Notification struct {
	ID          string         `firestore:"id" json:"id"`
	RecipientID string         `firestore:"recipientId" json:"recipientId"`
	Title       string         `firestore:"title" json:"title"`
	Message     string         `firestore:"message" json:"message"`
	Type        string         `firestore:"type" json:"type"`
	Status      string         `firestore:"status" json:"status"`
	CreatedAt   time.Time      `firestore:"createdAt" json:"createdAt"`
	Metadata    map[string]any `firestore:"metadata,omitempty" json:"metadata,omitempty"`
	ActionLink  string         `firestore:"actionLink,omitempty" json:"actionLink,omitempty"`
	ImageURL    string         `firestore:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// IsNotificationCollection reports whether coll is one of the two
// collections this service reacts to.
func IsNotificationCollection(coll string) bool {
	return coll == UserNotifications || coll == CreatorNotifications
}

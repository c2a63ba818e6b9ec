// File: beacon/models/device.go
package models

import "time"

// DeviceTokensCollection holds one document per user, keyed by user id.
const DeviceTokensCollection = "deviceTokens"

// DeviceToken is the current push token for a user. An absent document
// or an empty Token means the user is undeliverable, which is a normal
// skip condition rather than an error.
type DeviceToken struct {
	UserID    string    `firestore:"userId" json:"userId"`
	Token     string    `firestore:"token" json:"token"`
	UpdatedAt time.Time `firestore:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

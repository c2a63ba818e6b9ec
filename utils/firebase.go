// utils/firebase.go
package utils

import (
	"context"
	"log"

	"beacon/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var (
	FirebaseApp *firebase.App
	FCMClient   *messaging.Client
	StoreClient *firestore.Client
)

// FirebaseInit initializes the Firebase App plus the Messaging and
// Firestore clients. Both clients are returned so callers can wire
// them explicitly instead of reaching for the globals.
func FirebaseInit() (*firestore.Client, *messaging.Client) {
	ctx := context.Background()

	var opts []option.ClientOption
	if path := config.AppConfig.FirebaseCredentialsKey; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	cfg := &firebase.Config{ProjectID: config.AppConfig.FirebaseProjectID}
	app, err := firebase.NewApp(ctx, cfg, opts...)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	fcm, err := app.Messaging(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}

	store, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Firestore client: %v", err)
	}

	FirebaseApp = app
	FCMClient = fcm
	StoreClient = store
	return store, fcm
}

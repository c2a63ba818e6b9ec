package devicesRepo

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/go-redis/redis/v8"
)

// DeviceTokenRepository resolves the current push token for a user.
// An empty token with a nil error means the user is undeliverable.
type DeviceTokenRepository interface {
	GetToken(ctx context.Context, userID string) (string, error)
}

type firestoreDeviceRepo struct {
	client   *firestore.Client
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewFirestoreDeviceRepo returns a DeviceTokenRepository backed by
// Firestore with a Redis read-through cache. cache may be nil, in which
// case every lookup hits the store.
func NewFirestoreDeviceRepo(client *firestore.Client, cache *redis.Client) DeviceTokenRepository {
	return &firestoreDeviceRepo{
		client:   client,
		cache:    cache,
		cacheTTL: 15 * time.Minute,
	}
}

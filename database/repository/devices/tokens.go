package devicesRepo

import (
	"context"

	"beacon/models"
	"beacon/utils"

	"go.uber.org/zap"
)

const tokenKeyPrefix = "device-token:"

// GetToken looks up the push token for a user, consulting the cache
// first. Missing documents and empty tokens are cached too, so a user
// without a device does not hammer the store on every notification.
func (r *firestoreDeviceRepo) GetToken(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", nil
	}

	key := tokenKeyPrefix + userID
	if r.cache != nil {
		if token, err := r.cache.Get(ctx, key).Result(); err == nil {
			return token, nil
		}
	}

	snap, err := r.client.Collection(models.DeviceTokensCollection).Doc(userID).Get(ctx)
	if err != nil {
		if snap != nil && !snap.Exists() {
			r.cacheToken(ctx, key, "")
			return "", nil
		}
		return "", err
	}

	var record models.DeviceToken
	if err := snap.DataTo(&record); err != nil {
		return "", err
	}

	r.cacheToken(ctx, key, record.Token)
	return record.Token, nil
}

func (r *firestoreDeviceRepo) cacheToken(ctx context.Context, key, token string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, key, token, r.cacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("device token cache write failed", zap.Error(err))
	}
}

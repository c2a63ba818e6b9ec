package notification

import (
	"context"
	"fmt"
	"strconv"

	"beacon/models"
	"beacon/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// HandleUpdated keeps the recipient's app-icon badge in sync. It only
// acts on the unread -> not-unread transition; every other field change
// or status move is a no-op. The badge value is recounted from the
// store each time rather than kept as a counter, so a missed trigger
// can never leave it permanently wrong.
func (s *DefaultNotificationService) HandleUpdated(
	ctx context.Context,
	collection, id string,
	before, after models.Notification,
) error {
	logger := utils.GetLogger()

	if !models.IsNotificationCollection(collection) {
		return nil
	}
	if before.Status != models.StatusUnread || after.Status == models.StatusUnread {
		return nil
	}
	if after.RecipientID == "" {
		return nil
	}

	count, err := s.Notifications.CountUnread(ctx, collection, after.RecipientID)
	if err != nil {
		return fmt.Errorf("HandleUpdated: unread count for %s: %w", after.RecipientID, err)
	}

	token, err := s.Devices.GetToken(ctx, after.RecipientID)
	if err != nil {
		return fmt.Errorf("HandleUpdated: token lookup for %s: %w", after.RecipientID, err)
	}
	if token == "" {
		return nil
	}

	// APNS carries the badge itself; the data section doubles as the
	// required non-empty body for badge-only messages.
	msg := &messaging.Message{
		Token: token,
		Data: map[string]string{
			"type":       "badge_sync",
			"badgeCount": strconv.Itoa(count),
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Badge: &count,
				},
			},
		},
	}

	if _, err := s.Pusher.Send(ctx, msg); err != nil {
		return fmt.Errorf("HandleUpdated: badge push for %s: %w", after.RecipientID, err)
	}

	logger.Debug("badge push sent",
		zap.String("recipientId", after.RecipientID),
		zap.Int("badge", count))
	return nil
}

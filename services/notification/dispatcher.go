package notification

import (
	"context"
	"fmt"

	"beacon/models"
	"beacon/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// HandleCreated sends exactly one push for a newly created notification
// record. Missing recipient or token are normal skip conditions, not
// errors; only store and transport failures come back as errors.
func (s *DefaultNotificationService) HandleCreated(
	ctx context.Context,
	collection, id string,
	record models.Notification,
) error {
	logger := utils.GetLogger()

	if !models.IsNotificationCollection(collection) {
		return nil
	}

	if record.RecipientID == "" {
		logger.Debug("notification has no recipient, skipping push",
			zap.String("collection", collection), zap.String("id", id))
		return nil
	}

	token, err := s.Devices.GetToken(ctx, record.RecipientID)
	if err != nil {
		return fmt.Errorf("HandleCreated: token lookup for %s: %w", record.RecipientID, err)
	}
	if token == "" {
		logger.Debug("recipient has no device token, skipping push",
			zap.String("recipientId", record.RecipientID), zap.String("id", id))
		return nil
	}

	one := 1
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title:    record.Title,
			Body:     record.Message,
			ImageURL: record.ImageURL,
		},
		Data: buildDataPayload(id, record),
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: androidChannelID,
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
					Badge: &one,
				},
			},
		},
	}

	receipt, err := s.Pusher.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("HandleCreated: push for notification %s: %w", id, err)
	}

	logger.Info("notification push sent",
		zap.String("id", id),
		zap.String("recipientId", record.RecipientID),
		zap.String("receipt", receipt))
	return nil
}

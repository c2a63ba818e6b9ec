package notification

import (
	"context"
	"fmt"

	"beacon/database/repository/devices"
	"beacon/database/repository/notifications"
	"beacon/models"
)

// NotificationService reacts to notification-record writes. Both
// handlers return an error instead of swallowing it; the trigger
// adapter owns the decision to never propagate a failure to the host.
type NotificationService interface {
	// HandleCreated fires once per newly created record and sends at
	// most one push for it.
	HandleCreated(ctx context.Context, collection, id string, record models.Notification) error
	// HandleUpdated fires on record updates and sends a badge push only
	// on the unread -> not-unread transition.
	HandleUpdated(ctx context.Context, collection, id string, before, after models.Notification) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Notifications notificationsRepo.NotificationRepository
	Devices       devicesRepo.DeviceTokenRepository
	Pusher        Pusher
}

func NewDefaultNotificationService(
	notifRepo notificationsRepo.NotificationRepository,
	deviceRepo devicesRepo.DeviceTokenRepository,
	pusher Pusher,
) (*DefaultNotificationService, error) {
	if notifRepo == nil || deviceRepo == nil || pusher == nil {
		return nil, fmt.Errorf("notification service initialization error: missing repository or pusher")
	}
	return &DefaultNotificationService{
		Notifications: notifRepo,
		Devices:       deviceRepo,
		Pusher:        pusher,
	}, nil
}

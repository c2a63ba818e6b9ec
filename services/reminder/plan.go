package reminder

import (
	"fmt"
	"time"

	"beacon/models"

	"github.com/google/uuid"
)

// TypeEventReminder tags notification records produced by the generator.
const TypeEventReminder = "event_reminder"

// Reminders go out for events starting between one and two hours from
// now. With an hourly cadence the one-hour-wide closed window catches
// each event exactly once, assuming the timer fires reliably.
const (
	windowOffset = time.Hour
	windowWidth  = time.Hour
)

// PlannedNotification pairs a record with the collection it belongs in.
type PlannedNotification struct {
	Collection string
	Record     models.Notification
}

// Plan is the outcome of one generator pass: which events to flag, and
// which notification records to create for them.
type Plan struct {
	FlagEventIDs  []string
	Notifications []PlannedNotification
}

// BuildPlan decides, without touching the store, what a reminder run at
// time now should do with the given event snapshots. Events outside the
// window or already flagged reminderSent contribute nothing, which is
// what makes duplicate timer fires harmless.
func BuildPlan(now time.Time, events []models.Event) Plan {
	from := now.Add(windowOffset)
	to := now.Add(windowOffset + windowWidth)

	var plan Plan
	for _, ev := range events {
		if ev.ReminderSent {
			continue
		}
		if ev.StartTime.Before(from) || ev.StartTime.After(to) {
			continue
		}

		plan.FlagEventIDs = append(plan.FlagEventIDs, ev.ID)

		if ev.CreatorID != "" {
			plan.Notifications = append(plan.Notifications, PlannedNotification{
				Collection: models.CreatorNotifications,
				Record:     reminderRecord(now, ev, ev.CreatorID),
			})
		}
		for _, attendee := range ev.Attendees {
			plan.Notifications = append(plan.Notifications, PlannedNotification{
				Collection: models.UserNotifications,
				Record:     reminderRecord(now, ev, attendee),
			})
		}
	}
	return plan
}

func reminderRecord(now time.Time, ev models.Event, recipientID string) models.Notification {
	return models.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		Title:       "Event reminder",
		Message:     fmt.Sprintf("%s starts in about an hour. See you there!", ev.Name),
		Type:        TypeEventReminder,
		Status:      models.StatusUnread,
		CreatedAt:   now,
		ActionLink:  "event/" + ev.ID,
		Metadata: map[string]any{
			"eventId":   ev.ID,
			"eventName": ev.Name,
			"startTime": ev.StartTime.Format(time.RFC3339),
			"venue":     ev.VenueAddress,
		},
	}
}

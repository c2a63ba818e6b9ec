package models

import "time"

// EventsCollection is the collection scanned by the reminder generator.
const EventsCollection = "events"

type Event struct {
	ID           string    `firestore:"id" json:"id"`
	CreatorID    string    `firestore:"creatorId" json:"creatorId"`
	Name         string    `firestore:"name" json:"name"`
	StartTime    time.Time `firestore:"startTime" json:"startTime"`
	VenueAddress string    `firestore:"venueAddress,omitempty" json:"venueAddress,omitempty"`
	Attendees    []string  `firestore:"attendees,omitempty" json:"attendees,omitempty"`
	// ReminderSent never reverts to false once set; it is the only
	// duplicate-send guard the generator has.
	ReminderSent bool `firestore:"reminderSent" json:"reminderSent"`
}

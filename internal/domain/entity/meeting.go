package entity

import "time"

// Estados de una reunión.
const (
	MeetingStatusScheduled  = "scheduled"
	MeetingStatusInProgress = "in-progress"
	MeetingStatusCompleted  = "completed"
	MeetingStatusCancelled  = "cancelled"
)

// Meeting reunión (videollamada) con el cliente, con transcripción opcional.
type Meeting struct {
	ID                  ID
	ClientID            ID
	AdvisorID           ID
	Title               string
	MeetingType         string // scheduled, instant
	Status              string
	ScheduledAt         *time.Time
	StartedAt           *time.Time
	EndedAt             *time.Time
	DurationMinutes     int
	TranscriptAvailable bool
	Summary             string
	CreatedAt           time.Time
}

package entity

import "time"

// Estados de una invitación de onboarding.
const (
	InvitationStatusPending   = "pending"
	InvitationStatusSent      = "sent"
	InvitationStatusOpened    = "opened"
	InvitationStatusCompleted = "completed"
	InvitationStatusExpired   = "expired"
)

// OnboardingInvitation invitación enviada al cliente para completar su alta.
type OnboardingInvitation struct {
	ID          ID
	ClientID    ID
	AdvisorID   ID
	Email       string
	Status      string
	EmailCount  int // reenvíos
	SentAt      *time.Time
	OpenedAt    *time.Time
	CompletedAt *time.Time
	ExpiresAt   *time.Time
	CreatedAt   time.Time
}
